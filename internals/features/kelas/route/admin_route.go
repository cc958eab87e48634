package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/kelas/controller"
)

// KelasAdminRoutes: CRUD kelas/kategori/guru (group sudah dijaga role admin)
func KelasAdminRoutes(api fiber.Router, db *gorm.DB) {
	// 🔹 Kelas
	kelasCtrl := controller.NewKelasAdminController(db)
	kelas := api.Group("/kelas")
	kelas.Post("/", kelasCtrl.CreateKelas)
	kelas.Patch("/:id", kelasCtrl.UpdateKelas)
	kelas.Delete("/:id", kelasCtrl.DeleteKelas)

	// 🔹 Kategori
	kategoriCtrl := controller.NewKategoriAdminController(db)
	kategori := api.Group("/kategori")
	kategori.Get("/", kategoriCtrl.GetAllKategori)
	kategori.Post("/", kategoriCtrl.CreateKategori)
	kategori.Patch("/:id", kategoriCtrl.UpdateKategori)
	kategori.Delete("/:id", kategoriCtrl.DeleteKategori)

	// 🔹 Guru
	guruCtrl := controller.NewGuruAdminController(db)
	guru := api.Group("/guru")
	guru.Get("/", guruCtrl.GetAllGuru)
	guru.Post("/", guruCtrl.CreateGuru)
	guru.Patch("/:id", guruCtrl.UpdateGuru)
	guru.Delete("/:id", guruCtrl.DeleteGuru)
}
