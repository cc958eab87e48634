package database

import (
	"log"
	"os"

	articleModel "kursusku_backend/internals/features/articles/model"
	enrollmentModel "kursusku_backend/internals/features/enrollments/model"
	kelasModel "kursusku_backend/internals/features/kelas/model"
	authModel "kursusku_backend/internals/features/users/auth/model"
	userModel "kursusku_backend/internals/features/users/user/model"
)

// AutoMigrateIfEnabled menjalankan AutoMigrate hanya kalau DB_AUTO_MIGRATE=true.
// Di produksi skema dikelola lewat migrasi terpisah; flag ini untuk dev/staging.
func AutoMigrateIfEnabled() {
	if os.Getenv("DB_AUTO_MIGRATE") != "true" {
		return
	}

	log.Println("🔄 AutoMigrate skema...")
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&authModel.RefreshToken{},
		&kelasModel.KategoriModel{},
		&kelasModel.GuruModel{},
		&kelasModel.KelasModel{},
		&enrollmentModel.KelasUserModel{},
		&articleModel.ArticleModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}
