package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Level kelas (mengikuti constraint enum di tabel)
const (
	LevelPemula     = "Pemula"
	LevelMenengah   = "Menengah"
	LevelSemuaLevel = "Semua Level"
)

var AllowedLevels = []string{LevelPemula, LevelMenengah, LevelSemuaLevel}

func IsValidLevel(level string) bool {
	for _, l := range AllowedLevels {
		if level == l {
			return true
		}
	}
	return false
}

type KelasModel struct {
	KelasID        uuid.UUID `gorm:"column:kelas_id;type:uuid;default:gen_random_uuid();primaryKey" json:"kelas_id"`
	KelasJudul     string    `gorm:"column:kelas_judul;type:varchar(255);not null" json:"kelas_judul"`
	KelasSlug      string    `gorm:"column:kelas_slug;type:varchar(100);not null;uniqueIndex" json:"kelas_slug"`
	KelasDeskripsi *string   `gorm:"column:kelas_deskripsi;type:text" json:"kelas_deskripsi,omitempty"`
	KelasThumbnail *string   `gorm:"column:kelas_thumbnail;type:varchar(255)" json:"kelas_thumbnail,omitempty"`

	KelasKategoriID uuid.UUID `gorm:"column:kelas_kategori_id;type:uuid;not null;index" json:"kelas_kategori_id"`
	KelasGuruID     uuid.UUID `gorm:"column:kelas_guru_id;type:uuid;not null;index" json:"kelas_guru_id"`

	KelasLevel    string `gorm:"column:kelas_level;type:varchar(20);not null" json:"kelas_level"`
	KelasBahasa   string `gorm:"column:kelas_bahasa;type:varchar(50);not null;default:'Indonesia'" json:"kelas_bahasa"`
	KelasBerbayar bool   `gorm:"column:kelas_berbayar;not null;default:false" json:"kelas_berbayar"`
	// harga hanya bermakna saat kelas_berbayar = true
	KelasHarga *int `gorm:"column:kelas_harga" json:"kelas_harga,omitempty"`

	KelasJumlahPelajaran int     `gorm:"column:kelas_jumlah_pelajaran;not null;default:0" json:"kelas_jumlah_pelajaran"`
	KelasJumlahVideo     int     `gorm:"column:kelas_jumlah_video;not null;default:0" json:"kelas_jumlah_video"`
	KelasRating          float64 `gorm:"column:kelas_rating;not null;default:0" json:"kelas_rating"`
	KelasJumlahReview    int     `gorm:"column:kelas_jumlah_review;not null;default:0" json:"kelas_jumlah_review"`

	// Derived dari kelas_user (bukan kolom fisik) — dihitung via subquery saat SELECT
	KelasJumlahPendaftar int `gorm:"column:kelas_jumlah_pendaftar;->;-:migration" json:"kelas_jumlah_pendaftar"`

	KelasPenyelenggara *string `gorm:"column:kelas_penyelenggara;type:varchar(255)" json:"kelas_penyelenggara,omitempty"`
	// dinormalisasi ke bentuk embed YouTube saat tulis
	KelasVideoURL *string `gorm:"column:kelas_video_url;type:varchar(255)" json:"kelas_video_url,omitempty"`

	KelasCreatedAt time.Time `gorm:"column:kelas_created_at;autoCreateTime" json:"kelas_created_at"`
	KelasUpdatedAt time.Time `gorm:"column:kelas_updated_at;autoUpdateTime" json:"kelas_updated_at"`

	// Relasi (preload)
	Kategori *KategoriModel `gorm:"foreignKey:KelasKategoriID;references:KategoriID" json:"kategori,omitempty"`
	Guru     *GuruModel     `gorm:"foreignKey:KelasGuruID;references:GuruID" json:"guru,omitempty"`
}

func (KelasModel) TableName() string {
	return "kelas"
}

func (m *KelasModel) BeforeCreate(tx *gorm.DB) error {
	if m.KelasID == uuid.Nil {
		m.KelasID = uuid.New()
	}
	return nil
}
