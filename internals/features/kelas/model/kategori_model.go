package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KategoriModel struct {
	KategoriID   uuid.UUID `gorm:"column:kategori_id;type:uuid;default:gen_random_uuid();primaryKey" json:"kategori_id"`
	KategoriNama string    `gorm:"column:kategori_nama;type:varchar(100);not null" json:"kategori_nama"`

	KategoriCreatedAt time.Time `gorm:"column:kategori_created_at;autoCreateTime" json:"kategori_created_at"`
	KategoriUpdatedAt time.Time `gorm:"column:kategori_updated_at;autoUpdateTime" json:"kategori_updated_at"`
}

func (KategoriModel) TableName() string {
	return "kategoris"
}

func (m *KategoriModel) BeforeCreate(tx *gorm.DB) error {
	if m.KategoriID == uuid.Nil {
		m.KategoriID = uuid.New()
	}
	return nil
}
