package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GuruModel struct {
	GuruID   uuid.UUID `gorm:"column:guru_id;type:uuid;default:gen_random_uuid();primaryKey" json:"guru_id"`
	GuruNama string    `gorm:"column:guru_nama;type:varchar(255);not null" json:"guru_nama"`
	GuruFoto *string   `gorm:"column:guru_foto;type:varchar(255)" json:"guru_foto,omitempty"`
	GuruBio  *string   `gorm:"column:guru_bio;type:text" json:"guru_bio,omitempty"`

	GuruCreatedAt time.Time `gorm:"column:guru_created_at;autoCreateTime" json:"guru_created_at"`
	GuruUpdatedAt time.Time `gorm:"column:guru_updated_at;autoUpdateTime" json:"guru_updated_at"`
}

func (GuruModel) TableName() string {
	return "gurus"
}

func (m *GuruModel) BeforeCreate(tx *gorm.DB) error {
	if m.GuruID == uuid.Nil {
		m.GuruID = uuid.New()
	}
	return nil
}
