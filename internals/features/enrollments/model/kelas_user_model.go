package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	kelasModel "kursusku_backend/internals/features/kelas/model"
	userModel "kursusku_backend/internals/features/users/user/model"
)

// Status pendaftaran
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

// KelasUserModel: pivot pendaftaran user → kelas.
// Unique index (user_id, kelas_id) adalah penjaga utama anti double-enroll.
type KelasUserModel struct {
	KelasUserID      uuid.UUID `gorm:"column:kelas_user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"kelas_user_id"`
	KelasUserUserID  uuid.UUID `gorm:"column:kelas_user_user_id;type:uuid;not null;uniqueIndex:uq_kelas_user_user_kelas" json:"kelas_user_user_id"`
	KelasUserKelasID uuid.UUID `gorm:"column:kelas_user_kelas_id;type:uuid;not null;uniqueIndex:uq_kelas_user_user_kelas" json:"kelas_user_kelas_id"`

	KelasUserStatus string `gorm:"column:kelas_user_status;type:varchar(20);not null;default:'pending'" json:"kelas_user_status"`

	KelasUserCreatedAt time.Time `gorm:"column:kelas_user_created_at;autoCreateTime" json:"kelas_user_created_at"`
	KelasUserUpdatedAt time.Time `gorm:"column:kelas_user_updated_at;autoUpdateTime" json:"kelas_user_updated_at"`

	// Relations
	User  *userModel.UserModel   `gorm:"foreignKey:KelasUserUserID;references:ID" json:"user,omitempty"`
	Kelas *kelasModel.KelasModel `gorm:"foreignKey:KelasUserKelasID;references:KelasID" json:"kelas,omitempty"`
}

func (KelasUserModel) TableName() string {
	return "kelas_user"
}

func (m *KelasUserModel) BeforeCreate(tx *gorm.DB) error {
	if m.KelasUserID == uuid.Nil {
		m.KelasUserID = uuid.New()
	}
	if m.KelasUserStatus == "" {
		m.KelasUserStatus = StatusPending
	}
	return nil
}
