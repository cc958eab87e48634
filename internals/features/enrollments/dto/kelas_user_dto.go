package dto

import (
	"time"

	"kursusku_backend/internals/features/enrollments/model"
	kelasDto "kursusku_backend/internals/features/kelas/dto"
	userModel "kursusku_backend/internals/features/users/user/model"
)

// PivotResponse: status + waktu daftar, ditempel ke kelas pada /my-courses
type PivotResponse struct {
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// MyCourseResponse: kelas yang diikuti user beserta pivot pendaftarannya
type MyCourseResponse struct {
	kelasDto.KelasResponse
	Pivot PivotResponse `json:"pivot"`
}

func ToMyCourseResponse(m *model.KelasUserModel) *MyCourseResponse {
	if m == nil || m.Kelas == nil {
		return nil
	}
	return &MyCourseResponse{
		KelasResponse: *kelasDto.ToKelasResponse(m.Kelas, false),
		Pivot: PivotResponse{
			Status:    m.KelasUserStatus,
			CreatedAt: m.KelasUserCreatedAt,
		},
	}
}

func ToMyCourseResponseList(rows []model.KelasUserModel) []MyCourseResponse {
	out := make([]MyCourseResponse, 0, len(rows))
	for i := range rows {
		if r := ToMyCourseResponse(&rows[i]); r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// UserLite: ringkasan user untuk daftar pendaftaran sisi admin
type UserLite struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
}

func toUserLite(u *userModel.UserModel) *UserLite {
	if u == nil {
		return nil
	}
	return &UserLite{
		ID:       u.ID.String(),
		UserName: u.UserName,
		Email:    u.Email,
	}
}

// EnrollmentResponse: satu baris pendaftaran (sisi admin)
type EnrollmentResponse struct {
	ID        string              `json:"id"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	User      *UserLite           `json:"user,omitempty"`
	Kelas     *kelasDto.KelasLite `json:"kelas,omitempty"`
}

func ToEnrollmentResponse(m *model.KelasUserModel) *EnrollmentResponse {
	if m == nil {
		return nil
	}
	return &EnrollmentResponse{
		ID:        m.KelasUserID.String(),
		Status:    m.KelasUserStatus,
		CreatedAt: m.KelasUserCreatedAt,
		UpdatedAt: m.KelasUserUpdatedAt,
		User:      toUserLite(m.User),
		Kelas:     kelasDto.ToKelasLite(m.Kelas),
	}
}

func ToEnrollmentResponseList(rows []model.KelasUserModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(rows))
	for i := range rows {
		if r := ToEnrollmentResponse(&rows[i]); r != nil {
			out = append(out, *r)
		}
	}
	return out
}
