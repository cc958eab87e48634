package dto

import (
	"github.com/google/uuid"

	"kursusku_backend/internals/features/kelas/model"
	helper "kursusku_backend/internals/helpers"
)

// 🔹 Request membuat guru (foto diunggah terpisah via multipart)
type GuruRequest struct {
	Nama string  `json:"nama" form:"nama" validate:"required,min=2,max=255"`
	Bio  *string `json:"bio" form:"bio"`
}

// 🔹 Request update parsial
type GuruUpdateRequest struct {
	Nama *string `json:"nama" form:"nama"`
	Bio  *string `json:"bio" form:"bio"`
}

// 🔹 Response guru
type GuruResponse struct {
	ID   uuid.UUID `json:"id"`
	Nama string    `json:"nama"`
	Foto *string   `json:"foto"`
	Bio  *string   `json:"bio"`
}

func (r *GuruRequest) ToModel() *model.GuruModel {
	return &model.GuruModel{
		GuruNama: r.Nama,
		GuruBio:  r.Bio,
	}
}

func ToGuruResponse(m *model.GuruModel) *GuruResponse {
	return &GuruResponse{
		ID:   m.GuruID,
		Nama: m.GuruNama,
		Foto: helper.AssetURL(m.GuruFoto),
		Bio:  m.GuruBio,
	}
}

func ToGuruResponseList(models []model.GuruModel) []GuruResponse {
	result := make([]GuruResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToGuruResponse(&models[i]))
	}
	return result
}
