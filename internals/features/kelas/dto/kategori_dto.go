package dto

import (
	"github.com/google/uuid"

	"kursusku_backend/internals/features/kelas/model"
)

// 🔹 Request membuat/mengubah kategori
type KategoriRequest struct {
	Nama string `json:"nama" form:"nama" validate:"required,min=2,max=100"`
}

// 🔹 Response kategori
type KategoriResponse struct {
	ID   uuid.UUID `json:"id"`
	Nama string    `json:"nama"`
}

func (r *KategoriRequest) ToModel() *model.KategoriModel {
	return &model.KategoriModel{
		KategoriNama: r.Nama,
	}
}

func ToKategoriResponse(m *model.KategoriModel) *KategoriResponse {
	return &KategoriResponse{
		ID:   m.KategoriID,
		Nama: m.KategoriNama,
	}
}

func ToKategoriResponseList(models []model.KategoriModel) []KategoriResponse {
	result := make([]KategoriResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToKategoriResponse(&models[i]))
	}
	return result
}
