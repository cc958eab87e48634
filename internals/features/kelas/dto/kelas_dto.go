package dto

import (
	"github.com/google/uuid"

	"kursusku_backend/internals/features/kelas/model"
	helper "kursusku_backend/internals/helpers"
)

/* ===============================
   Request (admin)
=================================*/

// 🔹 Request membuat kelas baru. Slug digenerate dari judul, bukan dari input.
type KelasRequest struct {
	Judul           string  `json:"judul" form:"judul" validate:"required,min=3,max=255"`
	Deskripsi       *string `json:"deskripsi" form:"deskripsi"`
	KategoriID      string  `json:"kategori_id" form:"kategori_id" validate:"required,uuid"`
	GuruID          string  `json:"guru_id" form:"guru_id" validate:"required,uuid"`
	Level           string  `json:"level" form:"level" validate:"required"`
	Bahasa          string  `json:"bahasa" form:"bahasa"`
	Berbayar        bool    `json:"berbayar" form:"berbayar"`
	Harga           *int    `json:"harga" form:"harga"`
	JumlahPelajaran int     `json:"jumlah_pelajaran" form:"jumlah_pelajaran" validate:"gte=0"`
	JumlahVideo     int     `json:"jumlah_video" form:"jumlah_video" validate:"gte=0"`
	Penyelenggara   *string `json:"penyelenggara" form:"penyelenggara"`
	VideoURL        *string `json:"video_url" form:"video_url"`
}

// 🔹 Request update parsial (field nil = tidak diubah)
type KelasUpdateRequest struct {
	Judul           *string `json:"judul" form:"judul"`
	Deskripsi       *string `json:"deskripsi" form:"deskripsi"`
	KategoriID      *string `json:"kategori_id" form:"kategori_id"`
	GuruID          *string `json:"guru_id" form:"guru_id"`
	Level           *string `json:"level" form:"level"`
	Bahasa          *string `json:"bahasa" form:"bahasa"`
	Berbayar        *bool   `json:"berbayar" form:"berbayar"`
	Harga           *int    `json:"harga" form:"harga"`
	JumlahPelajaran *int    `json:"jumlah_pelajaran" form:"jumlah_pelajaran"`
	JumlahVideo     *int    `json:"jumlah_video" form:"jumlah_video"`
	Penyelenggara   *string `json:"penyelenggara" form:"penyelenggara"`
	VideoURL        *string `json:"video_url" form:"video_url"`
}

// 🔄 Konversi dari request → model (slug & thumbnail diisi controller)
func (r *KelasRequest) ToModel() *model.KelasModel {
	bahasa := r.Bahasa
	if bahasa == "" {
		bahasa = "Indonesia"
	}
	harga := r.Harga
	if !r.Berbayar {
		harga = nil // harga hanya bermakna untuk kelas berbayar
	}
	return &model.KelasModel{
		KelasJudul:           r.Judul,
		KelasDeskripsi:       r.Deskripsi,
		KelasKategoriID:      uuid.MustParse(r.KategoriID),
		KelasGuruID:          uuid.MustParse(r.GuruID),
		KelasLevel:           r.Level,
		KelasBahasa:          bahasa,
		KelasBerbayar:        r.Berbayar,
		KelasHarga:           harga,
		KelasJumlahPelajaran: r.JumlahPelajaran,
		KelasJumlahVideo:     r.JumlahVideo,
		KelasPenyelenggara:   r.Penyelenggara,
		KelasVideoURL:        helper.NormalizeVideoURLPtr(r.VideoURL),
	}
}

/* ===============================
   Response (public API)
=================================*/

type KategoriLite struct {
	ID   uuid.UUID `json:"id"`
	Nama string    `json:"nama"`
}

type GuruLite struct {
	ID   uuid.UUID `json:"id"`
	Nama string    `json:"nama"`
	Bio  *string   `json:"bio,omitempty"`
}

// 🔹 Proyeksi kelas untuk list — set kolom eksplisit, tanpa field internal
type KelasResponse struct {
	ID              uuid.UUID     `json:"id"`
	Judul           string        `json:"judul"`
	Slug            string        `json:"slug"`
	Deskripsi       *string       `json:"deskripsi"`
	Thumbnail       *string       `json:"thumbnail"`
	KategoriID      uuid.UUID     `json:"kategori_id"`
	Level           string        `json:"level"`
	Bahasa          string        `json:"bahasa"`
	Berbayar        bool          `json:"berbayar"`
	Harga           *int          `json:"harga"`
	JumlahPelajaran int           `json:"jumlah_pelajaran"`
	JumlahVideo     int           `json:"jumlah_video"`
	Rating          float64       `json:"rating"`
	JumlahReview    int           `json:"jumlah_review"`
	JumlahPendaftar int           `json:"jumlah_pendaftar"`
	Penyelenggara   *string       `json:"penyelenggara"`
	VideoURL        *string       `json:"video_url"`
	GuruID          uuid.UUID     `json:"guru_id"`
	Kategori        *KategoriLite `json:"kategori"`
	Guru            *GuruLite     `json:"guru"`
}

// 🔹 Ringkasan kelas untuk ditempel di entitas lain (mis. daftar pendaftaran)
type KelasLite struct {
	ID       uuid.UUID `json:"id"`
	Judul    string    `json:"judul"`
	Slug     string    `json:"slug"`
	Berbayar bool      `json:"berbayar"`
	Harga    *int      `json:"harga"`
}

func ToKelasLite(m *model.KelasModel) *KelasLite {
	if m == nil {
		return nil
	}
	return &KelasLite{
		ID:       m.KelasID,
		Judul:    m.KelasJudul,
		Slug:     m.KelasSlug,
		Berbayar: m.KelasBerbayar,
		Harga:    m.KelasHarga,
	}
}

// 🔹 Detail = proyeksi list + status pendaftaran caller (null jika belum daftar)
type KelasDetailResponse struct {
	KelasResponse
	EnrollmentStatus *string `json:"enrollment_status"`
}

// 🔄 Konversi dari model → response list.
// withBio: detail menyertakan bio guru, list tidak.
func ToKelasResponse(m *model.KelasModel, withBio bool) *KelasResponse {
	resp := &KelasResponse{
		ID:              m.KelasID,
		Judul:           m.KelasJudul,
		Slug:            m.KelasSlug,
		Deskripsi:       m.KelasDeskripsi,
		Thumbnail:       helper.AssetURL(m.KelasThumbnail),
		KategoriID:      m.KelasKategoriID,
		Level:           m.KelasLevel,
		Bahasa:          m.KelasBahasa,
		Berbayar:        m.KelasBerbayar,
		Harga:           m.KelasHarga,
		JumlahPelajaran: m.KelasJumlahPelajaran,
		JumlahVideo:     m.KelasJumlahVideo,
		Rating:          m.KelasRating,
		JumlahReview:    m.KelasJumlahReview,
		JumlahPendaftar: m.KelasJumlahPendaftar,
		Penyelenggara:   m.KelasPenyelenggara,
		VideoURL:        m.KelasVideoURL,
		GuruID:          m.KelasGuruID,
	}
	if m.Kategori != nil {
		resp.Kategori = &KategoriLite{ID: m.Kategori.KategoriID, Nama: m.Kategori.KategoriNama}
	}
	if m.Guru != nil {
		g := &GuruLite{ID: m.Guru.GuruID, Nama: m.Guru.GuruNama}
		if withBio {
			g.Bio = m.Guru.GuruBio
		}
		resp.Guru = g
	}
	return resp
}

// 🔄 Konversi list model → list response
func ToKelasResponseList(models []model.KelasModel) []KelasResponse {
	result := make([]KelasResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToKelasResponse(&models[i], false))
	}
	return result
}

// 🔄 Konversi model → detail response dengan enrollment_status
func ToKelasDetailResponse(m *model.KelasModel, enrollmentStatus *string) *KelasDetailResponse {
	return &KelasDetailResponse{
		KelasResponse:    *ToKelasResponse(m, true),
		EnrollmentStatus: enrollmentStatus,
	}
}
