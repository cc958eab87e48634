package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"kursusku_backend/internals/features/articles/model"
	helper "kursusku_backend/internals/helpers"
)

/* ===============================
   Request (admin)
=================================*/

type ArticleRequest struct {
	Title       string  `json:"title" form:"title" validate:"required,min=3,max=255"`
	Excerpt     *string `json:"excerpt" form:"excerpt" validate:"omitempty"`
	Author      string  `json:"author" form:"author" validate:"omitempty,max=100"`
	Date        string  `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	ReadTime    *string `json:"read_time" form:"read_time" validate:"omitempty,max=20"`
	Category    *string `json:"category" form:"category" validate:"omitempty,max=100"`
	Featured    bool    `json:"featured" form:"featured"`
	ExternalURL string  `json:"external_url" form:"external_url" validate:"required,url,max=255"`
}

type ArticleUpdateRequest struct {
	Title       *string `json:"title" form:"title" validate:"omitempty,min=3,max=255"`
	Excerpt     *string `json:"excerpt" form:"excerpt" validate:"omitempty"`
	Author      *string `json:"author" form:"author" validate:"omitempty,max=100"`
	Date        *string `json:"date" form:"date" validate:"omitempty,datetime=2006-01-02"`
	ReadTime    *string `json:"read_time" form:"read_time" validate:"omitempty,max=20"`
	Category    *string `json:"category" form:"category" validate:"omitempty,max=100"`
	Featured    *bool   `json:"featured" form:"featured"`
	ExternalURL *string `json:"external_url" form:"external_url" validate:"omitempty,url,max=255"`
}

// 🔄 Request → model. Date sudah lolos validasi format, parse di sini aman.
func (r *ArticleRequest) ToModel() *model.ArticleModel {
	m := &model.ArticleModel{
		ArticleTitle:       r.Title,
		ArticleExcerpt:     r.Excerpt,
		ArticleReadTime:    r.ReadTime,
		ArticleCategory:    r.Category,
		ArticleFeatured:    r.Featured,
		ArticleExternalURL: r.ExternalURL,
	}
	if r.Author != "" {
		m.ArticleAuthor = r.Author
	}
	if d, err := time.Parse("2006-01-02", r.Date); err == nil {
		m.ArticleDate = datatypes.Date(d)
	}
	return m
}

/* ===============================
   Response (public API)
=================================*/

// 🔹 Kontrak lama frontend: readTime camelCase, image URL absolut atau null
type ArticleResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Excerpt  *string   `json:"excerpt"`
	Author   string    `json:"author"`
	Date     string    `json:"date"`
	ReadTime *string   `json:"readTime"`
	Category *string   `json:"category"`
	Views    int       `json:"views"`
	Likes    int       `json:"likes"`
	Image    *string   `json:"image"`
	Featured bool      `json:"featured"`
	URL      string    `json:"url"`
}

func ToArticleResponse(m *model.ArticleModel) *ArticleResponse {
	return &ArticleResponse{
		ID:       m.ArticleID,
		Title:    m.ArticleTitle,
		Excerpt:  m.ArticleExcerpt,
		Author:   m.ArticleAuthor,
		Date:     time.Time(m.ArticleDate).Format("2006-01-02"),
		ReadTime: m.ArticleReadTime,
		Category: m.ArticleCategory,
		Views:    m.ArticleViews,
		Likes:    m.ArticleLikes,
		Image:    helper.AssetURL(m.ArticleImage),
		Featured: m.ArticleFeatured,
		URL:      m.ArticleExternalURL,
	}
}

func ToArticleResponseList(models []model.ArticleModel) []ArticleResponse {
	result := make([]ArticleResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToArticleResponse(&models[i]))
	}
	return result
}
