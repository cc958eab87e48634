package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ArticleModel: artikel/berita yayasan. Konten penuh ada di situs eksternal,
// di sini hanya metadata + counter views/likes.
type ArticleModel struct {
	ArticleID      uuid.UUID      `gorm:"column:article_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"article_id"`
	ArticleTitle   string         `gorm:"column:article_title;type:varchar(255);not null" json:"article_title"`
	ArticleExcerpt *string        `gorm:"column:article_excerpt;type:text" json:"article_excerpt"`
	ArticleAuthor  string         `gorm:"column:article_author;type:varchar(100);not null;default:'Admin Yayasan Budi Mulya'" json:"article_author"`
	ArticleDate    datatypes.Date `gorm:"column:article_date;not null" json:"article_date"`

	ArticleReadTime *string `gorm:"column:article_read_time;type:varchar(20)" json:"article_read_time"`
	ArticleCategory *string `gorm:"column:article_category;type:varchar(100)" json:"article_category"`

	ArticleViews int `gorm:"column:article_views;not null;default:0" json:"article_views"`
	ArticleLikes int `gorm:"column:article_likes;not null;default:0" json:"article_likes"`

	ArticleImage       *string `gorm:"column:article_image;type:varchar(255)" json:"article_image"`
	ArticleFeatured    bool    `gorm:"column:article_featured;not null;default:false" json:"article_featured"`
	ArticleExternalURL string  `gorm:"column:article_external_url;type:varchar(255);uniqueIndex;not null" json:"article_external_url"`

	ArticleCreatedAt time.Time `gorm:"column:article_created_at;autoCreateTime" json:"article_created_at"`
	ArticleUpdatedAt time.Time `gorm:"column:article_updated_at;autoUpdateTime" json:"article_updated_at"`
}

func (ArticleModel) TableName() string {
	return "articles"
}

func (m *ArticleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ArticleID == uuid.Nil {
		m.ArticleID = uuid.New()
	}
	if m.ArticleAuthor == "" {
		m.ArticleAuthor = "Admin Yayasan Budi Mulya"
	}
	return nil
}
