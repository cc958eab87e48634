package testdb

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Skema minimum untuk test. DDL ditulis tangan karena default
// gen_random_uuid() di tag model hanya dimengerti Postgres.
var schema = []string{
	`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		user_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL DEFAULT '',
		google_id TEXT UNIQUE,
		role TEXT NOT NULL DEFAULT 'user',
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE token_blacklist (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		token TEXT NOT NULL UNIQUE,
		expired_at DATETIME NOT NULL,
		created_at DATETIME
	)`,
	`CREATE TABLE refresh_tokens (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		token_hash BLOB NOT NULL,
		expires_at DATETIME NOT NULL,
		revoked_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE kategoris (
		kategori_id TEXT PRIMARY KEY,
		kategori_nama TEXT NOT NULL,
		kategori_created_at DATETIME,
		kategori_updated_at DATETIME
	)`,
	`CREATE TABLE gurus (
		guru_id TEXT PRIMARY KEY,
		guru_nama TEXT NOT NULL,
		guru_foto TEXT,
		guru_bio TEXT,
		guru_created_at DATETIME,
		guru_updated_at DATETIME
	)`,
	`CREATE TABLE kelas (
		kelas_id TEXT PRIMARY KEY,
		kelas_judul TEXT NOT NULL,
		kelas_slug TEXT NOT NULL UNIQUE,
		kelas_deskripsi TEXT,
		kelas_thumbnail TEXT,
		kelas_kategori_id TEXT NOT NULL,
		kelas_guru_id TEXT NOT NULL,
		kelas_level TEXT NOT NULL,
		kelas_bahasa TEXT NOT NULL DEFAULT 'Indonesia',
		kelas_berbayar BOOLEAN NOT NULL DEFAULT 0,
		kelas_harga INTEGER,
		kelas_jumlah_pelajaran INTEGER NOT NULL DEFAULT 0,
		kelas_jumlah_video INTEGER NOT NULL DEFAULT 0,
		kelas_rating REAL NOT NULL DEFAULT 0,
		kelas_jumlah_review INTEGER NOT NULL DEFAULT 0,
		kelas_penyelenggara TEXT,
		kelas_video_url TEXT,
		kelas_created_at DATETIME,
		kelas_updated_at DATETIME
	)`,
	`CREATE TABLE kelas_user (
		kelas_user_id TEXT PRIMARY KEY,
		kelas_user_user_id TEXT NOT NULL,
		kelas_user_kelas_id TEXT NOT NULL,
		kelas_user_status TEXT NOT NULL DEFAULT 'pending',
		kelas_user_created_at DATETIME,
		kelas_user_updated_at DATETIME,
		UNIQUE (kelas_user_user_id, kelas_user_kelas_id)
	)`,
	`CREATE TABLE articles (
		article_id TEXT PRIMARY KEY,
		article_title TEXT NOT NULL,
		article_excerpt TEXT,
		article_author TEXT NOT NULL DEFAULT 'Admin Yayasan Budi Mulya',
		article_date DATE NOT NULL,
		article_read_time TEXT,
		article_category TEXT,
		article_views INTEGER NOT NULL DEFAULT 0,
		article_likes INTEGER NOT NULL DEFAULT 0,
		article_image TEXT,
		article_featured BOOLEAN NOT NULL DEFAULT 0,
		article_external_url TEXT NOT NULL UNIQUE,
		article_created_at DATETIME,
		article_updated_at DATETIME
	)`,
}

// Open membuka sqlite in-memory terisolasi per test dan memasang skema.
// TranslateError diaktifkan supaya unique violation menjadi gorm.ErrDuplicatedKey,
// sama seperti koneksi Postgres di produksi.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("buka sqlite test db: %v", err)
	}

	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("buat skema test: %v", err)
		}
	}
	return db
}
