package helper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kursusku_backend/internals/helpers/testdb"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Belajar Golang Dasar", "belajar-golang-dasar"},
		{"  Spasi   Ganda  ", "spasi-ganda"},
		{"Éducation Économie", "education-economie"},
		{"C++ & Go!", "c-go"},
		{"---", "item"},
		{"", "item"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in, 100), "input: %q", tc.in)
	}
}

func TestSlugifyMaxLen(t *testing.T) {
	got := Slugify("judul yang sangat panjang sekali", 10)
	assert.LessOrEqual(t, len(got), 10)
	assert.NotEqual(t, "", got)
}

func TestEnsureUniqueSlugCI(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()

	first, err := EnsureUniqueSlugCI(ctx, db, "kategoris", "kategori_nama", "Pemrograman", 100)
	require.NoError(t, err)
	assert.Equal(t, "pemrograman", first)

	// Simulasikan slug pertama sudah terpakai
	require.NoError(t, db.Exec(
		`INSERT INTO kategoris (kategori_id, kategori_nama) VALUES ('00000000-0000-0000-0000-000000000001', 'pemrograman')`,
	).Error)

	second, err := EnsureUniqueSlugCI(ctx, db, "kategoris", "kategori_nama", "Pemrograman", 100)
	require.NoError(t, err)
	assert.Equal(t, "pemrograman-2", second)
}
