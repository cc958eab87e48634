package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kursusku_backend/internals/configs"
)

func TestAssetURL(t *testing.T) {
	old := configs.AppURL
	configs.AppURL = "https://api.kursusku.id"
	t.Cleanup(func() { configs.AppURL = old })

	assert.Nil(t, AssetURL(nil))

	empty := "   "
	assert.Nil(t, AssetURL(&empty))

	rel := "kelas/abc.webp"
	got := AssetURL(&rel)
	if assert.NotNil(t, got) {
		assert.Equal(t, "https://api.kursusku.id/storage/kelas/abc.webp", *got)
	}

	abs := "https://cdn.example.com/x.png"
	got = AssetURL(&abs)
	if assert.NotNil(t, got) {
		assert.Equal(t, abs, *got)
	}
}
