package helper

import (
	"strings"

	"kursusku_backend/internals/configs"
)

// AssetURL mengubah path relatif hasil upload ("artikel/xxx.webp") menjadi
// URL absolut (APP_URL + /storage/...). Nil/kosong → nil, bukan string kosong.
func AssetURL(rel *string) *string {
	if rel == nil {
		return nil
	}
	v := strings.TrimSpace(*rel)
	if v == "" {
		return nil
	}
	// URL eksternal penuh dibiarkan apa adanya
	if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
		return &v
	}
	base := strings.TrimRight(configs.AppURL, "/")
	if base == "" {
		base = "http://localhost:3000"
	}
	full := base + "/storage/" + strings.TrimLeft(v, "/")
	return &full
}
