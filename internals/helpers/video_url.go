package helper

import (
	"regexp"
	"strings"
)

// Pola URL YouTube yang dikenal (watch, youtu.be, embed)
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([^&]+)`),
	regexp.MustCompile(`youtu\.be/([^?]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^/]+)`),
}

// NormalizeVideoURL mengubah berbagai bentuk URL YouTube menjadi bentuk embed
// kanonik https://www.youtube.com/embed/{id}. URL yang sudah embed dikembalikan
// apa adanya (idempoten); URL yang tidak dikenali juga dikembalikan tanpa diubah.
func NormalizeVideoURL(url string) string {
	if strings.Contains(url, "youtube.com/embed") {
		return url
	}

	for _, pattern := range youtubePatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return "https://www.youtube.com/embed/" + m[1]
		}
	}

	return url
}

// NormalizeVideoURLPtr versi nullable: input kosong → nil (bukan string kosong).
func NormalizeVideoURLPtr(url *string) *string {
	if url == nil {
		return nil
	}
	v := strings.TrimSpace(*url)
	if v == "" {
		return nil
	}
	v = NormalizeVideoURL(v)
	return &v
}
