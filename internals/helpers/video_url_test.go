package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVideoURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "watch url",
			in:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "watch url dengan query tambahan",
			in:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			want: "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "short url",
			in:   "https://youtu.be/dQw4w9WgXcQ",
			want: "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "short url dengan query",
			in:   "https://youtu.be/dQw4w9WgXcQ?si=abc",
			want: "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "sudah embed → tidak berubah",
			in:   "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want: "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "bukan youtube → apa adanya",
			in:   "https://vimeo.com/12345",
			want: "https://vimeo.com/12345",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeVideoURL(tc.in))
		})
	}
}

// Normalisasi harus idempotent: hasilnya tidak berubah kalau diproses ulang.
func TestNormalizeVideoURLIdempotent(t *testing.T) {
	inputs := []string{
		"https://www.youtube.com/watch?v=abc123",
		"https://youtu.be/abc123",
		"https://www.youtube.com/embed/abc123",
		"https://example.com/video.mp4",
	}
	for _, in := range inputs {
		once := NormalizeVideoURL(in)
		assert.Equal(t, once, NormalizeVideoURL(once), "input: %s", in)
	}
}

func TestNormalizeVideoURLPtr(t *testing.T) {
	assert.Nil(t, NormalizeVideoURLPtr(nil))

	empty := ""
	assert.Nil(t, NormalizeVideoURLPtr(&empty), "string kosong disimpan sebagai NULL")

	watch := "https://www.youtube.com/watch?v=xyz"
	got := NormalizeVideoURLPtr(&watch)
	if assert.NotNil(t, got) {
		assert.Equal(t, "https://www.youtube.com/embed/xyz", *got)
	}
}
