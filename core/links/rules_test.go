package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidImageRef(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{src: "https://placehold.co/600x200.png", want: true},
		{src: "http://example.com/a.jpg", want: true},
		{src: "data:image/png;base64,iVBORw0KGgo=", want: false},
		{src: "DATA:image/gif;base64,R0lGOD", want: false},
		{src: "images/local.png", want: false},
		{src: "https://", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidImageRef(tt.src))
		})
	}
}

func TestIsImageAsset(t *testing.T) {
	assert.True(t, IsImageAsset("https://placehold.co/600x200.png"))
	assert.True(t, IsImageAsset("https://example.com/a/B.SVG?x=1"))
	assert.False(t, IsImageAsset("https://example.com/docs/renderer"))
}

func TestIsMailto(t *testing.T) {
	assert.True(t, IsMailto("mailto:support@example.com"))
	assert.False(t, IsMailto("https://example.com"))
}

func TestDedupe(t *testing.T) {
	got := Dedupe([]string{
		"https://example.com/docs/",
		"https://example.com/docs#intro",
		"https://example.com/",
		"https://example.com/other",
	})
	assert.Equal(t, []string{
		"https://example.com/docs",
		"https://example.com/",
		"https://example.com/other",
	}, got)
}
