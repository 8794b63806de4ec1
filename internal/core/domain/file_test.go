package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBanner_StoredName(t *testing.T) {
	tests := []struct {
		name string
		in   Banner
		want string
	}{
		{name: "matching extension", in: Banner{Filename: "ad.png", ContentType: "image/png"}, want: "ad.png"},
		{name: "mislabeled upload", in: Banner{Filename: "ad.txt", ContentType: "image/jpeg"}, want: "ad.jpg"},
		{name: "no extension", in: Banner{Filename: "ad", ContentType: "image/webp"}, want: "ad.webp"},
		{name: "unknown type", in: Banner{Filename: "ad.gif", ContentType: "image/gif"}, want: "ad.gif"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.StoredName())
		})
	}
}
