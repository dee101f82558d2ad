package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"simple", "Hello World", "hello-world"},
		{"turkish letters", "Çalışkan Öğrenci Şükrü", "caliskan-ogrenci-sukru"},
		{"dotted capital I", "İNGİLİZCE Kelimeler", "ingilizce-kelimeler"},
		{"dotless capital I", "IRMAK", "irmak"},
		{"punctuation dropped", "Go: neden? nasıl!", "go-neden-nasil"},
		{"separator runs collapse", "a - b", "a-b"},
		{"underscore runs collapse", "a__b", "a_b"},
		{"trim separators", "-hello-", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}
