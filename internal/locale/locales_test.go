package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportedOrder(t *testing.T) {
	assert.Equal(t, []Language{LangEnglish, LangHebrew, LangArabic, LangSpanish, LangFrench}, Supported())
}

func TestDisplayNames(t *testing.T) {
	for _, lang := range Supported() {
		assert.NotEmpty(t, DisplayName(lang), "display name for %s", lang)
	}
}

func TestTextDirection(t *testing.T) {
	tests := []struct {
		name string
		lang Language
		want Direction
	}{
		{"english is ltr", LangEnglish, DirectionLTR},
		{"hebrew is rtl", LangHebrew, DirectionRTL},
		{"arabic is rtl", LangArabic, DirectionRTL},
		{"spanish is ltr", LangSpanish, DirectionLTR},
		{"french is ltr", LangFrench, DirectionLTR},
		{"unknown code fails closed to ltr", Language("xx"), DirectionLTR},
		{"empty code fails closed to ltr", Language(""), DirectionLTR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TextDirection(tt.lang))
		})
	}
}

func TestIsSupported(t *testing.T) {
	for _, lang := range Supported() {
		assert.True(t, IsSupported(string(lang)))
	}
	assert.False(t, IsSupported("de"))
	assert.False(t, IsSupported(""))
	assert.False(t, IsSupported("EN"))
}
