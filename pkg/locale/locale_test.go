package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		raw  string
		want Locale
	}{
		{"kr", Korean},
		{"en", English},
		{"mn", Mongolian},
		{" EN ", English},
		{"", Korean},
		{"ja", Korean},
		{"ko", Korean},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.raw))
		})
	}
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("mn"))
	assert.False(t, IsSupported("MN"))
	assert.False(t, IsSupported("fr"))
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Korean", Korean.LanguageName())
	assert.Equal(t, "English", English.LanguageName())
	assert.Equal(t, "Mongolian", Mongolian.LanguageName())
	assert.Equal(t, "Korean", Locale("xx").LanguageName())
}
