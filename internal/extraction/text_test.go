package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Empty", "", ""},
		{"CRLF normalized", "a\r\nb", "a\nb"},
		{"Collapses blank runs", "a\n\n\n\n\nb", "a\n\nb"},
		{"Collapses inner spaces", "Director   of    Product", "Director of Product"},
		{"Preserves bullet glyph", "  • Led growth", "  • Led growth"},
		{"Trims trailing whitespace", "line   \t\nnext", "line\nnext"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

func TestIsBulletLine(t *testing.T) {
	assert.True(t, IsBulletLine("• Led team"))
	assert.True(t, IsBulletLine("- Shipped feature"))
	assert.True(t, IsBulletLine("  * Indented"))
	assert.False(t, IsBulletLine("TruConnect"))
	assert.False(t, IsBulletLine(""))
}

func TestStripBullet(t *testing.T) {
	assert.Equal(t, "Led team", StripBullet("• Led team"))
	assert.Equal(t, "Shipped feature", StripBullet("-   Shipped feature"))
	assert.Equal(t, "No bullet", StripBullet("No bullet"))
	assert.Equal(t, "", StripBullet("   "))
}
