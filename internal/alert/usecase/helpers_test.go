package usecase

import (
	"strings"
	"testing"
	"unicode/utf8"

	"member-admin/pkg/discord"

	"github.com/stretchr/testify/assert"
)

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short", "abc", 10, "abc"},
		{"ascii", "abcdefghij", 8, "abcde..."},
		{"tiny max", "abcdef", 2, "ab"},
		// "é" is two bytes; the cut at byte 5 falls inside the third one.
		{"multibyte", "ééééé", 8, "éé..."},
		{"multibyte tiny", "éé", 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateText(tt.in, tt.max)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.LessOrEqual(t, len(got), tt.max)
		})
	}
}

func TestBuildFieldKeepsUTF8(t *testing.T) {
	f := buildField("Error", strings.Repeat("ñ", discord.MaxFieldValueLen), false)
	assert.True(t, utf8.ValidString(f.Value))
	assert.LessOrEqual(t, len(f.Value), discord.MaxFieldValueLen)

	assert.Equal(t, "N/A", buildField("Error", "", true).Value)
}
