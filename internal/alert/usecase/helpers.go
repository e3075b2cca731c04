package usecase

import (
	"unicode/utf8"

	"member-admin/pkg/discord"
)

func buildField(name string, value string, inline bool) discord.EmbedField {
	if value == "" {
		value = "N/A"
	}
	if len(value) > discord.MaxFieldValueLen {
		value = truncateText(value, discord.MaxFieldValueLen)
	}
	return discord.EmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	}
}

func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max < 3 {
		return s[:runeCut(s, max)]
	}
	return s[:runeCut(s, max-3)] + "..."
}

// runeCut moves n back to the start of the rune it falls in.
func runeCut(s string, n int) int {
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return n
}
