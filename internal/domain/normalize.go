package domain

import (
	"strings"
	"unicode/utf8"
)

// Name length limits, counted in runes.
const (
	MaxParticipantNameLen = 50
	MaxGameNameLen        = 100
)

// NormalizeName prepares a participant or game name for storage by trimming
// leading and trailing whitespace. Inner spacing and case are kept as typed,
// so "Chess" and "chess" stay distinct titles.
func NormalizeName(text string) string {
	return strings.TrimSpace(text)
}

// NameLen returns the length of s in runes.
func NameLen(s string) int {
	return utf8.RuneCountInString(s)
}
