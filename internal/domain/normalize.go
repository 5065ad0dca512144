package domain

import "strings"

// NormalizeText prepares word text for storage and duplicate detection:
// lowercased, trimmed, and with internal whitespace runs collapsed to a
// single space.
func NormalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
