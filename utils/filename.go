package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

const dateInputLayout = "2006-01-02"

// SafeFileName makes base usable as a download file name and appends ext.
// Path separators, characters Windows rejects, and control characters become '-'.
func SafeFileName(base, ext string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsControl(r):
			return '-'
		case strings.ContainsRune(`/\:*?"<>|`, r):
			return '-'
		default:
			return r
		}
	}, base)

	cleaned = strings.Trim(strings.TrimSpace(cleaned), ".")
	if cleaned == "" {
		cleaned = "order request"
	}
	return cleaned + ext
}

// ParseSheetDate parses a YYYY-MM-DD date input. An empty input means today.
func ParseSheetDate(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), nil
	}
	t, err := time.ParseInLocation(dateInputLayout, raw, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return t, nil
}
