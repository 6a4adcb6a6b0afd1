package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeFileName(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"2026-10-16 Truck 12 broadband order request", "2026-10-16 Truck 12 broadband order request.xlsx"},
		{"2026-10-16 Truck/12 broadband order request", "2026-10-16 Truck-12 broadband order request.xlsx"},
		{`a"b\c`, "a-b-c.xlsx"},
		{"line\nbreak", "line-break.xlsx"},
		{"  ..  ", "order request.xlsx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SafeFileName(tt.base, ".xlsx"), "base %q", tt.base)
	}
}

func TestParseSheetDate(t *testing.T) {
	now := time.Date(2026, 10, 16, 15, 4, 5, 0, time.UTC)

	got, err := ParseSheetDate("", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseSheetDate("2026-01-05", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseSheetDate("01/05/2026", now)
	assert.Error(t, err)
}
