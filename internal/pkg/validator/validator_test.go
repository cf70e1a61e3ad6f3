package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty("  x  "))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-03-14")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())

	_, ok = IsValidDate("14-03-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestParseClockValue(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"09:00", true},
		{"17:30:15", true},
		{"2025-03-14 09:00:00", true},
		{"2025-03-14T09:00:00", true},
		{"9am", false},
		{"25:00", false},
		{"", false},
	}

	for _, tt := range tests {
		_, ok := ParseClockValue(tt.value)
		assert.Equal(t, tt.valid, ok, "value %q", tt.value)
	}
}

func TestHasDateComponent(t *testing.T) {
	assert.False(t, HasDateComponent("09:00"))
	assert.False(t, HasDateComponent("09:00:00"))
	assert.True(t, HasDateComponent("2025-03-14 09:00:00"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "status", Message: "status is required"},
		{Field: "ids", Message: "at least one id is required"},
	}

	assert.Equal(t, "status: status is required; ids: at least one id is required", errs.Error())
	assert.Equal(t, map[string]string{
		"status": "status is required",
		"ids":    "at least one id is required",
	}, errs.ToMap())
}

func TestIsInSlice(t *testing.T) {
	assert.True(t, IsInSlice("csv", []string{"csv", "document"}))
	assert.False(t, IsInSlice("pdf", []string{"csv", "document"}))
}
