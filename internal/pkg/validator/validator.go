package validator

import (
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// clockValueLayouts are the accepted shapes for manual punch
// corrections: a time of day, or a full local datetime.
var clockValueLayouts = []string{
	"15:04",
	"15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseClockValue parses a punch correction value using the accepted
// layouts. The returned time carries no timezone; callers anchor it to
// a calendar day in the organization's location.
func ParseClockValue(value string) (time.Time, bool) {
	for _, layout := range clockValueLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsValidClockValue checks whether a string parses as a punch
// correction value.
func IsValidClockValue(value string) bool {
	_, ok := ParseClockValue(value)
	return ok
}

// HasDateComponent reports whether a clock value carries its own
// calendar date (full datetime layouts) rather than only a time of day.
func HasDateComponent(value string) bool {
	return len(value) > len("15:04:05")
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
