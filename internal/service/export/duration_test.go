package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{0, "0h"},
		{30, "0h 30m"},
		{60, "1h"},
		{450, "7h 30m"},
		{480, "8h"},
		{2700, "45h"},
		{2701, "45h 1m"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.minutes))
		})
	}
}
