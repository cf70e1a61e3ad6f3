package punch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntryKey(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		employeeID string
		date       string
		wantErr    bool
	}{
		{
			name:       "plain id",
			key:        "abc123_2025-01-15",
			employeeID: "abc123",
			date:       "2025-01-15",
		},
		{
			name:       "employee id containing underscores",
			key:        "emp_001_2025-01-15",
			employeeID: "emp_001",
			date:       "2025-01-15",
		},
		{name: "missing date", key: "emp_001_", wantErr: true},
		{name: "missing employee", key: "_2025-01-15", wantErr: true},
		{name: "no separator", key: "emp0012025-01-15", wantErr: true},
		{name: "bad date", key: "emp_001_2025-13-40", wantErr: true},
		{name: "empty", key: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseEntryKey(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidEntryKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.employeeID, parsed.EmployeeID)
			assert.Equal(t, tt.date, parsed.Date.Format("2006-01-02"))
			assert.Equal(t, tt.key, parsed.String())
		})
	}
}
