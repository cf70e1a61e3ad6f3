package punch

import (
	"fmt"
	"strings"
	"time"
)

// EntryKey identifies one employee-day. The external API uses the
// combined "{employeeId}_{date}" string for compatibility; internally
// the key is always the structured form.
type EntryKey struct {
	EmployeeID string
	Date       time.Time // calendar date, midnight UTC
}

// ParseEntryKey parses the "{employeeId}_{date}" composite identifier.
// The date is the trailing yyyy-MM-dd segment; the employee ID may
// itself contain underscores.
func ParseEntryKey(key string) (EntryKey, error) {
	idx := strings.LastIndex(key, "_")
	if idx <= 0 || idx == len(key)-1 {
		return EntryKey{}, fmt.Errorf("%w: %q", ErrInvalidEntryKey, key)
	}

	employeeID := key[:idx]
	date, err := time.Parse("2006-01-02", key[idx+1:])
	if err != nil {
		return EntryKey{}, fmt.Errorf("%w: %q", ErrInvalidEntryKey, key)
	}

	return EntryKey{EmployeeID: employeeID, Date: date}, nil
}

// String renders the key in its external combined form.
func (k EntryKey) String() string {
	return k.EmployeeID + "_" + k.Date.Format("2006-01-02")
}
