package punch

import "errors"

var (
	ErrInvalidEntryKey = errors.New("invalid entry key, expected {employeeId}_{yyyy-MM-dd}")
	ErrPunchNotFound   = errors.New("punch event not found")
)
