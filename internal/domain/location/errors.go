package location

import "errors"

var (
	ErrLocationNotFound = errors.New("work location not found")
)
