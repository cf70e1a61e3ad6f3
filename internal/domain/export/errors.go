package export

import "errors"

var (
	ErrDateRangeRequired = errors.New("start_date and end_date are required")
)
