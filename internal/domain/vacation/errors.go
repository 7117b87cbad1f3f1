package vacation

import "errors"

var (
	ErrInvalidDateRange = errors.New("vacation ends before it starts")
	ErrUserIDMissing    = errors.New("vacation has no owner")
)
