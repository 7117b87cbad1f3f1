package punch

import "errors"

var (
	ErrInvalidKind   = errors.New("invalid check choice")
	ErrUserIDMissing = errors.New("punch has no owner")
)
