package stats

import (
	"errors"
	"fmt"
)

var ErrNoPunches = errors.New("user has no checks")

// NoPunchesError reports a user without any recorded punch.
type NoPunchesError struct {
	UserID string
}

func (e *NoPunchesError) Error() string {
	return fmt.Sprintf("User %s has no checks", e.UserID)
}

func (e *NoPunchesError) Is(target error) bool {
	return target == ErrNoPunches
}
