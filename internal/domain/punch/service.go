package punch

import "context"

type PunchService interface {
	// Check records a punch for the user at the current time. Its kind
	// follows from the number of punches the user already has today.
	Check(ctx context.Context, req CheckRequest) (PunchResponse, error)
}
