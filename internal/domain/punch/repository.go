package punch

import (
	"context"
	"time"
)

type PunchRepository interface {
	Create(ctx context.Context, newPunch Punch) (Punch, error)
	// ListByUser returns the punches of a user ordered by timestamp.
	ListByUser(ctx context.Context, userID string) ([]Punch, error)
	// CountByUserBetween counts punches with from <= timestamp < to.
	CountByUserBetween(ctx context.Context, userID string, from, to time.Time) (int, error)
}
