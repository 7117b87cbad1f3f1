package vacation

import "context"

type VacationRepository interface {
	Create(ctx context.Context, newVacation Vacation) (Vacation, error)
	// ListByUser returns every vacation the user ever took, oldest first.
	ListByUser(ctx context.Context, userID string) ([]Vacation, error)
}
