package vacation

import "context"

type VacationService interface {
	// Request validates the range against the user's allowance and stores it.
	Request(ctx context.Context, req CreateVacationRequest) (VacationResponse, error)
}
