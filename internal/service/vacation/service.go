package vacation

import (
	"context"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/worktime"
)

type VacationServiceImpl struct {
	tx database.Transactor
	user.UserRepository
	vacation.VacationRepository
	policy worktime.Policy
}

func NewVacationService(
	tx database.Transactor,
	userRepository user.UserRepository,
	vacationRepository vacation.VacationRepository,
	policy worktime.Policy,
) vacation.VacationService {
	return &VacationServiceImpl{
		tx:                 tx,
		UserRepository:     userRepository,
		VacationRepository: vacationRepository,
		policy:             policy,
	}
}

// Request implements vacation.VacationService.
func (s *VacationServiceImpl) Request(ctx context.Context, req vacation.CreateVacationRequest) (vacation.VacationResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.VacationResponse{}, err
	}
	if req.UserID == "" {
		return vacation.VacationResponse{}, vacation.ErrUserIDMissing
	}
	start, end := req.Dates()

	// Reversed or oversized ranges fail without taking the user lock.
	if err := s.policy.ValidateRequest(start, end, nil); err != nil {
		return vacation.VacationResponse{}, err
	}

	var (
		owner   user.User
		created vacation.Vacation
	)
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.UserRepository.LockForUpdate(ctx, req.UserID); err != nil {
			return err
		}

		var err error
		owner, err = s.UserRepository.GetByID(ctx, req.UserID)
		if err != nil {
			return err
		}

		taken, err := s.VacationRepository.ListByUser(ctx, req.UserID)
		if err != nil {
			return err
		}
		if err := s.policy.ValidateRequest(start, end, vacation.Ranges(taken)); err != nil {
			return err
		}

		created, err = s.VacationRepository.Create(ctx, vacation.Vacation{
			StartDate: start,
			EndDate:   end,
			UserID:    req.UserID,
		})
		return err
	})
	if err != nil {
		return vacation.VacationResponse{}, err
	}

	return vacation.NewVacationResponse(created, owner), nil
}
