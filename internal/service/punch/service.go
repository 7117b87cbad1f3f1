package punch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/punch"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/stats"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/worktime"
)

type PunchServiceImpl struct {
	tx database.Transactor
	user.UserRepository
	punch.PunchRepository
	calc  *worktime.Calculator
	cache stats.Cache
	now   func() time.Time
}

// NewPunchService builds the punch service. now defaults to time.Now.
func NewPunchService(
	tx database.Transactor,
	userRepository user.UserRepository,
	punchRepository punch.PunchRepository,
	calc *worktime.Calculator,
	cache stats.Cache,
	now func() time.Time,
) punch.PunchService {
	if now == nil {
		now = time.Now
	}
	return &PunchServiceImpl{
		tx:              tx,
		UserRepository:  userRepository,
		PunchRepository: punchRepository,
		calc:            calc,
		cache:           cache,
		now:             now,
	}
}

// Check implements punch.PunchService.
func (s *PunchServiceImpl) Check(ctx context.Context, req punch.CheckRequest) (punch.PunchResponse, error) {
	if req.UserID == "" {
		return punch.PunchResponse{}, punch.ErrUserIDMissing
	}
	now := s.now()

	var (
		owner   user.User
		created punch.Punch
	)
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		// Concurrent checks of one user must not both see the same count.
		if err := s.UserRepository.LockForUpdate(ctx, req.UserID); err != nil {
			return err
		}

		var err error
		owner, err = s.UserRepository.GetByID(ctx, req.UserID)
		if err != nil {
			return err
		}

		dayStart, nextDay := s.calc.DayBounds(now)
		count, err := s.PunchRepository.CountByUserBetween(ctx, req.UserID, dayStart, nextDay)
		if err != nil {
			return err
		}

		created, err = s.PunchRepository.Create(ctx, punch.Punch{
			Kind:      punch.KindForCount(count),
			Timestamp: now,
			UserID:    req.UserID,
		})
		return err
	})
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("record punch: %w", err)
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate stats cache", "error", err)
	}

	return punch.NewPunchResponse(created, owner, s.calc.Location()), nil
}
