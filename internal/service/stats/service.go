package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/punch"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/stats"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/worktime"
	"github.com/google/uuid"
)

type StatsServiceImpl struct {
	user.UserRepository
	punch.PunchRepository
	calc  *worktime.Calculator
	cache stats.Cache
}

func NewStatsService(
	userRepository user.UserRepository,
	punchRepository punch.PunchRepository,
	calc *worktime.Calculator,
	cache stats.Cache,
) stats.StatsService {
	return &StatsServiceImpl{
		UserRepository:  userRepository,
		PunchRepository: punchRepository,
		calc:            calc,
		cache:           cache,
	}
}

// Hours implements stats.StatsService.
func (s *StatsServiceImpl) Hours(ctx context.Context, req stats.HoursRequest) (stats.HoursResponse, error) {
	times, err := s.userPunches(ctx, req.UserID)
	if err != nil {
		return stats.HoursResponse{}, err
	}

	window, err := req.Window()
	if err != nil {
		return stats.HoursResponse{}, err
	}

	tally := s.calc.HoursForWindow(window, times)
	return stats.HoursResponse{
		HoursWorked: tally.HoursWorked,
		HoursLeft:   tally.HoursLeft,
	}, nil
}

// AverageTimes implements stats.StatsService.
func (s *StatsServiceImpl) AverageTimes(ctx context.Context, userID string) (stats.AverageTimesResponse, error) {
	times, err := s.userPunches(ctx, userID)
	if err != nil {
		return stats.AverageTimesResponse{}, err
	}

	avg, err := s.calc.AverageTimes(times)
	if err != nil {
		return stats.AverageTimesResponse{}, err
	}
	return stats.AverageTimesResponse{
		AverageArrival: avg.Arrival,
		AverageLeave:   avg.Leave,
	}, nil
}

// TeamRatio implements stats.StatsService.
func (s *StatsServiceImpl) TeamRatio(ctx context.Context) (stats.TeamRatioResponse, error) {
	cached, ok, err := s.cache.GetTeamRatio(ctx)
	if err != nil {
		slog.Warn("failed to read stats cache", "error", err)
	}
	if ok {
		return stats.TeamRatioResponse{LeaveToWorkRatio: cached}, nil
	}
	return s.RefreshTeamRatio(ctx)
}

// RefreshTeamRatio implements stats.StatsService.
func (s *StatsServiceImpl) RefreshTeamRatio(ctx context.Context) (stats.TeamRatioResponse, error) {
	// Read before the punches so that a punch saved after this point
	// advances the generation and the result below is not cached.
	generation, genErr := s.cache.Generation(ctx)
	if genErr != nil {
		slog.Warn("failed to read stats cache generation", "error", genErr)
	}

	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return stats.TeamRatioResponse{}, fmt.Errorf("list team: %w", err)
	}

	team := make([]string, 0, len(users))
	punches := make(map[string][]time.Time, len(users))
	for _, u := range users {
		list, err := s.PunchRepository.ListByUser(ctx, u.ID)
		if err != nil {
			return stats.TeamRatioResponse{}, fmt.Errorf("list punches of %s: %w", u.ID, err)
		}
		team = append(team, u.ID)
		punches[u.ID] = punch.Timestamps(list)
	}

	ratio, err := s.calc.TeamRatio(team, func(userID string) []time.Time {
		return punches[userID]
	})
	if err != nil {
		return stats.TeamRatioResponse{}, err
	}

	formatted := worktime.FormatRatio(ratio)
	if genErr == nil {
		stored, err := s.cache.SetTeamRatio(ctx, formatted, generation)
		if err != nil {
			slog.Warn("failed to write stats cache", "error", err)
		} else if !stored {
			slog.Debug("team ratio not cached, punches changed while computing", "generation", generation)
		}
	}
	return stats.TeamRatioResponse{LeaveToWorkRatio: formatted}, nil
}

// userPunches returns the ordered punch times of an existing user that has
// at least one punch.
func (s *StatsServiceImpl) userPunches(ctx context.Context, userID string) ([]time.Time, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, user.ErrUserNotFound
	}

	if _, err := s.UserRepository.GetByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	list, err := s.PunchRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list punches: %w", err)
	}
	if len(list) == 0 {
		return nil, &stats.NoPunchesError{UserID: userID}
	}
	return punch.Timestamps(list), nil
}
