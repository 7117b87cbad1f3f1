package cron

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/stats"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/worktime"
)

// StatsJobs keeps the cached team ratio warm so that requests after an
// invalidation do not all recompute it.
type StatsJobs struct {
	statsService stats.StatsService
	interval     time.Duration
}

func NewStatsJobs(statsService stats.StatsService, interval time.Duration) *StatsJobs {
	return &StatsJobs{
		statsService: statsService,
		interval:     interval,
	}
}

func (j *StatsJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("warm_team_ratio", j.interval, j.WarmTeamRatio)
}

// WarmTeamRatio recomputes the team ratio and stores it in the cache, even
// when a value is already cached. A team without working hours is not an
// error here.
func (j *StatsJobs) WarmTeamRatio(ctx context.Context) error {
	if _, err := j.statsService.RefreshTeamRatio(ctx); err != nil && !errors.Is(err, worktime.ErrNoWorkingHours) {
		return fmt.Errorf("warm team ratio: %w", err)
	}
	return nil
}
