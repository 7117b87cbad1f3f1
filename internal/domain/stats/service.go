package stats

import "context"

type StatsService interface {
	// Hours returns the worked and away hours of a user inside one window.
	Hours(ctx context.Context, req HoursRequest) (HoursResponse, error)

	// AverageTimes returns the mean first and last punch of the user's days.
	AverageTimes(ctx context.Context, userID string) (AverageTimesResponse, error)

	// TeamRatio returns the hours away of all users as a percentage of
	// their working hours. A cached value is returned when present.
	TeamRatio(ctx context.Context) (TeamRatioResponse, error)

	// RefreshTeamRatio recomputes the team ratio and stores it in the cache.
	RefreshTeamRatio(ctx context.Context) (TeamRatioResponse, error)
}

// Cache stores the formatted team ratio between punches.
//
// Every Invalidate advances the generation. A ratio computed from data read
// under generation g is stored only while the generation is still g, so a
// punch saved during the computation is never hidden by the older result.
type Cache interface {
	GetTeamRatio(ctx context.Context) (string, bool, error)
	Generation(ctx context.Context) (int64, error)
	SetTeamRatio(ctx context.Context, ratio string, generation int64) (bool, error)
	Invalidate(ctx context.Context) error
}
