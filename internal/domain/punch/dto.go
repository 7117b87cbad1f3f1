package punch

import (
	"time"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/user"
)

type CheckRequest struct {
	UserID string
}

type PunchResponse struct {
	ID          string         `json:"id"`
	CheckChoice string         `json:"check_choice"`
	CheckTime   string         `json:"check_time"`
	CheckedBy   user.Reference `json:"checked_by"`
}

// NewPunchResponse renders p with its time expressed in loc.
func NewPunchResponse(p Punch, owner user.User, loc *time.Location) PunchResponse {
	return PunchResponse{
		ID:          p.ID,
		CheckChoice: string(p.Kind),
		CheckTime:   p.Timestamp.In(loc).Format(time.RFC3339Nano),
		CheckedBy:   owner.Reference(),
	}
}
