package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/punch"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// Create implements punch.PunchRepository.
func (r *punchRepositoryImpl) Create(ctx context.Context, newPunch punch.Punch) (punch.Punch, error) {
	if !newPunch.Kind.IsValid() {
		return punch.Punch{}, punch.ErrInvalidKind
	}
	if newPunch.UserID == "" {
		return punch.Punch{}, punch.ErrUserIDMissing
	}
	if newPunch.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return punch.Punch{}, fmt.Errorf("generate punch id: %w", err)
		}
		newPunch.ID = id.String()
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (id, kind, punched_at, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, kind, punched_at, user_id
	`

	var created punch.Punch
	err := q.QueryRow(ctx, query,
		newPunch.ID,
		string(newPunch.Kind),
		newPunch.Timestamp,
		newPunch.UserID,
	).Scan(
		&created.ID,
		&created.Kind,
		&created.Timestamp,
		&created.UserID,
	)
	if err != nil {
		return punch.Punch{}, fmt.Errorf("insert punch: %w", err)
	}

	return created, nil
}

// ListByUser implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, kind, punched_at, user_id
		FROM punches
		WHERE user_id = $1
		ORDER BY punched_at, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		if err := rows.Scan(&p.ID, &p.Kind, &p.Timestamp, &p.UserID); err != nil {
			return nil, fmt.Errorf("scan punch: %w", err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list punches: %w", err)
	}

	return punches, nil
}

// CountByUserBetween implements punch.PunchRepository.
func (r *punchRepositoryImpl) CountByUserBetween(ctx context.Context, userID string, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM punches
		WHERE user_id = $1 AND punched_at >= $2 AND punched_at < $3
	`, userID, from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count punches: %w", err)
	}
	return count, nil
}
