package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/punch"
	"github.com/google/uuid"
)

type punchRepository struct {
	store *Store
}

func (s *Store) Punches() punch.PunchRepository {
	return &punchRepository{store: s}
}

func (r *punchRepository) Create(ctx context.Context, newPunch punch.Punch) (punch.Punch, error) {
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

	_, err := r.store.querier(ctx).ExecContext(ctx, `
		INSERT INTO punches (id, kind, punched_at, user_id)
		VALUES (?, ?, ?, ?)
	`, newPunch.ID, string(newPunch.Kind), formatTimestamp(newPunch.Timestamp), newPunch.UserID)
	if err != nil {
		return punch.Punch{}, fmt.Errorf("insert punch: %w", err)
	}

	newPunch.Timestamp = newPunch.Timestamp.UTC()
	return newPunch, nil
}

func (r *punchRepository) ListByUser(ctx context.Context, userID string) ([]punch.Punch, error) {
	rows, err := r.store.querier(ctx).QueryContext(ctx, `
		SELECT id, kind, punched_at, user_id
		FROM punches
		WHERE user_id = ?
		ORDER BY punched_at, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var (
			p         punch.Punch
			kind      string
			punchedAt string
		)
		if err := rows.Scan(&p.ID, &kind, &punchedAt, &p.UserID); err != nil {
			return nil, fmt.Errorf("scan punch: %w", err)
		}
		p.Kind = punch.Kind(kind)
		if p.Timestamp, err = parseTimestamp(punchedAt); err != nil {
			return nil, fmt.Errorf("parse punched_at: %w", err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list punches: %w", err)
	}
	return punches, nil
}

func (r *punchRepository) CountByUserBetween(ctx context.Context, userID string, from, to time.Time) (int, error) {
	var count int
	err := r.store.querier(ctx).QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM punches
		WHERE user_id = ? AND punched_at >= ? AND punched_at < ?
	`, userID, formatTimestamp(from), formatTimestamp(to)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count punches: %w", err)
	}
	return count, nil
}
