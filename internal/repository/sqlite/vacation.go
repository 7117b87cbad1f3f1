package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/vacation"
	"github.com/google/uuid"
)

type vacationRepository struct {
	store *Store
}

func (s *Store) Vacations() vacation.VacationRepository {
	return &vacationRepository{store: s}
}

func (r *vacationRepository) Create(ctx context.Context, newVacation vacation.Vacation) (vacation.Vacation, error) {
	if newVacation.UserID == "" {
		return vacation.Vacation{}, vacation.ErrUserIDMissing
	}
	if newVacation.StartDate.After(newVacation.EndDate) {
		return vacation.Vacation{}, vacation.ErrInvalidDateRange
	}
	if newVacation.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return vacation.Vacation{}, fmt.Errorf("generate vacation id: %w", err)
		}
		newVacation.ID = id.String()
	}

	_, err := r.store.querier(ctx).ExecContext(ctx, `
		INSERT INTO vacations (id, start_date, end_date, user_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		newVacation.ID,
		formatDate(newVacation.StartDate),
		formatDate(newVacation.EndDate),
		newVacation.UserID,
		formatTimestamp(time.Now()),
	)
	if err != nil {
		return vacation.Vacation{}, fmt.Errorf("insert vacation: %w", err)
	}
	return newVacation, nil
}

func (r *vacationRepository) ListByUser(ctx context.Context, userID string) ([]vacation.Vacation, error) {
	rows, err := r.store.querier(ctx).QueryContext(ctx, `
		SELECT id, start_date, end_date, user_id
		FROM vacations
		WHERE user_id = ?
		ORDER BY start_date, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list vacations: %w", err)
	}
	defer rows.Close()

	var vacations []vacation.Vacation
	for rows.Next() {
		var (
			v          vacation.Vacation
			start, end string
		)
		if err := rows.Scan(&v.ID, &start, &end, &v.UserID); err != nil {
			return nil, fmt.Errorf("scan vacation: %w", err)
		}
		if v.StartDate, err = parseDate(start); err != nil {
			return nil, fmt.Errorf("parse start_date: %w", err)
		}
		if v.EndDate, err = parseDate(end); err != nil {
			return nil, fmt.Errorf("parse end_date: %w", err)
		}
		vacations = append(vacations, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vacations: %w", err)
	}
	return vacations, nil
}
