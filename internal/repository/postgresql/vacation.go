package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type vacationRepositoryImpl struct {
	db *database.DB
}

func NewVacationRepository(db *database.DB) vacation.VacationRepository {
	return &vacationRepositoryImpl{db: db}
}

// Create implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) Create(ctx context.Context, newVacation vacation.Vacation) (vacation.Vacation, error) {
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

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacations (id, start_date, end_date, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, start_date, end_date, user_id
	`

	var created vacation.Vacation
	err := q.QueryRow(ctx, query,
		newVacation.ID,
		newVacation.StartDate,
		newVacation.EndDate,
		newVacation.UserID,
	).Scan(
		&created.ID,
		&created.StartDate,
		&created.EndDate,
		&created.UserID,
	)
	if err != nil {
		return vacation.Vacation{}, fmt.Errorf("insert vacation: %w", err)
	}

	return created, nil
}

// ListByUser implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, start_date, end_date, user_id
		FROM vacations
		WHERE user_id = $1
		ORDER BY start_date, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list vacations: %w", err)
	}
	defer rows.Close()

	var vacations []vacation.Vacation
	for rows.Next() {
		var v vacation.Vacation
		if err := rows.Scan(&v.ID, &v.StartDate, &v.EndDate, &v.UserID); err != nil {
			return nil, fmt.Errorf("scan vacation: %w", err)
		}
		vacations = append(vacations, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vacations: %w", err)
	}

	return vacations, nil
}
