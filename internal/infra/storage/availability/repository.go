package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarbershopService/pkg/psqlbuilder"
)

const tableName = "barber_availability"

var availabilityColumns = []string{
	"id",
	"barber_id",
	"date",
	"start_time",
	"end_time",
	"is_available",
	"created_at",
	"updated_at",
}

// Repository репозиторий окон доступности барберов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBarberAndDate возвращает окно барбера на дату.
// Если барбер не отмечал этот день, возвращается ErrAvailabilityNotFound.
func (r *Repository) GetByBarberAndDate(ctx context.Context, barberID uuid.UUID, date time.Time) (*domain.BarberAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(availabilityColumns...).
		From(tableName).
		Where(squirrel.Eq{
			"barber_id": barberID,
			"date":      date.Format(domain.DateFormat),
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberAndDate - build select query: %v", ErrBuildQuery, err)
	}

	availability, err := scanAvailability(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberAndDate - scan availability: %v", ErrScanRow, err)
	}

	return availability, nil
}

// ListByDate возвращает окна всех барберов на дату
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.BarberAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(availabilityColumns...).
		From(tableName).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BarberAvailability, 0)
	for rows.Next() {
		availability, err := scanAvailability(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByDate - scan row: %v", ErrScanRow, err)
		}
		result = append(result, availability)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDate - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Upsert создает или обновляет окно барбера на дату.
// Уникальность пары (barber_id, date) обеспечивается индексом, поэтому запись всегда одна.
func (r *Repository) Upsert(ctx context.Context, availability *domain.BarberAvailability) (*domain.BarberAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if availability.ID == uuid.Nil {
		availability.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("id", "barber_id", "date", "start_time", "end_time", "is_available").
		Values(
			availability.ID,
			availability.BarberID,
			availability.Date.Format(domain.DateFormat),
			availability.StartTime,
			availability.EndTime,
			availability.IsAvailable,
		).
		Suffix(`ON CONFLICT (barber_id, date) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			is_available = EXCLUDED.is_available,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&availability.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	availability.CreatedAt = createdAt.Time
	availability.UpdatedAt = updatedAt.Time

	return availability, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAvailability(row rowScanner) (*domain.BarberAvailability, error) {
	var (
		availability         domain.BarberAvailability
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&availability.ID,
		&availability.BarberID,
		&availability.Date,
		&availability.StartTime,
		&availability.EndTime,
		&availability.IsAvailable,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	availability.CreatedAt = createdAt.Time
	availability.UpdatedAt = updatedAt.Time

	return &availability, nil
}
