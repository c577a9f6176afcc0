package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarbershopService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

const tableName = "appointments"

// Коды ошибок PostgreSQL, означающие гонку за один слот
const (
	pqUniqueViolation      = "23505"
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
)

var appointmentColumns = []string{
	"id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"barber_id",
	"service_type",
	"appointment_date",
	"appointment_time",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// IsConflict сообщает, что ошибка вызвана конкурентной записью на тот же слот.
// Работает как для ошибок INSERT, так и для ошибок фиксации транзакции.
func IsConflict(err error) bool {
	if errors.Is(err, ErrSlotAlreadyBooked) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation, pqSerializationFailure, pqDeadlockDetected:
			return true
		}
	}
	return false
}

// Create сохраняет новую запись.
// Если в контексте есть транзакция, запрос выполняется в ней.
// Уникальный индекс по (barber_id, appointment_date, appointment_time) для статуса confirmed
// гарантирует, что второй клиент получит ErrSlotAlreadyBooked.
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}

	var serviceType *string
	if appointment.ServiceType != nil {
		s := string(*appointment.ServiceType)
		serviceType = &s
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"customer_name",
			"customer_email",
			"customer_phone",
			"barber_id",
			"service_type",
			"appointment_date",
			"appointment_time",
			"status",
		).
		Values(
			appointment.ID,
			appointment.CustomerName,
			appointment.CustomerEmail,
			appointment.CustomerPhone,
			appointment.BarberID,
			serviceType,
			appointment.Date.Format(domain.DateFormat),
			appointment.Time.String(),
			string(appointment.Status),
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if IsConflict(err) {
			return nil, fmt.Errorf("%w: Create - %v", ErrSlotAlreadyBooked, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return appointment, nil
}

// GetByID получает запись по ID.
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы смена статуса
// проверяла переход по актуальному значению.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		if IsConflict(err) {
			return nil, fmt.Errorf("%w: GetByID - %w", ErrSlotAlreadyBooked, err)
		}
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}

	return appointment, nil
}

// GetBookedTimes возвращает время всех записей барбера на дату с указанным статусом.
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы параллельная запись
// на тот же день ждала завершения текущей.
func (r *Repository) GetBookedTimes(ctx context.Context, barberID uuid.UUID, date time.Time, status domain.AppointmentStatus) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("appointment_time").
		From(tableName).
		Where(squirrel.Eq{
			"barber_id":        barberID,
			"appointment_date": date.Format(domain.DateFormat),
			"status":           string(status),
		}).
		OrderBy("appointment_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		// Ошибка сериализации на FOR UPDATE означает, что слот забрала параллельная транзакция
		if IsConflict(err) {
			return nil, fmt.Errorf("%w: GetBookedTimes - %w", ErrSlotAlreadyBooked, err)
		}
		return nil, fmt.Errorf("%w: GetBookedTimes - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: GetBookedTimes - scan time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		if IsConflict(err) {
			return nil, fmt.Errorf("%w: GetBookedTimes - %w", ErrSlotAlreadyBooked, err)
		}
		return nil, fmt.Errorf("%w: GetBookedTimes - rows error: %w", ErrScanRow, err)
	}

	return times, nil
}

// List возвращает записи по фильтру, упорядоченные по дате и времени
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(psqlbuilder.Select(appointmentColumns...).From(tableName), filter).
		OrderBy("appointment_date ASC", "appointment_time ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// Count возвращает количество записей по фильтру
func (r *Repository) Count(ctx context.Context, filter domain.AppointmentsFilter) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(psqlbuilder.Select("COUNT(*)").From(tableName), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateStatus меняет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if IsConflict(err) {
			return fmt.Errorf("%w: UpdateStatus - %v", ErrSlotAlreadyBooked, err)
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func applyFilter(builder squirrel.SelectBuilder, filter domain.AppointmentsFilter) squirrel.SelectBuilder {
	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"appointment_date": filter.Date.Format(domain.DateFormat)})
	}
	if filter.FromDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"appointment_date": filter.FromDate.Format(domain.DateFormat)})
	}
	if filter.BarberID != nil {
		builder = builder.Where(squirrel.Eq{"barber_id": *filter.BarberID})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	return builder
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appointment          domain.Appointment
		serviceType          sql.NullString
		status               string
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&appointment.ID,
		&appointment.CustomerName,
		&appointment.CustomerEmail,
		&appointment.CustomerPhone,
		&appointment.BarberID,
		&serviceType,
		&appointment.Date,
		&appointment.Time,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if serviceType.Valid {
		st := domain.ServiceType(serviceType.String)
		appointment.ServiceType = &st
	}
	appointment.Status = domain.AppointmentStatus(status)
	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return &appointment, nil
}
