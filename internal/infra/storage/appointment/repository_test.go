package appointment

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func testAppointment() *domain.Appointment {
	service := domain.ServiceHaircut
	return &domain.Appointment{
		CustomerName:  "John Doe",
		CustomerEmail: "john@example.com",
		CustomerPhone: "+4512345678",
		BarberID:      uuid.MustParse("8d3c9b52-6f0e-4a57-9a0f-0c8f1c1d2e3f"),
		ServiceType:   &service,
		Date:          time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:          "10:30",
		Status:        domain.StatusConfirmed,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	appointment := testAppointment()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WithArgs(sqlmock.AnyArg(), "John Doe", "john@example.com", "+4512345678",
			appointment.BarberID, "haircut", "2025-03-10", "10:30", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), appointment)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_UniqueViolation(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WillReturnError(&pq.Error{Code: pqUniqueViolation, Message: "duplicate key value"})

	_, err := repo.Create(context.Background(), testAppointment())
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.True(t, IsConflict(err))
}

func TestRepository_Create_OtherError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), testAppointment())
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.False(t, IsConflict(err))
}

func TestRepository_GetBookedTimes(t *testing.T) {
	repo, mock := newRepo(t)
	barberID := uuid.New()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT appointment_time FROM appointments WHERE appointment_date = $1 AND barber_id = $2 AND status = $3 ORDER BY appointment_time ASC")).
		WithArgs("2025-03-10", barberID, "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"appointment_time"}).
			AddRow("09:00:00").
			AddRow(time.Date(0, 1, 1, 13, 30, 0, 0, time.UTC)))

	times, err := repo.GetBookedTimes(context.Background(), barberID, date, domain.StatusConfirmed)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00", "13:30"}, times)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetBookedTimes_LocksInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY appointment_time ASC FOR UPDATE")).
		WillReturnRows(sqlmock.NewRows([]string{"appointment_time"}))
	mock.ExpectCommit()

	tx, err := dbmetrics.Wrap(db, nil).BeginTx(context.Background(), nil)
	require.NoError(t, err)

	ctx := dbmetrics.WithTx(context.Background(), tx)
	times, err := repo.GetBookedTimes(ctx, uuid.New(), time.Now(), domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Empty(t, times)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetBookedTimes_SerializationFailure(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT appointment_time FROM appointments")).
		WillReturnError(&pq.Error{Code: "40001"})

	_, err := repo.GetBookedTimes(context.Background(), uuid.New(), time.Now(), domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.True(t, IsConflict(err))

	var pqErr *pq.Error
	assert.ErrorAs(t, err, &pqErr)
}

func TestRepository_GetByID_LocksInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE id = $1 FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(appointmentColumns).AddRow(
			id.String(), "Jane", "jane@example.com", "0123456789", uuid.NewString(),
			nil, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), "15:00:00", "confirmed", now, now,
		))
	mock.ExpectCommit()

	tx, err := dbmetrics.Wrap(db, nil).BeginTx(context.Background(), nil)
	require.NoError(t, err)

	got, err := repo.GetByID(dbmetrics.WithTx(context.Background(), tx), id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newRepo(t)
	id := uuid.New()
	barberID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(appointmentColumns).AddRow(
			id.String(), "Jane", "jane@example.com", "0123456789", barberID.String(),
			nil, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), "15:00:00", "completed", now, now,
		))

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, barberID, got.BarberID)
	assert.Nil(t, got.ServiceType)
	assert.Equal(t, types.TimeString("15:00"), got.Time)
	assert.Equal(t, domain.StatusCompleted, got.Status)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE id = $1")).
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_List_Filter(t *testing.T) {
	repo, mock := newRepo(t)
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	status := domain.StatusConfirmed

	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE appointment_date >= $1 AND status = $2 ORDER BY appointment_date ASC, appointment_time ASC")).
		WithArgs("2025-03-10", "confirmed").
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	list, err := repo.List(context.Background(), domain.AppointmentsFilter{FromDate: &from, Status: &status})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments SET status = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs("cancelled", id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), id, domain.StatusCancelled))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments")).
		WillReturnResult(driver.RowsAffected(0))

	err := repo.UpdateStatus(context.Background(), uuid.New(), domain.StatusCancelled)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
