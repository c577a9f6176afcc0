package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/infra/notify"
	appointmentRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarbershopService/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarbershopService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type stubAppointments struct {
	byID       map[uuid.UUID]*domain.Appointment
	list       []*domain.Appointment
	listErr    error
	gotFilter  domain.AppointmentsFilter
	counts     []domain.AppointmentsFilter
	updated    map[uuid.UUID]domain.AppointmentStatus
	updateErr  error
	countValue int
}

func newStubAppointments() *stubAppointments {
	return &stubAppointments{
		byID:    make(map[uuid.UUID]*domain.Appointment),
		updated: make(map[uuid.UUID]domain.AppointmentStatus),
	}
}

func (s *stubAppointments) GetByID(_ context.Context, id uuid.UUID) (*domain.Appointment, error) {
	a, ok := s.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (s *stubAppointments) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	s.gotFilter = filter
	return s.list, s.listErr
}

func (s *stubAppointments) Count(_ context.Context, filter domain.AppointmentsFilter) (int, error) {
	s.counts = append(s.counts, filter)
	s.countValue++
	return s.countValue, nil
}

func (s *stubAppointments) UpdateStatus(_ context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated[id] = status
	return nil
}

type stubBarbers struct {
	barbers   []*domain.Barber
	gotActive *bool
}

func (s *stubBarbers) List(_ context.Context, activeOnly bool) ([]*domain.Barber, error) {
	s.gotActive = &activeOnly
	return s.barbers, nil
}

type stubTx struct{ calls int }

func (s *stubTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	s.calls++
	return fn(ctx)
}

type publishedEvent struct {
	eventType string
	payload   interface{}
}

type stubPublisher struct{ events []publishedEvent }

func (s *stubPublisher) Publish(_ context.Context, eventType string, payload interface{}) {
	s.events = append(s.events, publishedEvent{eventType: eventType, payload: payload})
}

type fixture struct {
	appointments *stubAppointments
	barbers      *stubBarbers
	tx           *stubTx
	publisher    *stubPublisher
	svc          *Service
}

func newFixture() *fixture {
	f := &fixture{
		appointments: newStubAppointments(),
		barbers:      &stubBarbers{},
		tx:           &stubTx{},
		publisher:    &stubPublisher{},
	}
	f.svc = NewService(f.appointments, f.barbers, f.tx, f.publisher, nopLogger{}).
		WithTimeProvider(fixedTime{now: time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)})
	return f
}

func appointment(status domain.AppointmentStatus, barberID uuid.UUID) *domain.Appointment {
	return &domain.Appointment{
		ID:            uuid.New(),
		CustomerName:  "Mads",
		CustomerEmail: "mads@example.com",
		CustomerPhone: "+4512345678",
		BarberID:      barberID,
		Date:          time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		Time:          "10:30",
		Status:        status,
	}
}

func TestService_List(t *testing.T) {
	f := newFixture()
	lars := &domain.Barber{ID: uuid.New(), Name: "Lars", IsActive: false}
	f.barbers.barbers = []*domain.Barber{lars}
	f.appointments.list = []*domain.Appointment{
		appointment(domain.StatusConfirmed, lars.ID),
		appointment(domain.StatusCancelled, uuid.New()),
	}

	resp, err := f.svc.List(context.Background(), &models.ListRequest{
		Date:     ptr.Ptr("2025-03-11"),
		BarberID: ptr.Ptr(lars.ID.String()),
		Status:   ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)

	require.Len(t, resp.Appointments, 2)
	assert.Equal(t, "Lars", resp.Appointments[0].BarberName)
	assert.Empty(t, resp.Appointments[1].BarberName)
	assert.Equal(t, "2025-03-11", resp.Appointments[0].Date)
	assert.Equal(t, "10:30", resp.Appointments[0].Time)

	require.NotNil(t, f.barbers.gotActive)
	assert.False(t, *f.barbers.gotActive, "имена нужны и для неактивных барберов")

	require.NotNil(t, f.appointments.gotFilter.Date)
	assert.Equal(t, "2025-03-11", f.appointments.gotFilter.Date.Format(domain.DateFormat))
	assert.Equal(t, lars.ID, *f.appointments.gotFilter.BarberID)
	assert.Equal(t, domain.StatusConfirmed, *f.appointments.gotFilter.Status)
}

func TestService_List_Errors(t *testing.T) {
	f := newFixture()

	_, err := f.svc.List(context.Background(), &models.ListRequest{Status: ptr.Ptr("no_show")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.List(context.Background(), &models.ListRequest{Date: ptr.Ptr("10.03.2025")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	f.appointments.listErr = errors.New("connection reset")
	_, err = f.svc.List(context.Background(), &models.ListRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_GetByID(t *testing.T) {
	f := newFixture()
	a := appointment(domain.StatusConfirmed, uuid.New())
	f.appointments.byID[a.ID] = a

	resp, err := f.svc.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID.String(), resp.ID)

	_, err = f.svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_UpdateStatus(t *testing.T) {
	f := newFixture()
	a := appointment(domain.StatusConfirmed, uuid.New())
	f.appointments.byID[a.ID] = a

	resp, err := f.svc.UpdateStatus(context.Background(), a.ID, &models.UpdateStatusRequest{Status: "cancelled"})
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, domain.StatusCancelled, f.appointments.updated[a.ID])
	assert.Equal(t, 1, f.tx.calls)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, notify.EventAppointmentStatusChanged, f.publisher.events[0].eventType)
	event, ok := f.publisher.events[0].payload.(models.StatusChangedEvent)
	require.True(t, ok)
	assert.Equal(t, "confirmed", event.OldStatus)
	assert.Equal(t, "cancelled", event.NewStatus)
}

func TestService_UpdateStatus_Errors(t *testing.T) {
	tests := []struct {
		name    string
		current domain.AppointmentStatus
		status  string
		unknown bool
		wantErr error
	}{
		{name: "неизвестный статус", current: domain.StatusConfirmed, status: "no_show", wantErr: ErrInvalidInput},
		{name: "повторное подтверждение", current: domain.StatusConfirmed, status: "confirmed", wantErr: ErrInvalidTransition},
		{name: "отменённую нельзя завершить", current: domain.StatusCancelled, status: "completed", wantErr: ErrInvalidTransition},
		{name: "завершённую нельзя отменить", current: domain.StatusCompleted, status: "cancelled", wantErr: ErrInvalidTransition},
		{name: "запись не найдена", current: domain.StatusConfirmed, status: "cancelled", unknown: true, wantErr: ErrAppointmentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			a := appointment(tt.current, uuid.New())
			f.appointments.byID[a.ID] = a

			id := a.ID
			if tt.unknown {
				id = uuid.New()
			}

			resp, err := f.svc.UpdateStatus(context.Background(), id, &models.UpdateStatusRequest{Status: tt.status})
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.appointments.updated)
			assert.Empty(t, f.publisher.events)
		})
	}
}

func TestService_Stats(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &models.StatsResponse{Total: 1, Today: 2, Upcoming: 3}, resp)

	require.Len(t, f.appointments.counts, 3)
	assert.Equal(t, domain.AppointmentsFilter{}, f.appointments.counts[0])

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, today, *f.appointments.counts[1].Date)
	assert.Equal(t, today.AddDate(0, 0, 1), *f.appointments.counts[2].FromDate)
	assert.Nil(t, f.appointments.counts[2].Status)
}
