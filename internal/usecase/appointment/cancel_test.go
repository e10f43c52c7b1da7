package appointment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/models"
	"github.com/navalhaclub/booking-api/internal/usecase/appointment"
)

func seedAppointment(repo *fakeRepo, date, hm, status string) *models.Appointment {
	ap := &models.Appointment{
		ID:           repo.nextID,
		BarbershopID: 1,
		BarberID:     7,
		ClientID:     42,
		ServiceID:    3,
		Date:         date,
		Time:         hm,
		Status:       status,
	}
	repo.nextID++
	repo.appointments = append(repo.appointments, ap)
	return ap
}

func TestCancelOutsideWindowSucceeds(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, "2026-09-12", "10:00", "confirmado")
	uc := appointment.NewCancelAppointment(repo, nil, testClock(t), nil)

	out, err := uc.Execute(context.Background(), 42, ap.ID)
	require.NoError(t, err)

	assert.Equal(t, "cancelado", out.Status)
	require.NotNil(t, out.CancelledAt)
}

func TestCancelWithinWindowFailsAtCommit(t *testing.T) {
	repo := newFakeRepo()
	// 23h before the fixed clock's noon: the UI check may have passed
	// earlier, but commit-time revalidation must reject it.
	ap := seedAppointment(repo, "2026-09-11", "11:00", "confirmado")
	uc := appointment.NewCancelAppointment(repo, nil, testClock(t), nil)

	_, err := uc.Execute(context.Background(), 42, ap.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeCancellationWindow))
	assert.Equal(t, "confirmado", ap.Status)
}

func TestCancelJustPastWindowBoundary(t *testing.T) {
	repo := newFakeRepo()
	// 24h01 ahead of the fixed clock.
	ap := seedAppointment(repo, "2026-09-11", "12:01", "confirmado")
	uc := appointment.NewCancelAppointment(repo, nil, testClock(t), nil)

	_, err := uc.Execute(context.Background(), 42, ap.ID)
	assert.NoError(t, err)
}

func TestCancelRejectsNonConfirmedStatuses(t *testing.T) {
	for _, status := range []string{"em_atendimento", "concluido", "cancelado"} {
		t.Run(status, func(t *testing.T) {
			repo := newFakeRepo()
			ap := seedAppointment(repo, "2026-09-15", "10:00", status)
			uc := appointment.NewCancelAppointment(repo, nil, testClock(t), nil)

			_, err := uc.Execute(context.Background(), 42, ap.ID)
			assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
		})
	}
}

func TestCancelUnknownAppointment(t *testing.T) {
	repo := newFakeRepo()
	uc := appointment.NewCancelAppointment(repo, nil, testClock(t), nil)

	_, err := uc.Execute(context.Background(), 42, 12345)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestCancelOtherClientsAppointment(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, "2026-09-12", "10:00", "confirmado")
	uc := appointment.NewCancelAppointment(repo, nil, testClock(t), nil)

	_, err := uc.Execute(context.Background(), 99, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestCancelRepositoryDownOnUpdate(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, "2026-09-12", "10:00", "confirmado")
	repo.updateDown = true
	uc := appointment.NewCancelAppointment(repo, nil, testClock(t), nil)

	_, err := uc.Execute(context.Background(), 42, ap.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDataUnavailable))
}

func TestListMyAppointmentsCancellableFlag(t *testing.T) {
	repo := newFakeRepo()
	far := seedAppointment(repo, "2026-09-20", "10:00", "confirmado")
	near := seedAppointment(repo, "2026-09-11", "09:00", "confirmado")
	done := seedAppointment(repo, "2026-09-01", "09:00", "concluido")

	uc := appointment.NewListMyAppointments(repo, testClock(t))

	out, err := uc.Execute(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, out, 3)

	byID := map[uint]bool{}
	for _, d := range out {
		byID[d.ID] = d.Cancellable
	}

	assert.True(t, byID[far.ID])
	assert.False(t, byID[near.ID])
	assert.False(t, byID[done.ID])
}
