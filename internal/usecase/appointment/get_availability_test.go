package appointment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/usecase/appointment"
)

func availabilityInput() appointment.AvailabilityInput {
	return appointment.AvailabilityInput{
		BarbershopID: 1,
		BarberID:     7,
		Date:         "2026-09-12",
	}
}

func slotMap(slots []schedule.Slot) map[string]bool {
	m := make(map[string]bool, len(slots))
	for _, s := range slots {
		m[s.Time] = s.Available
	}
	return m
}

func TestGetAvailabilityFullGridWhenEmpty(t *testing.T) {
	repo := newFakeRepo()
	uc := appointment.NewGetAvailability(repo, nil)

	slots, err := uc.Execute(context.Background(), availabilityInput())
	require.NoError(t, err)

	require.Len(t, slots, 18)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "17:30", slots[17].Time)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGetAvailabilityMarksBookedTimes(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, "2026-09-12", "10:00", "confirmado")
	seedAppointment(repo, "2026-09-12", "14:30", "em_atendimento")
	uc := appointment.NewGetAvailability(repo, nil)

	slots, err := uc.Execute(context.Background(), availabilityInput())
	require.NoError(t, err)

	m := slotMap(slots)
	assert.False(t, m["10:00"])
	assert.False(t, m["14:30"])

	available := 0
	for _, s := range slots {
		if s.Available {
			available++
		}
	}
	assert.Equal(t, 16, available)
}

func TestGetAvailabilityIgnoresCancelledAndCompleted(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, "2026-09-12", "11:00", "cancelado")
	seedAppointment(repo, "2026-09-12", "11:30", "concluido")
	uc := appointment.NewGetAvailability(repo, nil)

	slots, err := uc.Execute(context.Background(), availabilityInput())
	require.NoError(t, err)

	m := slotMap(slots)
	assert.True(t, m["11:00"])
	assert.True(t, m["11:30"])
}

func TestGetAvailabilityIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, "2026-09-12", "10:00", "confirmado")
	uc := appointment.NewGetAvailability(repo, nil)

	first, err := uc.Execute(context.Background(), availabilityInput())
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), availabilityInput())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetAvailabilityRepositoryFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.listDown = true
	uc := appointment.NewGetAvailability(repo, nil)

	slots, err := uc.Execute(context.Background(), availabilityInput())
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDataUnavailable))
	assert.Nil(t, slots, "a failed read must not look like an empty grid")
}

func TestGetAvailabilityLookupOutageIsUnavailable(t *testing.T) {
	repo := newFakeRepo()
	repo.lookupDown = true
	uc := appointment.NewGetAvailability(repo, nil)

	// Queda de banco na consulta da barbearia não pode virar 404.
	_, err := uc.Execute(context.Background(), availabilityInput())
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDataUnavailable))
	assert.False(t, httperr.IsBusiness(err, "barbershop_not_found"))
}

func TestGetAvailabilityUnknownBarber(t *testing.T) {
	repo := newFakeRepo()
	uc := appointment.NewGetAvailability(repo, nil)

	in := availabilityInput()
	in.BarberID = 99

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}

func TestGetAvailabilityInvalidDate(t *testing.T) {
	repo := newFakeRepo()
	uc := appointment.NewGetAvailability(repo, nil)

	in := availabilityInput()
	in.Date = "tomorrow"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidDate))
}

func TestGetAvailabilityStrictMode(t *testing.T) {
	repo := newFakeRepo()
	repo.shops[1].StrictAvailability = true
	seedAppointment(repo, "2026-09-12", "10:00", "confirmado")
	uc := appointment.NewGetAvailability(repo, nil)

	// Service 4 lasts 60 minutes: starting at 09:30 would overlap the
	// 10:00 booking.
	in := availabilityInput()
	in.ServiceID = 4

	slots, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	m := slotMap(slots)
	assert.False(t, m["09:30"])
	assert.False(t, m["10:00"])
	assert.True(t, m["09:00"])
	assert.True(t, m["10:30"])
}

func TestGetAvailabilityCacheHitSkipsRepository(t *testing.T) {
	repo := newFakeRepo()
	cache := &stubCache{}
	uc := appointment.NewGetAvailability(repo, cache)

	first, err := uc.Execute(context.Background(), availabilityInput())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	repo.listDown = true
	second, err := uc.Execute(context.Background(), availabilityInput())
	require.NoError(t, err, "cached grid must be served without touching the repository")
	assert.Equal(t, first, second)
}

// stubCache guarda uma única grade em memória.
type stubCache struct {
	slots []schedule.Slot
	sets  int
}

func (c *stubCache) Get(_ context.Context, _ uint, _ string) ([]schedule.Slot, bool) {
	if c.slots == nil {
		return nil, false
	}
	return c.slots, true
}

func (c *stubCache) Set(_ context.Context, _ uint, _ string, slots []schedule.Slot) {
	c.slots = slots
	c.sets++
}

func (c *stubCache) Invalidate(_ context.Context, _ uint, _ string) {
	c.slots = nil
}
