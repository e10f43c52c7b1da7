package appointment_test

import (
	"context"
	"errors"
	"time"

	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/models"
)

// fixedClock congela o "agora" dos testes.
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

var errRepoDown = errors.New("repository unreachable")

// fakeRepo implementa schedule.Repository em memória, reproduzindo o índice
// único parcial do Postgres em CreateAppointment.
type fakeRepo struct {
	shops    map[uint]*models.Barbershop
	barbers  map[uint]*models.Barber
	services map[uint]*models.Service

	appointments []*models.Appointment
	nextID       uint

	lookupDown bool
	listDown   bool
	createDown bool
	updateDown bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shops: map[uint]*models.Barbershop{
			1: {
				ID:              1,
				Name:            "Navalha Club",
				Slug:            "navalha-club",
				Timezone:        "America/Sao_Paulo",
				OpenTime:        "09:00",
				CloseTime:       "18:00",
				SlotIntervalMin: 30,
			},
		},
		barbers: map[uint]*models.Barber{
			7: {ID: 7, BarbershopID: 1, Name: "Rafael", Active: true},
		},
		services: map[uint]*models.Service{
			3: {ID: 3, BarbershopID: 1, Name: "Corte", Price: 50, DurationMinutes: 30, Active: true},
			4: {ID: 4, BarbershopID: 1, Name: "Corte + Barba", Price: 80, DurationMinutes: 60, Active: true},
		},
		nextID: 1,
	}
}

func (r *fakeRepo) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	if r.lookupDown {
		return nil, errRepoDown
	}
	shop, ok := r.shops[id]
	if !ok {
		return nil, schedule.ErrNotFound
	}
	return shop, nil
}

func (r *fakeRepo) GetBarber(_ context.Context, barbershopID, barberID uint) (*models.Barber, error) {
	if r.lookupDown {
		return nil, errRepoDown
	}
	b, ok := r.barbers[barberID]
	if !ok || b.BarbershopID != barbershopID {
		return nil, schedule.ErrNotFound
	}
	return b, nil
}

func (r *fakeRepo) GetService(_ context.Context, barbershopID, serviceID uint) (*models.Service, error) {
	if r.lookupDown {
		return nil, errRepoDown
	}
	s, ok := r.services[serviceID]
	if !ok || s.BarbershopID != barbershopID {
		return nil, schedule.ErrNotFound
	}
	return s, nil
}

func (r *fakeRepo) ListBookedSlots(
	_ context.Context,
	barberID uint,
	date string,
	statuses []schedule.Status,
) ([]schedule.BookedSlot, error) {

	if r.listDown {
		return nil, errRepoDown
	}

	active := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		active[string(s)] = true
	}

	var booked []schedule.BookedSlot
	for _, ap := range r.appointments {
		if ap.BarberID != barberID || ap.Date != date || !active[ap.Status] {
			continue
		}
		duration := 30
		if svc, ok := r.services[ap.ServiceID]; ok {
			duration = svc.DurationMinutes
		}
		booked = append(booked, schedule.BookedSlot{
			Time:            ap.Time,
			DurationMinutes: duration,
		})
	}
	return booked, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if r.createDown {
		return errRepoDown
	}

	for _, existing := range r.appointments {
		if existing.BarberID != ap.BarberID || existing.Date != ap.Date || existing.Time != ap.Time {
			continue
		}
		switch schedule.Status(existing.Status) {
		case schedule.StatusConfirmed, schedule.StatusInProgress:
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
	}

	ap.ID = r.nextID
	r.nextID++
	r.appointments = append(r.appointments, ap)
	return nil
}

func (r *fakeRepo) GetAppointmentForClient(_ context.Context, appointmentID, clientID uint) (*models.Appointment, error) {
	if r.lookupDown {
		return nil, errRepoDown
	}
	for _, ap := range r.appointments {
		if ap.ID == appointmentID && ap.ClientID == clientID {
			return ap, nil
		}
	}
	return nil, schedule.ErrNotFound
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if r.updateDown {
		return errRepoDown
	}
	for i, existing := range r.appointments {
		if existing.ID == ap.ID {
			r.appointments[i] = ap
			return nil
		}
	}
	return errRepoDown
}

func (r *fakeRepo) ListAppointmentsForClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	if r.listDown {
		return nil, errRepoDown
	}
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

var _ schedule.Repository = (*fakeRepo)(nil)
