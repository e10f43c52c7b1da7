package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/navalhaclub/booking-api/internal/audit"
	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/models"
	"github.com/navalhaclub/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID     uint
	BarbershopID uint
	BarberID     uint
	ServiceID    uint

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  schedule.Repository
	cache SlotCache
	clock schedule.Clock
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo schedule.Repository,
	cache SlotCache,
	clock schedule.Clock,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		cache: cache,
		clock: clock,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, lookupError(err, "barbershop_not_found")
	}

	loc := timezone.Location(shop.Timezone)

	if _, err := schedule.CombineDateTime(in.Date, in.Time, loc); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	// Sem reserva retroativa: a data precisa ser hoje ou futura.
	apDate, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}
	now := uc.clock.Now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if apDate.Before(today) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarbershopID, in.BarberID); err != nil {
		return nil, lookupError(err, "barber_not_found")
	}

	if _, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID); err != nil {
		return nil, lookupError(err, "service_not_found")
	}

	ap := &models.Appointment{
		BarbershopID: in.BarbershopID,
		BarberID:     in.BarberID,
		ClientID:     in.ClientID,
		ServiceID:    in.ServiceID,
		Date:         in.Date,
		Time:         schedule.NormalizeTime(in.Time),
		Status:       string(schedule.InitialStatus()),
		QRCode:       uuid.NewString(),
		Notes:        in.Notes,
	}

	// O índice único do armazém arbitra corridas: quem perde recebe
	// slot_conflict e deve reconsultar a grade, nunca assumir a visão local.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotConflict) {
			return nil, err
		}
		return nil, httperr.ErrBusiness(httperr.CodeDataUnavailable)
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.BarberID, in.Date)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		ClientID:     &in.ClientID,
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
