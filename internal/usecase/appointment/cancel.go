package appointment

import (
	"context"

	"github.com/navalhaclub/booking-api/internal/audit"
	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/models"
	"github.com/navalhaclub/booking-api/internal/timezone"
)

type CancelAppointment struct {
	repo  schedule.Repository
	cache SlotCache
	clock schedule.Clock
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo schedule.Repository,
	cache SlotCache,
	clock schedule.Clock,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		cache: cache,
		clock: clock,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	clientID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForClient(ctx, appointmentID, clientID)
	if err != nil {
		return nil, lookupError(err, "appointment_not_found")
	}

	shop, err := uc.repo.GetBarbershopByID(ctx, ap.BarbershopID)
	if err != nil {
		return nil, lookupError(err, "barbershop_not_found")
	}

	loc := timezone.Location(shop.Timezone)
	startsAt, err := schedule.CombineDateTime(ap.Date, ap.Time, loc)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	// A política é revalidada aqui, no commit — a checagem feita na tela
	// pode ter envelhecido.
	now := uc.clock.Now().In(loc)
	if err := schedule.Cancel(ap, startsAt, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeDataUnavailable)
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, ap.BarberID, ap.Date)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: ap.BarbershopID,
		ClientID:     &clientID,
		Action:       "appointment_cancelled",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}

// IsCancellable responde a checagem de tela sem efeito colateral.
func (uc *CancelAppointment) IsCancellable(shop *models.Barbershop, ap *models.Appointment) bool {
	loc := timezone.Location(shop.Timezone)
	startsAt, err := schedule.CombineDateTime(ap.Date, ap.Time, loc)
	if err != nil {
		return false
	}
	return schedule.CanCancel(schedule.Status(ap.Status), startsAt, uc.clock.Now().In(loc))
}
