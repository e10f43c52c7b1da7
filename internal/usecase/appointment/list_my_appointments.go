package appointment

import (
	"context"

	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/dto"
	"github.com/navalhaclub/booking-api/internal/models"
	"github.com/navalhaclub/booking-api/internal/timezone"
)

type ListMyAppointments struct {
	repo  schedule.Repository
	clock schedule.Clock
}

func NewListMyAppointments(repo schedule.Repository, clock schedule.Clock) *ListMyAppointments {
	return &ListMyAppointments{repo: repo, clock: clock}
}

func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	clientID uint,
) ([]dto.AppointmentDetailDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	shops := map[uint]*models.Barbershop{}

	out := make([]dto.AppointmentDetailDTO, 0, len(appointments))
	for _, ap := range appointments {
		cancellable := false

		shop, ok := shops[ap.BarbershopID]
		if !ok {
			shop, err = uc.repo.GetBarbershopByID(ctx, ap.BarbershopID)
			if err != nil {
				shop = nil
			}
			shops[ap.BarbershopID] = shop
		}

		if shop != nil {
			loc := timezone.Location(shop.Timezone)
			if startsAt, err := schedule.CombineDateTime(ap.Date, ap.Time, loc); err == nil {
				cancellable = schedule.CanCancel(
					schedule.Status(ap.Status),
					startsAt,
					uc.clock.Now().In(loc),
				)
			}
		}

		out = append(out, dto.AppointmentDetailDTO{
			ID:              ap.ID,
			Date:            ap.Date,
			Time:            ap.Time,
			Status:          ap.Status,
			Notes:           ap.Notes,
			QRCode:          ap.QRCode,
			ServiceName:     ap.Service.Name,
			ServicePrice:    ap.Service.Price,
			DurationMinutes: ap.Service.DurationMinutes,
			BarberName:      ap.Barber.Name,
			BarberPhotoURL:  ap.Barber.PhotoURL,
			Cancellable:     cancellable,
		})
	}

	return out, nil
}
