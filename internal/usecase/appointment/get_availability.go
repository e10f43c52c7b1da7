package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/timezone"
)

// lookupError separa "não existe" de "não consegui ler": só a ausência real
// vira *_not_found, o resto é indisponibilidade.
func lookupError(err error, notFoundCode string) error {
	if errors.Is(err, schedule.ErrNotFound) {
		return httperr.ErrBusiness(notFoundCode)
	}
	return httperr.ErrBusiness(httperr.CodeDataUnavailable)
}

// ======================================================
// INPUT
// ======================================================

type AvailabilityInput struct {
	BarbershopID uint
	BarberID     uint
	// Opcional; no modo estrito dimensiona o slot pedido.
	ServiceID uint
	Date      string // YYYY-MM-DD
}

// SlotCache é o atalho de leitura da grade resolvida. Implementado em Redis;
// nulo nos testes.
type SlotCache interface {
	Get(ctx context.Context, barberID uint, date string) ([]schedule.Slot, bool)
	Set(ctx context.Context, barberID uint, date string, slots []schedule.Slot)
	Invalidate(ctx context.Context, barberID uint, date string)
}

// ======================================================
// USE CASE
// ======================================================

type GetAvailability struct {
	repo  schedule.Repository
	cache SlotCache
}

func NewGetAvailability(repo schedule.Repository, cache SlotCache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: cache}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]schedule.Slot, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, lookupError(err, "barbershop_not_found")
	}

	loc := timezone.Location(shop.Timezone)
	if _, err := time.ParseInLocation("2006-01-02", in.Date, loc); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarbershopID, in.BarberID); err != nil {
		return nil, lookupError(err, "barber_not_found")
	}

	// O modo estrito depende do serviço pedido, então só a grade padrão é
	// cacheável.
	if !shop.StrictAvailability && uc.cache != nil {
		if slots, ok := uc.cache.Get(ctx, in.BarberID, in.Date); ok {
			return slots, nil
		}
	}

	times, err := schedule.GenerateSlots(shop.OpenTime, shop.CloseTime, shop.SlotIntervalMin)
	if err != nil {
		return nil, err
	}

	booked, err := uc.repo.ListBookedSlots(ctx, in.BarberID, in.Date, schedule.ActiveStatuses())
	if err != nil {
		// Falha de leitura não vira grade vazia: o chamador precisa saber
		// que não há resultado válido.
		return nil, httperr.ErrBusiness(httperr.CodeDataUnavailable)
	}

	if shop.StrictAvailability {
		duration := shop.SlotIntervalMin
		if in.ServiceID != 0 {
			service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
			if err != nil {
				return nil, lookupError(err, "service_not_found")
			}
			duration = service.DurationMinutes
		}
		return schedule.ResolveAvailabilityStrict(times, duration, booked), nil
	}

	slots := schedule.ResolveAvailability(times, schedule.BookedSet(booked))

	if uc.cache != nil {
		uc.cache.Set(ctx, in.BarberID, in.Date, slots)
	}

	return slots, nil
}
