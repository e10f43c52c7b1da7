package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/httpresp"
	"github.com/navalhaclub/booking-api/internal/middleware"
	"github.com/navalhaclub/booking-api/internal/models"
	appointmentuc "github.com/navalhaclub/booking-api/internal/usecase/appointment"
)

// BookingHandler expõe o catálogo da barbearia e o fluxo de agendamento.
type BookingHandler struct {
	db           *gorm.DB
	availability *appointmentuc.GetAvailability
	create       *appointmentuc.CreateAppointment
}

func NewBookingHandler(
	db *gorm.DB,
	availability *appointmentuc.GetAvailability,
	create *appointmentuc.CreateAppointment,
) *BookingHandler {
	return &BookingHandler{
		db:           db,
		availability: availability,
		create:       create,
	}
}

// ======================================================
// CATÁLOGO
// ======================================================

// GET /api/catalog/services — serviços ativos, do mais barato ao mais caro.
func (h *BookingHandler) ListServices(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var services []models.Service
	if err := h.db.
		Where("barbershop_id = ? AND active = ?", barbershopID, true).
		Order("price ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "Não foi possível listar os serviços.")
		return
	}

	httpresp.List(c, services)
}

// GET /api/catalog/barbers — barbeiros ativos, melhor avaliado primeiro.
func (h *BookingHandler) ListBarbers(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var barbers []models.Barber
	if err := h.db.
		Where("barbershop_id = ? AND active = ?", barbershopID, true).
		Order("rating DESC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "internal_error", "Não foi possível listar os barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

// ======================================================
// DISPONIBILIDADE
// ======================================================

// GET /api/availability?barber_id=&date=&service_id=
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	barberID, err := strconv.ParseUint(c.Query("barber_id"), 10, 64)
	if err != nil || barberID == 0 {
		httperr.BadRequest(c, "invalid_barber_id", "Informe um barber_id válido.")
		return
	}

	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "Informe a data no formato YYYY-MM-DD.")
		return
	}

	var serviceID uint64
	if raw := c.Query("service_id"); raw != "" {
		serviceID, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_service_id", "Informe um service_id válido.")
			return
		}
	}

	slots, err := h.availability.Execute(c.Request.Context(), appointmentuc.AvailabilityInput{
		BarbershopID: barbershopID,
		BarberID:     uint(barberID),
		ServiceID:    uint(serviceID),
		Date:         date,
	})
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":  date,
		"slots": slots,
	})
}

// ======================================================
// AGENDAMENTO
// ======================================================

type CreateAppointmentRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

// POST /api/appointments
func (h *BookingHandler) CreateAppointment(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), appointmentuc.CreateAppointmentInput{
		ClientID:     clientID,
		BarbershopID: barbershopID,
		BarberID:     req.BarberID,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
	})
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// mapScheduleError traduz os códigos de negócio do motor de agendamento
// para respostas HTTP.
func mapScheduleError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro inesperado ao processar o agendamento.")
		return
	}

	switch code {
	case httperr.CodeSlotConflict:
		httperr.Conflict(c, code, "Este horário acabou de ser reservado. Escolha outro horário.")
	case httperr.CodeInvalidDate:
		httperr.BadRequest(c, code, "Data ou horário inválido para agendamento.")
	case httperr.CodeDataUnavailable:
		httperr.Unavailable(c, code, "Não foi possível consultar a agenda. Tente novamente.")
	case httperr.CodeCancellationWindow:
		httperr.BadRequest(c, code, "O cancelamento só é permitido com mais de 24 horas de antecedência.")
	case httperr.CodeInvalidState:
		httperr.BadRequest(c, code, "O agendamento não está num estado que permita esta operação.")
	case "barbershop_not_found", "barber_not_found", "service_not_found":
		httperr.NotFound(c, code, "Recurso não encontrado.")
	case "appointment_not_found":
		httperr.NotFound(c, code, "Agendamento não encontrado.")
	default:
		httperr.BadRequest(c, code, "Requisição inválida.")
	}
}
