package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/httpresp"
	"github.com/navalhaclub/booking-api/internal/middleware"
	appointmentuc "github.com/navalhaclub/booking-api/internal/usecase/appointment"
)

// AppointmentHandler cobre a agenda do cliente autenticado.
type AppointmentHandler struct {
	list   *appointmentuc.ListMyAppointments
	cancel *appointmentuc.CancelAppointment
}

func NewAppointmentHandler(
	list *appointmentuc.ListMyAppointments,
	cancel *appointmentuc.CancelAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{list: list, cancel: cancel}
}

// GET /api/me/appointments
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	appointments, err := h.list.Execute(c.Request.Context(), clientID)
	if err != nil {
		httperr.Unavailable(c, httperr.CodeDataUnavailable, "Não foi possível consultar seus agendamentos.")
		return
	}

	httpresp.List(c, appointments)
}

// PATCH /api/me/appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || appointmentID == 0 {
		httperr.BadRequest(c, "invalid_appointment_id", "Identificador de agendamento inválido.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), clientID, uint(appointmentID))
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
