package schedule

import (
	"time"

	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/models"
)

// Janela mínima de antecedência para o cliente cancelar.
const CancellationWindow = 24 * time.Hour

const dateTimeLayout = "2006-01-02 15:04"

// CombineDateTime monta o instante do agendamento a partir das strings locais
// de data e hora, no fuso da barbearia. Sem conversão para UTC: a comparação
// acontece no mesmo referencial local em que o horário foi marcado.
func CombineDateTime(date, hm string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateTimeLayout, date+" "+NormalizeTime(hm), loc)
}

// CanCancel decide se um agendamento ainda pode ser cancelado pelo cliente:
// status confirmado e mais de 24h de antecedência.
func CanCancel(status Status, startsAt, now time.Time) bool {
	if status != StatusConfirmed {
		return false
	}
	return startsAt.Sub(now) > CancellationWindow
}

// ===============================
// Domain Actions
// ===============================

// Cancel revalida a política no momento do commit e transiciona o
// agendamento para cancelado. A vaga volta a aparecer disponível na próxima
// consulta, já que agendamentos cancelados não ocupam a grade.
func Cancel(ap *models.Appointment, startsAt, now time.Time) error {
	if Status(ap.Status) != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	if startsAt.Sub(now) <= CancellationWindow {
		return httperr.ErrBusiness(httperr.CodeCancellationWindow)
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if Status(ap.Status) != StatusConfirmed && Status(ap.Status) != StatusInProgress {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func Start(ap *models.Appointment) error {
	if Status(ap.Status) != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}

	ap.Status = string(StatusInProgress)
	return nil
}
