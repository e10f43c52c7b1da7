package schedule

import (
	"context"
	"errors"

	"github.com/navalhaclub/booking-api/internal/models"
)

// ErrNotFound sinaliza ausência do registro, distinta de falha de leitura.
// As implementações devem traduzir o "record not found" do armazém para
// este sentinela; qualquer outro erro é tratado como indisponibilidade.
var ErrNotFound = errors.New("record not found")

// Repository é a única dependência do motor de agendamento: o armazém
// durável de agendamentos e das entidades de referência que dimensionam a
// grade.
type Repository interface {
	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	// -------- Reference data --------
	GetBarber(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Availability --------
	ListBookedSlots(
		ctx context.Context,
		barberID uint,
		date string,
		statuses []Status,
	) ([]BookedSlot, error)

	// -------- Appointment (create / conflict) --------
	// CreateAppointment é atômico: o índice único parcial do armazém decide
	// entre Inserted e Conflict; vitória dupla é impossível.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForClient(
		ctx context.Context,
		appointmentID uint,
		clientID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)
}
