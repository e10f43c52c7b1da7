package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// notFound traduz o sentinela do gorm para o do domínio, preservando os
// demais erros (queda de banco não é "não existe").
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return schedule.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarbershopByID(
	ctx context.Context,
	id uint,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &shop, nil
}

// --------------------------------------------------
// Reference data
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ? AND active = true", barberID, barbershopID).
		First(&barber).Error; err != nil {
		return nil, notFound(err)
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	barbershopID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ? AND active = true", serviceID, barbershopID).
		First(&service).Error; err != nil {
		return nil, notFound(err)
	}
	return &service, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBookedSlots(
	ctx context.Context,
	barberID uint,
	date string,
	statuses []schedule.Status,
) ([]schedule.BookedSlot, error) {

	states := make([]string, 0, len(statuses))
	for _, s := range statuses {
		states = append(states, string(s))
	}

	type bookedRow struct {
		Time            string
		DurationMinutes int
	}

	var rows []bookedRow
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("appointments.time AS time, services.duration_minutes AS duration_minutes").
		Joins("LEFT JOIN services ON services.id = appointments.service_id").
		Where(
			"appointments.barber_id = ? AND appointments.date = ? AND appointments.status IN ?",
			barberID, date, states,
		).
		Order("appointments.time ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	booked := make([]schedule.BookedSlot, 0, len(rows))
	for _, row := range rows {
		booked = append(booked, schedule.BookedSlot{
			Time:            schedule.NormalizeTime(row.Time),
			DurationMinutes: row.DurationMinutes,
		})
	}

	return booked, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

// CreateAppointment insere uma linha. O índice único parcial
// (barber_id, date, time) WHERE status ativo decide corridas entre duas
// reservas concorrentes: exatamente uma insere, a outra recebe slot_conflict.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if httperr.IsConflictViolation(err) {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
		return err
	}
	return nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForClient(
	ctx context.Context,
	appointmentID uint,
	clientID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND client_id = ?", appointmentID, clientID).
		First(&ap).Error; err != nil {
		return nil, notFound(err)
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Barber").
		Where("client_id = ?", clientID).
		Order("date DESC, time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ schedule.Repository = (*AppointmentGormRepository)(nil)
