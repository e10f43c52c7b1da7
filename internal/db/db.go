package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/navalhaclub/booking-api/internal/config"
	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/models"
)

// bookingDefaults valida a janela vinda do ambiente antes de aplicá-la às
// barbearias sem grade. Janela que não gera nenhum slot cai no padrão.
func bookingDefaults(cfg *config.Config) (open, close string, interval int) {
	open, close, interval = cfg.BookingOpenTime, cfg.BookingCloseTime, cfg.BookingIntervalMin

	if _, err := schedule.GenerateSlots(open, close, interval); err != nil {
		return "09:00", "18:00", 30
	}
	return open, close, interval
}

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barbershop{},
		&models.Barber{},
		&models.Client{},
		&models.Service{},
		&models.Appointment{},
		&models.Product{},
		&models.ProductOrder{},
		&models.Review{},
		&models.Referral{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	// Invariante de conflito: no máximo um agendamento ativo por
	// (barbeiro, data, hora). É este índice que arbitra reservas
	// concorrentes — a aplicação não segura lock nenhum.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
        ON appointments (barber_id, date, time)
        WHERE status IN ('confirmado', 'em_atendimento')
    `)

	db.Exec(`
        UPDATE barbershops
        SET timezone = 'America/Sao_Paulo'
        WHERE timezone IS NULL OR timezone = ''
    `)

	// Barbearias sem grade própria herdam a janela configurada no ambiente
	// (BOOKING_OPEN_TIME / BOOKING_CLOSE_TIME / BOOKING_INTERVAL_MIN).
	open, close, interval := bookingDefaults(cfg)
	db.Exec(`
        UPDATE barbershops
        SET open_time = ?
        WHERE open_time IS NULL OR open_time = ''
    `, open)
	db.Exec(`
        UPDATE barbershops
        SET close_time = ?
        WHERE close_time IS NULL OR close_time = ''
    `, close)
	db.Exec(`
        UPDATE barbershops
        SET slot_interval_min = ?
        WHERE slot_interval_min IS NULL OR slot_interval_min <= 0
    `, interval)

	return db
}
