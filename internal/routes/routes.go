package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/navalhaclub/booking-api/internal/audit"
	"github.com/navalhaclub/booking-api/internal/cache"
	"github.com/navalhaclub/booking-api/internal/config"
	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/handlers"
	"github.com/navalhaclub/booking-api/internal/infra/repository"
	"github.com/navalhaclub/booking-api/internal/media"
	"github.com/navalhaclub/booking-api/internal/middleware"
	"github.com/navalhaclub/booking-api/internal/payments"
	appointmentuc "github.com/navalhaclub/booking-api/internal/usecase/appointment"
)

// Deps reúne as dependências de infraestrutura montadas no main.
type Deps struct {
	DB       *gorm.DB
	Log      *zap.Logger
	Cache    *cache.SlotCache
	Checkout *payments.Checkout
	Storage  *media.Storage
}

// RegisterRoutes monta os casos de uso e publica a API.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Deps) {
	repo := repository.NewAppointmentGormRepository(deps.DB)
	dispatcher := audit.NewDispatcher(audit.New(deps.DB), deps.Log)
	clock := schedule.SystemClock{}

	var slotCache appointmentuc.SlotCache
	if deps.Cache != nil {
		slotCache = deps.Cache
	}

	availability := appointmentuc.NewGetAvailability(repo, slotCache)
	createAppointment := appointmentuc.NewCreateAppointment(repo, slotCache, clock, dispatcher)
	cancelAppointment := appointmentuc.NewCancelAppointment(repo, slotCache, clock, dispatcher)
	listAppointments := appointmentuc.NewListMyAppointments(repo, clock)

	authHandler := handlers.NewAuthHandler(deps.DB, cfg)
	bookingHandler := handlers.NewBookingHandler(deps.DB, availability, createAppointment)
	appointmentHandler := handlers.NewAppointmentHandler(listAppointments, cancelAppointment)
	orderHandler := handlers.NewOrderHandler(deps.DB, deps.Checkout, dispatcher)
	reviewHandler := handlers.NewReviewHandler(deps.DB, dispatcher)
	referralHandler := handlers.NewReferralHandler(deps.DB, dispatcher)
	profileHandler := handlers.NewProfileHandler(deps.DB)
	adminHandler := handlers.NewAdminHandler(deps.DB, deps.Storage, dispatcher)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	secured := api.Group("")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/catalog/services", bookingHandler.ListServices)
		secured.GET("/catalog/barbers", bookingHandler.ListBarbers)
		secured.GET("/catalog/products", orderHandler.ListProducts)

		secured.GET("/availability", bookingHandler.GetAvailability)
		secured.POST("/appointments", bookingHandler.CreateAppointment)

		secured.GET("/me", profileHandler.Me)
		secured.PATCH("/me", profileHandler.Update)
		secured.GET("/me/appointments", appointmentHandler.ListMine)
		secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
		secured.GET("/me/orders", orderHandler.ListMine)
		secured.PATCH("/me/orders/:id/cancel", orderHandler.Cancel)
		secured.GET("/me/reviews", reviewHandler.ListMine)
		secured.GET("/me/referrals", referralHandler.ListMine)

		secured.POST("/orders", orderHandler.CreateOrder)
		secured.POST("/reviews", reviewHandler.Create)
		secured.POST("/referrals", referralHandler.Create)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(middleware.RoleStaff))
	{
		admin.POST("/barbers", adminHandler.CreateBarber)
		admin.PATCH("/barbers/:id", adminHandler.UpdateBarber)
		admin.PUT("/barbers/:id/photo", adminHandler.UploadBarberPhoto)

		admin.POST("/services", adminHandler.CreateService)
		admin.PATCH("/services/:id", adminHandler.UpdateService)

		admin.POST("/products", adminHandler.CreateProduct)
		admin.PATCH("/products/:id", adminHandler.UpdateProduct)
		admin.PUT("/products/:id/image", adminHandler.UploadProductImage)

		admin.GET("/appointments", adminHandler.ListAppointments)
		admin.PATCH("/appointments/:id/start", adminHandler.StartAppointment)
		admin.PATCH("/appointments/:id/complete", adminHandler.CompleteAppointment)

		admin.GET("/audit-logs", adminHandler.ListAuditLogs)
	}
}
