package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaclub/booking-api/internal/audit"
	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/httpresp"
	"github.com/navalhaclub/booking-api/internal/media"
	"github.com/navalhaclub/booking-api/internal/middleware"
	"github.com/navalhaclub/booking-api/internal/models"
)

// AdminHandler concentra a superfície de gestão usada pelo staff da
// barbearia: cadastro de barbeiros, serviços e produtos, agenda do dia e
// trilha de auditoria.
type AdminHandler struct {
	db      *gorm.DB
	storage *media.Storage
	audit   *audit.Dispatcher
}

func NewAdminHandler(db *gorm.DB, storage *media.Storage, dispatcher *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{db: db, storage: storage, audit: dispatcher}
}

// ======================================================
// BARBEIROS
// ======================================================

type BarberRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
	Active    *bool  `json:"active"`
}

// POST /api/admin/barbers
func (h *AdminHandler) CreateBarber(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	barber := models.Barber{
		BarbershopID: barbershopID,
		Name:         req.Name,
		Specialty:    req.Specialty,
		Active:       true,
	}
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "internal_error", "Não foi possível criar o barbeiro.")
		return
	}

	httpresp.Created(c, barber)
}

// PATCH /api/admin/barbers/:id
func (h *AdminHandler) UpdateBarber(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	barber, ok := h.findBarber(c, barbershopID)
	if !ok {
		return
	}

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	barber.Name = req.Name
	if req.Specialty != "" {
		barber.Specialty = req.Specialty
	}
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Save(barber).Error; err != nil {
		httperr.Internal(c, "internal_error", "Não foi possível atualizar o barbeiro.")
		return
	}

	httpresp.OK(c, barber)
}

// PUT /api/admin/barbers/:id/photo — multipart "photo", reencodado em WebP.
func (h *AdminHandler) UploadBarberPhoto(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	barber, ok := h.findBarber(c, barbershopID)
	if !ok {
		return
	}

	url, ok := h.uploadImage(c, "barbers")
	if !ok {
		return
	}

	barber.PhotoURL = url
	if err := h.db.Save(barber).Error; err != nil {
		httperr.Internal(c, "internal_error", "Não foi possível salvar a foto.")
		return
	}

	httpresp.OK(c, barber)
}

func (h *AdminHandler) findBarber(c *gin.Context, barbershopID uint) (*models.Barber, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_barber_id", "Identificador de barbeiro inválido.")
		return nil, false
	}

	var barber models.Barber
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return nil, false
	}

	return &barber, true
}

// ======================================================
// SERVIÇOS
// ======================================================

type ServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
	Active          *bool   `json:"active"`
}

// POST /api/admin/services
func (h *AdminHandler) CreateService(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	service := models.Service{
		BarbershopID:    barbershopID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Active:          true,
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "internal_error", "Não foi possível criar o serviço.")
		return
	}

	httpresp.Created(c, service)
}

// PATCH /api/admin/services/:id
func (h *AdminHandler) UpdateService(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_service_id", "Identificador de serviço inválido.")
		return
	}

	var service models.Service
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&service).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Price = req.Price
	service.DurationMinutes = req.DurationMinutes
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "internal_error", "Não foi possível atualizar o serviço.")
		return
	}

	httpresp.OK(c, service)
}

// ======================================================
// PRODUTOS
// ======================================================

type ProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	StockQuantity int     `json:"stock_quantity" binding:"min=0"`
	Active        *bool   `json:"active"`
}

// POST /api/admin/products
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	product := models.Product{
		BarbershopID:  barbershopID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Active:        true,
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := h.db.Create(&product).Error; err != nil {
		httperr.Internal(c, "internal_error", "Não foi possível criar o produto.")
		return
	}

	httpresp.Created(c, product)
}

// PATCH /api/admin/products/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	product, ok := h.findProduct(c, barbershopID)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.StockQuantity = req.StockQuantity
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := h.db.Save(product).Error; err != nil {
		httperr.Internal(c, "internal_error", "Não foi possível atualizar o produto.")
		return
	}

	httpresp.OK(c, product)
}

// PUT /api/admin/products/:id/image — multipart "photo", reencodado em WebP.
func (h *AdminHandler) UploadProductImage(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	product, ok := h.findProduct(c, barbershopID)
	if !ok {
		return
	}

	url, ok := h.uploadImage(c, "products")
	if !ok {
		return
	}

	product.ImageURL = url
	if err := h.db.Save(product).Error; err != nil {
		httperr.Internal(c, "internal_error", "Não foi possível salvar a imagem.")
		return
	}

	httpresp.OK(c, product)
}

func (h *AdminHandler) findProduct(c *gin.Context, barbershopID uint) (*models.Product, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_product_id", "Identificador de produto inválido.")
		return nil, false
	}

	var product models.Product
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&product).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return nil, false
	}

	return &product, true
}

func (h *AdminHandler) uploadImage(c *gin.Context, folder string) (string, bool) {
	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie o arquivo no campo multipart 'photo'.")
		return "", false
	}
	defer file.Close()

	data, err := media.Normalize(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "A imagem enviada não pôde ser processada.")
		return "", false
	}

	url, err := h.storage.Upload(c.Request.Context(), folder, data)
	if err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Não foi possível armazenar a imagem.")
		return "", false
	}

	return url, true
}

// ======================================================
// AGENDA
// ======================================================

// GET /api/admin/appointments?date=&barber_id= — agenda do dia.
func (h *AdminHandler) ListAppointments(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "Informe a data no formato YYYY-MM-DD.")
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "Informe a data no formato YYYY-MM-DD.")
		return
	}

	query := h.db.
		Preload("Barber").
		Preload("Client").
		Preload("Service").
		Where("barbershop_id = ? AND date = ?", barbershopID, date).
		Order("time ASC")

	if raw := c.Query("barber_id"); raw != "" {
		barberID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Informe um barber_id válido.")
			return
		}
		query = query.Where("barber_id = ?", barberID)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		httperr.Internal(c, "internal_error", "Não foi possível listar a agenda.")
		return
	}

	httpresp.List(c, appointments)
}

// PATCH /api/admin/appointments/:id/start
func (h *AdminHandler) StartAppointment(c *gin.Context) {
	h.transitionAppointment(c, "appointment_started", func(ap *models.Appointment, _ time.Time) error {
		return schedule.Start(ap)
	})
}

// PATCH /api/admin/appointments/:id/complete
func (h *AdminHandler) CompleteAppointment(c *gin.Context) {
	h.transitionAppointment(c, "appointment_completed", schedule.Complete)
}

func (h *AdminHandler) transitionAppointment(
	c *gin.Context,
	action string,
	transition func(ap *models.Appointment, now time.Time) error,
) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_appointment_id", "Identificador de agendamento inválido.")
		return
	}

	var ap models.Appointment
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	if err := transition(&ap, time.Now()); err != nil {
		mapScheduleError(c, err)
		return
	}

	if err := h.db.Save(&ap).Error; err != nil {
		httperr.Internal(c, "internal_error", "Não foi possível atualizar o agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		Action:       action,
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	httpresp.OK(c, ap)
}

// ======================================================
// AUDITORIA
// ======================================================

// GET /api/admin/audit-logs?limit=
func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	var logs []models.AuditLog
	if err := h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "internal_error", "Não foi possível listar a auditoria.")
		return
	}

	httpresp.List(c, logs)
}
