package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaclub/booking-api/internal/audit"
	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/httpresp"
	"github.com/navalhaclub/booking-api/internal/middleware"
	"github.com/navalhaclub/booking-api/internal/models"
)

// Pontos de fidelidade creditados por avaliação publicada.
const reviewLoyaltyPoints = 10

type ReviewHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewReviewHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ReviewHandler {
	return &ReviewHandler{db: db, audit: dispatcher}
}

type CreateReviewRequest struct {
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Comment       string `json:"comment" binding:"max=500"`
}

// POST /api/reviews — só atendimentos concluídos do próprio cliente.
func (h *ReviewHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var ap models.Appointment
	if err := h.db.
		Where("id = ? AND client_id = ?", req.AppointmentID, clientID).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	if schedule.Status(ap.Status) != schedule.StatusCompleted {
		httperr.BadRequest(c, httperr.CodeInvalidState, "Apenas atendimentos concluídos podem ser avaliados.")
		return
	}

	var existing int64
	h.db.Model(&models.Review{}).Where("appointment_id = ?", ap.ID).Count(&existing)
	if existing > 0 {
		httperr.Conflict(c, "review_already_exists", "Este atendimento já foi avaliado.")
		return
	}

	review := models.Review{
		AppointmentID: ap.ID,
		ClientID:      clientID,
		BarberID:      ap.BarberID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		return tx.Model(&models.Client{}).
			Where("id = ?", clientID).
			Update("loyalty_points", gorm.Expr("loyalty_points + ?", reviewLoyaltyPoints)).
			Error
	})
	if err != nil {
		// O índice único de appointment_id arbitra envios simultâneos.
		if httperr.IsConflictViolation(err) {
			httperr.Conflict(c, "review_already_exists", "Este atendimento já foi avaliado.")
			return
		}
		httperr.Internal(c, "internal_error", "Não foi possível registrar a avaliação.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: ap.BarbershopID,
		ClientID:     &clientID,
		Action:       "review_created",
		Entity:       "review",
		EntityID:     &review.ID,
		Metadata:     gin.H{"rating": req.Rating, "points_awarded": reviewLoyaltyPoints},
	})

	httpresp.Created(c, gin.H{
		"review":         review,
		"points_awarded": reviewLoyaltyPoints,
	})
}

// GET /api/me/reviews
func (h *ReviewHandler) ListMine(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	var reviews []models.Review
	if err := h.db.
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "internal_error", "Não foi possível listar suas avaliações.")
		return
	}

	httpresp.List(c, reviews)
}
