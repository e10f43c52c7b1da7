package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaclub/booking-api/internal/audit"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/httpresp"
	"github.com/navalhaclub/booking-api/internal/middleware"
	"github.com/navalhaclub/booking-api/internal/models"
)

type ReferralHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewReferralHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ReferralHandler {
	return &ReferralHandler{db: db, audit: dispatcher}
}

type CreateReferralRequest struct {
	Phone string `json:"phone" binding:"required"`
	Name  string `json:"name"`
}

// POST /api/referrals — o mesmo telefone só conta uma vez por indicador.
func (h *ReferralHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	phone := normalizePhone(req.Phone)
	if len(phone) < 8 {
		httperr.BadRequest(c, "invalid_phone", "Informe um telefone válido.")
		return
	}

	var existing int64
	h.db.Model(&models.Referral{}).
		Where("referrer_id = ? AND referred_phone = ?", clientID, phone).
		Count(&existing)
	if existing > 0 {
		httperr.Conflict(c, "referral_already_exists", "Você já indicou este telefone.")
		return
	}

	referral := models.Referral{
		ReferrerID:    clientID,
		ReferredPhone: phone,
		Status:        "pendente",
	}

	if err := h.db.Create(&referral).Error; err != nil {
		// Corrida entre envios repetidos cai no índice composto.
		if httperr.IsConflictViolation(err) {
			httperr.Conflict(c, "referral_already_exists", "Você já indicou este telefone.")
			return
		}
		httperr.Internal(c, "internal_error", "Não foi possível registrar a indicação.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		ClientID:     &clientID,
		Action:       "referral_created",
		Entity:       "referral",
		EntityID:     &referral.ID,
	})

	httpresp.Created(c, referral)
}

// GET /api/me/referrals
func (h *ReferralHandler) ListMine(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	var referrals []models.Referral
	if err := h.db.
		Where("referrer_id = ?", clientID).
		Order("created_at DESC").
		Find(&referrals).Error; err != nil {
		httperr.Internal(c, "internal_error", "Não foi possível listar suas indicações.")
		return
	}

	httpresp.List(c, referrals)
}

// normalizePhone mantém apenas dígitos para deduplicar formatos diferentes
// do mesmo número.
func normalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
