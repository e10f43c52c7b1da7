package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/httpresp"
	"github.com/navalhaclub/booking-api/internal/middleware"
	"github.com/navalhaclub/booking-api/internal/models"
	"github.com/navalhaclub/booking-api/internal/validators"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// GET /api/me
func (h *ProfileHandler) Me(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	var client models.Client
	if err := h.db.First(&client, clientID).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	httpresp.OK(c, client)
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// PATCH /api/me — atualização parcial de nome, telefone e e-mail.
func (h *ProfileHandler) Update(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var client models.Client
	if err := h.db.First(&client, clientID).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		client.Name = name
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		client.Phone = phone
	}
	if email := strings.ToLower(strings.TrimSpace(req.Email)); email != "" && email != client.Email {
		if !validators.IsEmailDomainValid(email) {
			httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
			return
		}

		var count int64
		h.db.Model(&models.Client{}).Where("email = ? AND id <> ?", email, clientID).Count(&count)
		if count > 0 {
			httperr.Conflict(c, "email_already_registered", "Este e-mail já está em uso.")
			return
		}

		client.Email = email
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "internal_error", "Não foi possível atualizar o perfil.")
		return
	}

	httpresp.OK(c, client)
}
