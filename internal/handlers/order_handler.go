package handlers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/navalhaclub/booking-api/internal/audit"
	"github.com/navalhaclub/booking-api/internal/dto"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/httpresp"
	"github.com/navalhaclub/booking-api/internal/middleware"
	"github.com/navalhaclub/booking-api/internal/models"
	"github.com/navalhaclub/booking-api/internal/payments"
)

// OrderHandler cobre a vitrine de produtos e os pedidos do cliente.
type OrderHandler struct {
	db       *gorm.DB
	checkout *payments.Checkout
	audit    *audit.Dispatcher
}

func NewOrderHandler(db *gorm.DB, checkout *payments.Checkout, dispatcher *audit.Dispatcher) *OrderHandler {
	return &OrderHandler{db: db, checkout: checkout, audit: dispatcher}
}

// ======================================================
// PRODUTOS
// ======================================================

// GET /api/catalog/products — produtos ativos em ordem alfabética.
func (h *OrderHandler) ListProducts(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var products []models.Product
	if err := h.db.
		Where("barbershop_id = ? AND active = ?", barbershopID, true).
		Order("name ASC").
		Find(&products).Error; err != nil {
		httperr.Internal(c, "internal_error", "Não foi possível listar os produtos.")
		return
	}

	httpresp.List(c, products)
}

// ======================================================
// PEDIDOS
// ======================================================

type CreateOrderRequest struct {
	Items []struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1,dive"`
}

// POST /api/orders — o preço de cada item vem sempre do catálogo atual,
// nunca do payload do cliente.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var (
		items   []dto.OrderItem
		mpItems []payments.Item
		total   float64
	)

	for _, reqItem := range req.Items {
		var product models.Product
		if err := h.db.
			Where("id = ? AND barbershop_id = ?", reqItem.ProductID, barbershopID).
			First(&product).Error; err != nil {
			httperr.BadRequest(c, "product_not_found",
				fmt.Sprintf("Produto %d não encontrado.", reqItem.ProductID))
			return
		}

		if !product.Active {
			httperr.BadRequest(c, "product_inactive",
				fmt.Sprintf("O produto %q não está mais disponível.", product.Name))
			return
		}

		if product.StockQuantity < reqItem.Quantity {
			httperr.BadRequest(c, "insufficient_stock",
				fmt.Sprintf("Estoque insuficiente para %q.", product.Name))
			return
		}

		items = append(items, dto.OrderItem{
			ProductID: product.ID,
			Quantity:  reqItem.Quantity,
			Price:     product.Price,
		})
		mpItems = append(mpItems, payments.Item{
			Title:     product.Name,
			Quantity:  reqItem.Quantity,
			UnitPrice: product.Price,
		})
		total += product.Price * float64(reqItem.Quantity)
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		httperr.Internal(c, "internal_error", "Não foi possível registrar o pedido.")
		return
	}

	order := models.ProductOrder{
		BarbershopID: barbershopID,
		ClientID:     clientID,
		Items:        string(itemsJSON),
		TotalAmount:  total,
		Status:       "pendente",
		Reference:    uuid.NewString(),
	}

	paymentURL, err := h.checkout.CreatePreference(c.Request.Context(), order.Reference, mpItems)
	if err != nil {
		httperr.Unavailable(c, "payment_unavailable", "Não foi possível gerar o link de pagamento.")
		return
	}
	order.PaymentURL = paymentURL

	if err := h.db.Create(&order).Error; err != nil {
		httperr.Internal(c, "internal_error", "Não foi possível registrar o pedido.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		ClientID:     &clientID,
		Action:       "order_created",
		Entity:       "product_order",
		EntityID:     &order.ID,
		Metadata:     gin.H{"total_amount": total},
	})

	httpresp.Created(c, order)
}

// GET /api/me/orders
func (h *OrderHandler) ListMine(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	var orders []models.ProductOrder
	if err := h.db.
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		httperr.Internal(c, "internal_error", "Não foi possível listar seus pedidos.")
		return
	}

	out := make([]dto.OrderDetailDTO, 0, len(orders))
	for _, order := range orders {
		out = append(out, h.orderDetail(order))
	}

	httpresp.List(c, out)
}

// orderDetail hidrata os itens serializados com os dados atuais do catálogo.
func (h *OrderHandler) orderDetail(order models.ProductOrder) dto.OrderDetailDTO {
	var items []dto.OrderItem
	_ = json.Unmarshal([]byte(order.Items), &items)

	details := make([]dto.OrderItemDetail, 0, len(items))
	for _, item := range items {
		detail := dto.OrderItemDetail{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}

		var product models.Product
		if err := h.db.First(&product, item.ProductID).Error; err == nil {
			detail.ProductName = product.Name
			detail.ImageURL = product.ImageURL
		}

		details = append(details, detail)
	}

	return dto.OrderDetailDTO{
		ID:          order.ID,
		Items:       details,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		PaymentURL:  order.PaymentURL,
		CreatedAt:   order.CreatedAt.Format(time.RFC3339),
	}
}

// PATCH /api/me/orders/:id/cancel — apenas pedidos ainda pendentes.
func (h *OrderHandler) Cancel(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		httperr.BadRequest(c, "invalid_order_id", "Identificador de pedido inválido.")
		return
	}

	var order models.ProductOrder
	if err := h.db.
		Where("id = ? AND client_id = ?", orderID, clientID).
		First(&order).Error; err != nil {
		httperr.NotFound(c, "order_not_found", "Pedido não encontrado.")
		return
	}

	if order.Status != "pendente" {
		httperr.BadRequest(c, httperr.CodeInvalidState, "Apenas pedidos pendentes podem ser cancelados.")
		return
	}

	now := time.Now()
	order.Status = "cancelado"
	order.CancelledAt = &now

	if err := h.db.Save(&order).Error; err != nil {
		httperr.Internal(c, "internal_error", "Não foi possível cancelar o pedido.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: order.BarbershopID,
		ClientID:     &clientID,
		Action:       "order_cancelled",
		Entity:       "product_order",
		EntityID:     &order.ID,
	})

	httpresp.OK(c, order)
}
