package models

import "time"

type ProductOrder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarbershopID uint `json:"barbershop_id"`
	ClientID     uint `json:"client_id"`

	// Itens serializados: [{product_id, quantity, price}].
	Items       string  `gorm:"type:jsonb" json:"items"`
	TotalAmount float64 `json:"total_amount"`

	Status string `gorm:"size:20;default:'pendente'" json:"status"`

	// Referência externa do pedido (checkout Mercado Pago).
	Reference  string `gorm:"size:36;index" json:"reference"`
	PaymentURL string `gorm:"size:512" json:"payment_url"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
