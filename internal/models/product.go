package models

import "time"

// Produto de varejo (pomada, shampoo, etc) vendido pelo app.
type Product struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `json:"barbershop_id"`

	Name          string  `gorm:"size:100;not null" json:"name"`
	Description   string  `gorm:"size:255" json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `gorm:"default:0" json:"stock_quantity"`
	ImageURL      string  `gorm:"size:255" json:"image_url"`
	Active        bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
