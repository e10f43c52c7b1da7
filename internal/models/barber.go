package models

import "time"

type Barber struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	BarbershopID uint       `json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name      string  `gorm:"size:100;not null" json:"name"`
	Specialty string  `gorm:"size:100" json:"specialty"`
	Rating    float64 `gorm:"default:5" json:"rating"`
	PhotoURL  string  `gorm:"size:255" json:"photo_url"`
	Active    bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
