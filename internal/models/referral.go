package models

import "time"

type Referral struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReferrerID uint   `gorm:"index:idx_referrals_referrer_phone,unique" json:"referrer_id"`
	Referrer   Client `gorm:"foreignKey:ReferrerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ReferredPhone string `gorm:"size:20;index:idx_referrals_referrer_phone,unique" json:"referred_phone"`

	Status        string `gorm:"size:20;default:'pendente'" json:"status"`
	PointsAwarded int    `gorm:"default:0" json:"points_awarded"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}
