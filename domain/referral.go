package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReferralStatusPending   = "PENDING"
	ReferralStatusCompleted = "COMPLETED"
	ReferralStatusCancelled = "CANCELLED"
)

type Referral struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ReferrerID string    `gorm:"column:referrer_id;index;not null" json:"referrerId"`
	ReferredID string    `gorm:"column:referred_id;index;not null" json:"referredId"`
	Code       string    `gorm:"column:code;not null" json:"code"`
	Bonus      float64   `gorm:"column:bonus;type:numeric;default:0" json:"bonus"`
	Status     string    `gorm:"column:status;not null;default:PENDING" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`

	Referred *User `gorm:"foreignKey:ReferredID" json:"referred,omitempty"`
}

func (Referral) TableName() string {
	return "referrals"
}

func (r *Referral) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// ReferralInfo bundles a user's referrals with the derived share code
// and link. The code is computed from the user ID, never stored.
type ReferralInfo struct {
	Referrals    []Referral `json:"referrals"`
	ReferralCode string     `json:"referralCode"`
	ReferralLink string     `json:"referralLink"`
}
