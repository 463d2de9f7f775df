package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Wallet holds a user's spendable balance and the separately tracked
// bonus balance. Balances are only moved by out-of-band settlement,
// never by an API code path.
type Wallet struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string    `gorm:"column:user_id;uniqueIndex;not null" json:"userId"`
	Balance   float64   `gorm:"column:balance;type:numeric;not null;default:0" json:"balance"`
	Bonus     float64   `gorm:"column:bonus;type:numeric;not null;default:0" json:"bonus"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Wallet) TableName() string {
	return "wallets"
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
