package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TransactionTypeRecharge   = "RECHARGE"
	TransactionTypeWithdrawal = "WITHDRAWAL"
	TransactionTypeBonus      = "BONUS"
	TransactionTypeReferral   = "REFERRAL"
	TransactionTypePlanReturn = "PLAN_RETURN"
)

const (
	TransactionStatusPending   = "PENDING"
	TransactionStatusCompleted = "COMPLETED"
	TransactionStatusFailed    = "FAILED"
	TransactionStatusCancelled = "CANCELLED"
)

// Transaction is an append-only record. Amounts are unsigned, the
// direction is implied by Type. Status transitions happen through
// out-of-band settlement only.
type Transaction struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string    `gorm:"column:user_id;index;not null" json:"userId"`
	Type      string    `gorm:"column:type;not null" json:"type"`
	Amount    float64   `gorm:"column:amount;type:numeric;not null" json:"amount"`
	Status    string    `gorm:"column:status;not null;default:PENDING" json:"status"`
	Reference string    `gorm:"column:reference" json:"reference,omitempty"`
	UpiID     string    `gorm:"column:upi_id" json:"upiId,omitempty"`
	Bonus     float64   `gorm:"column:bonus;type:numeric;default:0" json:"bonus"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
