package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GiftStatusActive    = "ACTIVE"
	GiftStatusClaimed   = "CLAIMED"
	GiftStatusExpired   = "EXPIRED"
	GiftStatusCancelled = "CANCELLED"
)

// Gift is a prize/draw entity. At most one winner; winner selection is
// performed by an operator, not by the API.
type Gift struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Type      string    `gorm:"column:type;not null" json:"type"`
	Value     float64   `gorm:"column:value;type:numeric;not null" json:"value"`
	Status    string    `gorm:"column:status;not null;default:ACTIVE" json:"status"`
	UserID    string    `gorm:"column:user_id;index;not null" json:"userId"`
	WinnerID  *string   `gorm:"column:winner_id;index" json:"winnerId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Creator *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Winner  *User `gorm:"foreignKey:WinnerID" json:"winner,omitempty"`
}

func (Gift) TableName() string {
	return "gifts"
}

func (g *Gift) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// GiftParticipation is the participation-shaped view derived from gifts a
// user created or won. There is no persisted participation ledger.
type GiftParticipation struct {
	ID        string      `json:"id"`
	GiftID    string      `json:"giftId"`
	Gift      GiftSummary `json:"gift"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

type GiftSummary struct {
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

const (
	ParticipationStatusWon          = "WON"
	ParticipationStatusParticipated = "PARTICIPATED"
)
