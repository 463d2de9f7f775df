package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PlanTypeLuckyDraw     = "LUCKY_DRAW"
	PlanTypePassionIncome = "PASSION_INCOME"
	PlanTypePremium       = "PREMIUM"
	PlanTypeBigBonanza    = "BIG_BONANZA"
)

type Plan struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Price       float64   `gorm:"column:price;type:numeric;not null" json:"price"`
	Duration    int       `gorm:"column:duration;not null" json:"duration"`
	DailyReturn float64   `gorm:"column:daily_return;type:numeric;not null" json:"dailyReturn"`
	Type        string    `gorm:"column:type;not null" json:"type"`
	IsActive    bool      `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Plan) TableName() string {
	return "plans"
}

func (p *Plan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// TotalReturn is derived, never stored.
func (p Plan) TotalReturn() float64 {
	return p.DailyReturn * float64(p.Duration)
}
