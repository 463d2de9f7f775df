package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	UserPlanStatusActive    = "ACTIVE"
	UserPlanStatusCompleted = "COMPLETED"
	UserPlanStatusCancelled = "CANCELLED"
)

// UserPlan links a user to a purchased plan. Rows are created by
// operators during settlement; no purchase endpoint writes here.
type UserPlan struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string    `gorm:"column:user_id;index;not null" json:"userId"`
	PlanID    string    `gorm:"column:plan_id;index;not null" json:"planId"`
	Status    string    `gorm:"column:status;not null;default:ACTIVE" json:"status"`
	CreatedAt time.Time `json:"createdAt"`

	Plan *Plan `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
}

func (UserPlan) TableName() string {
	return "user_plans"
}

func (up *UserPlan) BeforeCreate(tx *gorm.DB) error {
	if up.ID == "" {
		up.ID = uuid.NewString()
	}
	return nil
}
