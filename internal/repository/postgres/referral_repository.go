package postgres

import (
	"context"

	"futureplus/domain"

	"gorm.io/gorm"
)

type ReferralRepository struct {
	DB *gorm.DB
}

func NewReferralRepository(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{
		DB: db,
	}
}

func (r *ReferralRepository) FindByReferrer(ctx context.Context, referrerID string) ([]domain.Referral, error) {
	var referrals []domain.Referral

	err := r.DB.WithContext(ctx).
		Preload("Referred", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Where("referrer_id = ?", referrerID).
		Order("created_at desc").
		Find(&referrals).Error
	if err != nil {
		return nil, err
	}

	return referrals, nil
}
