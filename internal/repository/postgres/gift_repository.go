package postgres

import (
	"context"
	"errors"

	"futureplus/domain"

	"gorm.io/gorm"
)

type GiftRepository struct {
	DB *gorm.DB
}

func NewGiftRepository(db *gorm.DB) *GiftRepository {
	return &GiftRepository{
		DB: db,
	}
}

func withPeople(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Creator", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Preload("Winner", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		})
}

func (r *GiftRepository) FindAll(ctx context.Context) ([]domain.Gift, error) {
	var gifts []domain.Gift

	err := withPeople(r.DB.WithContext(ctx)).
		Order("created_at desc").
		Find(&gifts).Error
	if err != nil {
		return nil, err
	}

	return gifts, nil
}

func (r *GiftRepository) FindActive(ctx context.Context) ([]domain.Gift, error) {
	var gifts []domain.Gift

	err := withPeople(r.DB.WithContext(ctx)).
		Where("status = ?", domain.GiftStatusActive).
		Order("created_at desc").
		Find(&gifts).Error
	if err != nil {
		return nil, err
	}

	return gifts, nil
}

func (r *GiftRepository) FindByID(ctx context.Context, id string) (domain.Gift, error) {
	var gift domain.Gift

	err := r.DB.WithContext(ctx).First(&gift, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Gift{}, domain.ErrGiftNotFound
		}
		return domain.Gift{}, err
	}

	return gift, nil
}

// FindByCreatorOrWinner returns gifts the user created or won, newest
// first. This stands in for a participation ledger that was never
// modelled.
func (r *GiftRepository) FindByCreatorOrWinner(ctx context.Context, userID string) ([]domain.Gift, error) {
	var gifts []domain.Gift

	err := withPeople(r.DB.WithContext(ctx)).
		Where("user_id = ? OR winner_id = ?", userID, userID).
		Order("created_at desc").
		Find(&gifts).Error
	if err != nil {
		return nil, err
	}

	return gifts, nil
}
