package postgres

import (
	"context"

	"futureplus/domain"

	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{
		DB: db,
	}
}

// FindRecentByUser returns the user's most recent transactions, newest
// first, capped at limit.
func (r *TransactionRepository) FindRecentByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	var transactions []domain.Transaction

	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
