package postgres

import (
	"context"
	"errors"

	"futureplus/domain"

	"gorm.io/gorm"
)

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{
		DB: db,
	}
}

func (r *AdminRepository) FindByKey(ctx context.Context, key string) (domain.Admin, error) {
	var admin domain.Admin

	err := r.DB.WithContext(ctx).Where("key = ?", key).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Admin{}, domain.ErrAdminNotFound
		}
		return domain.Admin{}, err
	}

	return admin, nil
}
