package postgres

import (
	"context"
	"errors"
	"strings"

	"futureplus/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

// Create inserts the user together with its wallet association. gorm
// runs both inserts in a single transaction, which keeps the 1:1
// user/wallet invariant even when the wallet insert fails.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.DB.WithContext(ctx).Create(user).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateUser
		}
		return err
	}

	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	var user domain.User

	err := r.DB.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var user domain.User

	err := r.DB.WithContext(ctx).Preload("Wallet").Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return user, nil
}

func (r *UserRepository) FindByEmailOrMobile(ctx context.Context, email, mobile string) (domain.User, error) {
	var user domain.User

	err := r.DB.WithContext(ctx).Where("email = ? OR mobile = ?", email, mobile).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return user, nil
}

func (r *UserRepository) FindByIDWithWallet(ctx context.Context, id string) (domain.User, error) {
	var user domain.User

	err := r.DB.WithContext(ctx).Preload("Wallet").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return user, nil
}

// FindAllWithRelations returns every user with wallet, purchased plans
// and transactions preloaded, newest first. Transactions come back
// ordered so the service can trim to the most recent ones per user.
func (r *UserRepository) FindAllWithRelations(ctx context.Context) ([]domain.User, error) {
	var users []domain.User

	err := r.DB.WithContext(ctx).
		Preload("Wallet").
		Preload("UserPlans.Plan").
		Preload("Transactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at desc")
		}).
		Order("created_at desc").
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) UpdateActive(ctx context.Context, id string, isActive bool) (domain.User, error) {
	result := r.DB.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Update("is_active", isActive)
	if result.Error != nil {
		return domain.User{}, result.Error
	}

	if result.RowsAffected == 0 {
		return domain.User{}, domain.ErrUserNotFound
	}

	return r.FindByIDWithWallet(ctx, id)
}
