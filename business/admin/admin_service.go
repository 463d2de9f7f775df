package admin

import (
	"context"
	"errors"

	"futureplus/domain"
	"futureplus/pkg/logger"
)

// AdminRepository contract interface
type AdminRepository interface {
	FindByKey(ctx context.Context, key string) (domain.Admin, error)
}

// UserRepository contract interface
type UserRepository interface {
	FindAllWithRelations(ctx context.Context) ([]domain.User, error)
	UpdateActive(ctx context.Context, id string, isActive bool) (domain.User, error)
}

const recentTransactionLimit = 5

type adminService struct {
	adminRepo AdminRepository
	userRepo  UserRepository
}

func NewAdminService(adminRepo AdminRepository, userRepo UserRepository) *adminService {
	return &adminService{
		adminRepo: adminRepo,
		userRepo:  userRepo,
	}
}

// LoginWithKey resolves the shared admin key to an admin account. There
// is no session issuance; privileged routes re-send the key on every
// call.
func (s *adminService) LoginWithKey(ctx context.Context, key string) (domain.Admin, error) {
	admin, err := s.adminRepo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return domain.Admin{}, domain.ErrInvalidAdminKey
		}
		return domain.Admin{}, err
	}

	if !admin.IsActive {
		logger.Warn("Login attempt on deactivated admin", "admin_id", admin.ID)
		return domain.Admin{}, domain.ErrAdminDeactivated
	}

	return admin, nil
}

// GetUsers returns every user with wallet, purchased plans and the five
// most recent transactions.
func (s *adminService) GetUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindAllWithRelations(ctx)
	if err != nil {
		logger.Error("Failed to get users", err)
		return nil, err
	}

	for i := range users {
		if len(users[i].Transactions) > recentTransactionLimit {
			users[i].Transactions = users[i].Transactions[:recentTransactionLimit]
		}
	}

	return users, nil
}

func (s *adminService) ToggleUser(ctx context.Context, userID string, isActive bool) (domain.User, error) {
	user, err := s.userRepo.UpdateActive(ctx, userID, isActive)
	if err != nil {
		logger.Error("Failed to toggle user", err)
		return domain.User{}, err
	}

	return user, nil
}
