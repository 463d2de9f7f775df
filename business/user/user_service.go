package user

import (
	"context"
	"errors"
	"time"

	"futureplus/domain"
	redisrepo "futureplus/internal/repository/redis"
	"futureplus/pkg/logger"
	"futureplus/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByEmailOrMobile(ctx context.Context, email, mobile string) (domain.User, error)
	FindByIDWithWallet(ctx context.Context, id string) (domain.User, error)
}

// TokenStore contract interface
type TokenStore interface {
	StoreToken(ctx context.Context, userID, token string, data redisrepo.TokenData, ttl time.Duration) error
	ValidateToken(ctx context.Context, token string) (string, error)
	DeleteToken(ctx context.Context, userID, token string) error
}

const tokenTTL = 24 * time.Hour

type userService struct {
	userRepo   UserRepository
	validate   *validator.Validate
	tokenStore TokenStore
	jwts       *utils.JWTManager
}

func NewUserService(userRepo UserRepository, validate *validator.Validate, tokenStore TokenStore, jwts *utils.JWTManager) *userService {
	return &userService{
		userRepo:   userRepo,
		validate:   validate,
		tokenStore: tokenStore,
		jwts:       jwts,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Mobile   string
	Password string
}

func (s *userService) Register(ctx context.Context, input RegisterInput) (domain.User, error) {
	if err := s.validate.Var(input.Email, "required,email"); err != nil {
		logger.Warn("Invalid email format", "email", input.Email)
		return domain.User{}, domain.InvalidInput("invalid email format")
	}

	if err := s.validate.Var(input.Password, "required,min=6"); err != nil {
		logger.Warn("Invalid user password")
		return domain.User{}, domain.InvalidInput("password must be at least 6 characters")
	}

	// Check if email or mobile is already taken
	existing, err := s.userRepo.FindByEmailOrMobile(ctx, input.Email, input.Mobile)
	if err == nil && existing.ID != "" {
		logger.Warn("Registration with existing email or mobile", "email", input.Email)
		return domain.User{}, domain.ErrDuplicateUser
	}
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, errors.New("failed to hash password")
	}

	newUser := domain.User{
		Name:     input.Name,
		Email:    input.Email,
		Mobile:   input.Mobile,
		Password: passwordHash,
		IsActive: true,
		Wallet:   &domain.Wallet{Balance: 0, Bonus: 0},
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return domain.User{}, err
	}

	return newUser, nil
}

func (s *userService) Login(ctx context.Context, email, password, ipAddress, userAgent string) (string, domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.User{}, domain.ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}

	if !user.IsActive {
		logger.Warn("Login attempt on deactivated account", "user_id", user.ID)
		return "", domain.User{}, domain.ErrAccountDeactivated
	}

	if !utils.CheckPassword(password, user.Password) {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwts.Generate(user.ID, "user")
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	now := time.Now()
	err = s.tokenStore.StoreToken(ctx, user.ID, token, redisrepo.TokenData{
		UserID:    user.ID,
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: now.Add(tokenTTL),
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}, tokenTTL)
	if err != nil {
		logger.Warn("Failed to store session token", err)
	}

	return token, user, nil
}

// ValidateTokenFromRedis resolves a session token back to its user ID.
func (s *userService) ValidateTokenFromRedis(ctx context.Context, token string) (string, error) {
	return s.tokenStore.ValidateToken(ctx, token)
}

// Logout removes the stored session. The JWT itself simply ages out;
// without the Redis entry it no longer passes the auth middleware.
func (s *userService) Logout(ctx context.Context, userID, token string) error {
	if err := s.tokenStore.DeleteToken(ctx, userID, token); err != nil {
		logger.Error("Failed to delete session token", err)
		return err
	}

	return nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.userRepo.FindByIDWithWallet(ctx, userID)
	if err != nil {
		logger.Error("Failed to get user profile", err)
		return domain.User{}, err
	}

	return user, nil
}
