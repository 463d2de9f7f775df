package gift

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"futureplus/domain"
	"futureplus/pkg/logger"
)

// GiftRepository contract interface
type GiftRepository interface {
	FindAll(ctx context.Context) ([]domain.Gift, error)
	FindActive(ctx context.Context) ([]domain.Gift, error)
	FindByID(ctx context.Context, id string) (domain.Gift, error)
	FindByCreatorOrWinner(ctx context.Context, userID string) ([]domain.Gift, error)
}

// UserFinder contract interface
type UserFinder interface {
	FindByID(ctx context.Context, id string) (domain.User, error)
}

type giftService struct {
	giftRepo GiftRepository
	users    UserFinder
}

func NewGiftService(giftRepo GiftRepository, users UserFinder) *giftService {
	return &giftService{
		giftRepo: giftRepo,
		users:    users,
	}
}

func (s *giftService) GetActiveGifts(ctx context.Context) ([]domain.Gift, error) {
	gifts, err := s.giftRepo.FindActive(ctx)
	if err != nil {
		logger.Error("Failed to get active gifts", err)
		return nil, err
	}

	return gifts, nil
}

func (s *giftService) GetAllGifts(ctx context.Context) ([]domain.Gift, error) {
	gifts, err := s.giftRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to get gifts", err)
		return nil, err
	}

	return gifts, nil
}

// Participate validates the gift and the user, then hands back a
// synthetic participation id. No participation record is persisted and
// no winner is selected here; both stay with the operators.
func (s *giftService) Participate(ctx context.Context, giftID, userID string) (string, error) {
	gift, err := s.giftRepo.FindByID(ctx, giftID)
	if err != nil {
		return "", err
	}

	if gift.Status != domain.GiftStatusActive {
		return "", domain.ErrGiftNotActive
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return "", err
	}

	return newParticipationID(), nil
}

const participationIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func newParticipationID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = participationIDAlphabet[rand.Intn(len(participationIDAlphabet))]
	}

	return fmt.Sprintf("part_%d_%s", time.Now().UnixMilli(), suffix)
}

// GetParticipations derives a participation view from gifts the user
// created or won.
func (s *giftService) GetParticipations(ctx context.Context, userID string) ([]domain.GiftParticipation, error) {
	gifts, err := s.giftRepo.FindByCreatorOrWinner(ctx, userID)
	if err != nil {
		logger.Error("Failed to get participations", err)
		return nil, err
	}

	participations := make([]domain.GiftParticipation, 0, len(gifts))
	for _, g := range gifts {
		status := domain.ParticipationStatusParticipated
		if g.WinnerID != nil && *g.WinnerID == userID {
			status = domain.ParticipationStatusWon
		}

		participations = append(participations, domain.GiftParticipation{
			ID:     g.ID,
			GiftID: g.ID,
			Gift: domain.GiftSummary{
				Name:  g.Name,
				Type:  g.Type,
				Value: g.Value,
			},
			Status:    status,
			CreatedAt: g.CreatedAt,
		})
	}

	return participations, nil
}
