package referral

import (
	"context"
	"fmt"
	"strings"

	"futureplus/domain"
	"futureplus/pkg/logger"
)

// ReferralRepository contract interface
type ReferralRepository interface {
	FindByReferrer(ctx context.Context, referrerID string) ([]domain.Referral, error)
}

type referralService struct {
	referralRepo ReferralRepository
	appURL       string
}

func NewReferralService(referralRepo ReferralRepository, appURL string) *referralService {
	return &referralService{
		referralRepo: referralRepo,
		appURL:       appURL,
	}
}

func (s *referralService) GetReferralInfo(ctx context.Context, userID string) (domain.ReferralInfo, error) {
	referrals, err := s.referralRepo.FindByReferrer(ctx, userID)
	if err != nil {
		logger.Error("Failed to get referrals", err)
		return domain.ReferralInfo{}, err
	}

	code := DeriveCode(userID)

	return domain.ReferralInfo{
		Referrals:    referrals,
		ReferralCode: code,
		ReferralLink: fmt.Sprintf("%s?ref=%s", s.appURL, code),
	}, nil
}

// DeriveCode builds the share code from the last six characters of the
// user ID. It is derived on every request and never checked for
// collisions.
func DeriveCode(userID string) string {
	suffix := userID
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}

	return "FP" + strings.ToUpper(suffix)
}
