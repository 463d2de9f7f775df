package gift

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"futureplus/domain"
)

type fakeGiftRepo struct {
	gifts []domain.Gift
}

func (f *fakeGiftRepo) FindAll(ctx context.Context) ([]domain.Gift, error) {
	return f.gifts, nil
}

func (f *fakeGiftRepo) FindActive(ctx context.Context) ([]domain.Gift, error) {
	var active []domain.Gift
	for _, g := range f.gifts {
		if g.Status == domain.GiftStatusActive {
			active = append(active, g)
		}
	}
	return active, nil
}

func (f *fakeGiftRepo) FindByID(ctx context.Context, id string) (domain.Gift, error) {
	for _, g := range f.gifts {
		if g.ID == id {
			return g, nil
		}
	}
	return domain.Gift{}, domain.ErrGiftNotFound
}

func (f *fakeGiftRepo) FindByCreatorOrWinner(ctx context.Context, userID string) ([]domain.Gift, error) {
	var out []domain.Gift
	for _, g := range f.gifts {
		if g.UserID == userID || (g.WinnerID != nil && *g.WinnerID == userID) {
			out = append(out, g)
		}
	}
	return out, nil
}

type fakeUserFinder struct {
	ids map[string]bool
}

func (f *fakeUserFinder) FindByID(ctx context.Context, id string) (domain.User, error) {
	if f.ids[id] {
		return domain.User{ID: id}, nil
	}
	return domain.User{}, domain.ErrUserNotFound
}

func TestParticipate(t *testing.T) {
	repo := &fakeGiftRepo{gifts: []domain.Gift{
		{ID: "gift-active", Status: domain.GiftStatusActive},
		{ID: "gift-expired", Status: domain.GiftStatusExpired},
	}}
	users := &fakeUserFinder{ids: map[string]bool{"user-1": true}}
	svc := NewGiftService(repo, users)

	cases := []struct {
		name    string
		giftID  string
		userID  string
		wantErr error
	}{
		{"unknown gift", "gift-missing", "user-1", domain.ErrGiftNotFound},
		{"inactive gift", "gift-expired", "user-1", domain.ErrGiftNotActive},
		{"unknown user", "gift-active", "user-missing", domain.ErrUserNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := svc.Participate(context.Background(), tc.giftID, tc.userID)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if id != "" {
				t.Fatalf("expected no participation id on failure, got %q", id)
			}
		})
	}

	id, err := svc.Participate(context.Background(), "gift-active", "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(id, "part_") {
		t.Fatalf("expected synthetic participation id, got %q", id)
	}
}

func TestGetParticipations_StatusMapping(t *testing.T) {
	winner := "user-1"
	repo := &fakeGiftRepo{gifts: []domain.Gift{
		{ID: "gift-won", Name: "Won Gift", Type: "BONUS", Value: 500, UserID: "user-2", WinnerID: &winner, CreatedAt: time.Now()},
		{ID: "gift-created", Name: "Created Gift", Type: "CASHBACK", Value: 100, UserID: "user-1", CreatedAt: time.Now()},
	}}
	svc := NewGiftService(repo, &fakeUserFinder{ids: map[string]bool{"user-1": true}})

	participations, err := svc.GetParticipations(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(participations) != 2 {
		t.Fatalf("expected 2 participations, got %d", len(participations))
	}

	byID := make(map[string]domain.GiftParticipation)
	for _, p := range participations {
		byID[p.GiftID] = p
	}

	if byID["gift-won"].Status != domain.ParticipationStatusWon {
		t.Fatalf("expected WON, got %s", byID["gift-won"].Status)
	}
	if byID["gift-created"].Status != domain.ParticipationStatusParticipated {
		t.Fatalf("expected PARTICIPATED, got %s", byID["gift-created"].Status)
	}
	if byID["gift-won"].Gift.Value != 500 {
		t.Fatalf("expected gift summary to carry value, got %v", byID["gift-won"].Gift.Value)
	}
}

func TestGetActiveGifts_FiltersStatus(t *testing.T) {
	repo := &fakeGiftRepo{gifts: []domain.Gift{
		{ID: "g1", Status: domain.GiftStatusActive},
		{ID: "g2", Status: domain.GiftStatusClaimed},
		{ID: "g3", Status: domain.GiftStatusActive},
	}}
	svc := NewGiftService(repo, &fakeUserFinder{})

	gifts, err := svc.GetActiveGifts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gifts) != 2 {
		t.Fatalf("expected 2 active gifts, got %d", len(gifts))
	}
}
