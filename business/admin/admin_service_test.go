package admin

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"futureplus/domain"
)

type fakeAdminRepo struct {
	admins map[string]domain.Admin // by key
}

func (f *fakeAdminRepo) FindByKey(ctx context.Context, key string) (domain.Admin, error) {
	a, ok := f.admins[key]
	if !ok {
		return domain.Admin{}, domain.ErrAdminNotFound
	}
	return a, nil
}

type fakeUserRepo struct {
	users []domain.User
}

func (f *fakeUserRepo) FindAllWithRelations(ctx context.Context) ([]domain.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) UpdateActive(ctx context.Context, id string, isActive bool) (domain.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].IsActive = isActive
			return f.users[i], nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func TestLoginWithKey(t *testing.T) {
	repo := &fakeAdminRepo{admins: map[string]domain.Admin{
		"valid-key":    {ID: "admin-1", Email: "admin@futureplus.in", IsActive: true},
		"disabled-key": {ID: "admin-2", Email: "old@futureplus.in", IsActive: false},
	}}
	svc := NewAdminService(repo, &fakeUserRepo{})

	if _, err := svc.LoginWithKey(context.Background(), "wrong-key"); !errors.Is(err, domain.ErrInvalidAdminKey) {
		t.Fatalf("expected ErrInvalidAdminKey, got %v", err)
	}

	if _, err := svc.LoginWithKey(context.Background(), "disabled-key"); !errors.Is(err, domain.ErrAdminDeactivated) {
		t.Fatalf("expected ErrAdminDeactivated, got %v", err)
	}

	admin, err := svc.LoginWithKey(context.Background(), "valid-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if admin.ID != "admin-1" {
		t.Fatalf("expected admin-1, got %s", admin.ID)
	}
}

func TestGetUsers_TrimsTransactions(t *testing.T) {
	var txs []domain.Transaction
	for i := 0; i < 8; i++ {
		txs = append(txs, domain.Transaction{ID: fmt.Sprintf("tx-%d", i)})
	}

	repo := &fakeUserRepo{users: []domain.User{
		{ID: "user-1", Transactions: txs},
		{ID: "user-2"},
	}}
	svc := NewAdminService(&fakeAdminRepo{}, repo)

	users, err := svc.GetUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if len(users[0].Transactions) != 5 {
		t.Fatalf("expected 5 recent transactions, got %d", len(users[0].Transactions))
	}
}

func TestToggleUser(t *testing.T) {
	repo := &fakeUserRepo{users: []domain.User{{ID: "user-1", IsActive: true}}}
	svc := NewAdminService(&fakeAdminRepo{}, repo)

	user, err := svc.ToggleUser(context.Background(), "user-1", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.IsActive {
		t.Fatal("expected user to be deactivated")
	}

	if _, err := svc.ToggleUser(context.Background(), "user-missing", true); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
