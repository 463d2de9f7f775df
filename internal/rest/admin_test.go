package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"futureplus/business/plan"
	"futureplus/domain"

	"github.com/labstack/echo/v4"
)

type stubAdminService struct {
	loginErr error
	admin    domain.Admin
	toggled  domain.User
}

func (s *stubAdminService) LoginWithKey(ctx context.Context, key string) (domain.Admin, error) {
	if s.loginErr != nil {
		return domain.Admin{}, s.loginErr
	}
	return s.admin, nil
}

func (s *stubAdminService) GetUsers(ctx context.Context) ([]domain.User, error) {
	return nil, nil
}

func (s *stubAdminService) ToggleUser(ctx context.Context, userID string, isActive bool) (domain.User, error) {
	s.toggled = domain.User{ID: userID, IsActive: isActive}
	return s.toggled, nil
}

type stubPlanAdminService struct {
	lastUpdate plan.PlanUpdate
	plan       domain.Plan
}

func (s *stubPlanAdminService) ToggleActive(ctx context.Context, planID string, isActive bool) (domain.Plan, error) {
	s.plan = domain.Plan{ID: planID, IsActive: isActive}
	return s.plan, nil
}

func (s *stubPlanAdminService) Update(ctx context.Context, planID string, update plan.PlanUpdate) (domain.Plan, error) {
	s.lastUpdate = update
	return domain.Plan{ID: planID}, nil
}

type stubGiftAdminService struct{}

func (s *stubGiftAdminService) GetAllGifts(ctx context.Context) ([]domain.Gift, error) {
	return nil, nil
}

func newAdminHandler(adminSvc *stubAdminService, planSvc *stubPlanAdminService) *AdminHandler {
	return NewAdminHandler(adminSvc, planSvc, &stubGiftAdminService{})
}

func TestAdminLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginErr   error
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing key",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Admin key is required",
		},
		{
			name:       "invalid key",
			body:       `{"key":"nope"}`,
			loginErr:   domain.ErrInvalidAdminKey,
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid admin key",
		},
		{
			name:       "success",
			body:       `{"key":"valid-key"}`,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAdminHandler(&stubAdminService{
				loginErr: tt.loginErr,
				admin:    domain.Admin{ID: "admin-1", Email: "admin@futureplus.in", Key: "valid-key", IsActive: true},
			}, &stubPlanAdminService{})

			rec, c := doJSON(echo.New(), http.MethodPost, "/api/admin/login", tt.body)
			if err := h.Login(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			if tt.wantError != "" {
				var resp ResponseError
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("unmarshal: %v", err)
				}
				if resp.Error != tt.wantError {
					t.Fatalf("error = %q, want %q", resp.Error, tt.wantError)
				}
				return
			}

			var resp struct {
				Admin AdminResponse `json:"admin"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp.Admin.ID != "admin-1" {
				t.Fatalf("admin id = %q", resp.Admin.ID)
			}
			// Key and password never leave the service.
			if body := rec.Body.String(); strings.Contains(body, "valid-key") || strings.Contains(body, "password") {
				t.Fatalf("response leaks credentials: %s", body)
			}
		})
	}
}

func TestToggleUser_RequiresExplicitIsActive(t *testing.T) {
	h := newAdminHandler(&stubAdminService{}, &stubPlanAdminService{})

	rec, c := doJSON(echo.New(), http.MethodPost, "/api/admin/users/toggle", `{"userId":"user-1"}`)
	if err := h.ToggleUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestToggleUser_DeactivateMessage(t *testing.T) {
	adminSvc := &stubAdminService{}
	h := newAdminHandler(adminSvc, &stubPlanAdminService{})

	rec, c := doJSON(echo.New(), http.MethodPost, "/api/admin/users/toggle", `{"userId":"user-1","isActive":false}`)
	if err := h.ToggleUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["message"] != "User deactivated successfully" {
		t.Fatalf("message = %v", resp["message"])
	}
	if adminSvc.toggled.IsActive {
		t.Fatal("expected service called with isActive=false")
	}
}

func TestUpdatePlan_PassesOnlyProvidedFields(t *testing.T) {
	planSvc := &stubPlanAdminService{}
	h := newAdminHandler(&stubAdminService{}, planSvc)

	rec, c := doJSON(echo.New(), http.MethodPost, "/api/admin/plans/update", `{"planId":"plan-1","price":500}`)
	if err := h.UpdatePlan(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	if planSvc.lastUpdate.Price == nil || *planSvc.lastUpdate.Price != 500 {
		t.Fatalf("price not forwarded: %+v", planSvc.lastUpdate)
	}
	if planSvc.lastUpdate.Name != nil || planSvc.lastUpdate.Duration != nil ||
		planSvc.lastUpdate.DailyReturn != nil || planSvc.lastUpdate.IsActive != nil {
		t.Fatalf("absent fields should stay nil: %+v", planSvc.lastUpdate)
	}
}
