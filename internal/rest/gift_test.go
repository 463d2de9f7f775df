package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"futureplus/domain"

	"github.com/labstack/echo/v4"
)

type stubGiftService struct {
	participateErr error
	participation  string
	participations []domain.GiftParticipation
}

func (s *stubGiftService) GetActiveGifts(ctx context.Context) ([]domain.Gift, error) {
	return []domain.Gift{{ID: "gift-1", Status: domain.GiftStatusActive}}, nil
}

func (s *stubGiftService) Participate(ctx context.Context, giftID, userID string) (string, error) {
	if s.participateErr != nil {
		return "", s.participateErr
	}
	return s.participation, nil
}

func (s *stubGiftService) GetParticipations(ctx context.Context, userID string) ([]domain.GiftParticipation, error) {
	return s.participations, nil
}

func TestParticipateHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		participateErr error
		wantStatus     int
		wantError      string
	}{
		{
			name:       "missing gift id",
			body:       `{"userId":"user-1"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Gift ID and User ID are required",
		},
		{
			name:           "unknown gift",
			body:           `{"giftId":"gift-x","userId":"user-1"}`,
			participateErr: domain.ErrGiftNotFound,
			wantStatus:     http.StatusNotFound,
			wantError:      "Gift not found",
		},
		{
			name:           "inactive gift",
			body:           `{"giftId":"gift-1","userId":"user-1"}`,
			participateErr: domain.ErrGiftNotActive,
			wantStatus:     http.StatusBadRequest,
			wantError:      "Gift is not active",
		},
		{
			name:       "success",
			body:       `{"giftId":"gift-1","userId":"user-1"}`,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewGiftHandler(&stubGiftService{
				participateErr: tt.participateErr,
				participation:  "part_1700000000000_abc123xyz",
			})

			rec, c := doJSON(echo.New(), http.MethodPost, "/api/gift/participate", tt.body)
			if err := h.Participate(c); err != nil {
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

			var resp map[string]interface{}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp["message"] != "Participation successful" {
				t.Fatalf("message = %v", resp["message"])
			}
			if resp["participationId"] != "part_1700000000000_abc123xyz" {
				t.Fatalf("participationId = %v", resp["participationId"])
			}
		})
	}
}

func TestGetParticipationsHandler_RequiresUserID(t *testing.T) {
	h := NewGiftHandler(&stubGiftService{})

	rec, c := doJSON(echo.New(), http.MethodGet, "/api/gift/participations", "")
	if err := h.GetParticipations(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
