package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "github.com/k1ngsterr1/quick-notes/internal/errors"
	"github.com/k1ngsterr1/quick-notes/internal/models"
	"github.com/k1ngsterr1/quick-notes/internal/services"
)

// --- mock settings service ---

type mockSettingsService struct {
	getFn    func(ctx context.Context) (*models.UserSettings, error)
	updateFn func(ctx context.Context, update services.SettingsUpdate) (*models.UserSettings, error)
	toggleFn func(ctx context.Context) (*models.UserSettings, error)
}

func (m *mockSettingsService) Get(ctx context.Context) (*models.UserSettings, error) {
	if m.getFn != nil {
		return m.getFn(ctx)
	}
	s := models.DefaultSettings()
	return &s, nil
}

func (m *mockSettingsService) Update(ctx context.Context, update services.SettingsUpdate) (*models.UserSettings, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, update)
	}
	s := models.DefaultSettings()
	return &s, nil
}

func (m *mockSettingsService) ToggleDarkMode(ctx context.Context) (*models.UserSettings, error) {
	if m.toggleFn != nil {
		return m.toggleFn(ctx)
	}
	s := models.DefaultSettings()
	s.DarkMode = !s.DarkMode
	return &s, nil
}

var _ services.SettingsServicer = (*mockSettingsService)(nil)

func setupSettingsRouter(handler *SettingsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/settings", handler.GetSettings)
	r.PUT("/settings", handler.UpdateSettings)
	r.POST("/settings/dark-mode", handler.ToggleDarkMode)
	return r
}

func TestSettingsHandler_GetSettings(t *testing.T) {
	t.Run("returns 200 with settings", func(t *testing.T) {
		r := setupSettingsRouter(NewSettingsHandler(&mockSettingsService{}))

		rec := doRequest(r, "GET", "/settings", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var resp SettingsResponse
		decodeStrict(t, rec, &resp)
		if resp.Settings == nil || *resp.Settings != models.DefaultSettings() {
			t.Errorf("unexpected settings %+v", resp.Settings)
		}
	})

	t.Run("returns 500 on storage error", func(t *testing.T) {
		svc := &mockSettingsService{
			getFn: func(context.Context) (*models.UserSettings, error) {
				return nil, apperrors.Wrap(apperrors.ErrStorage, errors.New("locked"))
			},
		}
		r := setupSettingsRouter(NewSettingsHandler(svc))

		rec := doRequest(r, "GET", "/settings", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "STORAGE_ERROR")
	})
}

func TestSettingsHandler_UpdateSettings(t *testing.T) {
	t.Run("passes only supplied fields", func(t *testing.T) {
		svc := &mockSettingsService{
			updateFn: func(_ context.Context, u services.SettingsUpdate) (*models.UserSettings, error) {
				if u.Currency == nil || *u.Currency != "EUR" {
					t.Errorf("expected currency EUR, got %v", u.Currency)
				}
				if u.RiskPerTrade == nil || *u.RiskPerTrade != 1.5 {
					t.Errorf("expected risk 1.5, got %v", u.RiskPerTrade)
				}
				if u.Name != nil || u.DarkMode != nil || u.AccountSize != nil || u.ShowPnLInHome != nil {
					t.Errorf("unexpected fields set: %+v", u)
				}
				s := models.DefaultSettings()
				s.Currency = *u.Currency
				s.RiskPerTrade = *u.RiskPerTrade
				return &s, nil
			},
		}
		r := setupSettingsRouter(NewSettingsHandler(svc))

		rec := doRequest(r, "PUT", "/settings", `{"currency":"EUR","riskPerTrade":1.5}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		settings := parseJSON(t, rec)["settings"].(map[string]interface{})
		if settings["currency"] != "EUR" {
			t.Errorf("expected EUR, got %v", settings["currency"])
		}
	})

	invalid := map[string]string{
		"unknown currency": `{"currency":"XYZ"}`,
		"risk over 100":    `{"riskPerTrade":150}`,
		"negative account": `{"accountSize":-5}`,
		"wrong type":       `{"darkMode":"yes"}`,
	}
	for name, body := range invalid {
		t.Run("returns 400 on "+name, func(t *testing.T) {
			svc := &mockSettingsService{
				updateFn: func(context.Context, services.SettingsUpdate) (*models.UserSettings, error) {
					t.Error("service must not be called")
					return nil, nil
				},
			}
			r := setupSettingsRouter(NewSettingsHandler(svc))

			rec := doRequest(r, "PUT", "/settings", body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		})
	}
}

func TestSettingsHandler_ToggleDarkMode(t *testing.T) {
	r := setupSettingsRouter(NewSettingsHandler(&mockSettingsService{}))

	rec := doRequest(r, "POST", "/settings/dark-mode", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	settings := parseJSON(t, rec)["settings"].(map[string]interface{})
	if settings["darkMode"] != false {
		t.Errorf("expected dark mode off, got %v", settings["darkMode"])
	}
}
