package services

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"go.uber.org/zap"

	apperrors "github.com/k1ngsterr1/quick-notes/internal/errors"
	"github.com/k1ngsterr1/quick-notes/internal/kv"
	"github.com/k1ngsterr1/quick-notes/internal/logger"
	"github.com/k1ngsterr1/quick-notes/internal/models"
	"github.com/k1ngsterr1/quick-notes/internal/validator"
)

// settingsService handles the user settings entry.
type settingsService struct {
	mu    sync.Mutex
	store kv.Store
	log   *zap.SugaredLogger
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(store kv.Store) SettingsServicer {
	return &settingsService{store: store, log: logger.Named("settings")}
}

// Get returns the stored settings, persisting the defaults on first read.
func (s *settingsService) Get(ctx context.Context) (*models.UserSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// Update applies the non-nil fields of update.
func (s *settingsService) Update(ctx context.Context, update SettingsUpdate) (*models.UserSettings, error) {
	if err := validateSettingsUpdate(&update); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		settings.Name = *update.Name
	}
	if update.DarkMode != nil {
		settings.DarkMode = *update.DarkMode
	}
	if update.Currency != nil {
		settings.Currency = *update.Currency
	}
	if update.RiskPerTrade != nil {
		settings.RiskPerTrade = *update.RiskPerTrade
	}
	if update.AccountSize != nil {
		settings.AccountSize = *update.AccountSize
	}
	if update.ShowPnLInHome != nil {
		settings.ShowPnLInHome = *update.ShowPnLInHome
	}

	if err := s.save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// ToggleDarkMode flips the dark mode flag.
func (s *settingsService) ToggleDarkMode(ctx context.Context) (*models.UserSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	settings.DarkMode = !settings.DarkMode
	if err := s.save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) load(ctx context.Context) (*models.UserSettings, error) {
	raw, found, err := s.store.Get(ctx, kv.KeyUserSettings)
	if err != nil {
		s.log.Errorw("failed to read settings", "error", err)
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	if !found {
		settings := models.DefaultSettings()
		if err := s.save(ctx, &settings); err != nil {
			return nil, err
		}
		s.log.Infow("default settings stored")
		return &settings, nil
	}

	var settings models.UserSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		s.log.Errorw("stored settings are corrupt", "error", err)
		return nil, apperrors.Wrap(apperrors.ErrCorruptStorage, err)
	}
	return &settings, nil
}

func (s *settingsService) save(ctx context.Context, settings *models.UserSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.store.Set(ctx, kv.KeyUserSettings, data); err != nil {
		s.log.Errorw("failed to save settings", "error", err)
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

func validateSettingsUpdate(update *SettingsUpdate) error {
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "name must not be empty")
		}
		update.Name = &name
	}
	if update.Currency != nil {
		code := strings.ToUpper(strings.TrimSpace(*update.Currency))
		if !validator.ValidCurrency(code) {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "currency must be an ISO 4217 code")
		}
		update.Currency = &code
	}
	if update.RiskPerTrade != nil && (*update.RiskPerTrade <= 0 || *update.RiskPerTrade > 100) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "risk per trade must be greater than 0 and at most 100")
	}
	if update.AccountSize != nil && *update.AccountSize < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "account size must not be negative")
	}
	return nil
}
