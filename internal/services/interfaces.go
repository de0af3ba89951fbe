package services

import (
	"context"

	"github.com/k1ngsterr1/quick-notes/internal/models"
)

// RecordFilter narrows a record listing.
type RecordFilter struct {
	Tab   models.Tab
	Query string
}

// NewRecordFields holds the raw form values of a record to create.
// Entry, Target and Stop are only used for long and short records.
type NewRecordFields struct {
	Title   string
	Content string
	Kind    models.Kind
	PnL     string
	Entry   string
	Target  string
	Stop    string
}

// RecordServicer defines the contract for the journal record store.
type RecordServicer interface {
	Initialize(ctx context.Context) ([]models.Record, error)
	List(ctx context.Context, filter RecordFilter) ([]models.Record, error)
	Refresh(ctx context.Context, filter RecordFilter) ([]models.Record, error)
	Recent(ctx context.Context, n int) ([]models.Record, error)
	Create(ctx context.Context, fields NewRecordFields) (*models.Record, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// SettingsUpdate carries the fields to change; nil fields are left as is.
type SettingsUpdate struct {
	Name          *string
	DarkMode      *bool
	Currency      *string
	RiskPerTrade  *float64
	AccountSize   *float64
	ShowPnLInHome *bool
}

// SettingsServicer defines the contract for user settings.
type SettingsServicer interface {
	Get(ctx context.Context) (*models.UserSettings, error)
	Update(ctx context.Context, update SettingsUpdate) (*models.UserSettings, error)
	ToggleDarkMode(ctx context.Context) (*models.UserSettings, error)
}

// AuditServicer records journal mutations.
type AuditServicer interface {
	Log(action, recordID string, changes map[string]any)
}
