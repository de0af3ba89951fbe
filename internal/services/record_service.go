package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/k1ngsterr1/quick-notes/internal/errors"
	"github.com/k1ngsterr1/quick-notes/internal/kv"
	"github.com/k1ngsterr1/quick-notes/internal/logger"
	"github.com/k1ngsterr1/quick-notes/internal/models"
	"github.com/k1ngsterr1/quick-notes/internal/normalize"
)

// recordService keeps the journal as one newest-first JSON array plus an id
// counter. Every operation holds mu, so read-modify-write cycles from
// concurrent callers never interleave.
type recordService struct {
	mu    sync.Mutex
	store kv.Store
	now   func() time.Time
	ages  AgeFormatter
	audit AuditServicer
	log   *zap.SugaredLogger
}

// RecordOption configures a record service.
type RecordOption func(*recordService)

// WithClock overrides the time source.
func WithClock(now func() time.Time) RecordOption {
	return func(s *recordService) { s.now = now }
}

// WithAgeFormatter sets how timestamps are rendered as age labels.
func WithAgeFormatter(f AgeFormatter) RecordOption {
	return func(s *recordService) { s.ages = f }
}

// WithAudit sets the mutation audit sink.
func WithAudit(a AuditServicer) RecordOption {
	return func(s *recordService) { s.audit = a }
}

// NewRecordService creates a new RecordServicer.
func NewRecordService(store kv.Store, opts ...RecordOption) RecordServicer {
	s := &recordService{
		store: store,
		now:   time.Now,
		ages:  DefaultAgeFormatter(),
		log:   logger.Named("records"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the journal, seeding it on first use, and repairs an id
// counter that lags behind the stored ids.
func (s *recordService) Initialize(ctx context.Context) ([]models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}

	counter, found, err := s.readCounter(ctx)
	if err != nil {
		return nil, err
	}
	if highest := highestID(records); !found || counter < highest {
		if err := s.store.Set(ctx, kv.KeyIDCounter, []byte(strconv.Itoa(highest))); err != nil {
			s.log.Errorw("failed to reconcile id counter", "error", err, "counter", counter, "highest_id", highest)
			return nil, apperrors.Wrap(apperrors.ErrStorage, err)
		}
		s.log.Warnw("id counter reconciled", "previous", counter, "found", found, "counter", highest)
	}

	return s.labelled(records), nil
}

// List returns the records matching filter, newest first.
func (s *recordService) List(ctx context.Context, filter RecordFilter) ([]models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}
	return s.labelled(applyFilter(records, filter)), nil
}

// Refresh re-reads durable state. Hosting shells call it when the list
// becomes visible again.
func (s *recordService) Refresh(ctx context.Context, filter RecordFilter) ([]models.Record, error) {
	records, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.log.Debugw("records refreshed", "tab", filter.Tab, "query", filter.Query, "count", len(records))
	return records, nil
}

// Recent returns at most n of the newest records.
func (s *recordService) Recent(ctx context.Context, n int) ([]models.Record, error) {
	if n <= 0 {
		return []models.Record{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) > n {
		records = records[:n]
	}
	return s.labelled(records), nil
}

// Create validates and normalizes fields, assigns the next id and prepends
// the record. The list and the counter are written together.
func (s *recordService) Create(ctx context.Context, fields NewRecordFields) (*models.Record, error) {
	record, err := buildRecord(fields)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}
	counter, _, err := s.readCounter(ctx)
	if err != nil {
		return nil, err
	}

	next := max(counter, highestID(records)) + 1
	now := s.now()
	record.ID = strconv.Itoa(next)
	record.Timestamp = &now
	record.AgeLabel = AgeJustNow

	updated := make([]models.Record, 0, len(records)+1)
	updated = append(updated, record)
	updated = append(updated, records...)

	data, err := json.Marshal(updated)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	err = s.store.SetMany(ctx, map[string][]byte{
		kv.KeyRecords:   data,
		kv.KeyIDCounter: []byte(strconv.Itoa(next)),
	})
	if err != nil {
		s.log.Errorw("failed to save record", "error", err, "id", record.ID)
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	s.auditLog("create", record.ID, map[string]any{"kind": record.Kind, "title": record.Title})
	return &record, nil
}

// Delete removes the record with the given id and reports whether one was
// removed. Unknown ids are ignored without touching storage.
func (s *recordService) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, found, err := s.readRecords(ctx)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	idx := -1
	for i, r := range records {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	updated := make([]models.Record, 0, len(records)-1)
	updated = append(updated, records[:idx]...)
	updated = append(updated, records[idx+1:]...)

	data, err := json.Marshal(updated)
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.store.Set(ctx, kv.KeyRecords, data); err != nil {
		s.log.Errorw("failed to delete record", "error", err, "id", id)
		return false, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	s.auditLog("delete", id, map[string]any{"title": records[idx].Title})
	return true, nil
}

// loadOrSeed returns the stored records, writing the seed journal and its
// counter in one step when nothing has been stored yet.
func (s *recordService) loadOrSeed(ctx context.Context) ([]models.Record, error) {
	records, found, err := s.readRecords(ctx)
	if err != nil {
		return nil, err
	}
	if found {
		return records, nil
	}

	records = seedRecords(s.now())
	data, err := json.Marshal(records)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	err = s.store.SetMany(ctx, map[string][]byte{
		kv.KeyRecords:   data,
		kv.KeyIDCounter: []byte(strconv.Itoa(len(records))),
	})
	if err != nil {
		s.log.Errorw("failed to seed journal", "error", err)
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	s.log.Infow("journal seeded", "records", len(records))
	return records, nil
}

func (s *recordService) readRecords(ctx context.Context) ([]models.Record, bool, error) {
	raw, found, err := s.store.Get(ctx, kv.KeyRecords)
	if err != nil {
		s.log.Errorw("failed to read records", "error", err)
		return nil, false, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if !found {
		return nil, false, nil
	}

	var records []models.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		s.log.Errorw("stored records are corrupt", "error", err)
		return nil, false, apperrors.Wrap(apperrors.ErrCorruptStorage, err)
	}
	if records == nil {
		records = []models.Record{}
	}
	return records, true, nil
}

func (s *recordService) readCounter(ctx context.Context) (int, bool, error) {
	raw, found, err := s.store.Get(ctx, kv.KeyIDCounter)
	if err != nil {
		s.log.Errorw("failed to read id counter", "error", err)
		return 0, false, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if !found {
		return 0, false, nil
	}

	var counter int
	if err := json.Unmarshal(raw, &counter); err != nil {
		s.log.Errorw("stored id counter is corrupt", "error", err, "value", string(raw))
		return 0, false, apperrors.Wrap(apperrors.ErrCorruptStorage, fmt.Errorf("id counter %q: %w", raw, err))
	}
	return counter, true, nil
}

func (s *recordService) labelled(records []models.Record) []models.Record {
	now := s.now()
	out := make([]models.Record, len(records))
	for i, r := range records {
		r.AgeLabel = s.ages.Label(r, now)
		out[i] = r
	}
	return out
}

func (s *recordService) auditLog(action, id string, changes map[string]any) {
	if s.audit != nil {
		s.audit.Log(action, id, changes)
	}
}

// buildRecord validates the form values and produces a record without id
// or timestamp.
func buildRecord(fields NewRecordFields) (models.Record, error) {
	title := strings.TrimSpace(fields.Title)
	if title == "" {
		return models.Record{}, apperrors.WithMessage(apperrors.ErrValidation, "Please enter a title for your note")
	}

	kind := fields.Kind
	if kind == "" {
		kind = models.KindNote
	}
	if !kind.Valid() {
		return models.Record{}, apperrors.WithMessage(apperrors.ErrValidation, fmt.Sprintf("unknown record kind %q", fields.Kind))
	}

	record := models.Record{Title: title, Kind: kind, Content: fields.Content}
	if kind.IsTrade() {
		record.PnL = normalize.Percent(strings.TrimSpace(fields.PnL), kind)
		record.Content = normalize.TradeContent(
			fields.Content,
			normalize.Currency(strings.TrimSpace(fields.Entry)),
			normalize.Currency(strings.TrimSpace(fields.Target)),
			normalize.Currency(strings.TrimSpace(fields.Stop)),
		)
	}
	return record, nil
}

func applyFilter(records []models.Record, filter RecordFilter) []models.Record {
	query := strings.ToLower(filter.Query)
	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if !filter.Tab.Includes(r.Kind) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(r.Title), query) &&
			!strings.Contains(strings.ToLower(r.Content), query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// highestID returns the largest numeric id in records, or 0.
func highestID(records []models.Record) int {
	highest := 0
	for _, r := range records {
		if n, err := strconv.Atoi(r.ID); err == nil && n > highest {
			highest = n
		}
	}
	return highest
}

func seedRecords(now time.Time) []models.Record {
	ago := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}
	day := 24 * time.Hour

	return []models.Record{
		{
			ID:        "1",
			Title:     "AAPL Long",
			Content:   "Entry: $175.50, TP: $185, SL: $170\nR:R = 1.9, Size: 10 shares",
			Kind:      models.KindLong,
			PnL:       "+2.5%",
			Timestamp: ago(2 * time.Hour),
			AgeLabel:  "2 hours ago",
		},
		{
			ID:        "2",
			Title:     "BTC/USD Short",
			Content:   "Entry: $65,400, TP: $63,000, SL: $66,500\nFib retracement at 0.618",
			Kind:      models.KindShort,
			PnL:       "-1.2%",
			Timestamp: ago(day),
			AgeLabel:  "1 day ago",
		},
		{
			ID:        "3",
			Title:     "EUR/USD Long",
			Content:   "Entry: 1.0850, TP: 1.0950, SL: 1.0800\nRSI oversold, bullish divergence",
			Kind:      models.KindLong,
			PnL:       "+0.8%",
			Timestamp: ago(3 * day),
			AgeLabel:  "3 days ago",
		},
		{
			ID:        "4",
			Title:     "Trading Rules",
			Content:   "1. Never risk more than 2%\n2. Wait for confirmation\n3. Follow the trend",
			Kind:      models.KindNote,
			Timestamp: ago(7 * day),
			AgeLabel:  "1 week ago",
		},
		{
			ID:        "5",
			Title:     "Position Sizing Formula",
			Content:   "Position Size = (Account × Risk%) ÷ (Entry - Stop Loss)",
			Kind:      models.KindFormula,
			Timestamp: ago(7 * day),
			AgeLabel:  "1 week ago",
		},
	}
}
