package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/k1ngsterr1/quick-notes/internal/kv"
	"github.com/k1ngsterr1/quick-notes/internal/models"
)

// ErrInjected is returned by FlakyStore when a failure is armed.
var ErrInjected = errors.New("injected storage failure")

// FixedClock returns a clock frozen at t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// TimeAgo returns a pointer to now minus d, for record timestamps.
func TimeAgo(now time.Time, d time.Duration) *time.Time {
	ts := now.Add(-d)
	return &ts
}

// WriteRecords stores records (newest first) and the counter directly,
// bypassing the record service.
func WriteRecords(t *testing.T, store kv.Store, counter int, records ...models.Record) {
	t.Helper()

	if records == nil {
		records = []models.Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("failed to marshal fixture records: %v", err)
	}
	err = store.SetMany(context.Background(), map[string][]byte{
		kv.KeyRecords:   data,
		kv.KeyIDCounter: []byte(fmt.Sprintf("%d", counter)),
	})
	if err != nil {
		t.Fatalf("failed to write fixture records: %v", err)
	}
}

// ReadCounter returns the persisted id counter, or -1 when it is missing.
func ReadCounter(t *testing.T, store kv.Store) int {
	t.Helper()

	raw, found, err := store.Get(context.Background(), kv.KeyIDCounter)
	if err != nil {
		t.Fatalf("failed to read counter: %v", err)
	}
	if !found {
		return -1
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		t.Fatalf("counter is not an integer: %s", raw)
	}
	return n
}

// Trade builds a trade record fixture.
func Trade(id string, kind models.Kind, pnl string) models.Record {
	return models.Record{ID: id, Title: "Trade " + id, Kind: kind, PnL: pnl, AgeLabel: "Just now"}
}

// FlakyStore wraps a Store and fails reads or writes on demand.
type FlakyStore struct {
	kv.Store

	mu        sync.Mutex
	failRead  bool
	failWrite bool
	writes    int
}

// NewFlakyStore wraps store.
func NewFlakyStore(store kv.Store) *FlakyStore {
	return &FlakyStore{Store: store}
}

// FailReads arms or disarms read failures.
func (f *FlakyStore) FailReads(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failRead = fail
}

// FailWrites arms or disarms write failures.
func (f *FlakyStore) FailWrites(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWrite = fail
}

// Writes returns the number of successful write calls.
func (f *FlakyStore) Writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

func (f *FlakyStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	fail := f.failRead
	f.mu.Unlock()
	if fail {
		return nil, false, ErrInjected
	}
	return f.Store.Get(ctx, key)
}

func (f *FlakyStore) Set(ctx context.Context, key string, value []byte) error {
	if err := f.writeGate(); err != nil {
		return err
	}
	return f.Store.Set(ctx, key, value)
}

func (f *FlakyStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	if err := f.writeGate(); err != nil {
		return err
	}
	return f.Store.SetMany(ctx, entries)
}

func (f *FlakyStore) writeGate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrite {
		return ErrInjected
	}
	f.writes++
	return nil
}
