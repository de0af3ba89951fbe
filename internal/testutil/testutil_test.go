package testutil_test

import (
	"context"
	"testing"

	"github.com/k1ngsterr1/quick-notes/internal/errors"
	"github.com/k1ngsterr1/quick-notes/internal/kv"
	"github.com/k1ngsterr1/quick-notes/internal/models"
	"github.com/k1ngsterr1/quick-notes/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	if err := db.Table("kv_entries").Count(&count).Error; err != nil {
		t.Errorf("table kv_entries should exist after migration: %v", err)
	}
}

func TestSetupTestDB_MigrationSchema(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	type column struct {
		Name string
		Type string
	}
	var columns []column
	if err := db.Raw("SELECT name, type FROM pragma_table_info('kv_entries')").Scan(&columns).Error; err != nil {
		t.Fatalf("failed to read kv_entries schema: %v", err)
	}

	types := make(map[string]string, len(columns))
	for _, c := range columns {
		types[c.Name] = c.Type
	}
	if types["value"] != "TEXT" {
		t.Errorf("expected value column of type TEXT, got %q", types["value"])
	}

	var version int64
	if err := db.Raw("SELECT version FROM schema_migrations").Scan(&version).Error; err != nil {
		t.Fatalf("failed to read migration version: %v", err)
	}
	if version != 1 {
		t.Errorf("expected migration version 1, got %d", version)
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.AssertNoError(t, kv.NewGormStore(first).Set(context.Background(), kv.KeyIDCounter, []byte("1")))

	var count int64
	second.Model(&models.Entry{}).Count(&count)
	if count != 0 {
		t.Errorf("expected second database to be empty, got %d rows", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	store := kv.NewGormStore(db)

	if got := testutil.ReadCounter(t, store); got != -1 {
		t.Errorf("expected missing counter, got %d", got)
	}

	testutil.WriteRecords(t, store, 7, testutil.Trade("7", models.KindLong, "+1%"))
	if got := testutil.ReadCounter(t, store); got != 7 {
		t.Errorf("expected counter 7, got %d", got)
	}
}

func TestFlakyStore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	store := testutil.NewFlakyStore(kv.NewGormStore(db))
	ctx := context.Background()

	store.FailWrites(true)
	if err := store.Set(ctx, kv.KeyIDCounter, []byte("1")); err != testutil.ErrInjected {
		t.Errorf("expected injected write error, got %v", err)
	}
	store.FailWrites(false)
	testutil.AssertNoError(t, store.Set(ctx, kv.KeyIDCounter, []byte("1")))
	if store.Writes() != 1 {
		t.Errorf("expected 1 write, got %d", store.Writes())
	}

	store.FailReads(true)
	if _, _, err := store.Get(ctx, kv.KeyIDCounter); err != testutil.ErrInjected {
		t.Errorf("expected injected read error, got %v", err)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrValidation, "custom message")
	testutil.AssertAppError(t, err, "VALIDATION_ERROR")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
