package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/k1ngsterr1/quick-notes/internal/kv"
	"github.com/k1ngsterr1/quick-notes/internal/logger"
	"github.com/k1ngsterr1/quick-notes/internal/middleware"
	"github.com/k1ngsterr1/quick-notes/internal/services"
	"github.com/k1ngsterr1/quick-notes/internal/testutil"
)

func init() {
	logger.Init("test")
	color.NoColor = true
}

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	store := kv.NewGormStore(db)

	records := services.NewRecordService(store, services.WithClock(testutil.FixedClock(testNow)))
	if _, err := records.Initialize(context.Background()); err != nil {
		t.Fatalf("failed to initialize records: %v", err)
	}

	out := &bytes.Buffer{}
	return &App{
		Records:   records,
		Settings:  services.NewSettingsService(store),
		JWTSecret: "cli-secret",
		TokenTTL:  time.Hour,
		Out:       out,
	}, out
}

func run(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	out := app.Out.(*bytes.Buffer)
	out.Reset()
	cmd := NewRootCmd(app)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestListCmd(t *testing.T) {
	app, _ := newTestApp(t)

	out, err := run(t, app, "list")
	testutil.AssertNoError(t, err)
	if !strings.Contains(out, "ID") || !strings.Contains(out, "AAPL Long") {
		t.Errorf("expected table with seed records, got:\n%s", out)
	}

	out, err = run(t, app, "list", "--tab", "formulas")
	testutil.AssertNoError(t, err)
	if strings.Contains(out, "AAPL Long") {
		t.Errorf("trade listed under formulas:\n%s", out)
	}

	out, err = run(t, app, "list", "-q", "zzz-no-match")
	testutil.AssertNoError(t, err)
	if !strings.Contains(out, "No records found") {
		t.Errorf("expected empty message, got:\n%s", out)
	}

	if _, err := run(t, app, "list", "--tab", "bogus"); err == nil {
		t.Error("expected error for unknown tab")
	}
}

func TestAddAndRmCmd(t *testing.T) {
	app, _ := newTestApp(t)

	out, err := run(t, app, "add", "ETH", "breakout",
		"--kind", "long", "--pnl", "3", "--entry", "100", "--target", "110", "--stop", "95")
	testutil.AssertNoError(t, err)

	for _, want := range []string{"✓ Created record 6: ETH breakout", "Kind: long", "PnL: +3%", "R:R = 2.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	out, err = run(t, app, "rm", "6")
	testutil.AssertNoError(t, err)
	if !strings.Contains(out, "✓ Deleted record 6") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, _ = run(t, app, "list")
	if strings.Contains(out, "ETH breakout") {
		t.Errorf("record still listed after rm:\n%s", out)
	}

	out, err = run(t, app, "rm", "6")
	testutil.AssertNoError(t, err)
	if strings.Contains(out, "✓") || !strings.Contains(out, "No record 6, nothing deleted") {
		t.Errorf("expected no-op message for a missing record, got:\n%s", out)
	}

	out, err = run(t, app, "rm", "abc")
	if err == nil || !strings.Contains(err.Error(), "invalid record id: abc") {
		t.Errorf("expected invalid id error, got %v", err)
	}
	if strings.Contains(out, "✓") {
		t.Errorf("expected no confirmation for an invalid id, got:\n%s", out)
	}
}

func TestAddCmd_BlankTitle(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := run(t, app, "add", "   ")
	if err == nil || !strings.Contains(err.Error(), "Please enter a title") {
		t.Errorf("expected title validation error, got %v", err)
	}
}

func TestRecentCmd(t *testing.T) {
	app, _ := newTestApp(t)

	out, err := run(t, app, "recent", "-n", "1")
	testutil.AssertNoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Errorf("expected header, rule and one row, got:\n%s", out)
	}
}

func TestStatsCmd(t *testing.T) {
	app, _ := newTestApp(t)

	out, err := run(t, app, "stats")
	testutil.AssertNoError(t, err)
	for _, want := range []string{"Total trades:", "Win rate:", "Profit factor:", "Short win rate:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestSettingsCmd(t *testing.T) {
	app, _ := newTestApp(t)

	out, err := run(t, app, "settings")
	testutil.AssertNoError(t, err)
	if strings.Contains(out, "Settings updated") || !strings.Contains(out, "Currency:       USD") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, err = run(t, app, "settings", "--currency", "eur", "--dark-mode=false")
	testutil.AssertNoError(t, err)
	for _, want := range []string{"✓ Settings updated", "Currency:       EUR", "Dark mode:      false", "Name:           Trader"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	if _, err := run(t, app, "settings", "--risk", "0"); err == nil {
		t.Error("expected error for zero risk")
	}
}

func TestTokenCmd(t *testing.T) {
	app, _ := newTestApp(t)

	out, err := run(t, app, "token", "--device", "phone")
	testutil.AssertNoError(t, err)

	claims, err := middleware.ParseDeviceToken("cli-secret", strings.TrimSpace(out))
	testutil.AssertNoError(t, err)
	if claims.Device != "phone" {
		t.Errorf("expected device phone, got %s", claims.Device)
	}

	app.JWTSecret = ""
	if _, err := run(t, app, "token"); err == nil {
		t.Error("expected error without a secret")
	}
}
