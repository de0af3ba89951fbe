package stats

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/k1ngsterr1/quick-notes/internal/models"
	"github.com/k1ngsterr1/quick-notes/internal/testutil"
)

func trades(kind models.Kind, pnls ...string) []models.Record {
	out := make([]models.Record, 0, len(pnls))
	for i, p := range pnls {
		out = append(out, testutil.Trade(string(rune('1'+i)), kind, p))
	}
	return out
}

func TestCompute_MixedTrades(t *testing.T) {
	s := Compute(trades(models.KindLong, "+2%", "-1%", "+3%"))

	if s.TotalTrades != 3 {
		t.Errorf("expected 3 trades, got %d", s.TotalTrades)
	}
	testutil.AssertFloat(t, "winRate", s.WinRate, 200.0/3)
	testutil.AssertFloat(t, "avgProfit", s.AvgProfit, 2.5)
	testutil.AssertFloat(t, "avgLoss", s.AvgLoss, 1)
	testutil.AssertFloat(t, "profitFactor", float64(s.ProfitFactor), 5)
	testutil.AssertFloat(t, "bestTrade", s.BestTrade, 3)
	testutil.AssertFloat(t, "worstTrade", s.WorstTrade, -1)
	testutil.AssertFloat(t, "longWinRate", s.LongWinRate, 200.0/3)
	testutil.AssertFloat(t, "shortWinRate", s.ShortWinRate, 0)
}

func TestCompute_ZeroSnapshot(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if s := Compute(nil); s != (Snapshot{}) {
			t.Errorf("expected zero snapshot, got %+v", s)
		}
	})

	t.Run("no trades", func(t *testing.T) {
		records := []models.Record{
			{ID: "1", Title: "Rules", Kind: models.KindNote},
			{ID: "2", Title: "Sizing", Kind: models.KindFormula, PnL: "+5%"},
		}
		if s := Compute(records); s != (Snapshot{}) {
			t.Errorf("expected zero snapshot, got %+v", s)
		}
	})
}

func TestCompute_ProfitFactor(t *testing.T) {
	t.Run("only profits", func(t *testing.T) {
		s := Compute(trades(models.KindLong, "+1%", "+4%"))
		if !s.ProfitFactor.IsInf() {
			t.Errorf("expected +Inf, got %v", float64(s.ProfitFactor))
		}
		testutil.AssertFloat(t, "avgLoss", s.AvgLoss, 0)
	})

	t.Run("only zeros", func(t *testing.T) {
		s := Compute(trades(models.KindLong, "0%", ""))
		testutil.AssertFloat(t, "profitFactor", float64(s.ProfitFactor), 0)
		testutil.AssertFloat(t, "winRate", s.WinRate, 0)
		testutil.AssertFloat(t, "longWinRate", s.LongWinRate, 100)
		if s.TotalTrades != 2 {
			t.Errorf("expected zeros to count toward the total, got %d", s.TotalTrades)
		}
	})

	t.Run("only losses", func(t *testing.T) {
		s := Compute(trades(models.KindShort, "-2%", "-4%"))
		testutil.AssertFloat(t, "profitFactor", float64(s.ProfitFactor), 0)
		testutil.AssertFloat(t, "avgLoss", s.AvgLoss, 3)
		testutil.AssertFloat(t, "bestTrade", s.BestTrade, -2)
		testutil.AssertFloat(t, "worstTrade", s.WorstTrade, -4)
	})
}

func TestCompute_SideWinRates(t *testing.T) {
	records := append(trades(models.KindLong, "+2%", "-1%"), trades(models.KindShort, "-1.2%", "+0.5%", "--1%")...)
	records = append(records, models.Record{ID: "9", Kind: models.KindNote, PnL: "+10%"})

	s := Compute(records)
	if s.TotalTrades != 5 {
		t.Errorf("expected 5 trades, got %d", s.TotalTrades)
	}
	testutil.AssertFloat(t, "longWinRate", s.LongWinRate, 50)
	testutil.AssertFloat(t, "shortWinRate", s.ShortWinRate, 100.0/3)
	// "--1%" parses to zero: not a winner in the overall rate.
	testutil.AssertFloat(t, "winRate", s.WinRate, 40)
}

func TestParsePnL(t *testing.T) {
	tests := map[string]float64{
		"+2.5%":   2.5,
		"-1.2%":   -1.2,
		"-1%":     -1,
		"3":       3,
		"":        0,
		"abc":     0,
		"--1%":    0,
		"1.2.3%":  0,
		"+1,000%": 1000,
		"-0%":     0,
	}
	for in, want := range tests {
		got := ParsePnL(in)
		if got != want {
			t.Errorf("ParsePnL(%q) = %v, want %v", in, got, want)
		}
		if got == 0 && math.Signbit(got) {
			t.Errorf("ParsePnL(%q) returned negative zero", in)
		}
	}
}

func TestProfitFactor_JSON(t *testing.T) {
	data, err := json.Marshal(Snapshot{ProfitFactor: ProfitFactor(math.Inf(1))})
	testutil.AssertNoError(t, err)

	var raw map[string]interface{}
	testutil.AssertNoError(t, json.Unmarshal(data, &raw))
	if raw["profitFactor"] != "Infinity" {
		t.Errorf("expected \"Infinity\", got %v", raw["profitFactor"])
	}

	var back Snapshot
	testutil.AssertNoError(t, json.Unmarshal(data, &back))
	if !back.ProfitFactor.IsInf() {
		t.Errorf("expected +Inf after decoding, got %v", float64(back.ProfitFactor))
	}

	data, err = json.Marshal(ProfitFactor(2.5))
	testutil.AssertNoError(t, err)
	if string(data) != "2.5" {
		t.Errorf("expected 2.5, got %s", data)
	}
}
