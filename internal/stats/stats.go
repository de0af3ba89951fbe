// Package stats derives trading performance metrics from journal records.
package stats

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/k1ngsterr1/quick-notes/internal/models"
	"github.com/k1ngsterr1/quick-notes/internal/normalize"
)

// ProfitFactor is gross profit over gross loss. It is +Inf when there are
// profits and no losses, and encodes to JSON as the string "Infinity".
type ProfitFactor float64

// IsInf reports whether the factor is unbounded.
func (p ProfitFactor) IsInf() bool {
	return math.IsInf(float64(p), 1)
}

func (p ProfitFactor) MarshalJSON() ([]byte, error) {
	if p.IsInf() {
		return []byte(`"Infinity"`), nil
	}
	return []byte(strconv.FormatFloat(float64(p), 'f', -1, 64)), nil
}

func (p *ProfitFactor) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte(`"Infinity"`)) {
		*p = ProfitFactor(math.Inf(1))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*p = ProfitFactor(f)
	return nil
}

func (p ProfitFactor) String() string {
	if p.IsInf() {
		return "∞"
	}
	return strconv.FormatFloat(float64(p), 'f', 2, 64)
}

// Snapshot is the fixed-shape metrics object. Rates are percentages in [0, 100].
type Snapshot struct {
	TotalTrades  int          `json:"totalTrades"`
	WinRate      float64      `json:"winRate"`
	AvgProfit    float64      `json:"avgProfit"`
	AvgLoss      float64      `json:"avgLoss"`
	ProfitFactor ProfitFactor `json:"profitFactor"`
	BestTrade    float64      `json:"bestTrade"`
	WorstTrade   float64      `json:"worstTrade"`
	LongWinRate  float64      `json:"longWinRate"`
	ShortWinRate float64      `json:"shortWinRate"`
}

// Compute reduces records to a Snapshot. Only long and short records take
// part; any other input yields the zero Snapshot.
func Compute(records []models.Record) Snapshot {
	var trades []models.Record
	for _, r := range records {
		if r.Kind.IsTrade() {
			trades = append(trades, r)
		}
	}
	if len(trades) == 0 {
		return Snapshot{}
	}

	var wins, losses int
	var grossWin, grossLoss float64
	best, worst := math.Inf(-1), math.Inf(1)
	for _, r := range trades {
		v := ParsePnL(r.PnL)
		switch {
		case v > 0:
			wins++
			grossWin += v
		case v < 0:
			losses++
			grossLoss += -v
		}
		best = math.Max(best, v)
		worst = math.Min(worst, v)
	}

	s := Snapshot{
		TotalTrades: len(trades),
		WinRate:     100 * float64(wins) / float64(len(trades)),
		BestTrade:   best,
		WorstTrade:  worst,
	}
	if wins > 0 {
		s.AvgProfit = grossWin / float64(wins)
	}
	if losses > 0 {
		s.AvgLoss = grossLoss / float64(losses)
	}
	switch {
	case grossLoss > 0:
		s.ProfitFactor = ProfitFactor(grossWin / grossLoss)
	case grossWin > 0:
		s.ProfitFactor = ProfitFactor(math.Inf(1))
	}

	s.LongWinRate = sideWinRate(trades, models.KindLong)
	s.ShortWinRate = sideWinRate(trades, models.KindShort)
	return s
}

// sideWinRate counts a trade as won when its pnl string has no '-', so an
// exact zero is a win here even though Compute does not bucket it.
func sideWinRate(trades []models.Record, kind models.Kind) float64 {
	var total, wins int
	for _, r := range trades {
		if r.Kind != kind {
			continue
		}
		total++
		if !strings.Contains(r.PnL, "-") {
			wins++
		}
	}
	if total == 0 {
		return 0
	}
	return 100 * float64(wins) / float64(total)
}

// ParsePnL converts a pnl string to a signed value. Every rune except digits,
// '.' and '-' is dropped; the result is negative iff s contains '-'. Empty
// and unparsable strings yield 0.
func ParsePnL(s string) float64 {
	digits := normalize.KeepNumeric(s)
	if digits == "" {
		return 0
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	v = math.Abs(v)
	if v != 0 && strings.Contains(s, "-") {
		return -v
	}
	return v
}
