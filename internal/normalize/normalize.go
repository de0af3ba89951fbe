// Package normalize canonicalizes the free-text numeric fields of a record
// form. Values stay strings; only their textual shape is fixed.
package normalize

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/k1ngsterr1/quick-notes/internal/models"
)

// Percent formats a PnL field as [+|-]<number>%. Unsigned input takes "-"
// for short trades and "+" for everything else.
func Percent(text string, kind models.Kind) string {
	cleaned := strings.ReplaceAll(text, "%", "")
	if cleaned == "" {
		return ""
	}
	if !strings.HasPrefix(cleaned, "+") && !strings.HasPrefix(cleaned, "-") {
		if kind == models.KindShort {
			cleaned = "-" + cleaned
		} else {
			cleaned = "+" + cleaned
		}
	}
	return cleaned + "%"
}

// Rekind re-derives the sign of an already formatted PnL after the record
// kind changed. The magnitude is kept as typed.
func Rekind(pnl string, kind models.Kind) string {
	if !kind.IsTrade() {
		return Percent(pnl, kind)
	}
	magnitude := strings.TrimLeft(strings.ReplaceAll(pnl, "%", ""), "+-")
	if magnitude == "" {
		return ""
	}
	return Percent(magnitude, kind)
}

// Currency formats a price field with a single leading "$".
func Currency(text string) string {
	cleaned := strings.ReplaceAll(text, "$", "")
	if cleaned == "" {
		return ""
	}
	return "$" + cleaned
}

// TradeContent builds the content of a long/short record from the free-text
// notes and the entry, target and stop prices. The R:R line is appended only
// when all three prices parse and entry differs from stop.
func TradeContent(notes, entry, target, stop string) string {
	var levels []string
	if entry != "" {
		levels = append(levels, "Entry: "+entry)
	}
	if target != "" {
		levels = append(levels, "TP: "+target)
	}
	if stop != "" {
		levels = append(levels, "SL: "+stop)
	}

	var b strings.Builder
	b.WriteString(notes)
	if len(levels) > 0 {
		if notes != "" {
			b.WriteString("\n\n")
		}
		b.WriteString(strings.Join(levels, ", "))
	}
	if rr, ok := RiskReward(entry, target, stop); ok {
		b.WriteString("\nR:R = ")
		b.WriteString(rr.StringFixed(2))
	}
	return b.String()
}

// RiskReward returns |target-entry| / |entry-stop|.
func RiskReward(entry, target, stop string) (decimal.Decimal, bool) {
	e, ok := parsePrice(entry)
	if !ok {
		return decimal.Zero, false
	}
	t, ok := parsePrice(target)
	if !ok {
		return decimal.Zero, false
	}
	s, ok := parsePrice(stop)
	if !ok {
		return decimal.Zero, false
	}
	if e.Equal(s) {
		return decimal.Zero, false
	}
	risk := e.Sub(s).Abs()
	reward := t.Sub(e).Abs()
	return reward.Div(risk), true
}

// parsePrice drops everything except digits, '.' and '-' ("$65,400" -> 65400).
func parsePrice(text string) (decimal.Decimal, bool) {
	digits := KeepNumeric(text)
	if digits == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// KeepNumeric returns text with every rune other than 0-9, '.' and '-' removed.
func KeepNumeric(text string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, text)
}
