package normalize

import (
	"testing"

	"github.com/k1ngsterr1/quick-notes/internal/models"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind models.Kind
		want string
	}{
		{"long_unsigned", "2.5", models.KindLong, "+2.5%"},
		{"short_unsigned", "2.5", models.KindShort, "-2.5%"},
		{"note_defaults_plus", "1", models.KindNote, "+1%"},
		{"unspecified_kind", "3", "", "+3%"},
		{"keeps_explicit_sign", "+4", models.KindShort, "+4%"},
		{"keeps_minus_on_long", "-1.2", models.KindLong, "-1.2%"},
		{"strips_all_percent", "%5%%", models.KindLong, "+5%"},
		{"empty", "", models.KindLong, ""},
		{"only_percent", "%%", models.KindShort, ""},
		{"idempotent", "+2.5%", models.KindLong, "+2.5%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.text, tt.kind); got != tt.want {
				t.Errorf("Percent(%q, %q) = %q, want %q", tt.text, tt.kind, got, tt.want)
			}
		})
	}
}

func TestRekind(t *testing.T) {
	long := Percent("2.5", models.KindLong)
	short := Rekind(long, models.KindShort)
	if short != "-2.5%" {
		t.Fatalf("expected -2.5%%, got %q", short)
	}
	if back := Rekind(short, models.KindLong); back != "+2.5%" {
		t.Errorf("expected +2.5%%, got %q", back)
	}
	if got := Rekind("", models.KindShort); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
	if got := Rekind("-3%", models.KindNote); got != "-3%" {
		t.Errorf("non-trade kinds keep the typed sign, got %q", got)
	}
}

func TestCurrency(t *testing.T) {
	tests := map[string]string{
		"100":    "$100",
		"$100":   "$100",
		"$$1.5":  "$1.5",
		"":       "",
		"$":      "",
		"65,400": "$65,400",
		"1$0$0$": "$100",
	}
	for in, want := range tests {
		if got := Currency(in); got != want {
			t.Errorf("Currency(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTradeContent(t *testing.T) {
	tests := []struct {
		name                       string
		notes, entry, target, stop string
		want                       string
	}{
		{
			name:  "full_with_rr",
			entry: "$100", target: "$120", stop: "$90",
			want: "Entry: $100, TP: $120, SL: $90\nR:R = 2.00",
		},
		{
			name:  "notes_and_levels",
			notes: "Breakout retest", entry: "$100", target: "$130", stop: "$95",
			want: "Breakout retest\n\nEntry: $100, TP: $130, SL: $95\nR:R = 6.00",
		},
		{
			name:  "entry_equals_stop",
			entry: "$100", target: "$120", stop: "$100",
			want: "Entry: $100, TP: $120, SL: $100",
		},
		{
			name:  "missing_stop",
			entry: "$100", target: "$120",
			want: "Entry: $100, TP: $120",
		},
		{
			name:  "only_target",
			notes: "watch", target: "$5",
			want: "watch\n\nTP: $5",
		},
		{
			name:  "unparsable_price",
			entry: "$abc", target: "$120", stop: "$90",
			want: "Entry: $abc, TP: $120, SL: $90",
		},
		{
			name:  "thousands_separator",
			entry: "$65,400", target: "$63,000", stop: "$66,500",
			want: "Entry: $65,400, TP: $63,000, SL: $66,500\nR:R = 2.18",
		},
		{
			name:  "notes_only",
			notes: "no levels",
			want:  "no levels",
		},
		{
			name: "empty",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TradeContent(tt.notes, tt.entry, tt.target, tt.stop)
			if got != tt.want {
				t.Errorf("TradeContent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRiskReward(t *testing.T) {
	rr, ok := RiskReward("$100", "$120", "$90")
	if !ok {
		t.Fatal("expected ratio")
	}
	if rr.StringFixed(2) != "2.00" {
		t.Errorf("expected 2.00, got %s", rr.StringFixed(2))
	}

	if _, ok := RiskReward("", "$120", "$90"); ok {
		t.Error("expected no ratio without entry")
	}
	if _, ok := RiskReward("1.0850", "1.0950", "1.0850"); ok {
		t.Error("expected no ratio when entry equals stop")
	}
}

func TestKeepNumeric(t *testing.T) {
	if got := KeepNumeric("+$1,234.5%"); got != "1234.5" {
		t.Errorf("expected 1234.5, got %q", got)
	}
	if got := KeepNumeric("--1%"); got != "--1" {
		t.Errorf("expected --1, got %q", got)
	}
}
