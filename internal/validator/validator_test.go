package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	Register()
}

type sample struct {
	Currency string `binding:"omitempty,iso4217"`
	Kind     string `binding:"omitempty,record_kind"`
	Tab      string `binding:"omitempty,record_tab"`
}

func TestValidCurrency(t *testing.T) {
	for _, code := range []string{"USD", "EUR", "JPY", "KZT"} {
		if !ValidCurrency(code) {
			t.Errorf("expected %s to be valid", code)
		}
	}
	for _, code := range []string{"", "usd", "XYZ", "US"} {
		if ValidCurrency(code) {
			t.Errorf("expected %q to be invalid", code)
		}
	}
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name    string
		in      sample
		wantTag string
	}{
		{"empty passes", sample{}, ""},
		{"all valid", sample{Currency: "GBP", Kind: "short", Tab: "formulas"}, ""},
		{"bad currency", sample{Currency: "ABC"}, "iso4217"},
		{"bad kind", sample{Kind: "swing"}, "record_kind"},
		{"bad tab", sample{Tab: "archive"}, "record_tab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.in)
			if tt.wantTag == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			errs, ok := err.(validator.ValidationErrors)
			if !ok || len(errs) != 1 {
				t.Fatalf("expected one validation error, got %v", err)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("expected tag %s, got %s", tt.wantTag, errs[0].Tag())
			}
		})
	}
}
