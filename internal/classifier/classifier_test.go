package classifier

import (
	"testing"

	"github.com/nconklindev/csvfix/internal/locale"
	"github.com/nconklindev/csvfix/internal/types"
)

var us = locale.Locale{Name: "en_US.UTF-8", Thousands: ",", Decimal: "."}

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantValue    string
		wantNumber   float64
		wantCategory types.Category
	}{
		{"Empty", "", "", 0, types.CategoryNone},
		{"Missing marker", "--", "--", 0, types.CategoryNone},
		{"Grouped decimal", "1,234.56", "1234.56", 1234.56, types.CategoryGeneral},
		{"Negative cents", "-12.00", "-12.0", -12, types.CategoryGeneral},
		{"Plus sign", "+7", "7.0", 7, types.CategoryGeneral},
		{"Sign then space", "- 5", "-5.0", -5, types.CategoryGeneral},
		{"Surrounding whitespace", "  1,000  ", "1000.0", 1000, types.CategoryGeneral},
		{"Leading zeros", "007", "7.0", 7, types.CategoryGeneral},
		{"Millions", "12,345,678.90", "12345678.9", 12345678.9, types.CategoryGeneral},
		{"Zero", "0", "0.0", 0, types.CategoryGeneral},
		{"Currency", "$1,234.56", "$1234.56", 1234.56, types.CategoryCurrency},
		{"Negative currency", "-$500", "$-500.0", -500, types.CategoryCurrency},
		{"Currency thousand", "$1,000", "$1000.0", 1000, types.CategoryCurrency},
		{"Percent", "45.50%", "45.5%", 45.5, types.CategoryPercent},
		{"Whole percent", "100%", "100.0%", 100, types.CategoryPercent},
		{"Single fraction digit percent", "45.5%", "45.5%", 0, types.CategoryNone},
		{"Text", "N/A", "N/A", 0, types.CategoryNone},
		{"Bad grouping", "12,34", "12,34", 0, types.CategoryNone},
		{"Trailing garbage", "$12,345extra", "$12,345extra", 0, types.CategoryNone},
		{"Ungrouped thousands", "1234", "1234", 0, types.CategoryNone},
		{"Three fraction digits", "1.234", "1.234", 0, types.CategoryNone},
		{"Unmatched keeps whitespace", " hello ", " hello ", 0, types.CategoryNone},
		{"Sign before dollar and digits", "-$-5", "-$-5", 0, types.CategoryNone},
		{"Arabic-Indic digits", "١٢٣", "١٢٣", 0, types.CategoryNone},
		{"Full-width digits", "１２", "１２", 0, types.CategoryNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.input, us)
			if got.Category != tt.wantCategory {
				t.Errorf("Classify(%q).Category = %s; want %s", tt.input, got.Category, tt.wantCategory)
			}
			if got.Value != tt.wantValue {
				t.Errorf("Classify(%q).Value = %q; want %q", tt.input, got.Value, tt.wantValue)
			}
			if got.Number != tt.wantNumber {
				t.Errorf("Classify(%q).Number = %v; want %v", tt.input, got.Number, tt.wantNumber)
			}
		})
	}
}

func TestClassifyLocale(t *testing.T) {
	de := locale.Locale{Name: "de_DE.UTF-8", Thousands: ".", Decimal: ","}

	got := Classify("1,234.56", de)
	if got.Category != types.CategoryGeneral || got.Number != 1.23456 {
		t.Errorf("Classify under de_DE = %+v; want general 1.23456", got)
	}

	got = Classify("1,234", locale.C())
	if got.Category != types.CategoryNone || got.Value != "1,234" {
		t.Errorf("Classify under C = %+v; want unchanged", got)
	}

	got = Classify("12.50", locale.C())
	if got.Category != types.CategoryGeneral || got.Value != "12.5" {
		t.Errorf("Classify(12.50) under C = %+v; want general 12.5", got)
	}
}

func TestResultTruthy(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Nonzero general", "12", true},
		{"Zero general", "0", false},
		{"Zero cents", "0.00", false},
		{"Negative zero", "-0", false},
		{"Zero currency", "$0", true},
		{"Zero percent", "0%", true},
		{"Unmatched", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.input, us).Truthy()
			if got != tt.want {
				t.Errorf("Classify(%q).Truthy() = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0.0"},
		{1234.5, "1234.5"},
		{1000, "1000.0"},
		{-500, "-500.0"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{1.5e17, "1.5e+17"},
	}

	for _, tt := range tests {
		got := FormatFloat(tt.input)
		if got != tt.expected {
			t.Errorf("FormatFloat(%v) = %s; want %s", tt.input, got, tt.expected)
		}
	}
}
