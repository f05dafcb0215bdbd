package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewSalaryRemainderValidate(t *testing.T) {
	cases := []struct {
		name   string
		input  NewSalaryRemainder
		wantOK bool
	}{
		{"valid", NewSalaryRemainder{EmployeeName: "ali", Month: "2026-03", Amount: decimal.NewFromInt(100)}, true},
		{"global sentinel", NewSalaryRemainder{EmployeeName: GlobalRemainderName, Month: "2026-03", Amount: decimal.NewFromInt(100)}, true},
		{"zero amount", NewSalaryRemainder{EmployeeName: "ali", Month: "2026-03", Amount: decimal.Zero}, true},
		{"blank name", NewSalaryRemainder{EmployeeName: "  ", Month: "2026-03", Amount: decimal.NewFromInt(1)}, false},
		{"bad month", NewSalaryRemainder{EmployeeName: "ali", Month: "03-2026", Amount: decimal.NewFromInt(1)}, false},
		{"month with day", NewSalaryRemainder{EmployeeName: "ali", Month: "2026-03-01", Amount: decimal.NewFromInt(1)}, false},
		{"negative amount", NewSalaryRemainder{EmployeeName: "ali", Month: "2026-03", Amount: decimal.NewFromInt(-1)}, false},
	}
	for _, tc := range cases {
		err := tc.input.validate()
		if tc.wantOK && err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if !tc.wantOK && err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestNewSalaryRemainderValidate_TrimsName(t *testing.T) {
	input := NewSalaryRemainder{EmployeeName: " ali ", Month: "2026-03", Amount: decimal.NewFromInt(5)}
	if err := input.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if input.EmployeeName != "ali" {
		t.Fatalf("expected trimmed name, got %q", input.EmployeeName)
	}
}
