package models_test

import (
	"testing"

	"bitbucket.org/carthagesoft/caisse_backend/models"
	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal %q: %v", s, err)
	}
	return d
}

func TestDeriveCash(t *testing.T) {
	net, cash := models.DeriveCash(
		dec(t, "1000"), // gross
		dec(t, "200"),  // total expenses
		dec(t, "300"),  // card
		dec(t, "100"),  // cheque
		dec(t, "50"),   // meal tickets
	)
	if !net.Equal(dec(t, "800")) {
		t.Fatalf("net expected 800, got %s", net)
	}
	if !cash.Equal(dec(t, "350")) {
		t.Fatalf("cash expected 350, got %s", cash)
	}
}

func TestDeriveCash_NegativeCashAllowed(t *testing.T) {
	// An unbalanced day still computes; the negative figure is surfaced.
	_, cash := models.DeriveCash(
		dec(t, "100"), dec(t, "50"), dec(t, "40"), dec(t, "30"), dec(t, "0"))
	if !cash.Equal(dec(t, "-20")) {
		t.Fatalf("cash expected -20, got %s", cash)
	}
}

func TestDeriveCash_RoundsToMillimes(t *testing.T) {
	net, _ := models.DeriveCash(
		dec(t, "10.0005"), dec(t, "0"), dec(t, "0"), dec(t, "0"), dec(t, "0"))
	if net.String() != "10.001" {
		t.Fatalf("net expected 10.001, got %s", net)
	}
}

func TestDayRecord_TotalExpensesSumsAllCategories(t *testing.T) {
	record := models.DayRecord{
		SupplierLines: models.ExpenseLineList{{Name: "Steg", Amount: dec(t, "45.500")}},
		DailyLines:    models.ExpenseLineList{{Name: "Pain", Amount: dec(t, "12.000")}},
		MiscLines:     models.ExpenseLineList{{Name: "Gaz", Amount: dec(t, "7.250")}},
		AdminLines:    models.AdminLineList{{Designation: "Salaries", Amount: dec(t, "100")}},
		Advances:      models.PayoutLineList{{Username: "ali", Amount: dec(t, "20")}},
		Overtime:      models.PayoutLineList{{Username: "sami", Amount: dec(t, "15")}},
		Extras:        models.PayoutLineList{{Username: "nour", Amount: dec(t, "10")}},
		Bonuses:       models.PayoutLineList{{Username: "ali", Amount: dec(t, "5")}},
	}
	if total := record.TotalExpenses(); !total.Equal(dec(t, "214.75")) {
		t.Fatalf("total expenses expected 214.75, got %s", total)
	}

	record.GrossReceipts = dec(t, "1000")
	record.Card = dec(t, "200")
	if net := record.NetReceipts(); !net.Equal(dec(t, "785.25")) {
		t.Fatalf("net expected 785.25, got %s", net)
	}
	if cash := record.Cash(); !cash.Equal(dec(t, "585.25")) {
		t.Fatalf("cash expected 585.25, got %s", cash)
	}
}

func TestDefaultAdminLines(t *testing.T) {
	lines := models.DefaultAdminLines()
	if len(lines) != len(models.AdminDesignations) {
		t.Fatalf("expected %d admin lines, got %d", len(models.AdminDesignations), len(lines))
	}
	for i, line := range lines {
		if line.Designation != models.AdminDesignations[i] {
			t.Fatalf("admin line %d expected %s, got %s", i, models.AdminDesignations[i], line.Designation)
		}
		if !line.Amount.IsZero() {
			t.Fatalf("default admin line %s must start at zero", line.Designation)
		}
	}
}
