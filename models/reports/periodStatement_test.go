package reports

import (
	"testing"
	"time"

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

func testDayRecords(t *testing.T) []*models.DayRecord {
	t.Helper()
	day1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return []*models.DayRecord{
		{
			RecordDate:    models.MyDateString(day1),
			GrossReceipts: dec(t, "1000"),
			Card:          dec(t, "300"),
			Cheque:        dec(t, "100"),
			MealTickets:   dec(t, "50"),
			SupplierLines: models.ExpenseLineList{
				{Name: "Steg", Amount: dec(t, "45.500")},
				{Name: "Sonede", Amount: dec(t, "30.000")},
			},
			Advances: models.PayoutLineList{
				{Username: "ali", Amount: dec(t, "20")},
			},
		},
		{
			RecordDate:    models.MyDateString(day2),
			GrossReceipts: dec(t, "500"),
			SupplierLines: models.ExpenseLineList{
				{Name: "Steg", Amount: dec(t, "10.000")},
			},
		},
	}
}

func TestBuildPeriodStatement_TotalsAndGrouping(t *testing.T) {
	st := BuildPeriodStatement(testDayRecords(t), dec(t, "200"), "")
	if st == nil {
		t.Fatal("expected a statement for a non-empty range")
	}
	if st.DayCount != 2 {
		t.Fatalf("day_count expected 2, got %d", st.DayCount)
	}
	if !st.GrossReceipts.Equal(dec(t, "1500")) {
		t.Fatalf("gross_receipts expected 1500, got %s", st.GrossReceipts)
	}
	// 45.500 + 30 + 20 + 10 = 105.5
	if !st.TotalExpenses.Equal(dec(t, "105.5")) {
		t.Fatalf("total_expenses expected 105.5, got %s", st.TotalExpenses)
	}
	if !st.NetReceipts.Equal(dec(t, "1394.5")) {
		t.Fatalf("net_receipts expected 1394.5, got %s", st.NetReceipts)
	}
	// 1394.5 - 300 - 100 - 50
	if !st.Cash.Equal(dec(t, "944.5")) {
		t.Fatalf("cash expected 944.5, got %s", st.Cash)
	}
	if !st.Bancaire.Equal(dec(t, "200")) {
		t.Fatalf("bancaire expected 200, got %s", st.Bancaire)
	}

	// Steg appears on both days and must collapse into one bucket.
	if len(st.SupplierExpenses) != 2 {
		t.Fatalf("supplier breakdown expected 2 buckets, got %d", len(st.SupplierExpenses))
	}
	if st.SupplierExpenses[0].Name != "Steg" || !st.SupplierExpenses[0].Amount.Equal(dec(t, "55.5")) {
		t.Fatalf("top supplier expected Steg 55.5, got %s %s",
			st.SupplierExpenses[0].Name, st.SupplierExpenses[0].Amount)
	}
	if st.SupplierExpenses[1].Name != "Sonede" {
		t.Fatalf("second supplier expected Sonede, got %s", st.SupplierExpenses[1].Name)
	}
}

func TestBuildPeriodStatement_NegativeCashSurfaced(t *testing.T) {
	records := []*models.DayRecord{
		{
			RecordDate:    models.MyDateString(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
			GrossReceipts: dec(t, "100"),
			Card:          dec(t, "200"),
		},
	}
	st := BuildPeriodStatement(records, decimal.Zero, "")
	if !st.Cash.Equal(dec(t, "-100")) {
		t.Fatalf("cash expected -100, got %s", st.Cash)
	}
}

func TestBuildPeriodStatement_EmptyRangeIsNil(t *testing.T) {
	if st := BuildPeriodStatement(nil, dec(t, "500"), ""); st != nil {
		t.Fatalf("expected nil statement for empty range, got %+v", st)
	}
}

func TestBuildPeriodStatement_FilterDoesNotChangeTotals(t *testing.T) {
	records := testDayRecords(t)
	unfiltered := BuildPeriodStatement(records, dec(t, "200"), "")
	filtered := BuildPeriodStatement(records, dec(t, "200"), "steg")

	if !filtered.TotalExpenses.Equal(unfiltered.TotalExpenses) {
		t.Fatalf("filter changed total_expenses: %s vs %s", filtered.TotalExpenses, unfiltered.TotalExpenses)
	}
	if !filtered.Cash.Equal(unfiltered.Cash) {
		t.Fatalf("filter changed cash: %s vs %s", filtered.Cash, unfiltered.Cash)
	}
	if len(filtered.SupplierExpenses) != 1 || filtered.SupplierExpenses[0].Name != "Steg" {
		t.Fatalf("filter expected only Steg in supplier breakdown, got %d buckets", len(filtered.SupplierExpenses))
	}
	// filter is a substring match, case-insensitive
	if len(filtered.Advances) != 0 {
		t.Fatalf("filter expected empty advances breakdown, got %d buckets", len(filtered.Advances))
	}
}

func TestGroupByName_DropsNonPositiveAndSortsDescending(t *testing.T) {
	lines := []namedAmount{
		{name: "B", amount: dec(t, "10")},
		{name: "A", amount: dec(t, "5")},
		{name: "A", amount: dec(t, "-5")},
		{name: "C", amount: dec(t, "0")},
		{name: "B", amount: dec(t, "2")},
		{name: "D", amount: dec(t, "12")},
	}
	grouped := groupByName(lines, "")
	if len(grouped) != 2 {
		t.Fatalf("expected 2 buckets (A sums to 0, C is 0), got %d", len(grouped))
	}
	if grouped[0].Name != "B" || !grouped[0].Amount.Equal(dec(t, "12")) {
		t.Fatalf("first bucket expected B 12, got %s %s", grouped[0].Name, grouped[0].Amount)
	}
	if grouped[1].Name != "D" {
		t.Fatalf("second bucket expected D, got %s", grouped[1].Name)
	}
}

func TestGroupByName_EqualAmountsKeepFirstSeenOrder(t *testing.T) {
	lines := []namedAmount{
		{name: "first", amount: dec(t, "7")},
		{name: "second", amount: dec(t, "7")},
	}
	grouped := groupByName(lines, "")
	if len(grouped) != 2 || grouped[0].Name != "first" || grouped[1].Name != "second" {
		t.Fatalf("equal amounts must keep insertion order, got %+v", grouped)
	}
}
