package models_test

import (
	"testing"

	"bitbucket.org/carthagesoft/caisse_backend/models"
	"github.com/shopspring/decimal"
)

func TestExpenseLineList_ScanMalformedBlobFallsBackToEmpty(t *testing.T) {
	var list models.ExpenseLineList
	if err := list.Scan([]byte("{not json")); err != nil {
		t.Fatalf("malformed blob must not fail the row scan: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("malformed blob expected empty list, got %d entries", len(list))
	}
}

func TestExpenseLineList_ScanNilAndEmpty(t *testing.T) {
	var list models.ExpenseLineList
	if err := list.Scan(nil); err != nil {
		t.Fatalf("nil blob: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatal("nil blob expected empty non-nil list")
	}
	if err := list.Scan(""); err != nil {
		t.Fatalf("empty blob: %v", err)
	}
	if len(list) != 0 {
		t.Fatal("empty blob expected empty list")
	}
}

func TestExpenseLineList_ScanRoundTrip(t *testing.T) {
	src := models.ExpenseLineList{
		{Name: "Steg", Amount: dec(t, "45.500"), IsFromInvoice: true, InvoiceId: 7},
	}
	raw, err := src.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	var out models.ExpenseLineList
	if err := out.Scan(raw); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Steg" || !out[0].Amount.Equal(dec(t, "45.500")) {
		t.Fatalf("round trip lost data: %+v", out)
	}
	if !out[0].IsFromInvoice || out[0].InvoiceId != 7 {
		t.Fatal("round trip lost invoice mirror fields")
	}
}

func TestPayoutLineList_ScanRoundTrip(t *testing.T) {
	src := models.PayoutLineList{
		{Username: "ali", Amount: dec(t, "20")},
		{Username: "sami", Amount: dec(t, "15.250")},
	}
	raw, err := src.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	var out models.PayoutLineList
	if err := out.Scan(raw); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(out) != 2 || out[0].Username != "ali" || out[1].Username != "sami" {
		t.Fatalf("round trip lost data: %+v", out)
	}
	if !out[0].Amount.Equal(dec(t, "20")) || !out[1].Amount.Equal(dec(t, "15.250")) {
		t.Fatal("round trip lost amounts")
	}
}

func TestAdminLineList_ScanRoundTrip(t *testing.T) {
	src := models.DefaultAdminLines()
	src[2].Amount = dec(t, "900.500")
	raw, err := src.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	var out models.AdminLineList
	if err := out.Scan(raw); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(out) != len(models.AdminDesignations) {
		t.Fatalf("round trip expected %d lines, got %d", len(models.AdminDesignations), len(out))
	}
	for i, d := range models.AdminDesignations {
		if out[i].Designation != d {
			t.Fatalf("line %d expected designation %q, got %q", i, d, out[i].Designation)
		}
	}
	if !out[2].Amount.Equal(dec(t, "900.500")) {
		t.Fatal("round trip lost the salaries amount")
	}
}

func TestLineListSum_SkipsNilEntries(t *testing.T) {
	list := models.PayoutLineList{
		{Username: "ali", Amount: dec(t, "20")},
		nil,
		{Username: "sami", Amount: dec(t, "15.250")},
	}
	if sum := list.Sum(); !sum.Equal(dec(t, "35.25")) {
		t.Fatalf("sum expected 35.25, got %s", sum)
	}

	var empty models.ExpenseLineList
	if !empty.Sum().Equal(decimal.Zero) {
		t.Fatal("empty list must sum to zero")
	}
}
