package models_test

import (
	"errors"
	"testing"
	"time"

	"bitbucket.org/carthagesoft/caisse_backend/models"
	"bitbucket.org/carthagesoft/caisse_backend/utils"
)

// Deletes and date-moving updates go through utils.FetchModelForChange,
// which needs these value types to veto their own locked-day changes.
var (
	_ utils.ModelChangeLocker = models.Invoice{}
	_ utils.ModelChangeLocker = models.BankDeposit{}
)

func TestInvoicePay(t *testing.T) {
	inv := models.Invoice{
		Name:      "Fournisseur X",
		Amount:    dec(t, "120.500"),
		IssueDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:    models.InvoiceStatusUnpaid,
	}
	paidDate := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	photos := models.StringList{"cheques/2026-03/a.jpg"}

	if err := inv.Pay(models.PaymentMethodCheque, paidDate, "Sami", photos, models.DateSet{}); err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if inv.Status != models.InvoiceStatusPaid {
		t.Fatalf("status expected paid, got %s", inv.Status)
	}
	if inv.PaymentMethod == nil || *inv.PaymentMethod != models.PaymentMethodCheque {
		t.Fatal("payment method not stored")
	}
	if inv.PaidDate == nil || !inv.PaidDate.Equal(paidDate) {
		t.Fatal("paid date not stored")
	}
	if inv.Payer != "Sami" || len(inv.ChequePhotoRefs) != 1 {
		t.Fatal("payer or cheque photos not stored")
	}

	if err := inv.Pay(models.PaymentMethodCash, paidDate, "", nil, models.DateSet{}); err == nil {
		t.Fatal("expected error paying an already paid invoice")
	}
}

func TestInvoicePay_LockedDateLeavesFieldsUnchanged(t *testing.T) {
	inv := models.Invoice{
		IssueDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:    models.InvoiceStatusUnpaid,
	}
	paidDate := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	locked := models.DateSet{"2026-03-05": true}

	err := inv.Pay(models.PaymentMethodCash, paidDate, "Sami", nil, locked)
	var lockErr *models.LockedDateError
	if !errors.As(err, &lockErr) {
		t.Fatalf("expected LockedDateError, got %v", err)
	}
	if lockErr.Date != "2026-03-05" {
		t.Fatalf("locked date expected 2026-03-05, got %s", lockErr.Date)
	}
	if inv.Status != models.InvoiceStatusUnpaid || inv.PaidDate != nil || inv.PaymentMethod != nil || inv.Payer != "" {
		t.Fatal("rejected transition must not mutate the invoice")
	}
}

func TestInvoiceUnpay(t *testing.T) {
	paidDate := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	method := models.PaymentMethodCheque
	inv := models.Invoice{
		Status:          models.InvoiceStatusPaid,
		PaymentMethod:   &method,
		PaidDate:        &paidDate,
		Payer:           "Sami",
		ChequePhotoRefs: models.StringList{"cheques/2026-03/a.jpg"},
	}

	if err := inv.Unpay(models.DateSet{}); err != nil {
		t.Fatalf("Unpay: %v", err)
	}
	if inv.Status != models.InvoiceStatusUnpaid {
		t.Fatalf("status expected unpaid, got %s", inv.Status)
	}
	if inv.PaymentMethod != nil || inv.PaidDate != nil || inv.Payer != "" {
		t.Fatal("unpay must clear method, paid date and payer")
	}
	// the photos stay as the audit trace of the undone payment
	if len(inv.ChequePhotoRefs) != 1 {
		t.Fatal("unpay must keep cheque photos")
	}

	if err := inv.Unpay(models.DateSet{}); err == nil {
		t.Fatal("expected error unpaying an unpaid invoice")
	}
}

func TestInvoiceUnpay_LockedPaidDateRejected(t *testing.T) {
	paidDate := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	method := models.PaymentMethodCash
	inv := models.Invoice{
		Status:        models.InvoiceStatusPaid,
		PaymentMethod: &method,
		PaidDate:      &paidDate,
	}
	locked := models.DateSet{"2026-03-05": true}

	err := inv.Unpay(locked)
	var lockErr *models.LockedDateError
	if !errors.As(err, &lockErr) {
		t.Fatalf("expected LockedDateError, got %v", err)
	}
	if inv.Status != models.InvoiceStatusPaid || inv.PaidDate == nil {
		t.Fatal("rejected unpay must not mutate the invoice")
	}
}

func TestInvoiceDeletable_UsesRelevantDate(t *testing.T) {
	issueDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	paidDate := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	unpaid := models.Invoice{Status: models.InvoiceStatusUnpaid, IssueDate: issueDate}
	paid := models.Invoice{Status: models.InvoiceStatusPaid, IssueDate: issueDate, PaidDate: &paidDate}

	lockedIssue := models.DateSet{"2026-03-01": true}
	lockedPaid := models.DateSet{"2026-03-05": true}

	if err := unpaid.Deletable(lockedIssue); err == nil {
		t.Fatal("unpaid invoice on a locked issue date must not be deletable")
	}
	if err := unpaid.Deletable(lockedPaid); err != nil {
		t.Fatalf("unpaid invoice checks the issue date, not the paid date: %v", err)
	}
	if err := paid.Deletable(lockedPaid); err == nil {
		t.Fatal("paid invoice on a locked paid date must not be deletable")
	}
	if err := paid.Deletable(lockedIssue); err != nil {
		t.Fatalf("paid invoice checks the paid date, not the issue date: %v", err)
	}
}
