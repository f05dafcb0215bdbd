package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"bitbucket.org/carthagesoft/caisse_backend/config"
	"github.com/shopspring/decimal"
)

// ExpenseLine is one itemized expense inside a day record. Supplier lines
// key on the supplier name; journalier/divers lines key on a designation.
// Lines mirrored from a paid invoice are read-only on the day sheet.
type ExpenseLine struct {
	Name           string          `json:"name" binding:"required"`
	Amount         decimal.Decimal `json:"amount"`
	Details        string          `json:"details,omitempty"`
	AttachmentRefs []string        `json:"attachment_refs,omitempty"`
	PaymentMethod  *PaymentMethod  `json:"payment_method,omitempty"`
	IsFromInvoice  bool            `json:"is_from_invoice,omitempty"`
	InvoiceId      int             `json:"invoice_id,omitempty"`
}

// AdminLine carries one of the fixed administrative entries.
type AdminLine struct {
	Designation string          `json:"designation" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
}

// PayoutLine is one personnel payout (advance, doublage, extra or bonus).
type PayoutLine struct {
	Username string          `json:"username" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
}

// The admin breakdown is a fixed three-entry structure, not user-extensible.
var AdminDesignations = []string{"Owner A", "Owner B", "Salaries"}

func IsAdminDesignation(name string) bool {
	for _, d := range AdminDesignations {
		if d == name {
			return true
		}
	}
	return false
}

func DefaultAdminLines() AdminLineList {
	lines := make(AdminLineList, 0, len(AdminDesignations))
	for _, d := range AdminDesignations {
		lines = append(lines, &AdminLine{Designation: d, Amount: decimal.Zero})
	}
	return lines
}

/*
	JSON text columns

	Historical rows may hold malformed or legacy-shaped blobs; scanning
	falls back to an empty list instead of failing the whole row.
*/

type ExpenseLineList []*ExpenseLine
type AdminLineList []*AdminLine
type PayoutLineList []*PayoutLine

func scanLineBlob(value interface{}, dest interface{}, typeName string) error {
	if value == nil {
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot convert %T to %s", value, typeName)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		logger := config.GetLogger()
		config.LogError(logger, "LineItems", "scanLineBlob", "malformed "+typeName+" blob, treating as empty", string(raw), err)
	}
	return nil
}

func (l ExpenseLineList) Value() (driver.Value, error) {
	if l == nil {
		l = ExpenseLineList{}
	}
	return json.Marshal(l)
}

func (l *ExpenseLineList) Scan(value interface{}) error {
	*l = ExpenseLineList{}
	return scanLineBlob(value, l, "ExpenseLineList")
}

func (l ExpenseLineList) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, line := range l {
		if line == nil {
			continue
		}
		total = total.Add(line.Amount)
	}
	return total
}

func (l AdminLineList) Value() (driver.Value, error) {
	if l == nil {
		l = AdminLineList{}
	}
	return json.Marshal(l)
}

func (l *AdminLineList) Scan(value interface{}) error {
	*l = AdminLineList{}
	return scanLineBlob(value, l, "AdminLineList")
}

func (l AdminLineList) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, line := range l {
		if line == nil {
			continue
		}
		total = total.Add(line.Amount)
	}
	return total
}

func (l PayoutLineList) Value() (driver.Value, error) {
	if l == nil {
		l = PayoutLineList{}
	}
	return json.Marshal(l)
}

func (l *PayoutLineList) Scan(value interface{}) error {
	*l = PayoutLineList{}
	return scanLineBlob(value, l, "PayoutLineList")
}

func (l PayoutLineList) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, line := range l {
		if line == nil {
			continue
		}
		total = total.Add(line.Amount)
	}
	return total
}

// validateAdminLines keeps the fixed cardinality intact.
func validateAdminLines(lines AdminLineList) error {
	if len(lines) == 0 {
		return nil
	}
	if len(lines) != len(AdminDesignations) {
		return fmt.Errorf("admin lines must have exactly %d entries", len(AdminDesignations))
	}
	seen := make(map[string]bool, len(AdminDesignations))
	for _, line := range lines {
		if line == nil || !IsAdminDesignation(line.Designation) {
			return errors.New("invalid admin designation")
		}
		if seen[line.Designation] {
			return fmt.Errorf("duplicate admin designation %q", line.Designation)
		}
		seen[line.Designation] = true
	}
	return nil
}
