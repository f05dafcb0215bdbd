package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"
)

type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "unpaid"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

// convert enum to send response
func (t InvoiceStatus) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

// convert input to enum type
func (t *InvoiceStatus) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("invoice status must be string")
	}
	switch str {
	case "unpaid":
		*t = InvoiceStatusUnpaid
	case "paid":
		*t = InvoiceStatusPaid
	default:
		return errors.New("invalid invoice status")
	}
	return nil
}

type InvoiceDocType string

const (
	InvoiceDocTypeFacture InvoiceDocType = "Facture"
	InvoiceDocTypeBL      InvoiceDocType = "BL"
)

func (t InvoiceDocType) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *InvoiceDocType) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("invoice doc type must be string")
	}
	switch str {
	case "Facture":
		*t = InvoiceDocTypeFacture
	case "BL":
		*t = InvoiceDocTypeBL
	default:
		return errors.New("invalid invoice doc type")
	}
	return nil
}

// InvoiceOrigin records how an invoice entered the register.
// "direct" invoices are created already paid from the day sheet;
// "standard" invoices wait in the payable list until paid.
type InvoiceOrigin string

const (
	InvoiceOriginDirect   InvoiceOrigin = "direct"
	InvoiceOriginStandard InvoiceOrigin = "standard"
)

func (t InvoiceOrigin) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *InvoiceOrigin) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("invoice origin must be string")
	}
	switch str {
	case "direct":
		*t = InvoiceOriginDirect
	case "standard":
		*t = InvoiceOriginStandard
	default:
		return errors.New("invalid invoice origin")
	}
	return nil
}

type InvoiceCategory string

const (
	InvoiceCategoryFournisseur InvoiceCategory = "Fournisseur"
	InvoiceCategoryJournalier  InvoiceCategory = "Journalier"
	InvoiceCategoryDivers      InvoiceCategory = "Divers"
)

func (t InvoiceCategory) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *InvoiceCategory) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("invoice category must be string")
	}
	invoiceCategories := map[string]InvoiceCategory{
		"Fournisseur": InvoiceCategoryFournisseur,
		"Journalier":  InvoiceCategoryJournalier,
		"Divers":      InvoiceCategoryDivers,
	}
	*t, ok = invoiceCategories[str]
	if !ok {
		return errors.New("invalid invoice category")
	}
	return nil
}

// DesignationType tags a designation catalog entry with the expense
// category it autocompletes for.
type DesignationType string

const (
	DesignationTypeJournalier DesignationType = "Journalier"
	DesignationTypeDivers     DesignationType = "Divers"
)

func (t DesignationType) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *DesignationType) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("designation type must be string")
	}
	switch str {
	case "Journalier":
		*t = DesignationTypeJournalier
	case "Divers":
		*t = DesignationTypeDivers
	default:
		return errors.New("invalid designation type")
	}
	return nil
}

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "Cash"
	PaymentMethodCheque   PaymentMethod = "Cheque"
	PaymentMethodCard     PaymentMethod = "Card"
	PaymentMethodTransfer PaymentMethod = "Transfer"
)

func (t PaymentMethod) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *PaymentMethod) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("payment method must be string")
	}
	paymentMethods := map[string]PaymentMethod{
		"Cash":     PaymentMethodCash,
		"Cheque":   PaymentMethodCheque,
		"Card":     PaymentMethodCard,
		"Transfer": PaymentMethodTransfer,
	}
	*t, ok = paymentMethods[str]
	if !ok {
		return errors.New("invalid payment method")
	}
	return nil
}

type UserRole string

const (
	UserRoleAdmin   UserRole = "A"
	UserRoleCashier UserRole = "C"
)

func (t UserRole) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *UserRole) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("user role must be string")
	}
	switch str {
	case "A":
		*t = UserRoleAdmin
	case "C":
		*t = UserRoleCashier
	default:
		return errors.New("invalid user role")
	}
	return nil
}

type MyDateString time.Time

func (t MyDateString) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(time.Time(t).Format("2006-01-02"))))
}

// Parse the string into time.Time object
func (t *MyDateString) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("MyDateString must be string")
	}

	localTime, err := time.Parse("2006-01-02", str)
	if err != nil {
		// tolerate datetime strings from older clients
		localTime, err = time.Parse("2006-01-02T15:04:05", str)
		if err != nil {
			return errors.New("error parsing date")
		}
	}
	*t = MyDateString(localTime)

	return nil
}

// DateKey renders the canonical per-day key, e.g. "2024-01-31".
func (t MyDateString) DateKey() string {
	return time.Time(t).Format("2006-01-02")
}

// Value implements the driver.Valuer interface
func (t MyDateString) Value() (driver.Value, error) {
	return time.Time(t), nil
}

// Scan implements the sql.Scanner interface
func (t *MyDateString) Scan(value interface{}) error {
	if value == nil {
		*t = MyDateString(time.Time{})
		return nil
	}
	switch v := value.(type) {
	case time.Time:
		*t = MyDateString(v)
	default:
		return fmt.Errorf("cannot convert %T to MyDateString", value)
	}
	return nil
}

func (t *MyDateString) SetDefaultNowIfNil() *MyDateString {
	if t == nil {
		now := MyDateString(time.Now())
		return &now
	}
	return t
}
