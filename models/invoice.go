package models

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"bitbucket.org/carthagesoft/caisse_backend/config"
	"bitbucket.org/carthagesoft/caisse_backend/utils"
	"github.com/shopspring/decimal"
)

// StringList is a JSON text column of attachment object keys.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	*l = StringList{}
	return scanLineBlob(value, l, "StringList")
}

// Invoice is a supplier or designation payable. Standard invoices enter
// unpaid and wait in the payable list; direct invoices are created
// already paid from the day sheet. Paid invoices are mirrored as
// read-only expense lines on the day record of their paid date.
type Invoice struct {
	ID              int             `gorm:"primary_key" json:"id"`
	Name            string          `gorm:"size:100;not null;index" json:"name" binding:"required"`
	Amount          decimal.Decimal `gorm:"type:decimal(20,3);default:0" json:"amount"`
	IssueDate       time.Time       `gorm:"type:date;not null;index" json:"issue_date" binding:"required"`
	DocType         InvoiceDocType  `gorm:"type:enum('Facture','BL');not null;default:'Facture'" json:"doc_type"`
	DocNumber       string          `gorm:"size:100" json:"doc_number"`
	Category        InvoiceCategory `gorm:"type:enum('Fournisseur','Journalier','Divers');not null;default:'Fournisseur'" json:"category"`
	Origin          InvoiceOrigin   `gorm:"type:enum('direct','standard');not null;default:'standard'" json:"origin"`
	Status          InvoiceStatus   `gorm:"type:enum('unpaid','paid');not null;default:'unpaid';index" json:"status"`
	AttachmentRefs  StringList      `gorm:"type:text" json:"attachment_refs"`
	PaymentMethod   *PaymentMethod  `gorm:"type:enum('Cash','Cheque','Card','Transfer')" json:"payment_method"`
	PaidDate        *time.Time      `gorm:"type:date;index" json:"paid_date"`
	Payer           string          `gorm:"size:100" json:"payer"`
	ChequePhotoRefs StringList      `gorm:"type:text" json:"cheque_photo_refs"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewInvoice struct {
	Name            string          `json:"name" binding:"required"`
	Amount          decimal.Decimal `json:"amount"`
	IssueDate       MyDateString    `json:"issue_date" binding:"required"`
	DocType         InvoiceDocType  `json:"doc_type"`
	DocNumber       string          `json:"doc_number"`
	Category        InvoiceCategory `json:"category"`
	Origin          InvoiceOrigin   `json:"origin"`
	AttachmentRefs  StringList      `json:"attachment_refs"`
	PaymentMethod   *PaymentMethod  `json:"payment_method"`
	PaidDate        *MyDateString   `json:"paid_date"`
	Payer           string          `json:"payer"`
	ChequePhotoRefs StringList      `json:"cheque_photo_refs"`
}

type InvoicesEdge Edge[Invoice]
type InvoicesConnection struct {
	PageInfo *PageInfo       `json:"pageInfo"`
	Edges    []*InvoicesEdge `json:"edges"`
}

// node
// returns decoded cursor string
func (i Invoice) GetCursor() string {
	return i.IssueDate.Format("2006-01-02 15:04:05")
}

func (i Invoice) GetId() int {
	return i.ID
}

// RelevantDate is the date the locked-date check applies to: the paid
// date while paid, the issue date while unpaid.
func (i *Invoice) RelevantDate() time.Time {
	if i.Status == InvoiceStatusPaid && i.PaidDate != nil {
		return *i.PaidDate
	}
	return i.IssueDate
}

/*
	State machine

	The transition methods are pure: they take the locked-date set and
	mutate the struct only. Persistence and mirror refresh happen in the
	exported DB functions below, so these rules stay testable without a
	database.
*/

// Pay flips unpaid -> paid, storing method, date, payer and cheque photos.
func (i *Invoice) Pay(method PaymentMethod, paidDate time.Time, payer string, chequePhotos StringList, locked DateSet) error {
	if i.Status == InvoiceStatusPaid {
		return errors.New("invoice is already paid")
	}
	if locked.Contains(paidDate) {
		return &LockedDateError{Date: paidDate.Format("2006-01-02")}
	}
	i.Status = InvoiceStatusPaid
	i.PaymentMethod = &method
	i.PaidDate = &paidDate
	i.Payer = payer
	if len(chequePhotos) > 0 {
		i.ChequePhotoRefs = chequePhotos
	}
	return nil
}

// Unpay reverts paid -> unpaid. Payment method, paid date and payer are
// cleared; cheque photos are kept as the only audit trace of the undone
// payment.
func (i *Invoice) Unpay(locked DateSet) error {
	if i.Status != InvoiceStatusPaid {
		return errors.New("invoice is not paid")
	}
	if i.PaidDate != nil && locked.Contains(*i.PaidDate) {
		return &LockedDateError{Date: i.PaidDate.Format("2006-01-02")}
	}
	i.Status = InvoiceStatusUnpaid
	i.PaymentMethod = nil
	i.PaidDate = nil
	i.Payer = ""
	return nil
}

// Deletable rejects deletion when the relevant date is locked. Deletion
// is physical in both states: a direct invoice delete removes the
// expense, a paid standard invoice delete doubles as cancel/revert.
func (i *Invoice) Deletable(locked DateSet) error {
	relevant := i.RelevantDate()
	if locked.Contains(relevant) {
		return &LockedDateError{Date: relevant.Format("2006-01-02")}
	}
	return nil
}

// CheckDateLock vetoes destructive changes while the relevant date is
// frozen. Satisfies utils.ModelChangeLocker.
func (i Invoice) CheckDateLock(ctx context.Context) error {
	locked, err := GetLockedDateSet(ctx)
	if err != nil {
		return err
	}
	return i.Deletable(locked)
}

func (input *NewInvoice) validate(ctx context.Context) error {
	if input.Amount.IsNegative() {
		return errors.New("invoice amount cannot be negative")
	}
	if input.Origin == InvoiceOriginDirect {
		if input.PaymentMethod == nil || input.PaidDate == nil {
			return errors.New("direct invoice requires payment method and paid date")
		}
	}
	return nil
}

func CreateInvoice(ctx context.Context, input *NewInvoice) (*Invoice, error) {

	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	issueDate := time.Time(input.IssueDate)
	if err := validateDateLock(ctx, issueDate); err != nil {
		return nil, err
	}

	invoice := Invoice{
		Name:           input.Name,
		Amount:         utils.RoundAmount(input.Amount),
		IssueDate:      issueDate,
		DocType:        input.DocType,
		DocNumber:      input.DocNumber,
		Category:       input.Category,
		Origin:         input.Origin,
		Status:         InvoiceStatusUnpaid,
		AttachmentRefs: input.AttachmentRefs,
	}
	if invoice.DocType == "" {
		invoice.DocType = InvoiceDocTypeFacture
	}
	if invoice.Category == "" {
		invoice.Category = InvoiceCategoryFournisseur
	}
	if invoice.Origin == "" {
		invoice.Origin = InvoiceOriginStandard
	}

	// a direct invoice is born paid, skipping the payable list
	if invoice.Origin == InvoiceOriginDirect {
		locked, err := GetLockedDateSet(ctx)
		if err != nil {
			return nil, err
		}
		if err := invoice.Pay(*input.PaymentMethod, time.Time(*input.PaidDate), input.Payer, input.ChequePhotoRefs, locked); err != nil {
			return nil, err
		}
	}

	db := config.GetDB()
	tx := db.Begin()
	if err := tx.WithContext(ctx).Create(&invoice).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if invoice.Status == InvoiceStatusPaid {
		if err := refreshDayRecordMirror(tx, ctx, *invoice.PaidDate); err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// UpdateInvoice edits the descriptive fields in either state. Plain
// field edits carry no locked-date check; only transitions and deletes
// do. Kept as-is knowingly.
func UpdateInvoice(ctx context.Context, id int, input *NewInvoice) (*Invoice, error) {

	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	invoice, err := utils.FetchModel[Invoice](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()
	err = tx.WithContext(ctx).Model(invoice).
		Updates(map[string]interface{}{
			"Name":           input.Name,
			"Amount":         utils.RoundAmount(input.Amount),
			"IssueDate":      time.Time(input.IssueDate),
			"DocType":        input.DocType,
			"DocNumber":      input.DocNumber,
			"Category":       input.Category,
			"AttachmentRefs": input.AttachmentRefs,
		}).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	// a paid invoice shows on its day sheet; keep the mirror in sync
	if invoice.Status == InvoiceStatusPaid && invoice.PaidDate != nil {
		if err := refreshDayRecordMirror(tx, ctx, *invoice.PaidDate); err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

func PayInvoice(ctx context.Context, id int, method PaymentMethod, paidDate MyDateString, payer string, chequePhotos StringList) (*Invoice, error) {

	invoice, err := utils.FetchModel[Invoice](ctx, id)
	if err != nil {
		return nil, err
	}

	locked, err := GetLockedDateSet(ctx)
	if err != nil {
		return nil, err
	}
	if err := invoice.Pay(method, time.Time(paidDate), payer, chequePhotos, locked); err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()
	err = tx.WithContext(ctx).Model(invoice).
		Updates(map[string]interface{}{
			"Status":          invoice.Status,
			"PaymentMethod":   invoice.PaymentMethod,
			"PaidDate":        invoice.PaidDate,
			"Payer":           invoice.Payer,
			"ChequePhotoRefs": invoice.ChequePhotoRefs,
		}).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := refreshDayRecordMirror(tx, ctx, *invoice.PaidDate); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

func UnpayInvoice(ctx context.Context, id int) (*Invoice, error) {

	invoice, err := utils.FetchModel[Invoice](ctx, id)
	if err != nil {
		return nil, err
	}

	var oldPaidDate *time.Time
	if invoice.PaidDate != nil {
		d := *invoice.PaidDate
		oldPaidDate = &d
	}

	locked, err := GetLockedDateSet(ctx)
	if err != nil {
		return nil, err
	}
	if err := invoice.Unpay(locked); err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()
	err = tx.WithContext(ctx).Model(invoice).
		Updates(map[string]interface{}{
			"Status":        invoice.Status,
			"PaymentMethod": nil,
			"PaidDate":      nil,
			"Payer":         "",
		}).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if oldPaidDate != nil {
		if err := refreshDayRecordMirror(tx, ctx, *oldPaidDate); err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

func DeleteInvoice(ctx context.Context, id int) (*Invoice, error) {

	invoice, err := utils.FetchModelForChange[Invoice](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()
	if err := tx.WithContext(ctx).Delete(invoice).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if invoice.Status == InvoiceStatusPaid && invoice.PaidDate != nil {
		if err := refreshDayRecordMirror(tx, ctx, *invoice.PaidDate); err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

func GetInvoice(ctx context.Context, id int) (*Invoice, error) {
	return utils.FetchModel[Invoice](ctx, id)
}

func GetInvoices(ctx context.Context, name *string, startDate *MyDateString, endDate *MyDateString, payer *string, status *InvoiceStatus) ([]*Invoice, error) {
	db := config.GetDB()
	var results []*Invoice

	dbCtx := db.WithContext(ctx)
	if name != nil && *name != "" {
		dbCtx = dbCtx.Where("name LIKE ?", "%"+*name+"%")
	}
	if startDate != nil {
		dbCtx = dbCtx.Where("issue_date >= ?", time.Time(*startDate))
	}
	if endDate != nil {
		dbCtx = dbCtx.Where("issue_date < ?", time.Time(*endDate).AddDate(0, 0, 1))
	}
	if payer != nil && *payer != "" {
		dbCtx = dbCtx.Where("payer LIKE ?", "%"+*payer+"%")
	}
	if status != nil {
		dbCtx = dbCtx.Where("status = ?", *status)
	}
	err := dbCtx.Order("issue_date DESC, id DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func PaginateInvoice(ctx context.Context, limit *int, after *string,
	name *string, status *InvoiceStatus, category *InvoiceCategory,
	startIssueDate *MyDateString, endIssueDate *MyDateString) (*InvoicesConnection, error) {

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Model(&Invoice{})
	if name != nil && *name != "" {
		dbCtx.Where("name LIKE ?", "%"+*name+"%")
	}
	if status != nil {
		dbCtx.Where("status = ?", *status)
	}
	if category != nil {
		dbCtx.Where("category = ?", *category)
	}
	if startIssueDate != nil {
		dbCtx.Where("issue_date >= ?", time.Time(*startIssueDate))
	}
	if endIssueDate != nil {
		dbCtx.Where("issue_date < ?", time.Time(*endIssueDate).AddDate(0, 0, 1))
	}
	edges, pageInfo, err := FetchPageCompositeCursor[Invoice](dbCtx, *limit, after, "issue_date", "<")
	if err != nil {
		return nil, err
	}
	var connection InvoicesConnection
	connection.PageInfo = pageInfo
	for _, edge := range edges {
		invoiceEdge := InvoicesEdge(edge)
		connection.Edges = append(connection.Edges, &invoiceEdge)
	}
	return &connection, err
}
