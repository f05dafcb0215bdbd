package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/carthagesoft/caisse_backend/config"
	"bitbucket.org/carthagesoft/caisse_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DayRecord is one calendar day's register sheet ("chiffre du jour"):
// the gross register total, the payment-channel split and the itemized
// expense and payout breakdowns. One row per date, last write wins.
type DayRecord struct {
	ID            int             `gorm:"primary_key" json:"id"`
	RecordDate    MyDateString    `gorm:"type:date;uniqueIndex;not null" json:"record_date" binding:"required"`
	GrossReceipts decimal.Decimal `gorm:"type:decimal(20,3);default:0" json:"gross_receipts"`
	Card          decimal.Decimal `gorm:"type:decimal(20,3);default:0" json:"card"`
	Cheque        decimal.Decimal `gorm:"type:decimal(20,3);default:0" json:"cheque"`
	MealTickets   decimal.Decimal `gorm:"type:decimal(20,3);default:0" json:"meal_tickets"`

	SupplierLines ExpenseLineList `gorm:"type:text" json:"supplier_lines"`
	DailyLines    ExpenseLineList `gorm:"type:text" json:"daily_lines"`
	MiscLines     ExpenseLineList `gorm:"type:text" json:"misc_lines"`
	AdminLines    AdminLineList   `gorm:"type:text" json:"admin_lines"`

	Advances PayoutLineList `gorm:"type:text" json:"advances"`
	Overtime PayoutLineList `gorm:"type:text" json:"overtime"`
	Extras   PayoutLineList `gorm:"type:text" json:"extras"`
	Bonuses  PayoutLineList `gorm:"type:text" json:"bonuses"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewDayRecord struct {
	RecordDate    MyDateString    `json:"record_date" binding:"required"`
	GrossReceipts decimal.Decimal `json:"gross_receipts"`
	Card          decimal.Decimal `json:"card"`
	Cheque        decimal.Decimal `json:"cheque"`
	MealTickets   decimal.Decimal `json:"meal_tickets"`

	SupplierLines ExpenseLineList `json:"supplier_lines"`
	DailyLines    ExpenseLineList `json:"daily_lines"`
	MiscLines     ExpenseLineList `json:"misc_lines"`
	AdminLines    AdminLineList   `json:"admin_lines"`

	Advances PayoutLineList `json:"advances"`
	Overtime PayoutLineList `json:"overtime"`
	Extras   PayoutLineList `json:"extras"`
	Bonuses  PayoutLineList `json:"bonuses"`
}

/*
	Derived figures

	Nothing below is stored; the sheet is recomputed from the line lists
	on every read so stored blobs and displayed totals cannot drift.
*/

// DeriveCash computes the payment-split invariant:
// net = gross - totalExpenses, cash = net - card - cheque - mealTickets.
// A negative cash figure is surfaced, never rejected; an unbalanced day
// still saves.
func DeriveCash(gross, totalExpenses, card, cheque, mealTickets decimal.Decimal) (net decimal.Decimal, cash decimal.Decimal) {
	net = utils.RoundAmount(gross.Sub(totalExpenses))
	cash = utils.RoundAmount(net.Sub(card).Sub(cheque).Sub(mealTickets))
	return net, cash
}

// TotalExpenses sums every line category of the day.
func (r *DayRecord) TotalExpenses() decimal.Decimal {
	total := r.SupplierLines.Sum().
		Add(r.DailyLines.Sum()).
		Add(r.MiscLines.Sum()).
		Add(r.AdminLines.Sum()).
		Add(r.Advances.Sum()).
		Add(r.Overtime.Sum()).
		Add(r.Extras.Sum()).
		Add(r.Bonuses.Sum())
	return utils.RoundAmount(total)
}

func (r *DayRecord) NetReceipts() decimal.Decimal {
	net, _ := DeriveCash(r.GrossReceipts, r.TotalExpenses(), r.Card, r.Cheque, r.MealTickets)
	return net
}

func (r *DayRecord) Cash() decimal.Decimal {
	_, cash := DeriveCash(r.GrossReceipts, r.TotalExpenses(), r.Card, r.Cheque, r.MealTickets)
	return cash
}

func (input *NewDayRecord) validate(ctx context.Context) error {
	if err := validateAdminLines(input.AdminLines); err != nil {
		return err
	}
	for _, list := range []ExpenseLineList{input.SupplierLines, input.DailyLines, input.MiscLines} {
		for _, line := range list {
			if line == nil || line.Name == "" {
				return errors.New("expense line name is required")
			}
		}
	}
	for _, list := range []PayoutLineList{input.Advances, input.Overtime, input.Extras, input.Bonuses} {
		for _, line := range list {
			if line == nil || line.Username == "" {
				return errors.New("payout line username is required")
			}
		}
	}
	return nil
}

// roundLines normalizes line amounts to millime precision before storage.
func roundExpenseLines(list ExpenseLineList) ExpenseLineList {
	for _, line := range list {
		if line != nil {
			line.Amount = utils.RoundAmount(line.Amount)
		}
	}
	return list
}

func roundPayoutLines(list PayoutLineList) PayoutLineList {
	for _, line := range list {
		if line != nil {
			line.Amount = utils.RoundAmount(line.Amount)
		}
	}
	return list
}

// manualLinesOnly drops invoice-mirrored entries; those are rebuilt from
// the invoices table so the day sheet cannot edit a paid invoice.
func manualLinesOnly(list ExpenseLineList) ExpenseLineList {
	manual := make(ExpenseLineList, 0, len(list))
	for _, line := range list {
		if line == nil || line.IsFromInvoice {
			continue
		}
		manual = append(manual, line)
	}
	return manual
}

// mirroredInvoiceLine renders a paid invoice as a read-only expense line.
func mirroredInvoiceLine(inv *Invoice) *ExpenseLine {
	return &ExpenseLine{
		Name:           inv.Name,
		Amount:         inv.Amount,
		Details:        inv.DocNumber,
		AttachmentRefs: append(append([]string{}, inv.AttachmentRefs...), inv.ChequePhotoRefs...),
		PaymentMethod:  inv.PaymentMethod,
		IsFromInvoice:  true,
		InvoiceId:      inv.ID,
	}
}

// appendInvoiceMirror rebuilds the invoice-mirrored lines of the given
// date on top of the manual lines. Runs inside the caller's transaction.
func appendInvoiceMirror(tx *gorm.DB, ctx context.Context, record *DayRecord) error {
	var paid []*Invoice
	start := time.Time(record.RecordDate)
	end := start.AddDate(0, 0, 1)
	if err := tx.WithContext(ctx).
		Where("status = ? AND paid_date >= ? AND paid_date < ?", InvoiceStatusPaid, start, end).
		Order("id").
		Find(&paid).Error; err != nil {
		return err
	}

	record.SupplierLines = manualLinesOnly(record.SupplierLines)
	record.DailyLines = manualLinesOnly(record.DailyLines)
	record.MiscLines = manualLinesOnly(record.MiscLines)
	for _, inv := range paid {
		line := mirroredInvoiceLine(inv)
		switch inv.Category {
		case InvoiceCategoryJournalier:
			record.DailyLines = append(record.DailyLines, line)
		case InvoiceCategoryDivers:
			record.MiscLines = append(record.MiscLines, line)
		default:
			record.SupplierLines = append(record.SupplierLines, line)
		}
	}
	return nil
}

// SaveDayRecord upserts the sheet for its date. Two cashiers saving the
// same date overwrite each other; last write wins by contract, the redis
// lock only serializes the write itself.
func SaveDayRecord(ctx context.Context, input *NewDayRecord) (*DayRecord, error) {

	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	recordDate := time.Time(input.RecordDate)
	if err := validateDateLock(ctx, recordDate); err != nil {
		return nil, err
	}

	release, err := utils.DateLock(ctx, input.RecordDate.DateKey(), "DayRecord", "SaveDayRecord")
	if err != nil {
		return nil, err
	}
	defer release()

	record := DayRecord{
		RecordDate:    input.RecordDate,
		GrossReceipts: utils.RoundAmount(input.GrossReceipts),
		Card:          utils.RoundAmount(input.Card),
		Cheque:        utils.RoundAmount(input.Cheque),
		MealTickets:   utils.RoundAmount(input.MealTickets),
		SupplierLines: roundExpenseLines(input.SupplierLines),
		DailyLines:    roundExpenseLines(input.DailyLines),
		MiscLines:     roundExpenseLines(input.MiscLines),
		AdminLines:    input.AdminLines,
		Advances:      roundPayoutLines(input.Advances),
		Overtime:      roundPayoutLines(input.Overtime),
		Extras:        roundPayoutLines(input.Extras),
		Bonuses:       roundPayoutLines(input.Bonuses),
	}
	if len(record.AdminLines) == 0 {
		record.AdminLines = DefaultAdminLines()
	}
	for _, line := range record.AdminLines {
		line.Amount = utils.RoundAmount(line.Amount)
	}

	db := config.GetDB()
	tx := db.Begin()

	if err := appendInvoiceMirror(tx, ctx, &record); err != nil {
		tx.Rollback()
		return nil, err
	}

	err = tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "record_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"gross_receipts", "card", "cheque", "meal_tickets",
			"supplier_lines", "daily_lines", "misc_lines", "admin_lines",
			"advances", "overtime", "extras", "bonuses", "updated_at",
		}),
	}).Create(&record).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// GetDayRecord returns the sheet for one date, nil when the day has no entry.
func GetDayRecord(ctx context.Context, date MyDateString) (*DayRecord, error) {
	db := config.GetDB()
	var result DayRecord
	start := time.Time(date)
	end := start.AddDate(0, 0, 1)
	err := db.WithContext(ctx).
		Where("record_date >= ? AND record_date < ?", start, end).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

// GetDayRecordsByRange returns sheets for [fromDate, toDate] inclusive,
// ordered by date.
func GetDayRecordsByRange(ctx context.Context, fromDate MyDateString, toDate MyDateString) ([]*DayRecord, error) {
	db := config.GetDB()
	var results []*DayRecord
	start := time.Time(fromDate)
	end := time.Time(toDate).AddDate(0, 0, 1)
	err := db.WithContext(ctx).
		Where("record_date >= ? AND record_date < ?", start, end).
		Order("record_date").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// refreshDayRecordMirror re-syncs the mirrored invoice lines of one date
// after an invoice pay/unpay/delete. A missing sheet is fine: the mirror
// materializes when the cashier first saves that day.
func refreshDayRecordMirror(tx *gorm.DB, ctx context.Context, date time.Time) error {
	var record DayRecord
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.AddDate(0, 0, 1)
	err := tx.WithContext(ctx).
		Where("record_date >= ? AND record_date < ?", start, end).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := appendInvoiceMirror(tx, ctx, &record); err != nil {
		return err
	}
	return tx.WithContext(ctx).Model(&record).
		Updates(map[string]interface{}{
			"SupplierLines": record.SupplierLines,
			"DailyLines":    record.DailyLines,
			"MiscLines":     record.MiscLines,
		}).Error
}
