package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/carthagesoft/caisse_backend/config"
	"bitbucket.org/carthagesoft/caisse_backend/utils"
	"github.com/shopspring/decimal"
)

// BankDeposit is one ledger entry of cash moved to the bank. Deposits
// sum into the period "bancaire" total.
type BankDeposit struct {
	ID          int             `gorm:"primary_key" json:"id"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,3);not null" json:"amount" binding:"required"`
	DepositDate MyDateString    `gorm:"type:date;not null;index" json:"deposit_date" binding:"required"`
	Notes       string          `gorm:"size:255" json:"notes"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewBankDeposit struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	DepositDate MyDateString    `json:"deposit_date" binding:"required"`
	Notes       string          `json:"notes"`
}

func (input *NewBankDeposit) validate(ctx context.Context) error {
	if input.Amount.IsZero() || input.Amount.IsNegative() {
		return errors.New("deposit amount must be positive")
	}
	return validateDateLock(ctx, time.Time(input.DepositDate))
}

// CheckDateLock vetoes changes to a deposit sitting on a frozen day.
// Moving or removing an entry off a locked day is still a mutation of
// that day.
func (d BankDeposit) CheckDateLock(ctx context.Context) error {
	locked, err := IsDateLocked(ctx, d.DepositDate)
	if err != nil {
		return err
	}
	if locked {
		return &LockedDateError{Date: d.DepositDate.DateKey()}
	}
	return nil
}

func AddBankDeposit(ctx context.Context, input *NewBankDeposit) (*BankDeposit, error) {

	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	deposit := BankDeposit{
		Amount:      utils.RoundAmount(input.Amount),
		DepositDate: input.DepositDate,
		Notes:       input.Notes,
	}

	db := config.GetDB()
	tx := db.Begin()
	if err := tx.WithContext(ctx).Create(&deposit).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &deposit, nil
}

func UpdateBankDeposit(ctx context.Context, id int, input *NewBankDeposit) (*BankDeposit, error) {

	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	deposit, err := utils.FetchModelForChange[BankDeposit](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()
	err = tx.WithContext(ctx).Model(deposit).
		Updates(map[string]interface{}{
			"Amount":      utils.RoundAmount(input.Amount),
			"DepositDate": input.DepositDate,
			"Notes":       input.Notes,
		}).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return deposit, nil
}

func DeleteBankDeposit(ctx context.Context, id int) (*BankDeposit, error) {

	deposit, err := utils.FetchModelForChange[BankDeposit](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()
	if err := tx.WithContext(ctx).Delete(deposit).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return deposit, nil
}

func GetBankDeposits(ctx context.Context, fromDate *MyDateString, toDate *MyDateString) ([]*BankDeposit, error) {
	db := config.GetDB()
	var results []*BankDeposit

	dbCtx := db.WithContext(ctx)
	if fromDate != nil {
		dbCtx = dbCtx.Where("deposit_date >= ?", time.Time(*fromDate))
	}
	if toDate != nil {
		dbCtx = dbCtx.Where("deposit_date < ?", time.Time(*toDate).AddDate(0, 0, 1))
	}
	err := dbCtx.Order("deposit_date DESC, id DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetBankDepositTotal sums deposits over [fromDate, toDate] inclusive.
func GetBankDepositTotal(ctx context.Context, fromDate MyDateString, toDate MyDateString) (decimal.Decimal, error) {
	db := config.GetDB()
	var total decimal.Decimal
	err := db.WithContext(ctx).Model(&BankDeposit{}).
		Where("deposit_date >= ? AND deposit_date < ?", time.Time(fromDate), time.Time(toDate).AddDate(0, 0, 1)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
