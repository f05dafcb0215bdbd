package models

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"bitbucket.org/carthagesoft/caisse_backend/config"
	"bitbucket.org/carthagesoft/caisse_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GlobalRemainderName is the employee-name sentinel for the single
// unassigned remainder row of a month.
const GlobalRemainderName = "*"

var monthKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// SalaryRemainder carries the part of a month's salary envelope still
// owed to an employee, keyed by (employee_name, month).
type SalaryRemainder struct {
	ID           int             `gorm:"primary_key" json:"id"`
	EmployeeName string          `gorm:"size:255;not null;uniqueIndex:idx_remainder_employee_month" json:"employee_name" binding:"required"`
	Month        string          `gorm:"size:7;not null;uniqueIndex:idx_remainder_employee_month" json:"month" binding:"required"`
	Amount       decimal.Decimal `gorm:"type:decimal(20,3);not null" json:"amount" binding:"required"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewSalaryRemainder struct {
	EmployeeName string          `json:"employee_name" binding:"required"`
	Month        string          `json:"month" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
}

func (input *NewSalaryRemainder) validate() error {
	input.EmployeeName = strings.TrimSpace(input.EmployeeName)
	if input.EmployeeName == "" {
		return errors.New("employee name is required")
	}
	if !monthKeyPattern.MatchString(input.Month) {
		return errors.New("month must use the YYYY-MM format")
	}
	if input.Amount.IsNegative() {
		return errors.New("remainder amount cannot be negative")
	}
	return nil
}

// UpsertSalaryRemainder sets the remainder for (employee, month). A zero
// amount removes the row instead of storing it.
func UpsertSalaryRemainder(ctx context.Context, input *NewSalaryRemainder) (*SalaryRemainder, error) {

	if err := input.validate(); err != nil {
		return nil, err
	}

	db := config.GetDB()

	var existing SalaryRemainder
	err := db.WithContext(ctx).
		Where("employee_name = ? AND month = ?", input.EmployeeName, input.Month).
		First(&existing).Error
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if input.Amount.IsZero() {
		if !found {
			return nil, nil
		}
		tx := db.Begin()
		if err := tx.WithContext(ctx).Delete(&existing).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := tx.Commit().Error; err != nil {
			return nil, err
		}
		return nil, nil
	}

	if found {
		tx := db.Begin()
		err = tx.WithContext(ctx).Model(&existing).
			UpdateColumn("Amount", utils.RoundAmount(input.Amount)).Error
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := tx.Commit().Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}

	remainder := SalaryRemainder{
		EmployeeName: input.EmployeeName,
		Month:        input.Month,
		Amount:       utils.RoundAmount(input.Amount),
	}
	tx := db.Begin()
	if err := tx.WithContext(ctx).Create(&remainder).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &remainder, nil
}

func DeleteSalaryRemainder(ctx context.Context, id int) (*SalaryRemainder, error) {

	remainder, err := utils.FetchModel[SalaryRemainder](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()
	if err := tx.WithContext(ctx).Delete(remainder).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return remainder, nil
}

func GetSalaryRemainders(ctx context.Context, month *string, employeeName *string) ([]*SalaryRemainder, error) {
	db := config.GetDB()
	var results []*SalaryRemainder

	dbCtx := db.WithContext(ctx)
	if month != nil && *month != "" {
		dbCtx = dbCtx.Where("month = ?", *month)
	}
	if employeeName != nil && *employeeName != "" {
		dbCtx = dbCtx.Where("employee_name = ?", *employeeName)
	}
	err := dbCtx.Order("month DESC, employee_name ASC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetSalaryRemainderTotal sums a month's remainders, the global row
// included.
func GetSalaryRemainderTotal(ctx context.Context, month string) (decimal.Decimal, error) {
	db := config.GetDB()
	var total decimal.Decimal
	err := db.WithContext(ctx).Model(&SalaryRemainder{}).
		Where("month = ?", month).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
