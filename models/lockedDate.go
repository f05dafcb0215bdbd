package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/carthagesoft/caisse_backend/config"
	"bitbucket.org/carthagesoft/caisse_backend/utils"
	"gorm.io/gorm"
)

// LockedDate freezes a calendar day: day sheets on it cannot be saved
// and invoices cannot be paid, unpaid or deleted on it.
type LockedDate struct {
	ID        int          `gorm:"primary_key" json:"id"`
	Date      MyDateString `gorm:"type:date;uniqueIndex;not null" json:"date" binding:"required"`
	Reason    string       `gorm:"size:255" json:"reason"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
}

func LockDate(ctx context.Context, date MyDateString, reason *string) (*LockedDate, error) {
	db := config.GetDB()

	locked := LockedDate{
		Date:   date,
		Reason: utils.DereferencePtr(reason),
	}

	tx := db.Begin()
	err := tx.WithContext(ctx).
		Where("date = ?", time.Time(date)).
		FirstOrCreate(&locked).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	err = config.AddRedisSet(lockedDateSetKey, date.DateKey())
	if err != nil {
		config.LogError(config.GetLogger(), "models", "LockDate", "add redis set", date.DateKey(), err)
	}
	return &locked, nil
}

func UnlockDate(ctx context.Context, date MyDateString) (*LockedDate, error) {
	db := config.GetDB()

	var locked LockedDate
	err := db.WithContext(ctx).
		Where("date = ?", time.Time(date)).
		First(&locked).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorRecordNotFound
		}
		return nil, err
	}

	tx := db.Begin()
	if err := tx.WithContext(ctx).Delete(&locked).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	err = config.RemoveRedisSetMember(lockedDateSetKey, date.DateKey())
	if err != nil {
		config.LogError(config.GetLogger(), "models", "UnlockDate", "remove redis set member", date.DateKey(), err)
	}
	return &locked, nil
}

func GetLockedDates(ctx context.Context) ([]*LockedDate, error) {
	db := config.GetDB()
	var results []*LockedDate
	err := db.WithContext(ctx).Order("date DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func IsDateLocked(ctx context.Context, date MyDateString) (bool, error) {
	locked, err := GetLockedDateSet(ctx)
	if err != nil {
		return false, err
	}
	return locked.Contains(time.Time(date)), nil
}
