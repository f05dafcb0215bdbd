package models

import (
	"context"
	"fmt"
	"time"

	"bitbucket.org/carthagesoft/caisse_backend/config"
)

// LockedDateError rejects any financial mutation dated on an
// administratively frozen day. Callers match it with errors.As.
type LockedDateError struct {
	Date string
}

func (e *LockedDateError) Error() string {
	return fmt.Sprintf("date %s is locked", e.Date)
}

// DateSet holds locked dates keyed "2006-01-02". Pure state-machine code
// takes a DateSet so it can run without a database.
type DateSet map[string]bool

func (s DateSet) Contains(t time.Time) bool {
	return s[t.Format("2006-01-02")]
}

const lockedDateSetKey = "LockedDateSet"

// GetLockedDateSet loads the locked-date set, redis first then db, caching the result.
func GetLockedDateSet(ctx context.Context) (DateSet, error) {
	members, err := config.GetRedisSetMembers(lockedDateSetKey)
	if err != nil {
		return nil, err
	}
	set := make(DateSet, len(members))
	if len(members) > 0 {
		for _, m := range members {
			set[m] = true
		}
		return set, nil
	}

	db := config.GetDB()
	var lockedDates []*LockedDate
	if err := db.WithContext(ctx).Find(&lockedDates).Error; err != nil {
		return nil, err
	}
	for _, ld := range lockedDates {
		key := time.Time(ld.Date).Format("2006-01-02")
		set[key] = true
		// best effort, db stays the source of truth
		_ = config.AddRedisSet(lockedDateSetKey, key)
	}
	return set, nil
}

// validateDateLock returns a LockedDateError when the given date is frozen.
func validateDateLock(ctx context.Context, date time.Time) error {
	set, err := GetLockedDateSet(ctx)
	if err != nil {
		return err
	}
	if set.Contains(date) {
		return &LockedDateError{Date: date.Format("2006-01-02")}
	}
	return nil
}

func ParseDateString(dateString string, timezone string) (time.Time, error) {

	localTime, err := time.Parse("2006-01-02", dateString)
	if err != nil {
		return time.Time{}, err
	}

	if timezone == "" {
		timezone = "Africa/Tunis"
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}

	localTimeInZone := time.Date(
		localTime.Year(), localTime.Month(), localTime.Day(),
		0, 0, 0, 0,
		location,
	)

	return localTimeInZone.UTC(), nil
}
