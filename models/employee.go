package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/carthagesoft/caisse_backend/config"
	"bitbucket.org/carthagesoft/caisse_backend/utils"
)

// Employee is the personnel catalog behind payout-line and salary
// remainder autocomplete. Payout lines reference employees by name only.
type Employee struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name" binding:"required"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Role      string    `gorm:"size:100" json:"role"`
	IsActive  *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewEmployee struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

func (input *NewEmployee) validate(ctx context.Context, id int) error {
	if input.Name == "" {
		return errors.New("employee name is required")
	}
	if err := utils.ValidateUnique[Employee](ctx, "name", input.Name, id); err != nil {
		return err
	}
	if input.Phone != "" {
		if err := utils.ValidatePhoneNumber(input.Phone, utils.CountryCode); err != nil {
			return errors.New("invalid phone number")
		}
	}
	return nil
}

// UpsertEmployee creates the employee, or updates the row with the same name.
func UpsertEmployee(ctx context.Context, input *NewEmployee) (*Employee, error) {

	db := config.GetDB()

	var existing Employee
	err := db.WithContext(ctx).Where("name = ?", input.Name).First(&existing).Error
	if err == nil {
		if err := input.validate(ctx, existing.ID); err != nil {
			return nil, err
		}
		tx := db.Begin()
		err = tx.WithContext(ctx).Model(&existing).
			Updates(map[string]interface{}{
				"Phone": input.Phone,
				"Role":  input.Role,
			}).Error
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := RemoveRedisBoth[Employee](existing.ID); err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := tx.Commit().Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	employee := Employee{
		Name:     input.Name,
		Phone:    input.Phone,
		Role:     input.Role,
		IsActive: utils.NewTrue(),
	}
	tx := db.Begin()
	if err := tx.WithContext(ctx).Create(&employee).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := RemoveRedisBoth[Employee](employee.ID); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func GetEmployee(ctx context.Context, id int) (*Employee, error) {
	return GetResource[Employee](ctx, id)
}

func GetEmployees(ctx context.Context, name *string) ([]*Employee, error) {
	if name == nil || *name == "" {
		return ListAllResource[Employee](ctx, "name")
	}

	db := config.GetDB()
	var results []*Employee
	err := db.WithContext(ctx).
		Where("name LIKE ?", "%"+*name+"%").
		Order("name").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func ToggleActiveEmployee(ctx context.Context, id int, isActive bool) (*Employee, error) {
	return ToggleActiveModel[Employee](ctx, id, isActive)
}
