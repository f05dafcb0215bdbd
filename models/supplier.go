package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/carthagesoft/caisse_backend/config"
	"bitbucket.org/carthagesoft/caisse_backend/utils"
)

// Supplier is a name-keyed catalog entry feeding supplier-expense
// autocomplete. Expense lines and invoices reference suppliers by name
// only; a rename does not rewrite history.
type Supplier struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name" binding:"required"`
	Email     string    `gorm:"size:100" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Notes     string    `gorm:"type:text" json:"notes"`
	IsActive  *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewSupplier struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// node
// returns decoded cursor string
func (s Supplier) GetCursor() string {
	return s.CreatedAt.String()
}

func (input *NewSupplier) validate(ctx context.Context, id int) error {
	if input.Name == "" {
		return errors.New("supplier name is required")
	}
	// validate unique name
	if err := utils.ValidateUnique[Supplier](ctx, "name", input.Name, id); err != nil {
		return err
	}
	// validate email
	if input.Email != "" && !utils.IsValidEmail(input.Email) {
		return errors.New("invalid email")
	}
	// validate phone
	if input.Phone != "" {
		if err := utils.ValidatePhoneNumber(input.Phone, utils.CountryCode); err != nil {
			return errors.New("invalid phone number")
		}
	}
	return nil
}

// UpsertSupplier creates the supplier, or updates it when a row with the
// same name already exists.
func UpsertSupplier(ctx context.Context, input *NewSupplier) (*Supplier, error) {

	db := config.GetDB()

	var existing Supplier
	err := db.WithContext(ctx).Where("name = ?", input.Name).First(&existing).Error
	if err == nil {
		return UpdateSupplier(ctx, existing.ID, input)
	}

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	supplier := Supplier{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Notes:    input.Notes,
		IsActive: utils.NewTrue(),
	}

	tx := db.Begin()
	if err := tx.WithContext(ctx).Create(&supplier).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := RemoveRedisBoth[Supplier](supplier.ID); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func UpdateSupplier(ctx context.Context, id int, input *NewSupplier) (*Supplier, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	supplier, err := utils.FetchModel[Supplier](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()
	err = tx.WithContext(ctx).Model(supplier).
		Updates(map[string]interface{}{
			"Name":  input.Name,
			"Email": input.Email,
			"Phone": input.Phone,
			"Notes": input.Notes,
		}).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := RemoveRedisBoth[Supplier](id); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return supplier, nil
}

func GetSupplier(ctx context.Context, id int) (*Supplier, error) {
	return GetResource[Supplier](ctx, id)
}

func GetSuppliers(ctx context.Context, name *string) ([]*Supplier, error) {
	if name == nil || *name == "" {
		return ListAllResource[Supplier](ctx, "name")
	}

	db := config.GetDB()
	var results []*Supplier
	err := db.WithContext(ctx).
		Where("name LIKE ?", "%"+*name+"%").
		Order("name").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func ToggleActiveSupplier(ctx context.Context, id int, isActive bool) (*Supplier, error) {
	return ToggleActiveModel[Supplier](ctx, id, isActive)
}
