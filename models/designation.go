package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/carthagesoft/caisse_backend/config"
	"bitbucket.org/carthagesoft/caisse_backend/utils"
)

// Designation is a free-text expense label promoted into the catalog,
// tagged journalier or divers so each day-sheet section autocompletes
// from its own list.
type Designation struct {
	ID        int             `gorm:"primary_key" json:"id"`
	Name      string          `gorm:"size:100;not null;uniqueIndex:idx_designation_name_type" json:"name" binding:"required"`
	Type      DesignationType `gorm:"type:enum('Journalier','Divers');not null;default:'Journalier';uniqueIndex:idx_designation_name_type" json:"type"`
	IsActive  *bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewDesignation struct {
	Name string          `json:"name" binding:"required"`
	Type DesignationType `json:"type"`
}

func (input *NewDesignation) validate(ctx context.Context) error {
	if input.Name == "" {
		return errors.New("designation name is required")
	}
	if input.Type == "" {
		input.Type = DesignationTypeJournalier
	}
	return nil
}

// UpsertDesignation creates the label, or returns the existing row when
// the (name, type) pair is already in the catalog.
func UpsertDesignation(ctx context.Context, input *NewDesignation) (*Designation, error) {

	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	db := config.GetDB()

	var existing Designation
	err := db.WithContext(ctx).
		Where("name = ? AND type = ?", input.Name, input.Type).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}

	designation := Designation{
		Name:     input.Name,
		Type:     input.Type,
		IsActive: utils.NewTrue(),
	}
	tx := db.Begin()
	if err := tx.WithContext(ctx).Create(&designation).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := RemoveRedisBoth[Designation](designation.ID); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &designation, nil
}

func DeleteDesignation(ctx context.Context, id int) (*Designation, error) {

	designation, err := utils.FetchModel[Designation](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()
	if err := tx.WithContext(ctx).Delete(designation).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := RemoveRedisBoth[Designation](id); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return designation, nil
}

func GetDesignations(ctx context.Context, name *string, designationType *DesignationType) ([]*Designation, error) {
	if (name == nil || *name == "") && designationType == nil {
		return ListAllResource[Designation](ctx, "name")
	}

	db := config.GetDB()
	var results []*Designation
	dbCtx := db.WithContext(ctx)
	if name != nil && *name != "" {
		dbCtx = dbCtx.Where("name LIKE ?", "%"+*name+"%")
	}
	if designationType != nil {
		dbCtx = dbCtx.Where("type = ?", *designationType)
	}
	err := dbCtx.Order("name").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
