package utils

import (
	"context"

	"bitbucket.org/carthagesoft/caisse_backend/config"
)

type ModelChangeLocker interface {
	CheckDateLock(context.Context) error
}

/* DB fetching */

// fetch model from db
// (may return RecordNotFound)
func FetchModel[T any](ctx context.Context, id int, associations ...string) (*T, error) {

	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	// preloading
	for _, field := range associations {
		dbCtx.Preload(field)
	}
	var result T
	err := dbCtx.First(&result, id).Error
	if err != nil {
		return nil, ErrorRecordNotFound
	}
	return &result, nil
}

// fetch model and check if model is locked by its accounting date
func FetchModelForChange[T ModelChangeLocker](ctx context.Context, id int, associations ...string) (*T, error) {
	result, err := FetchModel[T](ctx, id, associations...)
	if err != nil {
		return nil, err
	}
	if err := (*result).CheckDateLock(ctx); err != nil {
		return nil, err
	}
	return result, nil
}

// fetch all models from db
func FetchAllModels[T any](ctx context.Context, associations ...string) ([]*T, error) {

	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	// preloading
	for _, field := range associations {
		dbCtx.Preload(field)
	}
	var results []*T
	err := dbCtx.Find(&results).Error
	if err != nil {
		return nil, ErrorRecordNotFound
	}
	return results, nil
}
