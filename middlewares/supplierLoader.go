package middlewares

import (
	"context"

	"bitbucket.org/carthagesoft/caisse_backend/models"
	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"
)

type supplierReader struct {
	db *gorm.DB
}

func (r *supplierReader) getSuppliersByName(ctx context.Context, names []string) []*dataloader.Result[*models.Supplier] {
	var results []models.Supplier
	err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&results).Error
	if err != nil {
		return handleError[*models.Supplier](len(names), err)
	}

	return generateNamedLoaderResults(results, names, func(s models.Supplier) string { return s.Name })
}

func GetSupplierByName(ctx context.Context, name string) (*models.Supplier, error) {
	loaders := For(ctx)
	return loaders.supplierByNameLoader.Load(ctx, name)()
}
