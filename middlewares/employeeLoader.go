package middlewares

import (
	"context"

	"bitbucket.org/carthagesoft/caisse_backend/models"
	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"
)

type employeeReader struct {
	db *gorm.DB
}

func (r *employeeReader) getEmployeesByName(ctx context.Context, names []string) []*dataloader.Result[*models.Employee] {
	var results []models.Employee
	err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&results).Error
	if err != nil {
		return handleError[*models.Employee](len(names), err)
	}

	return generateNamedLoaderResults(results, names, func(e models.Employee) string { return e.Name })
}

func GetEmployeeByName(ctx context.Context, name string) (*models.Employee, error) {
	loaders := For(ctx)
	return loaders.employeeByNameLoader.Load(ctx, name)()
}
