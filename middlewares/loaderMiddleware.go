package middlewares

import (
	"context"
	"reflect"
	"time"

	"bitbucket.org/carthagesoft/caisse_backend/config"
	"bitbucket.org/carthagesoft/caisse_backend/models"
	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"
)

type ctxKey string

const (
	loadersKey = ctxKey("dataloaders")
)

// Loaders wrap your data loaders to inject via middleware
type Loaders struct {
	invoiceLoader *dataloader.Loader[int, *models.Invoice]

	// expense and payout lines reference catalogs by name only, so
	// these are keyed by name and miss to nil instead of a default
	supplierByNameLoader *dataloader.Loader[string, *models.Supplier]
	employeeByNameLoader *dataloader.Loader[string, *models.Employee]
}

// NewLoaders instantiates data loaders for the middleware
func NewLoaders(conn *gorm.DB) *Loaders {
	// define the data loader
	invoiceReader := &invoiceReader{db: conn}
	supplierReader := &supplierReader{db: conn}
	employeeReader := &employeeReader{db: conn}

	return &Loaders{
		invoiceLoader:        dataloader.NewBatchedLoader(invoiceReader.getInvoices, dataloader.WithWait[int, *models.Invoice](time.Millisecond)),
		supplierByNameLoader: dataloader.NewBatchedLoader(supplierReader.getSuppliersByName, dataloader.WithWait[string, *models.Supplier](time.Millisecond)),
		employeeByNameLoader: dataloader.NewBatchedLoader(employeeReader.getEmployeesByName, dataloader.WithWait[string, *models.Employee](time.Millisecond)),
	}
}

func LoaderMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		loader := NewLoaders(config.GetDB())
		ctx := context.WithValue(c.Request.Context(), loadersKey, loader)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func For(ctx context.Context) *Loaders {
	return ctx.Value(loadersKey).(*Loaders)
}

// handleError creates array of result with the same error repeated for as many items requested
func handleError[T any](itemsLength int, err error) []*dataloader.Result[T] {
	result := make([]*dataloader.Result[T], itemsLength)
	for i := 0; i < itemsLength; i++ {
		result[i] = &dataloader.Result[T]{Error: err}
	}
	return result
}

// turns results from db into dataloader results
// (T must be a struct)
func generateLoaderResults[T models.Data](results []T, ids []int) []*dataloader.Result[*T] {
	// generate resultMap from results
	resultMap := make(map[int]T)
	var resultZero T
	resultMap[0] = resultZero.GetDefault(0).(T)
	for _, result := range results {
		resultMap[result.GetId()] = result
	}

	loaderResults := make([]*dataloader.Result[*T], 0, len(ids))
	for _, id := range ids {
		data := resultMap[id]
		if reflect.ValueOf(data).IsZero() {
			data = data.GetDefault(id).(T)
		}
		loaderResults = append(loaderResults, &dataloader.Result[*T]{Data: &data})
	}
	return loaderResults
}

// name-keyed variant: a name with no catalog row loads as nil, never an
// error, since line names carry no referential integrity
func generateNamedLoaderResults[T any](results []T, names []string, nameOf func(T) string) []*dataloader.Result[*T] {
	resultMap := make(map[string]T, len(results))
	for _, result := range results {
		resultMap[nameOf(result)] = result
	}

	loaderResults := make([]*dataloader.Result[*T], 0, len(names))
	for _, name := range names {
		if data, found := resultMap[name]; found {
			copy := data
			loaderResults = append(loaderResults, &dataloader.Result[*T]{Data: &copy})
		} else {
			loaderResults = append(loaderResults, &dataloader.Result[*T]{})
		}
	}
	return loaderResults
}
