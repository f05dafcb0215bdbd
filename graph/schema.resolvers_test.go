package graph

import (
	"context"

	"bitbucket.org/carthagesoft/caisse_backend/models"
	"github.com/shopspring/decimal"
)

// Signature pins for resolvers whose generated counterparts are easy to
// drift from: `type` arguments are emitted as typeArg, and non-null
// Decimal fields are emitted as *decimal.Decimal.
var (
	_ func(context.Context, *string, *models.DesignationType) ([]*models.Designation, error) = (&queryResolver{}).GetDesignations
	_ func(context.Context, string) (*decimal.Decimal, error)                                = (&queryResolver{}).GetSalaryRemainderTotal
)
