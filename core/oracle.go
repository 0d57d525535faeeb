package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// IPriceOracleService price oracle adapter, returns the asset price in the
// common numeraire. Implementations must return ErrOracleUnavailable for
// failed lookups and non-positive prices.
type IPriceOracleService interface {
	GetPrice(ctx context.Context, assetID string) (decimal.Decimal, error)
}
