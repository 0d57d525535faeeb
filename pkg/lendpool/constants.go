package lendpool

import (
	"github.com/shopspring/decimal"
)

var (
	// CloseFactor max fraction of a single debt position liquidatable in one call
	CloseFactor = decimal.NewFromFloat(0.5)
	// HealthFactorLiquidationThreshold liquidation boundary
	HealthFactorLiquidationThreshold = decimal.New(1, 0)
	// MaxHealthFactor health factor reported for debt-free accounts
	MaxHealthFactor = decimal.New(1, 9)
	// LiquidationBonusMin liquidation bonus must be no less than this value
	LiquidationBonusMin = decimal.New(1, 0)
	// FeeScale the origination fee is percentage denominated
	FeeScale = decimal.NewFromInt(100)
	// SecondsPerYear for the linear stable debt accrual
	SecondsPerYear = decimal.NewFromInt(31536000)
	// MaxPrecision max precision
	MaxPrecision int32 = 16
)
