package lendpool

import (
	"github.com/shopspring/decimal"
)

// HealthFactor solvency ratio, 1.0 is the liquidation boundary
// health_factor = total_collateral_value * weighted_liquidation_threshold / total_debt_value
func HealthFactor(totalCollateralValue, weightedLiquidationThreshold, totalDebtValue decimal.Decimal) decimal.Decimal {
	if !totalDebtValue.IsPositive() {
		return MaxHealthFactor
	}

	hf := totalCollateralValue.Mul(weightedLiquidationThreshold).Div(totalDebtValue).Truncate(MaxPrecision)
	if hf.GreaterThan(MaxHealthFactor) {
		return MaxHealthFactor
	}

	return hf
}

// Liquidatable health factor below the liquidation boundary
func Liquidatable(healthFactor decimal.Decimal) bool {
	return healthFactor.LessThan(HealthFactorLiquidationThreshold)
}

// AvailableBorrowValue remaining borrowing power in the common numeraire
func AvailableBorrowValue(totalCollateralValue, weightedLoanToValue, totalDebtValue decimal.Decimal) decimal.Decimal {
	available := totalCollateralValue.Mul(weightedLoanToValue).Sub(totalDebtValue)
	if available.IsNegative() {
		return decimal.Zero
	}

	return available.Truncate(MaxPrecision)
}
