package lendpool

import (
	"lendpool/core"

	"github.com/shopspring/decimal"
)

// MaxLiquidatableDebt close-factor bound on a single liquidation call
func MaxLiquidatableDebt(currentDebt decimal.Decimal) decimal.Decimal {
	return currentDebt.Mul(CloseFactor).Truncate(MaxPrecision)
}

// CollateralToSeize collateral units purchasable with debtAmount plus the
// liquidation bonus, floored at the collateral reserve's decimals so the
// seizure never exceeds the exact value
func CollateralToSeize(debtPrice, collateralPrice, debtAmount, bonus decimal.Decimal, collateralDecimals int32) (decimal.Decimal, error) {
	if !debtPrice.IsPositive() || !collateralPrice.IsPositive() {
		return decimal.Zero, core.ErrOracleUnavailable
	}
	if bonus.LessThan(LiquidationBonusMin) {
		return decimal.Zero, core.ErrInvalidAmount
	}

	seize := debtPrice.Mul(debtAmount).Mul(bonus).Div(collateralPrice)
	return floor(seize, collateralDecimals), nil
}

// DebtFromCollateral inverse of CollateralToSeize, used to shrink the repaid
// debt when the seizure is clamped to the borrower's collateral balance
func DebtFromCollateral(collateralAmount, debtPrice, collateralPrice, bonus decimal.Decimal, debtDecimals int32) (decimal.Decimal, error) {
	if !debtPrice.IsPositive() || !collateralPrice.IsPositive() {
		return decimal.Zero, core.ErrOracleUnavailable
	}
	if !bonus.IsPositive() {
		return decimal.Zero, core.ErrInvalidAmount
	}

	debt := collateralAmount.Mul(collateralPrice).Div(debtPrice.Mul(bonus))
	return floor(debt, debtDecimals), nil
}

// FeeCollateral collateral owed to the fee collector for the origination fee.
// The fee is percentage denominated, hence the extra FeeScale divisor.
func FeeCollateral(debtPrice, collateralPrice, fee, bonus decimal.Decimal, collateralDecimals int32) (decimal.Decimal, error) {
	seize, err := CollateralToSeize(debtPrice, collateralPrice, fee, bonus, collateralDecimals)
	if err != nil {
		return decimal.Zero, err
	}

	return floor(seize.Div(FeeScale), collateralDecimals), nil
}

// floor round down at the given precision; amounts are never negative here,
// so Truncate rounds toward zero and down alike
func floor(d decimal.Decimal, precision int32) decimal.Decimal {
	if precision < 0 || precision > MaxPrecision {
		precision = MaxPrecision
	}

	return d.Truncate(precision)
}
