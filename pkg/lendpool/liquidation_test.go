package lendpool

import (
	"testing"

	"lendpool/core"
	"lendpool/pkg/number"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxLiquidatableDebt(t *testing.T) {
	got := MaxLiquidatableDebt(number.Decimal("1000"))
	assert.True(t, number.Decimal("500").Equal(got))
}

func TestCollateralToSeize(t *testing.T) {
	t.Run("formula", func(t *testing.T) {
		// 10 debt units at price 2 buy 21 collateral units at price 1 with a 5% bonus
		got, err := CollateralToSeize(number.Decimal("2"), number.Decimal("1"), number.Decimal("10"), number.Decimal("1.05"), 8)
		require.NoError(t, err)
		assert.True(t, number.Decimal("21").Equal(got))
	})

	t.Run("floor rounding never exceeds the exact value", func(t *testing.T) {
		debtPrice := number.Decimal("1")
		collateralPrice := number.Decimal("3")
		got, err := CollateralToSeize(debtPrice, collateralPrice, number.Decimal("1"), number.Decimal("1"), 8)
		require.NoError(t, err)

		exact := debtPrice.Div(collateralPrice)
		assert.True(t, got.LessThanOrEqual(exact))
		assert.True(t, number.Decimal("0.33333333").Equal(got))
	})

	t.Run("zero price rejected", func(t *testing.T) {
		_, err := CollateralToSeize(number.Decimal("0"), number.Decimal("1"), number.Decimal("1"), number.Decimal("1.05"), 8)
		assert.Equal(t, core.ErrOracleUnavailable, err)
	})

	t.Run("bonus below one rejected", func(t *testing.T) {
		_, err := CollateralToSeize(number.Decimal("1"), number.Decimal("1"), number.Decimal("1"), number.Decimal("0.95"), 8)
		assert.Equal(t, core.ErrInvalidAmount, err)
	})
}

func TestDebtFromCollateral(t *testing.T) {
	debtPrice := number.Decimal("2")
	collateralPrice := number.Decimal("1")
	bonus := number.Decimal("1.05")

	seize, err := CollateralToSeize(debtPrice, collateralPrice, number.Decimal("10"), bonus, 8)
	require.NoError(t, err)

	debt, err := DebtFromCollateral(seize, debtPrice, collateralPrice, bonus, 8)
	require.NoError(t, err)
	assert.True(t, number.Decimal("10").Equal(debt), "got %s", debt)
}

func TestFeeCollateral(t *testing.T) {
	// fee of 500 percentage-denominated units is 5 debt-asset units
	got, err := FeeCollateral(number.Decimal("1"), number.Decimal("1"), number.Decimal("500"), number.Decimal("1"), 8)
	require.NoError(t, err)
	assert.True(t, number.Decimal("5").Equal(got))
}
