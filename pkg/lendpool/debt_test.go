package lendpool

import (
	"testing"
	"time"

	"lendpool/core"
	"lendpool/pkg/number"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableDebt(t *testing.T) {
	reserve := &core.Reserve{
		VariableBorrowIndex: number.Decimal("1.2"),
	}

	t.Run("accrues by index ratio", func(t *testing.T) {
		u := &core.UserReserve{
			PrincipalVariableDebt: number.Decimal("100"),
			VariableBorrowIndex:   number.Decimal("1"),
		}
		assert.True(t, number.Decimal("120").Equal(VariableDebt(u, reserve)))
	})

	t.Run("zero principal", func(t *testing.T) {
		u := &core.UserReserve{}
		assert.True(t, VariableDebt(u, reserve).IsZero())
	})

	t.Run("missing snapshot defaults to current index", func(t *testing.T) {
		u := &core.UserReserve{
			PrincipalVariableDebt: number.Decimal("100"),
		}
		assert.True(t, number.Decimal("100").Equal(VariableDebt(u, reserve)))
	})
}

func TestStableDebt(t *testing.T) {
	now := time.Now()

	t.Run("linear accrual at frozen rate", func(t *testing.T) {
		u := &core.UserReserve{
			PrincipalStableDebt: number.Decimal("100"),
			StableBorrowRate:    number.Decimal("0.1"),
			StableRateUpdatedAt: now.Add(-365 * 24 * time.Hour / 2),
		}
		got := StableDebt(u, now)
		assert.True(t, number.Decimal("105").Equal(got), "got %s", got)
	})

	t.Run("no negative elapsed", func(t *testing.T) {
		u := &core.UserReserve{
			PrincipalStableDebt: number.Decimal("100"),
			StableBorrowRate:    number.Decimal("0.1"),
			StableRateUpdatedAt: now.Add(time.Hour),
		}
		assert.True(t, number.Decimal("100").Equal(StableDebt(u, now)))
	})
}

func TestAccruedInterest(t *testing.T) {
	now := time.Now()
	reserve := &core.Reserve{
		VariableBorrowIndex: number.Decimal("1.1"),
	}
	u := &core.UserReserve{
		PrincipalVariableDebt: number.Decimal("200"),
		VariableBorrowIndex:   number.Decimal("1"),
		PrincipalStableDebt:   number.Decimal("100"),
		StableBorrowRate:      number.Decimal("0.1"),
		StableRateUpdatedAt:   now.Add(-365 * 24 * time.Hour / 2),
	}

	current := CurrentDebt(u, reserve, now)
	require.True(t, number.Decimal("325").Equal(current), "got %s", current)

	interest := AccruedInterest(u, reserve, now)
	assert.True(t, number.Decimal("25").Equal(interest), "got %s", interest)
}
