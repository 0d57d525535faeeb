package lendpool

import (
	"testing"

	"lendpool/pkg/number"

	"github.com/stretchr/testify/assert"
)

func TestHealthFactor(t *testing.T) {
	t.Run("debt free treated as max", func(t *testing.T) {
		hf := HealthFactor(number.Decimal("100"), number.Decimal("0.8"), number.Decimal("0"))
		assert.True(t, MaxHealthFactor.Equal(hf))
		assert.False(t, Liquidatable(hf))
	})

	t.Run("below boundary", func(t *testing.T) {
		hf := HealthFactor(number.Decimal("100"), number.Decimal("0.8"), number.Decimal("100"))
		assert.True(t, number.Decimal("0.8").Equal(hf))
		assert.True(t, Liquidatable(hf))
	})

	t.Run("at boundary is not liquidatable", func(t *testing.T) {
		hf := HealthFactor(number.Decimal("125"), number.Decimal("0.8"), number.Decimal("100"))
		assert.True(t, number.Decimal("1").Equal(hf))
		assert.False(t, Liquidatable(hf))
	})
}

func TestAvailableBorrowValue(t *testing.T) {
	got := AvailableBorrowValue(number.Decimal("1000"), number.Decimal("0.75"), number.Decimal("500"))
	assert.True(t, number.Decimal("250").Equal(got))

	got = AvailableBorrowValue(number.Decimal("100"), number.Decimal("0.75"), number.Decimal("500"))
	assert.True(t, got.IsZero())
}
