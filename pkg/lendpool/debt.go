package lendpool

import (
	"time"

	"lendpool/core"

	"github.com/shopspring/decimal"
)

// VariableDebt current variable debt balance
// balance = principal * reserve.variable_borrow_index / user.variable_borrow_index
func VariableDebt(u *core.UserReserve, reserve *core.Reserve) decimal.Decimal {
	if !u.PrincipalVariableDebt.IsPositive() {
		return decimal.Zero
	}

	index := reserve.VariableBorrowIndex
	if !index.IsPositive() {
		index = decimal.New(1, 0)
	}

	snapshot := u.VariableBorrowIndex
	if !snapshot.IsPositive() {
		snapshot = index
	}

	return u.PrincipalVariableDebt.Mul(index).Div(snapshot).
		Shift(MaxPrecision).Ceil().Shift(-MaxPrecision)
}

// StableDebt current stable debt balance, linear accrual at the user's frozen rate
// balance = principal * (1 + rate * elapsed / seconds_per_year)
func StableDebt(u *core.UserReserve, now time.Time) decimal.Decimal {
	if !u.PrincipalStableDebt.IsPositive() {
		return decimal.Zero
	}

	elapsed := now.Unix() - u.StableRateUpdatedAt.Unix()
	if elapsed <= 0 {
		return u.PrincipalStableDebt
	}

	interestFactor := u.StableBorrowRate.
		Mul(decimal.NewFromInt(elapsed)).
		Div(SecondsPerYear)
	return u.PrincipalStableDebt.Mul(decimal.New(1, 0).Add(interestFactor)).
		Shift(MaxPrecision).Ceil().Shift(-MaxPrecision)
}

// CurrentDebt stable + variable current balances
func CurrentDebt(u *core.UserReserve, reserve *core.Reserve, now time.Time) decimal.Decimal {
	return StableDebt(u, now).Add(VariableDebt(u, reserve))
}

// AccruedInterest interest component of the current debt
func AccruedInterest(u *core.UserReserve, reserve *core.Reserve, now time.Time) decimal.Decimal {
	principal := u.PrincipalStableDebt.Add(u.PrincipalVariableDebt)
	interest := CurrentDebt(u, reserve, now).Sub(principal)
	if interest.IsNegative() {
		return decimal.Zero
	}

	return interest
}
