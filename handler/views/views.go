package views

import (
	"time"

	"lendpool/core"
	"lendpool/pkg/lendpool"

	"github.com/shopspring/decimal"
)

// ReserveView reserve state exposed by the read api
type ReserveView struct {
	AssetID                 string          `json:"asset_id"`
	Symbol                  string          `json:"symbol"`
	Decimals                int32           `json:"decimals"`
	IsActive                bool            `json:"is_active"`
	IsFrozen                bool            `json:"is_frozen"`
	BorrowingEnabled        bool            `json:"borrowing_enabled"`
	StableBorrowRateEnabled bool            `json:"stable_borrow_rate_enabled"`
	LoanToValue             decimal.Decimal `json:"loan_to_value"`
	LiquidationThreshold    decimal.Decimal `json:"liquidation_threshold"`
	LiquidationBonus        decimal.Decimal `json:"liquidation_bonus"`
	AvailableLiquidity      decimal.Decimal `json:"available_liquidity"`
	TotalBorrowsStable      decimal.Decimal `json:"total_borrows_stable"`
	TotalBorrowsVariable    decimal.Decimal `json:"total_borrows_variable"`
	LiquidityRate           decimal.Decimal `json:"liquidity_rate"`
	VariableBorrowRate      decimal.Decimal `json:"variable_borrow_rate"`
	StableBorrowRate        decimal.Decimal `json:"stable_borrow_rate"`
	AverageStableBorrowRate decimal.Decimal `json:"average_stable_borrow_rate"`
	LiquidityIndex          decimal.Decimal `json:"liquidity_index"`
	VariableBorrowIndex     decimal.Decimal `json:"variable_borrow_index"`
	Price                   decimal.Decimal `json:"price"`
	LastUpdatedAt           time.Time       `json:"last_updated_at"`
}

// UserReserveView per (user, reserve) state with current debt balances
type UserReserveView struct {
	AssetID               string          `json:"asset_id"`
	UserID                string          `json:"user_id"`
	CollateralBalance     decimal.Decimal `json:"collateral_balance"`
	CurrentStableDebt     decimal.Decimal `json:"current_stable_debt"`
	CurrentVariableDebt   decimal.Decimal `json:"current_variable_debt"`
	PrincipalStableDebt   decimal.Decimal `json:"principal_stable_debt"`
	PrincipalVariableDebt decimal.Decimal `json:"principal_variable_debt"`
	StableBorrowRate      decimal.Decimal `json:"stable_borrow_rate"`
	VariableBorrowIndex   decimal.Decimal `json:"variable_borrow_index"`
	OriginationFee        decimal.Decimal `json:"origination_fee"`
	UsedAsCollateral      bool            `json:"used_as_collateral"`
}

// NewReserveView build reserve view
func NewReserveView(r *core.Reserve) ReserveView {
	return ReserveView{
		AssetID:                 r.AssetID,
		Symbol:                  r.Symbol,
		Decimals:                r.Decimals,
		IsActive:                r.IsActive,
		IsFrozen:                r.IsFrozen,
		BorrowingEnabled:        r.BorrowingEnabled,
		StableBorrowRateEnabled: r.StableBorrowRateEnabled,
		LoanToValue:             r.LoanToValue,
		LiquidationThreshold:    r.LiquidationThreshold,
		LiquidationBonus:        r.LiquidationBonus,
		AvailableLiquidity:      r.AvailableLiquidity,
		TotalBorrowsStable:      r.TotalBorrowsStable,
		TotalBorrowsVariable:    r.TotalBorrowsVariable,
		LiquidityRate:           r.LiquidityRate,
		VariableBorrowRate:      r.VariableBorrowRate,
		StableBorrowRate:        r.StableBorrowRate,
		AverageStableBorrowRate: r.AverageStableBorrowRate,
		LiquidityIndex:          r.LiquidityIndex,
		VariableBorrowIndex:     r.VariableBorrowIndex,
		Price:                   r.Price,
		LastUpdatedAt:           r.LastUpdatedAt,
	}
}

// NewUserReserveView build user reserve view with balances as of now
func NewUserReserveView(u *core.UserReserve, r *core.Reserve, now time.Time) UserReserveView {
	return UserReserveView{
		AssetID:               u.AssetID,
		UserID:                u.UserID,
		CollateralBalance:     u.CollateralBalance,
		CurrentStableDebt:     lendpool.StableDebt(u, now),
		CurrentVariableDebt:   lendpool.VariableDebt(u, r),
		PrincipalStableDebt:   u.PrincipalStableDebt,
		PrincipalVariableDebt: u.PrincipalVariableDebt,
		StableBorrowRate:      u.StableBorrowRate,
		VariableBorrowIndex:   u.VariableBorrowIndex,
		OriginationFee:        u.OriginationFee,
		UsedAsCollateral:      u.UsedAsCollateral,
	}
}
