package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// AccountSnapshot derived per-user solvency totals, recomputed on demand
type AccountSnapshot struct {
	UserID string `json:"user_id"`
	// values in the common numeraire
	TotalCollateralValue decimal.Decimal `json:"total_collateral_value"`
	TotalDebtValue       decimal.Decimal `json:"total_debt_value"`
	AvailableBorrowValue decimal.Decimal `json:"available_borrow_value"`
	// value-weighted averages across collateral reserves
	CurrentLiquidationThreshold decimal.Decimal `json:"current_liquidation_threshold"`
	CurrentLoanToValue          decimal.Decimal `json:"current_loan_to_value"`
	// 1.0 is the liquidation boundary; capped at lendpool.MaxHealthFactor when debt free
	HealthFactor decimal.Decimal `json:"health_factor"`
}

// IAccountService account aggregator interface
type IAccountService interface {
	// ComputeAccountSnapshot reduces the user's positions across all reserves. Read only.
	ComputeAccountSnapshot(ctx context.Context, userID string) (*AccountSnapshot, error)
	HasBorrows(ctx context.Context, userID string) (bool, error)
}
