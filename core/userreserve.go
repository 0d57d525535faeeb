package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// UserReserve per (user, reserve) position
type UserReserve struct {
	ID      uint64 `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID  string `sql:"size:36;unique_index:user_reserve_idx" json:"user_id"`
	AssetID string `sql:"size:36;unique_index:user_reserve_idx" json:"asset_id"`
	// receipt-token balance, redeemable 1:1 plus accrued interest for the underlying
	CollateralBalance     decimal.Decimal `sql:"type:decimal(32,16)" json:"collateral_balance"`
	PrincipalStableDebt   decimal.Decimal `sql:"type:decimal(32,16)" json:"principal_stable_debt"`
	PrincipalVariableDebt decimal.Decimal `sql:"type:decimal(32,16)" json:"principal_variable_debt"`
	// the user's stable rate, frozen at borrow time
	StableBorrowRate decimal.Decimal `sql:"type:decimal(20,16)" json:"stable_borrow_rate"`
	// reserve variable borrow index at the user's last debt update
	VariableBorrowIndex decimal.Decimal `sql:"type:decimal(28,16);default:1" json:"variable_borrow_index"`
	StableRateUpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"stable_rate_updated_at"`
	// upfront borrow fee, percentage denominated: divide by lendpool.FeeScale
	// for the amount in debt-asset units; accrues no interest
	OriginationFee   decimal.Decimal `sql:"type:decimal(32,16)" json:"origination_fee"`
	UsedAsCollateral bool            `sql:"default:true" json:"used_as_collateral"`
	Version          int64           `sql:"default:0" json:"version"`
	CreatedAt        time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// HasExposure reports whether the position still carries collateral or debt
func (u *UserReserve) HasExposure() bool {
	return u.CollateralBalance.IsPositive() ||
		u.PrincipalStableDebt.IsPositive() ||
		u.PrincipalVariableDebt.IsPositive()
}

// IUserReserveStore user reserve store interface
type IUserReserveStore interface {
	Save(ctx context.Context, tx *db.DB, userReserve *UserReserve) error
	Find(ctx context.Context, userID, assetID string) (*UserReserve, error)
	FindByUser(ctx context.Context, userID string) ([]*UserReserve, error)
	FindByAsset(ctx context.Context, assetID string) ([]*UserReserve, error)
	Users(ctx context.Context) ([]string, error)
	CountOfBorrowers(ctx context.Context, assetID string) (int64, error)
	Update(ctx context.Context, tx *db.DB, userReserve *UserReserve) error
}
