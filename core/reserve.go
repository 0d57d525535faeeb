package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Reserve per-asset ledger state
type Reserve struct {
	ID             uint64 `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	AssetID        string `sql:"size:36;unique_index:asset_idx" json:"asset_id"`
	Symbol         string `sql:"size:20;unique_index:symbol_idx" json:"symbol"`
	ReceiptAssetID string `sql:"size:36;unique_index:receipt_asset_idx" json:"receipt_asset_id"`
	Decimals       int32  `sql:"default:8" json:"decimals"`
	// max borrowing power granted per unit of collateral value, (0, 1)
	LoanToValue decimal.Decimal `sql:"type:decimal(20,8)" json:"loan_to_value"`
	// collateral value ratio below which the position becomes liquidatable
	LiquidationThreshold decimal.Decimal `sql:"type:decimal(20,8)" json:"liquidation_threshold"`
	// multiplier on seized collateral value, >= 1, e.g. 1.05
	LiquidationBonus        decimal.Decimal `sql:"type:decimal(20,8)" json:"liquidation_bonus"`
	IsActive                bool            `sql:"default:false" json:"is_active"`
	IsFrozen                bool            `sql:"default:false" json:"is_frozen"`
	BorrowingEnabled        bool            `sql:"default:false" json:"borrowing_enabled"`
	StableBorrowRateEnabled bool            `sql:"default:false" json:"stable_borrow_rate_enabled"`
	AvailableLiquidity      decimal.Decimal `sql:"type:decimal(32,16)" json:"available_liquidity"`
	TotalBorrowsStable      decimal.Decimal `sql:"type:decimal(32,16)" json:"total_borrows_stable"`
	TotalBorrowsVariable    decimal.Decimal `sql:"type:decimal(32,16)" json:"total_borrows_variable"`
	// accrual indices, maintained by the external rate strategy, monotonically non-decreasing
	LiquidityIndex          decimal.Decimal `sql:"type:decimal(28,16);default:1" json:"liquidity_index"`
	VariableBorrowIndex     decimal.Decimal `sql:"type:decimal(28,16);default:1" json:"variable_borrow_index"`
	LiquidityRate           decimal.Decimal `sql:"type:decimal(20,16)" json:"liquidity_rate"`
	VariableBorrowRate      decimal.Decimal `sql:"type:decimal(20,16)" json:"variable_borrow_rate"`
	StableBorrowRate        decimal.Decimal `sql:"type:decimal(20,16)" json:"stable_borrow_rate"`
	AverageStableBorrowRate decimal.Decimal `sql:"type:decimal(20,16)" json:"average_stable_borrow_rate"`
	// price in the common numeraire, refreshed by the priceoracle worker for views
	Price          decimal.Decimal `sql:"type:decimal(20,8)" json:"price"`
	PriceUpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"price_updated_at"`
	LastUpdatedAt  time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"last_updated_at"`
	Version        int64           `sql:"default:0" json:"version"`
	CreatedAt      time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TotalBorrows stable + variable
func (r *Reserve) TotalBorrows() decimal.Decimal {
	return r.TotalBorrowsStable.Add(r.TotalBorrowsVariable)
}

// IReserveStore reserve store interface
type IReserveStore interface {
	Save(ctx context.Context, tx *db.DB, reserve *Reserve) error
	Find(ctx context.Context, assetID string) (*Reserve, error)
	FindBySymbol(ctx context.Context, symbol string) (*Reserve, error)
	FindByReceiptAsset(ctx context.Context, receiptAssetID string) (*Reserve, error)
	All(ctx context.Context) ([]*Reserve, error)
	AllAsMap(ctx context.Context) (map[string]*Reserve, error)
	Update(ctx context.Context, tx *db.DB, reserve *Reserve) error
}
