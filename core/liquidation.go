package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

// LiquidationRequest liquidation call input
type LiquidationRequest struct {
	CollateralAssetID string `json:"collateral_asset_id"`
	DebtAssetID       string `json:"debt_asset_id"`
	UserID            string `json:"user_id"`
	LiquidatorID      string `json:"liquidator_id"`
	// requested purchase amount in debt-asset units
	Amount decimal.Decimal `json:"amount"`
	// true: seized collateral is credited as the interest-bearing receipt token,
	// false: as withdrawn underlying asset
	ReceiveReceiptToken bool `json:"receive_receipt_token"`
}

// LiquidationResult liquidation call output
type LiquidationResult struct {
	// debt actually repaid, after the close-factor bound and the collateral clamp
	AmountLiquidated decimal.Decimal `json:"amount_liquidated"`
	CollateralSeized decimal.Decimal `json:"collateral_seized"`
	// collateral paid to the fee collector for the origination fee
	FeeCollateral decimal.Decimal `json:"fee_collateral"`
	// interest component of the debt at liquidation time
	AccruedInterest decimal.Decimal `json:"accrued_interest"`
}

// LiquidationEvent persisted per successful liquidation
type LiquidationEvent struct {
	ID                  uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	CollateralAssetID   string          `sql:"size:36;index:liq_collateral_idx" json:"collateral_asset_id"`
	DebtAssetID         string          `sql:"size:36;index:liq_debt_idx" json:"debt_asset_id"`
	UserID              string          `sql:"size:36;index:liq_user_idx" json:"user_id"`
	LiquidatorID        string          `sql:"size:36" json:"liquidator_id"`
	AmountLiquidated    decimal.Decimal `sql:"type:decimal(32,16)" json:"amount_liquidated"`
	CollateralSeized    decimal.Decimal `sql:"type:decimal(32,16)" json:"collateral_seized"`
	AccruedInterest     decimal.Decimal `sql:"type:decimal(32,16)" json:"accrued_interest"`
	ReceiveReceiptToken bool            `sql:"default:false" json:"receive_receipt_token"`
	ExtraData           types.JSONText  `sql:"type:TEXT" json:"extra_data,omitempty"`
	CreatedAt           time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// FeeLiquidationEvent persisted when a liquidation settles a non-zero origination fee
type FeeLiquidationEvent struct {
	ID                uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	CollateralAssetID string          `sql:"size:36" json:"collateral_asset_id"`
	DebtAssetID       string          `sql:"size:36" json:"debt_asset_id"`
	UserID            string          `sql:"size:36;index:feeliq_user_idx" json:"user_id"`
	FeeAmount         decimal.Decimal `sql:"type:decimal(32,16)" json:"fee_amount"`
	FeeCollateral     decimal.Decimal `sql:"type:decimal(32,16)" json:"fee_collateral"`
	CreatedAt         time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// SetExtraData marshal extra into the event
func (e *LiquidationEvent) SetExtraData(extra interface{}) error {
	data, err := json.Marshal(extra)
	if err != nil {
		return err
	}
	e.ExtraData = data
	return nil
}

// ILiquidationEventStore liquidation event store interface
type ILiquidationEventStore interface {
	Create(ctx context.Context, tx *db.DB, event *LiquidationEvent) error
	CreateFee(ctx context.Context, tx *db.DB, event *FeeLiquidationEvent) error
	List(ctx context.Context, limit int) ([]*LiquidationEvent, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*LiquidationEvent, error)
}

// ILiquidationService liquidation engine interface
type ILiquidationService interface {
	Liquidate(ctx context.Context, req *LiquidationRequest) (*LiquidationResult, error)
}
