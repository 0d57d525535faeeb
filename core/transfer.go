package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// transfer sources
const (
	TransferSourceLiquidationSeized = "liquidation_seized"
	TransferSourceLiquidationFee    = "liquidation_fee"
)

// Transfer queued outbound credit, drained by the cashier worker strictly
// after the ledger mutations that produced it have committed
type Transfer struct {
	ID         uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	CreatedAt  time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at,omitempty"`
	TraceID    string          `sql:"size:36;unique_index:trace_idx" json:"trace_id,omitempty"`
	OpponentID string          `sql:"size:36" json:"opponent_id,omitempty"`
	AssetID    string          `sql:"size:36" json:"asset_id,omitempty"`
	Amount     decimal.Decimal `sql:"type:decimal(32,16)" json:"amount,omitempty"`
	Source     string          `sql:"size:36" json:"source,omitempty"`
	Memo       string          `sql:"size:140" json:"memo,omitempty"`
}

// ITransferStore transfer store interface
type ITransferStore interface {
	Create(ctx context.Context, tx *db.DB, transfer *Transfer) error
	Delete(ctx context.Context, tx *db.DB, ids ...uint64) error
	Top(ctx context.Context, limit int) ([]*Transfer, error)
}

// IWalletService external token collaborator executing queued transfers
type IWalletService interface {
	Transfer(ctx context.Context, transfer *Transfer) error
}
