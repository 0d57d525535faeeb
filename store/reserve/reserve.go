package reserve

import (
	"context"

	"lendpool/core"

	"github.com/fox-one/pkg/store/db"
)

type reserveStore struct {
	db *db.DB
}

// New new reserve store
func New(db *db.DB) core.IReserveStore {
	return &reserveStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Reserve{})
		if err := tx.AutoMigrate(core.Reserve{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *reserveStore) Save(ctx context.Context, tx *db.DB, reserve *core.Reserve) error {
	if tx == nil {
		tx = s.db
	}
	return tx.Update().Create(reserve).Error
}

func (s *reserveStore) Find(ctx context.Context, assetID string) (*core.Reserve, error) {
	var reserve core.Reserve
	if err := s.db.View().Where("asset_id=?", assetID).First(&reserve).Error; err != nil {
		return nil, err
	}

	return &reserve, nil
}

func (s *reserveStore) FindBySymbol(ctx context.Context, symbol string) (*core.Reserve, error) {
	var reserve core.Reserve
	if err := s.db.View().Where("symbol=?", symbol).First(&reserve).Error; err != nil {
		return nil, err
	}

	return &reserve, nil
}

func (s *reserveStore) FindByReceiptAsset(ctx context.Context, receiptAssetID string) (*core.Reserve, error) {
	var reserve core.Reserve
	if err := s.db.View().Where("receipt_asset_id=?", receiptAssetID).First(&reserve).Error; err != nil {
		return nil, err
	}

	return &reserve, nil
}

func (s *reserveStore) All(ctx context.Context) ([]*core.Reserve, error) {
	var reserves []*core.Reserve
	if err := s.db.View().Find(&reserves).Error; err != nil {
		return nil, err
	}
	return reserves, nil
}

func (s *reserveStore) AllAsMap(ctx context.Context) (map[string]*core.Reserve, error) {
	reserves, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	maps := make(map[string]*core.Reserve)
	for _, r := range reserves {
		maps[r.AssetID] = r
	}

	return maps, nil
}

func (s *reserveStore) Update(ctx context.Context, tx *db.DB, reserve *core.Reserve) error {
	if tx == nil {
		tx = s.db
	}

	version := reserve.Version
	reserve.Version++

	// column map so fields dropping to zero are written out
	updates := map[string]interface{}{
		"loan_to_value":              reserve.LoanToValue,
		"liquidation_threshold":      reserve.LiquidationThreshold,
		"liquidation_bonus":          reserve.LiquidationBonus,
		"is_active":                  reserve.IsActive,
		"is_frozen":                  reserve.IsFrozen,
		"borrowing_enabled":          reserve.BorrowingEnabled,
		"stable_borrow_rate_enabled": reserve.StableBorrowRateEnabled,
		"available_liquidity":        reserve.AvailableLiquidity,
		"total_borrows_stable":       reserve.TotalBorrowsStable,
		"total_borrows_variable":     reserve.TotalBorrowsVariable,
		"liquidity_index":            reserve.LiquidityIndex,
		"variable_borrow_index":      reserve.VariableBorrowIndex,
		"liquidity_rate":             reserve.LiquidityRate,
		"variable_borrow_rate":       reserve.VariableBorrowRate,
		"stable_borrow_rate":         reserve.StableBorrowRate,
		"average_stable_borrow_rate": reserve.AverageStableBorrowRate,
		"price":                      reserve.Price,
		"price_updated_at":           reserve.PriceUpdatedAt,
		"last_updated_at":            reserve.LastUpdatedAt,
		"version":                    reserve.Version,
	}

	return tx.Update().Model(core.Reserve{}).
		Where("asset_id=? and version=?", reserve.AssetID, version).
		Updates(updates).Error
}
