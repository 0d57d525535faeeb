package account

import (
	"context"
	"testing"

	"lendpool/core"
	"lendpool/pkg/lendpool"
	"lendpool/pkg/number"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReserveStore struct {
	reserves map[string]*core.Reserve
}

func (s *fakeReserveStore) Save(ctx context.Context, tx *db.DB, r *core.Reserve) error {
	s.reserves[r.AssetID] = r
	return nil
}

func (s *fakeReserveStore) Find(ctx context.Context, assetID string) (*core.Reserve, error) {
	if r, ok := s.reserves[assetID]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeReserveStore) FindBySymbol(ctx context.Context, symbol string) (*core.Reserve, error) {
	for _, r := range s.reserves {
		if r.Symbol == symbol {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeReserveStore) FindByReceiptAsset(ctx context.Context, receiptAssetID string) (*core.Reserve, error) {
	for _, r := range s.reserves {
		if r.ReceiptAssetID == receiptAssetID {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeReserveStore) All(ctx context.Context) ([]*core.Reserve, error) {
	var items []*core.Reserve
	for _, r := range s.reserves {
		items = append(items, r)
	}
	return items, nil
}

func (s *fakeReserveStore) AllAsMap(ctx context.Context) (map[string]*core.Reserve, error) {
	return s.reserves, nil
}

func (s *fakeReserveStore) Update(ctx context.Context, tx *db.DB, r *core.Reserve) error {
	s.reserves[r.AssetID] = r
	return nil
}

type fakeUserReserveStore struct {
	items []*core.UserReserve
}

func (s *fakeUserReserveStore) Save(ctx context.Context, tx *db.DB, u *core.UserReserve) error {
	s.items = append(s.items, u)
	return nil
}

func (s *fakeUserReserveStore) Find(ctx context.Context, userID, assetID string) (*core.UserReserve, error) {
	for _, u := range s.items {
		if u.UserID == userID && u.AssetID == assetID {
			return u, nil
		}
	}
	return &core.UserReserve{UserID: userID, AssetID: assetID}, nil
}

func (s *fakeUserReserveStore) FindByUser(ctx context.Context, userID string) ([]*core.UserReserve, error) {
	var items []*core.UserReserve
	for _, u := range s.items {
		if u.UserID == userID {
			items = append(items, u)
		}
	}
	return items, nil
}

func (s *fakeUserReserveStore) FindByAsset(ctx context.Context, assetID string) ([]*core.UserReserve, error) {
	var items []*core.UserReserve
	for _, u := range s.items {
		if u.AssetID == assetID {
			items = append(items, u)
		}
	}
	return items, nil
}

func (s *fakeUserReserveStore) Users(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var users []string
	for _, u := range s.items {
		if !seen[u.UserID] {
			seen[u.UserID] = true
			users = append(users, u.UserID)
		}
	}
	return users, nil
}

func (s *fakeUserReserveStore) CountOfBorrowers(ctx context.Context, assetID string) (int64, error) {
	var count int64
	for _, u := range s.items {
		if u.AssetID == assetID && (u.PrincipalStableDebt.IsPositive() || u.PrincipalVariableDebt.IsPositive()) {
			count++
		}
	}
	return count, nil
}

func (s *fakeUserReserveStore) Update(ctx context.Context, tx *db.DB, u *core.UserReserve) error {
	return nil
}

type fakePriceService struct {
	prices map[string]decimal.Decimal
}

func (s *fakePriceService) GetPrice(ctx context.Context, assetID string) (decimal.Decimal, error) {
	if price, ok := s.prices[assetID]; ok {
		return price, nil
	}
	return decimal.Zero, core.ErrOracleUnavailable
}

const (
	assetA = "2f5a1b32-bd1c-3a63-a53a-1b1e4c0f0001"
	assetB = "2f5a1b32-bd1c-3a63-a53a-1b1e4c0f0002"
	userID = "9a2b10c1-93f1-4f71-9a6f-2d9c4d8a0001"
)

func newTestService() (core.IAccountService, *fakeReserveStore, *fakeUserReserveStore, *fakePriceService) {
	reserves := &fakeReserveStore{reserves: map[string]*core.Reserve{
		assetA: {
			AssetID:              assetA,
			Symbol:               "AAA",
			Decimals:             8,
			LoanToValue:          number.Decimal("0.7"),
			LiquidationThreshold: number.Decimal("0.8"),
			LiquidationBonus:     number.Decimal("1.05"),
			IsActive:             true,
			VariableBorrowIndex:  number.Decimal("1"),
		},
		assetB: {
			AssetID:              assetB,
			Symbol:               "BBB",
			Decimals:             8,
			LoanToValue:          number.Decimal("0.5"),
			LiquidationThreshold: number.Decimal("0.6"),
			LiquidationBonus:     number.Decimal("1.05"),
			IsActive:             true,
			VariableBorrowIndex:  number.Decimal("1"),
		},
	}}

	userReserves := &fakeUserReserveStore{items: []*core.UserReserve{
		{
			UserID:                userID,
			AssetID:               assetA,
			CollateralBalance:     number.Decimal("100"),
			UsedAsCollateral:      true,
			PrincipalVariableDebt: number.Decimal("100"),
			VariableBorrowIndex:   number.Decimal("1"),
		},
		{
			UserID:            userID,
			AssetID:           assetB,
			CollateralBalance: number.Decimal("100"),
			UsedAsCollateral:  true,
		},
	}}

	prices := &fakePriceService{prices: map[string]decimal.Decimal{
		assetA: number.Decimal("1"),
		assetB: number.Decimal("3"),
	}}

	return New(reserves, userReserves, prices), reserves, userReserves, prices
}

func TestComputeAccountSnapshot(t *testing.T) {
	ctx := context.Background()
	service, _, _, _ := newTestService()

	snapshot, err := service.ComputeAccountSnapshot(ctx, userID)
	require.NoError(t, err)

	// collateral value 100*1 + 100*3 = 400
	assert.True(t, number.Decimal("400").Equal(snapshot.TotalCollateralValue), "collateral %s", snapshot.TotalCollateralValue)
	// debt value 100*1
	assert.True(t, number.Decimal("100").Equal(snapshot.TotalDebtValue), "debt %s", snapshot.TotalDebtValue)
	// value-weighted threshold (100*0.8 + 300*0.6) / 400
	assert.True(t, number.Decimal("0.65").Equal(snapshot.CurrentLiquidationThreshold), "threshold %s", snapshot.CurrentLiquidationThreshold)
	// value-weighted ltv (100*0.7 + 300*0.5) / 400
	assert.True(t, number.Decimal("0.55").Equal(snapshot.CurrentLoanToValue), "ltv %s", snapshot.CurrentLoanToValue)
	// health factor 400*0.65/100
	assert.True(t, number.Decimal("2.6").Equal(snapshot.HealthFactor), "hf %s", snapshot.HealthFactor)
	// available borrow 400*0.55 - 100
	assert.True(t, number.Decimal("120").Equal(snapshot.AvailableBorrowValue), "available %s", snapshot.AvailableBorrowValue)
}

func TestComputeAccountSnapshotCollateralDisabled(t *testing.T) {
	ctx := context.Background()
	service, _, userReserves, _ := newTestService()

	// the balance keeps existing but drops out of totals and weighting
	userReserves.items[1].UsedAsCollateral = false

	snapshot, err := service.ComputeAccountSnapshot(ctx, userID)
	require.NoError(t, err)

	assert.True(t, number.Decimal("100").Equal(snapshot.TotalCollateralValue))
	assert.True(t, number.Decimal("0.8").Equal(snapshot.CurrentLiquidationThreshold))
}

func TestComputeAccountSnapshotDebtFree(t *testing.T) {
	ctx := context.Background()
	service, _, userReserves, _ := newTestService()

	userReserves.items[0].PrincipalVariableDebt = decimal.Zero

	snapshot, err := service.ComputeAccountSnapshot(ctx, userID)
	require.NoError(t, err)

	assert.True(t, snapshot.TotalDebtValue.IsZero())
	assert.True(t, lendpool.MaxHealthFactor.Equal(snapshot.HealthFactor))
}

func TestComputeAccountSnapshotOracleUnavailable(t *testing.T) {
	ctx := context.Background()
	service, _, _, prices := newTestService()

	delete(prices.prices, assetB)

	_, err := service.ComputeAccountSnapshot(ctx, userID)
	assert.Equal(t, core.ErrOracleUnavailable, err)
}

func TestHasBorrows(t *testing.T) {
	ctx := context.Background()
	service, _, userReserves, _ := newTestService()

	has, err := service.HasBorrows(ctx, userID)
	require.NoError(t, err)
	assert.True(t, has)

	userReserves.items[0].PrincipalVariableDebt = decimal.Zero
	has, err = service.HasBorrows(ctx, userID)
	require.NoError(t, err)
	assert.False(t, has)
}
