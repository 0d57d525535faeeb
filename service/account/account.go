package account

import (
	"context"
	"time"

	"lendpool/core"
	"lendpool/pkg/lendpool"

	"github.com/shopspring/decimal"
)

type accountService struct {
	reserveStore     core.IReserveStore
	userReserveStore core.IUserReserveStore
	priceService     core.IPriceOracleService
}

// New new account service
func New(
	reserveStore core.IReserveStore,
	userReserveStore core.IUserReserveStore,
	priceService core.IPriceOracleService,
) core.IAccountService {
	return &accountService{
		reserveStore:     reserveStore,
		userReserveStore: userReserveStore,
		priceService:     priceService,
	}
}

func (s *accountService) ComputeAccountSnapshot(ctx context.Context, userID string) (*core.AccountSnapshot, error) {
	userReserves, err := s.userReserveStore.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var (
		now               = time.Now()
		totalCollateral   = decimal.Zero
		totalDebt         = decimal.Zero
		thresholdWeighted = decimal.Zero
		ltvWeighted       = decimal.Zero
	)

	for _, userReserve := range userReserves {
		if !userReserve.HasExposure() {
			continue
		}

		reserve, err := s.reserveStore.Find(ctx, userReserve.AssetID)
		if err != nil {
			return nil, err
		}

		price, err := s.priceService.GetPrice(ctx, userReserve.AssetID)
		if err != nil || !price.IsPositive() {
			return nil, core.ErrOracleUnavailable
		}

		if debt := lendpool.CurrentDebt(userReserve, reserve, now); debt.IsPositive() {
			totalDebt = totalDebt.Add(debt.Mul(price))
		}

		// collateral balances not flagged as collateral keep existing but are
		// excluded from totals and LTV/threshold weighting
		if userReserve.CollateralBalance.IsPositive() && userReserve.UsedAsCollateral {
			value := userReserve.CollateralBalance.Mul(price)
			totalCollateral = totalCollateral.Add(value)
			thresholdWeighted = thresholdWeighted.Add(value.Mul(reserve.LiquidationThreshold))
			ltvWeighted = ltvWeighted.Add(value.Mul(reserve.LoanToValue))
		}
	}

	var threshold, ltv decimal.Decimal
	if totalCollateral.IsPositive() {
		threshold = thresholdWeighted.Div(totalCollateral).Truncate(lendpool.MaxPrecision)
		ltv = ltvWeighted.Div(totalCollateral).Truncate(lendpool.MaxPrecision)
	}

	return &core.AccountSnapshot{
		UserID:                      userID,
		TotalCollateralValue:        totalCollateral,
		TotalDebtValue:              totalDebt,
		AvailableBorrowValue:        lendpool.AvailableBorrowValue(totalCollateral, ltv, totalDebt),
		CurrentLiquidationThreshold: threshold,
		CurrentLoanToValue:          ltv,
		HealthFactor:                lendpool.HealthFactor(totalCollateral, threshold, totalDebt),
	}, nil
}

func (s *accountService) HasBorrows(ctx context.Context, userID string) (bool, error) {
	userReserves, err := s.userReserveStore.FindByUser(ctx, userID)
	if err != nil {
		return false, err
	}

	for _, u := range userReserves {
		if u.PrincipalStableDebt.IsPositive() || u.PrincipalVariableDebt.IsPositive() {
			return true, nil
		}
	}

	return false, nil
}
