package liquidation

import (
	"context"
	"fmt"
	"time"

	"lendpool/core"
	"lendpool/pkg/id"
	"lendpool/pkg/lendpool"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

type liquidationService struct {
	db               *db.DB
	reserveStore     core.IReserveStore
	userReserveStore core.IUserReserveStore
	transferStore    core.ITransferStore
	eventStore       core.ILiquidationEventStore
	priceService     core.IPriceOracleService
	accountService   core.IAccountService
	feeCollectorID   string
}

// New new liquidation service
func New(
	db *db.DB,
	reserveStore core.IReserveStore,
	userReserveStore core.IUserReserveStore,
	transferStore core.ITransferStore,
	eventStore core.ILiquidationEventStore,
	priceService core.IPriceOracleService,
	accountService core.IAccountService,
	feeCollectorID string,
) core.ILiquidationService {
	return &liquidationService{
		db:               db,
		reserveStore:     reserveStore,
		userReserveStore: userReserveStore,
		transferStore:    transferStore,
		eventStore:       eventStore,
		priceService:     priceService,
		accountService:   accountService,
		feeCollectorID:   feeCollectorID,
	}
}

// sizing holds the amounts computed from one consistent read snapshot; all
// ledger mutations derive from it, nothing is re-read after mutation begins
type sizing struct {
	now             time.Time
	stableRepay     decimal.Decimal
	variableRepay   decimal.Decimal
	actualDebt      decimal.Decimal
	collateralSeize decimal.Decimal
	feeSettled      decimal.Decimal
	feeCollateral   decimal.Decimal
	accruedInterest decimal.Decimal
}

func (s *liquidationService) Liquidate(ctx context.Context, req *core.LiquidationRequest) (*core.LiquidationResult, error) {
	log := logger.FromContext(ctx).WithField("service", "liquidation")

	if req == nil || !req.Amount.IsPositive() {
		return nil, core.ErrInvalidAmount
	}

	collateralReserve, err := s.findActiveReserve(ctx, req.CollateralAssetID)
	if err != nil {
		return nil, err
	}

	debtReserve := collateralReserve
	if req.DebtAssetID != req.CollateralAssetID {
		debtReserve, err = s.findActiveReserve(ctx, req.DebtAssetID)
		if err != nil {
			return nil, err
		}
	}

	snapshot, err := s.accountService.ComputeAccountSnapshot(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if !lendpool.Liquidatable(snapshot.HealthFactor) {
		return nil, core.ErrHealthFactorNotBelowThreshold
	}

	userDebt, err := s.userReserveStore.Find(ctx, req.UserID, req.DebtAssetID)
	if err != nil {
		return nil, err
	}

	userCollateral := userDebt
	if req.CollateralAssetID != req.DebtAssetID {
		userCollateral, err = s.userReserveStore.Find(ctx, req.UserID, req.CollateralAssetID)
		if err != nil {
			return nil, err
		}
	}

	size, err := s.size(ctx, req, collateralReserve, debtReserve, userCollateral, userDebt)
	if err != nil {
		return nil, err
	}

	// underlying withdrawals (seized collateral when the liquidator declines the
	// receipt token, fee collateral always) must be covered by reserve liquidity
	withdrawal := size.feeCollateral
	if !req.ReceiveReceiptToken {
		withdrawal = withdrawal.Add(size.collateralSeize)
	}
	if collateralReserve.AvailableLiquidity.LessThan(withdrawal) {
		return nil, core.ErrInsufficientLiquidity
	}

	if err := s.transact(func(tx *db.DB) error {
		return s.apply(ctx, tx, req, collateralReserve, debtReserve, userCollateral, userDebt, size)
	}); err != nil {
		log.WithError(err).Errorln("liquidation mutation failed")
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"user":              req.UserID,
		"liquidator":        req.LiquidatorID,
		"debt_asset":        req.DebtAssetID,
		"collateral_asset":  req.CollateralAssetID,
		"amount_liquidated": size.actualDebt,
		"collateral_seized": size.collateralSeize,
	}).Infoln("liquidation settled")

	return &core.LiquidationResult{
		AmountLiquidated: size.actualDebt,
		CollateralSeized: size.collateralSeize,
		FeeCollateral:    size.feeCollateral,
		AccruedInterest:  size.accruedInterest,
	}, nil
}

// findActiveReserve treats a reserve we do not track as inactive; store
// failures other than not-found surface raw
func (s *liquidationService) findActiveReserve(ctx context.Context, assetID string) (*core.Reserve, error) {
	reserve, err := s.reserveStore.Find(ctx, assetID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrReserveInactive
		}
		return nil, err
	}

	if !reserve.IsActive {
		return nil, core.ErrReserveInactive
	}

	return reserve, nil
}

func (s *liquidationService) size(
	ctx context.Context,
	req *core.LiquidationRequest,
	collateralReserve, debtReserve *core.Reserve,
	userCollateral, userDebt *core.UserReserve,
) (*sizing, error) {
	now := time.Now()

	stableDebt := lendpool.StableDebt(userDebt, now)
	variableDebt := lendpool.VariableDebt(userDebt, debtReserve)
	currentDebt := stableDebt.Add(variableDebt)
	if !currentDebt.IsPositive() {
		return nil, core.ErrUserDidNotBorrowSpecifiedAsset
	}

	if !userCollateral.UsedAsCollateral || !userCollateral.CollateralBalance.IsPositive() {
		return nil, core.ErrInvalidCollateralToLiquidate
	}

	collateralPrice, err := s.priceService.GetPrice(ctx, req.CollateralAssetID)
	if err != nil {
		return nil, core.ErrOracleUnavailable
	}

	debtPrice := collateralPrice
	if req.DebtAssetID != req.CollateralAssetID {
		debtPrice, err = s.priceService.GetPrice(ctx, req.DebtAssetID)
		if err != nil {
			return nil, core.ErrOracleUnavailable
		}
	}

	actualDebt := decimal.Min(req.Amount, lendpool.MaxLiquidatableDebt(currentDebt))

	seize, err := lendpool.CollateralToSeize(debtPrice, collateralPrice, actualDebt, collateralReserve.LiquidationBonus, collateralReserve.Decimals)
	if err != nil {
		return nil, err
	}

	// clamp to the borrower's collateral and shrink the repaid debt through the
	// inverse formula so the bonus ratio is preserved
	if seize.GreaterThan(userCollateral.CollateralBalance) {
		seize = userCollateral.CollateralBalance
		actualDebt, err = lendpool.DebtFromCollateral(seize, debtPrice, collateralPrice, collateralReserve.LiquidationBonus, debtReserve.Decimals)
		if err != nil {
			return nil, err
		}
	}

	feeCollateral := decimal.Zero
	feeSettled := userDebt.OriginationFee
	if userDebt.OriginationFee.IsPositive() {
		feeCollateral, err = lendpool.FeeCollateral(debtPrice, collateralPrice, userDebt.OriginationFee, collateralReserve.LiquidationBonus, collateralReserve.Decimals)
		if err != nil {
			return nil, err
		}

		// the fee never takes more collateral than the seizure left behind
		if remainder := userCollateral.CollateralBalance.Sub(seize); feeCollateral.GreaterThan(remainder) {
			feeCollateral = remainder
		}
	}

	// variable debt settles first, stable absorbs the remainder
	variableRepay := decimal.Min(actualDebt, variableDebt)
	stableRepay := actualDebt.Sub(variableRepay)
	if stableRepay.GreaterThan(stableDebt) {
		stableRepay = stableDebt
	}

	return &sizing{
		now:             now,
		stableRepay:     stableRepay,
		variableRepay:   variableRepay,
		actualDebt:      variableRepay.Add(stableRepay),
		collateralSeize: seize,
		feeSettled:      feeSettled,
		feeCollateral:   feeCollateral,
		accruedInterest: lendpool.AccruedInterest(userDebt, debtReserve, now),
	}, nil
}

func (s *liquidationService) apply(
	ctx context.Context,
	tx *db.DB,
	req *core.LiquidationRequest,
	collateralReserve, debtReserve *core.Reserve,
	userCollateral, userDebt *core.UserReserve,
	size *sizing,
) error {
	sameAsset := req.CollateralAssetID == req.DebtAssetID

	// borrower debt position: fee first, then principal
	userDebt.OriginationFee = decimal.Zero
	userDebt.PrincipalVariableDebt = positive(lendpool.VariableDebt(userDebt, debtReserve).Sub(size.variableRepay))
	userDebt.VariableBorrowIndex = debtReserve.VariableBorrowIndex
	userDebt.PrincipalStableDebt = positive(lendpool.StableDebt(userDebt, size.now).Sub(size.stableRepay))
	userDebt.StableRateUpdatedAt = size.now
	if !userDebt.PrincipalStableDebt.IsPositive() {
		userDebt.StableBorrowRate = decimal.Zero
	}

	// borrower collateral position
	userCollateral.CollateralBalance = positive(userCollateral.CollateralBalance.Sub(size.collateralSeize.Add(size.feeCollateral)))

	if err := s.userReserveStore.Update(ctx, tx, userDebt); err != nil {
		return err
	}
	if !sameAsset {
		if err := s.userReserveStore.Update(ctx, tx, userCollateral); err != nil {
			return err
		}
	}

	// debt reserve receives the liquidator's repayment
	debtReserve.AvailableLiquidity = debtReserve.AvailableLiquidity.Add(size.actualDebt)
	debtReserve.TotalBorrowsVariable = positive(debtReserve.TotalBorrowsVariable.Sub(size.variableRepay))
	debtReserve.TotalBorrowsStable = positive(debtReserve.TotalBorrowsStable.Sub(size.stableRepay))
	debtReserve.LastUpdatedAt = size.now

	// collateral reserve loses every underlying unit that leaves the pool
	withdrawal := size.feeCollateral
	if !req.ReceiveReceiptToken {
		withdrawal = withdrawal.Add(size.collateralSeize)
	}
	collateralReserve.AvailableLiquidity = collateralReserve.AvailableLiquidity.Sub(withdrawal)
	collateralReserve.LastUpdatedAt = size.now

	if err := s.reserveStore.Update(ctx, tx, debtReserve); err != nil {
		return err
	}
	if !sameAsset {
		if err := s.reserveStore.Update(ctx, tx, collateralReserve); err != nil {
			return err
		}
	}

	if err := s.queueTransfers(ctx, tx, req, collateralReserve, size); err != nil {
		return err
	}

	return s.writeEvents(ctx, tx, req, userDebt, size)
}

func (s *liquidationService) queueTransfers(ctx context.Context, tx *db.DB, req *core.LiquidationRequest, collateralReserve *core.Reserve, size *sizing) error {
	seizedAsset := collateralReserve.AssetID
	if req.ReceiveReceiptToken {
		seizedAsset = collateralReserve.ReceiptAssetID
	}

	trace := id.TraceIDFrom(fmt.Sprintf("liquidation-%s-%s-%s-%d", req.UserID, req.DebtAssetID, req.CollateralAssetID, size.now.UnixNano()))
	if err := s.transferStore.Create(ctx, tx, &core.Transfer{
		TraceID:    trace,
		OpponentID: req.LiquidatorID,
		AssetID:    seizedAsset,
		Amount:     size.collateralSeize,
		Source:     core.TransferSourceLiquidationSeized,
	}); err != nil {
		return err
	}

	if !size.feeCollateral.IsPositive() {
		return nil
	}

	// fee collateral always leaves as underlying, whatever the liquidator chose
	return s.transferStore.Create(ctx, tx, &core.Transfer{
		TraceID:    id.TraceIDFrom(fmt.Sprintf("liquidation-fee-%s", trace)),
		OpponentID: s.feeCollectorID,
		AssetID:    collateralReserve.AssetID,
		Amount:     size.feeCollateral,
		Source:     core.TransferSourceLiquidationFee,
	})
}

func (s *liquidationService) writeEvents(ctx context.Context, tx *db.DB, req *core.LiquidationRequest, userDebt *core.UserReserve, size *sizing) error {
	event := &core.LiquidationEvent{
		CollateralAssetID:   req.CollateralAssetID,
		DebtAssetID:         req.DebtAssetID,
		UserID:              req.UserID,
		LiquidatorID:        req.LiquidatorID,
		AmountLiquidated:    size.actualDebt,
		CollateralSeized:    size.collateralSeize,
		AccruedInterest:     size.accruedInterest,
		ReceiveReceiptToken: req.ReceiveReceiptToken,
		CreatedAt:           size.now,
	}
	if err := event.SetExtraData(map[string]interface{}{
		"new_principal_stable_debt":   userDebt.PrincipalStableDebt,
		"new_principal_variable_debt": userDebt.PrincipalVariableDebt,
		"stable_repay":                size.stableRepay,
		"variable_repay":              size.variableRepay,
	}); err != nil {
		return err
	}
	if err := s.eventStore.Create(ctx, tx, event); err != nil {
		return err
	}

	if !size.feeSettled.IsPositive() {
		return nil
	}

	return s.eventStore.CreateFee(ctx, tx, &core.FeeLiquidationEvent{
		CollateralAssetID: req.CollateralAssetID,
		DebtAssetID:       req.DebtAssetID,
		UserID:            req.UserID,
		FeeAmount:         size.feeSettled, // settled in full
		FeeCollateral:     size.feeCollateral,
		CreatedAt:         size.now,
	})
}

func (s *liquidationService) transact(fn func(tx *db.DB) error) error {
	if s.db == nil {
		return fn(nil)
	}

	return s.db.Tx(fn)
}

func positive(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}

	return d
}
