package cmd

import (
	"time"

	"lendpool/core"
	accountservice "lendpool/service/account"
	liquidationservice "lendpool/service/liquidation"
	oracleservice "lendpool/service/oracle"
	walletservice "lendpool/service/wallet"
	liquidationstore "lendpool/store/liquidation"
	"lendpool/store/reserve"
	"lendpool/store/transfer"
	"lendpool/store/userreserve"

	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideConfig() *core.Config {
	return &cfg
}

func providePropertyStore(db *db.DB) property.Store {
	return propertystore.New(db)
}

func provideReserveStore(db *db.DB) core.IReserveStore {
	return reserve.New(db)
}

func provideUserReserveStore(db *db.DB) core.IUserReserveStore {
	return userreserve.New(db)
}

func provideTransferStore(db *db.DB) core.ITransferStore {
	return transfer.New(db)
}

func provideLiquidationEventStore(db *db.DB) core.ILiquidationEventStore {
	return liquidationstore.New(db)
}

func providePriceOracleService() core.IPriceOracleService {
	return oracleservice.New(oracleservice.Config{
		EndPoint: cfg.Oracle.EndPoint,
		Expiry:   10 * time.Second,
	})
}

func provideWalletService() core.IWalletService {
	return walletservice.New(walletservice.Config{
		EndPoint: cfg.Settlement.EndPoint,
	})
}

func provideAccountService(
	reserveStore core.IReserveStore,
	userReserveStore core.IUserReserveStore,
	priceService core.IPriceOracleService,
) core.IAccountService {
	return accountservice.New(reserveStore, userReserveStore, priceService)
}

func provideLiquidationService(
	database *db.DB,
	reserveStore core.IReserveStore,
	userReserveStore core.IUserReserveStore,
	transferStore core.ITransferStore,
	eventStore core.ILiquidationEventStore,
	priceService core.IPriceOracleService,
	accountService core.IAccountService,
) core.ILiquidationService {
	return liquidationservice.New(
		database,
		reserveStore,
		userReserveStore,
		transferStore,
		eventStore,
		priceService,
		accountService,
		cfg.App.FeeCollectorID,
	)
}
