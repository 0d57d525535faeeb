package cmd

import (
	"lendpool/pkg/sysversion"
	"lendpool/worker"
	"lendpool/worker/cashier"
	"lendpool/worker/liquidator"
	"lendpool/worker/priceoracle"

	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// localSysVersion ledger schema version this build understands
const localSysVersion = 1

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "run lendpool background workers",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		propertyStore := providePropertyStore(database)
		if err := sysversion.ValidateSysVersion(ctx, propertyStore, localSysVersion); err != nil {
			log.WithError(err).Fatalln("sysversion validate failed")
		}

		reserveStore := provideReserveStore(database)
		userReserveStore := provideUserReserveStore(database)
		transferStore := provideTransferStore(database)

		priceService := providePriceOracleService()
		walletService := provideWalletService()
		accountService := provideAccountService(reserveStore, userReserveStore, priceService)

		batch, _ := cmd.Flags().GetInt("cashier.batch")
		capacity, _ := cmd.Flags().GetInt64("cashier.capacity")

		workers := []worker.Worker{
			cashier.New(transferStore, walletService, cashier.Config{
				Batch:    batch,
				Capacity: capacity,
			}),
			priceoracle.New(reserveStore, priceService, propertyStore),
			liquidator.New(userReserveStore, accountService),
		}

		g, ctx := errgroup.WithContext(ctx)
		for _, w := range workers {
			w := w
			g.Go(func() error {
				return w.Run(ctx)
			})
		}

		if err := g.Wait(); err != nil {
			log.WithError(err).Errorln("workers aborted")
		}
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
	workerCmd.Flags().Int("cashier.batch", 100, "custom batch for worker cashier")
	workerCmd.Flags().Int64("cashier.capacity", 1, "custom capacity for worker cashier")
}
