package cmd

import (
	"time"

	"lendpool/core"
	"lendpool/pkg/number"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

var reserveCmd = &cobra.Command{
	Use:   "reserve",
	Short: "manage reserves",
}

var reserveAddCmd = &cobra.Command{
	Use:   "add",
	Short: "add a reserve",
	Run: func(cmd *cobra.Command, args []string) {
		database := provideDatabase()
		defer database.Close()

		flags := cmd.Flags()
		assetID, _ := flags.GetString("asset")
		symbol, _ := flags.GetString("symbol")
		receiptAssetID, _ := flags.GetString("receipt-asset")
		decimals, _ := flags.GetString("decimals")
		ltv, _ := flags.GetString("ltv")
		threshold, _ := flags.GetString("threshold")
		bonus, _ := flags.GetString("bonus")

		reserve := &core.Reserve{
			AssetID:              assetID,
			Symbol:               symbol,
			ReceiptAssetID:       receiptAssetID,
			Decimals:             cast.ToInt32(decimals),
			LoanToValue:          number.Decimal(ltv),
			LiquidationThreshold: number.Decimal(threshold),
			LiquidationBonus:     number.Decimal(bonus),
			LiquidityIndex:       decimal.New(1, 0),
			VariableBorrowIndex:  decimal.New(1, 0),
			IsActive:             true,
			BorrowingEnabled:     true,
			LastUpdatedAt:        time.Now(),
		}

		reserveStore := provideReserveStore(database)
		if err := reserveStore.Save(cmd.Context(), nil, reserve); err != nil {
			cmd.PrintErrln("save reserve error:", err)
			return
		}

		cmd.Println("reserve created:", reserve.Symbol)
	},
}

var reserveListCmd = &cobra.Command{
	Use:   "list",
	Short: "list reserves",
	Run: func(cmd *cobra.Command, args []string) {
		database := provideDatabase()
		defer database.Close()

		reserves, err := provideReserveStore(database).All(cmd.Context())
		if err != nil {
			cmd.PrintErrln("list reserves error:", err)
			return
		}

		for _, r := range reserves {
			cmd.Printf("%s\t%s\tactive=%v\tliquidity=%s\n", r.Symbol, r.AssetID, r.IsActive, r.AvailableLiquidity)
		}
	},
}

func init() {
	rootCmd.AddCommand(reserveCmd)
	reserveCmd.AddCommand(reserveAddCmd, reserveListCmd)

	flags := reserveAddCmd.Flags()
	flags.String("asset", "", "underlying asset id")
	flags.String("symbol", "", "asset symbol")
	flags.String("receipt-asset", "", "interest-bearing receipt token asset id")
	flags.String("decimals", "8", "asset decimals")
	flags.String("ltv", "0.75", "loan to value")
	flags.String("threshold", "0.85", "liquidation threshold")
	flags.String("bonus", "1.05", "liquidation bonus")
}
