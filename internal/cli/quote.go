package cli

import (
	"fmt"

	"cargo_dev_v1_202609/internal/api/dto"
	"cargo_dev_v1_202609/internal/model"
	"cargo_dev_v1_202609/internal/service"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(quoteCmd)
	quoteCmd.AddCommand(quoteLandCmd)
	quoteCmd.AddCommand(quoteSeaCmd)
	quoteCmd.AddCommand(quotePreviewCmd)

	quoteLandCmd.Flags().StringVar(&quoteTracking, "tracking", "", "运单号")
	quoteLandCmd.Flags().Int64Var(&quoteCustomerID, "customer", 0, "客户 id")
	quoteLandCmd.Flags().StringVar(&quotePlate, "plate", "", "车牌")
	quoteLandCmd.Flags().StringVar(&quoteFleetCode, "fleet-code", "", "车队代码")
	quoteLandCmd.Flags().IntVar(&quoteQuantity, "quantity", 0, "数量")

	quoteSeaCmd.Flags().StringVar(&quoteTracking, "tracking", "", "运单号")
	quoteSeaCmd.Flags().Int64Var(&quoteCustomerID, "customer", 0, "客户 id")
	quoteSeaCmd.Flags().Int64Var(&quoteOriginPort, "origin-port", 0, "起运港 id")
	quoteSeaCmd.Flags().Int64Var(&quoteDestPort, "dest-port", 0, "目的港 id")
	quoteSeaCmd.Flags().IntVar(&quoteQuantity, "quantity", 0, "数量")

	quotePreviewCmd.Flags().StringVar(&quoteMode, "mode", "", "运输方式 LAND|SEA")
	quotePreviewCmd.Flags().IntVar(&quoteQuantity, "quantity", 0, "数量")
	quotePreviewCmd.Flags().StringVar(&quoteBasePrice, "base-price", "", "基础价 (十进制字符串)")
}

var (
	quoteTracking   string
	quoteCustomerID int64
	quotePlate      string
	quoteFleetCode  string
	quoteOriginPort int64
	quoteDestPort   int64
	quoteQuantity   int
	quoteMode       string
	quoteBasePrice  string
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "运费报价",
}

var quoteLandCmd = &cobra.Command{
	Use:   "land",
	Short: "陆运报价",
	RunE: func(cmd *cobra.Command, args []string) error {
		return gated("quote.land", func() error {
			result, err := app.Quote.QuoteLand(cmd.Context(), &dto.LandQuoteRequest{
				TrackingNumber: quoteTracking,
				CustomerID:     quoteCustomerID,
				VehiclePlate:   quotePlate,
				FleetCode:      quoteFleetCode,
				Quantity:       quoteQuantity,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		})
	},
}

var quoteSeaCmd = &cobra.Command{
	Use:   "sea",
	Short: "海运报价",
	RunE: func(cmd *cobra.Command, args []string) error {
		return gated("quote.sea", func() error {
			result, err := app.Quote.QuoteSea(cmd.Context(), &dto.SeaQuoteRequest{
				TrackingNumber:    quoteTracking,
				CustomerID:        quoteCustomerID,
				OriginPortID:      quoteOriginPort,
				DestinationPortID: quoteDestPort,
				Quantity:          quoteQuantity,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		})
	},
}

var quotePreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "本地折扣预览 (不发网络请求)",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := model.Mode(quoteMode)
		if !mode.Valid() {
			return fmt.Errorf("无效的运输方式: %q", quoteMode)
		}

		basePrice, err := decimal.NewFromString(quoteBasePrice)
		if err != nil {
			return fmt.Errorf("base-price 必须是十进制数: %q", quoteBasePrice)
		}

		discount := service.PreviewDiscount(mode, quoteQuantity, basePrice)

		return printJSON(cmd, map[string]string{
			"mode":        string(mode),
			"base_price":  basePrice.String(),
			"discount":    discount.String(),
			"final_price": basePrice.Sub(discount).String(),
		})
	},
}
