package cli

import (
	"strconv"

	"cargo_dev_v1_202609/internal/api/dto"
	"cargo_dev_v1_202609/internal/model"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(shipmentCmd)
	shipmentCmd.AddCommand(shipmentListCmd)
	shipmentCmd.AddCommand(shipmentGetCmd)
	shipmentCmd.AddCommand(shipmentCreateCmd)
	shipmentCmd.AddCommand(shipmentUpdateCmd)
	shipmentCmd.AddCommand(shipmentDeleteCmd)
	shipmentCmd.AddCommand(shipmentPrefetchCmd)

	shipmentListCmd.Flags().IntVar(&listPage, "page", 1, "页码")
	shipmentListCmd.Flags().IntVar(&listPageSize, "page-size", 20, "每页条数 (1-100)")
	shipmentListCmd.Flags().StringVar(&listQ, "q", "", "按运单号过滤")
	shipmentListCmd.Flags().StringVar(&shipMode, "mode", "", "运输方式 LAND|SEA")
	shipmentListCmd.Flags().Int64Var(&shipCustomerID, "customer", 0, "客户 id")
	shipmentListCmd.Flags().Int64Var(&shipProductTypeID, "product-type", 0, "产品类型 id")

	f := shipmentCreateCmd.Flags()
	f.StringVar(&shipCreateMode, "mode", "", "运输方式 LAND|SEA")
	f.StringVar(&shipCreateDraft.CustomerID, "customer", "", "客户 id")
	f.StringVar(&shipCreateDraft.ProductTypeID, "product-type", "", "产品类型 id")
	f.StringVar(&shipCreateDraft.Quantity, "quantity", "", "数量")
	f.StringVar(&shipCreateDraft.RegistrationDate, "registered", "", "登记日期 YYYY-MM-DD")
	f.StringVar(&shipCreateDraft.DeliveryDate, "delivery", "", "交付日期 YYYY-MM-DD")
	f.StringVar(&shipCreateDraft.BasePrice, "base-price", "", "基础价 (十进制字符串)")
	f.StringVar(&shipCreateDraft.Discount, "discount", "0", "折扣 (十进制字符串)")
	f.StringVar(&shipCreateDraft.TrackingNumber, "tracking", "", "运单号")
	f.StringVar(&shipCreateDraft.WarehouseID, "warehouse", "", "仓库 id (陆运)")
	f.StringVar(&shipCreateDraft.VehiclePlate, "plate", "", "车牌 (陆运)")
	f.StringVar(&shipCreateDraft.PortID, "port", "", "港口 id (海运)")
	f.StringVar(&shipCreateDraft.FleetNumber, "fleet", "", "船队编号 (海运)")

	u := shipmentUpdateCmd.Flags()
	u.StringVar(&shipUpdateDraft.Quantity, "quantity", "", "数量")
	u.StringVar(&shipUpdateDraft.RegistrationDate, "registered", "", "登记日期 YYYY-MM-DD")
	u.StringVar(&shipUpdateDraft.DeliveryDate, "delivery", "", "交付日期 YYYY-MM-DD")
	u.StringVar(&shipUpdateDraft.BasePrice, "base-price", "", "基础价 (十进制字符串)")
	u.StringVar(&shipUpdateDraft.Discount, "discount", "", "折扣 (十进制字符串)")
	u.StringVar(&shipUpdateDraft.TrackingNumber, "tracking", "", "运单号")
}

var (
	listPage          int
	listPageSize      int
	listQ             string
	shipMode          string
	shipCustomerID    int64
	shipProductTypeID int64

	// 表单输入都按字符串收，由验证器做类型转换
	shipCreateDraft dto.ShipmentDraft
	shipCreateMode  string
	shipUpdateDraft dto.ShipmentUpdateDraft
)

var shipmentCmd = &cobra.Command{
	Use:   "shipment",
	Short: "运单管理",
}

var shipmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "运单列表",
	RunE: func(cmd *cobra.Command, args []string) error {
		return gated("shipment.list", func() error {
			query := dto.ShipmentListQuery{
				ListQuery: dto.ListQuery{Page: listPage, PageSize: listPageSize, Q: listQ},
				Mode:      model.Mode(shipMode),
			}
			if shipCustomerID > 0 {
				query.CustomerID = &shipCustomerID
			}
			if shipProductTypeID > 0 {
				query.ProductTypeID = &shipProductTypeID
			}

			resp, err := app.Shipment.ListShipments(cmd.Context(), query)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		})
	},
}

var shipmentGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "运单详情",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		return gated("shipment.get", func() error {
			resp, err := app.Shipment.GetShipment(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		})
	},
}

var shipmentCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "创建运单 (本地校验后提交)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return gated("shipment.create", func() error {
			draft := shipCreateDraft
			draft.Mode = model.Mode(shipCreateMode)

			resp, err := app.Shipment.CreateShipment(cmd.Context(), &draft)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		})
	},
}

var shipmentUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "更新运单 (PATCH，未提供的字段不变)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		return gated("shipment.update", func() error {
			resp, err := app.Shipment.UpdateShipment(cmd.Context(), id, &shipUpdateDraft)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		})
	},
}

var shipmentDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "删除运单 (需要 admin 角色)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		return gated("shipment.delete", func() error {
			resp, err := app.Shipment.DeleteShipment(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		})
	},
}

var shipmentPrefetchCmd = &cobra.Command{
	Use:   "prefetch",
	Short: "预取创建表单的四份目录",
	RunE: func(cmd *cobra.Command, args []string) error {
		return gated("shipment.prefetch", func() error {
			catalogs, err := app.Prefetch.QuoteFormCatalogs(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, catalogs)
		})
	},
}
