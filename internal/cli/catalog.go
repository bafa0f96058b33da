package cli

import (
	"strconv"

	"cargo_dev_v1_202609/internal/api/dto"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(customerCmd)
	rootCmd.AddCommand(productTypeCmd)
	rootCmd.AddCommand(warehouseCmd)
	rootCmd.AddCommand(portCmd)

	customerCmd.AddCommand(customerListCmd, customerCreateCmd, customerDeleteCmd)
	productTypeCmd.AddCommand(productTypeListCmd, productTypeCreateCmd, productTypeDeleteCmd)
	warehouseCmd.AddCommand(warehouseListCmd, warehouseCreateCmd, warehouseDeleteCmd)
	portCmd.AddCommand(portListCmd, portCreateCmd, portDeleteCmd)

	for _, c := range []*cobra.Command{customerListCmd, productTypeListCmd, warehouseListCmd, portListCmd} {
		c.Flags().IntVar(&catPage, "page", 1, "页码")
		c.Flags().IntVar(&catPageSize, "page-size", 20, "每页条数 (1-100)")
		c.Flags().StringVar(&catQ, "q", "", "自由文本过滤")
	}
	customerListCmd.Flags().StringVar(&catEmail, "email", "", "按邮箱精确过滤")

	customerCreateCmd.Flags().StringVar(&catName, "name", "", "名称")
	customerCreateCmd.Flags().StringVar(&catEmail, "email", "", "邮箱")
	customerCreateCmd.Flags().StringVar(&catPhone, "phone", "", "电话")
	customerCreateCmd.Flags().StringVar(&catDocument, "document", "", "证件号")
	customerCreateCmd.MarkFlagRequired("name")

	productTypeCreateCmd.Flags().StringVar(&catName, "name", "", "名称")
	productTypeCreateCmd.Flags().StringVar(&catDescription, "description", "", "描述")
	productTypeCreateCmd.MarkFlagRequired("name")

	warehouseCreateCmd.Flags().StringVar(&catName, "name", "", "名称")
	warehouseCreateCmd.Flags().StringVar(&catAddress, "address", "", "地址")
	warehouseCreateCmd.Flags().StringVar(&catCity, "city", "", "城市")
	warehouseCreateCmd.Flags().StringVar(&catCountry, "country", "", "国家")
	warehouseCreateCmd.MarkFlagRequired("name")

	portCreateCmd.Flags().StringVar(&catName, "name", "", "名称")
	portCreateCmd.Flags().StringVar(&catCity, "city", "", "城市")
	portCreateCmd.Flags().StringVar(&catCountry, "country", "", "国家")
	portCreateCmd.MarkFlagRequired("name")
}

var (
	catPage        int
	catPageSize    int
	catQ           string
	catName        string
	catEmail       string
	catPhone       string
	catDocument    string
	catDescription string
	catAddress     string
	catCity        string
	catCountry     string
)

// catListQuery 列表命令共享的查询
func catListQuery() dto.ListQuery {
	return dto.ListQuery{Page: catPage, PageSize: catPageSize, Q: catQ}
}

// parseIDArg 位置参数里的 id
func parseIDArg(args []string) (int64, error) {
	return strconv.ParseInt(args[0], 10, 64)
}

// ==================== 客户 ====================

var customerCmd = &cobra.Command{Use: "customer", Short: "客户目录"}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "客户列表",
	RunE: func(cmd *cobra.Command, args []string) error {
		return gated("customer.list", func() error {
			resp, err := app.Catalog.ListCustomers(cmd.Context(), dto.CustomerListQuery{
				ListQuery: catListQuery(),
				Email:     catEmail,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		})
	},
}

var customerCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "创建客户",
	RunE: func(cmd *cobra.Command, args []string) error {
		return gated("customer.create", func() error {
			resp, err := app.Catalog.CreateCustomer(cmd.Context(), dto.CreateCustomerRequest{
				Name:       catName,
				Email:      catEmail,
				Phone:      catPhone,
				DocumentID: catDocument,
			})
			if err != nil {
				return err
			}
			app.Prefetch.InvalidateCatalogs()
			return printJSON(cmd, resp)
		})
	},
}

var customerDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "删除客户 (需要 admin 角色)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args)
		if err != nil {
			return err
		}
		return gated("customer.delete", func() error {
			resp, err := app.Catalog.DeleteCustomer(cmd.Context(), id)
			if err != nil {
				return err
			}
			app.Prefetch.InvalidateCatalogs()
			return printJSON(cmd, resp)
		})
	},
}

// ==================== 产品类型 ====================

var productTypeCmd = &cobra.Command{Use: "product-type", Short: "产品类型目录"}

var productTypeListCmd = &cobra.Command{
	Use:   "list",
	Short: "产品类型列表",
	RunE: func(cmd *cobra.Command, args []string) error {
		return gated("product-type.list", func() error {
			resp, err := app.Catalog.ListProductTypes(cmd.Context(), catListQuery())
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		})
	},
}

var productTypeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "创建产品类型 (需要 admin 角色)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return gated("product-type.create", func() error {
			resp, err := app.Catalog.CreateProductType(cmd.Context(), dto.CreateProductTypeRequest{
				Name:        catName,
				Description: catDescription,
			})
			if err != nil {
				return err
			}
			app.Prefetch.InvalidateCatalogs()
			return printJSON(cmd, resp)
		})
	},
}

var productTypeDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "删除产品类型 (需要 admin 角色)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args)
		if err != nil {
			return err
		}
		return gated("product-type.delete", func() error {
			resp, err := app.Catalog.DeleteProductType(cmd.Context(), id)
			if err != nil {
				return err
			}
			app.Prefetch.InvalidateCatalogs()
			return printJSON(cmd, resp)
		})
	},
}

// ==================== 仓库 ====================

var warehouseCmd = &cobra.Command{Use: "warehouse", Short: "仓库目录 (陆运)"}

var warehouseListCmd = &cobra.Command{
	Use:   "list",
	Short: "仓库列表",
	RunE: func(cmd *cobra.Command, args []string) error {
		return gated("warehouse.list", func() error {
			resp, err := app.Catalog.ListWarehouses(cmd.Context(), catListQuery())
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		})
	},
}

var warehouseCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "创建仓库 (需要 admin 角色)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return gated("warehouse.create", func() error {
			resp, err := app.Catalog.CreateWarehouse(cmd.Context(), dto.CreateWarehouseRequest{
				Name:    catName,
				Address: catAddress,
				City:    catCity,
				Country: catCountry,
			})
			if err != nil {
				return err
			}
			app.Prefetch.InvalidateCatalogs()
			return printJSON(cmd, resp)
		})
	},
}

var warehouseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "删除仓库 (需要 admin 角色)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args)
		if err != nil {
			return err
		}
		return gated("warehouse.delete", func() error {
			resp, err := app.Catalog.DeleteWarehouse(cmd.Context(), id)
			if err != nil {
				return err
			}
			app.Prefetch.InvalidateCatalogs()
			return printJSON(cmd, resp)
		})
	},
}

// ==================== 港口 ====================

var portCmd = &cobra.Command{Use: "port", Short: "港口目录 (海运)"}

var portListCmd = &cobra.Command{
	Use:   "list",
	Short: "港口列表",
	RunE: func(cmd *cobra.Command, args []string) error {
		return gated("port.list", func() error {
			resp, err := app.Catalog.ListPorts(cmd.Context(), catListQuery())
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		})
	},
}

var portCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "创建港口",
	RunE: func(cmd *cobra.Command, args []string) error {
		return gated("port.create", func() error {
			resp, err := app.Catalog.CreatePort(cmd.Context(), dto.CreatePortRequest{
				Name:    catName,
				City:    catCity,
				Country: catCountry,
			})
			if err != nil {
				return err
			}
			app.Prefetch.InvalidateCatalogs()
			return printJSON(cmd, resp)
		})
	},
}

var portDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "删除港口",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args)
		if err != nil {
			return err
		}
		return gated("port.delete", func() error {
			resp, err := app.Catalog.DeletePort(cmd.Context(), id)
			if err != nil {
				return err
			}
			app.Prefetch.InvalidateCatalogs()
			return printJSON(cmd, resp)
		})
	},
}
