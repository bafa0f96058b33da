package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cargo_dev_v1_202609/internal/config"
	"cargo_dev_v1_202609/internal/repository"
	"cargo_dev_v1_202609/internal/service"
	pkgnet "cargo_dev_v1_202609/pkg/net"
	"cargo_dev_v1_202609/pkg/utils"

	"github.com/spf13/cobra"
)

// ==================== 应用容器 ====================

// App 依赖容器，所有命令共享
type App struct {
	Auth     *service.AuthService
	Catalog  *service.CatalogService
	Shipment *service.ShipmentService
	Quote    *service.QuoteService
	Prefetch *service.PrefetchService
	Session  *service.SessionService
	Gate     *pkgnet.ActionGate
}

var app *App

var rootCmd = &cobra.Command{
	Use:   "cargoctl",
	Short: "物流管理 API 客户端",
	Long: `cargoctl 是物流管理 API 的命令行客户端。

支持登录认证、目录维护 (客户/产品类型/仓库/港口)、
运单 CRUD 以及陆运/海运的运费报价。`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		app = a
		return nil
	},
}

// Execute 运行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

// buildApp 装配依赖
func buildApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}

	if dir := filepath.Dir(cfg.State.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("创建状态目录失败: %w", err)
		}
	}

	db, err := repository.OpenStateDB(cfg.State.DBPath)
	if err != nil {
		return nil, fmt.Errorf("打开本地状态库失败: %w", err)
	}

	api := service.NewAPIClient(service.APIClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Debug:   cfg.API.Debug,
	})

	session := service.NewSessionService(repository.NewSessionRepository(db))
	catalog := service.NewCatalogService(api, session)

	return &App{
		Auth:     service.NewAuthService(api, session),
		Catalog:  catalog,
		Shipment: service.NewShipmentService(api, session),
		Quote:    service.NewQuoteService(api, session),
		Prefetch: service.NewPrefetchService(catalog, utils.NewTTLCache(0)),
		Session:  session,
		Gate:     pkgnet.NewActionGate(),
	}, nil
}

// gated 执行一个受闸门保护的动作
// 同名动作重复触发直接拒绝；无论成败槽位都会释放
func gated(key string, fn func() error) error {
	return app.Gate.Run(key, fn)
}

// printJSON 统一的结果输出
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(out))
	return nil
}
