package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config 客户端配置
type Config struct {
	API   APIConfig   `mapstructure:"api"`
	State StateConfig `mapstructure:"state"`
}

// APIConfig 外部 API 配置
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"` // 含 /api/v1 前缀
	Timeout time.Duration `mapstructure:"timeout"`
	Debug   bool          `mapstructure:"debug"`
}

// StateConfig 本地状态库配置
type StateConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// LoadConfig 读取配置文件和环境变量
// 查找顺序：./config.yaml → $HOME/.cargoctl/config.yaml；
// 环境变量前缀 CARGOCTL_ 可覆盖任意键
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.cargoctl/")

	v.SetEnvPrefix("CARGOCTL")
	v.AutomaticEnv()

	v.SetDefault("api.base_url", "http://localhost:8000/api/v1")
	v.SetDefault("api.timeout", 20*time.Second)
	v.SetDefault("api.debug", false)
	v.SetDefault("state.db_path", defaultStateDBPath())

	// 配置文件可选，没有就全走默认值
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// defaultStateDBPath 默认状态库位置 ~/.cargoctl/state.db
func defaultStateDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "state.db"
	}
	return filepath.Join(home, ".cargoctl", "state.db")
}
