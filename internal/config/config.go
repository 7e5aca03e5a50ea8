package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-mem-bank/pkg/logger"
)

// DefaultPath 預設設定檔位置
const DefaultPath = "config/config.yaml"

// Config 服務設定
type Config struct {
	HTTP            HTTPConfig    `yaml:"http"`
	GRPC            GRPCConfig    `yaml:"grpc"`
	Log             logger.Config `yaml:"log"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// HTTPConfig REST 服務設定
type HTTPConfig struct {
	Address string `yaml:"address"`
}

// GRPCConfig gRPC 服務設定
type GRPCConfig struct {
	Address string `yaml:"address"`
}

// Default 回傳預設設定
func Default() Config {
	return Config{
		HTTP:            HTTPConfig{Address: ":8080"},
		GRPC:            GRPCConfig{Address: ":50051"},
		Log:             logger.Config{Environment: logger.EnvironmentProduction},
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load 讀取 YAML 設定檔並補上預設值
//
// 參數:
//
//	path: 設定檔路徑，空字串代表 DefaultPath
//
// 回傳:
//
//	Config: 設定
//	error: 讀檔或解析錯誤 (DefaultPath 不存在時直接使用預設值)
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	// 補全預設配置 (如果 yaml 沒寫)
	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	if cfg.GRPC.Address == "" {
		cfg.GRPC.Address = ":50051"
	}
	if cfg.Log.Environment == "" {
		cfg.Log.Environment = logger.EnvironmentProduction
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	return cfg, nil
}
