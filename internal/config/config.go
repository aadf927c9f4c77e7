package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	// StoreDriverFile 使用单个 JSON 文件保存页面集合。
	StoreDriverFile = "file"
	// StoreDriverSQLite 使用 SQLite 的 pages 表保存页面集合。
	StoreDriverSQLite = "sqlite"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr    string
	Port          string
	StoreDriver   string
	PagesFile     string
	DatabasePath  string
	SessionSecret string
	GinMode       string
	AdminPassword string
	SiteName      string
}

// Load 从环境变量读取应用配置，并为缺失项提供默认值。
// 未知的 STORE_DRIVER 直接报错，避免页面被写入错误的存储。
func Load() (AppConfig, error) {
	port := env("PORT", "8080")

	storeDriver := strings.ToLower(env("STORE_DRIVER", StoreDriverFile))
	switch storeDriver {
	case StoreDriverFile, StoreDriverSQLite:
	default:
		return AppConfig{}, fmt.Errorf("unknown STORE_DRIVER %q (want %q or %q)", storeDriver, StoreDriverFile, StoreDriverSQLite)
	}

	return AppConfig{
		ListenAddr:    env("LISTEN_ADDR", fmt.Sprintf(":%s", port)),
		Port:          port,
		StoreDriver:   storeDriver,
		PagesFile:     env("PAGES_FILE", "data/pages.json"),
		DatabasePath:  env("DATABASE_PATH", "data/folio.db"),
		SessionSecret: env("SESSION_SECRET", "folio-dev-secret"),
		GinMode:       env("GIN_MODE", "release"),
		AdminPassword: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),
		SiteName:      env("SITE_NAME", "Folio"),
	}, nil
}

func env(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
