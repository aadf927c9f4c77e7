package main

import (
	"log"

	"github.com/folio/internal/config"
	"github.com/folio/internal/db"
	"github.com/folio/internal/handler"
	"github.com/folio/internal/router"
	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 初始化页面存储
	backend, err := openBackend(cfg)
	if err != nil {
		log.Fatalf("failed to open page store: %v", err)
	}

	gate, err := handler.NewAdminGate(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("failed to prepare admin gate: %v", err)
	}

	api := handler.NewAPI(service.NewPageService(backend), gate, cfg.SiteName)

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(api, cfg.SessionSecret)
	log.Printf("listening on %s (store=%s)", cfg.ListenAddr, cfg.StoreDriver)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

func openBackend(cfg config.AppConfig) (db.Backend, error) {
	if cfg.StoreDriver == config.StoreDriverSQLite {
		gdb, err := db.Open(cfg.DatabasePath, nil)
		if err != nil {
			return nil, err
		}
		return db.NewSQLiteBackend(gdb), nil
	}
	return db.OpenFile(cfg.PagesFile)
}
