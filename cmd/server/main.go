package main

import (
	"log"

	"github.com/blargg/internal/config"
	"github.com/blargg/internal/db"
	"github.com/blargg/internal/events"
	"github.com/blargg/internal/handler"
	"github.com/blargg/internal/router"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// 引导默认站点与作者账号
	if err := db.EnsureSite(cfg.SiteName, cfg.SiteDomain); err != nil {
		log.Fatalf("failed to ensure site: %v", err)
	}
	if err := db.EnsureUser(cfg.AuthorName, cfg.AuthorPassword); err != nil {
		log.Fatalf("failed to ensure author: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	bus := events.NewBus()
	bus.SubscribeEntryPublished(func(e events.EntryPublished) {
		log.Printf("entry published: id=%d slug=%s event=%s", e.Entry.ID, e.Entry.Slug, e.EventID)
	})

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(handler.NewAPI(db.DB, bus))
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
