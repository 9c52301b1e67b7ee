package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr     string
	Port           string
	DatabasePath   string
	GinMode        string
	SiteName       string
	SiteDomain     string
	AuthorName     string
	AuthorPassword string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "blargg.db"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	siteName := strings.TrimSpace(os.Getenv("SITE_NAME"))
	if siteName == "" {
		siteName = "blargg"
	}

	siteDomain := strings.TrimSpace(os.Getenv("SITE_DOMAIN"))
	if siteDomain == "" {
		siteDomain = "localhost"
	}

	authorName := strings.TrimSpace(os.Getenv("AUTHOR_NAME"))
	authorPassword := strings.TrimSpace(os.Getenv("AUTHOR_PASSWORD"))

	return AppConfig{
		ListenAddr:     listenAddr,
		Port:           port,
		DatabasePath:   databasePath,
		GinMode:        ginMode,
		SiteName:       siteName,
		SiteDomain:     siteDomain,
		AuthorName:     authorName,
		AuthorPassword: authorPassword,
	}
}
