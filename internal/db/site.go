package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Site 定义了站点模型，用于生成绝对链接
type Site struct {
	gorm.Model
	Name   string `gorm:"size:256;not null"`
	Domain string `gorm:"size:255;uniqueIndex;not null"`
}

// EnsureSite 存在性检查：若提供的域名非空且不存在对应站点，则创建一条记录。
func EnsureSite(name, domain string) error {
	trimmedName := strings.TrimSpace(name)
	trimmedDomain := strings.TrimSpace(domain)
	if trimmedDomain == "" {
		return nil
	}
	if trimmedName == "" {
		trimmedName = trimmedDomain
	}

	if DB == nil {
		return errors.New("database not initialized")
	}

	var existing Site
	if err := DB.Where("domain = ?", trimmedDomain).First(&existing).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return DB.Create(&Site{Name: trimmedName, Domain: trimmedDomain}).Error
	}

	return nil
}
