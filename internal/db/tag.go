package db

import (
	"strings"

	"github.com/blargg/internal/slug"
	"github.com/blargg/internal/urls"
	"gorm.io/gorm"
)

// Tag 定义了标签模型，slug 由 name 推导且全局唯一
type Tag struct {
	gorm.Model
	Name    string  `gorm:"size:256;not null"`
	Slug    string  `gorm:"size:256;uniqueIndex;not null"`
	Entries []Entry `gorm:"many2many:entry_tags;"`
}

// BeforeSave normalizes the name and rederives the slug, so the slug is
// always a deterministic function of the name no matter which path
// wrote the row.
func (t *Tag) BeforeSave(*gorm.DB) error {
	t.Name = strings.ToLower(strings.TrimSpace(t.Name))
	t.Slug = slug.Make(t.Name)
	return nil
}

// AbsoluteURL returns the path listing entries carrying this tag.
func (t *Tag) AbsoluteURL() string {
	return urls.MustReverse(urls.TaggedEntryList, t.Slug)
}
