package db

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupModelTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:models-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&Site{}, &User{}, &Tag{}, &Entry{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	}
}

func TestTagSaveNormalizesNameAndSlug(t *testing.T) {
	gdb, cleanup := setupModelTestDB(t)
	defer cleanup()

	tag := Tag{Name: "   Foo Tag   "}
	if err := gdb.Create(&tag).Error; err != nil {
		t.Fatalf("failed to create tag: %v", err)
	}

	var reloaded Tag
	if err := gdb.First(&reloaded, tag.ID).Error; err != nil {
		t.Fatalf("failed to reload tag: %v", err)
	}

	if reloaded.Name != "foo tag" {
		t.Fatalf("expected name %q, got %q", "foo tag", reloaded.Name)
	}
	if reloaded.Slug != "foo-tag" {
		t.Fatalf("expected slug %q, got %q", "foo-tag", reloaded.Slug)
	}
}

func TestTagSaveIsIdempotentOnNormalization(t *testing.T) {
	gdb, cleanup := setupModelTestDB(t)
	defer cleanup()

	tag := Tag{Name: "  Foo  "}
	if err := gdb.Create(&tag).Error; err != nil {
		t.Fatalf("failed to create tag: %v", err)
	}
	if err := gdb.Save(&tag).Error; err != nil {
		t.Fatalf("failed to resave tag: %v", err)
	}

	var reloaded Tag
	if err := gdb.First(&reloaded, tag.ID).Error; err != nil {
		t.Fatalf("failed to reload tag: %v", err)
	}
	if reloaded.Name != "foo" || reloaded.Slug != "foo" {
		t.Fatalf("expected foo/foo, got %q/%q", reloaded.Name, reloaded.Slug)
	}
}

func TestTagSlugIsUnique(t *testing.T) {
	gdb, cleanup := setupModelTestDB(t)
	defer cleanup()

	if err := gdb.Create(&Tag{Name: "foo bar"}).Error; err != nil {
		t.Fatalf("failed to create first tag: %v", err)
	}

	// A differently spelled name normalizing to the same slug must hit
	// the unique index and surface as a translated duplicate-key error.
	err := gdb.Create(&Tag{Name: "foo-bar"}).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey, got %v", err)
	}
}

func TestTagAbsoluteURL(t *testing.T) {
	tag := Tag{Name: "test tag", Slug: "test-tag"}
	if got := tag.AbsoluteURL(); got != "/tags/test-tag" {
		t.Fatalf("expected /tags/test-tag, got %q", got)
	}
}
