package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blargg/internal/db"
	"github.com/blargg/internal/events"
	"github.com/blargg/internal/handler"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouterTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&db.Site{}, &db.User{}, &db.Tag{}, &db.Entry{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return SetupRouter(handler.NewAPI(gdb, events.NewBus()))
}

func TestSetupRouterPing(t *testing.T) {
	r := setupRouterTest(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestSetupRouterEntryRoutesRegistered(t *testing.T) {
	r := setupRouterTest(t)

	// An empty database answers these with 404/200, never 405 or panic,
	// proving the dated and bare-slug routes coexist.
	paths := map[string]int{
		"/entries":                 http.StatusOK,
		"/entries/some-slug":       http.StatusNotFound,
		"/entries/2012/03/04/slug": http.StatusNotFound,
		"/tags":                    http.StatusOK,
		"/tags/missing":            http.StatusNotFound,
	}

	for path, want := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != want {
			t.Fatalf("expected %d for %s, got %d", want, path, w.Code)
		}
	}
}
