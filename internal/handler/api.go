package handler

import (
	"net/http"

	"github.com/blargg/internal/events"
	"github.com/blargg/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	entries *service.EntryService
	tags    *service.TagService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, bus *events.Bus) *API {
	tags := service.NewTagService(gdb)
	return &API{
		entries: service.NewEntryService(gdb, tags, bus),
		tags:    tags,
	}
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func respondNotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, "not found")
}
