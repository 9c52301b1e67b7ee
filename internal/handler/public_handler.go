package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/blargg/internal/db"
	"github.com/blargg/internal/service"
	"github.com/gin-gonic/gin"
)

func entryListItem(entry *db.Entry) gin.H {
	tags := make([]gin.H, 0, len(entry.Tags))
	for _, tag := range entry.Tags {
		tags = append(tags, gin.H{
			"name": tag.Name,
			"slug": tag.Slug,
			"url":  tag.AbsoluteURL(),
		})
	}

	item := gin.H{
		"id":        entry.ID,
		"title":     entry.Title,
		"slug":      entry.Slug,
		"date_slug": entry.DateSlug,
		"url":       entry.AbsoluteURL(),
		"published": entry.Published,
		"tags":      tags,
	}
	if entry.PublishedOn != nil {
		item["published_on"] = entry.PublishedOn.Format(time.RFC3339)
	}
	return item
}

func entryDetail(entry *db.Entry) gin.H {
	item := entryListItem(entry)
	item["content"] = string(entry.Content())
	if entry.Site.Domain != "" {
		item["crossposted_content"] = string(entry.CrosspostedContent())
	}
	return item
}

// ListEntries 返回已发布文章的分页列表
func (a *API) ListEntries(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	result, err := a.entries.ListPublished(service.EntryFilter{Page: page, PerPage: perPage})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list entries")
		return
	}

	items := make([]gin.H, 0, len(result.Entries))
	for i := range result.Entries {
		items = append(items, entryListItem(&result.Entries[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"entries":     items,
		"total":       result.Total,
		"total_pages": result.TotalPages,
		"page":        result.Page,
		"per_page":    result.PerPage,
	})
}

// EntryDetail 根据日期路径返回已发布文章详情
func (a *API) EntryDetail(c *gin.Context) {
	// The first path segment shares its wildcard name with the bare-slug
	// route; gin requires one name per position.
	year, errY := strconv.Atoi(c.Param("slugOrYear"))
	month, errM := strconv.Atoi(c.Param("month"))
	day, errD := strconv.Atoi(c.Param("day"))
	if errY != nil || errM != nil || errD != nil {
		respondNotFound(c)
		return
	}

	dateSlug := fmt.Sprintf("%04d/%02d/%02d/%s", year, month, day, c.Param("slug"))
	entry, err := a.entries.GetByDateSlug(dateSlug)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			respondNotFound(c)
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load entry")
		return
	}

	if !entry.Published {
		respondNotFound(c)
		return
	}

	c.JSON(http.StatusOK, entryDetail(entry))
}

// EntryBySlug 根据 slug 返回文章详情（含未发布的预览路径）
func (a *API) EntryBySlug(c *gin.Context) {
	entry, err := a.entries.GetBySlug(c.Param("slugOrYear"))
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			respondNotFound(c)
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load entry")
		return
	}

	c.JSON(http.StatusOK, entryDetail(entry))
}

// ListTags 返回标签及其使用统计
func (a *API) ListTags(c *gin.Context) {
	usages, err := a.tags.Usage()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list tags")
		return
	}

	items := make([]gin.H, 0, len(usages))
	for _, usage := range usages {
		items = append(items, gin.H{
			"id":    usage.ID,
			"name":  usage.Name,
			"slug":  usage.Slug,
			"count": usage.Count,
		})
	}

	c.JSON(http.StatusOK, gin.H{"tags": items})
}

// TaggedEntries 返回带指定标签的已发布文章
func (a *API) TaggedEntries(c *gin.Context) {
	tag, err := a.tags.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			respondNotFound(c)
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load tag")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	result, err := a.entries.ListPublished(service.EntryFilter{
		TagSlug: tag.Slug,
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list entries")
		return
	}

	items := make([]gin.H, 0, len(result.Entries))
	for i := range result.Entries {
		items = append(items, entryListItem(&result.Entries[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"tag":         gin.H{"name": tag.Name, "slug": tag.Slug},
		"entries":     items,
		"total":       result.Total,
		"total_pages": result.TotalPages,
		"page":        result.Page,
		"per_page":    result.PerPage,
	})
}
