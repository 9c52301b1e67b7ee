package router

import (
	"github.com/blargg/internal/handler"
	"github.com/gin-gonic/gin"
)

// SetupRouter 配置 Gin 引擎和公开只读路由。
// 路由形状与 internal/urls 中的命名路由保持一致。
func SetupRouter(api *handler.API) *gin.Engine {
	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 文章路由：列表、按 slug 预览、按日期路径访问详情
	r.GET("/entries", api.ListEntries)
	r.GET("/entries/:slugOrYear", api.EntryBySlug)
	r.GET("/entries/:slugOrYear/:month/:day/:slug", api.EntryDetail)

	// 标签路由
	r.GET("/tags", api.ListTags)
	r.GET("/tags/:slug", api.TaggedEntries)

	return r
}
