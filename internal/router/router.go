package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	SubmitEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	NotifyModerators(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

// InitRouter wires the web-tier API behind auth, plus health and metrics.
func InitRouter(
	mode string,
	h Handler,
	auth ginext.HandlerFunc,
	metrics http.Handler,
	mw ...ginext.HandlerFunc,
) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api", auth)
	{
		// Events
		api.POST("/events", h.SubmitEvent)
		api.POST("/events/notify", h.NotifyModerators)
		api.GET("/events/:id", h.GetEvent)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
