package search

import "github.com/gin-gonic/gin"

// Routes registers the search routes. Every route is guarded by the given rate limit middleware.
func Routes(r gin.IRouter, rateLimit gin.HandlerFunc, handler Handler) {
	limited := r.Group("")
	limited.Use(rateLimit)
	limited.POST("/search", handler.Search)
	limited.POST("/ai/search", handler.Answer)
}
