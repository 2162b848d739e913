package profile

import "github.com/gin-gonic/gin"

func Routes(r gin.IRouter, handler Handler) {
	r.GET("/profiles", handler.FindAll)
	r.POST("/profiles", handler.Create)
	r.GET("/profiles/:id", handler.Find)
	r.PUT("/profiles/:id", handler.Update)
}
