package note

import "github.com/gin-gonic/gin"

func Routes(r gin.IRouter, handler Handler) {
	r.GET("/notes", handler.FindAll)
	r.POST("/notes", handler.Create)
	r.GET("/notes/:id", handler.Find)
	r.PUT("/notes/:id", handler.Update)
	r.PATCH("/notes/:id", handler.Update)
	r.DELETE("/notes/:id", handler.Delete)

	r.GET("/days/:date/note", handler.FindByDate)
	r.GET("/days/:date/notes", handler.FindAllByDate)
}
