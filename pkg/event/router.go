package event

import "github.com/gin-gonic/gin"

func Routes(r gin.IRouter, handler Handler) {
	r.GET("/events", handler.FindAll)
	r.POST("/events", handler.Create)
	r.GET("/events/upcoming", handler.FindUpcoming)
	r.GET("/events/export.ics", handler.Export)
	r.POST("/events/import", handler.Import)
	r.GET("/events/:id", handler.Find)
	r.GET("/events/:id/ics", handler.ExportEvent)
	r.PUT("/events/:id", handler.Update)
	r.PATCH("/events/:id", handler.Update)
	r.DELETE("/events/:id", handler.Delete)

	r.GET("/event-types", handler.EventTypes)

	r.GET("/days/:date/events", handler.FindByDate)
	r.GET("/days/:date/schedule", handler.DaySchedule)
}
