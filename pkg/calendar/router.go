package calendar

import "github.com/gin-gonic/gin"

func Routes(r gin.IRouter, handler Handler) {
	r.GET("/calendar/grid", handler.Grid)
	r.GET("/calendar/week", handler.Week)
	r.GET("/calendar/range", handler.Range)
	r.GET("/calendar/slots", handler.Slots)
}
