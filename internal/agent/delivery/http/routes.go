package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mws ...gin.HandlerFunc) {
	g := rg.Group("", mws...)
	{
		g.POST("/ask", h.Ask)
		g.POST("/route", h.Route)
	}
}
