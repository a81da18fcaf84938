package router

import (
	"github.com/gin-gonic/gin"
	"github.com/navid-fn/radar-ticker/internal/handler"
)

func registerTickerRoutes(router *gin.RouterGroup, tickerHandler *handler.TickerHandler) {
	router.GET("/test", tickerHandler.GetTicker)
}
