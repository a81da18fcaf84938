package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/navid-fn/radar-ticker/internal/handler"
	"github.com/navid-fn/radar-ticker/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type Config struct {
	TickerHandler *handler.TickerHandler
	Logger        *logrus.Logger
}

func NewRouter(cfg *Config) (*gin.Engine, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("unexpected binding validator %T", binding.Validator.Engine())
	}
	if err := utils.RegisterValidations(v); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(
		RequestID(),
		RequestLogger(cfg.Logger),
		Metrics(),
		gin.Recovery(),
	)

	router.GET("/health", handler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	registerTickerRoutes(api, cfg.TickerHandler)

	return router, nil
}
