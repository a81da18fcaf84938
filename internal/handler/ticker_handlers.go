package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/navid-fn/radar-ticker/internal/metrics"
	"github.com/navid-fn/radar-ticker/internal/models"
	"github.com/navid-fn/radar-ticker/internal/service"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the gin context key the router stores the request ID under.
const RequestIDKey = "request_id"

type tickerQuery struct {
	Currency string `form:"currency" binding:"currencypair"`
}

type TickerHandler struct {
	tickerService *service.TickerService
	logger        *logrus.Entry
}

func NewTickerHandler(service *service.TickerService, logger *logrus.Logger) *TickerHandler {
	return &TickerHandler{
		tickerService: service,
		logger:        logger.WithField("component", "ticker-handler"),
	}
}

// GetTicker serves GET /api/test?currency=PAIR.
func (h *TickerHandler) GetTicker(c *gin.Context) {
	log := h.logger.WithField(RequestIDKey, c.GetString(RequestIDKey))

	// gin's query cache drops pairs it cannot decode, which would let a
	// malformed currency bind as "".
	if _, err := url.ParseQuery(c.Request.URL.RawQuery); err != nil {
		h.rejectQuery(c, log, err)
		return
	}

	var q tickerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.rejectQuery(c, log, err)
		return
	}

	resp := h.tickerService.GetTicker(c.Request.Context(), q.Currency)
	if !resp.Success {
		log.WithFields(logrus.Fields{"currency": q.Currency, "message": resp.Message}).Debug("Ticker lookup failed")
		c.JSON(http.StatusBadRequest, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TickerHandler) rejectQuery(c *gin.Context, log *logrus.Entry, err error) {
	metrics.ValidationRejectsTotal.Inc()
	log.WithError(models.ErrInvalidQuery).WithFields(logrus.Fields{
		"query":  c.Request.URL.RawQuery,
		"detail": err.Error(),
	}).Debug("Rejected currency query")
	c.JSON(http.StatusBadRequest, models.InvalidQueryResponse())
}
