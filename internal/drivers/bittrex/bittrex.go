package bittrex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/navid-fn/radar-ticker/configs"
	"github.com/navid-fn/radar-ticker/internal/metrics"
	"github.com/navid-fn/radar-ticker/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	defaultRequestTimeout = 10 * time.Second
	maxBodyBytes          = 1 << 20

	dialTimeout           = 5 * time.Second
	tlsHandshakeTimeout   = 5 * time.Second
	responseHeaderTimeout = 5 * time.Second
	idleConnTimeout       = 90 * time.Second
	maxIdleConnsPerHost   = 16
)

// Client calls the Bittrex v1.1 public getticker endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Entry
}

func NewClient(cfg *configs.TickerConfig, logger *logrus.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		baseURL:    cfg.URL,
		httpClient: newHTTPClient(timeout),
		logger:     logger.WithField("driver", "bittrex"),
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   dialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConnsPerHost:   maxIdleConnsPerHost,
		IdleConnTimeout:       idleConnTimeout,
		TLSHandshakeTimeout:   tlsHandshakeTimeout,
		ResponseHeaderTimeout: responseHeaderTimeout,
		ForceAttemptHTTP2:     true,
	}
	return &http.Client{Transport: tr, Timeout: timeout}
}

// GetTicker never returns an error: upstream failures collapse into
// models.UpstreamErrorResponse, and an upstream success=false envelope is
// relayed with its message.
func (c *Client) GetTicker(ctx context.Context, market string) models.ApiResponse {
	start := time.Now()
	env, err := c.fetchTicker(ctx, market)
	metrics.UpstreamRequestDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(outcome(err)).Inc()
		c.logger.WithError(err).WithField("market", market).Warn("Ticker request failed")
		return models.UpstreamErrorResponse()
	}

	if !env.Success {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		c.logger.WithFields(logrus.Fields{"market": market, "message": env.Message}).Info("Ticker rejected by upstream")
	} else {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	}
	return env.ToResponse()
}

type fetchError struct {
	outcome string
	err     error
}

func (e *fetchError) Error() string { return e.err.Error() }
func (e *fetchError) Unwrap() error { return e.err }

func outcome(err error) string {
	var fe *fetchError
	if errors.As(err, &fe) {
		return fe.outcome
	}
	return metrics.OutcomeTransport
}

func (c *Client) fetchTicker(ctx context.Context, market string) (models.TickerEnvelope, error) {
	var env models.TickerEnvelope

	// Plain concatenation: the market is already restricted to [A-Za-z-].
	url := c.baseURL + market

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return env, &fetchError{metrics.OutcomeTransport, fmt.Errorf("%w: build request: %v", models.ErrUpstream, err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return env, &fetchError{metrics.OutcomeTransport, fmt.Errorf("%w: HTTP request failed: %v", models.ErrUpstream, err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return env, &fetchError{metrics.OutcomeTransport, fmt.Errorf("%w: failed to read body: %v", models.ErrUpstream, err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return env, &fetchError{metrics.OutcomeStatus, fmt.Errorf("%w: status %d", models.ErrUpstream, resp.StatusCode)}
	}

	if err := json.Unmarshal(body, &env); err != nil {
		return env, &fetchError{metrics.OutcomeDecode, fmt.Errorf("%w: failed to unmarshal: %v", models.ErrUpstream, err)}
	}

	return env, nil
}
