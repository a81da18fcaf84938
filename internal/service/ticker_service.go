package service

import (
	"context"

	"github.com/navid-fn/radar-ticker/internal/models"
)

// TickerFetcher is implemented by upstream drivers.
type TickerFetcher interface {
	GetTicker(ctx context.Context, market string) models.ApiResponse
}

type TickerService struct {
	fetcher TickerFetcher
}

func NewTickerService(fetcher TickerFetcher) *TickerService {
	return &TickerService{
		fetcher: fetcher,
	}
}

// GetTicker expects a currency that already passed validation.
func (ts *TickerService) GetTicker(ctx context.Context, currency string) models.ApiResponse {
	return ts.fetcher.GetTicker(ctx, currency)
}
