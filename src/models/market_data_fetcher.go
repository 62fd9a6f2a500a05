package models

import "context"

// MarketDataFetcher is the boundary to the market data layer. The
// risk engine never fetches quotes itself.
type MarketDataFetcher interface {
	FetchStockTick(ctx context.Context, symbol StockSymbol) (*StockTick, error)
	FetchOptionChain(ctx context.Context, symbol StockSymbol) ([]OptionQuote, error)
}
