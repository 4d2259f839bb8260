package exchange

import (
	"context"

	"github.com/WongLynn/bitfinex-1/internal/models"
)

// MarketData is the unauthenticated part of the exchange API.
type MarketData interface {
	Ticker(ctx context.Context, symbol string) (*models.Ticker, error)
	LastTrade(ctx context.Context, symbol string) (float64, error)
	Stats(ctx context.Context, symbol string) ([]models.Stat, error)
	OrderBook(ctx context.Context, symbol string) (*models.OrderBook, error)
	Trades(ctx context.Context, symbol string) ([]models.Trade, error)
	FundingBook(ctx context.Context, currency string) (*models.FundingBook, error)
	Lends(ctx context.Context, currency string) ([]models.Lend, error)
	Symbols(ctx context.Context) ([]string, error)
	SymbolsDetails(ctx context.Context) ([]models.SymbolDetail, error)
}

// Account is the read-only signed part of the API.
type Account interface {
	AccountInfos(ctx context.Context) ([]models.AccountInfo, error)
	AccountFees(ctx context.Context) (*models.AccountFees, error)
	Summary(ctx context.Context) (models.Summary, error)
	KeyInfo(ctx context.Context) (models.KeyInfo, error)
	MarginInfos(ctx context.Context) ([]models.MarginInfo, error)
	Balances(ctx context.Context) ([]models.Balance, error)
	ActiveOrders(ctx context.Context) ([]models.Order, error)
	OrderStatus(ctx context.Context, orderID int64) (*models.Order, error)
	ActivePositions(ctx context.Context) ([]models.Position, error)
}
