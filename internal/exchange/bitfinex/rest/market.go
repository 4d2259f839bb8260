package rest

import (
	"context"
	"errors"

	"github.com/WongLynn/bitfinex-1/internal/models"
)

// Ticker returns the high level market overview for symbol, or for the
// default pair when symbol is empty.
func (c *Public) Ticker(ctx context.Context, symbol string) (*models.Ticker, error) {
	var ticker models.Ticker
	if _, err := c.get(ctx, "v1/pubticker/"+c.symbol(symbol), &ticker); err != nil {
		return nil, err
	}
	return &ticker, nil
}

// LastTrade is a shortcut for the ticker's last price. A reply without a
// last_price value is a *DecodeError, never a zero price.
func (c *Public) LastTrade(ctx context.Context, symbol string) (float64, error) {
	var ticker models.Ticker
	resp, err := c.get(ctx, "v1/pubticker/"+c.symbol(symbol), &ticker)
	if err != nil {
		return 0, err
	}
	if !ticker.LastPrice.Valid {
		return 0, &DecodeError{Body: resp.Body, Err: errors.New("в ответе нет last_price")}
	}
	return ticker.LastPrice.Decimal.InexactFloat64(), nil
}

func (c *Public) Stats(ctx context.Context, symbol string) ([]models.Stat, error) {
	var stats []models.Stat
	if _, err := c.get(ctx, "v1/stats/"+c.symbol(symbol), &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *Public) FundingBook(ctx context.Context, currency string) (*models.FundingBook, error) {
	var book models.FundingBook
	if _, err := c.get(ctx, "v1/lendbook/"+c.currency(currency), &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *Public) OrderBook(ctx context.Context, symbol string) (*models.OrderBook, error) {
	var book models.OrderBook
	if _, err := c.get(ctx, "v1/book/"+c.symbol(symbol), &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *Public) Trades(ctx context.Context, symbol string) ([]models.Trade, error) {
	var trades []models.Trade
	if _, err := c.get(ctx, "v1/trades/"+c.symbol(symbol), &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

func (c *Public) Lends(ctx context.Context, currency string) ([]models.Lend, error) {
	var lends []models.Lend
	if _, err := c.get(ctx, "v1/lends/"+c.currency(currency), &lends); err != nil {
		return nil, err
	}
	return lends, nil
}

func (c *Public) Symbols(ctx context.Context) ([]string, error) {
	var symbols []string
	if _, err := c.get(ctx, "v1/symbols", &symbols); err != nil {
		return nil, err
	}
	return symbols, nil
}

func (c *Public) SymbolsDetails(ctx context.Context) ([]models.SymbolDetail, error) {
	var details []models.SymbolDetail
	if _, err := c.get(ctx, "v1/symbols_details", &details); err != nil {
		return nil, err
	}
	return details, nil
}
