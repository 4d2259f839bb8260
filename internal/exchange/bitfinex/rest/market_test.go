package rest

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tickerBody = `{"mid":"117.45","bid":"117.4","ask":"117.5","last_price":"117.5",
	"low":"110.0","high":"120.0","volume":"7842.11542563","timestamp":"1444253422.348340958"}`

func TestTickerDefaultSymbol(t *testing.T) {
	f := newFakeExchange(t, 200, tickerBody)
	c := newTestPublic(t, f)

	ticker, err := c.Ticker(context.Background(), "")
	require.NoError(t, err)

	req := f.last()
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/v1/pubticker/btcusd", req.Path)
	assert.Equal(t, "117.5", ticker.LastPrice.Decimal.String())
	assert.Equal(t, "117.4", ticker.Bid.String())
}

func TestLastTrade(t *testing.T) {
	f := newFakeExchange(t, 200, tickerBody)
	c := newTestPublic(t, f)

	last, err := c.LastTrade(context.Background(), "BTCUSD")
	require.NoError(t, err)
	assert.Equal(t, 117.5, last)
	assert.Equal(t, "/v1/pubticker/btcusd", f.last().Path)
}

func TestLastTradeWithoutPrice(t *testing.T) {
	for _, body := range []string{
		`{"mid":"117.4","bid":"117.3"}`,
		`{"mid":"117.4","last_price":null}`,
	} {
		f := newFakeExchange(t, 200, body)
		c := newTestPublic(t, f)

		last, err := c.LastTrade(context.Background(), "")
		var decErr *DecodeError
		require.ErrorAs(t, err, &decErr, body)
		assert.Equal(t, body, string(decErr.Body))
		assert.Zero(t, last)
	}
}

func TestConfiguredDefaults(t *testing.T) {
	f := newFakeExchange(t, 200, `[]`)
	opts := testOptions(f.server.URL, nil)
	opts.DefaultSymbol = "ETHUSD"
	opts.DefaultCurrency = "eur"
	c, err := NewPublic(opts)
	require.NoError(t, err)

	_, err = c.Trades(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "/v1/trades/ethusd", f.last().Path)

	_, err = c.Lends(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "/v1/lends/eur", f.last().Path)
}

func TestPublicEndpointPaths(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		body string
		call func(c *Public) error
		path string
	}{
		{"stats", `[{"period":1,"volume":"7967.96766158"}]`, func(c *Public) error {
			stats, err := c.Stats(ctx, "ltcusd")
			if err == nil {
				assert.Equal(t, 1, stats[0].Period)
			}
			return err
		}, "/v1/stats/ltcusd"},
		{"funding book", `{"bids":[{"rate":"9.1287","amount":"5000.0","period":30,"timestamp":"1444257541.0","frr":"No"}],"asks":[]}`, func(c *Public) error {
			book, err := c.FundingBook(ctx, "")
			if err == nil {
				assert.Equal(t, 30, book.Bids[0].Period)
			}
			return err
		}, "/v1/lendbook/usd"},
		{"order book", `{"bids":[{"price":"574.61","amount":"0.14","timestamp":"1472506127.0"}],"asks":[]}`, func(c *Public) error {
			book, err := c.OrderBook(ctx, "")
			if err == nil {
				assert.Equal(t, "574.61", book.Bids[0].Price.String())
			}
			return err
		}, "/v1/book/btcusd"},
		{"trades", `[{"timestamp":1444266681,"tid":11988919,"price":"244.8","amount":"0.03297384","exchange":"bitfinex","type":"sell"}]`, func(c *Public) error {
			trades, err := c.Trades(ctx, "")
			if err == nil {
				assert.Equal(t, int64(11988919), trades[0].TID)
			}
			return err
		}, "/v1/trades/btcusd"},
		{"lends", `[{"rate":"9.8998","amount_lent":"22528933.77950878","amount_used":"0.0","timestamp":1444264307}]`, func(c *Public) error {
			_, err := c.Lends(ctx, "btc")
			return err
		}, "/v1/lends/btc"},
		{"symbols", `["btcusd","ltcusd"]`, func(c *Public) error {
			symbols, err := c.Symbols(ctx)
			if err == nil {
				assert.Len(t, symbols, 2)
			}
			return err
		}, "/v1/symbols"},
		{"symbols details", `[{"pair":"btcusd","price_precision":5,"initial_margin":"30.0","minimum_margin":"15.0","maximum_order_size":"2000.0","minimum_order_size":"0.01","expiration":"NA","margin":true}]`, func(c *Public) error {
			details, err := c.SymbolsDetails(ctx)
			if err == nil {
				assert.True(t, details[0].Margin)
			}
			return err
		}, "/v1/symbols_details"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFakeExchange(t, 200, tc.body)
			c := newTestPublic(t, f)

			require.NoError(t, tc.call(c))
			assert.Equal(t, tc.path, f.last().Path)
			assert.Equal(t, http.MethodGet, f.last().Method)
			assert.Empty(t, f.last().Header.Get(headerSignature))
		})
	}
}

func TestPublicErrors(t *testing.T) {
	f := newFakeExchange(t, 200, `{"error":"Unknown symbol"}`)
	c := newTestPublic(t, f)

	_, err := c.Ticker(context.Background(), "zzzusd")
	var exErr *ExchangeError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, "Unknown symbol", exErr.Message)

	f.reply(502, `<html>bad gateway</html>`)
	_, err = c.Ticker(context.Background(), "")
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 502, httpErr.StatusCode)

	f.reply(200, `not json`)
	_, err = c.Symbols(context.Background())
	var decErr *DecodeError
	assert.ErrorAs(t, err, &decErr)
}
