package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampForms(t *testing.T) {
	var quoted, number, empty Timestamp

	require.NoError(t, json.Unmarshal([]byte(`"1444272165.25"`), &quoted))
	assert.Equal(t, time.Unix(1444272165, 250_000_000).UTC(), quoted.Time)

	require.NoError(t, json.Unmarshal([]byte(`1444266681`), &number))
	assert.Equal(t, int64(1444266681), number.Unix())

	require.NoError(t, json.Unmarshal([]byte(`null`), &empty))
	assert.True(t, empty.IsZero())

	var bad Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &bad))
}

func TestTickerDecode(t *testing.T) {
	body := `{"mid":"244.755","bid":"244.75","ask":"244.76","last_price":"117.5",
		"low":"244.2","high":"248.19","volume":"7842.11542563","timestamp":"1444253422.348340958"}`

	var ticker Ticker
	require.NoError(t, json.Unmarshal([]byte(body), &ticker))
	assert.True(t, ticker.LastPrice.Valid)
	assert.True(t, ticker.LastPrice.Decimal.Equal(decimal.RequireFromString("117.5")))
	assert.Equal(t, int64(1444253422), ticker.Timestamp.Unix())
}

func TestTickerMissingLastPrice(t *testing.T) {
	var missing, null Ticker
	require.NoError(t, json.Unmarshal([]byte(`{"mid":"117.4","bid":"117.3"}`), &missing))
	assert.False(t, missing.LastPrice.Valid)

	require.NoError(t, json.Unmarshal([]byte(`{"last_price":null}`), &null))
	assert.False(t, null.LastPrice.Valid)
}

func TestOrderDecode(t *testing.T) {
	body := `{"id":448364249,"symbol":"btcusd","exchange":"bitfinex","price":"0.01",
		"avg_execution_price":"0.0","side":"buy","type":"exchange limit",
		"timestamp":"1444272165.252370982","is_live":true,"is_cancelled":false,
		"is_hidden":false,"was_forced":false,"original_amount":"0.01",
		"remaining_amount":"0.01","executed_amount":"0.0","order_id":448364249}`

	var order Order
	require.NoError(t, json.Unmarshal([]byte(body), &order))
	assert.Equal(t, int64(448364249), order.ID)
	assert.Equal(t, OrderSideBuy, order.Side)
	assert.Equal(t, OrderTypeExchangeLimit, order.Type)
	assert.True(t, order.IsLive)
	assert.Equal(t, "0.01", order.RemainingAmount.String())
}

func TestKeyInfoDecode(t *testing.T) {
	body := `{"account":{"read":true,"write":false},"orders":{"read":true,"write":true}}`

	var info KeyInfo
	require.NoError(t, json.Unmarshal([]byte(body), &info))
	assert.True(t, info["orders"].Write)
	assert.False(t, info["account"].Write)
}
