package rest

import "github.com/WongLynn/bitfinex-1/internal/exchange"

var (
	_ exchange.MarketData = (*Public)(nil)
	_ exchange.Account    = (*Private)(nil)
)
