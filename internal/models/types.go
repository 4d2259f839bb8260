package models

import (
	"github.com/shopspring/decimal"
)

type OrderSide string
type OrderType string
type WalletType string

const (
	OrderSideBuy  OrderSide = "buy"
	OrderSideSell OrderSide = "sell"

	OrderTypeMarket             OrderType = "market"
	OrderTypeLimit              OrderType = "limit"
	OrderTypeStop               OrderType = "stop"
	OrderTypeTrailingStop       OrderType = "trailing-stop"
	OrderTypeFillOrKill         OrderType = "fill-or-kill"
	OrderTypeExchangeMarket     OrderType = "exchange market"
	OrderTypeExchangeLimit      OrderType = "exchange limit"
	OrderTypeExchangeStop       OrderType = "exchange stop"
	OrderTypeExchangeTrailing   OrderType = "exchange trailing-stop"
	OrderTypeExchangeFillOrKill OrderType = "exchange fill-or-kill"

	WalletTrading  WalletType = "trading"
	WalletExchange WalletType = "exchange"
	WalletDeposit  WalletType = "deposit"
)

// Ticker.LastPrice is invalid when the reply omits last_price or sends null.
type Ticker struct {
	Mid       decimal.Decimal     `json:"mid"`
	Bid       decimal.Decimal     `json:"bid"`
	Ask       decimal.Decimal     `json:"ask"`
	LastPrice decimal.NullDecimal `json:"last_price"`
	Low       decimal.Decimal     `json:"low"`
	High      decimal.Decimal     `json:"high"`
	Volume    decimal.Decimal     `json:"volume"`
	Timestamp Timestamp           `json:"timestamp"`
}

type Stat struct {
	Period int             `json:"period"`
	Volume decimal.Decimal `json:"volume"`
}

type BookEntry struct {
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp Timestamp       `json:"timestamp"`
}

type OrderBook struct {
	Bids []BookEntry `json:"bids"`
	Asks []BookEntry `json:"asks"`
}

type FundingEntry struct {
	Rate      decimal.Decimal `json:"rate"`
	Amount    decimal.Decimal `json:"amount"`
	Period    int             `json:"period"`
	Timestamp Timestamp       `json:"timestamp"`
	FRR       string          `json:"frr"`
}

type FundingBook struct {
	Bids []FundingEntry `json:"bids"`
	Asks []FundingEntry `json:"asks"`
}

type Trade struct {
	TID       int64           `json:"tid"`
	Timestamp Timestamp       `json:"timestamp"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
	Exchange  string          `json:"exchange"`
	Type      string          `json:"type"`
}

type Lend struct {
	Rate       decimal.Decimal `json:"rate"`
	AmountLent decimal.Decimal `json:"amount_lent"`
	AmountUsed decimal.Decimal `json:"amount_used"`
	Timestamp  Timestamp       `json:"timestamp"`
}

type SymbolDetail struct {
	Pair             string          `json:"pair"`
	PricePrecision   int             `json:"price_precision"`
	InitialMargin    decimal.Decimal `json:"initial_margin"`
	MinimumMargin    decimal.Decimal `json:"minimum_margin"`
	MaximumOrderSize decimal.Decimal `json:"maximum_order_size"`
	MinimumOrderSize decimal.Decimal `json:"minimum_order_size"`
	Expiration       string          `json:"expiration"`
	Margin           bool            `json:"margin"`
}

type PairFee struct {
	Pairs     string          `json:"pairs"`
	MakerFees decimal.Decimal `json:"maker_fees"`
	TakerFees decimal.Decimal `json:"taker_fees"`
}

type AccountInfo struct {
	MakerFees decimal.Decimal `json:"maker_fees"`
	TakerFees decimal.Decimal `json:"taker_fees"`
	Fees      []PairFee       `json:"fees"`
}

type AccountFees struct {
	Withdraw map[string]decimal.Decimal `json:"withdraw"`
}

// Summary is returned as-is; its shape changes with the account tier.
type Summary map[string]any

type Permission struct {
	Read  bool `json:"read"`
	Write bool `json:"write"`
}

type KeyInfo map[string]Permission

type MarginLimit struct {
	OnPair            string          `json:"on_pair"`
	InitialMargin     decimal.Decimal `json:"initial_margin"`
	MarginRequirement decimal.Decimal `json:"margin_requirement"`
	TradableBalance   decimal.Decimal `json:"tradable_balance"`
}

type MarginInfo struct {
	MarginBalance     decimal.Decimal `json:"margin_balance"`
	TradableBalance   decimal.Decimal `json:"tradable_balance"`
	UnrealizedPL      decimal.Decimal `json:"unrealized_pl"`
	UnrealizedSwap    decimal.Decimal `json:"unrealized_swap"`
	NetValue          decimal.Decimal `json:"net_value"`
	RequiredMargin    decimal.Decimal `json:"required_margin"`
	Leverage          decimal.Decimal `json:"leverage"`
	MarginRequirement decimal.Decimal `json:"margin_requirement"`
	MarginLimits      []MarginLimit   `json:"margin_limits"`
	Message           string          `json:"message"`
}

type Balance struct {
	Type      WalletType      `json:"type"`
	Currency  string          `json:"currency"`
	Amount    decimal.Decimal `json:"amount"`
	Available decimal.Decimal `json:"available"`
}

type DepositAddress struct {
	Result   string `json:"result"`
	Method   string `json:"method"`
	Currency string `json:"currency"`
	Address  string `json:"address"`
}

type TransferResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type WithdrawalResult struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	WithdrawalID int64  `json:"withdrawal_id"`
}

type Order struct {
	ID                int64           `json:"id"`
	Symbol            string          `json:"symbol"`
	Exchange          string          `json:"exchange"`
	Price             decimal.Decimal `json:"price"`
	AvgExecutionPrice decimal.Decimal `json:"avg_execution_price"`
	Side              OrderSide       `json:"side"`
	Type              OrderType       `json:"type"`
	Timestamp         Timestamp       `json:"timestamp"`
	IsLive            bool            `json:"is_live"`
	IsCancelled       bool            `json:"is_cancelled"`
	IsHidden          bool            `json:"is_hidden"`
	WasForced         bool            `json:"was_forced"`
	OriginalAmount    decimal.Decimal `json:"original_amount"`
	RemainingAmount   decimal.Decimal `json:"remaining_amount"`
	ExecutedAmount    decimal.Decimal `json:"executed_amount"`
	OrderID           int64           `json:"order_id"`
}

type Position struct {
	ID        int64           `json:"id"`
	Symbol    string          `json:"symbol"`
	Status    string          `json:"status"`
	Base      decimal.Decimal `json:"base"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp Timestamp       `json:"timestamp"`
	Swap      decimal.Decimal `json:"swap"`
	PL        decimal.Decimal `json:"pl"`
}

type BalanceMovement struct {
	Currency    string          `json:"currency"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
	Description string          `json:"description"`
	Timestamp   Timestamp       `json:"timestamp"`
}

type Movement struct {
	ID               int64           `json:"id"`
	TxID             any             `json:"txid"`
	Currency         string          `json:"currency"`
	Method           string          `json:"method"`
	Type             string          `json:"type"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description"`
	Address          string          `json:"address"`
	Status           string          `json:"status"`
	Timestamp        Timestamp       `json:"timestamp"`
	TimestampCreated Timestamp       `json:"timestamp_created"`
	Fee              decimal.Decimal `json:"fee"`
}

type PastTrade struct {
	TID         int64           `json:"tid"`
	OrderID     int64           `json:"order_id"`
	Price       decimal.Decimal `json:"price"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   Timestamp       `json:"timestamp"`
	Exchange    string          `json:"exchange"`
	Type        string          `json:"type"`
	FeeCurrency string          `json:"fee_currency"`
	FeeAmount   decimal.Decimal `json:"fee_amount"`
}
