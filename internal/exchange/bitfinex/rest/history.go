package rest

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/WongLynn/bitfinex-1/internal/models"
)

const defaultHistoryWindow = 7 * 24 * time.Hour

// HistoryRequest selects a time window of account history. A zero Until
// means now and a zero Since means Until minus seven days. Limit <= 0 leaves
// the exchange default. Currency, Symbol and Method are sent lower-cased;
// empty Currency and Symbol fall back to the client defaults.
type HistoryRequest struct {
	Currency string
	Symbol   string
	Since    time.Time
	Until    time.Time
	Limit    int

	// Wallet restricts BalanceHistory to one wallet.
	Wallet models.WalletType
	// Method restricts DepositWithdrawalHistory to one method ("bitcoin", "wire", ...).
	Method string
	// Reverse asks PastTrades for oldest first.
	Reverse bool
}

func (c *Private) window(req HistoryRequest) (since, until string, err error) {
	end := req.Until
	if end.IsZero() {
		end = c.clock()
	}
	start := req.Since
	if start.IsZero() {
		start = end.Add(-defaultHistoryWindow)
	}
	if start.After(end) {
		return "", "", invalidArgument("начало периода %s позже конца %s", start, end)
	}
	return unixString(start), unixString(end), nil
}

// BalanceHistory lists balance changes of one currency.
func (c *Private) BalanceHistory(ctx context.Context, req HistoryRequest) ([]models.BalanceMovement, error) {
	since, until, err := c.window(req)
	if err != nil {
		return nil, err
	}

	params := map[string]any{
		"currency": c.currency(req.Currency),
		"since":    since,
		"until":    until,
	}
	if req.Limit > 0 {
		params["limit"] = req.Limit
	}
	if req.Wallet != "" {
		params["wallet"] = string(req.Wallet)
	}

	var movements []models.BalanceMovement
	if _, err := c.post(ctx, "v1/history", params, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}

// DepositWithdrawalHistory lists deposits and withdrawals of one currency.
func (c *Private) DepositWithdrawalHistory(ctx context.Context, req HistoryRequest) ([]models.Movement, error) {
	since, until, err := c.window(req)
	if err != nil {
		return nil, err
	}

	params := map[string]any{
		"currency": c.currency(req.Currency),
		"since":    since,
		"until":    until,
	}
	if req.Limit > 0 {
		params["limit"] = req.Limit
	}
	if req.Method != "" {
		params["method"] = strings.ToLower(req.Method)
	}

	var movements []models.Movement
	if _, err := c.post(ctx, "v1/history/movements", params, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}

// PastTrades lists the account's executed trades on one pair.
func (c *Private) PastTrades(ctx context.Context, req HistoryRequest) ([]models.PastTrade, error) {
	since, until, err := c.window(req)
	if err != nil {
		return nil, err
	}

	params := map[string]any{
		"symbol":    c.symbol(req.Symbol),
		"timestamp": since,
		"until":     until,
		"reverse":   boolFlag(req.Reverse),
	}
	if req.Limit > 0 {
		params["limit_trades"] = req.Limit
	}

	var trades []models.PastTrade
	if _, err := c.post(ctx, "v1/mytrades", params, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

func unixString(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}
