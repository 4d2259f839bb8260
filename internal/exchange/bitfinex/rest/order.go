package rest

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/WongLynn/bitfinex-1/internal/models"
	"github.com/shopspring/decimal"
)

const (
	multiCancelConfirmation = "Orders cancelled"
	allCancelConfirmation   = "All orders cancelled"
)

// OrderRequest describes a new or replacement order. Symbol falls back to the
// client's default pair and Type to "limit". The optional flags are only
// sent when set.
type OrderRequest struct {
	Symbol string
	Amount decimal.Decimal
	Price  decimal.Decimal
	Side   models.OrderSide
	Type   models.OrderType

	IsHidden        bool
	IsPostOnly      bool
	UseAllAvailable bool
	OCOOrder        bool
	BuyPriceOCO     decimal.Decimal
	SellPriceOCO    decimal.Decimal
}

func (c *Private) orderParams(req OrderRequest) (map[string]any, error) {
	if !req.Amount.IsPositive() {
		return nil, invalidArgument("объём должен быть больше нуля: %s", req.Amount)
	}
	if req.Price.IsNegative() {
		return nil, invalidArgument("цена не может быть отрицательной: %s", req.Price)
	}
	if req.Side != models.OrderSideBuy && req.Side != models.OrderSideSell {
		return nil, invalidArgument("неизвестная сторона сделки: %q", req.Side)
	}

	orderType := req.Type
	if orderType == "" {
		orderType = models.OrderTypeLimit
	}

	params := map[string]any{
		"symbol":   c.symbol(req.Symbol),
		"amount":   req.Amount.String(),
		"price":    req.Price.String(),
		"exchange": exchangeName,
		"side":     string(req.Side),
		"type":     string(orderType),
	}

	if req.IsHidden {
		params["is_hidden"] = true
	}
	if req.IsPostOnly {
		params["is_postonly"] = true
	}
	if req.UseAllAvailable {
		params["use_all_available"] = 1
	}
	if req.OCOOrder {
		params["ocoorder"] = true
		params["buy_price_oco"] = req.BuyPriceOCO.String()
		params["sell_price_oco"] = req.SellPriceOCO.String()
	}

	return params, nil
}

func (c *Private) NewOrder(ctx context.Context, req OrderRequest) (*models.Order, error) {
	params, err := c.orderParams(req)
	if err != nil {
		return nil, err
	}

	var order models.Order
	if _, err := c.post(ctx, "v1/order/new", params, &order); err != nil {
		return nil, err
	}

	c.log.WithOrderID(strconv.FormatInt(order.ID, 10)).WithField("symbol", order.Symbol).Info("Ордер выставлен.")
	return &order, nil
}

func (c *Private) CancelOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	params := map[string]any{
		"order_id": strconv.FormatInt(orderID, 10),
	}

	var order models.Order
	if _, err := c.post(ctx, "v1/order/cancel", params, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CancelMultipleOrders returns the raw reply; the exchange's wording is
// left for the caller to interpret.
func (c *Private) CancelMultipleOrders(ctx context.Context, orderIDs []int64) (*Response, error) {
	if len(orderIDs) == 0 {
		return nil, invalidArgument("пустой список ордеров")
	}

	params := map[string]any{
		"order_ids": orderIDs,
	}
	return c.post(ctx, "v1/order/cancel/multi", params, nil)
}

// CancelMultipleOrdersConfirmed reports whether the exchange replied with the
// exact "Orders cancelled" confirmation.
//
// Deprecated: a false result cannot be told apart from a partial success or
// a reworded reply. Use CancelMultipleOrders.
func (c *Private) CancelMultipleOrdersConfirmed(ctx context.Context, orderIDs []int64) (bool, error) {
	resp, err := c.CancelMultipleOrders(ctx, orderIDs)
	if err != nil {
		return false, err
	}
	return confirmed(resp, multiCancelConfirmation), nil
}

// CancelAllOrders returns the raw reply.
func (c *Private) CancelAllOrders(ctx context.Context) (*Response, error) {
	return c.post(ctx, "v1/order/cancel/all", nil, nil)
}

// CancelAllOrdersConfirmed reports whether the exchange replied with the
// exact "All orders cancelled" confirmation.
//
// Deprecated: see CancelMultipleOrdersConfirmed. Use CancelAllOrders.
func (c *Private) CancelAllOrdersConfirmed(ctx context.Context) (bool, error) {
	resp, err := c.CancelAllOrders(ctx)
	if err != nil {
		return false, err
	}
	return confirmed(resp, allCancelConfirmation), nil
}

// ReplaceOrder cancels orderID and places req in its stead in one exchange
// operation.
func (c *Private) ReplaceOrder(ctx context.Context, orderID int64, req OrderRequest) (*models.Order, error) {
	params, err := c.orderParams(req)
	if err != nil {
		return nil, err
	}
	params["order_id"] = orderID

	var order models.Order
	if _, err := c.post(ctx, "v1/order/cancel/replace", params, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Private) OrderStatus(ctx context.Context, orderID int64) (*models.Order, error) {
	params := map[string]any{
		"order_id": orderID,
	}

	var order models.Order
	if _, err := c.post(ctx, "v1/order/status", params, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Private) ActiveOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if _, err := c.post(ctx, "v1/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Orders is an alias of ActiveOrders.
func (c *Private) Orders(ctx context.Context) ([]models.Order, error) {
	return c.ActiveOrders(ctx)
}

// OrderHistory returns recently closed orders. The exchange bounds the time
// window and rate-limits the endpoint; limit <= 0 uses its default.
func (c *Private) OrderHistory(ctx context.Context, limit int) ([]models.Order, error) {
	var params map[string]any
	if limit > 0 {
		params = map[string]any{"limit": limit}
	}

	var orders []models.Order
	if _, err := c.post(ctx, "v1/orders/hist", params, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func confirmed(resp *Response, expected string) bool {
	if resp == nil {
		return false
	}
	if strings.TrimSpace(string(resp.Body)) == expected {
		return true
	}

	var reply struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(resp.Body, &reply); err != nil {
		return false
	}
	return reply.Result == expected
}
