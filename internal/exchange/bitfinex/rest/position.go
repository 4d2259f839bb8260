package rest

import (
	"context"

	"github.com/WongLynn/bitfinex-1/internal/models"
	"github.com/shopspring/decimal"
)

func (c *Private) ActivePositions(ctx context.Context) ([]models.Position, error) {
	var positions []models.Position
	if _, err := c.post(ctx, "v1/positions", nil, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

// ClaimPosition claims amount of a margin position. Whether the held balance
// covers the claim is checked by the exchange.
func (c *Private) ClaimPosition(ctx context.Context, positionID int64, amount decimal.Decimal) (*models.Position, error) {
	if !amount.IsPositive() {
		return nil, invalidArgument("сумма должна быть больше нуля: %s", amount)
	}

	params := map[string]any{
		"position_id": positionID,
		"amount":      amount.String(),
	}

	var position models.Position
	if _, err := c.post(ctx, "v1/position/claim", params, &position); err != nil {
		return nil, err
	}
	return &position, nil
}
