package rest

import (
	"context"

	"github.com/WongLynn/bitfinex-1/internal/models"
)

func (c *Private) AccountInfos(ctx context.Context) ([]models.AccountInfo, error) {
	var infos []models.AccountInfo
	if _, err := c.post(ctx, "v1/account_infos", nil, &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

func (c *Private) AccountFees(ctx context.Context) (*models.AccountFees, error) {
	var fees models.AccountFees
	if _, err := c.post(ctx, "v1/account_fees", nil, &fees); err != nil {
		return nil, err
	}
	return &fees, nil
}

// Summary returns the 30-day trading and funding summary.
func (c *Private) Summary(ctx context.Context) (models.Summary, error) {
	var summary models.Summary
	if _, err := c.post(ctx, "v1/summary", nil, &summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// KeyInfo returns the permissions of the API key in use.
func (c *Private) KeyInfo(ctx context.Context) (models.KeyInfo, error) {
	var info models.KeyInfo
	if _, err := c.post(ctx, "v1/key_info", nil, &info); err != nil {
		return nil, err
	}
	return info, nil
}

func (c *Private) MarginInfos(ctx context.Context) ([]models.MarginInfo, error) {
	var infos []models.MarginInfo
	if _, err := c.post(ctx, "v1/margin_infos", nil, &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

func (c *Private) Balances(ctx context.Context) ([]models.Balance, error) {
	var balances []models.Balance
	if _, err := c.post(ctx, "v1/balances", nil, &balances); err != nil {
		return nil, err
	}
	return balances, nil
}
