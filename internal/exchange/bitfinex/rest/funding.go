package rest

import (
	"context"

	"github.com/shopspring/decimal"
)

// Margin funding endpoints. They are part of the client surface but not
// supported yet; every call fails with ErrNotImplemented without touching the
// network.

func (c *Private) NewOffer(ctx context.Context, currency string, amount, rate decimal.Decimal, period int, direction string) (*Response, error) {
	return nil, notImplemented("NewOffer")
}

func (c *Private) CancelOffer(ctx context.Context, offerID int64) (*Response, error) {
	return nil, notImplemented("CancelOffer")
}

func (c *Private) OfferStatus(ctx context.Context, offerID int64) (*Response, error) {
	return nil, notImplemented("OfferStatus")
}

func (c *Private) ActiveCredits(ctx context.Context) (*Response, error) {
	return nil, notImplemented("ActiveCredits")
}

func (c *Private) Offers(ctx context.Context) (*Response, error) {
	return nil, notImplemented("Offers")
}

func (c *Private) OffersHistory(ctx context.Context, limit int) (*Response, error) {
	return nil, notImplemented("OffersHistory")
}

func (c *Private) PastFundingTrades(ctx context.Context, currency string, limit int) (*Response, error) {
	return nil, notImplemented("PastFundingTrades")
}

func (c *Private) TakenFunds(ctx context.Context) (*Response, error) {
	return nil, notImplemented("TakenFunds")
}

func (c *Private) UnusedTakenFunds(ctx context.Context) (*Response, error) {
	return nil, notImplemented("UnusedTakenFunds")
}

func (c *Private) TotalTakenFunds(ctx context.Context) (*Response, error) {
	return nil, notImplemented("TotalTakenFunds")
}

func (c *Private) CloseMarginFunding(ctx context.Context, swapID int64) (*Response, error) {
	return nil, notImplemented("CloseMarginFunding")
}
