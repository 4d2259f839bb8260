package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/WongLynn/bitfinex-1/internal/config"
	"github.com/WongLynn/bitfinex-1/internal/exchange"
	"github.com/WongLynn/bitfinex-1/internal/exchange/bitfinex/rest"
	"github.com/WongLynn/bitfinex-1/internal/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Config{
		Level:      cfg.Runtime.Log.Level,
		Format:     cfg.Runtime.Log.Format,
		Output:     cfg.Runtime.Log.File,
		MaxSize:    cfg.Runtime.Log.MaxSize,
		MaxBackups: cfg.Runtime.Log.MaxBackups,
		MaxAge:     cfg.Runtime.Log.MaxAge,
		Compress:   cfg.Runtime.Log.Compress,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := rest.Options{
		BaseURL:         cfg.Exchange.BaseUrl,
		Proxy:           cfg.Exchange.Proxy,
		Timeout:         cfg.Exchange.Timeout,
		DefaultSymbol:   cfg.Exchange.DefaultSymbol,
		DefaultCurrency: cfg.Exchange.DefaultCurrency,
		Log:             log,
	}

	public, err := rest.NewPublic(opts)
	if err != nil {
		log.WithError(err).Fatal("Не удалось создать клиент.")
	}

	if err := printMarket(ctx, public, log); err != nil {
		log.WithError(err).Error("Не удалось получить рыночные данные.")
		os.Exit(1)
	}

	if !cfg.Exchange.HasCredentials() {
		log.Info("API ключ не задан, приватные запросы пропущены.")
		return
	}

	private, err := rest.NewPrivate(cfg.Exchange.ApiKey, cfg.Exchange.Secret, opts)
	if err != nil {
		log.WithError(err).Fatal("Не удалось создать приватный клиент.")
	}

	if err := printAccount(ctx, private, log); err != nil {
		log.WithError(err).Error("Не удалось получить данные аккаунта.")
		os.Exit(1)
	}
}

func printMarket(ctx context.Context, api exchange.MarketData, log *logger.Logger) error {
	ticker, err := api.Ticker(ctx, "")
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"bid":        ticker.Bid.String(),
		"ask":        ticker.Ask.String(),
		"last_price": ticker.LastPrice.Decimal.String(),
		"volume":     ticker.Volume.String(),
	}).Info("Тикер.")
	return nil
}

func printAccount(ctx context.Context, api exchange.Account, log *logger.Logger) error {
	balances, err := api.Balances(ctx)
	if err != nil {
		return err
	}
	for _, b := range balances {
		log.WithFields(logrus.Fields{
			"wallet":    b.Type,
			"currency":  b.Currency,
			"amount":    b.Amount.String(),
			"available": b.Available.String(),
		}).Info("Баланс.")
	}

	orders, err := api.ActiveOrders(ctx)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"count": len(orders)}).Info("Активные ордера.")
	return nil
}
