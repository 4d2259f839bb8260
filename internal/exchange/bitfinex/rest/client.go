package rest

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/WongLynn/bitfinex-1/internal/logger"
)

const (
	DefaultBaseURL  = "https://api.bitfinex.com/"
	DefaultSymbol   = "btcusd"
	DefaultCurrency = "usd"
	DefaultTimeout  = 15 * time.Second

	exchangeName = "bitfinex"
)

// Options configures both facades. Zero values fall back to the package
// defaults.
type Options struct {
	BaseURL string
	// Proxy maps a URL scheme ("http", "https" or "all") to a proxy URL.
	Proxy           map[string]string
	Timeout         time.Duration
	DefaultSymbol   string
	DefaultCurrency string
	// HTTPClient replaces the client built from Proxy and Timeout.
	HTTPClient *http.Client
	Log        *logger.Logger
}

// Public is the unauthenticated market data facade.
type Public struct {
	baseURL         string
	defaultSymbol   string
	defaultCurrency string
	httpClient      *http.Client
	log             *logger.Logger
	now             func() time.Time
}

// Private adds the signed account and trading endpoints on top of Public.
// Nonces are unique per instance; callers that share an instance between
// goroutines still need to serialize requests if delivery order matters.
type Private struct {
	*Public

	apiKey string
	secret string
	nonce  *nonceGenerator
}

func NewPublic(opts Options) (*Public, error) {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		proxy, err := proxyFunc(opts.Proxy)
		if err != nil {
			return nil, err
		}
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.Proxy = proxy
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: transport,
		}
	}

	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	return &Public{
		baseURL:         withDefault(opts.BaseURL, DefaultBaseURL),
		defaultSymbol:   strings.ToLower(withDefault(opts.DefaultSymbol, DefaultSymbol)),
		defaultCurrency: strings.ToLower(withDefault(opts.DefaultCurrency, DefaultCurrency)),
		httpClient:      httpClient,
		log:             log,
		now:             time.Now,
	}, nil
}

func NewPrivate(apiKey, secret string, opts Options) (*Private, error) {
	if apiKey == "" || secret == "" {
		return nil, errors.New("Не заданы API ключ или секрет")
	}

	public, err := NewPublic(opts)
	if err != nil {
		return nil, err
	}

	return &Private{
		Public: public,
		apiKey: apiKey,
		secret: secret,
		nonce:  newNonceGenerator(public.clock),
	}, nil
}

func (c *Public) clock() time.Time {
	return c.now()
}

func (c *Public) symbol(symbol string) string {
	if symbol == "" {
		return c.defaultSymbol
	}
	return strings.ToLower(symbol)
}

func (c *Public) currency(currency string) string {
	if currency == "" {
		return c.defaultCurrency
	}
	return strings.ToLower(currency)
}

func proxyFunc(proxies map[string]string) (func(*http.Request) (*url.URL, error), error) {
	if len(proxies) == 0 {
		return http.ProxyFromEnvironment, nil
	}

	parsed := make(map[string]*url.URL, len(proxies))
	for scheme, raw := range proxies {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("Некорректный адрес прокси для %s: %w", scheme, err)
		}
		parsed[strings.ToLower(scheme)] = u
	}

	return func(req *http.Request) (*url.URL, error) {
		if u, ok := parsed[req.URL.Scheme]; ok {
			return u, nil
		}
		if u, ok := parsed["all"]; ok {
			return u, nil
		}
		return nil, nil
	}, nil
}

func withDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
