// Package pricing fetches live prices from the public quote endpoints of the
// supported platforms.
//
// Every lookup is a single HTTP GET with no retry and no caching: a report
// re-fetches every distinct (symbol, platform) pair it needs. Any transport
// failure, non-2xx status or unparsable body degrades to an unavailable
// price, it never aborts the caller.
package pricing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yangwl356/portfolio-tracker-cli"
)

// Default public endpoints. Each can be overridden by environment variable,
// which the tests use to point at local servers.
const (
	defaultBinanceURL  = "https://api.binance.us/api/v3/ticker/price"
	defaultOkxURL      = "https://www.okx.com/api/v5/market/ticker"
	defaultCoinbaseURL = "https://api.coinbase.com/v2/prices"
	defaultStooqURL    = "https://stooq.pl/q/l/"
)

// Quoter fetches prices from the platforms' public endpoints. The zero value
// is not usable, call NewQuoter.
type Quoter struct {
	Client *http.Client
	Log    *logrus.Logger

	BinanceURL  string
	OkxURL      string
	CoinbaseURL string
	StooqURL    string
}

// NewQuoter returns a Quoter with the default endpoints (or their environment
// overrides) and a per-request timeout.
func NewQuoter() *Quoter {
	return &Quoter{
		Client:      &http.Client{Timeout: 15 * time.Second},
		Log:         logrus.StandardLogger(),
		BinanceURL:  envOr("PTRACK_BINANCE_URL", defaultBinanceURL),
		OkxURL:      envOr("PTRACK_OKX_URL", defaultOkxURL),
		CoinbaseURL: envOr("PTRACK_COINBASE_URL", defaultCoinbaseURL),
		StooqURL:    envOr("PTRACK_STOOQ_URL", defaultStooqURL),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Quote fetches the current USD price of symbol on platform. A failed lookup
// is logged at debug level and returned as an unavailable price.
func (q *Quoter) Quote(symbol string, platform portfolio.Platform) portfolio.Price {
	var value float64
	var err error
	switch platform {
	case portfolio.Binance:
		value, err = q.binance(symbol)
	case portfolio.Okx:
		value, err = q.okx(symbol)
	case portfolio.Coinbase:
		value, err = q.coinbase(symbol)
	case portfolio.StockEtf:
		value, err = q.stooq(symbol)
	default:
		err = fmt.Errorf("no quote route for platform %s", platform)
	}
	if err != nil {
		q.Log.WithFields(logrus.Fields{
			"symbol":   symbol,
			"platform": platform.String(),
		}).WithError(err).Debug("quote unavailable")
		return portfolio.Unavailable()
	}
	q.Log.WithFields(logrus.Fields{
		"symbol":   symbol,
		"platform": platform.String(),
		"price":    value,
	}).Debug("quote fetched")
	return portfolio.PriceOf(portfolio.M(value))
}

// jwget performs an HTTP GET request to the given address and unmarshals the
// JSON response body into the provided data structure.
func (q *Quoter) jwget(addr string, data interface{}) error {
	resp, err := q.Client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

// twget performs an HTTP GET request and returns the plain-text response
// body. The extra headers are set on the request; stooq's CDN rejects
// requests without a browser user agent.
func (q *Quoter) twget(addr string, headers map[string]string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return "", err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := q.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return "", fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
