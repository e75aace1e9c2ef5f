package pricing

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// This file contains the per-platform fetch routines. Each issues exactly one
// GET and parses one numeric price field out of the response.

// binance returns the last traded price for a pair like "BTCUSD".
//
//	GET /api/v3/ticker/price?symbol=BTCUSD
//	{"symbol":"BTCUSD","price":"112684.00000000"}
func (q *Quoter) binance(symbol string) (float64, error) {
	addr := q.BinanceURL + "?symbol=" + url.QueryEscape(strings.ToUpper(symbol))
	var content struct {
		Price string `json:"price"`
	}
	if err := q.jwget(addr, &content); err != nil {
		return 0, err
	}
	return strconv.ParseFloat(content.Price, 64)
}

// okx returns the last traded price. OKX writes pairs with a hyphen
// ("BTC-USD"); a plain "BTCUSD" is converted first.
//
//	GET /api/v5/market/ticker?instId=BTC-USD
//	{"code":"0","data":[{"instId":"BTC-USD","last":"112684.0",...}]}
func (q *Quoter) okx(symbol string) (float64, error) {
	addr := q.OkxURL + "?instId=" + url.QueryEscape(hyphenate(symbol))
	var jobj any
	if err := q.jwget(addr, &jobj); err != nil {
		return 0, err
	}
	return jsonpathFloat("$.data[0].last", jobj)
}

// coinbase returns the spot price. Coinbase also uses the hyphenated pair
// form.
//
//	GET /v2/prices/BTC-USD/spot
//	{"data":{"amount":"112684.00","currency":"USD"}}
func (q *Quoter) coinbase(symbol string) (float64, error) {
	addr := fmt.Sprintf("%s/%s/spot", q.CoinbaseURL, hyphenate(symbol))
	var jobj any
	if err := q.jwget(addr, &jobj); err != nil {
		return 0, err
	}
	return jsonpathFloat("$.data.amount", jobj)
}

// stooq returns the latest daily close for a US stock or ETF. Stooq expects
// lower-case tickers suffixed with the market (".us"), and answers with a
// one-record CSV:
//
//	Symbol,Date,Time,Open,High,Low,Close,Volume
func (q *Quoter) stooq(symbol string) (float64, error) {
	ticker := strings.ToLower(symbol)
	if !strings.Contains(ticker, ".") {
		ticker += ".us"
	}
	addr := fmt.Sprintf("%s?s=%s&i=d", q.StooqURL, url.QueryEscape(ticker))
	body, err := q.twget(addr, map[string]string{"User-Agent": "Mozilla/5.0"})
	if err != nil {
		return 0, err
	}
	lines := strings.Split(strings.TrimSpace(body), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	fields := strings.Split(last, ",")
	if len(fields) < 7 {
		return 0, fmt.Errorf("unexpected stooq response %q", last)
	}
	return strconv.ParseFloat(fields[6], 64)
}

// hyphenate converts a plain pair like "BTCUSD" to the "BTC-USD" form used
// by OKX and Coinbase. Symbols already containing a hyphen pass through.
func hyphenate(symbol string) string {
	symbol = strings.ToUpper(symbol)
	if strings.Contains(symbol, "-") || len(symbol) <= 3 {
		return symbol
	}
	return symbol[:3] + "-" + symbol[3:]
}

// jsonpathFloat extracts a numeric value at path from a decoded JSON
// document. The APIs are inconsistent about numbers versus strings, both are
// accepted.
func jsonpathFloat(path string, jobj any) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("value at %q is neither a number nor a string: %v", path, jval)
	}
}
