package portfolio

import "fmt"

// Platform identifies the exchange or brokerage a transaction was made on.
// It is a closed set: parsing happens once at validation time, and every
// other part of the system dispatches on the typed value.
type Platform int

const (
	Binance Platform = iota
	Okx
	Coinbase
	// StockEtf stands for any US stock/ETF brokerage account.
	StockEtf
)

// AssetClass partitions holdings into broad categories for the class-level
// summary.
type AssetClass int

const (
	Crypto AssetClass = iota
	Stock
)

// Platforms lists all known platforms in their canonical order.
var Platforms = []Platform{Binance, Okx, Coinbase, StockEtf}

func (p Platform) String() string {
	switch p {
	case Binance:
		return "binance"
	case Okx:
		return "okx"
	case Coinbase:
		return "coinbase"
	case StockEtf:
		return "stock_etf"
	default:
		return "unknown"
	}
}

// ParsePlatform parses a string into a Platform.
func ParsePlatform(s string) (Platform, error) {
	switch s {
	case "binance":
		return Binance, nil
	case "okx":
		return Okx, nil
	case "coinbase":
		return Coinbase, nil
	case "stock_etf", "fidelity":
		// "fidelity" is the historical name for the brokerage platform,
		// kept as an accepted spelling for old data files.
		return StockEtf, nil
	default:
		return 0, fmt.Errorf("unknown platform %q (expected one of binance, okx, coinbase, stock_etf)", s)
	}
}

// AssetClass returns the asset class a platform trades in. It is a pure
// function of the platform and is never stored independently.
func (p Platform) AssetClass() AssetClass {
	if p == StockEtf {
		return Stock
	}
	return Crypto
}

func (c AssetClass) String() string {
	if c == Stock {
		return "stock"
	}
	return "crypto"
}

// MarshalJSON persists the platform under its canonical name.
func (p Platform) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", p.String())), nil
}

func (p *Platform) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("platform must be a JSON string, got %s", string(b))
	}
	parsed, err := ParsePlatform(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
