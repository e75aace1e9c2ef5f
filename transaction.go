package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Transaction records a single buy: an amount of USD spent on a quantity of
// an instrument, on a given platform.
//
// The ID is assigned at creation and immutable. The asset class is never
// stored independently, it is derived from the platform on demand.
type Transaction struct {
	ID           string
	Symbol       string
	Platform     Platform
	Amount       Money // USD spent, positive
	Quantity     Quantity
	Timestamp    time.Time // creation time, immutable
	LastModified time.Time // zero until the first edit
}

// NewTransaction creates a transaction with no ID and no timestamp; both are
// assigned by the store on Add. The symbol is normalized to upper case.
func NewTransaction(symbol string, platform Platform, amount Money, qty Quantity) Transaction {
	return Transaction{
		Symbol:   strings.ToUpper(symbol),
		Platform: platform,
		Amount:   amount,
		Quantity: qty,
	}
}

// AssetClass returns the derived asset class of this transaction.
func (t Transaction) AssetClass() AssetClass { return t.Platform.AssetClass() }

// Validate checks the transaction invariants and returns an error collecting
// all failures.
func (t Transaction) Validate() error {
	var errs []error
	if t.Symbol == "" {
		errs = append(errs, errors.New("symbol is required"))
	}
	if !t.Amount.IsPositive() {
		errs = append(errs, fmt.Errorf("amount must be positive, got %s", t.Amount))
	}
	if !t.Quantity.IsPositive() {
		errs = append(errs, fmt.Errorf("qty must be positive, got %s", t.Quantity))
	}
	return errors.Join(errs...)
}

// Update describes a partial edit of a transaction. Nil fields are left
// untouched.
type Update struct {
	Symbol   *string
	Platform *Platform
	Amount   *Money
	Quantity *Quantity
}

// IsZero reports whether the update would change nothing.
func (u Update) IsZero() bool {
	return u.Symbol == nil && u.Platform == nil && u.Amount == nil && u.Quantity == nil
}

// apply merges the update into the transaction and revalidates it.
func (t Transaction) apply(u Update, now time.Time) (Transaction, error) {
	if u.Symbol != nil {
		t.Symbol = strings.ToUpper(*u.Symbol)
	}
	if u.Platform != nil {
		t.Platform = *u.Platform
	}
	if u.Amount != nil {
		t.Amount = *u.Amount
	}
	if u.Quantity != nil {
		t.Quantity = *u.Quantity
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	t.LastModified = now
	return t, nil
}

// MarshalJSON writes the transaction with a stable field order. The derived
// asset_class is written too, for compatibility with the historical file
// format, but it is recomputed from the platform on load.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("symbol", t.Symbol)
	w.Append("platform", t.Platform)
	w.Append("amount", t.Amount)
	w.Append("qty", t.Quantity)
	w.Append("timestamp", t.Timestamp.Format(time.RFC3339))
	if !t.LastModified.IsZero() {
		w.Append("last_modified", t.LastModified.Format(time.RFC3339))
	}
	w.Append("asset_class", t.AssetClass().String())
	return w.MarshalJSON()
}

func (t *Transaction) UnmarshalJSON(b []byte) error {
	var j struct {
		ID           string   `json:"id"`
		Symbol       string   `json:"symbol"`
		Platform     Platform `json:"platform"`
		Amount       Money    `json:"amount"`
		Quantity     Quantity `json:"qty"`
		Timestamp    string   `json:"timestamp"`
		LastModified string   `json:"last_modified"`
		// asset_class is intentionally ignored: it is a pure function of
		// the platform, whatever the file claims.
	}
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	ts, err := parseTimestamp(j.Timestamp)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", j.Timestamp, err)
	}
	var modified time.Time
	if j.LastModified != "" {
		modified, err = parseTimestamp(j.LastModified)
		if err != nil {
			return fmt.Errorf("invalid last_modified %q: %w", j.LastModified, err)
		}
	}
	*t = Transaction{
		ID:           j.ID,
		Symbol:       j.Symbol,
		Platform:     j.Platform,
		Amount:       j.Amount,
		Quantity:     j.Quantity,
		Timestamp:    ts,
		LastModified: modified,
	}
	return nil
}

// parseTimestamp accepts RFC3339 and the zone-less ISO-8601 form written by
// older versions of the tool.
func parseTimestamp(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}
