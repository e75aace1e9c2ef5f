package portfolio

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestCSV_RoundTrip(t *testing.T) {
	when := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	a := NewTransaction("BTCUSD", Binance, M(4000), Q(0.05))
	a.Timestamp = when
	b := NewTransaction("AAPL", StockEtf, M(1500), Q(10))
	b.Timestamp = when.Add(time.Hour)

	var buf bytes.Buffer
	if err := ExportCSV(&buf, []Transaction{a, b}); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	got, err := ImportCSV(&buf)
	if err != nil {
		t.Fatalf("ImportCSV failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d transactions, want 2", len(got))
	}
	for i, want := range []Transaction{a, b} {
		tx := got[i]
		if tx.Symbol != want.Symbol || tx.Platform != want.Platform {
			t.Errorf("row %d: got %s/%s, want %s/%s", i, tx.Platform, tx.Symbol, want.Platform, want.Symbol)
		}
		if !tx.Amount.Equal(want.Amount) || !tx.Quantity.Equal(want.Quantity) {
			t.Errorf("row %d: got amount=%s qty=%s", i, tx.Amount, tx.Quantity)
		}
		if !tx.Timestamp.Equal(want.Timestamp) {
			t.Errorf("row %d: got time %s, want %s", i, tx.Timestamp, want.Timestamp)
		}
		if tx.ID != "" {
			t.Errorf("row %d: imported transaction carries id %q, want none", i, tx.ID)
		}
	}
}

func TestExportCSV_Format(t *testing.T) {
	tx := NewTransaction("BTCUSD", Binance, M(4000), Q(0.05))
	tx.Timestamp = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := ExportCSV(&buf, []Transaction{tx}); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	want := "2026-08-30T10:00:00,BTCUSD,binance,4000,0.05\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestImportCSV_Errors(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"unknown platform", "2026-08-30T10:00:00,BTCUSD,robinhood,4000,0.05"},
		{"bad time", "yesterday,BTCUSD,binance,4000,0.05"},
		{"bad amount", "2026-08-30T10:00:00,BTCUSD,binance,lots,0.05"},
		{"bad qty", "2026-08-30T10:00:00,BTCUSD,binance,4000,some"},
		{"negative amount", "2026-08-30T10:00:00,BTCUSD,binance,-4000,0.05"},
		{"missing fields", "2026-08-30T10:00:00,BTCUSD,binance"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportCSV(strings.NewReader(tc.in)); err == nil {
				t.Errorf("ImportCSV(%q) succeeded, want error", tc.in)
			}
		})
	}
}

func TestImportCSV_AcceptsGUIFile(t *testing.T) {
	// the desktop GUI writes "fidelity" for the brokerage platform
	in := "2026-08-30T10:00:00,QQQM,fidelity,1000,5\n"
	got, err := ImportCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ImportCSV failed: %v", err)
	}
	if len(got) != 1 || got[0].Platform != StockEtf {
		t.Fatalf("got %+v, want one stock_etf transaction", got)
	}
}
