package portfolio

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestJSONObjectWriter_Order(t *testing.T) {
	var w jsonObjectWriter
	w.Append("b", 1)
	w.Append("a", "two")
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	want := `{"b":1,"a":"two"}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONObjectWriter_Optional(t *testing.T) {
	var w jsonObjectWriter
	w.Optional("empty", "")
	w.Optional("zero", 0)
	w.Optional("set", "yes")
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	want := `{"set":"yes"}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestTransaction_StableFieldOrder(t *testing.T) {
	tx := NewTransaction("BTCUSD", Binance, M(4000), Q(0.05))
	tx.ID = "ab12cd34"
	tx.Timestamp = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	b, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	// the persisted form keeps a fixed field order, diff-friendly
	fields := []string{`"id"`, `"symbol"`, `"platform"`, `"amount"`, `"qty"`, `"timestamp"`, `"asset_class"`}
	last := -1
	for _, f := range fields {
		i := strings.Index(string(b), f)
		if i < 0 {
			t.Fatalf("field %s missing from %s", f, b)
		}
		if i < last {
			t.Errorf("field %s out of order in %s", f, b)
		}
		last = i
	}

	var back Transaction
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.ID != tx.ID || back.Symbol != tx.Symbol || !back.Amount.Equal(tx.Amount) {
		t.Errorf("round trip changed the transaction: %+v", back)
	}
	if !back.Timestamp.Equal(tx.Timestamp) {
		t.Errorf("round trip changed the timestamp: %s", back.Timestamp)
	}
}
