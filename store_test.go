package portfolio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "portfolio_data.json"))
}

func btc() Transaction {
	return NewTransaction("btcusd", Binance, M(4000), Q(0.05))
}

func TestStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	a, err := s.Add(btc())
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	b, err := s.Add(NewTransaction("AAPL", StockEtf, M(1500), Q(10)))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	loaded, err := Open(s.Path())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("got %d transactions, want 2", loaded.Len())
	}
	for _, want := range []Transaction{a, b} {
		got, ok := loaded.Get(want.ID)
		if !ok {
			t.Fatalf("transaction %q lost in round trip", want.ID)
		}
		if got.Symbol != want.Symbol || got.Platform != want.Platform {
			t.Errorf("got %s/%s, want %s/%s", got.Platform, got.Symbol, want.Platform, want.Symbol)
		}
		if !got.Amount.Equal(want.Amount) || !got.Quantity.Equal(want.Quantity) {
			t.Errorf("got amount=%s qty=%s, want amount=%s qty=%s", got.Amount, got.Quantity, want.Amount, want.Quantity)
		}
		if !got.Timestamp.Equal(want.Timestamp.Truncate(time.Second)) {
			t.Errorf("got timestamp %s, want %s", got.Timestamp, want.Timestamp)
		}
	}
}

func TestStore_SymbolUppercased(t *testing.T) {
	s := newTestStore(t)
	tx, err := s.Add(btc())
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if tx.Symbol != "BTCUSD" {
		t.Errorf("got symbol %q, want BTCUSD", tx.Symbol)
	}
}

func TestStore_UniqueIDs(t *testing.T) {
	s := newTestStore(t)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		tx, err := s.Add(btc())
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if len(tx.ID) != idLength {
			t.Fatalf("got id %q, want %d characters", tx.ID, idLength)
		}
		if seen[tx.ID] {
			t.Fatalf("duplicate id %q", tx.ID)
		}
		seen[tx.ID] = true
	}
}

func TestStore_IDCollisionRegenerates(t *testing.T) {
	s := newTestStore(t)
	ids := []string{"same0000", "same0000", "same0000", "fresh000"}
	s.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	first, err := s.Add(btc())
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	second, err := s.Add(btc())
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if first.ID != "same0000" || second.ID != "fresh000" {
		t.Errorf("got ids %q and %q, want same0000 and fresh000", first.ID, second.ID)
	}
}

func TestStore_AddRejectsInvalid(t *testing.T) {
	s := newTestStore(t)
	cases := []Transaction{
		NewTransaction("", Binance, M(4000), Q(0.05)),
		NewTransaction("BTCUSD", Binance, M(0), Q(0.05)),
		NewTransaction("BTCUSD", Binance, M(-1), Q(0.05)),
		NewTransaction("BTCUSD", Binance, M(4000), Q(0)),
	}
	for _, tx := range cases {
		if _, err := s.Add(tx); err == nil {
			t.Errorf("Add(%+v) succeeded, want validation error", tx)
		}
	}
	if s.Len() != 0 {
		t.Errorf("store contains %d transactions after rejected adds, want 0", s.Len())
	}
	if _, err := os.Stat(s.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("rejected adds must not create the data file")
	}
}

func TestStore_EditPartial(t *testing.T) {
	s := newTestStore(t)
	original, err := s.Add(btc())
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	amount := M(2000)
	edited, err := s.Edit(original.ID, Update{Amount: &amount})
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	if !edited.Amount.Equal(amount) {
		t.Errorf("got amount %s, want %s", edited.Amount, amount)
	}
	if edited.Symbol != original.Symbol || edited.Platform != original.Platform || !edited.Quantity.Equal(original.Quantity) {
		t.Errorf("edit of amount changed other fields: %+v", edited)
	}
	if !edited.Timestamp.Equal(original.Timestamp) {
		t.Errorf("edit changed the creation timestamp")
	}
	if edited.LastModified.IsZero() {
		t.Errorf("edit did not record a modification time")
	}
}

func TestStore_EditNotFound(t *testing.T) {
	s := newTestStore(t)
	amount := M(2000)
	_, err := s.Edit("missing0", Update{Amount: &amount})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestStore_EditRejectsInvalid(t *testing.T) {
	s := newTestStore(t)
	tx, err := s.Add(btc())
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	amount := M(-5)
	if _, err := s.Edit(tx.ID, Update{Amount: &amount}); err == nil {
		t.Fatal("Edit with negative amount succeeded, want validation error")
	}
	kept, _ := s.Get(tx.ID)
	if !kept.Amount.Equal(tx.Amount) {
		t.Errorf("failed edit changed the stored amount to %s", kept.Amount)
	}
}

func TestStore_DeleteThenList(t *testing.T) {
	s := newTestStore(t)
	keep, _ := s.Add(btc())
	gone, _ := s.Add(NewTransaction("ETHUSD", Coinbase, M(1000), Q(0.5)))

	if _, err := s.Delete(gone.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	loaded, err := Open(s.Path())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	for _, tx := range loaded.Transactions() {
		if tx.ID == gone.ID {
			t.Fatalf("deleted transaction %q still listed", gone.ID)
		}
	}
	if _, ok := loaded.Get(keep.ID); !ok {
		t.Fatalf("unrelated transaction %q was lost", keep.ID)
	}
}

func TestStore_DeleteNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Delete("missing0"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestStore_TransactionsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		now = now.Add(time.Minute)
		return now
	}

	first, _ := s.Add(btc())
	second, _ := s.Add(NewTransaction("AAPL", StockEtf, M(1500), Q(10)))

	list := s.Transactions()
	if len(list) != 2 {
		t.Fatalf("got %d transactions, want 2", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Errorf("transactions are not ordered newest first: %q then %q", list[0].ID, list[1].ID)
	}
}

func TestOpen_MissingFileIsEmpty(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Open of a missing file failed: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("got %d transactions, want 0", s.Len())
	}
}

func TestOpen_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio_data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	var corrupt *CorruptError
	if !errors.As(err, &corrupt) {
		t.Fatalf("got %v, want *CorruptError", err)
	}
	if corrupt.Path != path {
		t.Errorf("error names %q, want %q", corrupt.Path, path)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error message %q does not name the file", err)
	}
}

func TestOpen_MismatchedKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio_data.json")
	content := `{"transactions":{"aaaa0000":{"id":"bbbb1111","symbol":"BTCUSD","platform":"binance","amount":1,"qty":1,"timestamp":"2026-08-30T10:00:00Z"}},"last_updated":"2026-08-30T10:00:00Z"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	var corrupt *CorruptError
	if _, err := Open(path); !errors.As(err, &corrupt) {
		t.Fatalf("got %v, want *CorruptError", err)
	}
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Add(btc()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != filepath.Base(s.Path()) {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("data dir contains %v, want only the data file", names)
	}
}
