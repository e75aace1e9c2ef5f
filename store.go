package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrNotFound is returned by Edit and Delete when no transaction has the
// requested ID.
var ErrNotFound = errors.New("transaction not found")

// CorruptError reports a data file that exists but cannot be parsed.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("data file %q is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// idLength is the length of generated transaction IDs. Short enough to type,
// sparse enough that collisions are regenerated away in practice.
const idLength = 8

// Store is the durable mapping from transaction ID to transaction. It is
// loaded wholesale from a single JSON file and rewritten wholesale after
// every mutation.
//
// Concurrent invocations of the tool race on the same file with
// last-writer-wins semantics. That is the documented policy for a
// single-user local tool, not a gap: there is no locking.
type Store struct {
	path         string
	transactions map[string]Transaction
	lastUpdated  time.Time

	now   func() time.Time // stubbed in tests
	newID func() string
}

// NewStore creates an empty store persisting to path.
func NewStore(path string) *Store {
	return &Store{
		path:         path,
		transactions: make(map[string]Transaction),
		now:          time.Now,
		newID:        generateID,
	}
}

func generateID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:idLength]
}

// Open loads the store from path. A missing file yields an empty store; a
// file that exists but does not parse yields a *CorruptError.
func Open(path string) (*Store, error) {
	s := NewStore(path)
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read data file %q: %w", path, err)
	}

	var j struct {
		Transactions map[string]Transaction `json:"transactions"`
		LastUpdated  string                 `json:"last_updated"`
	}
	if err := json.Unmarshal(content, &j); err != nil {
		return nil, &CorruptError{Path: path, Err: err}
	}
	for id, tx := range j.Transactions {
		if id != tx.ID {
			return nil, &CorruptError{Path: path, Err: fmt.Errorf("transaction keyed %q carries id %q", id, tx.ID)}
		}
		s.transactions[id] = tx
	}
	if j.LastUpdated != "" {
		if s.lastUpdated, err = parseTimestamp(j.LastUpdated); err != nil {
			return nil, &CorruptError{Path: path, Err: fmt.Errorf("invalid last_updated: %w", err)}
		}
	}
	return s, nil
}

// Path returns the file this store persists to.
func (s *Store) Path() string { return s.path }

// Len returns the number of transactions in the store.
func (s *Store) Len() int { return len(s.transactions) }

// LastUpdated returns the time of the last persisted mutation.
func (s *Store) LastUpdated() time.Time { return s.lastUpdated }

// Get returns the transaction with the given ID.
func (s *Store) Get(id string) (Transaction, bool) {
	tx, ok := s.transactions[id]
	return tx, ok
}

// Transactions returns all transactions, newest first. The order is
// deterministic run-to-run: timestamp descending, ID as tiebreak.
func (s *Store) Transactions() []Transaction {
	list := make([]Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		list = append(list, tx)
	}
	slices.SortFunc(list, func(a, b Transaction) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return list
}

// Add validates tx, assigns it an ID and creation timestamp, and persists
// the store. On the (negligible) chance of an ID collision a fresh ID is
// generated.
func (s *Store) Add(tx Transaction) (Transaction, error) {
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	id := s.newID()
	for _, taken := s.transactions[id]; taken; _, taken = s.transactions[id] {
		id = s.newID()
	}
	tx.ID = id
	if tx.Timestamp.IsZero() {
		tx.Timestamp = s.now()
	}
	s.transactions[id] = tx
	if err := s.Save(); err != nil {
		delete(s.transactions, id)
		return Transaction{}, err
	}
	return tx, nil
}

// Edit applies a partial update to the transaction with the given ID and
// persists the store. Fields not present in the update are left untouched.
func (s *Store) Edit(id string, u Update) (Transaction, error) {
	tx, ok := s.transactions[id]
	if !ok {
		return Transaction{}, fmt.Errorf("cannot edit %q: %w", id, ErrNotFound)
	}
	edited, err := tx.apply(u, s.now())
	if err != nil {
		return Transaction{}, err
	}
	s.transactions[id] = edited
	if err := s.Save(); err != nil {
		s.transactions[id] = tx
		return Transaction{}, err
	}
	return edited, nil
}

// Delete removes the transaction with the given ID and persists the store.
func (s *Store) Delete(id string) (Transaction, error) {
	tx, ok := s.transactions[id]
	if !ok {
		return Transaction{}, fmt.Errorf("cannot delete %q: %w", id, ErrNotFound)
	}
	delete(s.transactions, id)
	if err := s.Save(); err != nil {
		s.transactions[id] = tx
		return Transaction{}, err
	}
	return tx, nil
}

// MarshalJSON writes the whole store with a stable top-level field order.
func (s *Store) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("transactions", s.transactions)
	w.Append("last_updated", s.lastUpdated.Format(time.RFC3339))
	return w.MarshalJSON()
}

// Save rewrites the whole data file. The content is written to a temporary
// file in the same directory and renamed over the target, so a concurrent
// reader never observes a half-written file.
func (s *Store) Save() error {
	s.lastUpdated = s.now()

	content, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode data file: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".ptrack-*.json")
	if err != nil {
		return fmt.Errorf("cannot create temp file in %q: %w", dir, err)
	}
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot write %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot close %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot replace %q: %w", s.path, err)
	}
	return nil
}
