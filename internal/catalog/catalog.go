// Package catalog owns the product catalog and its flat-file persistence.
package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/quickmart/register/internal/model"
	"github.com/quickmart/register/internal/money"
	"github.com/quickmart/register/internal/obs"
)

// Store maps product names to catalog items and round-trips them through a
// line-oriented text file. Names are case-sensitive and unique. Listings are
// returned in file order so positional lookups stay stable across calls.
type Store struct {
	path  string
	mu    sync.RWMutex
	items map[string]model.Item
	names []string // insertion order
}

// New creates an empty Store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path, items: make(map[string]model.Item)}
}

// Load reads the catalog file, one item per line in the form
//
//	Name: quantity, $regularPrice, $memberPrice, TaxStatus
//
// Blank lines are skipped. A malformed line is logged and skipped without
// aborting the load, and items parsed before a bad line are kept — a partial
// load is possible. That tolerance is kept for compatibility with existing
// catalog files, not as a consistency guarantee.
func (s *Store) Load() error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]model.Item)
	s.names = nil

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		it, err := parseLine(line)
		if err != nil {
			obs.Logger.Warn("catalog_line_skipped", "line", line, "error", err)
			continue
		}
		if _, ok := s.items[it.Name]; !ok {
			s.names = append(s.names, it.Name)
		}
		s.items[it.Name] = it
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	return nil
}

// parseLine splits on the first colon, then on ", " into exactly four
// fields: quantity, regular price, member price, tax status. Any tax status
// other than the literal "Taxable" loads as exempt.
func parseLine(line string) (model.Item, error) {
	name, rest, ok := strings.Cut(line, ":")
	if !ok {
		return model.Item{}, fmt.Errorf("missing name separator")
	}
	fields := strings.Split(strings.TrimSpace(rest), ", ")
	if len(fields) != 4 {
		return model.Item{}, fmt.Errorf("want 4 fields, got %d", len(fields))
	}
	qty, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return model.Item{}, fmt.Errorf("quantity: %w", err)
	}
	reg, err := money.Parse(fields[1])
	if err != nil {
		return model.Item{}, fmt.Errorf("regular price: %w", err)
	}
	mem, err := money.Parse(fields[2])
	if err != nil {
		return model.Item{}, fmt.Errorf("member price: %w", err)
	}
	return model.Item{
		Name:         strings.TrimSpace(name),
		Stock:        qty,
		RegularPrice: reg,
		MemberPrice:  mem,
		Taxable:      strings.TrimSpace(fields[3]) == "Taxable",
	}, nil
}

// Save rewrites the whole catalog file in load order. Prices are rendered as
// fixed two-decimal amounts, so precision beyond two decimals captured at
// load time is lost on the round-trip.
func (s *Store) Save() error {
	s.mu.RLock()
	var b strings.Builder
	for _, name := range s.names {
		it := s.items[name]
		fmt.Fprintf(&b, "%s: %d, %s, %s, %s\n",
			it.Name, it.Stock,
			money.Format(it.RegularPrice), money.Format(it.MemberPrice),
			taxStatus(it.Taxable))
	}
	s.mu.RUnlock()

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace catalog: %w", err)
	}
	return nil
}

func taxStatus(taxable bool) string {
	if taxable {
		return "Taxable"
	}
	return "Tax-Exempt"
}

// Get returns the item with the given name.
func (s *Store) Get(name string) (model.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[name]
	return it, ok
}

// Has reports whether an item with the given name exists.
func (s *Store) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[name]
	return ok
}

// Items returns a copy of all items in load order.
func (s *Store) Items() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Item, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.items[name])
	}
	return out
}

// ItemAt returns the item at the given 1-based position in the listing.
func (s *Store) ItemAt(pos int) (model.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pos < 1 || pos > len(s.names) {
		return model.Item{}, false
	}
	return s.items[s.names[pos-1]], true
}

// Len returns the number of items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.names)
}

// SetStock overwrites an item's stock count unconditionally. Callers compute
// the new quantity; this is not a decrement. Unknown names are a no-op.
func (s *Store) SetStock(name string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[name]
	if !ok {
		return
	}
	it.Stock = qty
	s.items[name] = it
}
