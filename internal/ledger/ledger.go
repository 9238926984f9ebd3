// Package ledger issues durable, monotonically increasing transaction numbers.
package ledger

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/quickmart/register/internal/obs"
)

// Ledger hands out sequential transaction numbers backed by a single-line
// counter file holding the next number to issue. It is independent of cart
// and catalog state. Not safe for concurrent callers; the register runs one
// checkout at a time.
type Ledger struct {
	path string
	next int
}

// Open reads the counter file at path. A missing or unreadable counter
// resets to 1, which can reissue a number already used before a crash — a
// known limitation of the counter file contract, not something Open papers
// over.
func Open(path string) *Ledger {
	l := &Ledger{path: path, next: 1}
	b, err := os.ReadFile(path)
	if err != nil {
		return l
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil || n < 1 {
		obs.Logger.Warn("ledger_counter_reset", "path", path, "error", err)
		return l
	}
	l.next = n
	return l
}

// Next returns the current counter value and persists the incremented
// counter before returning. On a persistence failure the in-memory counter
// has already advanced but no number is returned; callers treat the error as
// fatal to the session.
func (l *Ledger) Next() (int, error) {
	n := l.next
	l.next++
	if err := l.persist(); err != nil {
		return 0, fmt.Errorf("persist transaction counter: %w", err)
	}
	return n, nil
}

func (l *Ledger) persist() error {
	tmp := l.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strconv.Itoa(l.next)+"\n"), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, l.path)
}
