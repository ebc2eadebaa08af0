// Package pool holds the bounded FIFO of ingested lines the Engine scores
// against the current query. It evicts the oldest line once it is full so
// ingestion of an unbounded stream never grows memory without limit.
package pool

import "github.com/jhbabon/scout/internal/text"

// Limit is the maximum number of lines the pool retains. It mirrors the
// original implementation's bound on how much of a stream is kept
// searchable at once; lines beyond it are dropped oldest-first.
const Limit = 100000

// Pool is a bounded, oldest-evicting FIFO of ingested lines.
type Pool struct {
	items []*text.Text
	limit int
}

// New returns an empty pool with the default Limit.
func New() *Pool {
	return &Pool{limit: Limit}
}

// NewWithLimit returns an empty pool with a caller-supplied limit, mainly
// for tests that want to exercise eviction without pushing 100000 lines.
func NewWithLimit(limit int) *Pool {
	return &Pool{limit: limit}
}

// Push appends t to the pool, evicting the oldest entry first if the pool
// is already at its limit.
func (p *Pool) Push(t *text.Text) {
	if len(p.items) >= p.limit {
		p.items = p.items[1:]
	}
	p.items = append(p.items, t)
}

// Len returns the number of lines currently held.
func (p *Pool) Len() int {
	return len(p.items)
}

// Items returns the pool's contents, oldest first. The returned slice
// aliases the pool's backing array and must be treated as read-only by the
// caller.
func (p *Pool) Items() []*text.Text {
	return p.items
}
