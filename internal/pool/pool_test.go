package pool

import (
	"strconv"
	"testing"

	"github.com/jhbabon/scout/internal/text"
)

func TestPushWithinLimitKeepsAll(t *testing.T) {
	p := NewWithLimit(10)
	for i := 0; i < 5; i++ {
		p.Push(text.Build(strconv.Itoa(i)))
	}

	if p.Len() != 5 {
		t.Errorf("Len() = %d, want 5", p.Len())
	}
}

func TestPushBeyondLimitEvictsOldest(t *testing.T) {
	p := NewWithLimit(3)
	for i := 0; i < 5; i++ {
		p.Push(text.Build(strconv.Itoa(i)))
	}

	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}

	items := p.Items()
	if items[0].String() != "2" {
		t.Errorf("oldest surviving item = %q, want %q", items[0].String(), "2")
	}
	if items[len(items)-1].String() != "4" {
		t.Errorf("newest item = %q, want %q", items[len(items)-1].String(), "4")
	}
}

func TestPoolSizeBoundedUnderHeavyIngestion(t *testing.T) {
	p := New()
	for i := 0; i < 200000; i++ {
		p.Push(text.Build(strconv.Itoa(i)))
	}

	if p.Len() > Limit {
		t.Errorf("Len() = %d, exceeds Limit %d", p.Len(), Limit)
	}
}
