// Package names implements the runtime's property name intern table.
package names

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.veld.sh/veld/internal/core/domain"
)

// Table interns string values by content so that repeated property and
// identifier names share a single heap block. It is safe for concurrent use.
type Table struct {
	mu      sync.RWMutex
	buckets map[uint64][]domain.StringValue
	size    int
}

// NewTable creates an empty intern table.
func NewTable() *Table {
	return &Table{
		buckets: make(map[uint64][]domain.StringValue),
	}
}

// Intern returns the canonical StringValue for units, copying them into the
// table on first sight. Two Intern calls with equal content return values
// backed by the same storage.
func (t *Table) Intern(units []uint16) domain.StringValue {
	key := unitsKey(units)

	t.mu.RLock()
	v, ok := lookup(t.buckets[key], units)
	t.mu.RUnlock()
	if ok {
		return v
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	// Another goroutine may have interned between the lock transitions.
	if v, ok := lookup(t.buckets[key], units); ok {
		return v
	}
	v = domain.New(units)
	t.buckets[key] = append(t.buckets[key], v)
	t.size++
	return v
}

// InternString interns the UTF-16 form of a Go string.
func (t *Table) InternString(s string) domain.StringValue {
	return t.Intern(domain.UnitsOf(s))
}

// Len returns the number of distinct names in the table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// lookup scans a collision bucket for an exact content match.
func lookup(bucket []domain.StringValue, units []uint16) (domain.StringValue, bool) {
	for _, v := range bucket {
		if v.EqualUnits(units) {
			return v, true
		}
	}
	return domain.StringValue{}, false
}

// unitsKey computes the bucket key as the xxhash of the code units fed in
// little-endian byte order.
func unitsKey(units []uint16) uint64 {
	d := xxhash.New()
	var buf [2]byte
	for _, u := range units {
		binary.LittleEndian.PutUint16(buf[:], u)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
