// Package handle provides a generation-checked handle table: a small
// arena whose slots are addressed by an index+generation pair packed
// into one opaque integer. Releasing a slot bumps its generation, so a
// stale handle can never resolve to a recycled slot. The bridge uses
// it so that use-after-free and double-free by foreign callers are
// detected errors instead of undefined behavior.
package handle

import (
	"errors"
	"sync"
)

// ErrStaleHandle indicates a handle that was never issued, was already
// released, or refers to a recycled slot.
var ErrStaleHandle = errors.New("handle: stale or released handle")

// Handle is an opaque reference into a Table. The zero Handle is never
// issued and always resolves to ErrStaleHandle.
type Handle uint64

// generationBits splits the packed handle: low bits index the slot,
// high bits carry the generation.
const generationBits = 32

// Table is a generation-checked arena of T values. The table locks
// only its own slot bookkeeping; the values themselves follow the
// usual single-user contract.
type Table[T any] struct {
	mu    sync.Mutex
	slots []slot[T]
	free  []uint32
}

type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// NewTable returns an empty table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{}
}

// Put stores value and returns its handle.
func (t *Table[T]) Put(value T) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		t.slots = append(t.slots, slot[T]{})
		idx = uint32(len(t.slots) - 1)
	}

	s := &t.slots[idx]
	s.value = value
	s.live = true
	// Generation zero is reserved so the zero Handle stays invalid.
	if s.gen == 0 {
		s.gen = 1
	}
	return pack(idx, s.gen)
}

// Get resolves h to its value. Stale handles fail with ErrStaleHandle.
func (t *Table[T]) Get(h Handle) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := t.resolve(h)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.value, nil
}

// Release frees the slot behind h exactly once. A second release of
// the same handle fails with ErrStaleHandle.
func (t *Table[T]) Release(h Handle) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := t.resolve(h)
	if err != nil {
		var zero T
		return zero, err
	}

	value := s.value
	var zero T
	s.value = zero
	s.live = false
	s.gen++
	t.free = append(t.free, uint32(h&(1<<generationBits-1)))
	return value, nil
}

// Len returns the number of live slots.
func (t *Table[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for i := range t.slots {
		if t.slots[i].live {
			n++
		}
	}
	return n
}

func (t *Table[T]) resolve(h Handle) (*slot[T], error) {
	idx := uint32(h & (1<<generationBits - 1))
	gen := uint32(h >> generationBits)
	if gen == 0 || int(idx) >= len(t.slots) {
		return nil, ErrStaleHandle
	}
	s := &t.slots[idx]
	if !s.live || s.gen != gen {
		return nil, ErrStaleHandle
	}
	return s, nil
}

func pack(idx, gen uint32) Handle {
	return Handle(uint64(gen)<<generationBits | uint64(idx))
}
