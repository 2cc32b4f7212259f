// Package idpool implements a dense, vacancy-reusing handle allocator,
// the Go equivalent of the Rust `slab::Slab<T>` the teacher's HWServer
// is built on (see core.rs: `clients: Slab<HWClient>`, `rooms: Slab<HWRoom>`).
// Handles are stable while an entry lives and are only recycled after
// Remove, matching spec.md §3's "opaque dense non-negative integer
// handles... never reused while still referenced".
package idpool

// Pool is a generic slot allocator over T, keyed by dense int ids.
type Pool[T any] struct {
	slots  []slot[T]
	free   []int
	filled int
}

type slot[T any] struct {
	value    T
	occupied bool
}

// New returns an empty Pool with room pre-reserved for capacity entries.
func New[T any](capacity int) *Pool[T] {
	return &Pool[T]{
		slots: make([]slot[T], 0, capacity),
		free:  make([]int, 0, capacity),
	}
}

// Insert places value in a vacant slot (reusing one if available) and
// returns its id.
func (p *Pool[T]) Insert(value T) int {
	if n := len(p.free); n > 0 {
		id := p.free[n-1]
		p.free = p.free[:n-1]
		p.slots[id] = slot[T]{value: value, occupied: true}
		p.filled++
		return id
	}
	id := len(p.slots)
	p.slots = append(p.slots, slot[T]{value: value, occupied: true})
	p.filled++
	return id
}

// Get returns the value at id and whether it is currently occupied.
func (p *Pool[T]) Get(id int) (T, bool) {
	var zero T
	if id < 0 || id >= len(p.slots) || !p.slots[id].occupied {
		return zero, false
	}
	return p.slots[id].value, true
}

// Set overwrites the value at id. The id must be occupied.
func (p *Pool[T]) Set(id int, value T) {
	if id >= 0 && id < len(p.slots) && p.slots[id].occupied {
		p.slots[id].value = value
	}
}

// Contains reports whether id currently holds a live value.
func (p *Pool[T]) Contains(id int) bool {
	return id >= 0 && id < len(p.slots) && p.slots[id].occupied
}

// Remove empties the slot at id, making it eligible for reuse by a
// later Insert.
func (p *Pool[T]) Remove(id int) {
	if id < 0 || id >= len(p.slots) || !p.slots[id].occupied {
		return
	}
	var zero T
	p.slots[id] = slot[T]{value: zero, occupied: false}
	p.free = append(p.free, id)
	p.filled--
}

// Len returns the number of currently occupied slots.
func (p *Pool[T]) Len() int {
	return p.filled
}

// Each calls fn for every occupied id/value pair. Iteration order is
// ascending by id, not insertion order.
func (p *Pool[T]) Each(fn func(id int, value T)) {
	for id, s := range p.slots {
		if s.occupied {
			fn(id, s.value)
		}
	}
}

// Update applies fn to the value at id in place, if occupied.
func (p *Pool[T]) Update(id int, fn func(value T) T) {
	if id >= 0 && id < len(p.slots) && p.slots[id].occupied {
		p.slots[id].value = fn(p.slots[id].value)
	}
}
