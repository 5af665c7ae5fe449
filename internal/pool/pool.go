// Package pool provides an arena of reusable objects with explicit
// active/inactive tagging and an index-based free-list.
//
// Slots are never removed. Releasing a slot pushes its index onto the
// free-list and the next Acquire revives it before the arena grows.
package pool

// Pool is an arena of T values addressed by slot index.
// It is not safe for concurrent use.
type Pool[T any] struct {
	items  []T
	active []bool
	free   []int
	newFn  func() T
}

// New creates an empty pool. newFn allocates the value for a fresh slot.
func New[T any](newFn func() T) *Pool[T] {
	return &Pool[T]{newFn: newFn}
}

// Acquire marks a slot active and returns its index and value.
// An inactive slot is revived when one exists; revived reports which happened.
func (p *Pool[T]) Acquire() (index int, item T, revived bool) {
	if n := len(p.free); n > 0 {
		index = p.free[n-1]
		p.free = p.free[:n-1]
		p.active[index] = true
		return index, p.items[index], true
	}

	index = len(p.items)
	item = p.newFn()
	p.items = append(p.items, item)
	p.active = append(p.active, true)
	return index, item, false
}

// Release marks a slot inactive. It returns false when the index is out of
// range or the slot is already inactive, so a double release is a no-op.
func (p *Pool[T]) Release(index int) bool {
	if index < 0 || index >= len(p.items) || !p.active[index] {
		return false
	}
	p.active[index] = false
	p.free = append(p.free, index)
	return true
}

// Active reports whether the slot is in use.
func (p *Pool[T]) Active(index int) bool {
	return index >= 0 && index < len(p.active) && p.active[index]
}

// Len returns the number of allocated slots.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// ActiveCount returns the number of slots in use.
func (p *Pool[T]) ActiveCount() int {
	return len(p.items) - len(p.free)
}

// Each calls fn for every active slot in index order.
func (p *Pool[T]) Each(fn func(index int, item T)) {
	for i, item := range p.items {
		if p.active[i] {
			fn(i, item)
		}
	}
}
