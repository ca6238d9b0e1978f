package ptrcell

import (
	"fmt"
	"sync/atomic"
	"unsafe"
)

// Cell is a lock-free container holding at most one value of type T.
//
// The cell stores its value externally: instead of owning the value
// directly, it holds the address of a leaked allocation and synchronizes
// by atomically manipulating that address. Its in-memory representation is
// exactly one pointer, and a nil pointer is an empty cell. The zero value
// is an empty cell, safe to use.
//
// All methods except Get may be called concurrently from any number of
// goroutines without external locking.
type Cell[T any] struct {
	// nil, or the address of a leaked T that this cell exclusively owns.
	ptr unsafe.Pointer
}

// Of constructs a cell holding value. An empty cell is just the zero
// value: var cell ptrcell.Cell[T].
func Of[T any](value T) Cell[T] {
	return Cell[T]{ptr: Leak(value)}
}

// FromRaw constructs a cell that owns the allocation addr points to. A nil
// addr is valid and yields an empty cell.
//
// addr must be nil or have been produced by Leak of the same type T, and
// must not be reclaimed or handed to another cell afterwards; the new cell
// is its sole owner.
func FromRaw[T any](addr unsafe.Pointer) Cell[T] {
	return Cell[T]{ptr: addr}
}

// Replace stores value in the cell and returns what the cell held before,
// with ok reporting whether there was a previous value. The exchange is a
// single atomic step: ownership of the displaced value transfers to the
// caller at the instant of the swap.
func (c *Cell[T]) Replace(value T, sem Semantics) (prev T, ok bool) {
	old := c.exchange(Leak(value), sem)
	return Reclaim[T](old)
}

// Take empties the cell and returns what it held, with ok reporting
// whether there was a value. It is Replace with absence.
func (c *Cell[T]) Take(sem Semantics) (prev T, ok bool) {
	old := c.exchange(nil, sem)
	return Reclaim[T](old)
}

// Set stores value in the cell, discarding whatever it held before. Use it
// when the previous value doesn't matter; unlike Replace it is a plain
// atomic store with sem's write ordering.
func (c *Cell[T]) Set(value T, sem Semantics) {
	atomic.StorePointer(&c.ptr, Leak(value))
}

// Clear empties the cell, discarding whatever it held. It is Set with
// absence.
func (c *Cell[T]) Clear(sem Semantics) {
	atomic.StorePointer(&c.ptr, nil)
}

// SwapWith exchanges the contents of the two cells. The receiver may be
// shared, but the caller must hold other exclusively for the duration of
// the call: the receiver is swapped atomically and other is then written
// plainly, which is only sound because no one else can observe other.
func (c *Cell[T]) SwapWith(other *Cell[T], sem Semantics) {
	other.ptr = c.exchange(other.ptr, sem)
}

// Get returns a pointer to the cell's value, or nil if the cell is empty.
//
// The caller must hold the cell exclusively for the lifetime of the
// returned pointer: any concurrent Replace, Take, Set, or SwapWith hands
// the allocation to another owner while the pointer still refers to it.
func (c *Cell[T]) Get() *T {
	return (*T)(atomic.LoadPointer(&c.ptr))
}

// Empty reports whether the cell currently holds no value.
func (c *Cell[T]) Empty(sem Semantics) bool {
	return atomic.LoadPointer(&c.ptr) == nil
}

// Raw returns the address the cell currently holds without taking
// ownership of it. The cell (or whoever dislodges the address next) keeps
// ownership, so the address may be reclaimed by another goroutine at any
// moment after the load; dereferencing it requires externally established
// exclusivity.
func (c *Cell[T]) Raw(sem Semantics) unsafe.Pointer {
	return atomic.LoadPointer(&c.ptr)
}

// String formats the cell by the address it holds.
func (c *Cell[T]) String() string {
	return fmt.Sprintf("Cell(%p)", c.Raw(Relaxed))
}

// exchange atomically swaps the slot's address, using at least the
// strength sem.ReadWrite() resolves to. sync/atomic is sequentially
// consistent, so every strength is satisfied; see Ordering.
func (c *Cell[T]) exchange(addr unsafe.Pointer, sem Semantics) unsafe.Pointer {
	return atomic.SwapPointer(&c.ptr, addr)
}
