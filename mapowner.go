package ptrcell

import (
	"runtime"
	"sync/atomic"
	"unsafe"
)

// An Owner is a value that keeps another value of the same type reachable
// through an embedded Cell, the way a list node links to its tail.
type Owner[T any] interface {
	// Slot returns the embedded cell through which the previous content
	// of a mapped cell stays reachable.
	Slot() *Cell[T]
}

// MapOwner replaces c's content with a new value built from that content,
// as one atomic step from any other goroutine's point of view. This makes
// shared linked structures possible: pushing onto a list head is
//
//	type node struct {
//		value string
//		next  ptrcell.Cell[node]
//	}
//
//	func (n *node) Slot() *ptrcell.Cell[node] { return &n.next }
//
//	ptrcell.MapOwner(&head, func(prev ptrcell.Cell[node]) *node {
//		return &node{value: word, next: prev}
//	}, ptrcell.Coupled)
//
// build is called exactly once, with a cell wrapping the content observed
// in c. That cell is a temporary view, not yet owned by the builder:
// another goroutine may dislodge the underlying value before the update
// commits, so build must not take from or otherwise consume it. It should
// store the view into the returned owner so the old content stays
// reachable from the new one.
//
// The update commits with a compare-and-swap. If the slot changed between
// the initial load and the commit, the already-built owner is relinked to
// the newly observed content and the commit retried; build is never
// re-invoked. Retries are unbounded under contention, with a scheduler
// yield between attempts.
func MapOwner[T any, PT interface {
	Owner[T]
	*T
}](c *Cell[T], build func(prev Cell[T]) PT, sem Semantics) {
	addr := atomic.LoadPointer(&c.ptr)

	owner := build(FromRaw[T](addr))
	ownerAddr := unsafe.Pointer(owner)

	// The owner is still private to this goroutine, so its slot can be
	// read and written plainly until the swap publishes it.
	slot := owner.Slot()

	for {
		if atomic.CompareAndSwapPointer(&c.ptr, slot.ptr, ownerAddr) {
			return
		}

		// Lost the race: relink the owner to whatever the slot holds now
		// and try again.
		slot.ptr = atomic.LoadPointer(&c.ptr)
		runtime.Gosched()
	}
}
