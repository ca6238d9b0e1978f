package ptrcell

import "unsafe"

// Leak moves value into a fresh heap allocation and returns the
// allocation's address with its type erased. The result is never nil:
// absence of a value is represented by the nil pointer itself, not by an
// allocation.
//
// Leak is the producing half of the cell's ownership-transfer seam. The
// default API (Of, Replace, Take, Set) never requires calling it; it
// exists so external owners can hand allocations to FromRaw or compare
// against Raw.
func Leak[T any](value T) unsafe.Pointer {
	boxed := new(T)
	*boxed = value
	return unsafe.Pointer(boxed)
}

// Reclaim is the inverse of Leak: nil yields no value, and an address
// produced by a matching Leak yields the value it contains. The backing
// allocation is freed by the garbage collector once the last reference to
// it dies.
//
// The address must be nil or come from Leak of the same type T, and the
// caller must not dereference it afterwards if the cell it was taken from
// may still be shared. Reclaim keeps no bookkeeping of its own.
func Reclaim[T any](addr unsafe.Pointer) (T, bool) {
	if addr == nil {
		var zero T
		return zero, false
	}
	return *(*T)(addr), true
}
