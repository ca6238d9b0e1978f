package ptrcell

// Ordering is a resolved memory-ordering strength for one class of atomic
// operations on a cell.
//
// Go's sync/atomic executes every operation with sequentially consistent
// ordering, which satisfies all of the strengths below. The resolved
// Ordering therefore records the minimum strength an operation requires
// rather than changing what instructions run; the distinction matters when
// porting the cell to a backend with weaker atomics (TinyGo targets, cgo
// shims) and is what callers and tests reason about.
type Ordering uint8

const (
	// OrderingRelaxed imposes no cross-goroutine ordering.
	OrderingRelaxed Ordering = iota
	// OrderingAcquire makes prior releases visible to this read.
	OrderingAcquire
	// OrderingRelease makes this write visible to later acquires.
	OrderingRelease
	// OrderingAcqRel combines acquire and release for read-modify-write.
	OrderingAcqRel
	// OrderingSeqCst places the operation in a single global total order.
	OrderingSeqCst
)

// String returns the name of the ordering.
func (o Ordering) String() string {
	switch o {
	case OrderingRelaxed:
		return "Relaxed"
	case OrderingAcquire:
		return "Acquire"
	case OrderingRelease:
		return "Release"
	case OrderingAcqRel:
		return "AcqRel"
	case OrderingSeqCst:
		return "SeqCst"
	default:
		return "Unknown"
	}
}

// Semantics selects how strongly a cell's atomic operations synchronize
// with each other across goroutines. If you're not sure which to use,
// choose Coupled.
type Semantics uint8

const (
	// Relaxed provides no ordering guarantee beyond the atomicity of the
	// operation itself. Use it when the cell is confined to one goroutine
	// or when ordering is established by other means.
	Relaxed Semantics = iota

	// Coupled pairs a release on every write with an acquire on every
	// read, so a write that happens before a given read is visible to it.
	// This is how memory operations are commonly assumed to behave, and
	// is the semantics you typically want.
	Coupled

	// Ordered places all operations using it in a single global total
	// order. The strongest guarantee and the most overhead.
	Ordered
)

// Read returns the ordering used for read-only observations of the slot.
func (s Semantics) Read() Ordering {
	switch s {
	case Ordered:
		return OrderingSeqCst
	case Coupled:
		return OrderingAcquire
	default:
		return OrderingRelaxed
	}
}

// Write returns the ordering used for write-only replacements of the slot,
// where no prior value is returned.
func (s Semantics) Write() Ordering {
	switch s {
	case Ordered:
		return OrderingSeqCst
	case Coupled:
		return OrderingRelease
	default:
		return OrderingRelaxed
	}
}

// ReadWrite returns the ordering used for atomic exchanges and
// compare-and-swaps of the slot.
func (s Semantics) ReadWrite() Ordering {
	switch s {
	case Ordered:
		return OrderingSeqCst
	case Coupled:
		return OrderingAcqRel
	default:
		return OrderingRelaxed
	}
}

// String returns the name of the semantics.
func (s Semantics) String() string {
	switch s {
	case Relaxed:
		return "Relaxed"
	case Coupled:
		return "Coupled"
	case Ordered:
		return "Ordered"
	default:
		return "Unknown"
	}
}
