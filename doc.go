// package ptrcell provides a lock-free, single-slot cell for moving values
// in and out of shared storage.
//
// A Cell holds at most one value behind a single atomic pointer. It is
// useful when the access pattern is "take the current value out, compute
// something, put a new value back" rather than "lock, mutate in place,
// unlock". There are no locks anywhere: every operation is a constant
// number of atomic instructions plus at most one allocation.
//
//	// Construct a cell
//	cell := ptrcell.Of(uint16(0x81D))
//
//	// Replace the value inside the cell
//	prev, ok := cell.Replace(2047, ptrcell.Coupled) // 0x81D, true
//
//	// Check whether the cell is empty
//	empty := cell.Empty(ptrcell.Coupled) // false
//
//	// Take the value out of the cell
//	value, ok := cell.Take(ptrcell.Coupled) // 2047, true
//
// The tradeoff is access to the cell's value: to see what is stored inside
// a cell you either take the value out of it or hold the cell exclusively.
// There is no shared in-place access. If you need to update a shared value
// through pointers while other goroutines observe it, you want a sync.Mutex
// or sync.RWMutex, not this package.
//
// Every operation takes a Semantics value declaring how much cross-goroutine
// ordering the caller relies on:
//
//	Ordered: a single total order over all operations, strictest
//	Coupled: release/acquire pairing, the usual choice
//	Relaxed: no ordering constraints, cheapest
//
// Coupled is what you'd typically use. Relaxed is appropriate when ordering
// is already established by other means, for example when the cell is only
// reachable from one goroutine, or when a channel operation or WaitGroup
// already fences the accesses. See the Semantics type for what each
// strength resolves to per operation class.
//
// As an example of the kind of algorithm the cell supports, two goroutines
// can cooperate to find the maximum of a sequence without ever blocking
// each other, by each repeatedly swapping their candidate in and putting
// the larger value back whenever the swap turns out to have decreased the
// cell's content:
//
//	func maximize(sequence []int, buffer *ptrcell.Cell[int]) {
//		for _, item := range sequence {
//			value := item
//			for {
//				prev, ok := buffer.Replace(value, ptrcell.Relaxed)
//				if !ok || prev <= value {
//					break
//				}
//				// the swap decreased the buffer, insert the old value back
//				value = prev
//			}
//		}
//	}
//
// Values never get lost in such races: ownership of the displaced value
// transfers to whichever call dislodged it, exactly once.
package ptrcell
