// Package topk provides a bounded min-heap selector that keeps the K
// best core.Match values seen so far without retaining the rest. Offer
// replaces the root when a new match outranks the current
// worst-of-kept, then calls heap.Fix to restore the heap invariant.
package topk
