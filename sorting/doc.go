// Package sorting decomposes comparison sorts into step events over an Array.
//
// Producers: Bubble, Selection, Insertion, Merge, Quick (Lomuto partition,
// last element as pivot) and Heap (max-heap). Each emits Compare events for
// every comparison it performs and Swap (or, for Merge, Assign) events for
// every rearrangement, and finishes with one Done event carrying the sorted
// values.
//
// The Array held by the producer is the only copy of the data; Swap and Assign
// events describe mutations already applied to it, so replaying them on the
// input reproduces the final order.
//
// Complexity:
//
//   - Bubble, Selection, Insertion: O(n²) events.
//   - Merge, Heap: O(n log n) events.
//   - Quick: O(n log n) expected, O(n²) on sorted input.
package sorting
