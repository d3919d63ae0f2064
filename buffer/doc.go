// Package buffer provides Buffer, an owning, growable float64 array with a
// separate logical length and allocated capacity.
//
// Capacity is managed explicitly: a buffer starts at the configured minimum,
// grows by a fixed step when an append finds it full, and never exceeds the
// configured maximum. All accessors are bounds-checked against the logical
// length and report failures through the sentinel errors in this package.
// A Buffer is not safe for concurrent use.
package buffer
