package buffer

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// EmptyText is the rendering of a buffer with no elements.
const EmptyText = "array is empty"

// Buffer is an owning, growable float64 array. The backing slice always has
// length equal to the capacity; only the first Len() slots are live.
//
// The zero value is not usable; construct buffers with New, FromSlice or
// FromRange.
type Buffer struct {
	elems    []float64
	size     int
	limits   Limits
	released bool
}

// New returns an empty Buffer with room for capacity elements. Requests
// below the minimum capacity (including negative ones) are raised to it.
func New(capacity int, opts ...Option) (*Buffer, error) {
	l, err := resolveLimits(opts)
	if err != nil {
		return nil, err
	}
	if capacity > l.Max {
		return nil, fmt.Errorf("%w: requested %d, max %d", ErrCapacityExceeded, capacity, l.Max)
	}
	return &Buffer{
		elems:  make([]float64, l.clamp(capacity)),
		limits: l,
	}, nil
}

// FromSlice returns a Buffer holding a copy of values. The buffer starts at
// the minimum capacity and grows through PushBack, so its final capacity
// follows the step policy rather than len(values).
func FromSlice(values []float64, opts ...Option) (*Buffer, error) {
	b, err := New(0, opts...)
	if err != nil {
		return nil, err
	}
	if len(values) > b.limits.Max {
		return nil, fmt.Errorf("%w: %d values, max %d", ErrCapacityExceeded, len(values), b.limits.Max)
	}
	for _, v := range values {
		if err := b.PushBack(v); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// FromRange returns a Buffer holding values[first:last]. It fails with
// ErrInvalidRange when first is after last and with ErrIndexOutOfRange when
// either bound lies outside [0, len(values)].
func FromRange(values []float64, first, last int, opts ...Option) (*Buffer, error) {
	if first > last {
		return nil, fmt.Errorf("%w: first %d after last %d", ErrInvalidRange, first, last)
	}
	if first < 0 || last > len(values) {
		return nil, fmt.Errorf("%w: range [%d, %d) over %d values", ErrIndexOutOfRange, first, last, len(values))
	}
	return FromSlice(values[first:last], opts...)
}

// Len returns the number of live elements.
func (b *Buffer) Len() int {
	return b.size
}

// Cap returns the number of allocated slots.
func (b *Buffer) Cap() int {
	return len(b.elems)
}

// Limits returns the capacity policy of b.
func (b *Buffer) Limits() Limits {
	return b.limits
}

// Released reports whether Release has been called.
func (b *Buffer) Released() bool {
	return b.released
}

// Elements returns the live elements. The slice shares storage with b and
// is invalidated by the next reallocation.
func (b *Buffer) Elements() []float64 {
	return b.elems[:b.size:b.size]
}

// At returns a reference to element i. The pointer stays valid until the
// next reallocation of b.
func (b *Buffer) At(i int) (*float64, error) {
	if err := b.check(i); err != nil {
		return nil, err
	}
	return &b.elems[i], nil
}

// Get returns element i.
func (b *Buffer) Get(i int) (float64, error) {
	if err := b.check(i); err != nil {
		return 0, err
	}
	return b.elems[i], nil
}

// Set stores v at index i.
func (b *Buffer) Set(i int, v float64) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.elems[i] = v
	return nil
}

func (b *Buffer) check(i int) error {
	if b.released {
		return ErrReleased
	}
	if i < 0 || i >= b.size {
		return fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, i, b.size)
	}
	return nil
}

// Resize reallocates storage to exactly n slots, keeping the first
// min(Len(), n) elements. Shrinking below Len() truncates silently.
// Resize(0) drops the storage; Resize(Cap()) does nothing.
func (b *Buffer) Resize(n int) error {
	if b.released {
		return ErrReleased
	}
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCapacity, n)
	}
	if n > b.limits.Max {
		return fmt.Errorf("%w: requested %d, max %d", ErrCapacityExceeded, n, b.limits.Max)
	}
	if n == len(b.elems) {
		return nil
	}
	if n == 0 {
		b.elems = nil
		b.size = 0
		return nil
	}
	grown := make([]float64, n)
	b.size = copy(grown, b.elems[:b.size])
	b.elems = grown
	return nil
}

// Clear drops all elements and replaces the storage with a fresh block of
// exactly the minimum capacity.
func (b *Buffer) Clear() error {
	if b.released {
		return ErrReleased
	}
	b.elems = make([]float64, b.limits.Min)
	b.size = 0
	return nil
}

// PushBack appends v, growing the capacity by the growth step (capped at
// the maximum) when the buffer is full. A full buffer at maximum capacity
// is left unchanged and ErrCapacityExceeded is returned.
func (b *Buffer) PushBack(v float64) error {
	if b.released {
		return ErrReleased
	}
	if b.size == len(b.elems) {
		if len(b.elems) >= b.limits.Max {
			return fmt.Errorf("%w: buffer full at %d", ErrCapacityExceeded, b.limits.Max)
		}
		if err := b.Resize(b.limits.next(len(b.elems))); err != nil {
			return err
		}
	}
	b.elems[b.size] = v
	b.size++
	return nil
}

// PopBack removes the last element. Capacity is not reduced.
func (b *Buffer) PopBack() error {
	if b.released {
		return ErrReleased
	}
	if b.size == 0 {
		return ErrEmptyBuffer
	}
	b.size--
	return nil
}

// Clone returns a deep copy of b with the same length, capacity and limits.
func (b *Buffer) Clone() (*Buffer, error) {
	if b.released {
		return nil, ErrReleased
	}
	c := &Buffer{limits: b.limits}
	c.adopt(b)
	return c, nil
}

// CopyFrom replaces the contents of b with a deep copy of src, including
// its capacity and limits. Copying a buffer onto itself does nothing.
func (b *Buffer) CopyFrom(src *Buffer) error {
	if src == nil {
		return ErrNilSource
	}
	if b == src {
		return nil
	}
	if b.released || src.released {
		return ErrReleased
	}
	b.elems = nil
	b.limits = src.limits
	b.adopt(src)
	return nil
}

func (b *Buffer) adopt(src *Buffer) {
	if len(src.elems) > 0 {
		b.elems = make([]float64, len(src.elems))
		copy(b.elems, src.elems[:src.size])
	}
	b.size = src.size
}

// Release drops the storage for good. Every later operation fails with
// ErrReleased. Calling Release more than once is harmless.
func (b *Buffer) Release() {
	if b.released {
		return
	}
	b.elems = nil
	b.size = 0
	b.released = true
}

// All returns a sequence of index and element reference pairs over the live
// elements. The sequence can be ranged over repeatedly; each pass observes
// the buffer as it is at that time and covers at most the elements that
// were live when the pass started.
func (b *Buffer) All() iter.Seq2[int, *float64] {
	return func(yield func(int, *float64) bool) {
		n := b.size
		for i := 0; i < n && i < b.size; i++ {
			if !yield(i, &b.elems[i]) {
				return
			}
		}
	}
}

// Values returns a sequence of the live element values.
func (b *Buffer) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, p := range b.All() {
			if !yield(*p) {
				return
			}
		}
	}
}

// String renders the live elements with three decimals, separated by
// single spaces. An empty buffer renders as EmptyText.
func (b *Buffer) String() string {
	if b.size == 0 {
		return EmptyText
	}
	var sb strings.Builder
	scratch := make([]byte, 0, 32)
	for i, v := range b.elems[:b.size] {
		if i > 0 {
			sb.WriteByte(' ')
		}
		scratch = strconv.AppendFloat(scratch[:0], v, 'f', 3, 64)
		sb.Write(scratch)
	}
	return sb.String()
}

// WriteTo writes the String rendering of b to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
