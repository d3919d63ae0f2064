package buffer

import "fmt"

// Default capacity policy.
const (
	DefaultMinCapacity = 10
	DefaultMaxCapacity = 10000
	DefaultGrowthStep  = 10
)

// Limits is the capacity policy carried by every Buffer.
type Limits struct {
	Min  int // capacity floor for construction and Clear
	Max  int // hard capacity ceiling
	Step int // slots added when an append finds the buffer full
}

// DefaultLimits returns the default capacity policy.
func DefaultLimits() Limits {
	return Limits{
		Min:  DefaultMinCapacity,
		Max:  DefaultMaxCapacity,
		Step: DefaultGrowthStep,
	}
}

// Validate reports whether l is usable.
func (l Limits) Validate() error {
	if l.Min < 1 || l.Max < l.Min || l.Step < 1 {
		return fmt.Errorf("%w: min=%d max=%d step=%d", ErrInvalidLimits, l.Min, l.Max, l.Step)
	}
	return nil
}

// clamp maps a requested capacity into [Min, Max]. The caller checks the
// upper bound first so that oversize requests fail instead of clamping.
func (l Limits) clamp(n int) int {
	if n < l.Min {
		return l.Min
	}
	if n > l.Max {
		return l.Max
	}
	return n
}

// next returns the capacity an append grows a full buffer of capacity c to.
func (l Limits) next(c int) int {
	return l.clamp(c + l.Step)
}

// Option configures buffer construction.
type Option func(*Limits)

// WithLimits replaces the whole capacity policy.
func WithLimits(l Limits) Option {
	return func(dst *Limits) {
		*dst = l
	}
}

// WithMinCapacity sets the capacity floor.
func WithMinCapacity(n int) Option {
	return func(l *Limits) {
		l.Min = n
	}
}

// WithMaxCapacity sets the capacity ceiling.
func WithMaxCapacity(n int) Option {
	return func(l *Limits) {
		l.Max = n
	}
}

// WithGrowthStep sets the number of slots added per growth.
func WithGrowthStep(n int) Option {
	return func(l *Limits) {
		l.Step = n
	}
}

func resolveLimits(opts []Option) (Limits, error) {
	l := DefaultLimits()
	for _, opt := range opts {
		if opt != nil {
			opt(&l)
		}
	}
	if err := l.Validate(); err != nil {
		return Limits{}, err
	}
	return l, nil
}
