package tasks

import (
	"fmt"

	"github.com/cwbudde/algo-dynbuf/buffer"
)

// Stage identifies the point of a run an Observer is called at.
type Stage int

const (
	// StageInput is the buffer as handed to Run.
	StageInput Stage = iota
	// StageAggregated is the buffer after the sum and average were appended.
	StageAggregated
	// StageScaled is the buffer after every third element was scaled.
	StageScaled
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageInput:
		return "input"
	case StageAggregated:
		return "aggregated"
	case StageScaled:
		return "scaled"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Observer is called with the buffer at each stage of a run.
type Observer func(Stage, *buffer.Buffer)

// Report is the outcome of a run.
type Report struct {
	Summary   Summary
	Delimiter float64
}

// Option configures a Runner.
type Option func(*Runner)

// WithObserver sets the function called at each stage.
func WithObserver(fn Observer) Option {
	return func(r *Runner) {
		r.observe = fn
	}
}

// WithPool sets the pool scratch buffers are taken from. Buffers whose
// limits differ from the pool's get a freshly allocated scratch buffer.
func WithPool(p *buffer.Pool) Option {
	return func(r *Runner) {
		r.pool = p
	}
}

// Runner runs the full task sequence against a buffer.
type Runner struct {
	observe Observer
	pool    *buffer.Pool
}

// NewRunner returns a Runner with the given options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Run aggregates b, derives the delimiter from its negative elements and
// scales every third element by it. Stages are reported to the observer as
// they complete; a failing stage stops the run and later stages are not
// reported.
func (r *Runner) Run(b *buffer.Buffer) (Report, error) {
	var rep Report

	r.notify(StageInput, b)
	s, err := Aggregate(b)
	if err != nil {
		return rep, err
	}
	rep.Summary = s
	r.notify(StageAggregated, b)

	scratch, done, err := r.scratch(b.Limits())
	if err != nil {
		return rep, err
	}
	defer done()

	d, err := Delimiter(b, scratch)
	if err != nil {
		return rep, err
	}
	rep.Delimiter = d

	ScaleEveryThird(b, d)
	r.notify(StageScaled, b)
	return rep, nil
}

func (r *Runner) notify(s Stage, b *buffer.Buffer) {
	if r.observe != nil {
		r.observe(s, b)
	}
}

func (r *Runner) scratch(l buffer.Limits) (*buffer.Buffer, func(), error) {
	if r.pool != nil && r.pool.Limits() == l {
		b := r.pool.Get()
		return b, func() { r.pool.Put(b) }, nil
	}
	b, err := buffer.New(0, buffer.WithLimits(l))
	if err != nil {
		return nil, nil, fmt.Errorf("tasks: scratch buffer: %w", err)
	}
	return b, b.Release, nil
}

// Run runs the task sequence with a default Runner.
func Run(b *buffer.Buffer) (Report, error) {
	return NewRunner().Run(b)
}
