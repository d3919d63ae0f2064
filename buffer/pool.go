package buffer

import "sync"

// Pool provides sync.Pool-based reuse of scratch Buffers that share one
// capacity policy.
type Pool struct {
	limits Limits
	pool   sync.Pool
}

// NewPool returns a Pool whose buffers use the given options.
func NewPool(opts ...Option) (*Pool, error) {
	l, err := resolveLimits(opts)
	if err != nil {
		return nil, err
	}
	p := &Pool{limits: l}
	p.pool.New = func() any {
		return &Buffer{
			elems:  make([]float64, l.Min),
			limits: l,
		}
	}
	return p, nil
}

// Limits returns the capacity policy of the pool's buffers.
func (p *Pool) Limits() Limits {
	return p.limits
}

// Get returns an empty Buffer. Callers must return it via Put when done.
func (p *Pool) Get() *Buffer {
	b := p.pool.Get().(*Buffer)
	b.size = 0
	return b
}

// Put returns a Buffer to the pool for reuse. Released buffers and buffers
// with a different capacity policy are dropped.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil || b.released || b.limits != p.limits {
		return
	}
	if len(b.elems) < p.limits.Min {
		b.elems = make([]float64, p.limits.Min)
	}
	p.pool.Put(b)
}
