package htxt

import (
	"errors"
	"runtime"
	"sync"
)

// Pool sizing.
const (
	MinPoolSize = 1
	// MaxPoolSize caps concurrent browsers, each of which costs ~200MB.
	MaxPoolSize = 8
	cpuDivisor  = 2
)

// ErrPoolClosed is returned by Acquire after Close.
var ErrPoolClosed = errors.New("converter pool closed")

// ConverterPool hands converters to concurrent workers. Converters are
// created lazily with the pool's options, up to Size of them.
type ConverterPool struct {
	size       int
	opts       []Option
	converters []*Converter
	idle       chan *Converter
	mu         sync.Mutex
	created    int
	closed     bool
}

// NewConverterPool creates a pool of up to n converters built with opts.
func NewConverterPool(n int, opts ...Option) *ConverterPool {
	if n < MinPoolSize {
		n = MinPoolSize
	}
	return &ConverterPool{
		size:       n,
		opts:       opts,
		converters: make([]*Converter, 0, n),
		idle:       make(chan *Converter, n),
	}
}

// Acquire returns an idle converter, creating one if the pool is not full,
// and otherwise blocks until one is released.
func (p *ConverterPool) Acquire() (*Converter, error) {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return nil, ErrPoolClosed
	}

	select {
	case c, ok := <-p.idle:
		if !ok {
			return nil, ErrPoolClosed
		}
		return c, nil
	default:
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		c, err := NewConverter(p.opts...)

		p.mu.Lock()
		defer p.mu.Unlock()
		if err != nil {
			p.created--
			return nil, err
		}
		p.converters = append(p.converters, c)
		return c, nil
	}
	p.mu.Unlock()

	c, ok := <-p.idle
	if !ok {
		return nil, ErrPoolClosed
	}
	return c, nil
}

// Release returns c to the pool. Releasing after Close is a no-op.
func (p *ConverterPool) Release(c *Converter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.idle <- c
}

// Close closes every converter the pool created.
func (p *ConverterPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.idle)
	converters := p.converters
	p.mu.Unlock()

	var errs []error
	for _, c := range converters {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the pool capacity.
func (p *ConverterPool) Size() int {
	return p.size
}

// ResolvePoolSize returns workers when positive, otherwise half of
// GOMAXPROCS clamped to [MinPoolSize, MaxPoolSize].
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0) / cpuDivisor
	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
