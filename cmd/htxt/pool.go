package main

import (
	"fmt"
	"io"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-htxt"
)

// poolAdapter exposes *htxt.ConverterPool through the Pool interface.
type poolAdapter struct {
	pool *htxt.ConverterPool
}

var _ Pool = (*poolAdapter)(nil)

func (a *poolAdapter) Acquire() (CLIConverter, error) {
	conv, err := a.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// Release panics on a converter the pool did not hand out.
func (a *poolAdapter) Release(c CLIConverter) {
	conv, ok := c.(*htxt.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

// setMaxProcs fits GOMAXPROCS to the container CPU quota before the pool
// is sized, logging the change in verbose mode. It returns the undo func.
func setMaxProcs(verbose bool, w io.Writer) func() {
	logf := func(string, ...any) {}
	if verbose {
		logf = func(format string, args ...any) {
			fmt.Fprintf(w, format+"\n", args...)
		}
	}
	// Only fails on an invalid GOMAXPROCS value, where runtime defaults apply.
	undo, err := maxprocs.Set(maxprocs.Logger(logf))
	if err != nil {
		return func() {}
	}
	return undo
}
