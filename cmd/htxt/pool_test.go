package main

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/alnah/go-htxt"
)

// ---------------------------------------------------------------------------
// TestPoolAdapter - *htxt.ConverterPool behind the Pool interface
// ---------------------------------------------------------------------------

func TestPoolAdapter(t *testing.T) {
	t.Parallel()

	pool := htxt.NewConverterPool(2)
	adapter := &poolAdapter{pool: pool}

	if adapter.Size() != 2 {
		t.Errorf("Size() = %d, want 2", adapter.Size())
	}

	conv, err := adapter.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	res, err := conv.Convert(context.Background(), htxt.Input{Source: "p: hi"})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if string(res.HTML) != "<p>hi</p>\n" {
		t.Errorf("HTML = %q", res.HTML)
	}
	adapter.Release(conv)

	if err := pool.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	conv, err = adapter.Acquire()
	if !errors.Is(err, htxt.ErrPoolClosed) {
		t.Errorf("Acquire() after Close error = %v, want ErrPoolClosed", err)
	}
	if conv != nil {
		t.Error("Acquire() after Close should return a nil interface")
	}
}

func TestPoolAdapter_ReleaseWrongType(t *testing.T) {
	t.Parallel()

	adapter := &poolAdapter{pool: htxt.NewConverterPool(1)}
	defer func() {
		if recover() == nil {
			t.Error("Release() with a foreign converter should panic")
		}
	}()
	adapter.Release(&mockConverter{})
}

func TestSetMaxProcs(t *testing.T) {
	undo := setMaxProcs(false, io.Discard)
	if undo == nil {
		t.Fatal("setMaxProcs() returned nil undo func")
	}
	undo()
}
