// Package errno keeps a "last error" cell per task, the explicit counterpart
// of a thread-local errno variable. A cell travels with a context, so
// concurrent tasks never observe each other's errors.
package errno

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"errata/internal/errcode"
	"errata/internal/errfmt"
	"errata/internal/glossary"
)

// Cell is a writable last-error slot. The zero value is ready to use and
// reads as success (0). Safe for concurrent access.
type Cell struct {
	v atomic.Int64
}

// Get returns the current code, 0 when no error was recorded.
func (c *Cell) Get() errcode.Code { return errcode.Code(c.v.Load()) }

// Set records a code, overwriting any previous one.
func (c *Cell) Set(code errcode.Code) { c.v.Store(int64(code)) }

// Clear resets the cell to success.
func (c *Cell) Clear() { c.v.Store(0) }

type ctxKey struct{}

// process is the fallback cell used by contexts that never attached one.
var process Cell

// NewContext attaches a cell to the context. Each task should get its own.
func NewContext(ctx context.Context, c *Cell) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext returns the cell attached to the context, or the process-wide
// fallback cell when none was attached.
func FromContext(ctx context.Context) *Cell {
	if c, ok := ctx.Value(ctxKey{}).(*Cell); ok {
		return c
	}
	return &process
}

// Report writes a perror-style line for the cell's current code:
//
//	open : FILE NOT FOUND ; ERR_0x… error=1,api=…
func (c *Cell) Report(w io.Writer, label string, g glossary.Func) error {
	_, err := fmt.Fprintf(w, "%s : %s\n", label, errfmt.Extended(c.Get(), g))
	return err
}
