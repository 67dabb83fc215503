package errno

import (
	"context"
	"strings"
	"sync"
	"testing"

	"errata/internal/errcode"
	"errata/internal/glossary"
)

func TestCellZeroValue(t *testing.T) {
	var c Cell
	if got := c.Get(); got != 0 {
		t.Fatalf("fresh cell reads %v, want 0", got)
	}
}

func TestCellSetGetClear(t *testing.T) {
	var c Cell
	code := errcode.New(0, 0, 10, errcode.Invalid)
	c.Set(code)
	if got := c.Get(); got != code {
		t.Fatalf("Get = %v, want %v", got, code)
	}
	c.Clear()
	if got := c.Get(); got != 0 {
		t.Fatalf("Get after Clear = %v, want 0", got)
	}
}

func TestContextIsolation(t *testing.T) {
	var wg sync.WaitGroup
	codes := make([]errcode.Code, 8)
	for i := range codes {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx := NewContext(context.Background(), new(Cell))
			want := errcode.New(0, 0, i+1, errcode.AttrBusy.Desc())
			FromContext(ctx).Set(want)
			codes[i] = FromContext(ctx).Get()
			if codes[i] != want {
				t.Errorf("task %d observed %v, want %v", i, codes[i], want)
			}
		}()
	}
	wg.Wait()
}

func TestFromContextFallback(t *testing.T) {
	c := FromContext(context.Background())
	if c == nil {
		t.Fatal("no fallback cell for a bare context")
	}
	if c != FromContext(context.Background()) {
		t.Fatal("fallback cell is not stable")
	}
}

func TestReport(t *testing.T) {
	var c Cell
	c.Set(errcode.New(0, 0, 5, errcode.AttrFound.Not()))

	var b strings.Builder
	if err := c.Report(&b, "open", glossary.Empty()); err != nil {
		t.Fatal(err)
	}
	got := b.String()
	if !strings.HasPrefix(got, "open : NOT FOUND ; ERR_0x") {
		t.Fatalf("Report wrote %q", got)
	}

	b.Reset()
	c.Clear()
	if err := c.Report(&b, "open", glossary.Empty()); err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "open : No error ; ERR_0x0\n" {
		t.Fatalf("Report on success wrote %q", got)
	}
}
