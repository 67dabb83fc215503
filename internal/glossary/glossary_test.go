package glossary

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMapFuncContract(t *testing.T) {
	g := Map{55: "FILE"}.Func()
	if got := g(0); got != "" {
		t.Fatalf("g(0) = %q, want empty", got)
	}
	if got := g(55); got != "FILE" {
		t.Fatalf("g(55) = %q, want FILE", got)
	}
	if got := g(999); got != Placeholder {
		t.Fatalf("g(999) = %q, want %q", got, Placeholder)
	}
}

func TestEmpty(t *testing.T) {
	g := Empty()
	if g(0) != "" || g(1) != Placeholder {
		t.Fatalf("Empty() violates the resolver contract: %q / %q", g(0), g(1))
	}
}

func TestDemo(t *testing.T) {
	g := Demo().Func()
	if got := g(0); got != "" {
		t.Fatalf("demo g(0) = %q, want empty", got)
	}
	// Spot-check a few well-known nouns against their enum positions.
	disk, ok := DemoCode("DISK")
	if !ok {
		t.Fatal("DISK missing from demo glossary")
	}
	if got := g(disk); got != "DISK" {
		t.Fatalf("g(DISK) = %q", got)
	}
	if file, _ := DemoCode("FILE"); g(file) != "FILE" {
		t.Fatal("FILE does not round-trip through the demo glossary")
	}
	if g(len(demoNouns)) != Placeholder {
		t.Fatal("code past the demo table should be the placeholder")
	}
}

const sampleTOML = `
[[noun]]
code = 55
word = "FILE"

[[noun]]
code = 163
word = "SPACE"
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glossary.toml")
	if err := os.WriteFile(path, []byte(sampleTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m[55] != "FILE" || m[163] != "SPACE" {
		t.Fatalf("loaded glossary wrong: %v", m)
	}
}

func TestLoadRejectsBadEntries(t *testing.T) {
	cases := []struct {
		name string
		toml string
		want error
	}{
		{"range", "[[noun]]\ncode = 40000\nword = \"X\"\n", ErrNounRange},
		{"zero", "[[noun]]\ncode = 0\nword = \"X\"\n", ErrNounRange},
		{"empty", "[[noun]]\ncode = 5\nword = \"\"\n", ErrNounWordEmpty},
		{"dup", "[[noun]]\ncode = 5\nword = \"X\"\n[[noun]]\ncode = 5\nword = \"Y\"\n", ErrNounDuplicate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "glossary.toml")
			if err := os.WriteFile(path, []byte(tc.toml), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Load error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c, err := OpenCache("errata-test")
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}

	path := filepath.Join(t.TempDir(), "glossary.toml")
	if err := os.WriteFile(path, []byte(sampleTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	first, err := LoadCached(c, path)
	if err != nil {
		t.Fatalf("LoadCached (cold): %v", err)
	}
	second, err := LoadCached(c, path)
	if err != nil {
		t.Fatalf("LoadCached (warm): %v", err)
	}
	if len(first) != len(second) || second[55] != "FILE" || second[163] != "SPACE" {
		t.Fatalf("cache round-trip mismatch: %v vs %v", first, second)
	}
}

func TestCacheNilIsMiss(t *testing.T) {
	var c *Cache
	if _, ok, err := c.Get([32]byte{}); ok || err != nil {
		t.Fatalf("nil cache Get = %v, %v", ok, err)
	}
	if err := c.Put([32]byte{}, Map{1: "X"}); err != nil {
		t.Fatalf("nil cache Put: %v", err)
	}
}
