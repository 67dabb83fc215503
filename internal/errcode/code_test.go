package errcode

import "testing"

func TestPackRoundTrip(t *testing.T) {
	cases := []Fields{
		{},
		{Version: 1, Revision: 2, Line: 3, Attr: AttrFull, Noun: 4},
		{Version: MaxVersion, Revision: MaxRevision, Line: MaxLine, Negated: true, Attr: AttrWrong, Noun: MaxNoun},
		{Negated: true, Attr: AttrFound, Noun: 42},
	}
	for _, want := range cases {
		c := Pack(want)
		if !c.IsError() {
			t.Fatalf("Pack(%+v) = %v, expected a negative code", want, int64(c))
		}
		if got := c.Fields(); got != want {
			t.Fatalf("Fields() = %+v, want %+v", got, want)
		}
	}
}

func TestPackMasksOverflow(t *testing.T) {
	c := Pack(Fields{
		Version:  MaxVersion + 1,
		Revision: MaxRevision + 5,
		Line:     MaxLine + 9,
		Noun:     MaxNoun + 3,
	})
	got := c.Fields()
	if got.Version != 0 || got.Revision != 4 || got.Line != 8 || got.Noun != 2 {
		t.Fatalf("overflowing fields not truncated: %+v", got)
	}
}

func TestPackAlwaysNegative(t *testing.T) {
	// Whatever goes in, the error bit comes out set.
	for _, f := range []Fields{{}, {Version: 127}, {Noun: 32767}, {Attr: 255}} {
		if c := Pack(f); c >= 0 {
			t.Fatalf("Pack(%+v) = %v, want negative", f, int64(c))
		}
	}
}

func TestExtractNeverSignExtends(t *testing.T) {
	c := Pack(Fields{Version: MaxVersion, Revision: MaxRevision, Line: MaxLine, Negated: true, Attr: 255, Noun: MaxNoun})
	if c.Version() < 0 || c.Revision() < 0 || c.Line() < 0 || c.Noun() < 0 {
		t.Fatalf("negative field extracted from %v: %+v", c, c.Fields())
	}
}

func TestSuccessCodes(t *testing.T) {
	for _, c := range []Code{0, 1, 1 << 40, 1<<63 - 1} {
		if c.IsError() {
			t.Fatalf("%v reported as error", int64(c))
		}
	}
}

func TestNewSetsLocator(t *testing.T) {
	c := New(3, 1077, 42, AttrFound.Not().WithNoun(7))
	if got, want := c.Version(), 3; got != want {
		t.Fatalf("Version = %d, want %d", got, want)
	}
	if got, want := c.Revision(), 1077; got != want {
		t.Fatalf("Revision = %d, want %d", got, want)
	}
	if got, want := c.Line(), 42; got != want {
		t.Fatalf("Line = %d, want %d", got, want)
	}
	if !c.Negated() || c.Attr() != AttrFound || c.Noun() != 7 {
		t.Fatalf("descriptor fields lost: %+v", c.Fields())
	}
}

func TestHereCapturesLine(t *testing.T) {
	c := Here(0, 0, AttrFull.Desc())
	if c.Line() == 0 {
		t.Fatal("Here did not capture the caller line")
	}
	if !c.IsError() {
		t.Fatal("Here produced a non-error code")
	}
}

func TestCodeString(t *testing.T) {
	c := Code(-1)
	if got, want := c.String(), "ERR_0xffffffffffffffff"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
