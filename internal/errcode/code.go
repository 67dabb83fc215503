package errcode

import "fmt"

// Code is a packed 64-bit error code. Negative values carry an error
// description; zero and positive values mean success and carry nothing.
type Code int64

// Bit offsets of every field inside a Code.
const (
	shiftError    = 63
	shiftVersion  = 56
	shiftRevision = 40
	shiftLine     = 24
	shiftNegate   = 23
	shiftAttr     = 15
	shiftNoun     = 0
)

// Field masks, applied after shifting.
const (
	maskError    = 0x1
	maskVersion  = 0x7f
	maskRevision = 0xffff
	maskLine     = 0xffff
	maskNegate   = 0x1
	maskAttr     = 0xff
	maskNoun     = 0x7fff
)

// Upper bounds of the caller-supplied fields. Values above these are
// silently truncated to the field width when packing.
const (
	MaxVersion  = maskVersion
	MaxRevision = maskRevision
	MaxLine     = maskLine
	MaxNoun     = maskNoun
)

// Fields holds the unpacked parts of an error code.
type Fields struct {
	Version  int
	Revision int
	Line     int
	Negated  bool
	Attr     Attr
	Noun     int
}

// Pack composes the fields into a Code. The error bit is always forced on,
// so the result is always negative. Fields wider than their slot are
// truncated, never rejected.
func Pack(f Fields) Code {
	v := uint64(1) << shiftError
	v |= (uint64(f.Version) & maskVersion) << shiftVersion
	v |= (uint64(f.Revision) & maskRevision) << shiftRevision
	v |= (uint64(f.Line) & maskLine) << shiftLine
	if f.Negated {
		v |= 1 << shiftNegate
	}
	v |= (uint64(f.Attr) & maskAttr) << shiftAttr
	v |= (uint64(f.Noun) & maskNoun) << shiftNoun
	return Code(v)
}

// New packs a descriptor with the given locator fields.
func New(version, revision, line int, d Desc) Code {
	f := d.fields()
	f.Version = version
	f.Revision = revision
	f.Line = line
	return Pack(f)
}

// IsError reports whether c carries an error description.
func (c Code) IsError() bool { return c < 0 }

// Extraction never sign-extends: fields are read from the unsigned
// interpretation of the code, whatever the sign of c.

func (c Code) Version() int { return int((uint64(c) >> shiftVersion) & maskVersion) }

func (c Code) Revision() int { return int((uint64(c) >> shiftRevision) & maskRevision) }

func (c Code) Line() int { return int((uint64(c) >> shiftLine) & maskLine) }

func (c Code) Negated() bool { return (uint64(c)>>shiftNegate)&maskNegate != 0 }

func (c Code) Attr() Attr { return Attr((uint64(c) >> shiftAttr) & maskAttr) }

func (c Code) Noun() int { return int((uint64(c) >> shiftNoun) & maskNoun) }

// Fields unpacks every field at once.
func (c Code) Fields() Fields {
	return Fields{
		Version:  c.Version(),
		Revision: c.Revision(),
		Line:     c.Line(),
		Negated:  c.Negated(),
		Attr:     c.Attr(),
		Noun:     c.Noun(),
	}
}

// Desc returns the 24-bit message descriptor of the code.
func (c Code) Desc() Desc { return Desc(uint64(c) & descMask) }

// String renders the raw value in the pointer style used by extended
// reports: ERR_0x8000000000018037.
func (c Code) String() string {
	return fmt.Sprintf("ERR_0x%x", uint64(c))
}
