package errcode

import "runtime"

// Desc is the low 24-bit message descriptor of a code: the negate bit, the
// attribute and the noun. Descriptors compose with bitwise OR, the way the
// original vocabulary constants do.
type Desc int64

const (
	descNot  Desc = 1 << shiftNegate
	descMask      = (1 << (shiftNegate + 1)) - 1
)

// Desc lifts an attribute into a plain descriptor.
func (a Attr) Desc() Desc { return Desc(a) << shiftAttr }

// Not lifts an attribute into a negated descriptor ("NOT <word>").
func (a Attr) Not() Desc { return descNot | a.Desc() }

// WithNoun replaces the noun field of the descriptor. The noun is truncated
// to 15 bits.
func (d Desc) WithNoun(noun int) Desc {
	return (d &^ maskNoun) | Desc(noun&maskNoun)
}

// Negate sets the negate bit on the descriptor.
func (d Desc) Negate() Desc { return d | descNot }

// Negated reports whether the descriptor carries the negate bit.
func (d Desc) Negated() bool { return d&descNot != 0 }

// Attr returns the attribute field of the descriptor.
func (d Desc) Attr() Attr { return Attr((d >> shiftAttr) & maskAttr) }

// Noun returns the noun field of the descriptor.
func (d Desc) Noun() int { return int(d & maskNoun) }

func (d Desc) fields() Fields {
	return Fields{
		Negated: d.Negated(),
		Attr:    d.Attr(),
		Noun:    d.Noun(),
	}
}

// Negated spellings from the original vocabulary.
const (
	Invalid     = descNot | Desc(AttrValid)<<shiftAttr
	Undefined   = descNot | Desc(AttrDefined)<<shiftAttr
	Unused      = descNot | Desc(AttrUsed)<<shiftAttr
	Unordered   = descNot | Desc(AttrOrdered)<<shiftAttr
	Inactive    = descNot | Desc(AttrActive)<<shiftAttr
	Offline     = descNot | Desc(AttrOnline)<<shiftAttr
	Unavailable = descNot | Desc(AttrAvailable)<<shiftAttr
	Erased      = Desc(AttrRemoved) << shiftAttr
	Deleted     = Desc(AttrRemoved) << shiftAttr
)

// Here packs a descriptor with the caller's source line, the Go analogue of
// capturing __LINE__ at the error site. Lines above 65535 wrap by masking.
func Here(version, revision int, d Desc) Code {
	_, _, line, ok := runtime.Caller(1)
	if !ok {
		line = 0
	}
	return New(version, revision, line, d)
}
