// Package errfmt renders packed error codes into readable text.
//
// Rendering is total: any int64 goes in, a string comes out. Success codes
// render as the empty string without touching the descriptor fields.
package errfmt

import (
	"fmt"
	"strings"

	"errata/internal/errcode"
	"errata/internal/glossary"
)

const (
	// maxMessage bounds the rendered message, matching the classic fixed
	// 256-byte buffer convention for error strings.
	maxMessage = 256
	// maxNoun bounds the glossary word so the attribute and NOT always fit.
	maxNoun = maxMessage - 48
)

// Message renders the code as "NOUN (NOT) ADJ" (or "NOT ADJ NOUN" for the
// exception pairs), joining non-empty words with single spaces. Non-error
// codes render as "".
func Message(c errcode.Code, g glossary.Func) string {
	if !c.IsError() {
		return ""
	}
	noun := g(c.Noun())
	if len(noun) > maxNoun {
		noun = noun[:maxNoun]
	}
	neg := ""
	if c.Negated() {
		neg = "NOT"
	}
	adj := c.Attr().String()

	words := [3]string{noun, neg, adj}
	if headOrder(c.Negated(), c.Attr()) {
		words = [3]string{neg, adj, noun}
	}

	var b strings.Builder
	b.Grow(len(noun) + len(neg) + len(adj) + 2)
	for _, w := range words {
		if w == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}
	s := b.String()
	if len(s) > maxMessage {
		s = s[:maxMessage]
	}
	return s
}

// headOrder reports whether the (negation, attribute) pair belongs to the
// closed exception set rendered attribute-first: "A"/"NOT A", "NO",
// "NO SUCH", "ENOUGH"/"NOT ENOUGH". The set is keyed on the combined pair;
// "NOT NO" and "NOT NO SUCH" keep the default order.
func headOrder(negated bool, attr errcode.Attr) bool {
	switch attr {
	case errcode.AttrA, errcode.AttrEnough:
		return true
	case errcode.AttrNo, errcode.AttrNoSuch:
		return !negated
	}
	return false
}

// Extended renders the message followed by the raw locator and descriptor
// fields, for diagnostics that need to pinpoint the error site:
//
//	FILE NOT FOUND ; ERR_0x80030435027b8037 error=1,api=3,rev=1077,line=631,neg=1,attr=48,noun=55
//
// Non-error codes render as "No error" plus the raw value.
func Extended(c errcode.Code, g glossary.Func) string {
	if !c.IsError() {
		return fmt.Sprintf("No error ; %s", c)
	}
	f := c.Fields()
	neg := 0
	if f.Negated {
		neg = 1
	}
	return fmt.Sprintf("%s ; %s error=1,api=%d,rev=%d,line=%d,neg=%d,attr=%d,noun=%d",
		Message(c, g), c, f.Version, f.Revision, f.Line, neg, f.Attr, f.Noun)
}
