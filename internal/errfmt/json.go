package errfmt

import (
	"errata/internal/errcode"
	"errata/internal/glossary"
)

// CodeJSON is the machine-readable shape of a decoded error code.
type CodeJSON struct {
	Code     string `json:"code"`
	Value    int64  `json:"value"`
	Error    bool   `json:"error"`
	Message  string `json:"message,omitempty"`
	Version  int    `json:"api_version,omitempty"`
	Revision int    `json:"api_revision,omitempty"`
	Line     int    `json:"line,omitempty"`
	Negated  bool   `json:"negated,omitempty"`
	Attr     int    `json:"attr,omitempty"`
	AttrWord string `json:"attr_word,omitempty"`
	Noun     int    `json:"noun,omitempty"`
	NounWord string `json:"noun_word,omitempty"`
}

// Describe unpacks a code for JSON output. Success codes carry only the raw
// value; descriptor fields are meaningless for them and stay zero.
func Describe(c errcode.Code, g glossary.Func) CodeJSON {
	out := CodeJSON{
		Code:  c.String(),
		Value: int64(c),
		Error: c.IsError(),
	}
	if !c.IsError() {
		return out
	}
	f := c.Fields()
	out.Message = Message(c, g)
	out.Version = f.Version
	out.Revision = f.Revision
	out.Line = f.Line
	out.Negated = f.Negated
	out.Attr = int(f.Attr)
	out.AttrWord = f.Attr.String()
	out.Noun = f.Noun
	out.NounWord = g(f.Noun)
	return out
}
