// Package glossary resolves app-defined noun codes to words.
//
// The renderer only depends on the Func contract; where the nouns come from
// (a built-in table, a TOML file, a cache) is this package's business.
package glossary

// Placeholder is returned for noun codes a glossary does not know.
const Placeholder = "??"

// Func resolves a noun code to its word. Implementations are total:
// code 0 resolves to "" (no noun) and unknown codes resolve to Placeholder.
type Func func(code int) string

// Map is a code-to-word table implementing the Func contract via Func().
type Map map[int]string

// Func adapts the map to the resolver contract.
func (m Map) Func() Func {
	return func(code int) string {
		if code == 0 {
			return ""
		}
		if word, ok := m[code]; ok {
			return word
		}
		return Placeholder
	}
}

// Empty is a resolver with no nouns at all: 0 is blank, everything else is
// the placeholder.
func Empty() Func {
	return Map(nil).Func()
}
