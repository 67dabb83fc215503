package glossary

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// MaxNoun is the widest noun code a 15-bit field can carry.
const MaxNoun = 0x7fff

var (
	// ErrNounRange indicates a noun code outside 1..MaxNoun.
	ErrNounRange = errors.New("noun code out of range")
	// ErrNounDuplicate indicates the same noun code declared twice.
	ErrNounDuplicate = errors.New("duplicate noun code")
	// ErrNounWordEmpty indicates a noun entry without a word.
	ErrNounWordEmpty = errors.New("empty noun word")
)

// A glossary file is a list of [[noun]] tables:
//
//	[[noun]]
//	code = 55
//	word = "FILE"
type glossaryFile struct {
	Nouns []nounEntry `toml:"noun"`
}

type nounEntry struct {
	Code int    `toml:"code"`
	Word string `toml:"word"`
}

// Load parses a TOML glossary file into a Map.
func Load(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func parse(data []byte) (Map, error) {
	var cfg glossaryFile
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	m := make(Map, len(cfg.Nouns))
	for _, n := range cfg.Nouns {
		if n.Code < 1 || n.Code > MaxNoun {
			return nil, fmt.Errorf("noun %d: %w", n.Code, ErrNounRange)
		}
		if n.Word == "" {
			return nil, fmt.Errorf("noun %d: %w", n.Code, ErrNounWordEmpty)
		}
		if _, ok := m[n.Code]; ok {
			return nil, fmt.Errorf("noun %d: %w", n.Code, ErrNounDuplicate)
		}
		m[n.Code] = n.Word
	}
	return m, nil
}
