package generator

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/weiawesome/wes-io-live/quickid/internal/idgen"
)

const DefaultNanoIDSize = 21

// NanoIDGenerator generates NanoIDs with a fixed size and alphabet.
type NanoIDGenerator struct {
	size     int
	alphabet string
}

// NewNanoIDGenerator creates a NanoIDGenerator. size must be between 1 and
// 256; an empty alphabet selects idgen.Alphanumeric.
func NewNanoIDGenerator(size int, alphabet string) (*NanoIDGenerator, error) {
	if alphabet == "" {
		alphabet = idgen.Alphanumeric
	}
	if size < 1 || size > 256 {
		return nil, fmt.Errorf("nanoid size must be between 1 and 256, got %d", size)
	}
	if len(alphabet) < 2 {
		return nil, fmt.Errorf("nanoid alphabet must have at least 2 characters, got %d", len(alphabet))
	}
	return &NanoIDGenerator{
		size:     size,
		alphabet: alphabet,
	}, nil
}

func (g *NanoIDGenerator) Name() string { return SchemeNanoID }

func (g *NanoIDGenerator) Generate() (idgen.ID, error) {
	id, err := gonanoid.Generate(g.alphabet, g.size)
	if err != nil {
		return idgen.ID{}, fmt.Errorf("failed to generate NanoID: %w", err)
	}
	return idgen.Text(id), nil
}

func (g *NanoIDGenerator) Validate(id string) (bool, string) {
	if n := len([]rune(id)); n != g.size {
		return false, fmt.Sprintf("expected length %d, got %d", g.size, n)
	}
	for _, c := range id {
		if !strings.ContainsRune(g.alphabet, c) {
			return false, fmt.Sprintf("character '%c' not in alphabet", c)
		}
	}
	return true, ""
}

func (g *NanoIDGenerator) Parse(id string) (*ParseResult, error) {
	if valid, reason := g.Validate(id); !valid {
		return nil, invalidID(SchemeNanoID, reason)
	}

	return &ParseResult{
		IDLength: len([]rune(id)),
		Alphabet: g.alphabet,
	}, nil
}
