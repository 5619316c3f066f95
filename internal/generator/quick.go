package generator

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/weiawesome/wes-io-live/quickid/internal/idgen"
)

const (
	quickHexLen       = 32 // 16 random bytes, hex-encoded
	quickTimestampLen = 13 // unix milliseconds
)

// QuickGenerator exposes an idgen.Generator as a scheme.
type QuickGenerator struct {
	gen *idgen.Generator
}

// NewQuickGenerator wraps gen.
func NewQuickGenerator(gen *idgen.Generator) *QuickGenerator {
	return &QuickGenerator{gen: gen}
}

func (g *QuickGenerator) Name() string { return SchemeQuick }

func (g *QuickGenerator) Generate() (idgen.ID, error) {
	return g.gen.Generate()
}

// Validate checks the shape of an ID produced by the wrapped generator.
// Numeric IDs are at most Length digits. Text IDs are exactly Length
// characters: the prefix and "_" (possibly cut short) followed by a
// hex/decimal tail.
func (g *QuickGenerator) Validate(id string) (bool, string) {
	want := max(g.gen.Length(), 0)

	if g.gen.Kind() == idgen.KindNumber {
		if len(id) == 0 || len(id) > want {
			return false, fmt.Sprintf("expected 1 to %d digits, got %d", want, len(id))
		}
		if _, err := strconv.ParseUint(id, 10, 64); err != nil {
			return false, "invalid integer format"
		}
		return true, ""
	}

	if n := utf8.RuneCountInString(id); n != want {
		return false, fmt.Sprintf("expected length %d, got %d", want, n)
	}

	head := g.head()
	if len(id) <= len(head) {
		if !strings.HasPrefix(head, id) {
			return false, fmt.Sprintf("expected a leading part of %q", head)
		}
		return true, ""
	}
	if !strings.HasPrefix(id, head) {
		return false, fmt.Sprintf("missing prefix %q", head)
	}
	for _, c := range id[len(head):] {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return false, fmt.Sprintf("character '%c' not allowed", c)
		}
	}
	return true, ""
}

// Parse splits a valid quick ID into prefix and body. Text IDs long enough
// to hold the whole random hex block also yield their timestamp.
func (g *QuickGenerator) Parse(id string) (*ParseResult, error) {
	if valid, reason := g.Validate(id); !valid {
		return nil, invalidID(SchemeQuick, reason)
	}

	result := &ParseResult{IDLength: utf8.RuneCountInString(id)}
	if g.gen.Kind() == idgen.KindNumber {
		result.Body = id
		return result, nil
	}

	result.Prefix = g.gen.Prefix()
	head := g.head()
	if len(id) <= len(head) {
		return result, nil
	}
	result.Body = id[len(head):]
	if len(result.Body) >= quickHexLen+quickTimestampLen {
		ts, err := strconv.ParseInt(result.Body[quickHexLen:quickHexLen+quickTimestampLen], 10, 64)
		if err == nil {
			result.TimestampMs = ts
		}
	}
	return result, nil
}

// head is the "{prefix}_" part of text IDs, empty without a prefix.
func (g *QuickGenerator) head() string {
	if prefix := g.gen.Prefix(); prefix != "" {
		return prefix + "_"
	}
	return ""
}
