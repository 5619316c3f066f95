// Package idgen generates short, quasi-unique identifiers and reports
// collisions among them. IDs are not collision-free and not suitable as
// secrets; they are meant for log correlation, temp keys and the like.
package idgen

import (
	crand "crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultTextLength = 16

	// MaxNumericLength is the widest digit string that always fits an int64.
	// Numeric IDs without an explicit length are truncated to it.
	MaxNumericLength = 18

	// Alphanumeric is the character set for random alphanumeric strings.
	Alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	scaleFactor  = 1_000_000_000
	numericRange = 1_000_000_000
	hexBytes     = 16
)

// Source is a general-purpose, non-secure random source.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// Generator produces IDs for a fixed configuration. It holds no mutable
// state and is safe for concurrent use as long as its sources are.
type Generator struct {
	prefix    string
	kind      Kind
	length    int
	hasLength bool

	entropy io.Reader
	source  Source
	clock   func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

func WithPrefix(prefix string) Option {
	return func(g *Generator) { g.prefix = prefix }
}

func WithKind(kind Kind) Option {
	return func(g *Generator) { g.kind = kind }
}

// WithLength sets the length used by Generate.
func WithLength(length int) Option {
	return func(g *Generator) {
		g.length = length
		g.hasLength = true
	}
}

// WithEntropy replaces the secure byte source (crypto/rand by default).
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) { g.entropy = r }
}

// WithSource replaces the non-secure random source.
func WithSource(s Source) Option {
	return func(g *Generator) { g.source = s }
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.clock = now }
}

// New creates a Generator. Without options it produces 16-character text IDs.
func New(opts ...Option) *Generator {
	g := &Generator{
		kind:    KindText,
		entropy: crand.Reader,
		source:  globalSource{},
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Prefix() string { return g.prefix }

func (g *Generator) Kind() Kind { return g.kind }

// Length is the length Generate produces: the configured one, or the
// per-kind default when none was set.
func (g *Generator) Length() int {
	switch {
	case g.hasLength:
		return g.length
	case g.kind == KindNumber:
		return MaxNumericLength
	default:
		return DefaultTextLength
	}
}

// Generate returns a new ID using the configured length. Text IDs default to
// DefaultTextLength characters, numeric IDs to MaxNumericLength digits.
func (g *Generator) Generate() (ID, error) {
	if g.hasLength {
		return g.generate(g.length, true)
	}
	return g.generate(0, false)
}

// GenerateLength returns a new ID truncated to length. A text ID with a
// length below one is empty; a numeric one fails with ErrInvalidLength.
func (g *Generator) GenerateLength(length int) (ID, error) {
	return g.generate(length, true)
}

func (g *Generator) generate(length int, explicit bool) (ID, error) {
	if g.kind == KindNumber {
		if !explicit {
			length = MaxNumericLength
		}
		return g.number(length)
	}
	if !explicit {
		length = DefaultTextLength
	}
	return g.text(length)
}

// text builds "{prefix}_{hex}{timestamp}{scaled}{byte}" and truncates it.
func (g *Generator) text(length int) (ID, error) {
	b, ts, scaled, err := g.draw()
	if err != nil {
		return ID{}, err
	}

	var raw [hexBytes]byte
	if err := g.read(raw[:]); err != nil {
		return ID{}, err
	}

	var sb strings.Builder
	if g.prefix != "" {
		sb.WriteString(g.prefix)
		sb.WriteByte('_')
	}
	sb.WriteString(hex.EncodeToString(raw[:]))
	sb.WriteString(strconv.FormatInt(ts, 10))
	sb.WriteString(strconv.FormatInt(scaled, 10))
	sb.WriteString(strconv.Itoa(int(b)))

	return Text(truncate(sb.String(), length)), nil
}

// number builds "{r}{timestamp}{scaled}{byte}" in decimal, truncates it and
// parses the digits.
func (g *Generator) number(length int) (ID, error) {
	if length < 1 || length > MaxNumericLength {
		return ID{}, fmt.Errorf("%w: %d digits requested, want 1..%d", ErrInvalidLength, length, MaxNumericLength)
	}

	r := g.source.IntN(numericRange)
	b, ts, scaled, err := g.draw()
	if err != nil {
		return ID{}, err
	}

	digits := truncate(fmt.Sprintf("%d%d%d%d", r, ts, scaled, b), length)
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return ID{}, fmt.Errorf("%w: parse %q: %v", ErrInvalidLength, digits, err)
	}
	return Number(n), nil
}

// draw takes the random byte, the timestamp and the scaled random, in that order.
func (g *Generator) draw() (byte, int64, int64, error) {
	var one [1]byte
	if err := g.read(one[:]); err != nil {
		return 0, 0, 0, err
	}
	ts := g.clock().UnixMilli()
	scaled := int64(g.source.Float64() * scaleFactor)
	return one[0], ts, scaled, nil
}

func (g *Generator) read(p []byte) error {
	if _, err := io.ReadFull(g.entropy, p); err != nil {
		return fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return nil
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
