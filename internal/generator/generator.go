package generator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/weiawesome/wes-io-live/quickid/internal/idgen"
)

// Scheme names.
const (
	SchemeQuick  = "quick"
	SchemeUUID   = "uuid"
	SchemeULID   = "ulid"
	SchemeKSUID  = "ksuid"
	SchemeNanoID = "nanoid"
	SchemeCUID2  = "cuid2"
)

var (
	ErrUnknownScheme = errors.New("unknown id scheme")

	// ErrInvalidID is returned by Parse for IDs the scheme rejects.
	ErrInvalidID = errors.New("invalid id")
)

// Generator is one ID scheme.
type Generator interface {
	Name() string
	Generate() (idgen.ID, error)
	Validate(id string) (bool, string) // (valid, reason)
	Parse(id string) (*ParseResult, error)
}

// ParseResult holds the fields decoded from an ID.
type ParseResult struct {
	IDLength      int    `json:"id_length"`
	TimestampMs   int64  `json:"timestamp_ms,omitempty"`   // quick (long enough IDs), ULID, KSUID
	RandomPayload string `json:"random_payload,omitempty"` // ULID/KSUID: hex-encoded random bytes
	UUIDVersion   int    `json:"uuid_version,omitempty"`
	UUIDVariant   string `json:"uuid_variant,omitempty"`
	Alphabet      string `json:"alphabet,omitempty"` // NanoID only
	Prefix        string `json:"prefix,omitempty"`   // quick only
	Body          string `json:"body,omitempty"`     // quick: everything after the prefix
}

func invalidID(scheme, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidID, scheme, reason)
}

// GenerateBatch collects count IDs from g.
func GenerateBatch(g Generator, count int) ([]idgen.ID, error) {
	ids := make([]idgen.ID, 0, count)
	for i := 0; i < count; i++ {
		id, err := g.Generate()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Registry looks generators up by scheme name.
type Registry struct {
	generators map[string]Generator
}

// NewRegistry indexes gens by their Name. Later entries win.
func NewRegistry(gens ...Generator) *Registry {
	r := &Registry{generators: make(map[string]Generator, len(gens))}
	for _, g := range gens {
		r.generators[g.Name()] = g
	}
	return r
}

func (r *Registry) Get(name string) (Generator, error) {
	g, ok := r.generators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
	return g, nil
}

// Names returns the registered scheme names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
