package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/weiawesome/wes-io-live/quickid/internal/generator"
	"github.com/weiawesome/wes-io-live/quickid/internal/idgen"
	"github.com/weiawesome/wes-io-live/quickid/pkg/log"
)

var (
	ErrInvalidCount  = errors.New("invalid count")
	ErrInvalidTrials = errors.New("invalid trials")
)

// QuickDefaults is the quick-scheme configuration used when a request does
// not override it. Length 0 keeps the per-type default.
type QuickDefaults struct {
	Prefix string
	Type   string
	Length int
}

// Generator builds the idgen.Generator described by d.
func (d QuickDefaults) Generator() (*idgen.Generator, error) {
	var length *int
	if d.Length > 0 {
		length = &d.Length
	}
	return newQuick(d.Type, d.Prefix, length)
}

func newQuick(typ, prefix string, length *int) (*idgen.Generator, error) {
	kind, err := idgen.ParseKind(typ)
	if err != nil {
		return nil, err
	}
	opts := []idgen.Option{idgen.WithKind(kind), idgen.WithPrefix(prefix)}
	if length != nil {
		opts = append(opts, idgen.WithLength(*length))
	}
	return idgen.New(opts...), nil
}

// Limits bounds batch sizes and stress-test trials.
type Limits struct {
	MaxBatch  int
	MaxTrials int
}

// idServiceImpl implements IDService interface.
type idServiceImpl struct {
	registry *generator.Registry
	defaults QuickDefaults
	limits   Limits
}

// NewIDService creates a new ID service.
func NewIDService(registry *generator.Registry, defaults QuickDefaults, limits Limits) IDService {
	if limits.MaxBatch < 1 {
		limits.MaxBatch = 1000
	}
	if limits.MaxTrials < 1 {
		limits.MaxTrials = idgen.DefaultVerifyCount
	}
	return &idServiceImpl{
		registry: registry,
		defaults: defaults,
		limits:   limits,
	}
}

// Generate returns one ID.
func (s *idServiceImpl) Generate(ctx context.Context, req GenerateRequest) (idgen.ID, error) {
	gen, err := s.resolve(req)
	if err != nil {
		return idgen.ID{}, err
	}

	id, err := gen.Generate()
	if err != nil {
		return idgen.ID{}, fmt.Errorf("failed to generate %s id: %w", gen.Name(), err)
	}
	return id, nil
}

// GenerateBatch returns count IDs from the same generator.
func (s *idServiceImpl) GenerateBatch(ctx context.Context, req GenerateRequest, count int) ([]idgen.ID, error) {
	if count < 1 || count > s.limits.MaxBatch {
		return nil, fmt.Errorf("%w: count must be between 1 and %d, got %d", ErrInvalidCount, s.limits.MaxBatch, count)
	}

	gen, err := s.resolve(req)
	if err != nil {
		return nil, err
	}

	ids, err := generator.GenerateBatch(gen, count)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s batch: %w", gen.Name(), err)
	}

	l := log.Ctx(ctx)
	l.Debug().Str(log.FieldScheme, gen.Name()).Int(log.FieldCount, count).Msg("batch generated")
	return ids, nil
}

// Validate checks id against the rules of a scheme.
func (s *idServiceImpl) Validate(ctx context.Context, scheme, id string) (*ValidateResult, error) {
	gen, err := s.resolve(GenerateRequest{Scheme: scheme})
	if err != nil {
		return nil, err
	}

	valid, reason := gen.Validate(id)
	return &ValidateResult{Scheme: gen.Name(), Valid: valid, Reason: reason}, nil
}

// Parse decodes id with the rules of a scheme. IDs the scheme rejects give
// a result with Valid false rather than an error.
func (s *idServiceImpl) Parse(ctx context.Context, scheme, id string) (*ParseResult, error) {
	gen, err := s.resolve(GenerateRequest{Scheme: scheme})
	if err != nil {
		return nil, err
	}

	parsed, err := gen.Parse(id)
	if err != nil {
		if !errors.Is(err, generator.ErrInvalidID) {
			return nil, fmt.Errorf("failed to parse %s id: %w", gen.Name(), err)
		}
		return &ParseResult{Scheme: gen.Name(), ErrorMessage: err.Error()}, nil
	}
	return &ParseResult{Scheme: gen.Name(), Valid: true, ParseResult: parsed}, nil
}

// Test generates trials IDs and reports whether any repeated. Zero trials
// means idgen.DefaultVerifyCount. The run stops early when ctx is done.
func (s *idServiceImpl) Test(ctx context.Context, scheme string, trials int) (*TestResult, error) {
	if trials == 0 {
		trials = min(idgen.DefaultVerifyCount, s.limits.MaxTrials)
	}
	if trials < 1 || trials > s.limits.MaxTrials {
		return nil, fmt.Errorf("%w: trials must be between 1 and %d, got %d", ErrInvalidTrials, s.limits.MaxTrials, trials)
	}

	gen, err := s.resolve(GenerateRequest{Scheme: scheme})
	if err != nil {
		return nil, err
	}

	next := func() (idgen.ID, error) {
		if err := ctx.Err(); err != nil {
			return idgen.ID{}, err
		}
		return gen.Generate()
	}

	unique, err := idgen.Verify(next, trials)
	if err != nil {
		return nil, fmt.Errorf("uniqueness test for %s failed: %w", gen.Name(), err)
	}

	l := log.Ctx(ctx)
	l.Info().
		Str(log.FieldScheme, gen.Name()).
		Int(log.FieldTrials, trials).
		Bool(log.FieldUnique, unique).
		Msg("uniqueness test finished")

	return &TestResult{Scheme: gen.Name(), Trials: trials, Unique: unique}, nil
}

// Duplicates reports repeated values.
func (s *idServiceImpl) Duplicates(ctx context.Context, values []idgen.ID) idgen.DuplicateReport {
	report := idgen.FindDuplicates(values)

	l := log.Ctx(ctx)
	l.Debug().
		Int(log.FieldCount, len(values)).
		Int(log.FieldDuplicates, len(report.DuplicateValues)).
		Msg("duplicate check finished")
	return report
}

func (s *idServiceImpl) Schemes() []string {
	return s.registry.Names()
}

// resolve picks the generator for req. Quick requests with overrides get a
// generator built from the request merged over the defaults.
func (s *idServiceImpl) resolve(req GenerateRequest) (generator.Generator, error) {
	name := req.Scheme
	if name == "" {
		name = generator.SchemeQuick
	}
	if name != generator.SchemeQuick || !req.hasOverrides() {
		return s.registry.Get(name)
	}

	typ, prefix, length := s.defaults.Type, s.defaults.Prefix, req.Length
	if req.Type != "" {
		typ = req.Type
	}
	if req.Prefix != "" {
		prefix = req.Prefix
	}
	if length == nil && s.defaults.Length > 0 && sameKind(typ, s.defaults.Type) {
		length = &s.defaults.Length
	}

	gen, err := newQuick(typ, prefix, length)
	if err != nil {
		return nil, err
	}
	return generator.NewQuickGenerator(gen), nil
}

// sameKind reports whether two type names select the same kind. A default
// length only carries over to requests of the default's kind.
func sameKind(a, b string) bool {
	ka, err := idgen.ParseKind(a)
	if err != nil {
		return false
	}
	kb, err := idgen.ParseKind(b)
	if err != nil {
		return false
	}
	return ka == kb
}
