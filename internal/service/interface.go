package service

import (
	"context"

	"github.com/weiawesome/wes-io-live/quickid/internal/generator"
	"github.com/weiawesome/wes-io-live/quickid/internal/idgen"
)

// IDService defines the ID generation and diagnostics operations shared by
// the HTTP and gRPC transports.
type IDService interface {
	Generate(ctx context.Context, req GenerateRequest) (idgen.ID, error)
	GenerateBatch(ctx context.Context, req GenerateRequest, count int) ([]idgen.ID, error)
	Validate(ctx context.Context, scheme, id string) (*ValidateResult, error)
	Parse(ctx context.Context, scheme, id string) (*ParseResult, error)
	Test(ctx context.Context, scheme string, trials int) (*TestResult, error)
	Duplicates(ctx context.Context, values []idgen.ID) idgen.DuplicateReport
	Schemes() []string
}

// GenerateRequest mirrors the wrapper configuration {type, prefix, length}.
// Type, Prefix and Length only apply to the quick scheme; empty fields fall
// back to the service defaults. A nil Length means "unspecified".
type GenerateRequest struct {
	Scheme string `json:"scheme,omitempty"`
	Type   string `json:"type,omitempty"`
	Prefix string `json:"prefix,omitempty"`
	Length *int   `json:"length,omitempty"`
}

func (r GenerateRequest) hasOverrides() bool {
	return r.Type != "" || r.Prefix != "" || r.Length != nil
}

// TestResult is the outcome of a uniqueness stress test.
type TestResult struct {
	Scheme string `json:"scheme"`
	Trials int    `json:"trials"`
	Unique bool   `json:"unique"`
}

type ValidateResult struct {
	Scheme string `json:"scheme"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// ParseResult is the decoded form of an ID. The generator fields are only
// set when Valid is true.
type ParseResult struct {
	Scheme       string `json:"scheme"`
	Valid        bool   `json:"valid"`
	ErrorMessage string `json:"error_message,omitempty"`
	*generator.ParseResult
}
