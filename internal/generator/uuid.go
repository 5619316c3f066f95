package generator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/weiawesome/wes-io-live/quickid/internal/idgen"
)

// UUIDGenerator generates UUID v4 IDs.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Name() string { return SchemeUUID }

func (g *UUIDGenerator) Generate() (idgen.ID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return idgen.ID{}, fmt.Errorf("failed to generate UUID: %w", err)
	}
	return idgen.Text(id.String()), nil
}

func (g *UUIDGenerator) Validate(id string) (bool, string) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return false, fmt.Sprintf("invalid UUID format: %v", err)
	}
	if parsed.Version() != 4 {
		return false, fmt.Sprintf("expected UUID v4, got v%d", parsed.Version())
	}
	return true, ""
}

func (g *UUIDGenerator) Parse(id string) (*ParseResult, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, invalidID(SchemeUUID, err.Error())
	}

	return &ParseResult{
		IDLength:    len(id),
		UUIDVersion: int(parsed.Version()),
		UUIDVariant: parsed.Variant().String(),
	}, nil
}
