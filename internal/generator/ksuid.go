package generator

import (
	"encoding/hex"
	"fmt"

	"github.com/segmentio/ksuid"

	"github.com/weiawesome/wes-io-live/quickid/internal/idgen"
)

const ksuidLength = 27

// KSUIDGenerator generates KSUIDs.
type KSUIDGenerator struct{}

func NewKSUIDGenerator() *KSUIDGenerator {
	return &KSUIDGenerator{}
}

func (g *KSUIDGenerator) Name() string { return SchemeKSUID }

func (g *KSUIDGenerator) Generate() (idgen.ID, error) {
	id, err := ksuid.NewRandom()
	if err != nil {
		return idgen.ID{}, fmt.Errorf("failed to generate KSUID: %w", err)
	}
	return idgen.Text(id.String()), nil
}

func (g *KSUIDGenerator) Validate(id string) (bool, string) {
	if len(id) != ksuidLength {
		return false, fmt.Sprintf("expected length %d, got %d", ksuidLength, len(id))
	}
	if _, err := ksuid.Parse(id); err != nil {
		return false, fmt.Sprintf("invalid KSUID format: %v", err)
	}
	return true, ""
}

func (g *KSUIDGenerator) Parse(id string) (*ParseResult, error) {
	parsed, err := ksuid.Parse(id)
	if err != nil {
		return nil, invalidID(SchemeKSUID, err.Error())
	}

	return &ParseResult{
		IDLength:      len(id),
		TimestampMs:   parsed.Time().UnixMilli(),
		RandomPayload: hex.EncodeToString(parsed.Payload()),
	}, nil
}
