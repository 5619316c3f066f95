package cli

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/weiawesome/wes-io-live/quickid/internal/config"
	"github.com/weiawesome/wes-io-live/quickid/internal/generator"
	"github.com/weiawesome/wes-io-live/quickid/internal/idgen"
	"github.com/weiawesome/wes-io-live/quickid/internal/service"
	pkglog "github.com/weiawesome/wes-io-live/quickid/pkg/log"
)

const (
	requestIDPrefix = "req"
	requestIDLength = 24
)

// requestIDGenerator returns quick IDs such as "req_9f86d081884c7d659a" for
// log correlation, or "" when entropy is unavailable.
func requestIDGenerator() func() string {
	gen := idgen.New(
		idgen.WithPrefix(requestIDPrefix),
		idgen.WithLength(requestIDLength),
	)
	return func() string {
		id, err := gen.Generate()
		if err != nil {
			return ""
		}
		return id.String()
	}
}

// buildService assembles every scheme from cfg into an IDService.
func buildService(cfg *config.Config, logger zerolog.Logger) (service.IDService, error) {
	defaults := service.QuickDefaults{
		Prefix: cfg.QuickID.Prefix,
		Type:   cfg.QuickID.Type,
		Length: cfg.QuickID.Length,
	}
	quick, err := defaults.Generator()
	if err != nil {
		return nil, fmt.Errorf("failed to create quick generator: %w", err)
	}
	logger.Debug().
		Str(pkglog.FieldPrefix, defaults.Prefix).
		Str(pkglog.FieldIDType, quick.Kind().String()).
		Msg("quick generator initialized")

	nanoidGen, err := generator.NewNanoIDGenerator(cfg.NanoID.Size, cfg.NanoID.Alphabet)
	if err != nil {
		return nil, fmt.Errorf("failed to create nanoid generator: %w", err)
	}
	logger.Debug().Int("size", cfg.NanoID.Size).Msg("nanoid generator initialized")

	cuid2Gen, err := generator.NewCUID2Generator(cfg.CUID2.Length)
	if err != nil {
		return nil, fmt.Errorf("failed to create cuid2 generator: %w", err)
	}
	logger.Debug().Int(pkglog.FieldLength, cfg.CUID2.Length).Msg("cuid2 generator initialized")

	registry := generator.NewRegistry(
		generator.NewQuickGenerator(quick),
		generator.NewUUIDGenerator(),
		generator.NewULIDGenerator(),
		generator.NewKSUIDGenerator(),
		nanoidGen,
		cuid2Gen,
	)

	limits := service.Limits{
		MaxBatch:  cfg.Limits.MaxBatch,
		MaxTrials: cfg.Limits.MaxTrials,
	}
	return service.NewIDService(registry, defaults, limits), nil
}
