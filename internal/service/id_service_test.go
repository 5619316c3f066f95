package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/wes-io-live/quickid/internal/generator"
	"github.com/weiawesome/wes-io-live/quickid/internal/idgen"
)

func newTestService(t *testing.T, defaults QuickDefaults) IDService {
	t.Helper()

	quick, err := defaults.Generator()
	require.NoError(t, err)

	registry := generator.NewRegistry(
		generator.NewQuickGenerator(quick),
		generator.NewUUIDGenerator(),
		generator.NewULIDGenerator(),
	)
	return NewIDService(registry, defaults, Limits{MaxBatch: 50, MaxTrials: 5000})
}

func intPtr(n int) *int { return &n }

func TestGenerate_Defaults(t *testing.T) {
	svc := newTestService(t, QuickDefaults{Prefix: "svc", Type: "string", Length: 20})

	id, err := svc.Generate(context.Background(), GenerateRequest{})
	require.NoError(t, err)
	assert.Len(t, id.String(), 20)
	assert.True(t, strings.HasPrefix(id.String(), "svc_"))
}

func TestGenerate_RequestOverrides(t *testing.T) {
	svc := newTestService(t, QuickDefaults{Prefix: "svc", Type: "string", Length: 20})
	ctx := context.Background()

	id, err := svc.Generate(ctx, GenerateRequest{Prefix: "job", Length: intPtr(30)})
	require.NoError(t, err)
	assert.Len(t, id.String(), 30)
	assert.True(t, strings.HasPrefix(id.String(), "job_"))

	id, err = svc.Generate(ctx, GenerateRequest{Type: "number", Length: intPtr(8)})
	require.NoError(t, err)
	assert.True(t, id.IsNumber())
	assert.LessOrEqual(t, len(id.String()), 8)

	id, err = svc.Generate(ctx, GenerateRequest{Length: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, "", id.String())
}

func TestGenerate_Errors(t *testing.T) {
	svc := newTestService(t, QuickDefaults{})
	ctx := context.Background()

	_, err := svc.Generate(ctx, GenerateRequest{Type: "hex"})
	assert.ErrorIs(t, err, idgen.ErrInvalidKind)

	_, err = svc.Generate(ctx, GenerateRequest{Type: "number", Length: intPtr(0)})
	assert.ErrorIs(t, err, idgen.ErrInvalidLength)

	_, err = svc.Generate(ctx, GenerateRequest{Scheme: "snowflake"})
	assert.ErrorIs(t, err, generator.ErrUnknownScheme)
}

func TestGenerate_OtherSchemes(t *testing.T) {
	svc := newTestService(t, QuickDefaults{})

	id, err := svc.Generate(context.Background(), GenerateRequest{Scheme: generator.SchemeUUID})
	require.NoError(t, err)
	assert.Len(t, id.String(), 36)
}

func TestGenerateBatch(t *testing.T) {
	svc := newTestService(t, QuickDefaults{})
	ctx := context.Background()

	ids, err := svc.GenerateBatch(ctx, GenerateRequest{Prefix: "b"}, 50)
	require.NoError(t, err)
	assert.Len(t, ids, 50)
	assert.True(t, svc.Duplicates(ctx, ids).HasDuplicateFree)

	for _, count := range []int{0, -1, 51} {
		_, err := svc.GenerateBatch(ctx, GenerateRequest{}, count)
		assert.ErrorIs(t, err, ErrInvalidCount, "count %d", count)
	}
}

func TestValidate(t *testing.T) {
	svc := newTestService(t, QuickDefaults{Prefix: "svc"})
	ctx := context.Background()

	id, err := svc.Generate(ctx, GenerateRequest{})
	require.NoError(t, err)

	res, err := svc.Validate(ctx, "", id.String())
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, generator.SchemeQuick, res.Scheme)

	res, err = svc.Validate(ctx, generator.SchemeUUID, id.String())
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.NotEmpty(t, res.Reason)

	_, err = svc.Validate(ctx, "nope", "x")
	assert.ErrorIs(t, err, generator.ErrUnknownScheme)
}

func TestTest(t *testing.T) {
	svc := newTestService(t, QuickDefaults{})
	ctx := context.Background()

	res, err := svc.Test(ctx, "", 2000)
	require.NoError(t, err)
	assert.Equal(t, &TestResult{Scheme: generator.SchemeQuick, Trials: 2000, Unique: true}, res)

	res, err = svc.Test(ctx, generator.SchemeULID, 0)
	require.NoError(t, err)
	assert.Equal(t, 5000, res.Trials)
	assert.True(t, res.Unique)

	for _, trials := range []int{-1, 5001} {
		_, err := svc.Test(ctx, "", trials)
		assert.ErrorIs(t, err, ErrInvalidTrials)
	}
}

func TestTest_Canceled(t *testing.T) {
	svc := newTestService(t, QuickDefaults{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Test(ctx, "", 100)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDuplicates(t *testing.T) {
	svc := newTestService(t, QuickDefaults{})

	report := svc.Duplicates(context.Background(), idgen.Texts("a", "b", "a"))
	assert.False(t, report.HasDuplicateFree)
	assert.Equal(t, idgen.Texts("a"), report.DuplicateValues)
	assert.Equal(t, []string{"Case 2 and 0 are duplicates"}, report.CollisionNotes)
}

func TestSchemes(t *testing.T) {
	svc := newTestService(t, QuickDefaults{})
	assert.Equal(t, []string{"quick", "ulid", "uuid"}, svc.Schemes())
}

func TestQuickDefaults_InvalidType(t *testing.T) {
	_, err := QuickDefaults{Type: "binary"}.Generator()
	assert.ErrorIs(t, err, idgen.ErrInvalidKind)
}

func TestGenerate_TypeOverrideKeepsPerKindDefaultLength(t *testing.T) {
	svc := newTestService(t, QuickDefaults{Type: "string", Length: 24})
	ctx := context.Background()

	id, err := svc.Generate(ctx, GenerateRequest{Type: "number"})
	require.NoError(t, err)
	assert.True(t, id.IsNumber())
	assert.LessOrEqual(t, len(id.String()), idgen.MaxNumericLength)

	id, err = svc.Generate(ctx, GenerateRequest{Type: "string", Prefix: "p"})
	require.NoError(t, err)
	assert.Len(t, id.String(), 24)

	numeric := newTestService(t, QuickDefaults{Type: "number", Length: 8})
	id, err = numeric.Generate(ctx, GenerateRequest{Type: "string"})
	require.NoError(t, err)
	assert.Len(t, id.String(), idgen.DefaultTextLength)

	id, err = numeric.Generate(ctx, GenerateRequest{Type: "numeric"})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(id.String()), 8)
}

func TestParse(t *testing.T) {
	svc := newTestService(t, QuickDefaults{Prefix: "svc"})
	ctx := context.Background()

	id, err := svc.Generate(ctx, GenerateRequest{Scheme: generator.SchemeULID})
	require.NoError(t, err)

	res, err := svc.Parse(ctx, generator.SchemeULID, id.String())
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, generator.SchemeULID, res.Scheme)
	require.NotNil(t, res.ParseResult)
	assert.Positive(t, res.TimestampMs)

	res, err = svc.Parse(ctx, "", "svc_0123456789ab")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, "svc", res.Prefix)
	assert.Equal(t, "0123456789ab", res.Body)

	res, err = svc.Parse(ctx, generator.SchemeUUID, "not-a-uuid")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.NotEmpty(t, res.ErrorMessage)
	assert.Nil(t, res.ParseResult)

	_, err = svc.Parse(ctx, "nope", "x")
	assert.ErrorIs(t, err, generator.ErrUnknownScheme)
}
