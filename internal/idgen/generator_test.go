package idgen

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constReader fills every read with the same byte.
type constReader byte

func (r constReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r)
	}
	return len(p), nil
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device not ready")
}

type fixedSource struct {
	f float64
	n int
}

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) IntN(int) int     { return s.n }

var fixedTime = time.UnixMilli(1700000000000)

func deterministic(opts ...Option) *Generator {
	base := []Option{
		WithEntropy(constReader(0xab)),
		WithSource(fixedSource{f: 0.5, n: 42}),
		WithClock(func() time.Time { return fixedTime }),
	}
	return New(append(base, opts...)...)
}

func TestGenerate_DefaultTextLength(t *testing.T) {
	g := New()
	for i := 0; i < 100; i++ {
		id, err := g.Generate()
		require.NoError(t, err)
		assert.False(t, id.IsNumber())
		assert.Len(t, id.String(), DefaultTextLength)
	}
}

func TestGenerateLength_ExactTextLength(t *testing.T) {
	g := New()
	for _, n := range []int{1, 8, 16, 32, 40, 47} {
		id, err := g.GenerateLength(n)
		require.NoError(t, err)
		assert.Len(t, id.String(), n, "length %d", n)
	}
}

func TestGenerate_TextLayout(t *testing.T) {
	g := deterministic(WithPrefix("log"))

	id, err := g.GenerateLength(100)
	require.NoError(t, err)

	want := "log_" + strings.Repeat("ab", 16) + "1700000000000" + "500000000" + "171"
	assert.Equal(t, want, id.String())
}

func TestGenerate_TextLayoutWithoutPrefix(t *testing.T) {
	g := deterministic()

	id, err := g.GenerateLength(100)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("ab", 16)+"1700000000000500000000171", id.String())

	short, err := g.Generate()
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("ab", 8), short.String())
}

func TestGenerate_PrefixCountsTowardLength(t *testing.T) {
	g := New(WithPrefix("order"))

	id, err := g.Generate()
	require.NoError(t, err)
	assert.Len(t, id.String(), DefaultTextLength)
	assert.True(t, strings.HasPrefix(id.String(), "order_"))
	assert.Regexp(t, regexp.MustCompile(`^order_[0-9a-f]{10}$`), id.String())
}

func TestGenerate_MultiBytePrefixTruncatesOnCharacters(t *testing.T) {
	g := deterministic(WithPrefix("日本"))

	id, err := g.GenerateLength(3)
	require.NoError(t, err)
	assert.Equal(t, "日本_", id.String())
}

func TestGenerateLength_NonPositiveTextIsEmpty(t *testing.T) {
	g := New()
	for _, n := range []int{0, -1, -50} {
		id, err := g.GenerateLength(n)
		require.NoError(t, err)
		assert.Equal(t, "", id.String())
	}
}

func TestGenerate_ConfiguredLength(t *testing.T) {
	g := New(WithLength(24))
	id, err := g.Generate()
	require.NoError(t, err)
	assert.Len(t, id.String(), 24)

	empty := New(WithLength(0))
	id, err = empty.Generate()
	require.NoError(t, err)
	assert.Equal(t, "", id.String())
}

func TestGenerate_ConsecutiveCallsDiffer(t *testing.T) {
	g := New()
	seen := make(map[ID]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id, err := g.Generate()
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup, "duplicate ID after %d iterations: %s", i, id)
		seen[id] = struct{}{}
	}
}

func TestGenerate_PrefixesDoNotLeak(t *testing.T) {
	alpha := New(WithPrefix("alpha"))
	omega := New(WithPrefix("omega"))

	for i := 0; i < 200; i++ {
		a, err := alpha.GenerateLength(40)
		require.NoError(t, err)
		o, err := omega.GenerateLength(40)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(a.String(), "alpha_"))
		assert.True(t, strings.HasPrefix(o.String(), "omega_"))
		assert.NotContains(t, a.String(), "omega")
		assert.NotContains(t, o.String(), "alpha")
	}
	assert.Equal(t, "alpha", alpha.Prefix())
	assert.Equal(t, "omega", omega.Prefix())
}

func TestGenerate_NumericLayout(t *testing.T) {
	g := deterministic(WithKind(KindNumber))

	id, err := g.GenerateLength(10)
	require.NoError(t, err)
	assert.True(t, id.IsNumber())
	assert.Equal(t, int64(4217000000), id.Int())

	full, err := g.Generate()
	require.NoError(t, err)
	assert.Equal(t, int64(421700000000000500), full.Int())
}

func TestGenerate_NumericDigits(t *testing.T) {
	g := New(WithKind(KindNumber))
	for length := 1; length <= MaxNumericLength; length++ {
		id, err := g.GenerateLength(length)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, id.Int(), int64(0))
		assert.LessOrEqual(t, len(strconv.FormatInt(id.Int(), 10)), length)
	}
}

func TestGenerate_NumericInvalidLength(t *testing.T) {
	g := New(WithKind(KindNumber))
	for _, n := range []int{0, -4, MaxNumericLength + 1} {
		_, err := g.GenerateLength(n)
		assert.ErrorIs(t, err, ErrInvalidLength, "length %d", n)
	}

	_, err := New(WithKind(KindNumber), WithLength(0)).Generate()
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestGenerate_EntropyFailurePropagates(t *testing.T) {
	for _, kind := range []Kind{KindText, KindNumber} {
		g := New(WithKind(kind), WithEntropy(failingReader{}))
		_, err := g.Generate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEntropyUnavailable)
		assert.Contains(t, err.Error(), "device not ready")
	}
}

func TestGenerate_Concurrent(t *testing.T) {
	const goroutines = 20
	const perGoroutine = 100

	g := New(WithPrefix("c"), WithLength(30))
	results := make(chan ID, goroutines*perGoroutine)
	var wg sync.WaitGroup

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				id, err := g.Generate()
				if err != nil {
					t.Error(err)
					return
				}
				results <- id
			}
		}()
	}
	wg.Wait()
	close(results)

	ids := make([]ID, 0, goroutines*perGoroutine)
	for id := range results {
		ids = append(ids, id)
	}
	assert.True(t, FindDuplicates(ids).HasDuplicateFree)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, KindText, k)

	k, err = ParseKind("string")
	require.NoError(t, err)
	assert.Equal(t, KindText, k)

	k, err = ParseKind("Number")
	require.NoError(t, err)
	assert.Equal(t, KindNumber, k)
	assert.Equal(t, "number", k.String())

	_, err = ParseKind("uuid")
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestGenerator_Length(t *testing.T) {
	assert.Equal(t, DefaultTextLength, New().Length())
	assert.Equal(t, MaxNumericLength, New(WithKind(KindNumber)).Length())
	assert.Equal(t, 3, New(WithPrefix("job"), WithLength(3)).Length())
	assert.Equal(t, 0, New(WithLength(0)).Length())
}
