package z3

import (
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// newTestContext returns a context that is closed when the test ends. The
// test fails if any object created from it is still open at that point.
func newTestContext(t *testing.T) *Context {
	t.Helper()
	config := NewConfig()
	config.SetModelGeneration(true)
	ctx := NewContext(config)
	config.Close()

	t.Cleanup(func() {
		open := ctx.OpenHandles()
		ctx.Close()
		if !t.Failed() {
			require.Zero(t, open, "objects left open")
		}
	})
	return ctx
}

// requireFatal runs f and checks that it panics with a *FatalError.
func requireFatal(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a fatal error")
		_, ok := r.(*FatalError)
		require.True(t, ok, "panic value %v is not a *FatalError", r)
	}()
	f()
}

func TestVersion(t *testing.T) {
	require.True(t, strings.Contains(Version(), "."), Version())
}

func TestOperandCountLimit(t *testing.T) {
	require.EqualValues(t, 3, operandCount(3))
	if math.MaxInt > math.MaxUint32 {
		n := uint64(math.MaxUint32) + 1
		requireFatal(t, func() { operandCount(int(n)) })
	}
}

func TestNameWithNUL(t *testing.T) {
	ctx := newTestContext(t)
	requireFatal(t, func() { ctx.StringSymbol("a\x00b") })
}

func TestStringOfFailure(t *testing.T) {
	err := errors.Wrap(ErrFormat, "term")
	s := stringOf("", err)
	require.True(t, strings.HasPrefix(s, "%!v("), s)
	require.Equal(t, "ok", stringOf("ok", nil))
}

func TestConfigParams(t *testing.T) {
	config := NewConfig()
	config.SetTimeoutMsec(500)
	config.SetProofGeneration(false)
	params := config.Params()
	require.Equal(t, "500", params["timeout"])
	require.Equal(t, "false", params["proof"])

	params["timeout"] = "1"
	require.Equal(t, "500", config.Params()["timeout"])

	require.NoError(t, config.Close())
	require.NoError(t, config.Close())
	requireFatal(t, func() { NewContext(config) })
	requireFatal(t, func() { config.SetModelGeneration(true) })
}
