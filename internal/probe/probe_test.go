package probe

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"gotest.tools/v3/assert"

	"github.com/neutree-ai/artifact-deployer/internal/retry"
)

func TestPollingProber_Check(t *testing.T) {
	prober := NewPollingProber(time.Second, 50*time.Millisecond)

	calls := 0
	p := FuncProbe(func(context.Context) bool {
		calls++
		return calls >= 3
	}, "orders was not deployed")

	err := prober.Check(context.Background(), p)
	assert.NilError(t, err)
	assert.Equal(t, calls, 3)
}

func TestPollingProber_CheckTimeout(t *testing.T) {
	prober := NewPollingProber(300*time.Millisecond, 50*time.Millisecond)

	p := FuncProbe(func(context.Context) bool { return false }, "orders was not deployed")

	start := time.Now()
	err := prober.Check(context.Background(), p)

	assert.Error(t, err, "orders was not deployed")
	assert.Assert(t, time.Since(start) >= 250*time.Millisecond)

	var probeErr *ProbeError
	assert.Assert(t, errors.As(err, &probeErr))
	assert.Assert(t, retry.IsTimeout(err))
}

func TestNewPollingProber_Defaults(t *testing.T) {
	prober := NewPollingProber(0, 0)
	assert.Equal(t, prober.timeout, DefaultTimeout)
	assert.Equal(t, prober.interval, DefaultInterval)
}
