package probe

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/neutree-ai/artifact-deployer/internal/retry"
)

const (
	DefaultTimeout  = 10 * time.Minute
	DefaultInterval = 500 * time.Millisecond
)

// Probe is a stateless check re-evaluated on every poll.
type Probe interface {
	IsSatisfied(ctx context.Context) bool
	DescribeFailure() string
}

type funcProbe struct {
	check       func(ctx context.Context) bool
	description string
}

// FuncProbe adapts a check function and a failure description into a Probe.
func FuncProbe(check func(ctx context.Context) bool, description string) Probe {
	return &funcProbe{check: check, description: description}
}

func (p *funcProbe) IsSatisfied(ctx context.Context) bool {
	return p.check(ctx)
}

func (p *funcProbe) DescribeFailure() string {
	return p.description
}

// ProbeError is returned when a probe was not satisfied before the deadline.
type ProbeError struct {
	Description string
	Err         error
}

func (e *ProbeError) Error() string {
	return e.Description
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// PollingProber checks a probe at a short fixed interval. Unlike a
// verification strategy it has no terminal failure: not being satisfied by
// the deadline is the only way to fail.
type PollingProber struct {
	timeout  time.Duration
	interval time.Duration
}

func NewPollingProber(timeout, interval time.Duration) *PollingProber {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if interval <= 0 {
		interval = DefaultInterval
	}

	return &PollingProber{timeout: timeout, interval: interval}
}

func (p *PollingProber) Check(ctx context.Context, probe Probe) error {
	r := retry.New(retry.WithTimeout(p.timeout), retry.WithInterval(p.interval))

	err := r.Retry(ctx, func(ctx context.Context) (bool, error) {
		return probe.IsSatisfied(ctx), nil
	})
	if err == nil {
		return nil
	}

	if retry.IsTimeout(err) || retry.IsInterrupted(err) {
		return &ProbeError{Description: probe.DescribeFailure(), Err: err}
	}

	return errors.Wrap(err, "failed to check probe")
}
