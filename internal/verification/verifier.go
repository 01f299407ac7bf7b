package verification

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	v1 "github.com/neutree-ai/artifact-deployer/api/v1"
	"github.com/neutree-ai/artifact-deployer/internal/retry"
)

// Verifier blocks until a strategy confirms a deployment or gives up.
type Verifier struct {
	strategy     Strategy
	pollInterval time.Duration
	logger       klog.Logger
}

type Option func(*Verifier)

// WithPollInterval overrides the strategy's poll interval.
func WithPollInterval(interval time.Duration) Option {
	return func(v *Verifier) {
		v.pollInterval = interval
	}
}

func WithLogger(logger klog.Logger) Option {
	return func(v *Verifier) {
		v.logger = logger
	}
}

func NewVerifier(strategy Strategy, opts ...Option) *Verifier {
	v := &Verifier{
		strategy:     strategy,
		pollInterval: strategy.PollInterval(),
		logger:       klog.Background(),
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

func (v *Verifier) Strategy() Strategy {
	return v.strategy
}

// AssertDeployment polls the target until the deployment is confirmed.
//
// It returns nil on success. On timeout, interruption or a failure reported
// by the target it runs the strategy cleanup once and returns a
// *DeploymentError. Errors from the status query itself are returned without
// cleanup.
func (v *Verifier) AssertDeployment(ctx context.Context, deployment *v1.Deployment) error {
	timeout := deployment.EffectiveTimeout(v.strategy.DefaultTimeout())
	retrier := retry.New(retry.WithTimeout(timeout), retry.WithInterval(v.pollInterval))

	logger := v.logger.WithValues("application", deployment.ApplicationName, "target", v.strategy.Name())
	logger.Info("Waiting for deployment to complete", "timeout", timeout, "interval", retrier.Interval())

	var last Status

	polls := 0
	err := retrier.Retry(ctx, func(ctx context.Context) (bool, error) {
		polls++

		status, err := v.strategy.IsDeployed(ctx, deployment)
		if err != nil {
			return false, err
		}

		last = status
		logger.V(4).Info("Polled deployment status", "poll", polls, "outcome", status.Outcome, "status", status.Message)

		return status.Outcome.Terminal(), nil
	})

	switch {
	case err == nil && last.Outcome == Success:
		logger.Info("Deployment confirmed", "polls", polls)
		return nil
	case err == nil:
		logger.Info("Deployment reported failure, running cleanup", "status", last.Message)
		v.strategy.OnTimeout(ctx, deployment)

		return NewFailureError(deployment.ApplicationName, v.strategy.Name(), last.Message)
	case retry.IsTimeout(err) || retry.IsInterrupted(err):
		logger.Info("Deployment not confirmed in time, running cleanup", "polls", polls, "reason", err.Error())
		v.strategy.OnTimeout(cleanupContext(ctx), deployment)

		return NewTimeoutError(deployment.ApplicationName, v.strategy.Name(), last.Message, err)
	default:
		return errors.WithMessagef(err, "failed to query %s deployment status of %s", v.strategy.Name(), deployment.ApplicationName)
	}
}

// cleanupContext keeps cleanup possible after the caller's context was cancelled.
func cleanupContext(ctx context.Context) context.Context {
	if ctx.Err() == nil {
		return ctx
	}

	return context.WithoutCancel(ctx)
}
