package verification

import (
	"context"
	"time"

	v1 "github.com/neutree-ai/artifact-deployer/api/v1"
)

// Strategy interprets a target's native status for one deployment.
//
// A Strategy may memoise lookups for the deployment it was created for, so a
// single instance must never be shared between deployments.
type Strategy interface {
	// Name identifies the target in logs and errors.
	Name() string

	// IsDeployed performs a fresh status query. A returned error is an
	// infrastructure error and is propagated to the caller untouched.
	IsDeployed(ctx context.Context, deployment *v1.Deployment) (Status, error)

	// OnTimeout is a best-effort cleanup called at most once when
	// verification ends without success.
	OnTimeout(ctx context.Context, deployment *v1.Deployment)

	// DefaultTimeout applies when the deployment has no explicit timeout.
	DefaultTimeout() time.Duration

	// PollInterval is the fixed delay between two status queries.
	PollInterval() time.Duration
}
