package deploy

import (
	"context"
	"time"

	"k8s.io/klog/v2"

	v1 "github.com/neutree-ai/artifact-deployer/api/v1"
	"github.com/neutree-ai/artifact-deployer/internal/verification"
	"github.com/neutree-ai/artifact-deployer/pkg/client/agent"
)

const DefaultAgentTimeout = 10 * time.Minute

var _ verification.Strategy = &agentStrategy{}

// agentStrategy has no failure state: the agent only tells whether the
// artifact is deployed, so an application that never gets there times out.
type agentStrategy struct {
	client agent.Interface
	logger klog.Logger
}

func newAgentStrategy(client agent.Interface, logger klog.Logger) *agentStrategy {
	return &agentStrategy{client: client, logger: logger}
}

func (s *agentStrategy) Name() string {
	return string(v1.AgentTargetType)
}

func (s *agentStrategy) DefaultTimeout() time.Duration {
	return DefaultAgentTimeout
}

func (s *agentStrategy) PollInterval() time.Duration {
	return RemotePollInterval
}

func (s *agentStrategy) IsDeployed(ctx context.Context, deployment *v1.Deployment) (verification.Status, error) {
	var (
		artifact *agent.Artifact
		err      error
	)

	if deployment.GetPackaging() == v1.DomainPackaging {
		artifact, err = s.client.GetDomain(ctx, deployment.ApplicationName)
	} else {
		artifact, err = s.client.GetApplication(ctx, deployment.ApplicationName)
	}

	if err != nil {
		return verification.Status{}, err
	}

	if artifact == nil {
		return verification.InProgressStatus("not known to the agent yet"), nil
	}

	if artifact.State == agent.DeployedState {
		return verification.SuccessStatus(artifact.State), nil
	}

	return verification.InProgressStatus(artifact.State), nil
}

func (s *agentStrategy) OnTimeout(ctx context.Context, deployment *v1.Deployment) {
	var err error
	if deployment.GetPackaging() == v1.DomainPackaging {
		err = s.client.UndeployDomain(ctx, deployment.ApplicationName)
	} else {
		err = s.client.UndeployApplication(ctx, deployment.ApplicationName)
	}

	if err != nil {
		s.logger.Error(err, "Failed to undeploy after unsuccessful deployment")
	}
}

type agentDeployer struct {
	deployment *v1.Deployment
	client     agent.Interface
	verifier   *verification.Verifier
	logger     klog.Logger
}

var _ ArtifactDeployer = &agentDeployer{}

func newAgentDeployer(deployment *v1.Deployment, client agent.Interface, verifier *verification.Verifier,
	logger klog.Logger) *agentDeployer {
	return &agentDeployer{
		deployment: deployment,
		client:     client,
		verifier:   verifier,
		logger:     logger,
	}
}

func (d *agentDeployer) DeployApplication(ctx context.Context) error {
	d.logger.Info("Deploying application through agent")

	if err := d.client.DeployApplication(ctx, d.deployment.ApplicationName, d.deployment.Artifact); err != nil {
		return err
	}

	return d.verifier.AssertDeployment(ctx, d.deployment)
}

func (d *agentDeployer) UndeployApplication(ctx context.Context) error {
	d.logger.Info("Undeploying application through agent")

	return d.client.UndeployApplication(ctx, d.deployment.ApplicationName)
}

func (d *agentDeployer) DeployDomain(ctx context.Context) error {
	d.logger.Info("Deploying domain through agent")

	if err := d.client.DeployDomain(ctx, d.deployment.ApplicationName, d.deployment.Artifact); err != nil {
		return err
	}

	return d.verifier.AssertDeployment(ctx, d.deployment)
}

func (d *agentDeployer) UndeployDomain(ctx context.Context) error {
	d.logger.Info("Undeploying domain through agent")

	return d.client.UndeployDomain(ctx, d.deployment.ApplicationName)
}
