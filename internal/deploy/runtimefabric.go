package deploy

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	v1 "github.com/neutree-ai/artifact-deployer/api/v1"
	"github.com/neutree-ai/artifact-deployer/internal/verification"
	"github.com/neutree-ai/artifact-deployer/pkg/client/runtimefabric"
)

const (
	DefaultRuntimeFabricTimeout = 20 * time.Minute

	defaultRuntimeFabricReplicas = 1
)

var _ verification.Strategy = &runtimeFabricStrategy{}

// runtimeFabricStrategy remembers the deployment id once resolved, so one
// instance must serve a single deployment.
type runtimeFabricStrategy struct {
	client       runtimefabric.Interface
	logger       klog.Logger
	deploymentID string
}

func newRuntimeFabricStrategy(client runtimefabric.Interface, logger klog.Logger) *runtimeFabricStrategy {
	return &runtimeFabricStrategy{client: client, logger: logger}
}

func (s *runtimeFabricStrategy) Name() string {
	return string(v1.RuntimeFabricTargetType)
}

func (s *runtimeFabricStrategy) DefaultTimeout() time.Duration {
	return DefaultRuntimeFabricTimeout
}

func (s *runtimeFabricStrategy) PollInterval() time.Duration {
	return RemotePollInterval
}

func (s *runtimeFabricStrategy) resolveID(ctx context.Context, name string) (string, error) {
	if s.deploymentID != "" {
		return s.deploymentID, nil
	}

	id, err := s.client.FindDeployment(ctx, name)
	if err != nil {
		return "", err
	}

	s.deploymentID = id

	return id, nil
}

func (s *runtimeFabricStrategy) IsDeployed(ctx context.Context, deployment *v1.Deployment) (verification.Status, error) {
	id, err := s.resolveID(ctx, deployment.ApplicationName)
	if err != nil {
		return verification.Status{}, err
	}

	if id == "" {
		return verification.InProgressStatus("deployment not found"), nil
	}

	status, err := s.client.GetDeploymentStatus(ctx, id)
	if err != nil {
		return verification.Status{}, err
	}

	switch status {
	case runtimefabric.StatusApplied, runtimefabric.StatusStarted:
		return verification.SuccessStatus(status), nil
	case runtimefabric.StatusFailed:
		return verification.FailureStatus(status), nil
	case "":
		return verification.InProgressStatus("no status reported yet"), nil
	default:
		return verification.InProgressStatus(status), nil
	}
}

func (s *runtimeFabricStrategy) OnTimeout(ctx context.Context, deployment *v1.Deployment) {
	id, err := s.resolveID(ctx, deployment.ApplicationName)
	if err != nil {
		s.logger.Error(err, "Failed to resolve deployment to stop")
		return
	}

	if id == "" {
		return
	}

	if err := s.client.StopDeployment(ctx, id); err != nil {
		s.logger.Error(err, "Failed to stop deployment after unsuccessful deployment", "deploymentID", id)
	}
}

type runtimeFabricDeployer struct {
	applicationOnly

	deployment *v1.Deployment
	client     runtimefabric.Interface
	strategy   *runtimeFabricStrategy
	verifier   *verification.Verifier
	logger     klog.Logger
}

var _ ArtifactDeployer = &runtimeFabricDeployer{}

func newRuntimeFabricDeployer(deployment *v1.Deployment, client runtimefabric.Interface,
	strategy *runtimeFabricStrategy, verifier *verification.Verifier, logger klog.Logger) *runtimeFabricDeployer {
	return &runtimeFabricDeployer{
		applicationOnly: applicationOnly{target: v1.RuntimeFabricTargetType},
		deployment:      deployment,
		client:          client,
		strategy:        strategy,
		verifier:        verifier,
		logger:          logger,
	}
}

func (d *runtimeFabricDeployer) request(targetID string) (*runtimefabric.DeploymentRequest, error) {
	target := d.deployment.Target.RuntimeFabric

	group, asset, version, err := v1.ParseAssetReference(d.deployment.Artifact)
	if err != nil {
		return nil, err
	}

	replicas := target.Replicas
	if replicas == 0 {
		replicas = defaultRuntimeFabricReplicas
	}

	req := &runtimefabric.DeploymentRequest{
		Name: d.deployment.ApplicationName,
		Asset: runtimefabric.Asset{
			GroupID:   group,
			AssetID:   asset,
			Version:   version,
			Packaging: "jar",
		},
		RuntimeVersion: target.RuntimeVersion,
		DesiredState:   runtimefabric.DesiredStateStarted,
		Target: runtimefabric.DeploymentTarget{
			TargetID: targetID,
			Replicas: replicas,
		},
	}

	if target.CPU != "" || target.Memory != "" {
		req.Resources = &runtimefabric.Resources{CPU: target.CPU, Memory: target.Memory}
	}

	return req, nil
}

func (d *runtimeFabricDeployer) DeployApplication(ctx context.Context) error {
	target := d.deployment.Target.RuntimeFabric

	targetID, err := d.client.FindTargetID(ctx, target.FabricName)
	if err != nil {
		return err
	}

	req, err := d.request(targetID)
	if err != nil {
		return err
	}

	id, err := d.client.FindDeployment(ctx, req.Name)
	if err != nil {
		return errors.Wrapf(err, "failed to look up deployment %s", req.Name)
	}

	if id == "" {
		d.logger.Info("Creating deployment", "fabric", target.FabricName)

		id, err = d.client.CreateDeployment(ctx, req)
		if err != nil {
			return err
		}
	} else {
		d.logger.Info("Updating deployment", "fabric", target.FabricName, "deploymentID", id)

		if err = d.client.UpdateDeployment(ctx, id, req); err != nil {
			return err
		}
	}

	d.strategy.deploymentID = id

	return d.verifier.AssertDeployment(ctx, d.deployment)
}

func (d *runtimeFabricDeployer) UndeployApplication(ctx context.Context) error {
	id, err := d.client.FindDeployment(ctx, d.deployment.ApplicationName)
	if err != nil {
		return errors.Wrapf(err, "failed to look up deployment %s", d.deployment.ApplicationName)
	}

	if id == "" {
		d.logger.Info("Deployment does not exist, nothing to undeploy")
		return nil
	}

	d.logger.Info("Deleting deployment", "deploymentID", id)

	return d.client.DeleteDeployment(ctx, id)
}
