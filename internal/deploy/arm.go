package deploy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	v1 "github.com/neutree-ai/artifact-deployer/api/v1"
	"github.com/neutree-ai/artifact-deployer/internal/verification"
	"github.com/neutree-ai/artifact-deployer/pkg/client/arm"
)

const DefaultARMTimeout = 10 * time.Minute

var _ verification.Strategy = &armStrategy{}

type armStrategy struct {
	client arm.Interface
	logger klog.Logger
}

func newARMStrategy(client arm.Interface, logger klog.Logger) *armStrategy {
	return &armStrategy{client: client, logger: logger}
}

func (s *armStrategy) Name() string {
	return string(v1.ARMTargetType)
}

func (s *armStrategy) DefaultTimeout() time.Duration {
	return DefaultARMTimeout
}

func (s *armStrategy) PollInterval() time.Duration {
	return RemotePollInterval
}

func (s *armStrategy) IsDeployed(ctx context.Context, deployment *v1.Deployment) (verification.Status, error) {
	app, err := s.client.FindApplication(ctx, deployment.ApplicationName)
	if err != nil {
		return verification.Status{}, err
	}

	if app == nil {
		return verification.InProgressStatus("application not found"), nil
	}

	status := app.LastReportedStatus

	switch {
	case strings.Contains(status, failedMarker):
		return verification.FailureStatus(status), nil
	case status == arm.StatusStarted:
		return verification.SuccessStatus(status), nil
	default:
		return verification.InProgressStatus(fmt.Sprintf("desired %s, reported %s", app.DesiredStatus, status)), nil
	}
}

func (s *armStrategy) OnTimeout(ctx context.Context, deployment *v1.Deployment) {
	app, err := s.client.FindApplication(ctx, deployment.ApplicationName)
	if err != nil {
		s.logger.Error(err, "Failed to look up application to stop")
		return
	}

	if app == nil {
		return
	}

	if err := s.client.StopApplication(ctx, app.ID); err != nil {
		s.logger.Error(err, "Failed to stop application after unsuccessful deployment", "applicationID", app.ID)
	}
}

type armDeployer struct {
	applicationOnly

	deployment *v1.Deployment
	client     arm.Interface
	verifier   *verification.Verifier
	logger     klog.Logger
}

var _ ArtifactDeployer = &armDeployer{}

func newARMDeployer(deployment *v1.Deployment, client arm.Interface, verifier *verification.Verifier,
	logger klog.Logger) *armDeployer {
	return &armDeployer{
		applicationOnly: applicationOnly{target: v1.ARMTargetType},
		deployment:      deployment,
		client:          client,
		verifier:        verifier,
		logger:          logger,
	}
}

func (d *armDeployer) DeployApplication(ctx context.Context) error {
	target := d.deployment.Target.ARM
	name := d.deployment.ApplicationName

	existing, err := d.client.FindApplication(ctx, name)
	if err != nil {
		return errors.Wrapf(err, "failed to look up application %s", name)
	}

	if existing != nil {
		d.logger.Info("Redeploying application", "applicationID", existing.ID)

		if _, err = d.client.RedeployApplication(ctx, existing.ID, d.deployment.Artifact); err != nil {
			return err
		}

		return d.verifier.AssertDeployment(ctx, d.deployment)
	}

	targetID, err := d.client.FindTargetID(ctx, target.TargetKind, target.TargetName)
	if err != nil {
		return err
	}

	d.logger.Info("Deploying application", "targetKind", target.TargetKind, "targetID", targetID)

	if _, err = d.client.DeployApplication(ctx, targetID, name, d.deployment.Artifact); err != nil {
		return err
	}

	return d.verifier.AssertDeployment(ctx, d.deployment)
}

func (d *armDeployer) UndeployApplication(ctx context.Context) error {
	app, err := d.client.FindApplication(ctx, d.deployment.ApplicationName)
	if err != nil {
		return errors.Wrapf(err, "failed to look up application %s", d.deployment.ApplicationName)
	}

	if app == nil {
		d.logger.Info("Application does not exist, nothing to undeploy")
		return nil
	}

	d.logger.Info("Deleting application", "applicationID", app.ID)

	return d.client.DeleteApplication(ctx, app.ID)
}
