package deploy

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	v1 "github.com/neutree-ai/artifact-deployer/api/v1"
	"github.com/neutree-ai/artifact-deployer/internal/verification"
	"github.com/neutree-ai/artifact-deployer/pkg/client/cloudhub"
)

const (
	DefaultCloudHubTimeout = 20 * time.Minute

	// RemotePollInterval is shared by all control-plane backed targets, whose
	// state settles in tens of seconds.
	RemotePollInterval = 20 * time.Second

	failedMarker = "FAIL"
)

var _ verification.Strategy = &cloudHubStrategy{}

type cloudHubStrategy struct {
	client cloudhub.Interface
	logger klog.Logger
}

func newCloudHubStrategy(client cloudhub.Interface, logger klog.Logger) *cloudHubStrategy {
	return &cloudHubStrategy{client: client, logger: logger}
}

func (s *cloudHubStrategy) Name() string {
	return string(v1.CloudHubTargetType)
}

func (s *cloudHubStrategy) DefaultTimeout() time.Duration {
	return DefaultCloudHubTimeout
}

func (s *cloudHubStrategy) PollInterval() time.Duration {
	return RemotePollInterval
}

// IsDeployed maps the application status pair. A failure marker in either
// field wins over everything, an update in progress wins over a stale
// STARTED left over from the previous version.
func (s *cloudHubStrategy) IsDeployed(ctx context.Context, deployment *v1.Deployment) (verification.Status, error) {
	app, err := s.client.GetApplication(ctx, deployment.ApplicationName)
	if err != nil {
		return verification.Status{}, err
	}

	if app == nil {
		return verification.InProgressStatus("application not found"), nil
	}

	message := app.Status
	if app.DeploymentUpdateStatus != "" {
		message = app.Status + "/" + app.DeploymentUpdateStatus
	}

	switch {
	case strings.Contains(app.Status, failedMarker), strings.Contains(app.DeploymentUpdateStatus, failedMarker):
		return verification.FailureStatus(message), nil
	case app.DeploymentUpdateStatus == cloudhub.UpdateStatusDeploying:
		return verification.InProgressStatus(message), nil
	case app.Status == cloudhub.StatusStarted:
		return verification.SuccessStatus(message), nil
	default:
		return verification.InProgressStatus(message), nil
	}
}

func (s *cloudHubStrategy) OnTimeout(ctx context.Context, deployment *v1.Deployment) {
	if err := s.client.StopApplication(ctx, deployment.ApplicationName); err != nil {
		s.logger.Error(err, "Failed to stop application after unsuccessful deployment")
	}
}

type cloudHubDeployer struct {
	applicationOnly

	deployment *v1.Deployment
	client     cloudhub.Interface
	verifier   *verification.Verifier
	logger     klog.Logger
}

var _ ArtifactDeployer = &cloudHubDeployer{}

func newCloudHubDeployer(deployment *v1.Deployment, client cloudhub.Interface, verifier *verification.Verifier,
	logger klog.Logger) *cloudHubDeployer {
	return &cloudHubDeployer{
		applicationOnly: applicationOnly{target: v1.CloudHubTargetType},
		deployment:      deployment,
		client:          client,
		verifier:        verifier,
		logger:          logger,
	}
}

func (d *cloudHubDeployer) DeployApplication(ctx context.Context) error {
	target := d.deployment.Target.CloudHub
	name := d.deployment.ApplicationName

	req := cloudhub.NewApplicationRequest(name, target.Region, target.RuntimeVersion,
		target.Workers, target.WorkerType, target.Properties)

	existing, err := d.client.GetApplication(ctx, name)
	if err != nil {
		return errors.Wrapf(err, "failed to look up application %s", name)
	}

	if existing == nil {
		d.logger.Info("Creating application")

		err = d.client.CreateApplication(ctx, req)
	} else {
		d.logger.Info("Updating application", "status", existing.Status)

		err = d.client.UpdateApplication(ctx, name, req)
	}

	if err != nil {
		return err
	}

	if err = d.client.UploadFile(ctx, name, d.deployment.Artifact); err != nil {
		return err
	}

	if err = d.client.StartApplication(ctx, name); err != nil {
		return err
	}

	return d.verifier.AssertDeployment(ctx, d.deployment)
}

func (d *cloudHubDeployer) UndeployApplication(ctx context.Context) error {
	d.logger.Info("Deleting application")

	return d.client.DeleteApplication(ctx, d.deployment.ApplicationName)
}
