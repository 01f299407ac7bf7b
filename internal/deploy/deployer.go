package deploy

import (
	"context"

	"github.com/pkg/errors"

	v1 "github.com/neutree-ai/artifact-deployer/api/v1"
)

// ArtifactDeployer pushes artifacts to one target. Deploy operations block
// until the target confirmed the deployment; undeploy operations only ask the
// target to remove the artifact.
type ArtifactDeployer interface {
	DeployApplication(ctx context.Context) error
	UndeployApplication(ctx context.Context) error
	DeployDomain(ctx context.Context) error
	UndeployDomain(ctx context.Context) error
}

// Deployer deploys or undeploys the artifact described by one Deployment.
type Deployer interface {
	Deploy(ctx context.Context) error
	Undeploy(ctx context.Context) error
}

type deployer struct {
	deployment *v1.Deployment
	artifacts  ArtifactDeployer
}

var _ Deployer = &deployer{}

func newDeployer(deployment *v1.Deployment, artifacts ArtifactDeployer) *deployer {
	return &deployer{
		deployment: deployment,
		artifacts:  artifacts,
	}
}

func (d *deployer) Deploy(ctx context.Context) error {
	if err := d.deployment.Validate(); err != nil {
		return err
	}

	switch d.deployment.GetPackaging() {
	case v1.DomainPackaging:
		return d.artifacts.DeployDomain(ctx)
	default:
		return d.artifacts.DeployApplication(ctx)
	}
}

func (d *deployer) Undeploy(ctx context.Context) error {
	if err := d.deployment.Validate(); err != nil {
		return err
	}

	switch d.deployment.GetPackaging() {
	case v1.DomainPackaging:
		return d.artifacts.UndeployDomain(ctx)
	default:
		return d.artifacts.UndeployApplication(ctx)
	}
}

// applicationOnly is embedded by artifact deployers of targets without domain support.
type applicationOnly struct {
	target v1.TargetType
}

func (a applicationOnly) DeployDomain(context.Context) error {
	return errors.Wrapf(ErrUnsupportedPackaging, "%s does not support domains", a.target)
}

func (a applicationOnly) UndeployDomain(context.Context) error {
	return errors.Wrapf(ErrUnsupportedPackaging, "%s does not support domains", a.target)
}
