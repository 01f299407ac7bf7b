package deploy

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	v1 "github.com/neutree-ai/artifact-deployer/api/v1"
	"github.com/neutree-ai/artifact-deployer/internal/probe"
	"github.com/neutree-ai/artifact-deployer/internal/verification"
	"github.com/neutree-ai/artifact-deployer/pkg/standalone"
)

const DefaultStandaloneTimeout = 10 * time.Minute

// Runtime is the local runtime control used by the standalone deployer.
type Runtime interface {
	EnsureRunning(ctx context.Context) error
	Install(dir, name, artifact string) error
	Uninstall(dir, name string) error
	DeployedSince(dir, name string, since time.Time) bool
	AnchorPath(dir, name string) string
}

var _ Runtime = &standalone.Controller{}

type standaloneDeployer struct {
	deployment *v1.Deployment
	runtime    Runtime
	prober     *probe.PollingProber
	logger     klog.Logger
}

var _ ArtifactDeployer = &standaloneDeployer{}

func newStandaloneDeployer(deployment *v1.Deployment, runtime Runtime, prober *probe.PollingProber,
	logger klog.Logger) *standaloneDeployer {
	return &standaloneDeployer{
		deployment: deployment,
		runtime:    runtime,
		prober:     prober,
		logger:     logger,
	}
}

func (d *standaloneDeployer) deploy(ctx context.Context, dir string) error {
	name := d.deployment.ApplicationName

	if err := d.runtime.EnsureRunning(ctx); err != nil {
		return err
	}

	d.logger.Info("Copying artifact to runtime", "dir", dir)

	installedAt := time.Now()

	if err := d.runtime.Install(dir, name, d.deployment.Artifact); err != nil {
		return err
	}

	anchor := d.runtime.AnchorPath(dir, name)
	check := probe.FuncProbe(func(context.Context) bool {
		return d.runtime.DeployedSince(dir, name, installedAt)
	}, fmt.Sprintf("%s was not deployed, anchor file %s not found", name, anchor))

	err := d.prober.Check(ctx, check)
	if err == nil {
		d.logger.Info("Deployment confirmed", "anchor", anchor)
		return nil
	}

	var probeErr *probe.ProbeError
	if errors.As(err, &probeErr) {
		return verification.NewTimeoutError(name, string(v1.StandaloneTargetType), probeErr.Description, probeErr.Err)
	}

	return err
}

func (d *standaloneDeployer) DeployApplication(ctx context.Context) error {
	return d.deploy(ctx, standalone.AppsDir)
}

func (d *standaloneDeployer) UndeployApplication(context.Context) error {
	d.logger.Info("Removing application anchor")

	return d.runtime.Uninstall(standalone.AppsDir, d.deployment.ApplicationName)
}

func (d *standaloneDeployer) DeployDomain(ctx context.Context) error {
	return d.deploy(ctx, standalone.DomainsDir)
}

func (d *standaloneDeployer) UndeployDomain(context.Context) error {
	d.logger.Info("Removing domain anchor")

	return d.runtime.Uninstall(standalone.DomainsDir, d.deployment.ApplicationName)
}
