package standalone

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/neutree-ai/artifact-deployer/pkg/command"
)

const (
	DefaultLauncher = "bin/mule"

	AppsDir    = "apps"
	DomainsDir = "domains"

	anchorSuffix = "-anchor.txt"

	commandTimeout = 2 * time.Minute
)

// Controller drives a runtime installed on the local host. The runtime picks
// up artifacts dropped into its apps and domains directories and writes an
// anchor file next to each one once it is deployed.
type Controller struct {
	home     string
	launcher string
	executor command.Executor
	logger   klog.Logger
}

type Option func(*Controller)

func WithLauncher(launcher string) Option {
	return func(c *Controller) {
		if launcher != "" {
			c.launcher = launcher
		}
	}
}

func WithExecutor(executor command.Executor) Option {
	return func(c *Controller) {
		c.executor = executor
	}
}

func WithLogger(logger klog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

func NewController(home string, opts ...Option) *Controller {
	c := &Controller{
		home:     home,
		launcher: DefaultLauncher,
		executor: &command.OSExecutor{Dir: home},
		logger:   klog.Background(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Controller) Home() string {
	return c.home
}

func (c *Controller) launcherPath() string {
	if filepath.IsAbs(c.launcher) {
		return c.launcher
	}

	return filepath.Join(c.home, c.launcher)
}

func (c *Controller) run(ctx context.Context, action string) ([]byte, error) {
	return c.executor.ExecuteWithTimeout(ctx, commandTimeout, c.launcherPath(), action)
}

// IsRunning asks the launcher for the runtime status. A non zero exit of the
// status command means the runtime is stopped.
func (c *Controller) IsRunning(ctx context.Context) (bool, error) {
	out, err := c.run(ctx, "status")
	if err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			return false, nil
		}

		return false, errors.Wrapf(err, "failed to query runtime status in %s", c.home)
	}

	output := strings.ToLower(string(out))

	return strings.Contains(output, "is running") && !strings.Contains(output, "not running"), nil
}

func (c *Controller) Start(ctx context.Context) error {
	c.logger.Info("Starting runtime", "home", c.home)

	if out, err := c.run(ctx, "start"); err != nil {
		return errors.Wrapf(err, "failed to start runtime in %s: %s", c.home, strings.TrimSpace(string(out)))
	}

	return nil
}

func (c *Controller) Stop(ctx context.Context) error {
	c.logger.Info("Stopping runtime", "home", c.home)

	if out, err := c.run(ctx, "stop"); err != nil {
		return errors.Wrapf(err, "failed to stop runtime in %s: %s", c.home, strings.TrimSpace(string(out)))
	}

	return nil
}

// EnsureRunning starts the runtime unless it already runs.
func (c *Controller) EnsureRunning(ctx context.Context) error {
	running, err := c.IsRunning(ctx)
	if err != nil {
		return err
	}

	if running {
		return nil
	}

	return c.Start(ctx)
}

// AnchorPath is the file the runtime writes once name is deployed from dir.
func (c *Controller) AnchorPath(dir, name string) string {
	return filepath.Join(c.home, dir, name+anchorSuffix)
}

func (c *Controller) IsDeployed(dir, name string) bool {
	_, err := os.Stat(c.AnchorPath(dir, name))
	return err == nil
}

// DeployedSince reports whether the anchor of name was written at or after
// since. An anchor left over from a previous version does not count. since is
// truncated to the second to tolerate file systems with coarse timestamps.
func (c *Controller) DeployedSince(dir, name string, since time.Time) bool {
	info, err := os.Stat(c.AnchorPath(dir, name))
	if err != nil {
		return false
	}

	return !info.ModTime().Before(since.Truncate(time.Second))
}

// Install copies the artifact into dir under name, keeping its extension.
// The copy goes through a temporary file so the runtime never sees a
// partially written archive.
func (c *Controller) Install(dir, name, artifact string) error {
	target := filepath.Join(c.home, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", target)
	}

	src, err := os.Open(artifact)
	if err != nil {
		return errors.Wrapf(err, "failed to open artifact %s", artifact)
	}
	defer src.Close()

	tmp, err := os.CreateTemp(target, "."+name+"-*.tmp")
	if err != nil {
		return errors.Wrapf(err, "failed to create temporary file in %s", target)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err = io.Copy(tmp, src); err != nil {
		tmp.Close() //nolint:errcheck
		return errors.Wrapf(err, "failed to copy artifact %s", artifact)
	}

	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to write artifact %s", artifact)
	}

	dest := filepath.Join(target, name+filepath.Ext(artifact))
	if err = os.Rename(tmp.Name(), dest); err != nil {
		return errors.Wrapf(err, "failed to move artifact to %s", dest)
	}

	c.logger.V(4).Info("Installed artifact", "path", dest)

	return nil
}

// Uninstall removes the anchor file, which makes the runtime undeploy name.
func (c *Controller) Uninstall(dir, name string) error {
	anchor := c.AnchorPath(dir, name)
	if err := os.Remove(anchor); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to remove anchor %s", anchor)
	}

	return nil
}
