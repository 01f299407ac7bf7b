package cmd

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	v1 "github.com/neutree-ai/artifact-deployer/api/v1"
	"github.com/neutree-ai/artifact-deployer/cmd/artifact-deployer/app/options"
	"github.com/neutree-ai/artifact-deployer/internal/deploy"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "artifact-deployer",
		Short: "Deploy runtime artifacts and wait until the target confirms them",
		Long: `artifact-deployer pushes an application or domain archive to a runtime target and blocks
until the target reports the deployment as started, failed or the timeout expires.

Examples:
  # Deploy every deployment of a descriptor
  artifact-deployer deploy -f orders.yaml

  # Deploy two descriptors in parallel with a longer timeout
  artifact-deployer deploy -f orders.yaml -f payments.yaml --parallelism 2 --timeout 30m`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newDeployCmd())
	rootCmd.AddCommand(newUndeployCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newTargetsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

type action func(ctx context.Context, f *deploy.Factory, d *v1.Deployment) error

// run applies act to every deployment of the descriptors. A failed
// deployment does not stop the others; all failures are returned together.
func run(ctx context.Context, out io.Writer, opts *options.Options, done string, act action) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	c, err := opts.Config()
	if err != nil {
		return err
	}

	var (
		mu   sync.Mutex
		errs []error
	)

	g := &errgroup.Group{}
	g.SetLimit(c.Parallelism)

	for _, d := range c.Deployments {
		d := d

		g.Go(func() error {
			err := act(ctx, c.Factory, d)

			mu.Lock()
			defer mu.Unlock()

			label := string(d.Target.Type) + "/" + d.ApplicationName
			if err != nil {
				fmt.Fprintf(out, "%-50s failed (%v)\n", label, err)
				errs = append(errs, errors.WithMessage(err, label))

				return nil
			}

			fmt.Fprintf(out, "%-50s %s\n", label, done)

			return nil
		})
	}

	_ = g.Wait()

	return utilerrors.NewAggregate(errs)
}
