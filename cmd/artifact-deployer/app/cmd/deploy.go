package cmd

import (
	"context"

	"github.com/spf13/cobra"

	v1 "github.com/neutree-ai/artifact-deployer/api/v1"
	"github.com/neutree-ai/artifact-deployer/cmd/artifact-deployer/app/options"
	"github.com/neutree-ai/artifact-deployer/internal/deploy"
)

func newDeployCmd() *cobra.Command {
	opts := options.NewOptions()

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy artifacts and wait for the targets to confirm them",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), opts, "deployed",
				func(ctx context.Context, f *deploy.Factory, d *v1.Deployment) error {
					deployer, err := f.Create(d)
					if err != nil {
						return err
					}

					return deployer.Deploy(ctx)
				})
		},
	}

	opts.AddFlags(cmd.Flags())

	return cmd
}

func newUndeployCmd() *cobra.Command {
	opts := options.NewOptions()

	cmd := &cobra.Command{
		Use:   "undeploy",
		Short: "Ask the targets to remove deployed artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), opts, "undeployed",
				func(ctx context.Context, f *deploy.Factory, d *v1.Deployment) error {
					deployer, err := f.Create(d)
					if err != nil {
						return err
					}

					return deployer.Undeploy(ctx)
				})
		},
	}

	opts.AddFlags(cmd.Flags())

	return cmd
}

func newVerifyCmd() *cobra.Command {
	opts := options.NewOptions()

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Wait for deployments made by other means to be confirmed",
		Long: `verify polls the targets of the descriptors without pushing anything. A deployment that fails
or is not confirmed in time is cleaned up the same way deploy does.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), opts, "verified",
				func(ctx context.Context, f *deploy.Factory, d *v1.Deployment) error {
					verifier, err := f.Verifier(d)
					if err != nil {
						return err
					}

					return verifier.AssertDeployment(ctx, d)
				})
		},
	}

	opts.AddFlags(cmd.Flags())

	return cmd
}
