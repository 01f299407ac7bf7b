package deploy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.openly.dev/pointy"
	"k8s.io/klog/v2"

	v1 "github.com/neutree-ai/artifact-deployer/api/v1"
	"github.com/neutree-ai/artifact-deployer/internal/verification"
	"github.com/neutree-ai/artifact-deployer/pkg/client/arm"
	armmocks "github.com/neutree-ai/artifact-deployer/pkg/client/arm/mocks"
)

func armDeployment() *v1.Deployment {
	return &v1.Deployment{
		ApplicationName: "orders",
		Artifact:        "/tmp/orders.jar",
		Timeout:         pointy.Int64(1000),
		Target: v1.Target{
			Type: v1.ARMTargetType,
			ARM: &v1.ARMTarget{
				Environment: "env",
				TargetKind:  v1.ARMServerGroupTargetKind,
				TargetName:  "group-a",
			},
		},
	}
}

func TestARMStrategy_IsDeployed(t *testing.T) {
	tests := []struct {
		name string
		app  *arm.Application
		want verification.Outcome
	}{
		{name: "missing", app: nil, want: verification.InProgress},
		{name: "started", app: &arm.Application{ID: 7, LastReportedStatus: "STARTED"}, want: verification.Success},
		{name: "deployment failed", app: &arm.Application{ID: 7, LastReportedStatus: "DEPLOYMENT_FAILED"}, want: verification.Failure},
		{name: "starting", app: &arm.Application{ID: 7, DesiredStatus: "STARTED", LastReportedStatus: "STARTING"}, want: verification.InProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := armmocks.NewMockInterface(t)
			c.On("FindApplication", mock.Anything, "orders").Return(tt.app, nil).Once()

			status, err := newARMStrategy(c, klog.Background()).IsDeployed(context.Background(), armDeployment())
			require.NoError(t, err)
			assert.Equal(t, tt.want, status.Outcome)
		})
	}
}

func newTestARMDeployer(d *v1.Deployment, c *armmocks.MockInterface) *armDeployer {
	logger := klog.Background()
	verifier := verification.NewVerifier(newARMStrategy(c, logger), verification.WithPollInterval(testPollInterval))

	return newARMDeployer(d, c, verifier, logger)
}

func TestARMDeployer_DeployApplication(t *testing.T) {
	t.Run("first deployment resolves the target", func(t *testing.T) {
		c := armmocks.NewMockInterface(t)
		c.On("FindApplication", mock.Anything, "orders").Return(nil, nil).Once()
		c.On("FindTargetID", mock.Anything, v1.ARMServerGroupTargetKind, "group-a").Return(42, nil).Once()
		c.On("DeployApplication", mock.Anything, 42, "orders", "/tmp/orders.jar").
			Return(&arm.Application{ID: 7, Name: "orders"}, nil).Once()
		c.On("FindApplication", mock.Anything, "orders").
			Return(&arm.Application{ID: 7, LastReportedStatus: "STARTED"}, nil).Once()

		assert.NoError(t, newTestARMDeployer(armDeployment(), c).DeployApplication(context.Background()))
	})

	t.Run("redeploy failure stops the application", func(t *testing.T) {
		c := armmocks.NewMockInterface(t)
		c.On("FindApplication", mock.Anything, "orders").
			Return(&arm.Application{ID: 7, LastReportedStatus: "STARTED"}, nil).Once()
		c.On("RedeployApplication", mock.Anything, 7, "/tmp/orders.jar").
			Return(&arm.Application{ID: 7}, nil).Once()
		c.On("FindApplication", mock.Anything, "orders").
			Return(&arm.Application{ID: 7, LastReportedStatus: "DEPLOYMENT_FAILED"}, nil).Twice()
		c.On("StopApplication", mock.Anything, 7).Return(nil).Once()

		err := newTestARMDeployer(armDeployment(), c).DeployApplication(context.Background())
		require.Error(t, err)
		assert.True(t, verification.IsFailure(err))
		c.AssertNotCalled(t, "FindTargetID", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestARMDeployer_UndeployApplication(t *testing.T) {
	c := armmocks.NewMockInterface(t)
	c.On("FindApplication", mock.Anything, "orders").Return(&arm.Application{ID: 7}, nil).Once()
	c.On("DeleteApplication", mock.Anything, 7).Return(nil).Once()

	assert.NoError(t, newTestARMDeployer(armDeployment(), c).UndeployApplication(context.Background()))
}
