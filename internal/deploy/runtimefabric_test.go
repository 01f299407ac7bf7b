package deploy

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.openly.dev/pointy"
	"k8s.io/klog/v2"

	v1 "github.com/neutree-ai/artifact-deployer/api/v1"
	"github.com/neutree-ai/artifact-deployer/internal/verification"
	"github.com/neutree-ai/artifact-deployer/pkg/client/runtimefabric"
	rtfmocks "github.com/neutree-ai/artifact-deployer/pkg/client/runtimefabric/mocks"
)

func runtimeFabricDeployment() *v1.Deployment {
	return &v1.Deployment{
		ApplicationName: "orders",
		Artifact:        "com.acme:orders:1.2.0",
		Timeout:         pointy.Int64(1000),
		Target: v1.Target{
			Type: v1.RuntimeFabricTargetType,
			RuntimeFabric: &v1.RuntimeFabricTarget{
				Platform:       v1.Platform{BusinessGroupID: "org"},
				EnvironmentID:  "env",
				FabricName:     "fabric-a",
				RuntimeVersion: "4.6.0",
				Replicas:       2,
				CPU:            "500m",
			},
		},
	}
}

func TestRuntimeFabricStrategy_IsDeployed(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		want    verification.Outcome
		message string
	}{
		{name: "applied", status: "APPLIED", want: verification.Success},
		{name: "started", status: "STARTED", want: verification.Success},
		{name: "failed", status: "FAILED", want: verification.Failure},
		{name: "no status yet", status: "", want: verification.InProgress, message: "no status reported yet"},
		{name: "other", status: "APPLYING", want: verification.InProgress, message: "APPLYING"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := rtfmocks.NewMockInterface(t)
			c.On("GetDeploymentStatus", mock.Anything, "dep-1").Return(tt.status, nil).Once()

			s := newRuntimeFabricStrategy(c, klog.Background())
			s.deploymentID = "dep-1"

			status, err := s.IsDeployed(context.Background(), runtimeFabricDeployment())
			require.NoError(t, err)
			assert.Equal(t, tt.want, status.Outcome)

			if tt.message != "" {
				assert.Equal(t, tt.message, status.Message)
			}
		})
	}
}

func TestRuntimeFabricStrategy_ResolvesDeploymentOnce(t *testing.T) {
	c := rtfmocks.NewMockInterface(t)
	c.On("FindDeployment", mock.Anything, "orders").Return("dep-1", nil).Once()
	c.On("GetDeploymentStatus", mock.Anything, "dep-1").Return("APPLYING", nil).Twice()

	s := newRuntimeFabricStrategy(c, klog.Background())

	for i := 0; i < 2; i++ {
		status, err := s.IsDeployed(context.Background(), runtimeFabricDeployment())
		require.NoError(t, err)
		assert.Equal(t, verification.InProgress, status.Outcome)
	}

	c.AssertNumberOfCalls(t, "FindDeployment", 1)
}

func TestRuntimeFabricStrategy_MissingDeployment(t *testing.T) {
	c := rtfmocks.NewMockInterface(t)
	c.On("FindDeployment", mock.Anything, "orders").Return("", nil).Twice()

	s := newRuntimeFabricStrategy(c, klog.Background())

	status, err := s.IsDeployed(context.Background(), runtimeFabricDeployment())
	require.NoError(t, err)
	assert.Equal(t, verification.InProgress, status.Outcome)

	// nothing to stop
	s.OnTimeout(context.Background(), runtimeFabricDeployment())
}

func newTestRuntimeFabricDeployer(d *v1.Deployment, c *rtfmocks.MockInterface) *runtimeFabricDeployer {
	logger := klog.Background()
	strategy := newRuntimeFabricStrategy(c, logger)
	verifier := verification.NewVerifier(strategy, verification.WithPollInterval(testPollInterval))

	return newRuntimeFabricDeployer(d, c, strategy, verifier, logger)
}

func TestRuntimeFabricDeployer_DeployApplication(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(c *rtfmocks.MockInterface)
		check     func(t *testing.T, err error, c *rtfmocks.MockInterface)
	}{
		{
			name: "create and apply",
			mockSetup: func(c *rtfmocks.MockInterface) {
				c.On("FindTargetID", mock.Anything, "fabric-a").Return("target-1", nil).Once()
				c.On("FindDeployment", mock.Anything, "orders").Return("", nil).Once()
				c.On("CreateDeployment", mock.Anything, mock.MatchedBy(func(req *runtimefabric.DeploymentRequest) bool {
					return req.Asset.GroupID == "com.acme" && req.Asset.AssetID == "orders" &&
						req.Asset.Version == "1.2.0" && req.Target.TargetID == "target-1" &&
						req.Target.Replicas == 2 && req.Resources != nil && req.Resources.CPU == "500m" &&
						req.DesiredState == runtimefabric.DesiredStateStarted
				})).Return("dep-1", nil).Once()
				c.On("GetDeploymentStatus", mock.Anything, "dep-1").Return("", nil).Once()
				c.On("GetDeploymentStatus", mock.Anything, "dep-1").Return("APPLIED", nil).Once()
			},
			check: func(t *testing.T, err error, c *rtfmocks.MockInterface) {
				assert.NoError(t, err)
				c.AssertNumberOfCalls(t, "FindDeployment", 1)
			},
		},
		{
			name: "update then failed stops the deployment",
			mockSetup: func(c *rtfmocks.MockInterface) {
				c.On("FindTargetID", mock.Anything, "fabric-a").Return("target-1", nil).Once()
				c.On("FindDeployment", mock.Anything, "orders").Return("dep-1", nil).Once()
				c.On("UpdateDeployment", mock.Anything, "dep-1", mock.Anything).Return(nil).Once()
				c.On("GetDeploymentStatus", mock.Anything, "dep-1").Return("FAILED", nil).Once()
				c.On("StopDeployment", mock.Anything, "dep-1").Return(nil).Once()
			},
			check: func(t *testing.T, err error, c *rtfmocks.MockInterface) {
				require.Error(t, err)
				assert.True(t, verification.IsFailure(err))
				assert.Contains(t, err.Error(), "FAILED")
			},
		},
		{
			name: "unknown fabric",
			mockSetup: func(c *rtfmocks.MockInterface) {
				c.On("FindTargetID", mock.Anything, "fabric-a").Return("", errors.New("runtime fabric fabric-a not found")).Once()
			},
			check: func(t *testing.T, err error, c *rtfmocks.MockInterface) {
				require.Error(t, err)
				c.AssertNotCalled(t, "CreateDeployment", mock.Anything, mock.Anything)
			},
		},
		{
			name: "status query error is returned without cleanup",
			mockSetup: func(c *rtfmocks.MockInterface) {
				c.On("FindTargetID", mock.Anything, "fabric-a").Return("target-1", nil).Once()
				c.On("FindDeployment", mock.Anything, "orders").Return("dep-1", nil).Once()
				c.On("UpdateDeployment", mock.Anything, "dep-1", mock.Anything).Return(nil).Once()
				c.On("GetDeploymentStatus", mock.Anything, "dep-1").Return("", errors.New("503")).Once()
			},
			check: func(t *testing.T, err error, c *rtfmocks.MockInterface) {
				require.Error(t, err)
				assert.False(t, verification.IsTimeout(err))
				assert.False(t, verification.IsFailure(err))
				c.AssertNotCalled(t, "StopDeployment", mock.Anything, mock.Anything)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := rtfmocks.NewMockInterface(t)
			tt.mockSetup(c)

			err := newTestRuntimeFabricDeployer(runtimeFabricDeployment(), c).DeployApplication(context.Background())
			tt.check(t, err, c)
		})
	}
}

func TestRuntimeFabricDeployer_UndeployApplication(t *testing.T) {
	t.Run("deletes existing deployment", func(t *testing.T) {
		c := rtfmocks.NewMockInterface(t)
		c.On("FindDeployment", mock.Anything, "orders").Return("dep-1", nil).Once()
		c.On("DeleteDeployment", mock.Anything, "dep-1").Return(nil).Once()

		assert.NoError(t, newTestRuntimeFabricDeployer(runtimeFabricDeployment(), c).UndeployApplication(context.Background()))
	})

	t.Run("missing deployment is a no-op", func(t *testing.T) {
		c := rtfmocks.NewMockInterface(t)
		c.On("FindDeployment", mock.Anything, "orders").Return("", nil).Once()

		assert.NoError(t, newTestRuntimeFabricDeployer(runtimeFabricDeployment(), c).UndeployApplication(context.Background()))
	})
}
