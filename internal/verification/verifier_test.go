package verification_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.openly.dev/pointy"

	v1 "github.com/neutree-ai/artifact-deployer/api/v1"
	"github.com/neutree-ai/artifact-deployer/internal/verification"
	"github.com/neutree-ai/artifact-deployer/internal/verification/mocks"
)

func newStrategy(t *testing.T) *mocks.MockStrategy {
	s := mocks.NewMockStrategy(t)
	s.On("Name").Return("test").Maybe()
	s.On("DefaultTimeout").Return(time.Second).Maybe()
	s.On("PollInterval").Return(20 * time.Second).Maybe()

	return s
}

func testDeployment(timeoutMillis int64) *v1.Deployment {
	return &v1.Deployment{
		ApplicationName: "orders",
		Artifact:        "/tmp/orders.jar",
		Timeout:         pointy.Int64(timeoutMillis),
	}
}

func TestVerifier_AssertDeployment(t *testing.T) {
	tests := []struct {
		name      string
		timeout   int64
		mockSetup func(*mocks.MockStrategy)
		check     func(t *testing.T, err error, elapsed time.Duration, s *mocks.MockStrategy)
	}{
		{
			name:    "success on first poll never cleans up",
			timeout: 1000,
			mockSetup: func(s *mocks.MockStrategy) {
				s.On("IsDeployed", mock.Anything, mock.Anything).Return(verification.SuccessStatus("STARTED"), nil).Once()
			},
			check: func(t *testing.T, err error, _ time.Duration, s *mocks.MockStrategy) {
				assert.NoError(t, err)
				s.AssertNotCalled(t, "OnTimeout", mock.Anything, mock.Anything)
				s.AssertNumberOfCalls(t, "IsDeployed", 1)
			},
		},
		{
			name:    "success after three pending polls",
			timeout: 1000,
			mockSetup: func(s *mocks.MockStrategy) {
				s.On("IsDeployed", mock.Anything, mock.Anything).Return(verification.InProgressStatus("DEPLOYING"), nil).Times(3)
				s.On("IsDeployed", mock.Anything, mock.Anything).Return(verification.SuccessStatus("STARTED"), nil)
			},
			check: func(t *testing.T, err error, _ time.Duration, s *mocks.MockStrategy) {
				assert.NoError(t, err)
				s.AssertNotCalled(t, "OnTimeout", mock.Anything, mock.Anything)

				calls := 0
				for _, c := range s.Calls {
					if c.Method == "IsDeployed" {
						calls++
					}
				}

				assert.GreaterOrEqual(t, calls, 3)
				assert.LessOrEqual(t, calls, 10)
			},
		},
		{
			name:    "never deployed times out and cleans up once",
			timeout: 500,
			mockSetup: func(s *mocks.MockStrategy) {
				s.On("IsDeployed", mock.Anything, mock.Anything).Return(verification.InProgressStatus("DEPLOYING"), nil)
				s.On("OnTimeout", mock.Anything, mock.Anything).Return().Once()
			},
			check: func(t *testing.T, err error, elapsed time.Duration, s *mocks.MockStrategy) {
				require.Error(t, err)
				assert.True(t, verification.IsTimeout(err))
				assert.False(t, verification.IsFailure(err))
				assert.Contains(t, err.Error(), "Validation timed out")
				assert.GreaterOrEqual(t, elapsed, 400*time.Millisecond)
				assert.Less(t, elapsed, 800*time.Millisecond)
				s.AssertNumberOfCalls(t, "OnTimeout", 1)
			},
		},
		{
			name:    "terminal failure stops polling and cleans up once",
			timeout: 10000,
			mockSetup: func(s *mocks.MockStrategy) {
				s.On("IsDeployed", mock.Anything, mock.Anything).Return(verification.InProgressStatus("DEPLOYING"), nil).Once()
				s.On("IsDeployed", mock.Anything, mock.Anything).Return(verification.FailureStatus("DEPLOY_FAILED"), nil).Once()
				s.On("OnTimeout", mock.Anything, mock.Anything).Return().Once()
			},
			check: func(t *testing.T, err error, elapsed time.Duration, s *mocks.MockStrategy) {
				require.Error(t, err)
				assert.True(t, verification.IsFailure(err))
				assert.Contains(t, err.Error(), "Deployment has failed")
				assert.Contains(t, err.Error(), "DEPLOY_FAILED")
				assert.Less(t, elapsed, time.Second)
				s.AssertNumberOfCalls(t, "IsDeployed", 2)
				s.AssertNumberOfCalls(t, "OnTimeout", 1)
			},
		},
		{
			name:    "status query error propagates without cleanup",
			timeout: 1000,
			mockSetup: func(s *mocks.MockStrategy) {
				s.On("IsDeployed", mock.Anything, mock.Anything).Return(verification.Status{}, assert.AnError).Once()
			},
			check: func(t *testing.T, err error, _ time.Duration, s *mocks.MockStrategy) {
				require.Error(t, err)
				assert.Equal(t, assert.AnError, errors.Cause(err))
				assert.False(t, verification.IsTimeout(err))
				assert.False(t, verification.IsFailure(err))
				s.AssertNotCalled(t, "OnTimeout", mock.Anything, mock.Anything)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStrategy(t)
			tt.mockSetup(s)

			v := verification.NewVerifier(s, verification.WithPollInterval(100*time.Millisecond))

			start := time.Now()
			err := v.AssertDeployment(context.Background(), testDeployment(tt.timeout))
			tt.check(t, err, time.Since(start), s)
		})
	}
}

func TestVerifier_AssertDeployment_Idempotent(t *testing.T) {
	s := newStrategy(t)
	s.On("IsDeployed", mock.Anything, mock.Anything).Return(verification.SuccessStatus("STARTED"), nil).Twice()

	v := verification.NewVerifier(s, verification.WithPollInterval(100*time.Millisecond))
	d := testDeployment(1000)

	assert.NoError(t, v.AssertDeployment(context.Background(), d))
	assert.NoError(t, v.AssertDeployment(context.Background(), d))
	s.AssertNotCalled(t, "OnTimeout", mock.Anything, mock.Anything)
}

func TestVerifier_AssertDeployment_Interrupted(t *testing.T) {
	s := newStrategy(t)

	ctx, cancel := context.WithCancel(context.Background())
	s.On("IsDeployed", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		cancel()
	}).Return(verification.InProgressStatus("DEPLOYING"), nil).Once()
	s.On("OnTimeout", mock.Anything, mock.Anything).Return().Once()

	v := verification.NewVerifier(s, verification.WithPollInterval(100*time.Millisecond))
	err := v.AssertDeployment(ctx, testDeployment(10000))

	require.Error(t, err)
	assert.True(t, verification.IsTimeout(err))
	s.AssertNumberOfCalls(t, "OnTimeout", 1)
}

func TestVerifier_AssertDeployment_DeadlineDuringQuery(t *testing.T) {
	s := newStrategy(t)
	s.On("IsDeployed", mock.Anything, mock.Anything).Return(func(ctx context.Context, _ *v1.Deployment) (verification.Status, error) {
		<-ctx.Done()
		return verification.Status{}, ctx.Err()
	})
	s.On("OnTimeout", mock.Anything, mock.Anything).Return().Once()

	v := verification.NewVerifier(s, verification.WithPollInterval(50*time.Millisecond))
	err := v.AssertDeployment(context.Background(), testDeployment(300))

	require.Error(t, err)
	assert.True(t, verification.IsTimeout(err))
	s.AssertNumberOfCalls(t, "OnTimeout", 1)
}

func TestVerifier_AssertDeployment_CancelDuringQuery(t *testing.T) {
	s := newStrategy(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.On("IsDeployed", mock.Anything, mock.Anything).Return(func(ctx context.Context, _ *v1.Deployment) (verification.Status, error) {
		cancel()
		<-ctx.Done()

		return verification.Status{}, ctx.Err()
	}).Once()
	s.On("OnTimeout", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	}), mock.Anything).Return().Once()

	v := verification.NewVerifier(s, verification.WithPollInterval(50*time.Millisecond))
	err := v.AssertDeployment(ctx, testDeployment(10000))

	require.Error(t, err)
	assert.True(t, verification.IsTimeout(err))
	s.AssertNumberOfCalls(t, "OnTimeout", 1)
}

func TestVerifier_DefaultTimeout(t *testing.T) {
	s := newStrategy(t)
	s.On("IsDeployed", mock.Anything, mock.Anything).Return(verification.InProgressStatus(""), nil)
	s.On("OnTimeout", mock.Anything, mock.Anything).Return().Once()

	v := verification.NewVerifier(s, verification.WithPollInterval(100*time.Millisecond))

	start := time.Now()
	err := v.AssertDeployment(context.Background(), &v1.Deployment{ApplicationName: "orders"})

	assert.True(t, verification.IsTimeout(err))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestOutcome_Terminal(t *testing.T) {
	assert.False(t, verification.InProgress.Terminal())
	assert.True(t, verification.Success.Terminal())
	assert.True(t, verification.Failure.Terminal())
	assert.Equal(t, "Failure", verification.Failure.String())
}
