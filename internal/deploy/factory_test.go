package deploy

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	v1 "github.com/neutree-ai/artifact-deployer/api/v1"
	apiclient "github.com/neutree-ai/artifact-deployer/pkg/client"
	"github.com/neutree-ai/artifact-deployer/pkg/client/agent"
	agentmocks "github.com/neutree-ai/artifact-deployer/pkg/client/agent/mocks"
	"github.com/neutree-ai/artifact-deployer/pkg/client/arm"
	armmocks "github.com/neutree-ai/artifact-deployer/pkg/client/arm/mocks"
	"github.com/neutree-ai/artifact-deployer/pkg/client/cloudhub"
	chmocks "github.com/neutree-ai/artifact-deployer/pkg/client/cloudhub/mocks"
	"github.com/neutree-ai/artifact-deployer/pkg/client/runtimefabric"
	rtfmocks "github.com/neutree-ai/artifact-deployer/pkg/client/runtimefabric/mocks"
	"github.com/neutree-ai/artifact-deployer/pkg/command"
)

// countingFactory records every client construction so tests can assert that
// rejected deployments never reach a backend.
func countingFactory(t *testing.T, built *int) *Factory {
	return NewFactory(
		WithAgentClientFunc(func(*v1.AgentTarget, ...apiclient.ClientOption) agent.Interface {
			*built++
			return agentmocks.NewMockInterface(t)
		}),
		WithCloudHubClientFunc(func(*v1.CloudHubTarget, ...apiclient.ClientOption) cloudhub.Interface {
			*built++
			return chmocks.NewMockInterface(t)
		}),
		WithARMClientFunc(func(*v1.ARMTarget, ...apiclient.ClientOption) arm.Interface {
			*built++
			return armmocks.NewMockInterface(t)
		}),
		WithRuntimeFabricClientFunc(func(*v1.RuntimeFabricTarget, ...apiclient.ClientOption) runtimefabric.Interface {
			*built++
			return rtfmocks.NewMockInterface(t)
		}),
		WithKubernetesClientFunc(func(*v1.KubernetesTarget) (client.Client, error) {
			*built++
			return fake.NewClientBuilder().WithScheme(scheme).Build(), nil
		}),
		WithRuntimeFunc(func(target *v1.StandaloneTarget, _ command.Executor, _ klog.Logger) Runtime {
			*built++
			return &fakeRuntime{home: target.Home}
		}),
	)
}

func deploymentFor(target v1.TargetType, packaging v1.PackagingKind) *v1.Deployment {
	var d *v1.Deployment

	switch target {
	case v1.StandaloneTargetType:
		d = standaloneDeployment(packaging)
	case v1.AgentTargetType:
		d = agentDeployment(packaging)
	case v1.CloudHubTargetType:
		d = cloudHubDeployment()
	case v1.ARMTargetType:
		d = armDeployment()
	case v1.RuntimeFabricTargetType:
		d = runtimeFabricDeployment()
	case v1.KubernetesTargetType:
		d = kubernetesDeployment()
	default:
		d = cloudHubDeployment()
		d.Target.Type = target
	}

	d.Packaging = packaging

	return d
}

func TestFactory_Create(t *testing.T) {
	tests := []struct {
		target    v1.TargetType
		packaging v1.PackagingKind
		want      ArtifactDeployer
		wantErr   error
	}{
		{target: v1.StandaloneTargetType, packaging: v1.ApplicationPackaging, want: &standaloneDeployer{}},
		{target: v1.StandaloneTargetType, packaging: v1.DomainPackaging, want: &standaloneDeployer{}},
		{target: v1.AgentTargetType, packaging: v1.ApplicationPackaging, want: &agentDeployer{}},
		{target: v1.AgentTargetType, packaging: v1.DomainPackaging, want: &agentDeployer{}},
		{target: v1.CloudHubTargetType, packaging: v1.ApplicationPackaging, want: &cloudHubDeployer{}},
		{target: v1.CloudHubTargetType, packaging: v1.DomainPackaging, wantErr: ErrUnsupportedPackaging},
		{target: v1.ARMTargetType, packaging: v1.ApplicationPackaging, want: &armDeployer{}},
		{target: v1.ARMTargetType, packaging: v1.DomainPackaging, wantErr: ErrUnsupportedPackaging},
		{target: v1.RuntimeFabricTargetType, packaging: v1.ApplicationPackaging, want: &runtimeFabricDeployer{}},
		{target: v1.RuntimeFabricTargetType, packaging: v1.DomainPackaging, wantErr: ErrUnsupportedPackaging},
		{target: v1.KubernetesTargetType, packaging: v1.ApplicationPackaging, want: &KubernetesDeployer{}},
		{target: v1.KubernetesTargetType, packaging: v1.DomainPackaging, wantErr: ErrUnsupportedPackaging},
		{target: "mainframe", packaging: v1.ApplicationPackaging, wantErr: ErrUnsupportedTarget},
	}

	for _, tt := range tests {
		t.Run(string(tt.target)+"/"+string(tt.packaging), func(t *testing.T) {
			built := 0
			f := countingFactory(t, &built)

			created, err := f.Create(deploymentFor(tt.target, tt.packaging))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, v1.ErrInvalidConfiguration)
				assert.Nil(t, created)
				assert.Zero(t, built, "no client may be built for a rejected deployment")

				return
			}

			require.NoError(t, err)
			require.IsType(t, &deployer{}, created)
			assert.IsType(t, tt.want, created.(*deployer).artifacts)
			assert.Equal(t, 1, built)
		})
	}
}

func TestFactory_CreateInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *v1.Deployment)
	}{
		{name: "missing application name", mutate: func(d *v1.Deployment) { d.ApplicationName = "" }},
		{name: "cloudhub without environment", mutate: func(d *v1.Deployment) { d.Target.CloudHub.Environment = "" }},
		{name: "unresolvable runtime version", mutate: func(d *v1.Deployment) { d.Target.CloudHub.RuntimeVersion = "latest" }},
		{name: "missing selector", mutate: func(d *v1.Deployment) { d.Target.CloudHub = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			built := 0
			f := countingFactory(t, &built)

			d := cloudHubDeployment()
			tt.mutate(d)

			_, err := f.Create(d)
			require.Error(t, err)
			assert.True(t, errors.Is(err, v1.ErrInvalidConfiguration))
			assert.Zero(t, built)
		})
	}
}

func TestFactory_Verifier(t *testing.T) {
	built := 0
	f := countingFactory(t, &built)

	verifier, err := f.Verifier(runtimeFabricDeployment())
	require.NoError(t, err)
	assert.Equal(t, "runtimefabric", verifier.Strategy().Name())

	_, err = f.Verifier(standaloneDeployment(""))
	assert.ErrorIs(t, err, ErrUnsupportedTarget)
}

func TestSupportedCombinations(t *testing.T) {
	combinations := SupportedCombinations()

	assert.Len(t, combinations, 8)
	assert.Contains(t, combinations, Combination{Target: v1.AgentTargetType, Packaging: v1.DomainPackaging})
	assert.Contains(t, combinations, Combination{Target: v1.StandaloneTargetType, Packaging: v1.DomainPackaging})
	assert.NotContains(t, combinations, Combination{Target: v1.CloudHubTargetType, Packaging: v1.DomainPackaging})
	assert.Equal(t, Combination{Target: v1.AgentTargetType, Packaging: v1.ApplicationPackaging}, combinations[0])
}
