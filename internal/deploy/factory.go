package deploy

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"sigs.k8s.io/controller-runtime/pkg/client"

	v1 "github.com/neutree-ai/artifact-deployer/api/v1"
	"github.com/neutree-ai/artifact-deployer/internal/probe"
	"github.com/neutree-ai/artifact-deployer/internal/verification"
	apiclient "github.com/neutree-ai/artifact-deployer/pkg/client"
	"github.com/neutree-ai/artifact-deployer/pkg/client/agent"
	"github.com/neutree-ai/artifact-deployer/pkg/client/arm"
	"github.com/neutree-ai/artifact-deployer/pkg/client/cloudhub"
	"github.com/neutree-ai/artifact-deployer/pkg/client/runtimefabric"
	"github.com/neutree-ai/artifact-deployer/pkg/command"
	"github.com/neutree-ai/artifact-deployer/pkg/standalone"
)

var supportMatrix = map[v1.TargetType][]v1.PackagingKind{
	v1.StandaloneTargetType:    {v1.ApplicationPackaging, v1.DomainPackaging},
	v1.AgentTargetType:         {v1.ApplicationPackaging, v1.DomainPackaging},
	v1.CloudHubTargetType:      {v1.ApplicationPackaging},
	v1.ARMTargetType:           {v1.ApplicationPackaging},
	v1.RuntimeFabricTargetType: {v1.ApplicationPackaging},
	v1.KubernetesTargetType:    {v1.ApplicationPackaging},
}

// Combination is one supported target and packaging pair.
type Combination struct {
	Target    v1.TargetType
	Packaging v1.PackagingKind
}

// SupportedCombinations lists every target and packaging pair the factory can build.
func SupportedCombinations() []Combination {
	var combinations []Combination

	for target, kinds := range supportMatrix {
		for _, kind := range kinds {
			combinations = append(combinations, Combination{Target: target, Packaging: kind})
		}
	}

	sort.Slice(combinations, func(i, j int) bool {
		if combinations[i].Target != combinations[j].Target {
			return combinations[i].Target < combinations[j].Target
		}

		return combinations[i].Packaging < combinations[j].Packaging
	})

	return combinations
}

type (
	AgentClientFunc         func(target *v1.AgentTarget, opts ...apiclient.ClientOption) agent.Interface
	CloudHubClientFunc      func(target *v1.CloudHubTarget, opts ...apiclient.ClientOption) cloudhub.Interface
	ARMClientFunc           func(target *v1.ARMTarget, opts ...apiclient.ClientOption) arm.Interface
	RuntimeFabricClientFunc func(target *v1.RuntimeFabricTarget, opts ...apiclient.ClientOption) runtimefabric.Interface
	KubernetesClientFunc    func(target *v1.KubernetesTarget) (client.Client, error)
	RuntimeFunc             func(target *v1.StandaloneTarget, executor command.Executor, logger klog.Logger) Runtime
)

// Factory builds the deployer, verifier and strategy of one deployment.
// Everything it builds is owned by that deployment and never shared.
type Factory struct {
	newAgentClient         AgentClientFunc
	newCloudHubClient      CloudHubClientFunc
	newARMClient           ARMClientFunc
	newRuntimeFabricClient RuntimeFabricClientFunc
	newKubernetesClient    KubernetesClientFunc
	newRuntime             RuntimeFunc

	executor      command.Executor
	clientOptions []apiclient.ClientOption
	pollInterval  time.Duration
	logger        klog.Logger
}

type FactoryOption func(*Factory)

func WithAgentClientFunc(fn AgentClientFunc) FactoryOption {
	return func(f *Factory) {
		f.newAgentClient = fn
	}
}

func WithCloudHubClientFunc(fn CloudHubClientFunc) FactoryOption {
	return func(f *Factory) {
		f.newCloudHubClient = fn
	}
}

func WithARMClientFunc(fn ARMClientFunc) FactoryOption {
	return func(f *Factory) {
		f.newARMClient = fn
	}
}

func WithRuntimeFabricClientFunc(fn RuntimeFabricClientFunc) FactoryOption {
	return func(f *Factory) {
		f.newRuntimeFabricClient = fn
	}
}

func WithKubernetesClientFunc(fn KubernetesClientFunc) FactoryOption {
	return func(f *Factory) {
		f.newKubernetesClient = fn
	}
}

func WithRuntimeFunc(fn RuntimeFunc) FactoryOption {
	return func(f *Factory) {
		f.newRuntime = fn
	}
}

// WithExecutor sets the executor used to drive standalone runtimes.
func WithExecutor(executor command.Executor) FactoryOption {
	return func(f *Factory) {
		f.executor = executor
	}
}

// WithClientOptions adds options applied to every REST client the factory builds.
func WithClientOptions(opts ...apiclient.ClientOption) FactoryOption {
	return func(f *Factory) {
		f.clientOptions = append(f.clientOptions, opts...)
	}
}

// WithPollInterval overrides the poll interval of every target.
func WithPollInterval(interval time.Duration) FactoryOption {
	return func(f *Factory) {
		f.pollInterval = interval
	}
}

func WithLogger(logger klog.Logger) FactoryOption {
	return func(f *Factory) {
		f.logger = logger
	}
}

func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		newAgentClient: func(t *v1.AgentTarget, opts ...apiclient.ClientOption) agent.Interface {
			return agent.NewClient(t.URI, withDefaults(opts, apiclient.WithToken(t.Token))...)
		},
		newCloudHubClient: func(t *v1.CloudHubTarget, opts ...apiclient.ClientOption) cloudhub.Interface {
			return cloudhub.NewClient(t.URI, t.Environment, t.BusinessGroupID, withDefaults(opts, platformOptions(t.Platform)...)...)
		},
		newARMClient: func(t *v1.ARMTarget, opts ...apiclient.ClientOption) arm.Interface {
			return arm.NewClient(t.URI, t.Environment, t.BusinessGroupID, withDefaults(opts, platformOptions(t.Platform)...)...)
		},
		newRuntimeFabricClient: func(t *v1.RuntimeFabricTarget, opts ...apiclient.ClientOption) runtimefabric.Interface {
			return runtimefabric.NewClient(t.URI, t.BusinessGroupID, t.EnvironmentID, withDefaults(opts, platformOptions(t.Platform)...)...)
		},
		newKubernetesClient: NewKubernetesClient,
		newRuntime: func(t *v1.StandaloneTarget, executor command.Executor, logger klog.Logger) Runtime {
			opts := []standalone.Option{standalone.WithLauncher(t.Launcher), standalone.WithLogger(logger)}
			if executor != nil {
				opts = append(opts, standalone.WithExecutor(executor))
			}

			return standalone.NewController(t.Home, opts...)
		},
		logger: klog.Background(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// withDefaults returns a fresh slice so shared factory options are never
// appended to in place.
func withDefaults(opts []apiclient.ClientOption, defaults ...apiclient.ClientOption) []apiclient.ClientOption {
	merged := make([]apiclient.ClientOption, 0, len(opts)+len(defaults))
	merged = append(merged, opts...)

	return append(merged, defaults...)
}

func platformOptions(p v1.Platform) []apiclient.ClientOption {
	opts := []apiclient.ClientOption{apiclient.WithToken(p.Token)}
	if p.Insecure {
		opts = append(opts, apiclient.WithInsecureSkipVerify())
	}

	return opts
}

func checkSupported(deployment *v1.Deployment) error {
	kinds, ok := supportMatrix[deployment.Target.Type]
	if !ok {
		return errors.Wrapf(ErrUnsupportedTarget, "%q", deployment.Target.Type)
	}

	packaging := deployment.GetPackaging()
	for _, kind := range kinds {
		if kind == packaging {
			return nil
		}
	}

	return errors.Wrapf(ErrUnsupportedPackaging, "%s does not support %s packaging", deployment.Target.Type, packaging)
}

func (f *Factory) verifier(strategy verification.Strategy, logger klog.Logger) *verification.Verifier {
	opts := []verification.Option{verification.WithLogger(logger)}
	if f.pollInterval > 0 {
		opts = append(opts, verification.WithPollInterval(f.pollInterval))
	}

	return verification.NewVerifier(strategy, opts...)
}

// Create validates the deployment and builds its deployer. It never
// contacts the target.
func (f *Factory) Create(deployment *v1.Deployment) (Deployer, error) {
	if err := checkSupported(deployment); err != nil {
		return nil, err
	}

	if err := deployment.Validate(); err != nil {
		return nil, err
	}

	artifacts, err := f.createArtifactDeployer(deployment)
	if err != nil {
		return nil, err
	}

	return newDeployer(deployment, artifacts), nil
}

func (f *Factory) createArtifactDeployer(deployment *v1.Deployment) (ArtifactDeployer, error) {
	target := deployment.Target
	logger := klog.LoggerWithValues(f.logger, "application", deployment.ApplicationName, "target", target.Type)

	switch target.Type {
	case v1.StandaloneTargetType:
		interval := probe.DefaultInterval
		if f.pollInterval > 0 {
			interval = f.pollInterval
		}

		prober := probe.NewPollingProber(deployment.EffectiveTimeout(DefaultStandaloneTimeout), interval)

		return newStandaloneDeployer(deployment, f.newRuntime(target.Standalone, f.executor, logger), prober, logger), nil
	case v1.AgentTargetType:
		c := f.newAgentClient(target.Agent, f.clientOptions...)
		return newAgentDeployer(deployment, c, f.verifier(newAgentStrategy(c, logger), logger), logger), nil
	case v1.CloudHubTargetType:
		c := f.newCloudHubClient(target.CloudHub, f.clientOptions...)
		return newCloudHubDeployer(deployment, c, f.verifier(newCloudHubStrategy(c, logger), logger), logger), nil
	case v1.ARMTargetType:
		c := f.newARMClient(target.ARM, f.clientOptions...)
		return newARMDeployer(deployment, c, f.verifier(newARMStrategy(c, logger), logger), logger), nil
	case v1.RuntimeFabricTargetType:
		c := f.newRuntimeFabricClient(target.RuntimeFabric, f.clientOptions...)
		strategy := newRuntimeFabricStrategy(c, logger)

		return newRuntimeFabricDeployer(deployment, c, strategy, f.verifier(strategy, logger), logger), nil
	case v1.KubernetesTargetType:
		c, err := f.newKubernetesClient(target.Kubernetes)
		if err != nil {
			return nil, err
		}

		strategy := newKubernetesStrategy(c, target.Kubernetes.Namespace, logger)

		return newKubernetesDeployer(deployment, c, f.verifier(strategy, logger), logger), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedTarget, "%q", target.Type)
	}
}

// Verifier builds only the verifier of a deployment, for checking a
// deployment made by other means.
func (f *Factory) Verifier(deployment *v1.Deployment) (*verification.Verifier, error) {
	if err := checkSupported(deployment); err != nil {
		return nil, err
	}

	if err := deployment.Validate(); err != nil {
		return nil, err
	}

	target := deployment.Target
	logger := klog.LoggerWithValues(f.logger, "application", deployment.ApplicationName, "target", target.Type)

	switch target.Type {
	case v1.AgentTargetType:
		return f.verifier(newAgentStrategy(f.newAgentClient(target.Agent, f.clientOptions...), logger), logger), nil
	case v1.CloudHubTargetType:
		return f.verifier(newCloudHubStrategy(f.newCloudHubClient(target.CloudHub, f.clientOptions...), logger), logger), nil
	case v1.ARMTargetType:
		return f.verifier(newARMStrategy(f.newARMClient(target.ARM, f.clientOptions...), logger), logger), nil
	case v1.RuntimeFabricTargetType:
		c := f.newRuntimeFabricClient(target.RuntimeFabric, f.clientOptions...)
		return f.verifier(newRuntimeFabricStrategy(c, logger), logger), nil
	case v1.KubernetesTargetType:
		c, err := f.newKubernetesClient(target.Kubernetes)
		if err != nil {
			return nil, err
		}

		return f.verifier(newKubernetesStrategy(c, target.Kubernetes.Namespace, logger), logger), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedTarget, "%s has no verification strategy", target.Type)
	}
}
