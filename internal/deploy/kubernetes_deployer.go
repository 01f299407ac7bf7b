package deploy

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/config"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	v1 "github.com/neutree-ai/artifact-deployer/api/v1"
	"github.com/neutree-ai/artifact-deployer/internal/verification"
)

const (
	DefaultKubernetesTimeout = 10 * time.Minute

	NameLabel      = "app.kubernetes.io/name"
	ManagedByLabel = "app.kubernetes.io/managed-by"
	ManagedByValue = "artifact-deployer"

	progressDeadlineExceeded = "ProgressDeadlineExceeded"
)

var scheme = runtime.NewScheme()

func init() {
	_ = appsv1.AddToScheme(scheme)
	_ = corev1.AddToScheme(scheme)
}

// NewKubernetesClient builds a controller client from kubeconfig content, or
// from the default loading rules when the content is empty.
func NewKubernetesClient(target *v1.KubernetesTarget) (client.Client, error) {
	var (
		restConfig *rest.Config
		err        error
	)

	if target.Kubeconfig != "" {
		restConfig, err = clientcmd.RESTConfigFromKubeConfig([]byte(target.Kubeconfig))
	} else {
		restConfig, err = config.GetConfig()
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to create REST config")
	}

	restConfig.QPS = 10
	restConfig.Burst = 20

	ctrClient, err := client.New(restConfig, client.Options{Scheme: scheme})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create controller client")
	}

	return ctrClient, nil
}

// IsDeploymentUpdatedAndReady reports whether every replica of the latest
// generation is updated, ready and available.
func IsDeploymentUpdatedAndReady(deployment *appsv1.Deployment) bool {
	if deployment.Status.ObservedGeneration < deployment.Generation {
		return false
	}

	if deployment.Spec.Replicas == nil {
		return false
	}

	if deployment.Status.UpdatedReplicas != *deployment.Spec.Replicas {
		return false
	}

	if deployment.Status.ReadyReplicas != *deployment.Spec.Replicas {
		return false
	}

	if deployment.Status.AvailableReplicas != *deployment.Spec.Replicas {
		return false
	}

	progressing := false
	available := false

	for _, condition := range deployment.Status.Conditions {
		if condition.Type == appsv1.DeploymentProgressing && condition.Status == corev1.ConditionTrue {
			progressing = true
		}

		if condition.Type == appsv1.DeploymentAvailable && condition.Status == corev1.ConditionTrue {
			available = true
		}
	}

	return progressing && available
}

func isDeploymentStalled(deployment *appsv1.Deployment) (string, bool) {
	for _, condition := range deployment.Status.Conditions {
		if condition.Type == appsv1.DeploymentProgressing && condition.Status == corev1.ConditionFalse &&
			condition.Reason == progressDeadlineExceeded {
			return condition.Message, true
		}
	}

	return "", false
}

var _ verification.Strategy = &kubernetesStrategy{}

type kubernetesStrategy struct {
	ctrlClient client.Client
	namespace  string
	logger     klog.Logger
}

func newKubernetesStrategy(ctrlClient client.Client, namespace string, logger klog.Logger) *kubernetesStrategy {
	return &kubernetesStrategy{ctrlClient: ctrlClient, namespace: namespace, logger: logger}
}

func (s *kubernetesStrategy) Name() string {
	return string(v1.KubernetesTargetType)
}

func (s *kubernetesStrategy) DefaultTimeout() time.Duration {
	return DefaultKubernetesTimeout
}

func (s *kubernetesStrategy) PollInterval() time.Duration {
	return RemotePollInterval
}

func (s *kubernetesStrategy) IsDeployed(ctx context.Context, deployment *v1.Deployment) (verification.Status, error) {
	current := &appsv1.Deployment{}

	err := s.ctrlClient.Get(ctx, types.NamespacedName{Namespace: s.namespace, Name: deployment.ApplicationName}, current)
	if err != nil {
		if apierrors.IsNotFound(err) {
			return verification.InProgressStatus("deployment not found"), nil
		}

		return verification.Status{}, errors.Wrapf(err, "failed to get deployment %s/%s", s.namespace, deployment.ApplicationName)
	}

	if IsDeploymentUpdatedAndReady(current) {
		return verification.SuccessStatus(fmt.Sprintf("%d/%d replicas ready",
			current.Status.ReadyReplicas, ptr.Deref(current.Spec.Replicas, 0))), nil
	}

	if message, stalled := isDeploymentStalled(current); stalled {
		return verification.FailureStatus(message), nil
	}

	return verification.InProgressStatus(fmt.Sprintf("%d/%d replicas updated, %d ready",
		current.Status.UpdatedReplicas, ptr.Deref(current.Spec.Replicas, 0), current.Status.ReadyReplicas)), nil
}

// OnTimeout scales the deployment down so a broken rollout stops consuming
// resources while staying inspectable.
func (s *kubernetesStrategy) OnTimeout(ctx context.Context, deployment *v1.Deployment) {
	current := &appsv1.Deployment{}

	err := s.ctrlClient.Get(ctx, types.NamespacedName{Namespace: s.namespace, Name: deployment.ApplicationName}, current)
	if err != nil {
		if !apierrors.IsNotFound(err) {
			s.logger.Error(err, "Failed to get deployment to scale down")
		}

		return
	}

	patch := client.MergeFrom(current.DeepCopy())
	current.Spec.Replicas = ptr.To[int32](0)

	if err = s.ctrlClient.Patch(ctx, current, patch); err != nil {
		s.logger.Error(err, "Failed to scale down deployment after unsuccessful deployment")
	}
}

// KubernetesDeployer runs the artifact image as an apps/v1 Deployment.
type KubernetesDeployer struct {
	applicationOnly

	deployment *v1.Deployment
	ctrlClient client.Client
	verifier   *verification.Verifier
	logger     klog.Logger
}

var _ ArtifactDeployer = &KubernetesDeployer{}

func newKubernetesDeployer(deployment *v1.Deployment, ctrlClient client.Client, verifier *verification.Verifier,
	logger klog.Logger) *KubernetesDeployer {
	return &KubernetesDeployer{
		applicationOnly: applicationOnly{target: v1.KubernetesTargetType},
		deployment:      deployment,
		ctrlClient:      ctrlClient,
		verifier:        verifier,
		logger:          logger,
	}
}

func (d *KubernetesDeployer) labels() map[string]string {
	return map[string]string{
		NameLabel:      d.deployment.ApplicationName,
		ManagedByLabel: ManagedByValue,
	}
}

func (d *KubernetesDeployer) mutate(obj *appsv1.Deployment) {
	target := d.deployment.Target.Kubernetes
	labels := d.labels()

	if obj.Labels == nil {
		obj.Labels = map[string]string{}
	}

	for k, v := range labels {
		obj.Labels[k] = v
	}

	obj.Spec.Replicas = ptr.To(ptr.Deref(target.Replicas, 1))
	// the selector is immutable, only set it on creation
	if obj.Spec.Selector == nil {
		obj.Spec.Selector = &metav1.LabelSelector{MatchLabels: labels}
	}

	obj.Spec.Template.Labels = labels

	container := corev1.Container{
		Name:  d.deployment.ApplicationName,
		Image: d.deployment.Artifact,
	}

	if target.Port > 0 {
		container.Ports = []corev1.ContainerPort{{Name: "http", ContainerPort: target.Port}}
	}

	obj.Spec.Template.Spec.Containers = []corev1.Container{container}
}

func (d *KubernetesDeployer) DeployApplication(ctx context.Context) error {
	obj := &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      d.deployment.ApplicationName,
			Namespace: d.deployment.Target.Kubernetes.Namespace,
		},
	}

	result, err := controllerutil.CreateOrUpdate(ctx, d.ctrlClient, obj, func() error {
		d.mutate(obj)
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to apply deployment %s/%s", obj.Namespace, obj.Name)
	}

	d.logger.Info("Applied deployment", "namespace", obj.Namespace, "result", result)

	return d.verifier.AssertDeployment(ctx, d.deployment)
}

func (d *KubernetesDeployer) UndeployApplication(ctx context.Context) error {
	obj := &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      d.deployment.ApplicationName,
			Namespace: d.deployment.Target.Kubernetes.Namespace,
		},
	}

	d.logger.Info("Deleting deployment", "namespace", obj.Namespace)

	if err := d.ctrlClient.Delete(ctx, obj); err != nil && !apierrors.IsNotFound(err) {
		return errors.Wrapf(err, "failed to delete deployment %s/%s", obj.Namespace, obj.Name)
	}

	return nil
}
