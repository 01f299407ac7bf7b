package v1

import "time"

type TargetType string

const (
	StandaloneTargetType    TargetType = "standalone"
	AgentTargetType         TargetType = "agent"
	CloudHubTargetType      TargetType = "cloudhub"
	ARMTargetType           TargetType = "arm"
	RuntimeFabricTargetType TargetType = "runtimefabric"
	KubernetesTargetType    TargetType = "kubernetes"
)

type PackagingKind string

const (
	ApplicationPackaging PackagingKind = "application"
	DomainPackaging      PackagingKind = "domain"
)

// ARM target kinds an application can be deployed to.
const (
	ARMServerTargetKind      = "server"
	ARMServerGroupTargetKind = "serverGroup"
	ARMClusterTargetKind     = "cluster"
)

// Deployment describes one deploy+verify invocation. It is built once per
// invocation and must not be mutated while a deployment is in flight.
type Deployment struct {
	ApplicationName string        `json:"application_name"`
	Artifact        string        `json:"artifact"`
	Packaging       PackagingKind `json:"packaging,omitempty"`
	// Timeout is the deployment timeout in milliseconds. When unset the
	// target's default timeout applies.
	Timeout *int64 `json:"timeout,omitempty"`
	Target  Target `json:"target"`
}

type Target struct {
	Type TargetType `json:"type"`

	Standalone    *StandaloneTarget    `json:"standalone,omitempty"`
	Agent         *AgentTarget         `json:"agent,omitempty"`
	CloudHub      *CloudHubTarget      `json:"cloudhub,omitempty"`
	ARM           *ARMTarget           `json:"arm,omitempty"`
	RuntimeFabric *RuntimeFabricTarget `json:"runtimefabric,omitempty"`
	Kubernetes    *KubernetesTarget    `json:"kubernetes,omitempty"`
}

// StandaloneTarget is a runtime installed on the local host and controlled
// through its launcher script.
type StandaloneTarget struct {
	Home string `json:"home"`
	// Launcher is the control script relative to Home, defaults to bin/mule.
	Launcher string `json:"launcher,omitempty"`
}

// AgentTarget is a runtime managed through its REST management agent.
type AgentTarget struct {
	URI   string `json:"uri"`
	Token string `json:"token,omitempty"`
}

// Platform holds the fields shared by the control-plane backed targets.
type Platform struct {
	URI             string `json:"uri,omitempty"`
	Token           string `json:"token,omitempty"`
	BusinessGroupID string `json:"business_group_id,omitempty"`
	Insecure        bool   `json:"insecure,omitempty"`
}

type CloudHubTarget struct {
	Platform `json:",inline"`

	Environment    string            `json:"environment"`
	RuntimeVersion string            `json:"runtime_version"`
	Region         string            `json:"region,omitempty"`
	Workers        int               `json:"workers,omitempty"`
	WorkerType     string            `json:"worker_type,omitempty"`
	Properties     map[string]string `json:"properties,omitempty"`
}

type ARMTarget struct {
	Platform `json:",inline"`

	Environment string `json:"environment"`
	// TargetKind is one of server, serverGroup or cluster.
	TargetKind string `json:"target_kind"`
	TargetName string `json:"target_name"`
}

type RuntimeFabricTarget struct {
	Platform `json:",inline"`

	EnvironmentID  string `json:"environment_id"`
	FabricName     string `json:"fabric_name"`
	RuntimeVersion string `json:"runtime_version"`
	Replicas       int    `json:"replicas,omitempty"`
	CPU            string `json:"cpu,omitempty"`
	Memory         string `json:"memory,omitempty"`
}

type KubernetesTarget struct {
	// Kubeconfig is the kubeconfig content. When empty the in-cluster or
	// default loading rules are used.
	Kubeconfig string `json:"kubeconfig,omitempty"`
	Namespace  string `json:"namespace"`
	Replicas   *int32 `json:"replicas,omitempty"`
	Port       int32  `json:"port,omitempty"`
}

// GetPackaging returns the packaging kind, defaulting to application.
func (d *Deployment) GetPackaging() PackagingKind {
	if d.Packaging == "" {
		return ApplicationPackaging
	}

	return d.Packaging
}

// EffectiveTimeout resolves the deployment timeout, falling back to def
// when no explicit timeout was configured.
func (d *Deployment) EffectiveTimeout(def time.Duration) time.Duration {
	if d.Timeout == nil || *d.Timeout <= 0 {
		return def
	}

	return time.Duration(*d.Timeout) * time.Millisecond
}
