package v1

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/google/go-containerregistry/pkg/name"
	"github.com/pkg/errors"
)

// ErrInvalidConfiguration is returned when a deployment is missing a
// required field or carries a value that cannot be resolved.
var ErrInvalidConfiguration = errors.New("invalid deployment configuration")

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidConfiguration, format, args...)
}

// Validate checks that every field required by the selected target is set.
// It never contacts the target.
func (d *Deployment) Validate() error {
	if d.ApplicationName == "" {
		return invalidf("application name is required")
	}

	if d.Artifact == "" {
		return invalidf("artifact is required for application %s", d.ApplicationName)
	}

	switch d.GetPackaging() {
	case ApplicationPackaging, DomainPackaging:
	default:
		return invalidf("unknown packaging %q", d.Packaging)
	}

	if d.Timeout != nil && *d.Timeout <= 0 {
		return invalidf("deployment timeout must be positive, got %d", *d.Timeout)
	}

	return d.Target.validate(d)
}

func (t *Target) validate(d *Deployment) error {
	switch t.Type {
	case StandaloneTargetType:
		if t.Standalone == nil || t.Standalone.Home == "" {
			return invalidf("standalone target requires the runtime home")
		}
	case AgentTargetType:
		if t.Agent == nil || t.Agent.URI == "" {
			return invalidf("agent target requires the agent uri")
		}
	case CloudHubTargetType:
		return t.CloudHub.validate()
	case ARMTargetType:
		return t.ARM.validate()
	case RuntimeFabricTargetType:
		return t.RuntimeFabric.validate(d.Artifact)
	case KubernetesTargetType:
		return t.Kubernetes.validate(d.Artifact)
	case "":
		return invalidf("target type is required")
	default:
		return invalidf("unknown target type %q", t.Type)
	}

	return nil
}

func (c *CloudHubTarget) validate() error {
	if c == nil {
		return invalidf("cloudhub target is not configured")
	}

	if c.Environment == "" {
		return invalidf("cloudhub target requires an environment")
	}

	if err := validateRuntimeVersion(c.RuntimeVersion); err != nil {
		return err
	}

	if c.Workers < 0 {
		return invalidf("cloudhub workers must not be negative")
	}

	return nil
}

func (a *ARMTarget) validate() error {
	if a == nil {
		return invalidf("arm target is not configured")
	}

	if a.Environment == "" {
		return invalidf("arm target requires an environment")
	}

	switch a.TargetKind {
	case ARMServerTargetKind, ARMServerGroupTargetKind, ARMClusterTargetKind:
	case "":
		return invalidf("arm target requires a target kind")
	default:
		return invalidf("unknown arm target kind %q", a.TargetKind)
	}

	if a.TargetName == "" {
		return invalidf("arm target requires a target name")
	}

	return nil
}

func (r *RuntimeFabricTarget) validate(artifact string) error {
	if r == nil {
		return invalidf("runtimefabric target is not configured")
	}

	if _, _, _, err := ParseAssetReference(artifact); err != nil {
		return err
	}

	if r.BusinessGroupID == "" {
		return invalidf("runtimefabric target requires a business group id")
	}

	if r.EnvironmentID == "" {
		return invalidf("runtimefabric target requires an environment id")
	}

	if r.FabricName == "" {
		return invalidf("runtimefabric target requires a fabric name")
	}

	if r.Replicas < 0 {
		return invalidf("runtimefabric replicas must not be negative")
	}

	return validateRuntimeVersion(r.RuntimeVersion)
}

func (k *KubernetesTarget) validate(artifact string) error {
	if k == nil {
		return invalidf("kubernetes target is not configured")
	}

	if k.Namespace == "" {
		return invalidf("kubernetes target requires a namespace")
	}

	if k.Replicas != nil && *k.Replicas < 0 {
		return invalidf("kubernetes replicas must not be negative")
	}

	if _, err := name.ParseReference(artifact); err != nil {
		return invalidf("artifact %q is not a valid image reference: %v", artifact, err)
	}

	return nil
}

func validateRuntimeVersion(version string) error {
	if version == "" {
		return invalidf("runtime version is required")
	}

	if _, err := semver.NewVersion(version); err != nil {
		return invalidf("runtime version %q cannot be resolved: %v", version, err)
	}

	return nil
}

// ParseAssetReference splits an exchange asset reference of the form
// group:asset:version.
func ParseAssetReference(ref string) (group, asset, version string, err error) {
	parts := strings.Split(ref, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", invalidf("artifact %q is not an asset reference of the form group:asset:version", ref)
	}

	return parts[0], parts[1], parts[2], nil
}
