package runtimefabric

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/neutree-ai/artifact-deployer/pkg/client"
)

const DefaultURI = "https://anypoint.mulesoft.com"

// Deployment status values reported by the fleet manager.
const (
	StatusApplied = "APPLIED"
	StatusStarted = "STARTED"
	StatusFailed  = "FAILED"
)

const (
	DesiredStateStarted = "STARTED"
	DesiredStateStopped = "STOPPED"
)

type Asset struct {
	GroupID    string `json:"groupId"`
	AssetID    string `json:"artifactId"`
	Version    string `json:"version"`
	Packaging  string `json:"packaging,omitempty"`
	Classifier string `json:"classifier,omitempty"`
}

type Resources struct {
	CPU    string `json:"cpu,omitempty"`
	Memory string `json:"memory,omitempty"`
}

type DeploymentTarget struct {
	TargetID string `json:"targetId"`
	Replicas int    `json:"replicas"`
}

// DeploymentRequest is the body of create and update calls.
type DeploymentRequest struct {
	Name           string           `json:"name"`
	Asset          Asset            `json:"asset"`
	RuntimeVersion string           `json:"runtimeVersion"`
	DesiredState   string           `json:"desiredState"`
	Target         DeploymentTarget `json:"target"`
	Resources      *Resources       `json:"resources,omitempty"`
}

// Interface is the subset of the fleet manager API used for deployments.
type Interface interface {
	FindTargetID(ctx context.Context, fabricName string) (string, error)
	// FindDeployment returns an empty id without error when no deployment has that name.
	FindDeployment(ctx context.Context, name string) (string, error)
	CreateDeployment(ctx context.Context, req *DeploymentRequest) (string, error)
	UpdateDeployment(ctx context.Context, id string, req *DeploymentRequest) error
	// GetDeploymentStatus returns the detailed status, empty when the fleet manager has none yet.
	GetDeploymentStatus(ctx context.Context, id string) (string, error)
	StopDeployment(ctx context.Context, id string) error
	DeleteDeployment(ctx context.Context, id string) error
}

type Client struct {
	c              *client.Client
	organizationID string
	environmentID  string
}

var _ Interface = &Client{}

func NewClient(uri, organizationID, environmentID string, opts ...client.ClientOption) *Client {
	if uri == "" {
		uri = DefaultURI
	}

	return &Client{
		c:              client.NewClient(uri, opts...),
		organizationID: organizationID,
		environmentID:  environmentID,
	}
}

func (r *Client) deploymentsPath() string {
	return fmt.Sprintf("/amc/application-manager/api/v2/organizations/%s/environments/%s/deployments",
		url.PathEscape(r.organizationID), url.PathEscape(r.environmentID))
}

func (r *Client) deploymentPath(id string) string {
	return r.deploymentsPath() + "/" + url.PathEscape(id)
}

func (r *Client) FindTargetID(ctx context.Context, fabricName string) (string, error) {
	path := fmt.Sprintf("/runtimefabric/api/organizations/%s/targets", url.PathEscape(r.organizationID))

	body, err := r.c.Do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return "", errors.Wrap(err, "failed to list runtime fabric targets")
	}

	target := gjson.GetBytes(body, fmt.Sprintf("#(name==%q).id", fabricName))
	if !target.Exists() {
		return "", errors.Errorf("runtime fabric %s not found", fabricName)
	}

	return target.String(), nil
}

func (r *Client) FindDeployment(ctx context.Context, name string) (string, error) {
	body, err := r.c.Do(ctx, http.MethodGet, r.deploymentsPath(), nil, "")
	if err != nil {
		return "", errors.Wrap(err, "failed to list deployments")
	}

	return gjson.GetBytes(body, fmt.Sprintf("items.#(name==%q).id", name)).String(), nil
}

func (r *Client) CreateDeployment(ctx context.Context, req *DeploymentRequest) (string, error) {
	var created struct {
		ID string `json:"id"`
	}

	if err := r.c.DoJSON(ctx, http.MethodPost, r.deploymentsPath(), req, &created); err != nil {
		return "", errors.Wrapf(err, "failed to create deployment %s", req.Name)
	}

	if created.ID == "" {
		return "", errors.Errorf("fleet manager returned no id for deployment %s", req.Name)
	}

	return created.ID, nil
}

func (r *Client) UpdateDeployment(ctx context.Context, id string, req *DeploymentRequest) error {
	if err := r.c.DoJSON(ctx, http.MethodPatch, r.deploymentPath(id), req, nil); err != nil {
		return errors.Wrapf(err, "failed to update deployment %s", id)
	}

	return nil
}

func (r *Client) GetDeploymentStatus(ctx context.Context, id string) (string, error) {
	body, err := r.c.Do(ctx, http.MethodGet, r.deploymentPath(id), nil, "")
	if err != nil {
		return "", errors.Wrapf(err, "failed to get deployment %s", id)
	}

	return gjson.GetBytes(body, "status").String(), nil
}

func (r *Client) StopDeployment(ctx context.Context, id string) error {
	body := map[string]interface{}{
		"application": map[string]string{"desiredState": DesiredStateStopped},
	}

	if err := r.c.DoJSON(ctx, http.MethodPatch, r.deploymentPath(id), body, nil); err != nil {
		return errors.Wrapf(err, "failed to stop deployment %s", id)
	}

	return nil
}

func (r *Client) DeleteDeployment(ctx context.Context, id string) error {
	_, err := r.c.Do(ctx, http.MethodDelete, r.deploymentPath(id), nil, "")
	if err != nil && !client.IsNotFound(err) {
		return errors.Wrapf(err, "failed to delete deployment %s", id)
	}

	return nil
}
