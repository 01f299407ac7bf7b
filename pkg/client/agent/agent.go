package agent

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/neutree-ai/artifact-deployer/pkg/client"
)

const (
	applicationsPath = "/mule/applications/"
	domainsPath      = "/mule/domains/"

	DeployedState = "DEPLOYED"
)

// Artifact is an application or domain as reported by the agent.
type Artifact struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

// Interface is the subset of the runtime agent API used for deployments.
type Interface interface {
	DeployApplication(ctx context.Context, name, artifactPath string) error
	UndeployApplication(ctx context.Context, name string) error
	DeployDomain(ctx context.Context, name, artifactPath string) error
	UndeployDomain(ctx context.Context, name string) error
	// GetApplication returns nil without error when the application is unknown to the agent.
	GetApplication(ctx context.Context, name string) (*Artifact, error)
	GetDomain(ctx context.Context, name string) (*Artifact, error)
}

type Client struct {
	c *client.Client
}

var _ Interface = &Client{}

func NewClient(uri string, opts ...client.ClientOption) *Client {
	return &Client{c: client.NewClient(uri, opts...)}
}

func (a *Client) DeployApplication(ctx context.Context, name, artifactPath string) error {
	err := a.c.PutFile(ctx, applicationsPath+url.PathEscape(name), artifactPath)
	if err != nil {
		return errors.Wrapf(err, "failed to deploy application %s through agent", name)
	}

	return nil
}

func (a *Client) UndeployApplication(ctx context.Context, name string) error {
	return a.remove(ctx, applicationsPath, name)
}

func (a *Client) DeployDomain(ctx context.Context, name, artifactPath string) error {
	err := a.c.PutFile(ctx, domainsPath+url.PathEscape(name), artifactPath)
	if err != nil {
		return errors.Wrapf(err, "failed to deploy domain %s through agent", name)
	}

	return nil
}

func (a *Client) UndeployDomain(ctx context.Context, name string) error {
	return a.remove(ctx, domainsPath, name)
}

func (a *Client) GetApplication(ctx context.Context, name string) (*Artifact, error) {
	return a.get(ctx, applicationsPath, name)
}

func (a *Client) GetDomain(ctx context.Context, name string) (*Artifact, error) {
	return a.get(ctx, domainsPath, name)
}

func (a *Client) remove(ctx context.Context, base, name string) error {
	_, err := a.c.Do(ctx, http.MethodDelete, base+url.PathEscape(name), nil, "")
	if err != nil && !client.IsNotFound(err) {
		return errors.Wrapf(err, "failed to undeploy %s through agent", name)
	}

	return nil
}

func (a *Client) get(ctx context.Context, base, name string) (*Artifact, error) {
	artifact := &Artifact{}

	err := a.c.DoJSON(ctx, http.MethodGet, base+url.PathEscape(name), nil, artifact)
	if err != nil {
		if client.IsNotFound(err) {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "failed to get %s from agent", name)
	}

	return artifact, nil
}
