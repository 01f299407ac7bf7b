package cloudhub

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/neutree-ai/artifact-deployer/pkg/client"
)

const (
	DefaultURI = "https://anypoint.mulesoft.com"

	apiPath = "/cloudhub/api"

	EnvironmentHeader  = "X-ANYPNT-ENV-ID"
	OrganizationHeader = "X-ANYPNT-ORG-ID"

	defaultWorkerType   = "MICRO"
	defaultWorkerAmount = 1
)

// Application status values reported by the control plane.
const (
	StatusStarted         = "STARTED"
	StatusUndeployed      = "UNDEPLOYED"
	UpdateStatusDeploying = "DEPLOYING"
)

type WorkerType struct {
	Name string `json:"name"`
}

type Workers struct {
	Amount int        `json:"amount"`
	Type   WorkerType `json:"type"`
}

type MuleVersion struct {
	Version string `json:"version"`
}

// Application is the control plane view of an application.
type Application struct {
	Domain                 string            `json:"domain"`
	Status                 string            `json:"status,omitempty"`
	DeploymentUpdateStatus string            `json:"deploymentUpdateStatus,omitempty"`
	Region                 string            `json:"region,omitempty"`
	MuleVersion            *MuleVersion      `json:"muleVersion,omitempty"`
	Workers                *Workers          `json:"workers,omitempty"`
	Properties             map[string]string `json:"properties,omitempty"`
}

// ApplicationRequest is the body of create and update calls.
type ApplicationRequest struct {
	Domain      string            `json:"domain,omitempty"`
	Region      string            `json:"region,omitempty"`
	MuleVersion MuleVersion       `json:"muleVersion"`
	Workers     Workers           `json:"workers"`
	Properties  map[string]string `json:"properties,omitempty"`
}

func NewApplicationRequest(domain, region, runtimeVersion string, workers int, workerType string, properties map[string]string) *ApplicationRequest {
	if workers <= 0 {
		workers = defaultWorkerAmount
	}

	if workerType == "" {
		workerType = defaultWorkerType
	}

	return &ApplicationRequest{
		Domain:      domain,
		Region:      region,
		MuleVersion: MuleVersion{Version: runtimeVersion},
		Workers: Workers{
			Amount: workers,
			Type:   WorkerType{Name: workerType},
		},
		Properties: properties,
	}
}

// Interface is the subset of the control plane API used for deployments.
type Interface interface {
	// GetApplication returns nil without error when the domain does not exist.
	GetApplication(ctx context.Context, domain string) (*Application, error)
	CreateApplication(ctx context.Context, req *ApplicationRequest) error
	UpdateApplication(ctx context.Context, domain string, req *ApplicationRequest) error
	UploadFile(ctx context.Context, domain, artifactPath string) error
	StartApplication(ctx context.Context, domain string) error
	StopApplication(ctx context.Context, domain string) error
	DeleteApplication(ctx context.Context, domain string) error
}

type Client struct {
	c *client.Client
}

var _ Interface = &Client{}

// NewClient creates a client scoped to one environment of a business group.
func NewClient(uri, environment, businessGroupID string, opts ...client.ClientOption) *Client {
	if uri == "" {
		uri = DefaultURI
	}

	opts = append([]client.ClientOption{
		client.WithHeader(EnvironmentHeader, environment),
		client.WithHeader(OrganizationHeader, businessGroupID),
	}, opts...)

	return &Client{c: client.NewClient(uri, opts...)}
}

func applicationPath(domain string) string {
	return apiPath + "/applications/" + url.PathEscape(domain)
}

func (c *Client) GetApplication(ctx context.Context, domain string) (*Application, error) {
	app := &Application{}

	err := c.c.DoJSON(ctx, http.MethodGet, applicationPath(domain), nil, app)
	if err != nil {
		if client.IsNotFound(err) {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "failed to get cloudhub application %s", domain)
	}

	return app, nil
}

func (c *Client) CreateApplication(ctx context.Context, req *ApplicationRequest) error {
	err := c.c.DoJSON(ctx, http.MethodPost, apiPath+"/applications", req, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to create cloudhub application %s", req.Domain)
	}

	return nil
}

func (c *Client) UpdateApplication(ctx context.Context, domain string, req *ApplicationRequest) error {
	// the domain is immutable and must not be part of an update
	update := *req
	update.Domain = ""

	err := c.c.DoJSON(ctx, http.MethodPut, applicationPath(domain), &update, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to update cloudhub application %s", domain)
	}

	return nil
}

func (c *Client) UploadFile(ctx context.Context, domain, artifactPath string) error {
	_, err := c.c.UploadFile(ctx, http.MethodPost, applicationPath(domain)+"/files", "file", artifactPath, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to upload artifact for cloudhub application %s", domain)
	}

	return nil
}

func (c *Client) StartApplication(ctx context.Context, domain string) error {
	return c.changeStatus(ctx, domain, "START")
}

func (c *Client) StopApplication(ctx context.Context, domain string) error {
	return c.changeStatus(ctx, domain, "STOP")
}

func (c *Client) changeStatus(ctx context.Context, domain, status string) error {
	body := map[string]string{"status": status}

	err := c.c.DoJSON(ctx, http.MethodPost, applicationPath(domain)+"/status", body, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to %s cloudhub application %s", status, domain)
	}

	return nil
}

func (c *Client) DeleteApplication(ctx context.Context, domain string) error {
	_, err := c.c.Do(ctx, http.MethodDelete, applicationPath(domain), nil, "")
	if err != nil && !client.IsNotFound(err) {
		return errors.Wrapf(err, "failed to delete cloudhub application %s", domain)
	}

	return nil
}
