package arm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/neutree-ai/artifact-deployer/pkg/client"
)

const (
	DefaultURI = "https://anypoint.mulesoft.com"

	apiPath = "/hybrid/api/v1"

	EnvironmentHeader  = "X-ANYPNT-ENV-ID"
	OrganizationHeader = "X-ANYPNT-ORG-ID"

	StatusStarted = "STARTED"
)

var targetCollections = map[string]string{
	"server":      "servers",
	"serverGroup": "serverGroups",
	"cluster":     "clusters",
}

// Application is the runtime manager view of a deployed application.
type Application struct {
	ID                 int
	Name               string
	DesiredStatus      string
	LastReportedStatus string
}

// Interface is the subset of the runtime manager API used for deployments.
type Interface interface {
	// FindTargetID resolves a server, server group or cluster by name.
	FindTargetID(ctx context.Context, kind, name string) (int, error)
	// FindApplication returns nil without error when no application has that name.
	FindApplication(ctx context.Context, name string) (*Application, error)
	DeployApplication(ctx context.Context, targetID int, name, artifactPath string) (*Application, error)
	RedeployApplication(ctx context.Context, id int, artifactPath string) (*Application, error)
	GetApplication(ctx context.Context, id int) (*Application, error)
	StopApplication(ctx context.Context, id int) error
	DeleteApplication(ctx context.Context, id int) error
}

type Client struct {
	c *client.Client
}

var _ Interface = &Client{}

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

func applicationPath(id int) string {
	return apiPath + "/applications/" + strconv.Itoa(id)
}

func (a *Client) FindTargetID(ctx context.Context, kind, name string) (int, error) {
	collection, ok := targetCollections[kind]
	if !ok {
		return 0, errors.Errorf("unknown target kind %s", kind)
	}

	body, err := a.c.Do(ctx, http.MethodGet, apiPath+"/"+collection, nil, "")
	if err != nil {
		return 0, errors.Wrapf(err, "failed to list %s", collection)
	}

	target := gjson.GetBytes(body, fmt.Sprintf("data.#(name==%q).id", name))
	if !target.Exists() {
		return 0, errors.Errorf("%s %s not found", kind, name)
	}

	return int(target.Int()), nil
}

func (a *Client) FindApplication(ctx context.Context, name string) (*Application, error) {
	body, err := a.c.Do(ctx, http.MethodGet, apiPath+"/applications?query="+url.QueryEscape(name), nil, "")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search application %s", name)
	}

	app := gjson.GetBytes(body, fmt.Sprintf("data.#(name==%q)", name))
	if !app.Exists() {
		return nil, nil
	}

	return parseApplication(app), nil
}

func (a *Client) DeployApplication(ctx context.Context, targetID int, name, artifactPath string) (*Application, error) {
	fields := map[string]string{
		"artifactName": name,
		"targetId":     strconv.Itoa(targetID),
	}

	body, err := a.c.UploadFile(ctx, http.MethodPost, apiPath+"/applications", "file", artifactPath, fields)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to deploy application %s", name)
	}

	return parseApplication(gjson.GetBytes(body, "data")), nil
}

func (a *Client) RedeployApplication(ctx context.Context, id int, artifactPath string) (*Application, error) {
	body, err := a.c.UploadFile(ctx, http.MethodPatch, applicationPath(id), "file", artifactPath, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to redeploy application %d", id)
	}

	return parseApplication(gjson.GetBytes(body, "data")), nil
}

func (a *Client) GetApplication(ctx context.Context, id int) (*Application, error) {
	body, err := a.c.Do(ctx, http.MethodGet, applicationPath(id), nil, "")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get application %d", id)
	}

	return parseApplication(gjson.GetBytes(body, "data")), nil
}

func (a *Client) StopApplication(ctx context.Context, id int) error {
	err := a.c.DoJSON(ctx, http.MethodPatch, applicationPath(id), map[string]string{"desiredStatus": "STOPPED"}, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to stop application %d", id)
	}

	return nil
}

func (a *Client) DeleteApplication(ctx context.Context, id int) error {
	_, err := a.c.Do(ctx, http.MethodDelete, applicationPath(id), nil, "")
	if err != nil && !client.IsNotFound(err) {
		return errors.Wrapf(err, "failed to delete application %d", id)
	}

	return nil
}

func parseApplication(r gjson.Result) *Application {
	return &Application{
		ID:                 int(r.Get("id").Int()),
		Name:               r.Get("name").String(),
		DesiredStatus:      r.Get("desiredStatus").String(),
		LastReportedStatus: r.Get("lastReportedStatus").String(),
	}
}
