package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/neutree-ai/artifact-deployer/internal/version"
)

const RequestIDHeader = "X-Request-ID"

// Client is the HTTP transport shared by the backend clients. Credentials are
// expected to be resolved already; the client only attaches them.
type Client struct {
	baseURL    string
	token      string
	headers    http.Header
	httpClient *http.Client
}

// ClientOption is a function that configures a Client
type ClientOption func(*Client)

// WithToken sets the bearer token sent with every request
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// WithHeader sets a header sent with every request
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		if value != "" {
			c.headers.Set(key, value)
		}
	}
}

// WithHTTPClient sets the HTTP client for the API client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithInsecureSkipVerify disables TLS certificate verification. The transport
// and the http client are copied first, a client passed with WithHTTPClient
// is left untouched.
func WithInsecureSkipVerify() ClientOption {
	return func(c *Client) {
		base, ok := c.httpClient.Transport.(*http.Transport)
		if !ok {
			base = http.DefaultTransport.(*http.Transport) //nolint:errcheck
		}

		transport := base.Clone()
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{} //nolint:gosec
		}
		//nolint:gosec
		transport.TLSClientConfig.InsecureSkipVerify = true

		httpClient := *c.httpClient
		httpClient.Transport = transport
		c.httpClient = &httpClient
	}
}

// WithTimeout sets the timeout of a single request
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new API client rooted at baseURL
func NewClient(baseURL string, options ...ClientOption) *Client {
	client := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		headers: http.Header{},
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, option := range options {
		option(client)
	}

	return client
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIError is returned when the server answers with a non 2xx status.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Do sends a request and returns the response body of a 2xx answer.
func (c *Client) Do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	for key, values := range c.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set(RequestIDHeader, uuid.NewString())

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to execute %s %s", method, req.URL.Path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{
			Method:     method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	return respBody, nil
}

// DoJSON sends in as a JSON body (when not nil) and decodes the answer into out (when not nil).
func (c *Client) DoJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var (
		body        io.Reader
		contentType string
	)

	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "failed to marshal request body")
		}

		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	respBody, err := c.Do(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.Wrap(err, "failed to decode response body")
	}

	return nil
}

// UploadFile sends filePath as a multipart form field next to fields and returns the raw answer.
func (c *Client) UploadFile(ctx context.Context, method, path, field, filePath string, fields map[string]string) ([]byte, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open artifact %s", filePath)
	}
	defer f.Close()

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, errors.Wrapf(err, "failed to write form field %s", key)
		}
	}

	part, err := writer.CreateFormFile(field, filepath.Base(filePath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create form file")
	}

	if _, err := io.Copy(part, f); err != nil {
		return nil, errors.Wrapf(err, "failed to read artifact %s", filePath)
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to close multipart writer")
	}

	return c.Do(ctx, method, path, buf, writer.FormDataContentType())
}

// PutFile sends filePath as a raw octet-stream body.
func (c *Client) PutFile(ctx context.Context, path, filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return errors.Wrapf(err, "failed to open artifact %s", filePath)
	}
	defer f.Close()

	_, err = c.Do(ctx, http.MethodPut, path, f, "application/octet-stream")

	return err
}
