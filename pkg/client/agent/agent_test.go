package agent

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neutree-ai/artifact-deployer/pkg/client"
)

func newTestServer(t *testing.T) (*httptest.Server, map[string][]byte) {
	t.Helper()

	deployed := map[string][]byte{}
	mux := http.NewServeMux()

	handle := func(prefix string) {
		mux.HandleFunc(prefix, func(w http.ResponseWriter, r *http.Request) {
			key := r.URL.Path

			switch r.Method {
			case http.MethodPut:
				data, _ := io.ReadAll(r.Body)
				deployed[key] = data
				w.WriteHeader(http.StatusAccepted)
			case http.MethodGet:
				if _, ok := deployed[key]; !ok {
					http.NotFound(w, r)
					return
				}

				_, _ = w.Write([]byte(`{"name":"orders","state":"DEPLOYED"}`))
			case http.MethodDelete:
				if _, ok := deployed[key]; !ok {
					http.NotFound(w, r)
					return
				}

				delete(deployed, key)
			}
		})
	}

	handle(applicationsPath)
	handle(domainsPath)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server, deployed
}

func TestClient_Applications(t *testing.T) {
	server, deployed := newTestServer(t)
	ctx := context.Background()

	artifact := filepath.Join(t.TempDir(), "orders.jar")
	require.NoError(t, os.WriteFile(artifact, []byte("archive"), 0o600))

	c := NewClient(server.URL, client.WithToken("secret"))

	app, err := c.GetApplication(ctx, "orders")
	require.NoError(t, err)
	assert.Nil(t, app, "unknown applications are reported as nil")

	require.NoError(t, c.DeployApplication(ctx, "orders", artifact))
	assert.Equal(t, []byte("archive"), deployed["/mule/applications/orders"])

	app, err = c.GetApplication(ctx, "orders")
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, DeployedState, app.State)

	require.NoError(t, c.UndeployApplication(ctx, "orders"))
	assert.Empty(t, deployed)

	// undeploying twice is not an error
	require.NoError(t, c.UndeployApplication(ctx, "orders"))
}

func TestClient_Domains(t *testing.T) {
	server, deployed := newTestServer(t)
	ctx := context.Background()

	artifact := filepath.Join(t.TempDir(), "shared.jar")
	require.NoError(t, os.WriteFile(artifact, []byte("domain"), 0o600))

	c := NewClient(server.URL)

	require.NoError(t, c.DeployDomain(ctx, "shared", artifact))
	assert.Contains(t, deployed, "/mule/domains/shared")

	domain, err := c.GetDomain(ctx, "shared")
	require.NoError(t, err)
	require.NotNil(t, domain)

	require.NoError(t, c.UndeployDomain(ctx, "shared"))
	assert.Empty(t, deployed)
}

func TestClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).GetApplication(context.Background(), "orders")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
