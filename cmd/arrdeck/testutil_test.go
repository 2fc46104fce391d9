package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// mockServer is an httptest.Server that answers a fixed set of routes.
// Routes are keyed by method and path below /api; anything else fails the
// test with a 404.
type mockServer struct {
	t      *testing.T
	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	calls  []string
}

// newMockServer creates a new mock server builder.
// Call .Build() to create the actual httptest.Server.
func newMockServer(t *testing.T) *mockServer {
	t.Helper()
	return &mockServer{t: t, routes: make(map[string]http.HandlerFunc)}
}

// Handle registers a custom handler for method and path.
func (m *mockServer) Handle(method, path string, h http.HandlerFunc) *mockServer {
	m.routes[method+" "+path] = h
	return m
}

// RespondJSON answers method and path with JSON-encoded data.
func (m *mockServer) RespondJSON(method, path string, v any) *mockServer {
	return m.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(m.t, w, v)
	})
}

// RespondStatus answers method and path with just a status code.
func (m *mockServer) RespondStatus(method, path string, code int) *mockServer {
	return m.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	})
}

// RespondError answers method and path with an error status and message.
func (m *mockServer) RespondError(method, path string, code int, message string) *mockServer {
	return m.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
	})
}

// Called reports whether method and path were requested.
func (m *mockServer) Called(method, path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.calls {
		if c == method+" "+path {
			return true
		}
	}
	return false
}

// Build creates and returns the httptest.Server. It is closed at test cleanup.
func (m *mockServer) Build() *httptest.Server {
	m.t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/api")
		m.mu.Lock()
		m.calls = append(m.calls, key)
		h, ok := m.routes[key]
		m.mu.Unlock()
		if !ok {
			m.t.Errorf("unexpected request: %s", key)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
	m.t.Cleanup(srv.Close)
	return srv
}

// respondJSON writes a JSON response with proper content-type header.
// Fails the test if JSON encoding fails instead of silently ignoring.
func respondJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode JSON response: %v", err)
	}
}

// decodeBody decodes a JSON request body into v.
func decodeBody(t *testing.T, r *http.Request, v any) {
	t.Helper()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		t.Errorf("failed to decode request body: %v", err)
	}
}

// testCLI runs commands against one server with a private config and state
// database, so state written by one run is seen by the next.
type testCLI struct {
	t       *testing.T
	cfgPath string
}

func newTestCLI(t *testing.T, srvURL string) *testCLI {
	t.Helper()
	dir := t.TempDir()
	cfg := fmt.Sprintf(`[server]
url = %q
timeout = "5s"
min_version = ">= 1.0.0"

[state]
path = %q

[log]
level = "error"

[activity]
poll_interval = "1s"
history_size = 10

[library]
page_size = 2

[discover]
pages_per_second = 100
`, srvURL+"/api", filepath.Join(dir, "state.db"))
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	return &testCLI{t: t, cfgPath: path}
}

// run executes arrdeck with args and returns everything written to stdout
// and stderr.
func (c *testCLI) run(args ...string) (string, error) {
	return c.runWithInput("", args...)
}

func (c *testCLI) runWithInput(input string, args ...string) (string, error) {
	c.t.Helper()
	return executeCommand(c.t, input, append([]string{"--config", c.cfgPath}, args...)...)
}

func executeCommand(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	if app != nil {
		// PersistentPostRunE is skipped when a command fails.
		_ = teardown(rootCmd, nil)
	}
	return buf.String(), err
}

// resetFlags puts every flag back to its default so runs do not leak into
// each other through the package-level commands.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
