package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	gh "github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/require"
)

func setupTestClient(t *testing.T, handler http.HandlerFunc) *gh.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := GetGithubClient("test-token")
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.BaseURL = baseURL
	return client
}

// fakeExecutor answers queries with canned JSON data.
type fakeExecutor struct {
	mu      sync.Mutex
	calls   []Query
	respond func(q Query) (string, error)
}

func (f *fakeExecutor) Execute(ctx context.Context, q Query, out any) error {
	f.mu.Lock()
	f.calls = append(f.calls, q)
	f.mu.Unlock()

	data, err := f.respond(q)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), out)
}

func (f *fakeExecutor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
