package motion

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/tidwall/gjson"

	"github.com/roivaz/motion-mcp/internal/logging"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

// fakeMotion serves canned responses keyed by "METHOD /path" and records every
// request it sees.
type fakeMotion struct {
	mu        sync.Mutex
	requests  []recordedRequest
	responses map[string]fakeResponse
}

type fakeResponse struct {
	status int
	body   string
}

func newFakeMotion(t *testing.T, responses map[string]fakeResponse) (*fakeMotion, *Client) {
	t.Helper()
	f := &fakeMotion{responses: responses}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   string(body),
		})
		f.mu.Unlock()

		resp, ok := f.responses[r.Method+" "+r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(resp.status)
		_, _ = io.WriteString(w, resp.body)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Config{
		BaseURL: srv.URL + "/v1",
		APIKey:  "test-key",
		Logger:  logging.New(logr.Discard()),
	})
	return f, client
}

func (f *fakeMotion) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func TestDoSendsAuthAndContentType(t *testing.T) {
	f, client := newFakeMotion(t, map[string]fakeResponse{
		"GET /v1/workspaces": {status: http.StatusOK, body: `{"workspaces":[]}`},
	})

	if _, err := client.Do(context.Background(), "workspaces"); err != nil {
		t.Fatalf("Do: %v", err)
	}
	reqs := f.recorded()
	if len(reqs) != 1 {
		t.Fatalf("expected 1 request, got %d", len(reqs))
	}
	if got := reqs[0].Header.Get("X-API-Key"); got != "test-key" {
		t.Fatalf("unexpected api key header %q", got)
	}
	if got := reqs[0].Header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type %q", got)
	}
}

func TestDoCallerHeadersOverrideDefaults(t *testing.T) {
	f, client := newFakeMotion(t, map[string]fakeResponse{
		"GET /v1/workspaces": {status: http.StatusOK, body: `{}`},
	})

	_, err := client.Do(context.Background(), "workspaces",
		WithHeader("X-API-Key", "other-key"),
		WithHeader("Accept", "application/json"),
	)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	h := f.recorded()[0].Header
	if h.Get("X-API-Key") != "other-key" {
		t.Fatalf("override not applied: %q", h.Get("X-API-Key"))
	}
	if h.Get("Accept") != "application/json" {
		t.Fatalf("extra header missing")
	}
}

func TestDoUpstreamError(t *testing.T) {
	_, client := newFakeMotion(t, map[string]fakeResponse{
		"GET /v1/workspaces": {status: http.StatusUnauthorized, body: `{"message":"bad key"}`},
	})

	_, err := client.Do(context.Background(), "workspaces")
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.StatusCode != http.StatusUnauthorized || upstream.StatusText != "Unauthorized" {
		t.Fatalf("unexpected upstream error %+v", upstream)
	}
	if err.Error() != "Motion API error: 401 Unauthorized" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestDoDecodeError(t *testing.T) {
	_, client := newFakeMotion(t, map[string]fakeResponse{
		"GET /v1/workspaces": {status: http.StatusOK, body: `<html>oops</html>`},
	})

	_, err := client.Do(context.Background(), "workspaces")
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestDoTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "k", Timeout: 20 * time.Millisecond})
	_, err := client.Do(context.Background(), "workspaces")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestListWorkspaces(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "present", body: `{"workspaces":[{"id":"A","name":"Home"}]}`, want: `[{"id":"A","name":"Home"}]`},
		{name: "empty", body: `{"workspaces":[]}`, want: `[]`},
		{name: "absent", body: `{}`, want: `[]`},
		{name: "null", body: `{"workspaces":null}`, want: `[]`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, client := newFakeMotion(t, map[string]fakeResponse{
				"GET /v1/workspaces": {status: http.StatusOK, body: tc.body},
			})
			got, err := client.ListWorkspaces(context.Background())
			if err != nil {
				t.Fatalf("ListWorkspaces: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestListTasksWorkspaceFilter(t *testing.T) {
	f, client := newFakeMotion(t, map[string]fakeResponse{
		"GET /v1/tasks": {status: http.StatusOK, body: `{"tasks":[{"id":"t1"}]}`},
	})

	if _, err := client.ListTasks(context.Background(), "W1"); err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if _, err := client.ListTasks(context.Background(), ""); err != nil {
		t.Fatalf("ListTasks: %v", err)
	}

	reqs := f.recorded()
	if reqs[0].Query != "workspaceId=W1" {
		t.Fatalf("expected workspace filter, got %q", reqs[0].Query)
	}
	if reqs[1].Query != "" {
		t.Fatalf("expected no query, got %q", reqs[1].Query)
	}
}

func TestListTasksAbsentField(t *testing.T) {
	_, client := newFakeMotion(t, map[string]fakeResponse{
		"GET /v1/tasks": {status: http.StatusOK, body: `{"meta":{}}`},
	})
	got, err := client.ListTasks(context.Background(), "")
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if got != "[]" {
		t.Fatalf("expected [], got %s", got)
	}
}

func TestTasksEndpointIsNotEscaped(t *testing.T) {
	if got := TasksEndpoint("a&b=c"); got != "tasks?workspaceId=a&b=c" {
		t.Fatalf("unexpected endpoint %q", got)
	}
	if got := TasksEndpoint(""); got != "tasks" {
		t.Fatalf("unexpected endpoint %q", got)
	}
}

func TestIndent(t *testing.T) {
	got, err := Indent(`[{"id":"B","name":"x"},{"id":"A"}]`)
	if err != nil {
		t.Fatalf("Indent: %v", err)
	}
	want := "[\n  {\n    \"id\": \"B\",\n    \"name\": \"x\"\n  },\n  {\n    \"id\": \"A\"\n  }\n]"
	if got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
	if got, _ := Indent("[]"); got != "[]" {
		t.Fatalf("expected [], got %s", got)
	}
}

func TestTaskFromReadsNestedWorkspace(t *testing.T) {
	task := taskFrom(gjson.Parse(`{"id":"t1","name":"n","priority":"HIGH","workspace":{"id":"W"}}`))
	if task.WorkspaceID != "W" || task.Priority != PriorityHigh {
		t.Fatalf("unexpected task %+v", task)
	}
	if !strings.HasPrefix(FormatCreated(task), "✅ Task \"n\" created successfully!") {
		t.Fatalf("unexpected confirmation %q", FormatCreated(task))
	}
}
