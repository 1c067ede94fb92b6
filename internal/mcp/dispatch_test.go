package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-logr/logr"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/motion-mcp/internal/logging"
	"github.com/roivaz/motion-mcp/internal/mcp/tools/types"
	"github.com/roivaz/motion-mcp/internal/motion"
)

type stubAdapter struct {
	got mcp.CallToolRequest
}

func (a *stubAdapter) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a.got = req
	return mcp.NewToolResultText("ok"), nil
}

func TestDispatchToolsList(t *testing.T) {
	d := NewDispatcher(nil, logging.New(logr.Discard()))
	out, err := d.Dispatch(context.Background(), Request{Method: MethodToolsList})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	list, ok := out.(ToolList)
	if !ok {
		t.Fatalf("unexpected result %T", out)
	}
	want := []string{types.ToolGetWorkspaces, types.ToolGetTasks, types.ToolCreateTask}
	if len(list.Tools) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(list.Tools))
	}
	for i, name := range want {
		if list.Tools[i].Name != name || list.Tools[i].Description == "" {
			t.Fatalf("tool %d: got %+v", i, list.Tools[i])
		}
	}
}

func TestDispatchRoutesByName(t *testing.T) {
	stub := &stubAdapter{}
	d := NewDispatcher(map[string]ToolAdapter{types.ToolGetTasks: stub}, logging.New(logr.Discard()))

	params := json.RawMessage(`{"name":"motion_get_tasks","arguments":{"workspaceId":"W1"}}`)
	out, err := d.Dispatch(context.Background(), Request{Method: MethodToolsCall, Params: params})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if _, ok := out.(*mcp.CallToolResult); !ok {
		t.Fatalf("unexpected result %T", out)
	}
	if stub.got.Params.Name != types.ToolGetTasks {
		t.Fatalf("adapter saw %q", stub.got.Params.Name)
	}
	if stub.got.GetArguments()["workspaceId"] != "W1" {
		t.Fatalf("arguments not forwarded: %v", stub.got.GetArguments())
	}
}

func TestDispatchErrors(t *testing.T) {
	d := NewDispatcher(map[string]ToolAdapter{}, logging.New(logr.Discard()))
	tests := []struct {
		name   string
		req    Request
		status int
	}{
		{name: "unknown method", req: Request{Method: "tools/explode"}, status: http.StatusBadRequest},
		{name: "missing params", req: Request{Method: MethodToolsCall}, status: http.StatusInternalServerError},
		{name: "missing name", req: Request{Method: MethodToolsCall, Params: json.RawMessage(`{"arguments":{}}`)}, status: http.StatusInternalServerError},
		{name: "unknown tool", req: Request{Method: MethodToolsCall, Params: json.RawMessage(`{"name":"nope"}`)}, status: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := d.Dispatch(context.Background(), tc.req)
			if err == nil {
				t.Fatalf("expected error")
			}
			if status, _ := StatusFor(err); status != tc.status {
				t.Fatalf("expected status %d, got %d (%v)", tc.status, status, err)
			}
		})
	}
}

func TestStatusForTable(t *testing.T) {
	upstream := &motion.UpstreamError{StatusCode: 404, StatusText: "Not Found"}
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{&UnknownMethodError{Method: "x"}, http.StatusBadRequest, "Unknown method: x"},
		{&types.UnknownToolError{Name: "y"}, http.StatusInternalServerError, "Unknown tool: y"},
		{fmt.Errorf("list tasks: %w", upstream), http.StatusInternalServerError, "Motion API error: 404 Not Found"},
		{fmt.Errorf("resolve: %w", motion.ErrNoWorkspace), http.StatusInternalServerError, "No workspaces available"},
		{&motion.DecodeError{Endpoint: "tasks", Err: errors.New("bad")}, http.StatusInternalServerError, "Motion API returned invalid JSON for tasks: bad"},
		{&types.MissingArgumentError{Tool: "t", Argument: "name"}, http.StatusInternalServerError, `t requires a non-empty "name" argument`},
		{errors.New("boom"), http.StatusInternalServerError, "boom"},
	}
	for _, tc := range tests {
		status, message := StatusFor(tc.err)
		if status != tc.status || message != tc.message {
			t.Fatalf("StatusFor(%v) = %d %q, want %d %q", tc.err, status, message, tc.status, tc.message)
		}
	}
}
