package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/motion-mcp/internal/logging"
	"github.com/roivaz/motion-mcp/internal/mcp/tools/types"
)

const (
	MethodToolsList = "tools/list"
	MethodToolsCall = "tools/call"
)

// Request is the body accepted on POST /mcp.
type Request struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

type callParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// Dispatcher routes {method, params} requests to tool adapters. It keeps no
// state between calls.
type Dispatcher struct {
	tools map[string]ToolAdapter
	log   logging.Logger
}

func NewDispatcher(adapters map[string]ToolAdapter, log logging.Logger) *Dispatcher {
	return &Dispatcher{tools: adapters, log: log.WithName("dispatcher")}
}

// Dispatch returns a ToolList for tools/list and a *mcp.CallToolResult for
// tools/call.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (any, error) {
	switch req.Method {
	case MethodToolsList:
		return Catalog(), nil
	case MethodToolsCall:
		return d.call(ctx, req.Params)
	default:
		return nil, &UnknownMethodError{Method: req.Method}
	}
}

func (d *Dispatcher) call(ctx context.Context, raw json.RawMessage) (*mcp.CallToolResult, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, &InvalidParamsError{Reason: "tools/call requires params"}
	}
	var params callParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, &InvalidParamsError{Reason: err.Error()}
	}
	if params.Name == "" {
		return nil, &InvalidParamsError{Reason: "tools/call requires params.name"}
	}

	adapter, ok := d.tools[params.Name]
	if !ok {
		return nil, &types.UnknownToolError{Name: params.Name}
	}

	var req mcp.CallToolRequest
	req.Params.Name = params.Name
	req.Params.Arguments = params.Arguments

	d.log.Debug("calling tool", "tool", params.Name)
	return adapter.ToolAdapter(ctx, req)
}
