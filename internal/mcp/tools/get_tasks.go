package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/motion-mcp/internal/mcp/tools/types"
)

type TaskLister interface {
	ListTasks(ctx context.Context, workspaceID string) (string, error)
}

type GetTasksHandler struct {
	Service TaskLister
}

func (h *GetTasksHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := bind[types.GetTasksArgs](req)
	if err != nil {
		return nil, err
	}
	raw, err := h.Service.ListTasks(ctx, args.WorkspaceID)
	if err != nil {
		return nil, err
	}
	return indentedResult(raw)
}
