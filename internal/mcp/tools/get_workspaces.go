package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/motion-mcp/internal/mcp/tools/types"
)

type WorkspaceService interface {
	ListWorkspaces(ctx context.Context) (string, error)
}

type GetWorkspacesHandler struct {
	Service WorkspaceService
}

func (h *GetWorkspacesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := bind[types.GetWorkspacesArgs](req); err != nil {
		return nil, err
	}
	raw, err := h.Service.ListWorkspaces(ctx)
	if err != nil {
		return nil, err
	}
	return indentedResult(raw)
}
