package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/motion-mcp/internal/mcp/tools/types"
	"github.com/roivaz/motion-mcp/internal/motion"
)

type TaskCreator interface {
	CreateTask(ctx context.Context, req motion.CreateTaskRequest) (motion.Task, error)
}

type CreateTaskHandler struct {
	Service TaskCreator
}

func (h *CreateTaskHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := bind[types.CreateTaskArgs](req)
	if err != nil {
		return nil, err
	}
	task, err := h.Service.CreateTask(ctx, motion.CreateTaskRequest{
		Name:        args.Name,
		Priority:    args.Priority,
		Description: args.Description,
		WorkspaceID: args.WorkspaceID,
	})
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(motion.FormatCreated(task)), nil
}
