package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/motion-mcp/internal/mcp/tools/types"
)

// catalog returns the fixed tool definitions in listing order.
func catalog() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool(types.ToolGetWorkspaces,
			mcp.WithDescription("Get all workspaces from Motion.ai"),
		),
		mcp.NewTool(types.ToolGetTasks,
			mcp.WithDescription("Get tasks from Motion.ai"),
			mcp.WithString("workspaceId",
				mcp.Description("Optional workspace ID to filter tasks"),
			),
		),
		mcp.NewTool(types.ToolCreateTask,
			mcp.WithDescription("Create a new task in Motion.ai"),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Task name"),
			),
			mcp.WithString("priority",
				mcp.Description("Task priority (LOW, MEDIUM, HIGH)"),
				mcp.Enum("LOW", "MEDIUM", "HIGH"),
			),
			mcp.WithString("description",
				mcp.Description("Optional task description"),
			),
			mcp.WithString("workspaceId",
				mcp.Description("Optional workspace ID"),
			),
		),
	}
}

// ToolDescriptor is the tools/list entry served on the plain /mcp endpoint.
type ToolDescriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	InputSchema any    `json:"inputSchema"`
}

type ToolList struct {
	Tools []ToolDescriptor `json:"tools"`
}

func Catalog() ToolList {
	defs := catalog()
	list := ToolList{Tools: make([]ToolDescriptor, 0, len(defs))}
	for _, def := range defs {
		list.Tools = append(list.Tools, ToolDescriptor{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		})
	}
	return list
}
