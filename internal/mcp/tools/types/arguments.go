package types

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	ToolGetWorkspaces = "motion_get_workspaces"
	ToolGetTasks      = "motion_get_tasks"
	ToolCreateTask    = "motion_create_task"
)

// Arguments is the typed argument set of one tool invocation. Each tool has
// its own variant; Tool names the variant.
type Arguments interface {
	Tool() string
	Validate() error
}

type GetWorkspacesArgs struct{}

func (GetWorkspacesArgs) Tool() string    { return ToolGetWorkspaces }
func (GetWorkspacesArgs) Validate() error { return nil }

type GetTasksArgs struct {
	WorkspaceID string `json:"workspaceId,omitempty"`
}

func (GetTasksArgs) Tool() string    { return ToolGetTasks }
func (GetTasksArgs) Validate() error { return nil }

type CreateTaskArgs struct {
	Name        string `json:"name"`
	Priority    string `json:"priority,omitempty"`
	Description string `json:"description,omitempty"`
	WorkspaceID string `json:"workspaceId,omitempty"`
}

func (CreateTaskArgs) Tool() string { return ToolCreateTask }

func (a CreateTaskArgs) Validate() error {
	if a.Name == "" {
		return &MissingArgumentError{Tool: ToolCreateTask, Argument: "name"}
	}
	return nil
}

// UnknownToolError is returned for a tool name outside the catalog.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string { return "Unknown tool: " + e.Name }

type MissingArgumentError struct {
	Tool     string
	Argument string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%s requires a non-empty %q argument", e.Tool, e.Argument)
}

// InvalidArgumentsError wraps arguments that could not be decoded into the
// tool's variant, e.g. a number where a string is expected.
type InvalidArgumentsError struct {
	Tool string
	Err  error
}

func (e *InvalidArgumentsError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %v", e.Tool, e.Err)
}

func (e *InvalidArgumentsError) Unwrap() error { return e.Err }

// ParseArguments decodes req into the variant for req.Params.Name and
// validates it.
func ParseArguments(req mcp.CallToolRequest) (Arguments, error) {
	var args Arguments
	switch req.Params.Name {
	case ToolGetWorkspaces:
		return GetWorkspacesArgs{}, nil
	case ToolGetTasks:
		var a GetTasksArgs
		if err := req.BindArguments(&a); err != nil {
			return nil, &InvalidArgumentsError{Tool: ToolGetTasks, Err: err}
		}
		args = a
	case ToolCreateTask:
		var a CreateTaskArgs
		if err := req.BindArguments(&a); err != nil {
			return nil, &InvalidArgumentsError{Tool: ToolCreateTask, Err: err}
		}
		args = a
	default:
		return nil, &UnknownToolError{Name: req.Params.Name}
	}
	if err := args.Validate(); err != nil {
		return nil, err
	}
	return args, nil
}
