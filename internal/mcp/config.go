package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/motion-mcp/internal/config"
	"github.com/roivaz/motion-mcp/internal/logging"
	"github.com/roivaz/motion-mcp/internal/mcp/tools"
	"github.com/roivaz/motion-mcp/internal/mcp/tools/types"
	"github.com/roivaz/motion-mcp/internal/motion"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
	JSONRPCPath  string
	Logger       logging.Logger
}

// DefaultConfig wires the Motion client built from settings into the three
// tool adapters.
func DefaultConfig(settings config.Settings, log logging.Logger) Config {
	client := motion.NewClient(motion.Config{
		BaseURL: settings.MotionBaseURL,
		APIKey:  settings.MotionAPIKey,
		Timeout: settings.MotionTimeout,
		Logger:  log,
	})
	return Config{
		ToolAdapters: Adapters(client),
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath(settings.JSONRPCPath),
			server.WithStateLess(true),
		},
		JSONRPCPath: settings.JSONRPCPath,
		Logger:      log,
	}
}

// Adapters binds every tool to client.
func Adapters(client *motion.Client) map[string]ToolAdapter {
	return map[string]ToolAdapter{
		types.ToolGetWorkspaces: &tools.GetWorkspacesHandler{Service: client},
		types.ToolGetTasks:      &tools.GetTasksHandler{Service: client},
		types.ToolCreateTask:    &tools.CreateTaskHandler{Service: client},
	}
}
