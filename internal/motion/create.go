package motion

import (
	"context"
	"fmt"
)

// CreateTask runs resolve -> build -> submit. The only point where a second
// upstream call happens is workspace resolution, and a failure there stops the
// pipeline before anything is created.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (Task, error) {
	workspaceID, err := c.ResolveWorkspace(ctx, req.WorkspaceID)
	if err != nil {
		return Task{}, err
	}
	payload := BuildTaskPayload(req, workspaceID)
	c.log.Info("creating task", "workspace", workspaceID, "priority", payload.Priority)
	return c.submitTask(ctx, payload)
}

// ResolveWorkspace returns explicit when set, otherwise the id of the first
// workspace Motion lists.
func (c *Client) ResolveWorkspace(ctx context.Context, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	workspaces, err := c.Workspaces(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve default workspace: %w", err)
	}
	if len(workspaces) == 0 {
		return "", ErrNoWorkspace
	}
	c.log.Debug("defaulted workspace", "workspace", workspaces[0].ID, "candidates", len(workspaces))
	return workspaces[0].ID, nil
}

func BuildTaskPayload(req CreateTaskRequest, workspaceID string) TaskPayload {
	return TaskPayload{
		Name:        req.Name,
		WorkspaceID: workspaceID,
		Priority:    NormalizePriority(req.Priority),
		Description: req.Description,
	}
}
