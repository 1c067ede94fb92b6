package motion

import (
	"context"
	"fmt"
	"net/http"
)

// TasksEndpoint returns the tasks collection path, filtered by workspace when
// workspaceID is set. The id is appended verbatim.
func TasksEndpoint(workspaceID string) string {
	if workspaceID == "" {
		return "tasks"
	}
	return "tasks?workspaceId=" + workspaceID
}

// ListTasks returns the raw "tasks" array, or "[]" when the field is missing.
func (c *Client) ListTasks(ctx context.Context, workspaceID string) (string, error) {
	doc, err := c.Do(ctx, TasksEndpoint(workspaceID))
	if err != nil {
		return "", fmt.Errorf("list tasks: %w", err)
	}
	return arrayField(doc, "tasks"), nil
}

func (c *Client) submitTask(ctx context.Context, payload TaskPayload) (Task, error) {
	doc, err := c.Do(ctx, "tasks", WithMethod(http.MethodPost), WithBody(payload))
	if err != nil {
		return Task{}, fmt.Errorf("create task: %w", err)
	}
	return taskFrom(doc), nil
}
