package motion

import (
	"context"
	"fmt"
)

// ListWorkspaces returns the raw "workspaces" array exactly as Motion sent it,
// or "[]" when the field is missing.
func (c *Client) ListWorkspaces(ctx context.Context) (string, error) {
	doc, err := c.Do(ctx, "workspaces")
	if err != nil {
		return "", fmt.Errorf("list workspaces: %w", err)
	}
	return arrayField(doc, "workspaces"), nil
}

// Workspaces returns the typed workspace collection in upstream order.
func (c *Client) Workspaces(ctx context.Context) ([]Workspace, error) {
	doc, err := c.Do(ctx, "workspaces")
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	items := doc.Get("workspaces").Array()
	workspaces := make([]Workspace, 0, len(items))
	for _, item := range items {
		workspaces = append(workspaces, workspaceFrom(item))
	}
	return workspaces, nil
}
