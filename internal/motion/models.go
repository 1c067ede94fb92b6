package motion

import (
	"strings"

	"github.com/tidwall/gjson"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// NormalizePriority upper-cases raw and defaults to MEDIUM. Values outside the
// known set are passed through for the Motion API to judge.
func NormalizePriority(raw string) Priority {
	if raw == "" {
		return PriorityMedium
	}
	return Priority(strings.ToUpper(raw))
}

// Known reports whether p is one of LOW, MEDIUM or HIGH.
func (p Priority) Known() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Workspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Task struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Priority    Priority `json:"priority"`
	Description string   `json:"description,omitempty"`
	WorkspaceID string   `json:"workspaceId,omitempty"`
}

// CreateTaskRequest carries the caller's intent. Empty fields mean "not supplied".
type CreateTaskRequest struct {
	Name        string
	Priority    string
	Description string
	WorkspaceID string
}

// TaskPayload is the body POSTed to the tasks endpoint.
type TaskPayload struct {
	Name        string   `json:"name"`
	WorkspaceID string   `json:"workspaceId"`
	Priority    Priority `json:"priority"`
	Description string   `json:"description,omitempty"`
}

func workspaceFrom(r gjson.Result) Workspace {
	return Workspace{
		ID:   r.Get("id").String(),
		Name: r.Get("name").String(),
	}
}

func taskFrom(r gjson.Result) Task {
	t := Task{
		ID:          r.Get("id").String(),
		Name:        r.Get("name").String(),
		Priority:    Priority(r.Get("priority").String()),
		Description: r.Get("description").String(),
		WorkspaceID: r.Get("workspace.id").String(),
	}
	if t.WorkspaceID == "" {
		t.WorkspaceID = r.Get("workspaceId").String()
	}
	return t
}
