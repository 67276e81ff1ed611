package connector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const todoistTasksURL = "https://api.todoist.com/rest/v2/tasks"

// TodoistClient creates and deletes Todoist tasks via the REST v2 API.
type TodoistClient struct {
	token   string
	baseURL string
	http    *resty.Client
}

// NewTodoistClient returns a client for the given API token. The token may be
// empty for dry-run use; a live Apply then fails with ErrNotConfigured.
func NewTodoistClient(token string) *TodoistClient {
	return &TodoistClient{
		token:   token,
		baseURL: todoistTasksURL,
		http:    newHTTPClient(),
	}
}

// SetBaseURL overrides the API endpoint. Tests use this.
func (c *TodoistClient) SetBaseURL(url string) {
	c.baseURL = strings.TrimRight(url, "/")
}

// BuildPayloads converts push items into POST /tasks bodies. Items with a
// start timestamp get a due date_time in UTC.
func (c *TodoistClient) BuildPayloads(items []PushItem) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		title := it.Title
		if title == "" {
			title = fmt.Sprintf("Task %s", it.TaskID)
		}
		payload := map[string]any{"content": title}
		if it.Description != "" {
			payload["description"] = it.Description
		}
		if it.StartTS != nil {
			start := it.StartTS.UTC()
			payload["due"] = map[string]any{
				"date":      start.Format("2006-01-02"),
				"date_time": start.Format(time.RFC3339),
				"time_zone": "UTC",
			}
		}
		out = append(out, payload)
	}
	return out
}

// DryRun summarizes what Apply would send without any network calls.
func (c *TodoistClient) DryRun(items []PushItem) Preview {
	return newPreview(c.BuildPayloads(items))
}

// Apply creates one Todoist task per item. Each item succeeds or fails
// independently; a failed create does not stop the rest.
func (c *TodoistClient) Apply(ctx context.Context, items []PushItem) ([]Result, error) {
	if c.token == "" {
		return nil, fmt.Errorf("todoist: %w", ErrNotConfigured)
	}

	payloads := c.BuildPayloads(items)
	results := make([]Result, 0, len(payloads))
	for i, payload := range payloads {
		res := Result{TaskID: items[i].TaskID}

		var created struct {
			ID string `json:"id"`
		}
		resp, err := c.http.R().
			SetContext(ctx).
			SetAuthToken(c.token).
			SetBody(payload).
			SetResult(&created).
			Post(c.baseURL)
		switch {
		case err != nil:
			res.Reason = err.Error()
		case resp.IsError():
			res.Reason = fmt.Sprintf("todoist returned %d", resp.StatusCode())
		default:
			res.Success = true
			res.ExternalID = created.ID
		}
		results = append(results, res)
	}
	return results, nil
}

// Undo deletes previously created tasks. Entries without an external id are
// reported as failures without a network call.
func (c *TodoistClient) Undo(ctx context.Context, created []Result) ([]Result, error) {
	if c.token == "" {
		return nil, fmt.Errorf("todoist: %w", ErrNotConfigured)
	}

	out := make([]Result, 0, len(created))
	for _, r := range created {
		res := Result{TaskID: r.TaskID, ExternalID: r.ExternalID}
		if r.ExternalID == "" {
			res.Reason = "no external id recorded"
			out = append(out, res)
			continue
		}

		resp, err := c.http.R().
			SetContext(ctx).
			SetAuthToken(c.token).
			Delete(c.baseURL + "/" + r.ExternalID)
		switch {
		case err != nil:
			res.Reason = err.Error()
		case resp.IsError():
			res.Reason = fmt.Sprintf("todoist returned %d", resp.StatusCode())
		default:
			res.Success = true
		}
		out = append(out, res)
	}
	return out, nil
}
