package connector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
)

const calendarBaseURL = "https://www.googleapis.com/calendar/v3"

// Event matches the Google Calendar API event resource, trimmed to the
// fields this program writes.
type Event struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Start       EventTime `json:"start"`
	End         EventTime `json:"end"`
}

// EventTime is the start or end of a calendar event.
type EventTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

// CalendarClient inserts events into a Google Calendar.
type CalendarClient struct {
	source     oauth2.TokenSource
	baseURL    string
	calendarID string
	http       *resty.Client
}

// NewCalendarClient returns a client writing to the given calendar, or
// "primary" when calendarID is empty. A nil token source is allowed for
// dry-run use.
func NewCalendarClient(source oauth2.TokenSource, calendarID string) *CalendarClient {
	if calendarID == "" {
		calendarID = "primary"
	}
	return &CalendarClient{
		source:     source,
		baseURL:    calendarBaseURL,
		calendarID: calendarID,
		http:       newHTTPClient(),
	}
}

// SetBaseURL overrides the API endpoint. Tests use this.
func (c *CalendarClient) SetBaseURL(url string) {
	c.baseURL = strings.TrimRight(url, "/")
}

// BuildEvents converts push items into calendar event resources.
func (c *CalendarClient) BuildEvents(items []PushItem) []Event {
	events := make([]Event, 0, len(items))
	for _, it := range items {
		title := it.Title
		if title == "" {
			title = fmt.Sprintf("Task %s", it.TaskID)
		}
		ev := Event{Summary: title, Description: it.Description}
		if it.StartTS != nil {
			ev.Start = EventTime{DateTime: it.StartTS.UTC().Format(time.RFC3339), TimeZone: "UTC"}
		}
		if it.EndTS != nil {
			ev.End = EventTime{DateTime: it.EndTS.UTC().Format(time.RFC3339), TimeZone: "UTC"}
		}
		events = append(events, ev)
	}
	return events
}

// DryRun summarizes what Apply would send without any network calls.
func (c *CalendarClient) DryRun(items []PushItem) Preview {
	events := c.BuildEvents(items)
	payloads := make([]map[string]any, 0, len(events))
	for _, ev := range events {
		payloads = append(payloads, map[string]any{
			"summary": ev.Summary,
			"start":   ev.Start.DateTime,
			"end":     ev.End.DateTime,
		})
	}
	return newPreview(payloads)
}

// Apply inserts one event per item. Each item succeeds or fails
// independently.
func (c *CalendarClient) Apply(ctx context.Context, items []PushItem) ([]Result, error) {
	if c.source == nil {
		return nil, fmt.Errorf("calendar: %w", ErrNotConfigured)
	}
	token, err := c.source.Token()
	if err != nil {
		return nil, fmt.Errorf("calendar: obtain access token: %w", err)
	}

	url := fmt.Sprintf("%s/calendars/%s/events", c.baseURL, c.calendarID)
	events := c.BuildEvents(items)
	results := make([]Result, 0, len(events))
	for i, ev := range events {
		res := Result{TaskID: items[i].TaskID}

		var created struct {
			ID string `json:"id"`
		}
		resp, err := c.http.R().
			SetContext(ctx).
			SetAuthToken(token.AccessToken).
			SetBody(ev).
			SetResult(&created).
			Post(url)
		switch {
		case err != nil:
			res.Reason = err.Error()
		case resp.IsError():
			res.Reason = fmt.Sprintf("calendar returned %d", resp.StatusCode())
		default:
			res.Success = true
			res.ExternalID = created.ID
		}
		results = append(results, res)
	}
	return results, nil
}

// Undo deletes previously created events.
func (c *CalendarClient) Undo(ctx context.Context, created []Result) ([]Result, error) {
	if c.source == nil {
		return nil, fmt.Errorf("calendar: %w", ErrNotConfigured)
	}
	token, err := c.source.Token()
	if err != nil {
		return nil, fmt.Errorf("calendar: obtain access token: %w", err)
	}

	out := make([]Result, 0, len(created))
	for _, r := range created {
		res := Result{TaskID: r.TaskID, ExternalID: r.ExternalID}
		if r.ExternalID == "" {
			res.Reason = "no external id recorded"
			out = append(out, res)
			continue
		}

		url := fmt.Sprintf("%s/calendars/%s/events/%s", c.baseURL, c.calendarID, r.ExternalID)
		resp, err := c.http.R().
			SetContext(ctx).
			SetAuthToken(token.AccessToken).
			Delete(url)
		switch {
		case err != nil:
			res.Reason = err.Error()
		case resp.IsError():
			res.Reason = fmt.Sprintf("calendar returned %d", resp.StatusCode())
		default:
			res.Success = true
		}
		out = append(out, res)
	}
	return out, nil
}
