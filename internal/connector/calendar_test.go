package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func staticSource() oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "access"})
}

func TestCalendarBuildEvents(t *testing.T) {
	c := NewCalendarClient(nil, "")
	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	events := c.BuildEvents([]PushItem{
		{TaskID: "t1", Title: "Design review", Description: "notes", StartTS: tsPtr(start), EndTS: tsPtr(end)},
		{TaskID: "t2"},
	})

	require.Len(t, events, 2)
	assert.Equal(t, "Design review", events[0].Summary)
	assert.Equal(t, "notes", events[0].Description)
	assert.Equal(t, "2025-01-01T09:00:00Z", events[0].Start.DateTime)
	assert.Equal(t, "2025-01-01T10:00:00Z", events[0].End.DateTime)
	assert.Equal(t, "UTC", events[0].Start.TimeZone)
	assert.Equal(t, "Task t2", events[1].Summary)
}

func TestCalendarApplyInsertsEvents(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")

		var ev Event
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ev))
		assert.Equal(t, "Design review", ev.Summary)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id": "evt-1"}`)
	}))
	defer srv.Close()

	c := NewCalendarClient(staticSource(), "work")
	c.SetBaseURL(srv.URL)

	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	results, err := c.Apply(context.Background(), []PushItem{
		{TaskID: "t1", Title: "Design review", StartTS: tsPtr(start), EndTS: tsPtr(start.Add(time.Hour))},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
	assert.Equal(t, "evt-1", results[0].ExternalID)
	assert.Equal(t, "/calendars/work/events", gotPath)
	assert.Equal(t, "Bearer access", gotAuth)
}

func TestCalendarApplyRequiresCredentials(t *testing.T) {
	c := NewCalendarClient(nil, "")
	_, err := c.Apply(context.Background(), []PushItem{{TaskID: "t1"}})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCalendarDefaultsToPrimary(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"id": "evt-1"}`)
	}))
	defer srv.Close()

	c := NewCalendarClient(staticSource(), "")
	c.SetBaseURL(srv.URL)

	_, err := c.Apply(context.Background(), []PushItem{{TaskID: "t1", Title: "A"}})
	require.NoError(t, err)
	assert.Equal(t, "/calendars/primary/events", gotPath)
}

func TestCalendarUndoDeletesEvents(t *testing.T) {
	var deleted []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		deleted = append(deleted, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewCalendarClient(staticSource(), "work")
	c.SetBaseURL(srv.URL)

	results, err := c.Undo(context.Background(), []Result{{TaskID: "t1", ExternalID: "evt-1", Success: true}})
	require.NoError(t, err)
	assert.True(t, results[0].Success)
	assert.Equal(t, []string{"/calendars/work/events/evt-1"}, deleted)
}

func TestCalendarDryRunSummarizes(t *testing.T) {
	c := NewCalendarClient(nil, "")
	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	var items []PushItem
	for i := 0; i < 7; i++ {
		s := start.Add(time.Duration(i) * time.Hour)
		items = append(items, PushItem{
			TaskID:  fmt.Sprintf("t%d", i),
			Title:   fmt.Sprintf("Task %d", i),
			StartTS: tsPtr(s),
			EndTS:   tsPtr(s.Add(30 * time.Minute)),
		})
	}

	preview := c.DryRun(items)
	assert.Equal(t, 7, preview.Count)
	assert.Len(t, preview.Sample, 5)
}
