package connector

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tsPtr(t time.Time) *time.Time { return &t }

func TestTodoistBuildPayloads(t *testing.T) {
	c := NewTodoistClient("")
	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	payloads := c.BuildPayloads([]PushItem{
		{TaskID: "t1", Title: "Do X", Description: "details", StartTS: tsPtr(start)},
		{TaskID: "t2"},
	})

	require.Len(t, payloads, 2)
	assert.Equal(t, "Do X", payloads[0]["content"])
	assert.Equal(t, "details", payloads[0]["description"])
	due := payloads[0]["due"].(map[string]any)
	assert.Equal(t, "2025-01-01", due["date"])
	assert.Equal(t, "2025-01-01T09:00:00Z", due["date_time"])
	assert.Equal(t, "UTC", due["time_zone"])

	assert.Equal(t, "Task t2", payloads[1]["content"])
	assert.NotContains(t, payloads[1], "due")
	assert.NotContains(t, payloads[1], "description")
}

func TestTodoistDryRunMakesNoCalls(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewTodoistClient("token")
	c.SetBaseURL(srv.URL)

	preview := c.DryRun([]PushItem{{TaskID: "t1", Title: "A"}, {TaskID: "t2", Title: "B"}})

	assert.Equal(t, 2, preview.Count)
	assert.Len(t, preview.Sample, 2)
	assert.False(t, called)
}

func TestTodoistApplyCreatesTasks(t *testing.T) {
	var gotAuth string
	var created int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		created++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id": "ext-%d"}`, created)
	}))
	defer srv.Close()

	c := NewTodoistClient("secret")
	c.SetBaseURL(srv.URL)

	results, err := c.Apply(context.Background(), []PushItem{
		{TaskID: "t1", Title: "A"},
		{TaskID: "t2", Title: "B"},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.True(t, results[0].Success)
	assert.Equal(t, "ext-1", results[0].ExternalID)
	assert.Equal(t, "ext-2", results[1].ExternalID)
}

func TestTodoistApplyRequiresToken(t *testing.T) {
	c := NewTodoistClient("")
	_, err := c.Apply(context.Background(), []PushItem{{TaskID: "t1"}})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestTodoistApplyClientErrorDoesNotRetry(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewTodoistClient("secret")
	c.SetBaseURL(srv.URL)

	results, err := c.Apply(context.Background(), []PushItem{{TaskID: "t1", Title: "A"}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Contains(t, results[0].Reason, "400")
	assert.Equal(t, 1, calls)
}

func TestTodoistApplyRetriesRateLimit(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id": "ext-1"}`)
	}))
	defer srv.Close()

	c := NewTodoistClient("secret")
	c.SetBaseURL(srv.URL)

	results, err := c.Apply(context.Background(), []PushItem{{TaskID: "t1", Title: "A"}})
	require.NoError(t, err)
	assert.True(t, results[0].Success)
	assert.Equal(t, 2, calls)
}

func TestTodoistUndoDeletesCreated(t *testing.T) {
	var deleted []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		deleted = append(deleted, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewTodoistClient("secret")
	c.SetBaseURL(srv.URL)

	results, err := c.Undo(context.Background(), []Result{
		{TaskID: "t1", ExternalID: "ext-1", Success: true},
		{TaskID: "t2"},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.Equal(t, "no external id recorded", results[1].Reason)
	assert.Equal(t, []string{"/ext-1"}, deleted)
}
