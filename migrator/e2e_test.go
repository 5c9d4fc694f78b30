// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package migrator

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost-issuemigrator/internal/redmine"
)

const (
	e2eRedmineURL = "http://redmine.test"
	e2eGitLabURL  = "http://gitlab.test/api/v4"
)

func cacheableResponder(body string, calls *int32) httpmock.Responder {
	return func(req *http.Request) (*http.Response, error) {
		atomic.AddInt32(calls, 1)
		resp := httpmock.NewStringResponse(http.StatusOK, body)
		resp.Header.Set("Content-Type", "application/json")
		resp.Header.Set("Cache-Control", "max-age=60")
		resp.Header.Set("Date", time.Now().UTC().Format(http.TimeFormat))
		return resp, nil
	}
}

func decodeBody(t *testing.T, req *http.Request) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
	return body
}

func newHTTPMigrator(t *testing.T, mock *httpmock.MockTransport, provider MetricsProvider) *Migrator {
	t.Helper()
	config := &Config{
		RedmineURL:     e2eRedmineURL,
		RedmineProject: "demo",
		GitLabURL:      "http://gitlab.test",
		GitLabProject:  "team/demo",
		GitLabToken:    "token",
		AttachmentDir:  t.TempDir(),
	}
	config.SetDefaults()

	source, err := redmine.NewClient(config.RedmineURL, "key", NewSourceHTTPClient(config, NewScheduler(0, nil), provider, mock))
	require.NoError(t, err)
	gitlabClient, err := NewGitLabClient(config.GitLabToken, config.GitLabURL, NewScheduler(0, nil), NewDestinationHTTPClient(provider, mock))
	require.NoError(t, err)

	return NewWithClients(config, source, gitlabClient, nil, provider)
}

func TestMigrateOverHTTP(t *testing.T) {
	mock := httpmock.NewMockTransport()
	provider := newRecordingMetrics()
	m := newHTTPMigrator(t, mock, provider)

	var listingCalls, detailCalls int32
	mock.RegisterResponder(http.MethodGet, e2eRedmineURL+"/projects/demo/issues.json", cacheableResponder(`{
		"issues": [{"id": 1, "subject": "Crash on start", "status": {"id": 5, "name": "Closed"}}],
		"total_count": 1, "offset": 0, "limit": 100
	}`, &listingCalls))
	mock.RegisterResponder(http.MethodGet, e2eRedmineURL+"/issues/1.json", cacheableResponder(`{"issue": {
		"id": 1,
		"subject": "Crash on start",
		"description": "Steps in the log",
		"status": {"id": 5, "name": "Closed"},
		"assigned_to": {"id": 3, "name": "Alex"},
		"fixed_version": {"id": 2, "name": "v1.0"},
		"created_on": "2019-01-01T10:00:00Z",
		"journals": [
			{"id": 10, "notes": "", "created_on": "2019-01-02T10:00:00Z"},
			{"id": 11, "notes": "Root cause found", "created_on": "2019-01-03T10:00:00Z"}
		],
		"attachments": [
			{"id": 7, "filename": "log.txt", "content_url": "http://redmine.test/attachments/download/7/log.txt"}
		]
	}}`, &detailCalls))
	mock.RegisterResponder(http.MethodGet, e2eRedmineURL+"/projects/demo/versions.json",
		httpmock.NewStringResponder(http.StatusOK, `{"versions": [{"id": 2, "name": "v1.0", "status": "closed", "due_date": "2020-01-31"}], "total_count": 1}`))
	var downloads, uploads int32
	mock.RegisterResponder(http.MethodGet, e2eRedmineURL+"/attachments/download/7/log.txt",
		func(req *http.Request) (*http.Response, error) {
			atomic.AddInt32(&downloads, 1)
			assert.Equal(t, "key", req.Header.Get(redmine.APIKeyHeader))
			return httpmock.NewStringResponse(http.StatusOK, "panic: nil map"), nil
		})

	mock.RegisterResponder(http.MethodGet, e2eGitLabURL+"/users",
		httpmock.NewStringResponder(http.StatusOK, `[{"id": 7, "name": "Alex"}, {"id": 9, "name": "Alex"}]`))
	mock.RegisterResponder(http.MethodGet, e2eGitLabURL+"/projects",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "demo", req.URL.Query().Get("search"))
			return httpmock.NewStringResponse(http.StatusOK, `[{"id": 43, "name": "demo", "path_with_namespace": "team/demo"}]`), nil
		})
	mock.RegisterResponder(http.MethodPost, e2eGitLabURL+"/projects/43/milestones",
		func(req *http.Request) (*http.Response, error) {
			body := decodeBody(t, req)
			assert.Equal(t, "v1.0", body["title"])
			assert.Equal(t, "2020-01-31", body["due_date"])
			return httpmock.NewStringResponse(http.StatusCreated, `{"id": 30, "iid": 1, "title": "v1.0"}`), nil
		})
	var milestoneClosed int32
	mock.RegisterResponder(http.MethodPut, e2eGitLabURL+"/projects/43/milestones/30",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "close", decodeBody(t, req)["state_event"])
			atomic.AddInt32(&milestoneClosed, 1)
			return httpmock.NewStringResponse(http.StatusOK, `{"id": 30, "title": "v1.0", "state": "closed"}`), nil
		})
	mock.RegisterResponder(http.MethodPost, e2eGitLabURL+"/projects/43/issues",
		func(req *http.Request) (*http.Response, error) {
			body := decodeBody(t, req)
			assert.Equal(t, "Crash on start", body["title"])
			assert.Equal(t, []interface{}{float64(7)}, body["assignee_ids"])
			assert.Equal(t, float64(30), body["milestone_id"])
			assert.Equal(t, "2019-01-01T10:00:00Z", body["created_at"])
			return httpmock.NewStringResponse(http.StatusCreated, `{"id": 500, "iid": 5, "title": "Crash on start"}`), nil
		})
	var notesMu sync.Mutex
	var notes []string
	mock.RegisterResponder(http.MethodPost, e2eGitLabURL+"/projects/43/issues/5/notes",
		func(req *http.Request) (*http.Response, error) {
			body := decodeBody(t, req)
			notesMu.Lock()
			notes = append(notes, body["body"].(string))
			notesMu.Unlock()
			return httpmock.NewStringResponse(http.StatusCreated, `{"id": 1}`), nil
		})
	mock.RegisterResponder(http.MethodPost, e2eGitLabURL+"/projects/43/uploads",
		func(req *http.Request) (*http.Response, error) {
			atomic.AddInt32(&uploads, 1)
			file, header, err := req.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			content, err := io.ReadAll(file)
			require.NoError(t, err)
			assert.Equal(t, "log.txt", header.Filename)
			assert.Equal(t, "panic: nil map", string(content))
			return httpmock.NewStringResponse(http.StatusCreated, `{"alt": "log.txt", "url": "/uploads/ab/log.txt", "markdown": "[log.txt](/uploads/ab/log.txt)"}`), nil
		})
	var issueClosed int32
	mock.RegisterResponder(http.MethodPut, e2eGitLabURL+"/projects/43/issues/5",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "close", decodeBody(t, req)["state_event"])
			atomic.AddInt32(&issueClosed, 1)
			return httpmock.NewStringResponse(http.StatusOK, `{"id": 500, "iid": 5, "state": "closed"}`), nil
		})

	summary, err := m.Migrate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Failures())
	assert.Equal(t, 1, summary.Succeeded(ItemIssue))
	assert.Equal(t, 1, summary.Succeeded(ItemAttachment))
	assert.Equal(t, int32(1), milestoneClosed)
	assert.Equal(t, int32(1), issueClosed)
	assert.ElementsMatch(t, []string{"Root cause found", "Added File [log.txt](/uploads/ab/log.txt)"}, notes)
	assert.Equal(t, int32(1), atomic.LoadInt32(&uploads))
	assert.Equal(t, int32(1), atomic.LoadInt32(&downloads))
	var attachmentNotes int
	for _, note := range notes {
		if strings.HasPrefix(note, attachmentNotePrefix) {
			attachmentNotes++
		}
	}
	assert.Equal(t, 1, attachmentNotes)

	entries, err := os.ReadDir(m.Config.AttachmentDir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// the first page is read twice, the second read is served by the cache
	assert.Equal(t, int32(1), atomic.LoadInt32(&listingCalls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&detailCalls))
	assert.Equal(t, 1, provider.cacheHits)
}
