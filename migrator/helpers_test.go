// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package migrator

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/xanzy/go-gitlab"

	"github.com/mattermost/mattermost-issuemigrator/internal/redmine"
	"github.com/mattermost/mattermost-issuemigrator/migrator/mocks"
)

const (
	testSourceProject      = "demo"
	testDestinationProject = "team/demo"
	testProjectID          = 43
)

func TestMain(m *testing.M) {
	logger, err := mlog.NewLogger()
	if err != nil {
		panic(err)
	}
	mlog.InitGlobalLogger(logger)

	os.Exit(m.Run())
}

type recordingMetrics struct {
	mu          sync.Mutex
	stages      []string
	stageErrors []string
	items       map[string]int
	cacheHits   int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{items: make(map[string]int)}
}

func (r *recordingMetrics) ObserveRequestDuration(service, method, handler, statusCode string, elapsed float64) {
}

func (r *recordingMetrics) IncreaseCacheHits(service, method, handler string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cacheHits++
}

func (r *recordingMetrics) IncreaseCacheMisses(service, method, handler string) {}

func (r *recordingMetrics) ObserveStageDuration(name string, elapsed float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stages = append(r.stages, name)
}

func (r *recordingMetrics) IncreaseStageErrors(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stageErrors = append(r.stageErrors, name)
}

func (r *recordingMetrics) IncreaseMigratedItems(kind, result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[kind+"/"+result]++
}

func (r *recordingMetrics) stagesRun() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.stages...)
}

// optionsMatcher matches the options struct handed to a go-gitlab call.
type optionsMatcher struct {
	desc  string
	match func(x interface{}) bool
}

func (m optionsMatcher) Matches(x interface{}) bool { return m.match(x) }

func (m optionsMatcher) String() string { return m.desc }

func noteBody(body string) gomock.Matcher {
	return optionsMatcher{
		desc: fmt.Sprintf("note with body %q", body),
		match: func(x interface{}) bool {
			opt, ok := x.(*gitlab.CreateIssueNoteOptions)
			return ok && opt.Body != nil && *opt.Body == body
		},
	}
}

func closeEvent() gomock.Matcher {
	return optionsMatcher{
		desc: "state_event=close",
		match: func(x interface{}) bool {
			switch opt := x.(type) {
			case *gitlab.UpdateIssueOptions:
				return opt.StateEvent != nil && *opt.StateEvent == stateEventClose
			case *gitlab.UpdateMilestoneOptions:
				return opt.StateEvent != nil && *opt.StateEvent == stateEventClose
			}
			return false
		},
	}
}

func issueTitled(title string) gomock.Matcher {
	return optionsMatcher{
		desc: fmt.Sprintf("issue titled %q", title),
		match: func(x interface{}) bool {
			opt, ok := x.(*gitlab.CreateIssueOptions)
			return ok && opt.Title != nil && *opt.Title == title
		},
	}
}

type fixture struct {
	t          *testing.T
	migrator   *Migrator
	metrics    *recordingMetrics
	source     *mocks.MockSourceService
	users      *mocks.MockUsersService
	projects   *mocks.MockProjectsService
	milestones *mocks.MockMilestonesService
	issues     *mocks.MockIssuesService
	notes      *mocks.MockNotesService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		t:          t,
		metrics:    newRecordingMetrics(),
		source:     mocks.NewMockSourceService(ctrl),
		users:      mocks.NewMockUsersService(ctrl),
		projects:   mocks.NewMockProjectsService(ctrl),
		milestones: mocks.NewMockMilestonesService(ctrl),
		issues:     mocks.NewMockIssuesService(ctrl),
		notes:      mocks.NewMockNotesService(ctrl),
	}

	config := &Config{
		RedmineURL:             "http://redmine.test",
		RedmineProject:         testSourceProject,
		GitLabURL:              "http://gitlab.test",
		GitLabProject:          testDestinationProject,
		GitLabToken:            "token",
		AttachmentDir:          t.TempDir(),
		MaxConcurrentTransfers: 2,
	}
	config.SetDefaults()

	gitlabClient := &GitLabClient{
		Users:      f.users,
		Projects:   f.projects,
		Milestones: f.milestones,
		Issues:     f.issues,
		Notes:      f.notes,
	}
	f.migrator = NewWithClients(config, f.source, gitlabClient, nil, f.metrics)
	return f
}

func (f *fixture) expectUsers(users ...*gitlab.User) {
	f.users.EXPECT().
		ListUsers(gomock.Eq(&gitlab.ListUsersOptions{ListOptions: gitlab.ListOptions{PerPage: 100}}), gomock.Any()).
		Return(users, &gitlab.Response{}, nil)
}

func (f *fixture) expectProject() {
	f.projects.EXPECT().
		ListProjects(gomock.Eq(&gitlab.ListProjectsOptions{Search: gitlab.String("demo"), Simple: gitlab.Bool(true)}), gomock.Any()).
		Return([]*gitlab.Project{
			{ID: 41, Name: "demo", PathWithNamespace: "other/demo"},
			{ID: testProjectID, Name: "demo", PathWithNamespace: testDestinationProject},
		}, &gitlab.Response{}, nil)
}

// expectIssueListing serves the listing in pages of the configured size.
// The first page is requested once to count and once more with the others.
func (f *fixture) expectIssueListing(issues []*redmine.Issue) {
	pageSize := f.migrator.Config.RedminePageSize
	pages := (len(issues) + pageSize - 1) / pageSize
	for page := 1; page <= pages || page == 1; page++ {
		times := 1
		if page == 1 && pages > 0 {
			times = 2
		}
		start := (page - 1) * pageSize
		end := start + pageSize
		if end > len(issues) {
			end = len(issues)
		}
		f.source.EXPECT().
			ListIssues(gomock.Any(), testSourceProject, gomock.Eq(&redmine.ListIssuesOptions{Limit: pageSize, Page: page, StatusID: redmine.AllStatuses})).
			Return(&redmine.IssueList{Issues: issues[start:end], TotalCount: len(issues), Limit: pageSize, Offset: start}, nil).
			Times(times)
	}
}

func (f *fixture) expectVersions(versions ...*redmine.Version) {
	f.source.EXPECT().ListVersions(gomock.Any(), testSourceProject).Return(versions, nil)
}

func (f *fixture) expectDetail(issue *redmine.Issue) *gomock.Call {
	return f.source.EXPECT().
		GetIssue(gomock.Any(), issue.ID, gomock.Eq(&redmine.GetIssueOptions{Include: []string{redmine.IncludeJournals, redmine.IncludeAttachments}})).
		Return(issue, nil)
}

// expectMigrationPrelude covers the stages that precede issue creation for
// a project without versions.
func (f *fixture) expectMigrationPrelude(issues []*redmine.Issue, users ...*gitlab.User) {
	f.expectUsers(users...)
	f.expectIssueListing(issues)
	f.expectProject()
	f.expectVersions()
}

func ts(value string) *time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return &t
}

func status(name string) *redmine.IDName {
	return &redmine.IDName{ID: 1, Name: name}
}

func migrate(t *testing.T, f *fixture) *Summary {
	t.Helper()
	summary, err := f.migrator.Migrate(context.Background())
	if err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return summary
}
