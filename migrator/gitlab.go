// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package migrator

import (
	"net/http"

	"github.com/xanzy/go-gitlab"
)

//go:generate mockgen -destination=mocks/services.go -package=mocks github.com/mattermost/mattermost-issuemigrator/migrator IssuesService,MilestonesService,NotesService,ProjectsService,SourceService,UsersService

const (
	stateEventClose = "close"
)

type GitLabClient struct {
	client *gitlab.Client

	Users      UsersService
	Projects   ProjectsService
	Milestones MilestonesService
	Issues     IssuesService
	Notes      NotesService
}

// NewGitLabClient returns a client whose every request is admitted by the
// scheduler. go-gitlab's own retries are disabled: failures are reported to
// the caller as they happen.
func NewGitLabClient(accessToken string, baseURL string, scheduler *Scheduler, httpClient *http.Client) (*GitLabClient, error) {
	opts := []gitlab.ClientOptionFunc{
		gitlab.WithBaseURL(baseURL),
		gitlab.WithCustomLimiter(scheduler),
		gitlab.WithoutRetries(),
	}
	if httpClient != nil {
		opts = append(opts, gitlab.WithHTTPClient(httpClient))
	}

	c, err := gitlab.NewClient(accessToken, opts...)
	if err != nil {
		return nil, err
	}

	return &GitLabClient{
		client:     c,
		Users:      c.Users,
		Projects:   c.Projects,
		Milestones: c.Milestones,
		Issues:     c.Issues,
		Notes:      c.Notes,
	}, nil
}

// UsersService exposes the user listing of the GitLab client.
// Useful to mock in tests.
type UsersService interface {
	ListUsers(opt *gitlab.ListUsersOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.User, *gitlab.Response, error)
}

// ProjectsService exposes project lookup and file uploads. UploadFile
// reads the local file at the given path and uploads it under its base name.
type ProjectsService interface {
	ListProjects(opt *gitlab.ListProjectsOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.Project, *gitlab.Response, error)
	UploadFile(pid interface{}, file string, options ...gitlab.RequestOptionFunc) (*gitlab.ProjectFile, *gitlab.Response, error)
}

type MilestonesService interface {
	CreateMilestone(pid interface{}, opt *gitlab.CreateMilestoneOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Milestone, *gitlab.Response, error)
	UpdateMilestone(pid interface{}, milestone int, opt *gitlab.UpdateMilestoneOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Milestone, *gitlab.Response, error)
}

type IssuesService interface {
	CreateIssue(pid interface{}, opt *gitlab.CreateIssueOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Issue, *gitlab.Response, error)
	UpdateIssue(pid interface{}, issue int, opt *gitlab.UpdateIssueOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Issue, *gitlab.Response, error)
	DeleteIssue(pid interface{}, issue int, options ...gitlab.RequestOptionFunc) (*gitlab.Response, error)
	ListProjectIssues(pid interface{}, opt *gitlab.ListProjectIssuesOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.Issue, *gitlab.Response, error)
}

type NotesService interface {
	CreateIssueNote(pid interface{}, issue int, opt *gitlab.CreateIssueNoteOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Note, *gitlab.Response, error)
}
