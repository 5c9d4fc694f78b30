// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package migrator

import (
	"context"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
	"github.com/xanzy/go-gitlab"

	"github.com/mattermost/mattermost-issuemigrator/internal/redmine"
	"github.com/mattermost/mattermost-issuemigrator/model"
)

// Stage names, also used as metric labels.
const (
	StageFetchUsers               = "fetch_users"
	StageFetchIssueCount          = "fetch_issue_count"
	StageFetchAllIssues           = "fetch_all_issues"
	StageResolveProject           = "resolve_project"
	StageCreateMilestones         = "create_milestones"
	StageCloseCompletedMilestones = "close_completed_milestones"
	StageCreateIssues             = "create_issues"
	StageDeleteIssues             = "delete_issues"
)

// Migrate copies the source project into the destination project. Failures
// of single items are counted in the returned summary; a failed stage ends
// the run and is returned as a *StageError.
func (m *Migrator) Migrate(ctx context.Context) (*Summary, error) {
	return m.execute(ctx, model.CommandMigrate, m.migrationStages())
}

func (m *Migrator) migrationStages() []stage {
	return []stage{
		{StageFetchUsers, m.fetchUsers},
		{StageFetchIssueCount, m.fetchIssueCount},
		{StageFetchAllIssues, m.fetchAllIssues},
		{StageResolveProject, m.resolveProject},
		{StageCreateMilestones, m.createMilestones},
		{StageCloseCompletedMilestones, m.closeCompletedMilestones},
		{StageCreateIssues, m.createIssues},
	}
}

func (m *Migrator) fetchUsers(ctx context.Context, run *Run) (*Run, error) {
	opts := &gitlab.ListUsersOptions{
		ListOptions: gitlab.ListOptions{PerPage: m.Config.GitLabUsersPerPage},
	}
	users, _, err := m.GitLab.Users.ListUsers(opts, gitlab.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list destination users")
	}

	run.Users = make([]*model.DestinationUser, 0, len(users))
	for _, user := range users {
		if user == nil {
			continue
		}
		run.Users = append(run.Users, &model.DestinationUser{ID: user.ID, Name: user.Name})
	}
	mlog.Info("Fetched destination users", mlog.Int("count", len(run.Users)))
	return run, nil
}

func (m *Migrator) issuePager() *Pager[*model.SourceIssue] {
	project := m.Config.SourceProject()
	return &Pager[*model.SourceIssue]{
		PageSize: m.Config.RedminePageSize,
		Fetch: func(ctx context.Context, page, pageSize int) ([]*model.SourceIssue, int, error) {
			list, err := m.Source.ListIssues(ctx, project, &redmine.ListIssuesOptions{
				Limit:    pageSize,
				Page:     page,
				StatusID: redmine.AllStatuses,
			})
			if err != nil {
				return nil, 0, err
			}
			return convertIssues(list.Issues), list.TotalCount, nil
		},
	}
}

func (m *Migrator) fetchIssueCount(ctx context.Context, run *Run) (*Run, error) {
	total, err := m.issuePager().Total(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count source issues")
	}
	run.IssueCount = total
	mlog.Info("Counted source issues", mlog.Int("total", total))
	return run, nil
}

func (m *Migrator) fetchAllIssues(ctx context.Context, run *Run) (*Run, error) {
	issues, err := m.issuePager().FetchPages(ctx, run.IssueCount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch source issues")
	}
	run.Issues = issues
	mlog.Info("Fetched source issues", mlog.Int("count", len(issues)))
	return run, nil
}

func (m *Migrator) resolveProject(ctx context.Context, run *Run) (*Run, error) {
	project, err := m.findProject(ctx)
	if err != nil {
		return nil, err
	}
	run.Project = project
	mlog.Info("Resolved destination project", mlog.Int("project_id", project.ID), mlog.String("path", project.PathWithNamespace))
	return run, nil
}
