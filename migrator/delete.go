// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package migrator

import (
	"context"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
	"github.com/xanzy/go-gitlab"
	"golang.org/x/sync/errgroup"

	"github.com/mattermost/mattermost-issuemigrator/model"
)

// DeleteAll removes up to DeleteLimit issues from the destination project.
// Issues that cannot be deleted are logged and counted; the others are
// still deleted.
func (m *Migrator) DeleteAll(ctx context.Context) (*Summary, error) {
	return m.execute(ctx, model.CommandDelete, []stage{
		{StageResolveProject, m.resolveProject},
		{StageDeleteIssues, m.deleteIssues},
	})
}

func (m *Migrator) deleteIssues(ctx context.Context, run *Run) (*Run, error) {
	opts := &gitlab.ListProjectIssuesOptions{
		ListOptions: gitlab.ListOptions{PerPage: m.Config.DeleteLimit},
	}
	issues, _, err := m.GitLab.Issues.ListProjectIssues(run.Project.ID, opts, gitlab.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list destination issues")
	}

	var g errgroup.Group
	for _, issue := range issues {
		if issue == nil {
			continue
		}
		issue := issue
		g.Go(func() error {
			if _, err := m.GitLab.Issues.DeleteIssue(run.Project.ID, issue.IID, gitlab.WithContext(ctx)); err != nil {
				mlog.Error("Failed to delete issue", mlog.Int("iid", issue.IID), mlog.Err(err))
				m.recordItem(ctx, run, ItemIssueDelete, ResultFailure, 0, issue.IID)
				return nil
			}
			m.recordItem(ctx, run, ItemIssueDelete, ResultSuccess, 0, issue.IID)
			return nil
		})
	}
	_ = g.Wait()

	mlog.Info("Deleted issues",
		mlog.Int("listed", len(issues)),
		mlog.Int("deleted", run.Summary.Succeeded(ItemIssueDelete)),
		mlog.Int("failed", run.Summary.Failed(ItemIssueDelete)),
	)
	return run, nil
}
