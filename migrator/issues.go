// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package migrator

import (
	"context"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
	"github.com/xanzy/go-gitlab"
	"golang.org/x/sync/errgroup"

	"github.com/mattermost/mattermost-issuemigrator/internal/redmine"
	"github.com/mattermost/mattermost-issuemigrator/model"
)

// createIssues migrates every fetched issue at once. The stage never fails:
// an issue that cannot be migrated is logged and counted.
func (m *Migrator) createIssues(ctx context.Context, run *Run) (*Run, error) {
	resolver := NewNameResolver(run.Users, run.DestinationMilestones())

	var g errgroup.Group
	for _, issue := range run.Issues {
		issue := issue
		g.Go(func() error {
			m.migrateIssue(ctx, run, resolver, issue)
			return nil
		})
	}
	_ = g.Wait()

	mlog.Info("Created issues",
		mlog.Int("issues", len(run.Issues)),
		mlog.Int("created", run.Summary.Succeeded(ItemIssue)),
		mlog.Int("failed", run.Summary.Failed(ItemIssue)),
	)
	return run, nil
}

// migrateIssue creates one issue, then adds its notes, uploads its
// attachments and closes it. Those three follow-ups are independent of each
// other.
func (m *Migrator) migrateIssue(ctx context.Context, run *Run, resolver Resolver, listed *model.SourceIssue) {
	issue, err := m.fetchIssueDetail(ctx, listed.ID)
	if err != nil {
		mlog.Error("Failed to fetch issue", mlog.Int("source_issue", listed.ID), mlog.Err(err))
		m.recordItem(ctx, run, ItemIssue, ResultFailure, listed.ID, 0)
		return
	}

	iid, err := m.createIssue(ctx, run.Project, resolver, issue)
	if err != nil {
		mlog.Error("Failed to create issue", mlog.Int("source_issue", issue.ID), mlog.String("subject", issue.Subject), mlog.Err(err))
		m.recordItem(ctx, run, ItemIssue, ResultFailure, issue.ID, 0)
		return
	}
	m.recordItem(ctx, run, ItemIssue, ResultSuccess, issue.ID, iid)
	mlog.Debug("Created issue", mlog.Int("source_issue", issue.ID), mlog.Int("iid", iid))

	var g errgroup.Group
	g.Go(func() error {
		m.createNotes(ctx, run, issue, iid)
		return nil
	})
	if m.Config.ShouldMigrateAttachments() {
		for _, attachment := range issue.Attachments {
			attachment := attachment
			g.Go(func() error {
				m.migrateAttachment(ctx, run, issue, iid, attachment)
				return nil
			})
		}
	}
	if issue.HasStatus(m.Config.ClosedIssueStatuses) {
		g.Go(func() error {
			m.closeIssue(ctx, run, issue, iid)
			return nil
		})
	}
	_ = g.Wait()
}

func (m *Migrator) fetchIssueDetail(ctx context.Context, id int) (*model.SourceIssue, error) {
	detail, err := m.Source.GetIssue(ctx, id, &redmine.GetIssueOptions{
		Include: []string{redmine.IncludeJournals, redmine.IncludeAttachments},
	})
	if err != nil {
		return nil, err
	}
	return convertIssue(detail), nil
}

// createIssue returns the project-scoped iid of the created issue.
func (m *Migrator) createIssue(ctx context.Context, project *model.DestinationProject, resolver Resolver, issue *model.SourceIssue) (int, error) {
	opts := &gitlab.CreateIssueOptions{
		Title:       gitlab.String(issue.Subject),
		Description: gitlab.String(issue.Description),
	}
	if !issue.CreatedAt.IsZero() {
		createdAt := issue.CreatedAt
		opts.CreatedAt = &createdAt
	}
	if userID, ok := resolver.ResolveUser(issue); ok {
		opts.AssigneeIDs = []int{userID}
	}
	if milestoneID, ok := resolver.ResolveMilestone(issue); ok {
		opts.MilestoneID = gitlab.Int(milestoneID)
	}

	created, _, err := m.GitLab.Issues.CreateIssue(project.ID, opts, gitlab.WithContext(ctx))
	if err != nil {
		return 0, err
	}
	if created == nil {
		return 0, errors.New("empty response creating issue")
	}
	return created.IID, nil
}

// createNotes posts the non-blank notes one after the other so they keep
// their original order. A failed note does not stop the following ones.
func (m *Migrator) createNotes(ctx context.Context, run *Run, issue *model.SourceIssue, iid int) {
	for i, note := range issue.Notes {
		if note.IsBlank() {
			continue
		}
		noteID, err := m.createNote(ctx, run.Project, iid, note)
		if err != nil {
			mlog.Error("Failed to create note", mlog.Int("source_issue", issue.ID), mlog.Int("iid", iid), mlog.Int("note_index", i), mlog.Err(err))
			m.recordItem(ctx, run, ItemNote, ResultFailure, issue.ID, iid)
			continue
		}
		m.recordItem(ctx, run, ItemNote, ResultSuccess, issue.ID, noteID)
	}
}

func (m *Migrator) createNote(ctx context.Context, project *model.DestinationProject, iid int, note *model.Note) (int, error) {
	opts := &gitlab.CreateIssueNoteOptions{Body: gitlab.String(note.Text)}
	if !note.CreatedAt.IsZero() {
		createdAt := note.CreatedAt
		opts.CreatedAt = &createdAt
	}

	created, _, err := m.GitLab.Notes.CreateIssueNote(project.ID, iid, opts, gitlab.WithContext(ctx))
	if err != nil {
		return 0, err
	}
	if created == nil {
		return 0, nil
	}
	return created.ID, nil
}

func (m *Migrator) closeIssue(ctx context.Context, run *Run, issue *model.SourceIssue, iid int) {
	opts := &gitlab.UpdateIssueOptions{StateEvent: gitlab.String(stateEventClose)}
	if _, _, err := m.GitLab.Issues.UpdateIssue(run.Project.ID, iid, opts, gitlab.WithContext(ctx)); err != nil {
		mlog.Error("Failed to close issue", mlog.Int("source_issue", issue.ID), mlog.Int("iid", iid), mlog.String("status", issue.Status.Name), mlog.Err(err))
		m.recordItem(ctx, run, ItemIssueClose, ResultFailure, issue.ID, iid)
		return
	}
	m.recordItem(ctx, run, ItemIssueClose, ResultSuccess, issue.ID, iid)
}
