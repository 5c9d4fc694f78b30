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

// createMilestones creates one milestone per source version. A version that
// cannot be created is skipped; issues targeting it end up without a
// milestone.
func (m *Migrator) createMilestones(ctx context.Context, run *Run) (*Run, error) {
	sourceVersions, err := m.Source.ListVersions(ctx, m.Config.SourceProject())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list source versions")
	}

	created := make([]*CreatedMilestone, len(sourceVersions))
	var g errgroup.Group
	for i, v := range sourceVersions {
		if v == nil {
			continue
		}
		i, version := i, convertVersion(v)
		g.Go(func() error {
			milestone, err := m.createMilestone(ctx, run.Project, version)
			if err != nil {
				mlog.Error("Failed to create milestone", mlog.Int("version_id", version.ID), mlog.String("name", version.Name), mlog.Err(err))
				m.recordItem(ctx, run, ItemMilestone, ResultFailure, version.ID, 0)
				return nil
			}
			m.recordItem(ctx, run, ItemMilestone, ResultSuccess, version.ID, milestone.ID)
			created[i] = &CreatedMilestone{Version: version, Milestone: milestone}
			return nil
		})
	}
	_ = g.Wait()

	run.Milestones = make([]*CreatedMilestone, 0, len(created))
	for _, c := range created {
		if c != nil {
			run.Milestones = append(run.Milestones, c)
		}
	}
	mlog.Info("Created milestones", mlog.Int("versions", len(sourceVersions)), mlog.Int("created", len(run.Milestones)))
	return run, nil
}

func (m *Migrator) createMilestone(ctx context.Context, project *model.DestinationProject, version *model.SourceVersion) (*model.DestinationMilestone, error) {
	opts := &gitlab.CreateMilestoneOptions{
		Title:       gitlab.String(version.Name),
		Description: gitlab.String(version.Description),
	}
	if version.DueDate != nil {
		due := gitlab.ISOTime(*version.DueDate)
		opts.DueDate = &due
	}

	milestone, _, err := m.GitLab.Milestones.CreateMilestone(project.ID, opts, gitlab.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return &model.DestinationMilestone{
		ID:      milestone.ID,
		Title:   milestone.Title,
		DueDate: version.DueDate,
	}, nil
}

// closeCompletedMilestones closes the milestones whose source version has
// the configured closed status.
func (m *Migrator) closeCompletedMilestones(ctx context.Context, run *Run) (*Run, error) {
	var g errgroup.Group
	for _, c := range run.Milestones {
		if c.Version.Status != m.Config.ClosedVersionStatus {
			continue
		}
		c := c
		g.Go(func() error {
			opts := &gitlab.UpdateMilestoneOptions{StateEvent: gitlab.String(stateEventClose)}
			if _, _, err := m.GitLab.Milestones.UpdateMilestone(run.Project.ID, c.Milestone.ID, opts, gitlab.WithContext(ctx)); err != nil {
				mlog.Error("Failed to close milestone", mlog.Int("milestone_id", c.Milestone.ID), mlog.String("title", c.Milestone.Title), mlog.Err(err))
				m.recordItem(ctx, run, ItemMilestoneClose, ResultFailure, c.Version.ID, c.Milestone.ID)
				return nil
			}
			c.Milestone.Closed = true
			m.recordItem(ctx, run, ItemMilestoneClose, ResultSuccess, c.Version.ID, c.Milestone.ID)
			return nil
		})
	}
	_ = g.Wait()
	return run, nil
}
