// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package migrator

import (
	"sync"

	"github.com/rs/xid"

	"github.com/mattermost/mattermost-issuemigrator/model"
)

// CreatedMilestone links a source version to the milestone created for it.
type CreatedMilestone struct {
	Version   *model.SourceVersion
	Milestone *model.DestinationMilestone
}

// Run carries everything one migration learns and creates as it moves
// through its stages. Stages run one after the other; within a stage only
// the uploaded attachments are appended concurrently.
type Run struct {
	ID      string
	Command string

	Users      []*model.DestinationUser
	IssueCount int
	Issues     []*model.SourceIssue
	Project    *model.DestinationProject
	Milestones []*CreatedMilestone

	Summary *Summary

	attachmentsMu sync.Mutex
	attachments   []*model.UploadedAttachment
}

func NewRun(command string) *Run {
	return &Run{
		ID:      xid.New().String(),
		Command: command,
		Summary: NewSummary(),
	}
}

// DestinationMilestones returns the milestones created by the run, in
// version order.
func (r *Run) DestinationMilestones() []*model.DestinationMilestone {
	milestones := make([]*model.DestinationMilestone, 0, len(r.Milestones))
	for _, created := range r.Milestones {
		milestones = append(milestones, created.Milestone)
	}
	return milestones
}

func (r *Run) AddAttachment(attachment *model.UploadedAttachment) {
	r.attachmentsMu.Lock()
	defer r.attachmentsMu.Unlock()
	r.attachments = append(r.attachments, attachment)
}

// Attachments returns a copy of the attachments uploaded so far.
func (r *Run) Attachments() []*model.UploadedAttachment {
	r.attachmentsMu.Lock()
	defer r.attachmentsMu.Unlock()
	return append([]*model.UploadedAttachment(nil), r.attachments...)
}
