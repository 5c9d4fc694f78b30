// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package migrator

import (
	"github.com/mattermost/mattermost-issuemigrator/model"
)

// Resolver maps the references of a source issue onto destination ids.
// A false result means the reference is absent or has no counterpart, which
// is not an error: the issue is created without it.
type Resolver interface {
	ResolveUser(issue *model.SourceIssue) (int, bool)
	ResolveMilestone(issue *model.SourceIssue) (int, bool)
}

// NameResolver matches assignees to users by name and target versions to
// milestones by title. Matching is exact and case-sensitive; when several
// entries share a name the first one wins.
type NameResolver struct {
	users      []*model.DestinationUser
	milestones []*model.DestinationMilestone
}

func NewNameResolver(users []*model.DestinationUser, milestones []*model.DestinationMilestone) *NameResolver {
	return &NameResolver{users: users, milestones: milestones}
}

func (r *NameResolver) ResolveUser(issue *model.SourceIssue) (int, bool) {
	name := issue.GetAssigneeName()
	if name == "" {
		return 0, false
	}
	for _, user := range r.users {
		if user != nil && user.Name == name {
			return user.ID, true
		}
	}
	return 0, false
}

func (r *NameResolver) ResolveMilestone(issue *model.SourceIssue) (int, bool) {
	title := issue.GetTargetVersionName()
	if title == "" {
		return 0, false
	}
	for _, milestone := range r.milestones {
		if milestone != nil && milestone.Title == title {
			return milestone.ID, true
		}
	}
	return 0, false
}
