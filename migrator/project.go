// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package migrator

import (
	"context"

	"github.com/pkg/errors"
	"github.com/xanzy/go-gitlab"

	"github.com/mattermost/mattermost-issuemigrator/model"
)

// ErrProjectNotFound is returned when no destination project carries the
// configured path.
var ErrProjectNotFound = errors.New("destination project not found")

// findProject searches projects by the last segment of the configured path
// and keeps the one whose full path matches exactly.
func (m *Migrator) findProject(ctx context.Context) (*model.DestinationProject, error) {
	opts := &gitlab.ListProjectsOptions{
		Search: gitlab.String(m.Config.ProjectSearchTerm()),
		Simple: gitlab.Bool(true),
	}
	projects, _, err := m.GitLab.Projects.ListProjects(opts, gitlab.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "failed to search destination projects")
	}

	for _, project := range projects {
		if project != nil && project.PathWithNamespace == m.Config.GitLabProject {
			return &model.DestinationProject{
				ID:                project.ID,
				Name:              project.Name,
				PathWithNamespace: project.PathWithNamespace,
			}, nil
		}
	}
	return nil, errors.Wrapf(ErrProjectNotFound, "no project with path %s among %d results", m.Config.GitLabProject, len(projects))
}
