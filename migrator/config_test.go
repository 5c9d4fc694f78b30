// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package migrator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "config-issuemigrator.json")
	require.NoError(t, os.WriteFile(name, []byte(content), 0600))
	return name
}

func TestGetConfig(t *testing.T) {
	t.Run("defaults are filled in", func(t *testing.T) {
		config, err := GetConfig(writeConfig(t, `{
			"RedmineURL": "https://redmine.example.com",
			"RedmineProject": "projects/demo/",
			"GitLabURL": "https://gitlab.example.com",
			"GitLabProject": "team/demo",
			"GitLabToken": "token"
		}`))
		require.NoError(t, err)

		assert.Equal(t, 100, config.RedminePageSize)
		assert.Equal(t, 1000, config.RedmineRequestIntervalMs)
		assert.Equal(t, 1000, config.GitLabRequestIntervalMs)
		assert.Equal(t, 100, config.GitLabUsersPerPage)
		assert.Equal(t, 100, config.DeleteLimit)
		assert.Equal(t, []string{"Closed", "Rejected"}, config.ClosedIssueStatuses)
		assert.Equal(t, "closed", config.ClosedVersionStatus)
		assert.True(t, config.ShouldMigrateAttachments())
		assert.Equal(t, 4, config.MaxConcurrentTransfers)
		assert.Equal(t, "demo", config.SourceProject())
		assert.Equal(t, "demo", config.ProjectSearchTerm())
	})

	t.Run("environment overrides credentials", func(t *testing.T) {
		t.Setenv(envGitLabToken, "from-env")
		t.Setenv(envRedmineAPIKey, "redmine-env")

		config, err := GetConfig(writeConfig(t, `{
			"RedmineURL": "https://redmine.example.com",
			"RedmineProject": "demo",
			"GitLabURL": "https://gitlab.example.com",
			"GitLabProject": "team/demo",
			"GitLabToken": "from-file",
			"MigrateAttachments": false,
			"ClosedIssueStatuses": ["Done"]
		}`))
		require.NoError(t, err)

		assert.Equal(t, "from-env", config.GitLabToken)
		assert.Equal(t, "redmine-env", config.RedmineAPIKey)
		assert.False(t, config.ShouldMigrateAttachments())
		assert.Equal(t, []string{"Done"}, config.ClosedIssueStatuses)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := GetConfig(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := GetConfig(writeConfig(t, `{"RedmineURL": `))
		require.Error(t, err)
	})
}

func TestConfigIsValid(t *testing.T) {
	valid := func() *Config {
		return &Config{
			RedmineURL:     "https://redmine.example.com",
			RedmineProject: "demo",
			GitLabURL:      "https://gitlab.example.com",
			GitLabProject:  "team/demo",
			GitLabToken:    "token",
		}
	}

	tests := []struct {
		name   string
		modify func(c *Config)
		ok     bool
	}{
		{name: "complete config", modify: func(c *Config) {}, ok: true},
		{name: "missing source url", modify: func(c *Config) { c.RedmineURL = "" }},
		{name: "missing source project", modify: func(c *Config) { c.RedmineProject = "" }},
		{name: "missing destination url", modify: func(c *Config) { c.GitLabURL = "" }},
		{name: "destination project without namespace", modify: func(c *Config) { c.GitLabProject = "demo" }},
		{name: "missing token", modify: func(c *Config) { c.GitLabToken = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.modify(c)
			err := c.IsValid()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSetDefaultsTransfers(t *testing.T) {
	c := &Config{MaxConcurrentTransfers: -1}
	c.SetDefaults()
	assert.Equal(t, 0, c.MaxConcurrentTransfers)

	m := NewWithClients(c, nil, &GitLabClient{}, nil, newRecordingMetrics())
	assert.Nil(t, m.transfers)
}
