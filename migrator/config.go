// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package migrator

import (
	"encoding/json"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	defaultPageSize               = 100
	defaultUsersPerPage           = 100
	defaultDeleteLimit            = 100
	defaultRequestIntervalMs      = 1000
	defaultMaxConcurrentTransfers = 4
	defaultClosedVersionStatus    = "closed"
	defaultSourceCacheSizeBytes   = 64 << 20
	defaultSourceCacheMaxAgeSecs  = 3600

	envRedmineAPIKey = "REDMINE_API_KEY"
	envGitLabToken   = "GITLAB_TOKEN"
)

var defaultClosedIssueStatuses = []string{"Closed", "Rejected"}

type LogSettings struct {
	EnableConsole bool
	ConsoleJSON   bool
	ConsoleLevel  string
	EnableFile    bool
	FileJSON      bool
	FileLevel     string
	FileLocation  string
}

type Config struct {
	RedmineURL               string
	RedmineProject           string
	RedmineAPIKey            string
	RedminePageSize          int
	RedmineRequestIntervalMs int

	// Caching of source GET responses. Redmine answers with ETags, so
	// repeated reads within a run are revalidated instead of refetched.
	SourceCacheSizeBytes       int64
	SourceCacheMaxAgeSeconds   int64
	DisableSourceResponseCache bool

	GitLabURL               string
	GitLabProject           string
	GitLabToken             string
	GitLabUsersPerPage      int
	GitLabRequestIntervalMs int

	// ClosedIssueStatuses lists the source statuses whose issues are closed
	// once created on the destination.
	ClosedIssueStatuses []string
	// ClosedVersionStatus is the source version status whose milestones are
	// closed once created.
	ClosedVersionStatus string

	MigrateAttachments     *bool
	AttachmentDir          string
	MaxConcurrentTransfers int

	DeleteLimit int

	MetricsServerPort string

	// DriverName and DataSource enable the run ledger and the run lock.
	// Both are optional.
	DriverName string
	DataSource string

	LogSettings LogSettings
}

func FindConfigFile(fileName string) string {
	if _, err := os.Stat("./config/" + fileName); err == nil {
		fileName, _ = filepath.Abs("./config/" + fileName)
	} else if _, err := os.Stat("../config/" + fileName); err == nil {
		fileName, _ = filepath.Abs("../config/" + fileName)
	} else if _, err := os.Stat(fileName); err == nil {
		fileName, _ = filepath.Abs(fileName)
	}

	return fileName
}

// GetConfig loads the configuration file, applies environment overrides
// for credentials and fills in defaults.
func GetConfig(fileName string) (*Config, error) {
	fileName = FindConfigFile(fileName)

	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open config file %s", fileName)
	}
	defer file.Close()

	config := &Config{}
	if err = json.NewDecoder(file).Decode(config); err != nil {
		return nil, errors.Wrapf(err, "unable to decode config file %s", fileName)
	}

	if key := os.Getenv(envRedmineAPIKey); key != "" {
		config.RedmineAPIKey = key
	}
	if token := os.Getenv(envGitLabToken); token != "" {
		config.GitLabToken = token
	}

	config.SetDefaults()
	if err = config.IsValid(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) SetDefaults() {
	if c.RedminePageSize <= 0 {
		c.RedminePageSize = defaultPageSize
	}
	if c.RedmineRequestIntervalMs <= 0 {
		c.RedmineRequestIntervalMs = defaultRequestIntervalMs
	}
	if c.SourceCacheSizeBytes <= 0 {
		c.SourceCacheSizeBytes = defaultSourceCacheSizeBytes
	}
	if c.SourceCacheMaxAgeSeconds <= 0 {
		c.SourceCacheMaxAgeSeconds = defaultSourceCacheMaxAgeSecs
	}
	if c.GitLabUsersPerPage <= 0 {
		c.GitLabUsersPerPage = defaultUsersPerPage
	}
	if c.GitLabRequestIntervalMs <= 0 {
		c.GitLabRequestIntervalMs = defaultRequestIntervalMs
	}
	if c.ClosedIssueStatuses == nil {
		c.ClosedIssueStatuses = append([]string(nil), defaultClosedIssueStatuses...)
	}
	if c.ClosedVersionStatus == "" {
		c.ClosedVersionStatus = defaultClosedVersionStatus
	}
	if c.MigrateAttachments == nil {
		migrate := true
		c.MigrateAttachments = &migrate
	}
	if c.AttachmentDir == "" {
		c.AttachmentDir = filepath.Join(os.TempDir(), "issuemigrator")
	}
	if c.MaxConcurrentTransfers < 0 {
		c.MaxConcurrentTransfers = 0
	} else if c.MaxConcurrentTransfers == 0 {
		c.MaxConcurrentTransfers = defaultMaxConcurrentTransfers
	}
	if c.DeleteLimit <= 0 {
		c.DeleteLimit = defaultDeleteLimit
	}
	if c.DriverName == "" {
		c.DriverName = "mysql"
	}
}

func (c *Config) IsValid() error {
	if c.RedmineURL == "" {
		return errors.New("RedmineURL is required")
	}
	if c.RedmineProject == "" {
		return errors.New("RedmineProject is required")
	}
	if c.GitLabURL == "" {
		return errors.New("GitLabURL is required")
	}
	if !strings.Contains(c.GitLabProject, "/") {
		return errors.Errorf("GitLabProject must be a full path with namespace, got %q", c.GitLabProject)
	}
	if c.GitLabToken == "" {
		return errors.Errorf("GitLabToken is required, set it in the config file or in %s", envGitLabToken)
	}
	return nil
}

// ShouldMigrateAttachments reports whether attachments are transferred.
func (c *Config) ShouldMigrateAttachments() bool {
	return c.MigrateAttachments == nil || *c.MigrateAttachments
}

// SourceProject is the Redmine project identifier. A path such as
// "projects/foo" is reduced to its last segment.
func (c *Config) SourceProject() string {
	return path.Base(strings.TrimSuffix(c.RedmineProject, "/"))
}

// ProjectSearchTerm is the term used to look the destination project up:
// the last segment of its path.
func (c *Config) ProjectSearchTerm() string {
	return path.Base(c.GitLabProject)
}
