// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package migrator

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/die-net/lrucache"
	"github.com/m4ns0ur/httpcache"

	"github.com/mattermost/mattermost-issuemigrator/internal/redmine"
	"github.com/mattermost/mattermost-issuemigrator/metrics"
	"github.com/mattermost/mattermost-issuemigrator/model"
)

const (
	serviceRedmine = "redmine"
	serviceGitLab  = "gitlab"
)

// SourceService exposes the Redmine client.
// Useful to mock in tests.
type SourceService interface {
	ListIssues(ctx context.Context, project string, opt *redmine.ListIssuesOptions) (*redmine.IssueList, error)
	GetIssue(ctx context.Context, id int, opt *redmine.GetIssueOptions) (*redmine.Issue, error)
	ListVersions(ctx context.Context, project string) ([]*redmine.Version, error)
	DownloadAttachment(ctx context.Context, contentURL string, w io.Writer) (int64, error)
}

// NewSourceHTTPClient builds the transport chain of the source client:
// metrics, then the response cache, then the scheduler. Cached responses
// never reach the scheduler.
func NewSourceHTTPClient(config *Config, scheduler *Scheduler, provider MetricsProvider, base http.RoundTripper) *http.Client {
	var transport http.RoundTripper = NewRateLimitTransport(scheduler, base)

	if !config.DisableSourceResponseCache {
		cache := httpcache.NewTransport(lrucache.New(config.SourceCacheSizeBytes, config.SourceCacheMaxAgeSeconds))
		cache.Transport = transport
		cache.MarkCachedResponses = true
		transport = cache
	}

	if provider != nil {
		transport = metrics.NewTransport(serviceRedmine, transport, provider)
	}

	return &http.Client{Transport: transport}
}

// NewDestinationHTTPClient instruments the transport used by go-gitlab.
// Throttling is plugged into go-gitlab itself as its limiter.
func NewDestinationHTTPClient(provider MetricsProvider, base http.RoundTripper) *http.Client {
	if provider == nil {
		return &http.Client{Transport: base}
	}
	return metrics.NewTransport(serviceGitLab, base, provider).Client()
}

func convertIssue(issue *redmine.Issue) *model.SourceIssue {
	if issue == nil {
		return nil
	}

	converted := &model.SourceIssue{
		ID:            issue.ID,
		Subject:       issue.Subject,
		Description:   issue.Description,
		CreatedAt:     timeValue(issue.CreatedOn),
		AssignedTo:    convertRef(issue.AssignedTo),
		TargetVersion: convertRef(issue.FixedVersion),
	}
	if issue.Status != nil {
		converted.Status = *convertRef(issue.Status)
	}

	for _, journal := range issue.Journals {
		if journal == nil {
			continue
		}
		converted.Notes = append(converted.Notes, &model.Note{
			Text:      journal.Notes,
			CreatedAt: timeValue(journal.CreatedOn),
		})
	}

	for _, attachment := range issue.Attachments {
		if attachment == nil {
			continue
		}
		converted.Attachments = append(converted.Attachments, &model.AttachmentRef{
			ID:         attachment.ID,
			ContentURL: attachment.ContentURL,
			Filename:   attachment.Filename,
		})
	}

	return converted
}

func convertIssues(issues []*redmine.Issue) []*model.SourceIssue {
	converted := make([]*model.SourceIssue, 0, len(issues))
	for _, issue := range issues {
		if issue != nil {
			converted = append(converted, convertIssue(issue))
		}
	}
	return converted
}

func convertVersion(version *redmine.Version) *model.SourceVersion {
	converted := &model.SourceVersion{
		ID:          version.ID,
		Name:        version.Name,
		Description: version.Description,
		Status:      version.Status,
	}
	if version.DueDate != nil && !version.DueDate.IsZero() {
		due := version.DueDate.Time
		converted.DueDate = &due
	}
	return converted
}

func convertRef(ref *redmine.IDName) *model.NamedRef {
	if ref == nil {
		return nil
	}
	return &model.NamedRef{ID: ref.ID, Name: ref.Name}
}

func timeValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
