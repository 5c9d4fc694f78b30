// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

// Package redmine is a small client for the parts of the Redmine REST API
// needed to read a project's issues, versions and attachments.
package redmine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/pkg/errors"
)

const (
	// APIKeyHeader carries the per-user API key on every request.
	APIKeyHeader = "X-Redmine-API-Key"

	// AllStatuses selects open and closed issues alike.
	AllStatuses = "*"

	IncludeJournals    = "journals"
	IncludeAttachments = "attachments"
)

// Client talks to one Redmine instance.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
}

// NewClient returns a client for the Redmine instance at baseURL. The given
// http.Client carries transport concerns (throttling, caching, metrics); it
// defaults to http.DefaultClient.
func NewClient(baseURL, apiKey string, httpClient *http.Client) (*Client, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redmine base url")
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	return &Client{
		baseURL:    u,
		apiKey:     apiKey,
		httpClient: httpClient,
	}, nil
}

// ListIssuesOptions selects a page of a project's issues.
type ListIssuesOptions struct {
	Limit    int    `url:"limit,omitempty"`
	Page     int    `url:"page,omitempty"`
	StatusID string `url:"status_id,omitempty"`
}

// ListIssues returns one page of the project's issues along with the total
// number of issues matching the options.
func (c *Client) ListIssues(ctx context.Context, project string, opt *ListIssuesOptions) (*IssueList, error) {
	req, err := c.newRequest(ctx, fmt.Sprintf("projects/%s/issues.json", url.PathEscape(project)), opt)
	if err != nil {
		return nil, err
	}

	list := new(IssueList)
	if err := c.do(req, list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetIssueOptions lists the associations to embed in an issue.
type GetIssueOptions struct {
	Include []string `url:"include,comma,omitempty"`
}

// GetIssue returns a single issue.
func (c *Client) GetIssue(ctx context.Context, id int, opt *GetIssueOptions) (*Issue, error) {
	req, err := c.newRequest(ctx, fmt.Sprintf("issues/%d.json", id), opt)
	if err != nil {
		return nil, err
	}

	env := new(issueEnvelope)
	if err := c.do(req, env); err != nil {
		return nil, err
	}
	if env.Issue == nil {
		return nil, errors.Errorf("issue %d missing from response", id)
	}
	return env.Issue, nil
}

// ListVersions returns the versions of a project.
func (c *Client) ListVersions(ctx context.Context, project string) ([]*Version, error) {
	req, err := c.newRequest(ctx, fmt.Sprintf("projects/%s/versions.json", url.PathEscape(project)), nil)
	if err != nil {
		return nil, err
	}

	list := new(versionList)
	if err := c.do(req, list); err != nil {
		return nil, err
	}
	return list.Versions, nil
}

// DownloadAttachment streams the content behind an attachment content_url
// into w and returns the number of bytes written.
func (c *Client) DownloadAttachment(ctx context.Context, contentURL string, w io.Writer) (int64, error) {
	req, err := c.newRequest(ctx, contentURL, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Del("Accept")
	// attachment bodies are streamed to disk, never kept by a response cache
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := CheckResponse(resp); err != nil {
		return 0, err
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, errors.Wrapf(err, "failed to read attachment %s", contentURL)
	}
	return n, nil
}

// newRequest resolves ref against the base url, so both API paths and the
// absolute content urls Redmine hands out are accepted.
func (c *Client) newRequest(ctx context.Context, ref string, opt interface{}) (*http.Request, error) {
	u, err := c.baseURL.Parse(strings.TrimPrefix(ref, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid request path %q", ref)
	}

	if opt != nil {
		q, err := query.Values(opt)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode query")
		}
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(APIKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, v interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := CheckResponse(resp); err != nil {
		return err
	}

	// reading to EOF lets a caching transport store the body
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", req.URL.Path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "failed to decode %s", req.URL.Path)
	}
	return nil
}

// ErrorResponse is returned for any response outside the 2xx range.
type ErrorResponse struct {
	Response *http.Response
	Errors   []string `json:"errors"`
}

func (e *ErrorResponse) Error() string {
	msg := http.StatusText(e.Response.StatusCode)
	if len(e.Errors) > 0 {
		msg = strings.Join(e.Errors, ", ")
	}
	if e.Response.Request == nil {
		return fmt.Sprintf("%d %s", e.Response.StatusCode, msg)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Response.Request.Method, e.Response.Request.URL.Path, e.Response.StatusCode, msg)
}

// CheckResponse returns an *ErrorResponse when r does not carry a 2xx status.
func CheckResponse(r *http.Response) error {
	if c := r.StatusCode; c >= 200 && c <= 299 {
		return nil
	}

	errorResponse := &ErrorResponse{Response: r}
	data, err := io.ReadAll(r.Body)
	if err == nil && len(data) > 0 {
		// Redmine answers 422 with {"errors": [...]}; other bodies are HTML.
		_ = json.Unmarshal(data, errorResponse)
	}
	return errorResponse
}
