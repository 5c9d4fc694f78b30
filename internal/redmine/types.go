// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package redmine

import (
	"bytes"
	"time"
)

const dateLayout = "2006-01-02"

// IDName is the {id, name} pair Redmine uses to embed related records.
type IDName struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Issue is a Redmine issue. Journals and Attachments are only present when
// requested through the include parameter.
type Issue struct {
	ID           int           `json:"id"`
	Project      *IDName       `json:"project"`
	Tracker      *IDName       `json:"tracker"`
	Status       *IDName       `json:"status"`
	Priority     *IDName       `json:"priority"`
	Author       *IDName       `json:"author"`
	AssignedTo   *IDName       `json:"assigned_to"`
	FixedVersion *IDName       `json:"fixed_version"`
	Subject      string        `json:"subject"`
	Description  string        `json:"description"`
	CreatedOn    *time.Time    `json:"created_on"`
	UpdatedOn    *time.Time    `json:"updated_on"`
	ClosedOn     *time.Time    `json:"closed_on"`
	Journals     []*Journal    `json:"journals"`
	Attachments  []*Attachment `json:"attachments"`
}

// IssueList is one page of the issue listing.
type IssueList struct {
	Issues     []*Issue `json:"issues"`
	TotalCount int      `json:"total_count"`
	Offset     int      `json:"offset"`
	Limit      int      `json:"limit"`
}

// Journal is an entry of an issue history. Notes is empty for entries that
// only record attribute changes.
type Journal struct {
	ID        int        `json:"id"`
	User      *IDName    `json:"user"`
	Notes     string     `json:"notes"`
	CreatedOn *time.Time `json:"created_on"`
}

// Attachment is a file attached to an issue.
type Attachment struct {
	ID          int        `json:"id"`
	Filename    string     `json:"filename"`
	Filesize    int64      `json:"filesize"`
	ContentType string     `json:"content_type"`
	Description string     `json:"description"`
	ContentURL  string     `json:"content_url"`
	Author      *IDName    `json:"author"`
	CreatedOn   *time.Time `json:"created_on"`
}

// Version is a project version, the target of issues' fixed_version.
type Version struct {
	ID          int        `json:"id"`
	Project     *IDName    `json:"project"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *Date      `json:"due_date"`
	Sharing     string     `json:"sharing"`
	CreatedOn   *time.Time `json:"created_on"`
	UpdatedOn   *time.Time `json:"updated_on"`
}

type versionList struct {
	Versions   []*Version `json:"versions"`
	TotalCount int        `json:"total_count"`
}

type issueEnvelope struct {
	Issue *Issue `json:"issue"`
}

// Date is a calendar date encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte(`""`)) {
		return nil
	}
	t, err := time.Parse(`"`+dateLayout+`"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(d.Format(`"` + dateLayout + `"`)), nil
}
