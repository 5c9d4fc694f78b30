// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

import (
	"strings"
	"time"
)

// NamedRef is a reference to another source record that carries a display
// name, such as an issue status, an assignee or a target version.
type NamedRef struct {
	ID   int
	Name string
}

// SourceIssue is an issue as read from the source tracker. It is not
// modified after being fetched.
type SourceIssue struct {
	ID            int
	Subject       string
	Description   string
	CreatedAt     time.Time
	Status        NamedRef
	AssignedTo    *NamedRef
	TargetVersion *NamedRef
	Notes         []*Note
	Attachments   []*AttachmentRef
}

// GetAssigneeName returns the assignee name, or an empty string when the
// issue is unassigned.
func (i *SourceIssue) GetAssigneeName() string {
	if i == nil || i.AssignedTo == nil {
		return ""
	}
	return i.AssignedTo.Name
}

// GetTargetVersionName returns the target version name, or an empty string
// when the issue has no target version.
func (i *SourceIssue) GetTargetVersionName() string {
	if i == nil || i.TargetVersion == nil {
		return ""
	}
	return i.TargetVersion.Name
}

// HasStatus reports whether the issue status is one of the given names.
func (i *SourceIssue) HasStatus(names []string) bool {
	if i == nil {
		return false
	}
	for _, name := range names {
		if i.Status.Name == name {
			return true
		}
	}
	return false
}

// Note is a journal entry of a source issue.
type Note struct {
	Text      string
	CreatedAt time.Time
}

// IsBlank is true when the note carries no text worth migrating. Journal
// entries that only record field changes have an empty text.
func (n *Note) IsBlank() bool {
	return n == nil || strings.TrimSpace(n.Text) == ""
}

// AttachmentRef points to a file attached to a source issue.
type AttachmentRef struct {
	ID         int
	ContentURL string
	Filename   string
}

// UploadedAttachment links a source attachment to the markdown reference
// returned by the destination once the file has been uploaded there.
type UploadedAttachment struct {
	SourceAttachmentID     int
	DestinationMarkdownRef string
}
