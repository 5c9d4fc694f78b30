// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

const (
	RunStatusRunning  = "running"
	RunStatusSuccess  = "success"
	RunStatusFailed   = "failed"
	CommandMigrate    = "migrate"
	CommandDelete     = "delete"
	RecordMilestone   = "milestone"
	RecordIssue       = "issue"
	RecordNote        = "note"
	RecordAttachment  = "attachment"
	RecordDeleteIssue = "deleted_issue"
)

// RunInfo describes one execution of a command against a destination
// project.
type RunInfo struct {
	ID         string `db:"Id"`
	Command    string `db:"Command"`
	Project    string `db:"Project"`
	Status     string `db:"Status"`
	StartedAt  int64  `db:"StartedAt"`
	FinishedAt int64  `db:"FinishedAt"`
}

// RunRecord is one destination record written during a run. SourceID is
// zero for records with no source counterpart.
type RunRecord struct {
	RunID         string `db:"RunId"`
	Kind          string `db:"Kind"`
	SourceID      int    `db:"SourceId"`
	DestinationID int    `db:"DestinationId"`
	CreatedAt     int64  `db:"CreatedAt"`
}
