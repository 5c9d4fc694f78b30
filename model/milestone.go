// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

import (
	"time"
)

const (
	StateOpen   = "open"
	StateClosed = "closed"
)

// SourceVersion is a source tracker version (a "target version" of issues).
type SourceVersion struct {
	ID          int
	Name        string
	Description string
	DueDate     *time.Time
	Status      string
}

// DestinationMilestone is a milestone in the destination project.
type DestinationMilestone struct {
	ID      int
	Title   string
	DueDate *time.Time
	Closed  bool
}
