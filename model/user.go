// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

// DestinationUser is a user account on the destination tracker.
type DestinationUser struct {
	ID   int
	Name string
}
