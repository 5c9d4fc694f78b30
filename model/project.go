// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

// DestinationProject is the project issues are migrated into.
type DestinationProject struct {
	ID                int
	Name              string
	PathWithNamespace string
}
