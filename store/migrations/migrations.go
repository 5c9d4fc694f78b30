// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

// Package migrations holds the schema of the run ledger.
package migrations

import "embed"

//go:embed *.sql
var Assets embed.FS
