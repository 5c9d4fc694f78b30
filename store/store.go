// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package store

import (
	"context"

	"github.com/mattermost/mattermost-issuemigrator/model"
)

//go:generate mockgen -destination=mocks/store.go -package=mocks github.com/mattermost/mattermost-issuemigrator/store Locker,RunStore,Store

// Store persists the audit ledger of migration runs. It is write-mostly:
// nothing in a run reads it back to decide what to create.
type Store interface {
	Run() RunStore
	NewMutex(key string) (Locker, error)
	Close() error
	DropAllTables() error
}

type RunStore interface {
	Save(ctx context.Context, run *model.RunInfo) error
	Get(ctx context.Context, id string) (*model.RunInfo, error)
	SaveRecord(ctx context.Context, record *model.RunRecord) error
	ListRecords(ctx context.Context, runID string) ([]*model.RunRecord, error)
}

// Locker is a lock shared by every process using the same database.
type Locker interface {
	Lock(ctx context.Context) error
	Unlock() error
}
