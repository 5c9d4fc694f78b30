// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package store

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/mattermost/mattermost-issuemigrator/model"
)

type SQLRunStore struct {
	*SQLStore
}

func NewSQLRunStore(sqlStore *SQLStore) RunStore {
	return &SQLRunStore{sqlStore}
}

// Save inserts the run or updates its status and finish time.
func (s *SQLRunStore) Save(ctx context.Context, run *model.RunInfo) error {
	if _, err := s.GetMaster().NamedExecContext(ctx,
		`INSERT INTO Runs
				(Id, Command, Project, Status, StartedAt, FinishedAt)
			VALUES
				(:Id, :Command, :Project, :Status, :StartedAt, :FinishedAt)
			ON DUPLICATE KEY UPDATE
				Status = VALUES(Status),
				FinishedAt = VALUES(FinishedAt)`, run); err != nil {
		return errors.Wrapf(err, "could not save run id=%s", run.ID)
	}
	return nil
}

func (s *SQLRunStore) Get(ctx context.Context, id string) (*model.RunInfo, error) {
	var run model.RunInfo
	if err := s.GetMaster().GetContext(ctx, &run,
		`SELECT
				*
			FROM
				Runs
			WHERE
				Id = ?`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // row not found.
		}
		return nil, errors.Wrapf(err, "could not get run id=%s", id)
	}
	return &run, nil
}

func (s *SQLRunStore) SaveRecord(ctx context.Context, record *model.RunRecord) error {
	if _, err := s.GetMaster().NamedExecContext(ctx,
		`INSERT INTO RunRecords
				(RunId, Kind, SourceId, DestinationId, CreatedAt)
			VALUES
				(:RunId, :Kind, :SourceId, :DestinationId, :CreatedAt)`, record); err != nil {
		return errors.Wrapf(err, "could not save %s record of run id=%s", record.Kind, record.RunID)
	}
	return nil
}

func (s *SQLRunStore) ListRecords(ctx context.Context, runID string) ([]*model.RunRecord, error) {
	records := []*model.RunRecord{}
	if err := s.GetMaster().SelectContext(ctx, &records,
		`SELECT
				*
			FROM
				RunRecords
			WHERE
				RunId = ?
			ORDER BY CreatedAt, Kind, SourceId`, runID); err != nil {
		return nil, errors.Wrapf(err, "could not list records of run id=%s", runID)
	}
	return records, nil
}
