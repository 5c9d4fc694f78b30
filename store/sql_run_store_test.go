// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost-issuemigrator/model"
)

func TestRunStore(t *testing.T) {
	ss := getTestSQLStore(t)
	ctx := context.Background()

	t.Run("should insert a run and update its outcome", func(t *testing.T) {
		run := &model.RunInfo{
			ID:        "c9p0a2d5q8mg00f6hq10",
			Command:   model.CommandMigrate,
			Project:   "team/project",
			Status:    model.RunStatusRunning,
			StartedAt: 1000,
		}
		require.NoError(t, ss.Run().Save(ctx, run))

		run.Status = model.RunStatusSuccess
		run.FinishedAt = 2000
		require.NoError(t, ss.Run().Save(ctx, run))

		got, err := ss.Run().Get(ctx, run.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, *run, *got)
		assert.Equal(t, 1, countRows(t, ss.GetMaster().DB, "Runs"))
	})

	t.Run("should return nil for an unknown run", func(t *testing.T) {
		got, err := ss.Run().Get(ctx, "unknown")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("should list the records of a run", func(t *testing.T) {
		records := []*model.RunRecord{
			{RunID: "run-a", Kind: model.RecordMilestone, SourceID: 3, DestinationID: 30, CreatedAt: 10},
			{RunID: "run-a", Kind: model.RecordIssue, SourceID: 1, DestinationID: 100, CreatedAt: 11},
			{RunID: "run-b", Kind: model.RecordIssue, SourceID: 1, DestinationID: 101, CreatedAt: 12},
		}
		for _, record := range records {
			require.NoError(t, ss.Run().SaveRecord(ctx, record))
		}

		got, err := ss.Run().ListRecords(ctx, "run-a")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, model.RecordMilestone, got[0].Kind)
		assert.Equal(t, 100, got[1].DestinationID)
	})

	t.Run("should truncate every table", func(t *testing.T) {
		require.NoError(t, ss.DropAllTables())
		assert.Equal(t, 0, countRows(t, ss.GetMaster().DB, "Runs"))
		assert.Equal(t, 0, countRows(t, ss.GetMaster().DB, "RunRecords"))
	})
}
