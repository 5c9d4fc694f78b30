// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

// Package migrator copies the issue tracker of a Redmine project into a
// GitLab project: users and milestones are resolved first, then every issue
// is created with its notes, attachments and closed state.
package migrator

import (
	"context"
	"sync"
	"time"

	"github.com/juju/clock"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
	"golang.org/x/sync/semaphore"

	"github.com/mattermost/mattermost-issuemigrator/internal/redmine"
	"github.com/mattermost/mattermost-issuemigrator/metrics"
	"github.com/mattermost/mattermost-issuemigrator/model"
	"github.com/mattermost/mattermost-issuemigrator/store"
)

const (
	runLockPrefix = "run_"
)

// Migrator runs migrate and delete commands against one source project and
// one destination project.
type Migrator struct {
	Config  *Config
	Source  SourceService
	GitLab  *GitLabClient
	Store   store.Store
	Metrics MetricsProvider
	Clock   clock.Clock

	transfers *semaphore.Weighted

	progressMu sync.Mutex
	progress   metrics.Status
}

// New builds the source and destination clients described by the config.
// Each service gets its own scheduler.
func New(config *Config, metrics MetricsProvider) (*Migrator, error) {
	clk := clock.WallClock

	sourceScheduler := NewScheduler(time.Duration(config.RedmineRequestIntervalMs)*time.Millisecond, clk)
	source, err := redmine.NewClient(config.RedmineURL, config.RedmineAPIKey, NewSourceHTTPClient(config, sourceScheduler, metrics, nil))
	if err != nil {
		return nil, err
	}

	destinationScheduler := NewScheduler(time.Duration(config.GitLabRequestIntervalMs)*time.Millisecond, clk)
	gitlabClient, err := NewGitLabClient(config.GitLabToken, config.GitLabURL, destinationScheduler, NewDestinationHTTPClient(metrics, nil))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gitlab client")
	}

	var st store.Store
	if config.DataSource != "" {
		sqlStore, err := store.NewSQLStore(config.DriverName, config.DataSource)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open the run ledger")
		}
		st = sqlStore
	}

	return NewWithClients(config, source, gitlabClient, st, metrics), nil
}

// NewWithClients assembles a migrator around existing clients. The store is
// optional.
func NewWithClients(config *Config, source SourceService, gitlabClient *GitLabClient, st store.Store, metrics MetricsProvider) *Migrator {
	m := &Migrator{
		Config:  config,
		Source:  source,
		GitLab:  gitlabClient,
		Store:   st,
		Metrics: metrics,
		Clock:   clock.WallClock,
	}
	if config.MaxConcurrentTransfers > 0 {
		m.transfers = semaphore.NewWeighted(int64(config.MaxConcurrentTransfers))
	}
	return m
}

// Close releases the run ledger, if any.
func (m *Migrator) Close() error {
	if m.Store == nil {
		return nil
	}
	return m.Store.Close()
}

// StageError reports the stage that ended a run.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return "stage " + e.Stage + " failed: " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

type stageFunc func(ctx context.Context, run *Run) (*Run, error)

type stage struct {
	name string
	run  stageFunc
}

// runStages executes the stages in order. A failed stage ends the run and
// no later stage starts.
func (m *Migrator) runStages(ctx context.Context, run *Run, stages []stage) (*Run, error) {
	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return run, &StageError{Stage: s.name, Err: err}
		}

		m.setStage(s.name)
		mlog.Info("Starting stage", mlog.String("stage", s.name), mlog.String("run_id", run.ID))
		start := m.Clock.Now()
		next, err := s.run(ctx, run)
		m.Metrics.ObserveStageDuration(s.name, elapsedSeconds(start, m.Clock.Now()))
		if err != nil {
			m.Metrics.IncreaseStageErrors(s.name)
			mlog.Error("Stage failed", mlog.String("stage", s.name), mlog.String("run_id", run.ID), mlog.Err(err))
			return run, &StageError{Stage: s.name, Err: err}
		}
		run = next
	}
	return run, nil
}

// execute wraps a command with the run lock and the run ledger.
func (m *Migrator) execute(ctx context.Context, command string, stages []stage) (*Summary, error) {
	run := NewRun(command)
	mlog.Info("Starting run",
		mlog.String("run_id", run.ID),
		mlog.String("command", command),
		mlog.String("source_project", m.Config.SourceProject()),
		mlog.String("destination_project", m.Config.GitLabProject),
	)

	m.progressMu.Lock()
	m.progress = metrics.Status{RunID: run.ID, Command: command}
	m.progressMu.Unlock()

	unlock, err := m.lockProject(ctx)
	if err != nil {
		return run.Summary, err
	}
	defer unlock()

	info := &model.RunInfo{
		ID:        run.ID,
		Command:   command,
		Project:   m.Config.GitLabProject,
		Status:    model.RunStatusRunning,
		StartedAt: m.Clock.Now().UnixMilli(),
	}
	m.saveRunInfo(ctx, info)

	_, err = m.runStages(ctx, run, stages)

	info.Status = model.RunStatusSuccess
	if err != nil {
		info.Status = model.RunStatusFailed
	}
	info.FinishedAt = m.Clock.Now().UnixMilli()
	m.setStage(info.Status)
	m.saveRunInfo(context.Background(), info)

	fields := append([]mlog.Field{mlog.String("run_id", run.ID), mlog.String("status", info.Status)}, run.Summary.Fields()...)
	mlog.Info("Run finished", fields...)

	return run.Summary, err
}

// Progress reports the run being executed and its current stage. Once the
// run ends the stage is the final run status.
func (m *Migrator) Progress() metrics.Status {
	m.progressMu.Lock()
	defer m.progressMu.Unlock()
	return m.progress
}

func (m *Migrator) setStage(stage string) {
	m.progressMu.Lock()
	defer m.progressMu.Unlock()
	m.progress.Stage = stage
}

func (m *Migrator) lockProject(ctx context.Context) (func(), error) {
	if m.Store == nil {
		return func() {}, nil
	}

	mutex, err := m.Store.NewMutex(runLockPrefix + m.Config.GitLabProject)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create the run lock")
	}
	mlog.Debug("Acquiring run lock", mlog.String("project", m.Config.GitLabProject))
	if err = mutex.Lock(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to acquire the run lock")
	}

	return func() {
		if err := mutex.Unlock(); err != nil {
			mlog.Warn("Failed to release the run lock", mlog.Err(err))
		}
	}, nil
}

func (m *Migrator) saveRunInfo(ctx context.Context, info *model.RunInfo) {
	if m.Store == nil {
		return
	}
	if err := m.Store.Run().Save(ctx, info); err != nil {
		mlog.Warn("Failed to save run", mlog.String("run_id", info.ID), mlog.Err(err))
	}
}

// recordItem counts the outcome of one item. Successful creations are also
// written to the run ledger.
func (m *Migrator) recordItem(ctx context.Context, run *Run, kind, result string, sourceID, destinationID int) {
	run.Summary.Add(kind, result)
	m.Metrics.IncreaseMigratedItems(kind, result)

	if m.Store == nil || result != ResultSuccess || !isLedgerKind(kind) {
		return
	}
	record := &model.RunRecord{
		RunID:         run.ID,
		Kind:          kind,
		SourceID:      sourceID,
		DestinationID: destinationID,
		CreatedAt:     m.Clock.Now().UnixMilli(),
	}
	if err := m.Store.Run().SaveRecord(ctx, record); err != nil {
		mlog.Warn("Failed to save run record", mlog.String("run_id", run.ID), mlog.String("kind", kind), mlog.Err(err))
	}
}

func isLedgerKind(kind string) bool {
	switch kind {
	case ItemMilestone, ItemIssue, ItemNote, ItemAttachment, ItemIssueDelete:
		return true
	}
	return false
}
