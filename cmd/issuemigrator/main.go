// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"

	"github.com/mattermost/mattermost-issuemigrator/metrics"
	"github.com/mattermost/mattermost-issuemigrator/migrator"
	"github.com/mattermost/mattermost-issuemigrator/version"
)

const (
	defaultConfigFile = "config-issuemigrator.json"
	envConfigFile     = "ISSUEMIGRATOR_CONFIG"

	commandMigrate = "migrate"
	commandDelete  = "delete"
)

func configFile() string {
	if fromEnv := os.Getenv(envConfigFile); fromEnv != "" {
		return fromEnv
	}
	return defaultConfigFile
}

func main() {
	if len(os.Args) != 2 || (os.Args[1] != commandMigrate && os.Args[1] != commandDelete) {
		fmt.Fprintf(os.Stderr, "usage: %s migrate|delete\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}
	os.Exit(run(os.Args[1], configFile()))
}

func run(command, configFile string) int {
	config, err := migrator.GetConfig(configFile)
	if err != nil {
		mlog.Error("unable to load config", mlog.Err(err), mlog.String("file", configFile))
		return 1
	}
	logger, err := migrator.SetupLogging(config)
	if err != nil {
		mlog.Error("unable to configure logging", mlog.Err(err))
		return 1
	}
	defer logger.Shutdown()

	info := version.Full()
	mlog.Info("Loaded config", mlog.String("filename", configFile), mlog.String("version", info.String()))

	metricsProvider := metrics.NewPrometheusProvider()
	m, err := migrator.New(config, metricsProvider)
	if err != nil {
		mlog.Error("unable to create migrator", mlog.Err(err))
		return 1
	}
	defer func() {
		if err2 := m.Close(); err2 != nil {
			mlog.Warn("error while closing the run ledger", mlog.Err(err2))
		}
	}()

	if config.MetricsServerPort != "" {
		metricsServer := metrics.NewServer(config.MetricsServerPort, metricsProvider.Handler(), m.Progress, false)
		metricsServer.Start()
		defer metricsServer.Stop()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var summary *migrator.Summary
	switch command {
	case commandMigrate:
		summary, err = m.Migrate(ctx)
	case commandDelete:
		summary, err = m.DeleteAll(ctx)
	}

	var stageErr *migrator.StageError
	if errors.As(err, &stageErr) {
		mlog.Error("Run stopped", mlog.String("command", command), mlog.String("stage", stageErr.Stage), mlog.Err(stageErr.Err))
		return 1
	}
	if err != nil {
		mlog.Error("Run failed", mlog.String("command", command), mlog.Err(err))
		return 1
	}

	mlog.Info("Run completed", mlog.String("command", command), mlog.Int("failed_items", summary.Failures()))
	return 0
}
