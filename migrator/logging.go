// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package migrator

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
)

const (
	LogFilename = "issuemigrator.log"

	logMaxQueueSize = 1000
)

func GetLogFileLocation(fileLocation string) string {
	if fileLocation == "" {
		return LogFilename
	}
	return filepath.Join(fileLocation, LogFilename)
}

// SetupLogging configures the global mlog logger from the log settings.
// The returned logger must be shut down to flush queued records.
func SetupLogging(config *Config) (*mlog.Logger, error) {
	logger, err := mlog.NewLogger()
	if err != nil {
		return nil, errors.Wrap(err, "unable to create logger")
	}

	cfg := make(mlog.LoggerConfiguration)
	if config.LogSettings.EnableConsole {
		cfg["console"] = mlog.TargetCfg{
			Type:         "console",
			Format:       logFormat(config.LogSettings.ConsoleJSON),
			Levels:       logLevels(config.LogSettings.ConsoleLevel),
			Options:      json.RawMessage(`{"out": "stdout"}`),
			MaxQueueSize: logMaxQueueSize,
		}
	}
	if config.LogSettings.EnableFile {
		options, err := json.Marshal(map[string]interface{}{
			"filename": GetLogFileLocation(config.LogSettings.FileLocation),
			"max_size": 100,
			"compress": true,
		})
		if err != nil {
			return nil, err
		}
		cfg["file"] = mlog.TargetCfg{
			Type:         "file",
			Format:       logFormat(config.LogSettings.FileJSON),
			Levels:       logLevels(config.LogSettings.FileLevel),
			Options:      options,
			MaxQueueSize: logMaxQueueSize,
		}
	}

	if err = logger.ConfigureTargets(cfg, nil); err != nil {
		return nil, errors.Wrap(err, "unable to configure log targets")
	}

	logger.RedirectStdLog(mlog.LvlInfo)
	mlog.InitGlobalLogger(logger)
	return logger, nil
}

func logFormat(useJSON bool) string {
	if useJSON {
		return "json"
	}
	return "plain"
}

// logLevels expands a threshold level name into the list of levels a
// target accepts.
func logLevels(level string) []mlog.Level {
	levels := []mlog.Level{mlog.LvlPanic, mlog.LvlFatal, mlog.LvlCritical, mlog.LvlError}
	switch strings.ToLower(level) {
	case "error":
		return levels
	case "warn":
		return append(levels, mlog.LvlWarn)
	case "debug":
		return append(levels, mlog.LvlWarn, mlog.LvlInfo, mlog.LvlDebug)
	default:
		return append(levels, mlog.LvlWarn, mlog.LvlInfo)
	}
}
