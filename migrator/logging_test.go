// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package migrator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevels(t *testing.T) {
	assert.Len(t, logLevels("ERROR"), 4)
	assert.Contains(t, logLevels("warn"), mlog.LvlWarn)
	assert.NotContains(t, logLevels("warn"), mlog.LvlInfo)
	assert.Contains(t, logLevels("DEBUG"), mlog.LvlDebug)
	assert.Contains(t, logLevels(""), mlog.LvlInfo)
	assert.NotContains(t, logLevels(""), mlog.LvlDebug)
}

func TestGetLogFileLocation(t *testing.T) {
	assert.Equal(t, LogFilename, GetLogFileLocation(""))
	assert.Equal(t, filepath.Join("/var/log", LogFilename), GetLogFileLocation("/var/log"))
}

func TestSetupLogging(t *testing.T) {
	dir := t.TempDir()
	config := &Config{LogSettings: LogSettings{
		EnableFile:   true,
		FileJSON:     true,
		FileLevel:    "INFO",
		FileLocation: dir,
	}}

	logger, err := SetupLogging(config)
	require.NoError(t, err)
	defer func() {
		quiet, err := mlog.NewLogger()
		require.NoError(t, err)
		mlog.InitGlobalLogger(quiet)
	}()

	mlog.Info("Written to the file", mlog.String("run_id", "abc"))
	mlog.Debug("Below the threshold")
	require.NoError(t, logger.Shutdown())

	data, err := os.ReadFile(filepath.Join(dir, LogFilename))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Written to the file")
	assert.Contains(t, string(data), `"run_id":"abc"`)
	assert.NotContains(t, string(data), "Below the threshold")
}
