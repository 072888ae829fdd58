package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLog(t *testing.T) {
	t.Cleanup(func() {
		Log.ReplaceHooks(make(logrus.LevelHooks))
		Log.SetLevel(logrus.InfoLevel)
	})
}

func TestSetupWithoutFile(t *testing.T) {
	resetLog(t)

	hook, err := Setup(Config{Level: "debug"})
	require.NoError(t, err)
	assert.Nil(t, hook)
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
}

func TestSetupWritesFile(t *testing.T) {
	resetLog(t)
	path := filepath.Join(t.TempDir(), "termsweep.log")

	hook, err := Setup(Config{File: path, Level: "info", MaxSize: 1})
	require.NoError(t, err)
	require.NotNil(t, hook)

	Log.WithField("difficulty", "hard").Info("new game")
	Log.Debug("not written")

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "logging initialized")
	assert.Contains(t, string(contents), "difficulty=hard")
	assert.NotContains(t, string(contents), "not written")
}

func TestSetupInvalidLevel(t *testing.T) {
	resetLog(t)

	_, err := Setup(Config{Level: "loud"})
	assert.Error(t, err)
}
