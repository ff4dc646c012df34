package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset() {
	CloseAll()
	setupMu.Lock()
	logsDir = ""
	settings = Settings{}
	logLevel = LevelInfo
	setupMu.Unlock()
}

func TestInitializeDisabledIsNoOp(t *testing.T) {
	t.Cleanup(reset)
	dir := t.TempDir()

	require.NoError(t, Initialize(dir, Settings{Debug: false}))

	_, err := os.Stat(filepath.Join(dir, "logs"))
	assert.True(t, os.IsNotExist(err))
	assert.False(t, IsDebugMode())

	// Logging with debug off must not create anything.
	API("request sent")
	_, err = os.Stat(filepath.Join(dir, "logs"))
	assert.True(t, os.IsNotExist(err))
}

func TestInitializeDebugWritesCategoryFiles(t *testing.T) {
	t.Cleanup(reset)
	dir := t.TempDir()

	require.NoError(t, Initialize(dir, Settings{Debug: true, Level: "debug"}))
	assert.True(t, IsDebugMode())

	Chat("turn started")
	CloseAll()

	entries, err := os.ReadDir(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	found := false
	for _, e := range entries {
		if !strings.Contains(e.Name(), "chat") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, "logs", e.Name()))
		require.NoError(t, err)
		if strings.Contains(string(data), "turn started") {
			found = true
		}
	}
	assert.True(t, found, "expected a chat log file containing the entry")
}

func TestCategoryFilter(t *testing.T) {
	t.Cleanup(reset)
	dir := t.TempDir()

	require.NoError(t, Initialize(dir, Settings{
		Debug:      true,
		Categories: map[string]bool{"api": false},
	}))

	assert.False(t, IsCategoryEnabled(CategoryAPI))
	assert.True(t, IsCategoryEnabled(CategoryChat))
	assert.True(t, IsCategoryEnabled(CategorySession))
}

func TestInitializeRequiresStateDir(t *testing.T) {
	t.Cleanup(reset)
	assert.Error(t, Initialize("", Settings{Debug: true}))
}
