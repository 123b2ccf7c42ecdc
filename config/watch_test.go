package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsAfterWritesSettle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	require.NoError(t, os.WriteFile(path, defaultLevels, 0o644))

	w, err := WatchLevels(path)
	require.NoError(t, err)
	defer w.Close()

	// a save that truncates first leaves a half written file behind briefly
	require.NoError(t, os.WriteFile(path, defaultLevels[:len(defaultLevels)/3], 0o644))
	require.NoError(t, os.WriteFile(path, defaultLevels, 0o644))

	select {
	case table := <-w.Tables:
		assert.Equal(t, Levels.Levels, table.Levels)
	case err := <-w.Errors:
		t.Fatalf("reload failed: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no reload")
	}

	select {
	case err := <-w.Errors:
		t.Fatalf("unexpected reload error: %v", err)
	case <-time.After(2 * watchDebounce):
	}
}
