package core

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournal_AddHasRemove(t *testing.T) {
	j := NewJournal(filepath.Join(t.TempDir(), "journal.json"))
	h := j.Job("nightly")

	assert.False(t, h.Has("report.txt"))
	h.Add("report.txt")
	assert.True(t, h.Has("report.txt"))

	when, ok := h.When("report.txt")
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now(), when, time.Minute)

	h.Remove("report.txt")
	assert.False(t, h.Has("report.txt"))
}

func TestJournal_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")

	j := NewJournal(path)
	j.Job("nightly").Add("report.txt")
	require.NoError(t, j.Save())

	reloaded := NewJournal(path)
	require.NoError(t, reloaded.Load())
	assert.True(t, reloaded.Job("nightly").Has("report.txt"))
}

func TestJournal_LoadMissingFileIsFine(t *testing.T) {
	j := NewJournal(filepath.Join(t.TempDir(), "absent.json"))
	assert.NoError(t, j.Load())
}

func TestJobHistory_OlderThan(t *testing.T) {
	h := &JobHistory{Records: map[string]time.Time{
		"old.txt":    time.Now().AddDate(0, 0, -10),
		"recent.txt": time.Now(),
	}}

	stale := h.olderThan(time.Now().AddDate(0, 0, -7))
	assert.Equal(t, []string{"old.txt"}, stale)
}
