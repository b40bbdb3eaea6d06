package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmair/linkdrop/shared/models"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := NewStorage(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func record(id, url, outcome string, created time.Time) *models.Record {
	return &models.Record{
		RecordID:   id,
		URL:        url,
		Action:     "clipboard",
		Outcome:    outcome,
		CreatedUTC: created,
	}
}

func TestRecentOnEmptyLog(t *testing.T) {
	s := openTestStorage(t)

	records, err := s.Recent(10)

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestInsertAndRecentNewestFirst(t *testing.T) {
	s := openTestStorage(t)

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Insert(record("r1", "https://one.example", "copied_to_clipboard", base)))
	require.NoError(t, s.Insert(record("r2", "https://two.example", "launched", base.Add(time.Minute))))
	require.NoError(t, s.Insert(record("r3", "https://three.example", "launch_failed", base.Add(2*time.Minute))))

	records, err := s.Recent(2)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "r3", records[0].RecordID)
	assert.Equal(t, "r2", records[1].RecordID)
	assert.Equal(t, base.Add(2*time.Minute), records[0].CreatedUTC)
}

func TestInsertDuplicateRecordIDIsIgnored(t *testing.T) {
	s := openTestStorage(t)

	created := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Insert(record("same", "https://first.example", "copied_to_clipboard", created)))
	require.NoError(t, s.Insert(record("same", "https://second.example", "launched", created)))

	records, err := s.Recent(10)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "https://first.example", records[0].URL)
}

func TestReopenPreservesRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := NewStorage(path)
	require.NoError(t, err)
	require.NoError(t, s.Insert(record("r1", "https://kept.example", "launched",
		time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))))
	require.NoError(t, s.Close())

	reopened, err := NewStorage(path)
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.Recent(10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "https://kept.example", records[0].URL)
}
