package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLog(t *testing.T) *AnnouncementLog {
	t.Helper()
	return NewAnnouncementLog(filepath.Join(t.TempDir(), "announcements.log"))
}

func record(ts string, id string) entity.AnnouncementRecord {
	t, err := time.Parse("2006-01-02 15:04:05", ts)
	if err != nil {
		panic(err)
	}
	return entity.AnnouncementRecord{Timestamp: t, AnnouncementID: id}
}

func TestAnnouncementLog_Read_missingFile(t *testing.T) {
	l := testLog(t)

	got := l.Read()

	assert.Empty(t, got)
}

func TestAnnouncementLog_roundTrip(t *testing.T) {
	l := testLog(t)

	records := []entity.AnnouncementRecord{
		record("2024-01-17 10:00:00", "GBM-Wednesday_ January 17_ 2024-6:00 PM"),
		record("2024-01-17 10:00:01", "Mixer-Wednesday_ January 24_ 2024-5:00 PM"),
	}

	require.NoError(t, l.Write(records))

	got := l.Read()

	assert.Equal(t, records, got)
}

func TestAnnouncementLog_Write_replaces(t *testing.T) {
	l := testLog(t)

	require.NoError(t, l.Write([]entity.AnnouncementRecord{
		record("2024-01-10 10:00:00", "old-id"),
	}))
	require.NoError(t, l.Write([]entity.AnnouncementRecord{
		record("2024-01-17 10:00:00", "new-id"),
	}))

	got := l.Read()

	require.Len(t, got, 1)
	assert.Equal(t, "new-id", got[0].AnnouncementID)
}

func TestAnnouncementLog_Append(t *testing.T) {
	l := testLog(t)

	first := record("2024-01-17 10:00:00", "first-id")
	second := record("2024-01-18 10:00:00", "second-id")

	require.NoError(t, l.Append(first))
	require.NoError(t, l.Append(second))

	got := l.Read()

	require.Len(t, got, 2)
	assert.Equal(t, first, got[0])
	assert.Equal(t, second, got[1])
}

func TestAnnouncementLog_Append_afterWrite(t *testing.T) {
	l := testLog(t)

	require.NoError(t, l.Write([]entity.AnnouncementRecord{
		record("2024-01-17 10:00:00", "written-id"),
	}))
	require.NoError(t, l.Append(record("2024-01-18 10:00:00", "appended-id")))

	got := l.Read()

	require.Len(t, got, 2)
	assert.Equal(t, "written-id", got[0].AnnouncementID)
	assert.Equal(t, "appended-id", got[1].AnnouncementID)
}

func TestAnnouncementLog_Read_skipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "announcements.log")
	content := "2024-01-17 10:00:00,good-id\n" +
		"not a record at all\n" +
		"also-no-timestamp,id\n" +
		"\n" +
		"2024-01-18 10:00:00,another-id\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	l := NewAnnouncementLog(path)

	got := l.Read()

	require.Len(t, got, 2)
	assert.Equal(t, "good-id", got[0].AnnouncementID)
	assert.Equal(t, "another-id", got[1].AnnouncementID)
}

func TestAnnouncementLog_fileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "announcements.log")
	l := NewAnnouncementLog(path)

	require.NoError(t, l.Append(record("2024-01-17 10:00:00", "GBM-Wednesday_ January 17_ 2024-6:00 PM")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-17 10:00:00,GBM-Wednesday_ January 17_ 2024-6:00 PM\n", string(data))
}

func TestAnnouncementLog_Append_createsDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "logs", "announcements.log")
	l := NewAnnouncementLog(path)

	require.NoError(t, l.Append(record("2024-01-17 10:00:00", "some-id")))

	got := l.Read()

	require.Len(t, got, 1)
}
