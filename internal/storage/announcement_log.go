package storage

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/domain"
	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/domain/contract"
	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/domain/entity"
)

// AnnouncementLog is a flat line-oriented dedup log. Each line is
// "2006-01-02 15:04:05,<announcementId>". Records are never deleted or
// compacted; the file is the only durable state the bot owns.
//
// The design assumes a single process. The mutex only serializes the
// scheduler goroutine against command handlers inside that process.
type AnnouncementLog struct {
	path string
	mu   sync.Mutex
}

func NewAnnouncementLog(path string) *AnnouncementLog {
	return &AnnouncementLog{path: path}
}

var _ contract.AnnouncementLog = (*AnnouncementLog)(nil)

// Read returns all records in file order. A missing file is bootstrap
// state: it yields an empty slice, and so does any other read failure.
func (l *AnnouncementLog) Read() []entity.AnnouncementRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := os.ReadFile(l.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read log %s, treating as empty: %v", l.path, err)
		}
		return nil
	}

	var records []entity.AnnouncementRecord
	for _, line := range strings.Split(string(data), "\n") {
		record, ok := parseLine(line)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	return records
}

// Append adds a single record to the end of the log, creating the file
// if needed.
func (l *AnnouncementLog) Append(record entity.AnnouncementRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log %s: %w", l.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(formatLine(record) + "\n"); err != nil {
		return fmt.Errorf("failed to append to log %s: %w", l.path, err)
	}

	return nil
}

// Write replaces the whole log with the given records.
func (l *AnnouncementLog) Write(records []entity.AnnouncementRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	var sb strings.Builder
	for _, record := range records {
		sb.WriteString(formatLine(record))
		sb.WriteString("\n")
	}

	if err := os.WriteFile(l.path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write log %s: %w", l.path, err)
	}

	return nil
}

func formatLine(record entity.AnnouncementRecord) string {
	return record.Timestamp.Format(domain.LogTimeLayout) + "," + record.AnnouncementID
}

// parseLine splits "timestamp,id". The id itself never contains
// uncontrolled commas (the date portion is sanitized before logging),
// but SplitN keeps any that slip through inside the id.
func parseLine(line string) (entity.AnnouncementRecord, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return entity.AnnouncementRecord{}, false
	}

	parts := strings.SplitN(line, ",", 2)
	if len(parts) != 2 {
		return entity.AnnouncementRecord{}, false
	}

	ts, err := time.Parse(domain.LogTimeLayout, parts[0])
	if err != nil {
		return entity.AnnouncementRecord{}, false
	}

	return entity.AnnouncementRecord{
		Timestamp:      ts,
		AnnouncementID: parts[1],
	}, true
}
