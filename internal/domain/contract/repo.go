package contract

import (
	"context"

	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/domain/entity"
)

// AnnouncementLog defines the contract for one dedup log. The bot owns
// three independent instances: announcements, warnings and scheduled
// guild events. There are no cross-log transactions.
type AnnouncementLog interface {
	// Read returns all records in file order. A missing or unreadable
	// file is bootstrap state, not an error: it yields an empty slice.
	Read() []entity.AnnouncementRecord

	// Append adds a single record to the end of the log.
	Append(record entity.AnnouncementRecord) error

	// Write replaces the whole log with the given records.
	Write(records []entity.AnnouncementRecord) error
}

// EventFeed defines the contract for the external event source.
type EventFeed interface {
	FetchEvents(ctx context.Context) ([]entity.Event, error)
}
