package entity

import "strings"

// Link is one labeled URL attached to an event, parsed from trailing
// feed columns two at a time.
type Link struct {
	Label string
	URL   string
}

// Event is one row of the event feed. Events are ephemeral: they are
// re-fetched on every poll cycle and never persisted.
type Event struct {
	Name        string
	Description string
	Location    string
	Date        string // human formatted, e.g. "Wednesday, January 24, 2024"
	Time        string // optional, empty means "time unspecified"
	Image       string
	Links       []Link
}

// AnnouncementID derives the deterministic dedup key for this event.
// Commas in the date are replaced so the key stays a single CSV field
// in the log file.
func (e Event) AnnouncementID() string {
	return e.Name + "-" + strings.ReplaceAll(e.Date, ",", "_") + "-" + e.Time
}
