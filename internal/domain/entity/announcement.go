package entity

import "time"

// AnnouncementRecord is one line of a dedup log: when an action was
// taken and the id it was taken for. Records are append-only and never
// evicted.
type AnnouncementRecord struct {
	Timestamp      time.Time
	AnnouncementID string
}
