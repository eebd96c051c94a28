package domain

import "time"

// Feed dates are compared as formatted strings, never as parsed times.
// Any comparison date must be rendered with this exact layout or the
// match silently fails.
const DateLayout = "Monday, January 02, 2006"

// LogTimeLayout is the timestamp format of dedup log lines.
const LogTimeLayout = "2006-01-02 15:04:05"

// CalendarTimeLayout is the Google Calendar deep-link time encoding.
const CalendarTimeLayout = "20060102T150405"

// CalendarDateLayout is the all-day variant used when an event has no time.
const CalendarDateLayout = "20060102"

// AnnounceOffsets are the day offsets from today that trigger a public
// announcement: day-of and one week ahead.
var AnnounceOffsets = []int{0, 7}

// WarnOffsets are the day offsets that trigger an admin-only warning
// preview, two days before each announcement window.
var WarnOffsets = []int{2, 9}

// DefaultEventDuration is the assumed length of an event when building
// calendar links and guild scheduled events.
const DefaultEventDuration = 2 * time.Hour
