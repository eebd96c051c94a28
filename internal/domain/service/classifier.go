package service

import (
	"time"

	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/domain"
	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/domain/entity"
)

// Classification is the outcome of one poll cycle decision: which
// events get a public announcement and which get an admin warning.
// Both slices preserve feed row order.
type Classification struct {
	ToAnnounce []entity.Event
	ToWarn     []entity.Event
}

// classify selects today's actionable events. It is pure: given the
// same events, log contents and date it always returns the same result,
// so running it twice without writing back changes nothing.
//
// Announcements fire on the event date itself and one week ahead (a
// deliberate doubled trigger window). Warnings fire two days before
// each announcement window and go to the admin channel only, so they
// are deduplicated against their own log.
func classify(events []entity.Event, today time.Time, announced, warned []entity.AnnouncementRecord) Classification {
	announceDates := offsetDates(today, domain.AnnounceOffsets)
	warnDates := offsetDates(today, domain.WarnOffsets)

	var c Classification
	for _, event := range events {
		// Rows without the required fields are unclassifiable.
		if event.Name == "" || event.Date == "" {
			continue
		}

		if matchesAny(event.Date, announceDates) && !alreadyHandled(announced, event, announceDates[0], today) {
			c.ToAnnounce = append(c.ToAnnounce, event)
		}

		if matchesAny(event.Date, warnDates) && !alreadyHandled(warned, event, warnDates[0], today) {
			c.ToWarn = append(c.ToWarn, event)
		}
	}

	return c
}

func offsetDates(today time.Time, offsets []int) []string {
	dates := make([]string, len(offsets))
	for i, offset := range offsets {
		dates[i] = today.AddDate(0, 0, offset).Format(domain.DateLayout)
	}
	return dates
}

// matchesAny compares by exact formatted-string equality. An ISO date
// that denotes the same calendar day does not match.
func matchesAny(date string, candidates []string) bool {
	for _, candidate := range candidates {
		if date == candidate {
			return true
		}
	}
	return false
}

// alreadyHandled applies the date-scoped dedup rule. A bare id match
// suppresses only the far-window action; the near-window action (day-of
// for announcements, two-days-out for warnings) is suppressed only by a
// record written today. The id alone is ambiguous between "announced
// the week-ahead teaser" and "announced today", since both derive from
// the same name-date-time triple.
func alreadyHandled(records []entity.AnnouncementRecord, event entity.Event, nearDate string, today time.Time) bool {
	id := event.AnnouncementID()
	for _, record := range records {
		if record.AnnouncementID != id {
			continue
		}
		if event.Date != nearDate || sameDay(record.Timestamp, today) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
