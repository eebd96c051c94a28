package service

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/domain"
	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/domain/entity"
)

// clockLayouts are the accepted spellings of the feed's time column.
// time.Parse handles the AM/PM to 24-hour adjustment.
var clockLayouts = []string{"3:04 PM", "3:04PM", "3 PM", "3PM", "15:04"}

// FormatAnnouncement renders the public announcement for an event.
// Pure and deterministic given the event.
func FormatAnnouncement(event entity.Event) string {
	return "@everyone\n" + formatBody(event)
}

// FormatWarning renders the admin-only preview sent ahead of an
// announcement.
func FormatWarning(event entity.Event) string {
	header := fmt.Sprintf(
		"⚠️ **Upcoming announcement** for %s. Review before it goes public:\n\n",
		dateWithoutYear(event.Date))
	return header + formatBody(event)
}

func formatBody(event entity.Event) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("**%s** - %s", event.Name, dateWithoutYear(event.Date)))
	if event.Time != "" {
		sb.WriteString(fmt.Sprintf(" at **%s**", event.Time))
	}
	sb.WriteString("\n")

	if event.Description != "" {
		sb.WriteString("\n" + event.Description + "\n")
	}

	if event.Location != "" {
		sb.WriteString(fmt.Sprintf("\nLocation: %s\n", event.Location))
		sb.WriteString(fmt.Sprintf("Directions: <%s>\n", directionsLink(event.Location)))
	}

	if calendar := calendarLink(event); calendar != "" {
		sb.WriteString(fmt.Sprintf("Add to calendar: <%s>\n", calendar))
	}

	for _, link := range event.Links {
		sb.WriteString(fmt.Sprintf("%s: <%s>\n", link.Label, link.URL))
	}

	// Bare trailing URL so Discord renders the image embed.
	if event.Image != "" {
		sb.WriteString(event.Image + "\n")
	}

	return sb.String()
}

// dateWithoutYear strips the trailing year segment from a feed date,
// e.g. "Wednesday, January 24, 2024" becomes "Wednesday, January 24".
func dateWithoutYear(date string) string {
	if idx := strings.LastIndex(date, ","); idx >= 0 {
		return date[:idx]
	}
	return date
}

func directionsLink(location string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(location)
}

// calendarLink builds a Google Calendar deep link for the event, or
// empty when the event date cannot be parsed back from its feed form.
func calendarLink(event entity.Event) string {
	dates := calendarDates(event.Date, event.Time)
	if dates == "" {
		return ""
	}

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", event.Name)
	q.Set("dates", dates)
	q.Set("details", event.Description)
	q.Set("location", event.Location)

	return "https://calendar.google.com/calendar/render?" + q.Encode()
}

// calendarDates encodes the event as a YYYYMMDDTHHMMSS/YYYYMMDDTHHMMSS
// range with a fixed two-hour duration, or as an all-day range when the
// time column is empty or unreadable.
func calendarDates(date, clock string) string {
	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return ""
	}

	hour, minute, ok := parseClock(clock)
	if !ok {
		next := day.AddDate(0, 0, 1)
		return day.Format(domain.CalendarDateLayout) + "/" + next.Format(domain.CalendarDateLayout)
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
	end := start.Add(domain.DefaultEventDuration)
	return start.Format(domain.CalendarTimeLayout) + "/" + end.Format(domain.CalendarTimeLayout)
}

func parseClock(clock string) (hour, minute int, ok bool) {
	clock = strings.ToUpper(strings.TrimSpace(clock))
	if clock == "" {
		return 0, 0, false
	}

	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, clock); err == nil {
			return t.Hour(), t.Minute(), true
		}
	}

	return 0, 0, false
}

// eventStart resolves the event's wall-clock start in the given
// location, used when creating guild scheduled events.
func eventStart(event entity.Event, loc *time.Location) (time.Time, error) {
	day, err := time.Parse(domain.DateLayout, event.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable event date %q: %w", event.Date, err)
	}

	hour, minute, ok := parseClock(event.Time)
	if !ok && event.Time != "" {
		return time.Time{}, fmt.Errorf("unparseable event time %q", event.Time)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), nil
}
