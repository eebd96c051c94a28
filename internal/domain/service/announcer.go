package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/domain"
	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/domain/contract"
	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/domain/entity"
	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/metrics"
	"github.com/bwmarrin/discordgo"
)

type announcerService struct {
	feed         contract.EventFeed
	discord      contract.DiscordClient
	announceLog  contract.AnnouncementLog
	warningLog   contract.AnnouncementLog
	scheduledLog contract.AnnouncementLog

	announcementChannelID string
	adminChannelID        string
	guildID               string
	loc                   *time.Location

	now func() time.Time
}

func newAnnouncer(
	feed contract.EventFeed,
	discord contract.DiscordClient,
	announceLog, warningLog, scheduledLog contract.AnnouncementLog,
	announcementChannelID, adminChannelID, guildID string,
	loc *time.Location,
) *announcerService {
	return &announcerService{
		feed:                  feed,
		discord:               discord,
		announceLog:           announceLog,
		warningLog:            warningLog,
		scheduledLog:          scheduledLog,
		announcementChannelID: announcementChannelID,
		adminChannelID:        adminChannelID,
		guildID:               guildID,
		loc:                   loc,
		now:                   time.Now,
	}
}

// RunPollCycle performs one fetch-classify-dispatch pass. A fetch
// failure aborts the whole cycle; the next scheduled trigger retries
// naturally the following day.
func (s *announcerService) RunPollCycle(ctx context.Context) error {
	metrics.PollCycles.Inc()

	events, err := s.feed.FetchEvents(ctx)
	if err != nil {
		metrics.FetchErrors.Inc()
		return fmt.Errorf("failed to fetch events: %w", err)
	}

	today := s.now().In(s.loc)
	classification := classify(events, today, s.announceLog.Read(), s.warningLog.Read())

	log.Printf("Poll cycle: %d events in feed, %d to announce, %d to warn",
		len(events), len(classification.ToAnnounce), len(classification.ToWarn))

	for _, event := range classification.ToAnnounce {
		s.dispatch(s.announcementChannelID, FormatAnnouncement(event), event, s.announceLog)
		metrics.AnnouncementsSent.Inc()
		s.ensureGuildEvent(event, today)
	}

	for _, event := range classification.ToWarn {
		s.dispatch(s.adminChannelID, FormatWarning(event), event, s.warningLog)
		metrics.WarningsSent.Inc()
	}

	return nil
}

// dispatch sends the message and records the action. A failed send
// still writes the record: one Discord hiccup must not cause a repeat
// announcement on the next cycle.
func (s *announcerService) dispatch(channelID, message string, event entity.Event, dedupLog contract.AnnouncementLog) {
	id := event.AnnouncementID()

	if _, err := s.discord.ChannelMessageSend(channelID, message); err != nil {
		log.Printf("Failed to send %s to channel %s: %v", id, channelID, err)
	}

	record := entity.AnnouncementRecord{
		Timestamp:      s.now().In(s.loc),
		AnnouncementID: id,
	}
	if err := dedupLog.Append(record); err != nil {
		log.Printf("Failed to record %s: %v", id, err)
	}
}

// ensureGuildEvent creates a Discord guild scheduled event for a
// week-ahead announcement, at most once per event. Day-of matches are
// skipped: there is nothing left to schedule.
func (s *announcerService) ensureGuildEvent(event entity.Event, today time.Time) {
	if s.guildID == "" {
		return
	}
	if event.Date == today.Format(domain.DateLayout) {
		return
	}

	id := event.AnnouncementID()
	for _, record := range s.scheduledLog.Read() {
		if record.AnnouncementID == id {
			return
		}
	}

	start, err := eventStart(event, s.loc)
	if err != nil {
		log.Printf("Skipping guild event for %s: %v", id, err)
		return
	}
	end := start.Add(domain.DefaultEventDuration)

	location := event.Location
	if location == "" {
		location = "TBD"
	}

	params := &discordgo.GuildScheduledEventParams{
		Name:               event.Name,
		Description:        event.Description,
		ScheduledStartTime: &start,
		ScheduledEndTime:   &end,
		EntityType:         discordgo.GuildScheduledEventEntityTypeExternal,
		EntityMetadata:     &discordgo.GuildScheduledEventEntityMetadata{Location: location},
		PrivacyLevel:       discordgo.GuildScheduledEventPrivacyLevelGuildOnly,
	}

	if _, err := s.discord.GuildScheduledEventCreate(s.guildID, params); err != nil {
		log.Printf("Failed to create guild event for %s: %v", id, err)
		return
	}
	metrics.GuildEventsCreated.Inc()

	record := entity.AnnouncementRecord{
		Timestamp:      s.now().In(s.loc),
		AnnouncementID: id,
	}
	if err := s.scheduledLog.Append(record); err != nil {
		log.Printf("Failed to record guild event %s: %v", id, err)
	}
}

// UpcomingEvents returns the current feed rows in feed order.
func (s *announcerService) UpcomingEvents(ctx context.Context) ([]entity.Event, error) {
	events, err := s.feed.FetchEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	return events, nil
}

// PreviewWarning formats the warning for the n-th feed row (1-based).
// It bypasses the dedup check entirely and writes nothing, so admins
// can re-run it freely.
func (s *announcerService) PreviewWarning(ctx context.Context, n int) (string, error) {
	events, err := s.feed.FetchEvents(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch events: %w", err)
	}

	if n < 1 || n > len(events) {
		return "", fmt.Errorf("no event at position %d (feed has %d)", n, len(events))
	}

	return FormatWarning(events[n-1]), nil
}

// Status summarizes what today's poll cycle would do right now.
func (s *announcerService) Status(ctx context.Context) (string, error) {
	events, err := s.feed.FetchEvents(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch events: %w", err)
	}

	today := s.now().In(s.loc)
	classification := classify(events, today, s.announceLog.Read(), s.warningLog.Read())

	return fmt.Sprintf("%d event(s) in feed, %d pending announcement(s), %d pending warning(s) as of %s",
		len(events), len(classification.ToAnnounce), len(classification.ToWarn),
		today.Format(domain.DateLayout)), nil
}
