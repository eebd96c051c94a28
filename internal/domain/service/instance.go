package service

import (
	"time"

	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/config"
	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/domain/contract"
)

type Instance struct {
	Announcer *announcerService
	Scheduler *scheduler
}

func NewInstance(
	feed contract.EventFeed,
	discord contract.DiscordClient,
	announceLog, warningLog, scheduledLog contract.AnnouncementLog,
	cfg *config.Config,
	loc *time.Location,
) *Instance {
	announcer := newAnnouncer(
		feed, discord,
		announceLog, warningLog, scheduledLog,
		cfg.AnnouncementChannelID, cfg.AdminChannelID, cfg.GuildID,
		loc,
	)

	return &Instance{
		Announcer: announcer,
		Scheduler: newScheduler(announcer, cfg.AnnounceHour, cfg.AnnounceMinute, loc),
	}
}
