package config

import (
	"os"
	"strconv"
)

type Config struct {
	DiscordBotToken       string
	GuildID               string
	AnnouncementChannelID string
	AdminChannelID        string
	SheetID               string
	SheetRange            string
	GoogleAPIKey          string
	AnnouncementLogPath   string
	WarningLogPath        string
	ScheduledLogPath      string
	AnnounceHour          int
	AnnounceMinute        int
	TimeZone              string
	MetricsPort           string
}

func Load() *Config {
	return &Config{
		DiscordBotToken:       getEnv("DISCORD_BOT_TOKEN", ""),
		GuildID:               getEnv("DISCORD_GUILD_ID", ""),
		AnnouncementChannelID: getEnv("ANNOUNCEMENT_CHANNEL_ID", ""),
		AdminChannelID:        getEnv("ADMIN_CHANNEL_ID", ""),
		SheetID:               getEnv("SHEET_ID", ""),
		SheetRange:            getEnv("SHEET_RANGE", "Events!A2:Z"),
		GoogleAPIKey:          getEnv("GOOGLE_API_KEY", ""),
		AnnouncementLogPath:   getEnv("ANNOUNCEMENT_LOG_PATH", "./logs/announcements.log"),
		WarningLogPath:        getEnv("WARNING_LOG_PATH", "./logs/warnings.log"),
		ScheduledLogPath:      getEnv("SCHEDULED_LOG_PATH", "./logs/scheduled.log"),
		AnnounceHour:          getEnvInt("ANNOUNCE_HOUR", 10),
		AnnounceMinute:        getEnvInt("ANNOUNCE_MINUTE", 0),
		TimeZone:              getEnv("TIME_ZONE", "America/Chicago"),
		MetricsPort:           getEnv("METRICS_PORT", "8088"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
