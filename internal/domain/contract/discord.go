package contract

import "github.com/bwmarrin/discordgo"

// DiscordClient defines the interface for Discord operations.
// This allows mocking in tests while keeping the real implementation
// simple; *discordgo.Session satisfies it directly.
type DiscordClient interface {
	// ChannelMessageSend sends a message to a Discord channel
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)

	// GuildScheduledEventCreate creates a scheduled event in a guild
	GuildScheduledEventCreate(guildID string, event *discordgo.GuildScheduledEventParams, options ...discordgo.RequestOption) (*discordgo.GuildScheduledEvent, error)
}
