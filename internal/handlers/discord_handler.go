package handlers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/command"
	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/domain/contract"
	"github.com/bwmarrin/discordgo"
)

type DiscordHandler struct {
	announcer      contract.AnnouncerService
	adminChannelID string
	prefix         string
}

func New(announcer contract.AnnouncerService, adminChannelID, prefix string) *DiscordHandler {
	return &DiscordHandler{
		announcer:      announcer,
		adminChannelID: adminChannelID,
		prefix:         prefix,
	}
}

// OnMessageCreate is registered with discordgo.Session.AddHandler.
func (h *DiscordHandler) OnMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore messages from other bots
	if m.Author == nil || m.Author.Bot {
		return
	}

	reply := h.Handle(m.Content, m.ChannelID)
	if reply == "" {
		return
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		log.Printf("Failed to reply in channel %s: %v", m.ChannelID, err)
	}
}

// Handle parses a raw message and returns the reply text, or empty
// when the message is not a bot command.
func (h *DiscordHandler) Handle(content, channelID string) string {
	if !strings.HasPrefix(content, h.prefix) {
		return ""
	}

	cmd, err := command.Parse(strings.TrimPrefix(content, h.prefix))
	if err != nil {
		return h.errorResponse(err.Error())
	}

	switch cmd.Type {
	case command.CmdPing:
		return "Pong!"
	case command.CmdList:
		return h.handleList()
	case command.CmdPreview:
		return h.handlePreview(cmd, channelID)
	case command.CmdStatus:
		return h.handleStatus()
	case command.CmdHelp:
		return command.GetHelpText()
	default:
		return command.GetHelpText()
	}
}

func (h *DiscordHandler) handleList() string {
	events, err := h.announcer.UpcomingEvents(context.Background())
	if err != nil {
		return h.errorResponse("Could not fetch the event feed")
	}

	if len(events) == 0 {
		return "No events in the feed."
	}

	var sb strings.Builder
	sb.WriteString("*Events in the feed:*\n")
	for i, event := range events {
		sb.WriteString(fmt.Sprintf("%d. **%s** - %s", i+1, event.Name, event.Date))
		if event.Time != "" {
			sb.WriteString(fmt.Sprintf(" at %s", event.Time))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (h *DiscordHandler) handlePreview(cmd *command.Command, channelID string) string {
	if channelID != h.adminChannelID {
		return h.errorResponse("Preview is only available in the admin channel")
	}

	if len(cmd.Args) == 0 {
		return h.errorResponse("Usage: `!preview N` where N is the event's position in `!list`")
	}

	n, err := strconv.Atoi(cmd.Args[0])
	if err != nil {
		return h.errorResponse(fmt.Sprintf("Invalid event number: %s", cmd.Args[0]))
	}

	preview, err := h.announcer.PreviewWarning(context.Background(), n)
	if err != nil {
		return h.errorResponse(fmt.Sprintf("Could not build preview: %v", err))
	}

	return preview
}

func (h *DiscordHandler) handleStatus() string {
	status, err := h.announcer.Status(context.Background())
	if err != nil {
		return h.errorResponse("Could not fetch the event feed")
	}
	return status
}

func (h *DiscordHandler) errorResponse(message string) string {
	return fmt.Sprintf("❌ %s", message)
}
