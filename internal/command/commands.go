package command

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdPing    CommandType = "ping"
	CmdList    CommandType = "list"
	CmdPreview CommandType = "preview"
	CmdStatus  CommandType = "status"
	CmdHelp    CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// Parse interprets the text after the command prefix.
func Parse(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "ping":
		cmd.Type = CmdPing
	case "list", "ls", "events":
		cmd.Type = CmdList
	case "preview":
		cmd.Type = CmdPreview
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "status":
		cmd.Type = CmdStatus
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

• ` + "`!ping`" + ` - Check that the bot is alive
• ` + "`!list`" + ` - List the events currently in the feed
• ` + "`!preview N`" + ` - Preview the warning for the N-th event (admin channel only)
• ` + "`!status`" + ` - Show what today's poll cycle would do
• ` + "`!help`" + ` - Show this message`
}
