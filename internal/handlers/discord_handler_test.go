package handlers_test

import (
	"errors"
	"testing"

	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/domain/entity"
	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/handlers"
	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	adminChannelID  = "C-ADMIN"
	publicChannelID = "C-PUBLIC"
)

func getHandlerTest(t *testing.T) (m *mocks.MockAnnouncerService, handler *handlers.DiscordHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = mocks.NewMockAnnouncerService(ctrl)
	handler = handlers.New(m, adminChannelID, "!")

	return
}

func TestDiscordHandler_Handle(t *testing.T) {
	type args struct {
		content   string
		channelID string
	}

	tests := []struct {
		name       string
		args       args
		buildMocks func(m *mocks.MockAnnouncerService, args args)
		checkReply func(t *testing.T, reply string)
	}{
		{
			name: "Should ignore messages without the prefix",
			args: args{content: "hello there", channelID: publicChannelID},
			checkReply: func(t *testing.T, reply string) {
				assert.Empty(t, reply)
			},
		},
		{
			name: "Should reply pong to ping",
			args: args{content: "!ping", channelID: publicChannelID},
			checkReply: func(t *testing.T, reply string) {
				assert.Equal(t, "Pong!", reply)
			},
		},
		{
			name: "Should reply with help for unknown commands",
			args: args{content: "!dance", channelID: publicChannelID},
			checkReply: func(t *testing.T, reply string) {
				assert.Contains(t, reply, "❌")
				assert.Contains(t, reply, "unknown command")
			},
		},
		{
			name: "Should list feed events",
			args: args{content: "!list", channelID: publicChannelID},
			buildMocks: func(m *mocks.MockAnnouncerService, args args) {
				m.EXPECT().UpcomingEvents(gomock.Any()).Return([]entity.Event{
					{Name: "GBM", Date: "Wednesday, January 24, 2024", Time: "6:00 PM"},
					{Name: "Tutoring", Date: "Friday, January 26, 2024"},
				}, nil).Times(1)
			},
			checkReply: func(t *testing.T, reply string) {
				assert.Contains(t, reply, "1. **GBM** - Wednesday, January 24, 2024 at 6:00 PM")
				assert.Contains(t, reply, "2. **Tutoring** - Friday, January 26, 2024")
			},
		},
		{
			name: "Should report an empty feed",
			args: args{content: "!list", channelID: publicChannelID},
			buildMocks: func(m *mocks.MockAnnouncerService, args args) {
				m.EXPECT().UpcomingEvents(gomock.Any()).Return(nil, nil).Times(1)
			},
			checkReply: func(t *testing.T, reply string) {
				assert.Equal(t, "No events in the feed.", reply)
			},
		},
		{
			name: "Should surface feed failures on list",
			args: args{content: "!list", channelID: publicChannelID},
			buildMocks: func(m *mocks.MockAnnouncerService, args args) {
				m.EXPECT().UpcomingEvents(gomock.Any()).
					Return(nil, errors.New("http 500")).Times(1)
			},
			checkReply: func(t *testing.T, reply string) {
				assert.Contains(t, reply, "❌")
			},
		},
		{
			name: "Should deny preview outside the admin channel",
			args: args{content: "!preview 1", channelID: publicChannelID},
			checkReply: func(t *testing.T, reply string) {
				assert.Contains(t, reply, "admin channel")
			},
		},
		{
			name: "Should preview a warning in the admin channel",
			args: args{content: "!preview 2", channelID: adminChannelID},
			buildMocks: func(m *mocks.MockAnnouncerService, args args) {
				m.EXPECT().PreviewWarning(gomock.Any(), 2).
					Return("⚠️ preview body", nil).Times(1)
			},
			checkReply: func(t *testing.T, reply string) {
				assert.Equal(t, "⚠️ preview body", reply)
			},
		},
		{
			name: "Should require a preview argument",
			args: args{content: "!preview", channelID: adminChannelID},
			checkReply: func(t *testing.T, reply string) {
				assert.Contains(t, reply, "Usage")
			},
		},
		{
			name: "Should reject a non numeric preview argument",
			args: args{content: "!preview two", channelID: adminChannelID},
			checkReply: func(t *testing.T, reply string) {
				assert.Contains(t, reply, "Invalid event number")
			},
		},
		{
			name: "Should return the status summary",
			args: args{content: "!status", channelID: publicChannelID},
			buildMocks: func(m *mocks.MockAnnouncerService, args args) {
				m.EXPECT().Status(gomock.Any()).
					Return("3 event(s) in feed", nil).Times(1)
			},
			checkReply: func(t *testing.T, reply string) {
				assert.Equal(t, "3 event(s) in feed", reply)
			},
		},
		{
			name: "Should show help",
			args: args{content: "!help", channelID: publicChannelID},
			checkReply: func(t *testing.T, reply string) {
				assert.Contains(t, reply, "Available Commands")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := getHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(m, tt.args)
			}

			reply := handler.Handle(tt.args.content, tt.args.channelID)

			tt.checkReply(t, reply)
		})
	}
}
