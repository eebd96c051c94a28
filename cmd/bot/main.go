package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/config"
	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/domain/service"
	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/feed"
	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/handlers"
	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/metrics"
	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/storage"
	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
)

const commandPrefix = "!"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		log.Fatalf("Invalid time zone %q: %v", cfg.TimeZone, err)
	}

	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	sheets := feed.NewSheetsClient("", cfg.SheetID, cfg.SheetRange, cfg.GoogleAPIKey, 30*time.Second)

	services := service.NewInstance(
		sheets,
		session,
		storage.NewAnnouncementLog(cfg.AnnouncementLogPath),
		storage.NewAnnouncementLog(cfg.WarningLogPath),
		storage.NewAnnouncementLog(cfg.ScheduledLogPath),
		cfg,
		loc,
	)

	handler := handlers.New(services.Announcer, cfg.AdminChannelID, commandPrefix)
	session.AddHandler(handler.OnMessageCreate)
	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as %s", r.User.Username)
	})

	if err := session.Open(); err != nil {
		log.Fatalf("Failed to open Discord session: %v", err)
	}
	defer session.Close()

	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/metrics", metrics.Handler())

	go func() {
		log.Printf("Metrics server starting on port %s", cfg.MetricsPort)
		if err := http.ListenAndServe(":"+cfg.MetricsPort, mux); err != nil {
			log.Printf("Metrics server stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	log.Println("Shutting down")
}
