package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PollCycles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_poll_cycles_total",
		Help: "Number of daily poll cycles executed.",
	})

	FetchErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_feed_fetch_errors_total",
		Help: "Number of event feed fetches that failed.",
	})

	AnnouncementsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_announcements_sent_total",
		Help: "Number of public announcements dispatched.",
	})

	WarningsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_warnings_sent_total",
		Help: "Number of admin warning previews dispatched.",
	})

	GuildEventsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_guild_events_created_total",
		Help: "Number of Discord guild scheduled events created.",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
