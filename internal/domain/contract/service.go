package contract

import (
	"context"

	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/domain/entity"
)

type AnnouncerService interface {
	// RunPollCycle performs one fetch-classify-dispatch pass. Called by
	// the daily scheduler and never concurrently with itself.
	RunPollCycle(ctx context.Context) error

	// UpcomingEvents returns the current feed rows in feed order.
	UpcomingEvents(ctx context.Context) ([]entity.Event, error)

	// PreviewWarning formats the warning message for the n-th feed row
	// (1-based) without consulting or writing any log.
	PreviewWarning(ctx context.Context, n int) (string, error)

	// Status summarizes today's candidate counts for the status command.
	Status(ctx context.Context) (string, error)
}
