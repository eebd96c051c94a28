package service

import (
	"context"
	"log"
	"time"

	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/domain/contract"
)

// scheduler fires one poll cycle per day at a fixed wall-clock time.
// Only one timer is pending at a time and the next one is armed only
// after the cycle finishes, so overlapping polls cannot occur.
type scheduler struct {
	announcer contract.AnnouncerService
	hour      int
	minute    int
	loc       *time.Location
	stopChan  chan struct{}
	running   bool
}

func newScheduler(announcer contract.AnnouncerService, hour, minute int, loc *time.Location) *scheduler {
	return &scheduler{
		announcer: announcer,
		hour:      hour,
		minute:    minute,
		loc:       loc,
		stopChan:  make(chan struct{}),
	}
}

func (s *scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	log.Println("Scheduler starting...")
	go s.mainLoop()
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	log.Println("Scheduler stopping...")
	close(s.stopChan)
	s.running = false
}

func (s *scheduler) mainLoop() {
	for {
		// Re-arming from a fresh time.Now on every pass keeps the
		// schedule anchored to wall-clock time instead of accumulating
		// drift from however long the previous cycle took.
		next := nextRunTime(time.Now().In(s.loc), s.hour, s.minute)
		log.Printf("Next poll cycle at %s", next.Format("2006-01-02 15:04:05 MST"))

		timer := time.NewTimer(time.Until(next))

		select {
		case <-timer.C:
			s.runOnce()

		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

// runOnce isolates the poll cycle from the schedule loop. Whatever the
// cycle does, including panicking, the loop re-arms.
func (s *scheduler) runOnce() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Poll cycle panicked: %v", r)
		}
	}()

	if err := s.announcer.RunPollCycle(context.Background()); err != nil {
		log.Printf("Poll cycle failed: %v", err)
	}
}

// nextRunTime returns the next occurrence of hour:minute in now's
// location: today if that instant is still ahead, otherwise the same
// wall-clock time tomorrow.
func nextRunTime(now time.Time, hour, minute int) time.Time {
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}
