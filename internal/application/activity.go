package application

import (
	"context"
	"log"
	"math/rand/v2"
	"time"

	"brettbot/internal/ports/output"
)

// ActivityScheduler rotates the displayed bot activity: every interval it
// picks one entry at random from the configured list and pushes it through
// the StatusSetter. It shares no state with the poll subsystem; a failed
// update is logged and retried on the next tick.
type ActivityScheduler struct {
	setter     output.StatusSetter
	activities []string
	interval   time.Duration
	pick       func(n int) int
}

func NewActivityScheduler(setter output.StatusSetter, activities []string, interval time.Duration) *ActivityScheduler {
	return &ActivityScheduler{
		setter:     setter,
		activities: activities,
		interval:   interval,
		pick:       rand.IntN,
	}
}

// Run ticks until ctx is cancelled. The first activity is set immediately.
func (a *ActivityScheduler) Run(ctx context.Context) {
	if len(a.activities) == 0 {
		log.Println("⚠️ No activities configured, status rotation disabled.")
		return
	}
	a.tick()
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.tick()
		}
	}
}

func (a *ActivityScheduler) tick() {
	activity := a.activities[a.pick(len(a.activities))]
	if err := a.setter.SetActivity(activity); err != nil {
		log.Printf("⚠️ Activity update failed (retrying next tick): %v", err)
		return
	}
	log.Printf("🎲 Activity set to %q.", activity)
}
