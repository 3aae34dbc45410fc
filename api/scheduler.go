/*
scheduler.go - Automated challenge rotation scheduler

PURPOSE:
  Periodically refreshes the active challenge set so expired daily,
  weekly, and monthly instances roll over to new ones even when the user
  is idle. Without it, rotation only happens lazily on the next
  challenge read or receipt submission.

DESIGN:
  - Runs a background goroutine with configurable check interval
  - Delegates to the handler's refresh path, so scheduled rotation and
    lazy rotation share one code path (including completion awards)
  - Safe to run alongside request traffic: the handler's mutex
    serializes it with submissions

CONFIGURATION:
  - CheckInterval: How often to check (default: 15 minutes)
  - Enabled: Whether scheduler is active (default: true)

USAGE:
  scheduler := NewChallengeScheduler(handler)
  scheduler.Start()
  // ... later
  scheduler.Stop()

SEE ALSO:
  - handlers.go: refreshChallenges (shared rotation logic)
*/
package api

import (
	"context"
	"log"
	"sync"
	"time"
)

// ChallengeScheduler rotates expired challenges in the background.
type ChallengeScheduler struct {
	Handler       *Handler
	CheckInterval time.Duration
	Enabled       bool

	ticker *time.Ticker
	stop   chan bool
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewChallengeScheduler creates a new scheduler.
func NewChallengeScheduler(handler *Handler) *ChallengeScheduler {
	return &ChallengeScheduler{
		Handler:       handler,
		CheckInterval: 15 * time.Minute,
		Enabled:       true,
		stop:          make(chan bool),
	}
}

// Start begins the scheduler.
func (cs *ChallengeScheduler) Start() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if !cs.Enabled {
		log.Println("[Scheduler] Disabled, not starting")
		return
	}

	cs.ticker = time.NewTicker(cs.CheckInterval)
	cs.wg.Add(1)

	go cs.run()

	log.Printf("[Scheduler] Started with check interval: %v", cs.CheckInterval)
}

// Stop stops the scheduler.
func (cs *ChallengeScheduler) Stop() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.ticker != nil {
		cs.ticker.Stop()
		close(cs.stop)
		cs.wg.Wait()
		log.Println("[Scheduler] Stopped")
	}
}

func (cs *ChallengeScheduler) run() {
	defer cs.wg.Done()

	// Run immediately on start
	cs.rotate()

	for {
		select {
		case <-cs.ticker.C:
			cs.rotate()
		case <-cs.stop:
			return
		}
	}
}

func (cs *ChallengeScheduler) rotate() {
	ctx := context.Background()
	now := cs.Handler.Clock()

	cs.Handler.mu.Lock()
	active, completed, err := cs.Handler.refreshChallenges(ctx, now)
	cs.Handler.mu.Unlock()

	if err != nil {
		log.Printf("[Scheduler] Error rotating challenges: %v", err)
		return
	}
	if len(completed) > 0 {
		log.Printf("[Scheduler] Rotated challenges: %d active, %d completed", len(active), len(completed))
	}
}

// RunNow triggers an immediate rotation (for testing/admin).
func (cs *ChallengeScheduler) RunNow() {
	cs.rotate()
}
