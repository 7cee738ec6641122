package services

import (
	"log"
	"time"
	"workout-server/repositories"
)

// Sweeper deletes abandoned workout drafts: non-template workouts that
// still have zero sets once the grace period has passed. The client does
// a best-effort delete on session teardown, but that hook is unreliable
// (crash, closed tab), so the server sweep is the guarantee.
type Sweeper struct {
	workouts repositories.WorkoutRepository
	grace    time.Duration
	interval time.Duration
	stop     chan struct{}
}

func NewSweeper(workouts repositories.WorkoutRepository) *Sweeper {
	return &Sweeper{
		workouts: workouts,
		grace:    time.Minute,
		interval: time.Minute,
		stop:     make(chan struct{}),
	}
}

func (s *Sweeper) Start() {
	ticker := time.NewTicker(s.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *Sweeper) Stop() {
	close(s.stop)
}

// Sweep runs one pass and reports how many workouts were removed.
func (s *Sweeper) Sweep() int {
	cutoff := time.Now().Add(-s.grace)
	stale, err := s.workouts.GetEmptyOlderThan(cutoff)
	if err != nil {
		log.Printf("Error listing abandoned workouts: %v", err)
		return 0
	}

	removed := 0
	for _, w := range stale {
		if err := s.workouts.Delete(w.ID); err != nil {
			log.Printf("Error deleting abandoned workout %s: %v", w.ID, err)
			continue
		}
		removed++
	}
	if removed > 0 {
		log.Printf("Removed %d abandoned workout(s)", removed)
	}
	return removed
}
