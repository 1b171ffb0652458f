// Package scheduler runs jobs once per day at fixed wall-clock times in a
// fixed timezone.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Clock abstracts the time source so that tests can drive the scheduler
// with a fake one.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// SystemClock returns a Clock backed by the real time package.
func SystemClock() Clock { return systemClock{} }

type job struct {
	name   string
	hour   int
	minute int
	run    func(ctx context.Context)
}

// Scheduler fires each registered job once per day at its configured local
// time. Jobs run sequentially per job slot but independently of each other.
type Scheduler struct {
	clock    Clock
	location *time.Location
	jobs     []job
	wg       sync.WaitGroup
}

func New(clock Clock, location *time.Location) *Scheduler {
	return &Scheduler{
		clock:    clock,
		location: location,
	}
}

// Add registers a daily job. The at argument is a wall-clock time in the
// scheduler's timezone, formatted as "15:04".
func (s *Scheduler) Add(name, at string, run func(ctx context.Context)) error {
	parsed, err := time.Parse("15:04", at)
	if err != nil {
		return fmt.Errorf("invalid schedule time %q for job %s: %w", at, name, err)
	}

	s.jobs = append(s.jobs, job{
		name:   name,
		hour:   parsed.Hour(),
		minute: parsed.Minute(),
		run:    run,
	})
	return nil
}

// Start launches one goroutine per job and returns immediately. The jobs
// stop when ctx is cancelled; Wait blocks until they have all exited.
func (s *Scheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)
		go func(j job) {
			defer s.wg.Done()
			s.runLoop(ctx, j)
		}(j)
	}
}

// Wait blocks until every job goroutine has stopped.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) runLoop(ctx context.Context, j job) {
	for {
		now := s.clock.Now().In(s.location)
		next := NextRun(now, j.hour, j.minute)
		log.WithFields(log.Fields{
			"job":  j.name,
			"next": next.Format(time.RFC3339),
		}).Info("Scheduled next job run")

		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(next.Sub(now)):
			j.run(ctx)
		}
	}
}

// NextRun returns the next occurrence of the given wall-clock time strictly
// after now, in now's location.
func NextRun(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
