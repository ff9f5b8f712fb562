package cue

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/semaphore"
)

// DefaultMaxInFlight bounds concurrent playbacks when no limit is given.
const DefaultMaxInFlight = 8

// Dispatcher implements Trigger by playing each cue on its own goroutine.
// Playbacks are fire-and-forget: nobody waits for them and nothing is
// reported back. When MaxInFlight playbacks are already running the new
// cue is dropped.
type Dispatcher struct {
	sink   Sink
	sem    *semaphore.Weighted
	logger *log.Logger

	mu      sync.Mutex
	played  int
	dropped int
	wg      sync.WaitGroup
}

// NewDispatcher creates a dispatcher for the given sink.
// A nil logger disables drop logging.
func NewDispatcher(sink Sink, maxInFlight int, logger *log.Logger) *Dispatcher {
	if maxInFlight <= 0 {
		maxInFlight = DefaultMaxInFlight
	}
	return &Dispatcher{
		sink:   sink,
		sem:    semaphore.NewWeighted(int64(maxInFlight)),
		logger: logger,
	}
}

// Trigger starts playback of id without blocking.
func (d *Dispatcher) Trigger(id ID) {
	if d == nil || d.sink == nil {
		return
	}
	if !d.sem.TryAcquire(1) {
		d.mu.Lock()
		d.dropped++
		d.mu.Unlock()
		if d.logger != nil {
			d.logger.Debug("cue dropped", "cue", id, "sink", d.sink.Name())
		}
		return
	}

	d.mu.Lock()
	d.played++
	d.mu.Unlock()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer d.sem.Release(1)
		d.sink.Play(id)
	}()
}

// Stats returns how many cues were started and how many were dropped.
func (d *Dispatcher) Stats() (played, dropped int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.played, d.dropped
}

// Drain waits until every running playback has finished or ctx is done.
// Only used on shutdown and in tests; the game loop never waits.
func (d *Dispatcher) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Open builds the sinks named in list and returns a dispatcher that plays
// them. The logger in env also receives drop messages.
func Open(list string, env Env, maxInFlight int) (*Dispatcher, error) {
	sinks, err := Build(list, env)
	if err != nil {
		return nil, err
	}
	return NewDispatcher(sinks, maxInFlight, env.Logger), nil
}
