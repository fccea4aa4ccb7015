package scheduler

import (
	"sync"
	"time"
)

// Ticker abstracts the auto-run cadence so the runner is testable without
// wall-clock timers.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type intervalTicker struct {
	t *time.Ticker
}

// NewIntervalTicker wraps time.Ticker for real auto-run at a fixed cadence.
func NewIntervalTicker(d time.Duration) Ticker {
	return &intervalTicker{t: time.NewTicker(d)}
}

func (it *intervalTicker) C() <-chan time.Time { return it.t.C }

func (it *intervalTicker) Stop() { it.t.Stop() }

// Runner drives a Simulator with one Advance per tick delivery. All
// transitions go through a single goroutine, so observers never see a
// partially applied tick.
type Runner struct {
	sim    *Simulator
	ticker Ticker

	mu       sync.Mutex
	started  bool
	stopOnce sync.Once
	stopc    chan struct{}
	done     chan struct{}
}

func NewRunner(sim *Simulator, ticker Ticker) *Runner {
	return &Runner{
		sim:    sim,
		ticker: ticker,
		stopc:  make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start begins consuming ticks in the background. The runner stops on its
// own once the simulation finishes.
func (r *Runner) Start() {
	r.mu.Lock()
	r.started = true
	r.mu.Unlock()
	go r.loop()
}

func (r *Runner) loop() {
	defer close(r.done)
	defer r.ticker.Stop()
	for {
		select {
		case <-r.stopc:
			return
		case <-r.ticker.C():
			r.mu.Lock()
			r.sim.Advance()
			finished := r.sim.Done()
			r.mu.Unlock()
			if finished {
				return
			}
		}
	}
}

// Stop pauses the run and waits for the loop to exit. Safe to call more
// than once, after natural completion, and on a runner that was never
// started (there is no loop to wait for then).
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stopc) })
	r.mu.Lock()
	started := r.started
	r.mu.Unlock()
	if started {
		<-r.done
	}
}

// Done is closed when the loop has exited, either by Stop or completion.
func (r *Runner) Done() <-chan struct{} { return r.done }

// Snapshot reads the simulation state under the runner's lock.
func (r *Runner) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sim.Snapshot()
}
