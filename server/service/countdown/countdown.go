// Package countdown computes time remaining until a target date and
// broadcasts a once-per-second tick to attached subscribers.
package countdown

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/lyrebird-labs/keepsake/internal/clock"
)

// Remaining is the whole-unit breakdown of the time left until a
// target. All fields are zero once the target has passed.
type Remaining struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// TimeRemaining breaks the span between now and target into whole days,
// then hours, minutes and seconds. Days are counted by stepping
// calendar days in the target's location, so daylight-saving shifts and
// month lengths do not skew the count.
func TimeRemaining(target, now time.Time) Remaining {
	if !target.After(now) {
		return Remaining{}
	}

	now = now.In(target.Location())

	// Estimate from the raw duration, then correct by at most a day in
	// either direction to land on the true calendar-day count.
	days := int(target.Sub(now).Hours() / 24)
	for days > 0 && now.AddDate(0, 0, days).After(target) {
		days--
	}
	for now.AddDate(0, 0, days+1).Before(target) || now.AddDate(0, 0, days+1).Equal(target) {
		days++
	}

	rest := target.Sub(now.AddDate(0, 0, days))
	return Remaining{
		Days:    days,
		Hours:   int(rest.Hours()) % 24,
		Minutes: int(rest.Minutes()) % 60,
		Seconds: int(rest.Seconds()) % 60,
	}
}

// Engine fans a one-second tick out to subscribers. The tick loop runs
// only while at least one subscriber is attached and stops when the
// last one detaches or the engine context is cancelled.
type Engine struct {
	clock clock.Clock

	mu     sync.Mutex
	ctx    context.Context
	subs   map[int]chan time.Time
	nextID int
	cancel context.CancelFunc
}

func NewEngine(c clock.Clock) *Engine {
	return &Engine{
		clock: c,
		subs:  make(map[int]chan time.Time),
	}
}

// Start binds the engine to its lifetime context. Ticking still waits
// for the first subscriber.
func (e *Engine) Start(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctx = ctx
}

// Subscribe attaches a tick channel and returns it with a detach
// function. The detach function is safe to call more than once.
func (e *Engine) Subscribe() (<-chan time.Time, func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	ch := make(chan time.Time, 1)
	e.subs[id] = ch

	if e.cancel == nil {
		parent := e.ctx
		if parent == nil {
			parent = context.Background()
		}
		loopCtx, cancel := context.WithCancel(parent)
		e.cancel = cancel
		go e.run(loopCtx)
	}

	var once sync.Once
	return ch, func() {
		once.Do(func() { e.unsubscribe(id) })
	}
}

func (e *Engine) unsubscribe(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.subs, id)
	if len(e.subs) == 0 && e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

func (e *Engine) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			slog.Debug("countdown engine idle")
			return
		case now := <-e.clock.After(time.Second):
			e.broadcast(now)
		}
	}
}

// broadcast delivers the tick without blocking; a subscriber that has
// not drained its previous tick simply misses this one.
func (e *Engine) broadcast(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, ch := range e.subs {
		select {
		case ch <- now:
		default:
		}
	}
}
