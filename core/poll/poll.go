// Fixed rate refresh driven by a timer that the host event loop delivers.
package poll

import (
	"errors"
	"fmt"
	"time"
)

const DefaultPeriod = 100 * time.Millisecond

// Periodic timer owned by the host. Expirations must be delivered through
// the host event loop, which then calls Scheduler.Tick.
type Timer interface {
	Arm(period time.Duration) error
	Disarm() error
}

//----------

// Runs on the event loop thread: no locking.
type Scheduler struct {
	period  time.Duration
	refresh func()
	timer   Timer
	ticks   int
}

func New(period time.Duration, refresh func()) *Scheduler {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Scheduler{period: period, refresh: refresh}
}

func (s *Scheduler) Period() time.Duration { return s.period }

func (s *Scheduler) Start(t Timer) error {
	if s.timer != nil {
		return errors.New("poll: already started")
	}
	if err := t.Arm(s.period); err != nil {
		return fmt.Errorf("poll: arm: %w", err)
	}
	s.timer = t
	return nil
}

// Called on each timer event. Late events after Stop are dropped.
func (s *Scheduler) Tick() {
	if s.timer == nil {
		return
	}
	s.ticks++
	s.refresh()
}

func (s *Scheduler) Ticks() int { return s.ticks }

func (s *Scheduler) Stop() error {
	if s.timer == nil {
		return nil
	}
	t := s.timer
	s.timer = nil
	if err := t.Disarm(); err != nil {
		return fmt.Errorf("poll: disarm: %w", err)
	}
	return nil
}

//----------

// Timer for hosts that select on a channel instead of receiving native
// timer messages. Like time.Ticker, expirations are dropped for slow
// receivers.
type TickerTimer struct {
	ticker *time.Ticker
	c      chan time.Time
}

func NewTickerTimer() *TickerTimer {
	// never ready until armed
	return &TickerTimer{c: make(chan time.Time)}
}

func (tt *TickerTimer) Arm(period time.Duration) error {
	if tt.ticker != nil {
		tt.ticker.Reset(period)
		return nil
	}
	tt.ticker = time.NewTicker(period)
	return nil
}

func (tt *TickerTimer) Disarm() error {
	if tt.ticker == nil {
		return nil
	}
	tt.ticker.Stop()
	tt.ticker = nil
	return nil
}

// Expirations. Never fires while disarmed; re-read it after Arm.
func (tt *TickerTimer) C() <-chan time.Time {
	if tt.ticker == nil {
		return tt.c
	}
	return tt.ticker.C
}
