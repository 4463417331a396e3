package poll

import (
	"errors"
	"testing"
	"time"
)

type fakeTimer struct {
	armed   bool
	period  time.Duration
	arms    int
	disarms int
	armErr  error
}

func (ft *fakeTimer) Arm(p time.Duration) error {
	if ft.armErr != nil {
		return ft.armErr
	}
	ft.armed = true
	ft.period = p
	ft.arms++
	return nil
}
func (ft *fakeTimer) Disarm() error {
	ft.armed = false
	ft.disarms++
	return nil
}

//----------

func TestSchedulerStartStop(t *testing.T) {
	n := 0
	s := New(0, func() { n++ })
	if s.Period() != DefaultPeriod {
		t.Fatalf("period: %v", s.Period())
	}

	s.Tick() // not started
	if n != 0 {
		t.Fatal("tick before start reached refresh")
	}

	ft := &fakeTimer{}
	if err := s.Start(ft); err != nil {
		t.Fatal(err)
	}
	if !ft.armed || ft.period != DefaultPeriod {
		t.Fatalf("timer not armed: %+v", ft)
	}
	if err := s.Start(ft); err == nil {
		t.Fatal("expecting error on second start")
	}

	s.Tick()
	s.Tick()
	if n != 2 || s.Ticks() != 2 {
		t.Fatalf("refresh=%v ticks=%v", n, s.Ticks())
	}

	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
	if ft.disarms != 1 {
		t.Fatalf("disarms: %v", ft.disarms)
	}

	s.Tick() // late timer message
	if n != 2 {
		t.Fatal("tick after stop reached refresh")
	}
}

func TestSchedulerArmError(t *testing.T) {
	s := New(10*time.Millisecond, func() {})
	ft := &fakeTimer{armErr: errors.New("no timers")}
	err := s.Start(ft)
	if err == nil || !errors.Is(err, ft.armErr) {
		t.Fatalf("expecting wrapped arm error, got %v", err)
	}
	s.Tick()
	if s.Ticks() != 0 {
		t.Fatal("ticked without a timer")
	}
}

func TestTickerTimerCadence(t *testing.T) {
	period := 20 * time.Millisecond
	observe := 210 * time.Millisecond

	n := 0
	s := New(period, func() { n++ })
	tt := NewTickerTimer()
	if err := s.Start(tt); err != nil {
		t.Fatal(err)
	}
	defer s.Stop()

	end := time.After(observe)
loop:
	for {
		select {
		case <-tt.C():
			s.Tick()
		case <-end:
			break loop
		}
	}

	max := int(observe/period) + 1
	if n > max {
		t.Fatalf("refreshes %v, expecting at most %v", n, max)
	}
	if n == 0 {
		t.Fatal("no refreshes")
	}
}

func TestTickerTimerNoAccumulation(t *testing.T) {
	period := 5 * time.Millisecond
	tt := NewTickerTimer()
	if err := tt.Arm(period); err != nil {
		t.Fatal(err)
	}
	defer tt.Disarm()

	// slow receiver: many periods elapse without reading
	time.Sleep(20 * period)

	n := 0
loop:
	for {
		select {
		case <-tt.C():
			n++
		default:
			break loop
		}
	}
	// one buffered, plus at most one racing in while draining
	if n > 2 {
		t.Fatalf("accumulated %v ticks", n)
	}
}

func TestTickerTimerDisarmed(t *testing.T) {
	tt := NewTickerTimer()
	select {
	case <-tt.C():
		t.Fatal("disarmed timer fired")
	case <-time.After(10 * time.Millisecond):
	}
	if err := tt.Disarm(); err != nil {
		t.Fatal(err)
	}
}
