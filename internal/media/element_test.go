package media

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func closeTo(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func TestClockElementPlayback(t *testing.T) {
	clock := newFakeClock()
	el := NewClockElement("https://cdn.example.com/audio/vo.mp3", WithClock(clock.Now))

	if !el.Paused() {
		t.Error("new element should start paused")
	}
	if el.CurrentTime() != 0 {
		t.Errorf("CurrentTime() = %v, want 0", el.CurrentTime())
	}

	el.Play()
	clock.Advance(2 * time.Second)
	if got := el.CurrentTime(); !closeTo(got, 2) {
		t.Errorf("CurrentTime() after 2s = %v, want 2", got)
	}

	el.Pause()
	clock.Advance(5 * time.Second)
	if got := el.CurrentTime(); !closeTo(got, 2) {
		t.Errorf("CurrentTime() while paused = %v, want 2", got)
	}

	el.Play()
	clock.Advance(1500 * time.Millisecond)
	if got := el.CurrentTime(); !closeTo(got, 3.5) {
		t.Errorf("CurrentTime() after resume = %v, want 3.5", got)
	}
}

func TestClockElementSeek(t *testing.T) {
	clock := newFakeClock()
	el := NewClockElement("https://cdn.example.com/audio/vo.mp3", WithClock(clock.Now))

	el.SeekTo(7.25)
	if got := el.CurrentTime(); !closeTo(got, 7.25) {
		t.Errorf("CurrentTime() after paused seek = %v, want 7.25", got)
	}

	el.Play()
	clock.Advance(time.Second)
	el.SeekTo(3)
	clock.Advance(500 * time.Millisecond)
	if got := el.CurrentTime(); !closeTo(got, 3.5) {
		t.Errorf("CurrentTime() after playing seek = %v, want 3.5", got)
	}

	el.SeekTo(-10)
	if got := el.CurrentTime(); got < 0 {
		t.Errorf("CurrentTime() after negative seek = %v, want >= 0", got)
	}
}

func TestClockElementDurationCap(t *testing.T) {
	clock := newFakeClock()
	el := NewClockElement("https://cdn.example.com/audio/vo.mp3",
		WithClock(clock.Now), WithKnownDuration(4))

	el.Play()
	clock.Advance(10 * time.Second)
	if got := el.CurrentTime(); !closeTo(got, 4) {
		t.Errorf("CurrentTime() past end = %v, want capped at 4", got)
	}
}

func TestClockElementVolumeClamp(t *testing.T) {
	tests := []struct {
		name string
		set  float64
		want float64
	}{
		{"in range", 0.6, 0.6},
		{"above one", 1.8, 1},
		{"negative", -0.3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := NewClockElement("https://cdn.example.com/audio/vo.mp3")
			el.SetVolume(tt.set)
			if got := el.Volume(); got != tt.want {
				t.Errorf("Volume() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClockElementClosedIgnoresPlay(t *testing.T) {
	clock := newFakeClock()
	el := NewClockElement("https://cdn.example.com/audio/vo.mp3", WithClock(clock.Now))

	el.Play()
	clock.Advance(time.Second)
	el.Close()

	el.Play()
	clock.Advance(time.Second)
	if got := el.CurrentTime(); !closeTo(got, 1) {
		t.Errorf("CurrentTime() after close = %v, want frozen at 1", got)
	}
	if !el.Paused() {
		t.Error("closed element should report paused")
	}
}

type fakeProber struct {
	duration float64
	err      error
}

func (p *fakeProber) ProbeDuration(ctx context.Context, url string) (float64, error) {
	return p.duration, p.err
}

type blockingProber struct {
	unblocked chan struct{}
}

func (p *blockingProber) ProbeDuration(ctx context.Context, url string) (float64, error) {
	<-ctx.Done()
	close(p.unblocked)
	return 0, ctx.Err()
}

func TestClockElementProbeReportsDuration(t *testing.T) {
	el := NewClockElement("https://cdn.example.com/audio/vo.mp3")
	durations := make(chan float64, 1)

	el.StartProbe(&fakeProber{duration: 12.5}, LoadHooks{
		OnDuration: func(url string, seconds float64) {
			durations <- seconds
		},
		OnError: func(url string, err error) {
			t.Errorf("unexpected load error: %v", err)
		},
	})

	select {
	case got := <-durations:
		if got != 12.5 {
			t.Errorf("OnDuration seconds = %v, want 12.5", got)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for duration hook")
	}

	if got := el.Duration(); got != 12.5 {
		t.Errorf("Duration() = %v, want 12.5", got)
	}
}

func TestClockElementProbeReportsError(t *testing.T) {
	el := NewClockElement("https://cdn.example.com/audio/missing.mp3")
	loadErrs := make(chan error, 1)

	el.StartProbe(&fakeProber{err: errors.New("404 not found")}, LoadHooks{
		OnError: func(url string, err error) {
			loadErrs <- err
		},
	})

	select {
	case err := <-loadErrs:
		if err == nil {
			t.Error("OnError called with nil error")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for error hook")
	}

	if got := el.Duration(); got != 0 {
		t.Errorf("Duration() after failed probe = %v, want 0", got)
	}
}

func TestClockElementCloseCancelsProbe(t *testing.T) {
	el := NewClockElement("https://cdn.example.com/audio/slow.mp3")
	prober := &blockingProber{unblocked: make(chan struct{})}
	hookCalls := make(chan string, 2)

	el.StartProbe(prober, LoadHooks{
		OnDuration: func(url string, seconds float64) { hookCalls <- "duration" },
		OnError:    func(url string, err error) { hookCalls <- "error" },
	})

	el.Close()

	select {
	case <-prober.unblocked:
	case <-time.After(time.Second):
		t.Fatal("probe context was not cancelled on Close")
	}

	select {
	case call := <-hookCalls:
		t.Errorf("hook %q fired after Close", call)
	case <-time.After(50 * time.Millisecond):
	}
}
