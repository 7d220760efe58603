package player

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestPlayerCloseLeavesNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	proc := &fakeProcess{}
	p := New(testConfig())
	p.spawn = func() process { return proc }
	sub := p.Subscribe()

	if err := p.Start(context.Background(), StartOptions{}); err != nil {
		t.Fatalf("start: %v", err)
	}

	p.Play("a.mp4")
	proc.sink.Line(Stdout, "ID_LENGTH=10.0")
	proc.sink.Line(Stdout, "Starting playback...")
	proc.sink.Line(Stdout, "A:   9.8 V:   9.8")
	p.SetVideoHue(10, true)
	p.Seek(3, true)

	// Leave the finish, parameter and error timers armed.
	time.Sleep(5 * time.Millisecond)

	if err := p.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	select {
	case <-sub.Done:
	case <-time.After(time.Second):
		t.Fatal("subscription not closed")
	}

	if got := p.State(); got != NotStarted {
		t.Fatalf("state after close = %s, want %s", got, NotStarted)
	}
}
