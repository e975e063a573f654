package signal

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestBus_DeliversToHandlers(t *testing.T) {
	bus := NewBus(zerolog.Nop())
	received := make(chan AdminAuthFailure, 2)
	bus.OnFailure(func(_ context.Context, f AdminAuthFailure) {
		received <- f
	})
	bus.OnFailure(func(_ context.Context, f AdminAuthFailure) {
		received <- f
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	bus.Start(ctx)

	bus.Publish(AdminAuthFailure{Token: "tok", Reason: "api_unauthorized"})

	for i := 0; i < 2; i++ {
		select {
		case f := <-received:
			if f.Token != "tok" || f.Reason != "api_unauthorized" {
				t.Fatalf("unexpected event: %+v", f)
			}
		case <-time.After(time.Second):
			t.Fatalf("handler %d did not receive the event", i)
		}
	}
}

func TestBus_PublishNeverBlocks(t *testing.T) {
	bus := NewBus(zerolog.Nop())
	// No consumer running: publishing past the buffer must drop, not hang.
	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer*2; i++ {
			bus.Publish(AdminAuthFailure{Token: "tok", Reason: "overflow"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("publish blocked on a full buffer")
	}
}

func TestBus_StopsOnContextCancel(t *testing.T) {
	bus := NewBus(zerolog.Nop())
	received := make(chan AdminAuthFailure, 1)
	bus.OnFailure(func(_ context.Context, f AdminAuthFailure) {
		received <- f
	})

	ctx, cancel := context.WithCancel(context.Background())
	bus.Start(ctx)
	cancel()

	// Give the consumer a moment to observe cancellation, then publish.
	time.Sleep(20 * time.Millisecond)
	bus.Publish(AdminAuthFailure{Token: "tok", Reason: "late"})

	select {
	case <-received:
		t.Fatalf("stopped consumer must not deliver events")
	case <-time.After(100 * time.Millisecond):
	}
}
