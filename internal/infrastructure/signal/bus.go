// Package signal carries the in-process "admin authentication failed"
// broadcast. Any admin API call site can raise the signal when it sees an
// unauthorized response; the gateway-lifetime consumer evicts the session so
// the next admin-area request redirects to login. This keeps deep call sites
// decoupled from the guard without each one knowing how to clean up.
package signal

import (
	"context"

	"github.com/rs/zerolog"
)

const channelBuffer = 64

// AdminAuthFailure is one failure event: the rejected token and a short
// reason for logs.
type AdminAuthFailure struct {
	Token  string
	Reason string
}

// Handler consumes one failure event.
type Handler func(ctx context.Context, f AdminAuthFailure)

// Bus is a single-consumer broadcast channel for admin auth failures.
// Handlers are registered before Start and run in order on one goroutine.
type Bus struct {
	ch       chan AdminAuthFailure
	handlers []Handler
	log      zerolog.Logger
}

func NewBus(log zerolog.Logger) *Bus {
	return &Bus{
		ch:  make(chan AdminAuthFailure, channelBuffer),
		log: log,
	}
}

// OnFailure registers a handler. Not safe to call after Start.
func (b *Bus) OnFailure(h Handler) {
	b.handlers = append(b.handlers, h)
}

// Publish raises a failure signal. Non-blocking: if the buffer is full the
// event is dropped and logged. A dropped signal only delays cleanup until
// the next validation round trip.
func (b *Bus) Publish(f AdminAuthFailure) {
	select {
	case b.ch <- f:
	default:
		b.log.Warn().Str("reason", f.Reason).Msg("admin auth failure signal dropped")
	}
}

// Start launches the consumer goroutine. It stops when ctx is cancelled.
func (b *Bus) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case f, ok := <-b.ch:
				if !ok {
					return
				}
				b.log.Info().Str("reason", f.Reason).Msg("admin auth failure signal received")
				for _, h := range b.handlers {
					h(ctx, f)
				}
			}
		}
	}()
}
