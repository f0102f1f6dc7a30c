package runtime

import (
	"context"
	"fmt"
	"slices"

	"github.com/ThreeDotsLabs/watermill/message"

	errspkg "github.com/fancast/fancast/internal/runtime/errors"
	idspkg "github.com/fancast/fancast/internal/runtime/ids"
	loggingpkg "github.com/fancast/fancast/internal/runtime/logging"
)

// Handler is a listener callback. It receives the deserialized payload,
// including the stamped timestamp and channel fields.
type Handler func(payload Payload)

// Subscription is the opaque handle returned by Subscribe. Unsubscribe
// requires exactly this handle: subscribing the same channel and callback
// twice yields two independent subscriptions that must be removed
// independently.
type Subscription struct {
	id      string
	channel string
	handler Handler
}

// ID returns the unique identifier of the subscription.
func (s *Subscription) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// Channel returns the channel this subscription listens on.
func (s *Subscription) Channel() string {
	if s == nil {
		return ""
	}
	return s.channel
}

// Subscribe registers handler as a listener on channel. The transport-level
// subscription for the channel is established on first use and shared by all
// listeners on that channel; listeners are invoked in registration order,
// each receiving its own decoded copy of every message delivered on the
// channel. There is no
// deduplication: N subscriptions mean N invocations per message.
//
// Returns the handle required by Unsubscribe. While the router is disabled
// this is a silent no-op returning a nil handle (Unsubscribe(nil) is also a
// no-op, so callers need no branches).
func (r *Router) Subscribe(channel string, handler Handler) (*Subscription, error) {
	if r == nil {
		return nil, errspkg.ErrRouterRequired
	}
	if channel == "" {
		return nil, errspkg.ErrChannelRequired
	}
	if handler == nil {
		return nil, errspkg.ErrHandlerRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case StateDisabled:
		return nil, nil
	case StateDisconnected:
		return nil, errspkg.ErrRouterDisconnected
	}
	if r.subscriber == nil {
		return nil, errspkg.ErrNotConnected
	}

	if _, ok := r.streams[channel]; !ok {
		streamCtx, cancel := context.WithCancel(r.baseCtx)
		msgs, err := r.subscriber.Subscribe(streamCtx, channel)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed to subscribe to channel %q: %w", channel, err)
		}
		r.streams[channel] = cancel
		go r.consume(channel, msgs)

		r.Logger.Debug("Opened channel stream", loggingpkg.LogFields{"channel": channel})
	}

	sub := &Subscription{
		id:      idspkg.CreateULID(),
		channel: channel,
		handler: handler,
	}
	r.listeners[channel] = append(r.listeners[channel], sub)

	r.Logger.Debug("Registered listener", loggingpkg.LogFields{
		"channel":         channel,
		"subscription_id": sub.id,
		"listener_count":  len(r.listeners[channel]),
	})
	return sub, nil
}

// Unsubscribe removes exactly the listener identified by sub. Other listeners
// on the same channel keep firing. Removing the last listener of a channel
// tears down the transport-level subscription for that channel.
//
// A nil or never-registered handle is a no-op, as is calling while disabled
// or after disconnect (the listener is already gone by then).
func (r *Router) Unsubscribe(sub *Subscription) error {
	if r == nil {
		return errspkg.ErrRouterRequired
	}
	if sub == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateEnabled {
		return nil
	}

	subs := r.listeners[sub.channel]
	idx := slices.Index(subs, sub)
	if idx < 0 {
		return nil
	}
	r.listeners[sub.channel] = slices.Delete(subs, idx, idx+1)

	r.Logger.Debug("Removed listener", loggingpkg.LogFields{
		"channel":         sub.channel,
		"subscription_id": sub.id,
		"listener_count":  len(r.listeners[sub.channel]),
	})

	if len(r.listeners[sub.channel]) == 0 {
		delete(r.listeners, sub.channel)
		if cancel, ok := r.streams[sub.channel]; ok {
			cancel()
			delete(r.streams, sub.channel)
			r.Logger.Debug("Closed channel stream", loggingpkg.LogFields{"channel": sub.channel})
		}
	}
	return nil
}

// consume drains one channel's inbound stream, dispatching each message to
// the channel's listeners. Runs until the stream context is cancelled.
func (r *Router) consume(channel string, msgs <-chan *message.Message) {
	for msg := range msgs {
		r.dispatch(channel, msg)
		msg.Ack()
	}
}

func (r *Router) dispatch(channel string, msg *message.Message) {
	// Messages already in flight when the router is disabled are dropped,
	// not queued.
	if r.State() != StateEnabled {
		return
	}

	var payload Payload
	if err := r.codec.Unmarshal(msg.Payload, &payload); err != nil {
		r.Logger.Error("Failed to decode inbound message", err, loggingpkg.LogFields{
			"channel":      channel,
			"message_uuid": msg.UUID,
		})
		r.metrics.decodeFailureInc(channel)
		if r.hooks.OnDecodeError != nil {
			r.hooks.OnDecodeError(channel, msg.UUID, err)
		}
		return
	}

	r.mu.Lock()
	subs := slices.Clone(r.listeners[channel])
	r.mu.Unlock()

	for _, sub := range subs {
		// Every listener decodes its own copy of the raw message, so one
		// callback's mutations stay local to it.
		var own Payload
		if err := r.codec.Unmarshal(msg.Payload, &own); err != nil {
			continue
		}
		r.invoke(sub, msg.UUID, own, payload)
	}
}

// invoke runs one listener callback, converting panics into logged errors so
// a misbehaving listener cannot kill the channel stream. The delivery hook
// receives the pristine decoded payload, not the listener's copy.
func (r *Router) invoke(sub *Subscription, messageUUID string, payload, pristine Payload) {
	defer func() {
		if rec := recover(); rec != nil {
			r.Logger.Error("Listener panicked", fmt.Errorf("panic: %v", rec), loggingpkg.LogFields{
				"channel":         sub.channel,
				"subscription_id": sub.id,
				"message_uuid":    messageUUID,
			})
		}
	}()

	sub.handler(payload)

	r.metrics.deliverInc(sub.channel)
	if r.hooks.OnDeliver != nil {
		r.hooks.OnDeliver(sub.channel, messageUUID, pristine)
	}
}
