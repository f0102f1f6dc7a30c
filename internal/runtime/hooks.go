package runtime

import (
	loggingpkg "github.com/fancast/fancast/internal/runtime/logging"
)

// Hooks defines optional callbacks for router lifecycle events. All hooks are
// optional - nil hooks are simply not called. Hooks run synchronously on the
// publish or dispatch path, so they should be fast.
type Hooks struct {
	// OnPublish is called after a message was handed to the outbound
	// transport, once per physical send (so twice for a broadcast-duplicated
	// publish: all channel first, target channel second).
	OnPublish func(channel, messageUUID string)

	// OnDeliver is called after a listener callback returned.
	OnDeliver func(channel, messageUUID string, payload Payload)

	// OnDecodeError is called when an inbound message cannot be decoded.
	// The message is dropped after the hook returns.
	OnDecodeError func(channel, messageUUID string, err error)
}

// Merge combines two Hooks, creating a new Hooks that calls both. The hooks
// from 'other' are called after the hooks from 'h'.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnPublish:     chainPublishHooks(h.OnPublish, other.OnPublish),
		OnDeliver:     chainDeliverHooks(h.OnDeliver, other.OnDeliver),
		OnDecodeError: chainDecodeErrorHooks(h.OnDecodeError, other.OnDecodeError),
	}
}

func chainPublishHooks(a, b func(string, string)) func(string, string) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(channel, uuid string) {
		a(channel, uuid)
		b(channel, uuid)
	}
}

func chainDeliverHooks(a, b func(string, string, Payload)) func(string, string, Payload) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(channel, uuid string, payload Payload) {
		a(channel, uuid, payload)
		b(channel, uuid, payload)
	}
}

func chainDecodeErrorHooks(a, b func(string, string, error)) func(string, string, error) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(channel, uuid string, err error) {
		a(channel, uuid, err)
		b(channel, uuid, err)
	}
}

// LoggingHooks returns Hooks that log every publish, delivery, and decode
// failure at debug/error level through the provided logger.
func LoggingHooks(log loggingpkg.ServiceLogger) Hooks {
	return Hooks{
		OnPublish: func(channel, uuid string) {
			log.Debug("Published message", loggingpkg.LogFields{
				"channel":      channel,
				"message_uuid": uuid,
			})
		},
		OnDeliver: func(channel, uuid string, payload Payload) {
			log.Debug("Delivered message", loggingpkg.LogFields{
				"channel":      channel,
				"message_uuid": uuid,
			})
		},
		OnDecodeError: func(channel, uuid string, err error) {
			log.Error("Dropped undecodable message", err, loggingpkg.LogFields{
				"channel":      channel,
				"message_uuid": uuid,
			})
		},
	}
}
