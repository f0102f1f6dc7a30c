package runtime

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	errspkg "github.com/fancast/fancast/internal/runtime/errors"
	idspkg "github.com/fancast/fancast/internal/runtime/ids"
)

// Publish stamps the payload with the current timestamp and the channel name,
// serializes it, and hands it to the outbound transport: first on the
// broadcast ("all") channel, then on the target channel itself. Publishing
// directly on the broadcast channel sends exactly once.
//
// The two sends happen in program order within this call; no cross-process
// ordering is guaranteed. Delivery is fire-and-forget - transport errors are
// returned untranslated, serialization errors are wrapped. Payload maps are
// mutated in place by the stamping; other payload values are serialized
// through the codec into a map first, so colliding "timestamp"/"channel"
// fields are overwritten either way.
//
// Silent no-op while the router is disabled.
func (r *Router) Publish(ctx context.Context, channel string, payload any) error {
	if r == nil {
		return errspkg.ErrRouterRequired
	}
	if channel == "" {
		return errspkg.ErrChannelRequired
	}

	switch r.State() {
	case StateDisabled:
		return nil
	case StateDisconnected:
		return errspkg.ErrRouterDisconnected
	}
	if r.publisher == nil {
		return errspkg.ErrNotConnected
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tracer := otel.Tracer("fancast")
	ctx, span := tracer.Start(ctx, "Publish",
		trace.WithAttributes(attribute.String("fancast.channel", channel)))
	defer span.End()

	data, err := r.stamp(channel, payload)
	if err != nil {
		return fmt.Errorf("failed to serialize payload for channel %q: %w", channel, err)
	}

	// Two-step broadcast protocol: the "all" duplicate always goes first so
	// global observers never trail channel listeners in same-process order.
	if broadcast := r.BroadcastChannel(); channel != broadcast {
		if err := r.send(ctx, broadcast, data); err != nil {
			return err
		}
	}
	return r.send(ctx, channel, data)
}

// stamp injects the envelope fields into the payload and serializes it.
func (r *Router) stamp(channel string, payload any) ([]byte, error) {
	var m Payload
	switch v := payload.(type) {
	case Payload:
		m = v
	case map[string]any:
		m = Payload(v)
	default:
		data, err := r.codec.Marshal(payload)
		if err != nil {
			return nil, err
		}
		if err := r.codec.Unmarshal(data, &m); err != nil {
			return nil, err
		}
	}
	if m == nil {
		m = Payload{}
	}

	m[FieldTimestamp] = time.Now().UnixMilli()
	m[FieldChannel] = channel
	return r.codec.Marshal(m)
}

func (r *Router) send(ctx context.Context, channel string, data []byte) error {
	msg := message.NewMessage(idspkg.CreateULID(), data)
	msg.SetContext(ctx)

	if err := r.publisher.Publish(channel, msg); err != nil {
		return err
	}

	r.metrics.publishInc(channel)
	if r.hooks.OnPublish != nil {
		r.hooks.OnPublish(channel, msg.UUID)
	}
	return nil
}
