/*
Package runtime implements the broadcast router core for fancast.

# Architecture Overview

The Router owns two transport handles built from one registry lookup: a
publisher used only for sending and a subscriber used only for receiving.
Publishing stamps the payload (timestamp + channel), serializes it once, and
performs the two-step broadcast protocol: send on the reserved "all" channel
first, then on the target channel. Subscribing lazily opens one inbound
stream per channel and fans each message out to that channel's listeners in
registration order.

# Package Structure

  - router.go: Router construction, lifecycle state machine
    (enabled/disabled/disconnected), transport ownership
  - publish.go: envelope stamping and the two-step broadcast send
  - subscribe.go: per-channel listener registry, stream consumption,
    exact-handle unsubscribe
  - payload.go: Payload type, codec contract, structpb bridge
  - hooks.go: optional publish/delivery/decode-failure callbacks
  - metrics.go: Prometheus counters and the /metrics endpoint

# Sub-packages

  - catalog/: symbolic channel, event, and entity name catalogs
  - config/: router configuration with validation
  - errors/: sentinel errors and error types
  - ids/: ULID generation for message and subscription IDs
  - jsoncodec/: sonic-backed JSON codec (the default wire format)
  - logging/: logger interface and adapters

# Usage Example

	cfg := &config.Config{PubSubSystem: "channel"}
	router, err := runtime.TryNewRouter(cfg, logger, ctx, runtime.Dependencies{})
	if err != nil {
		return err
	}
	defer router.Disconnect()

	sub, _ := router.Subscribe("chat", func(p runtime.Payload) {
		fmt.Println(p["text"])
	})
	router.Publish(ctx, "chat", runtime.Payload{"text": "hello world"})
	router.Unsubscribe(sub)
*/
package runtime
