// Package fancast is a broadcast-duplication layer over a generic pub/sub
// transport. Producers emit domain events on named channels; consumers
// register per-channel listeners; and every publish is additionally
// duplicated onto the reserved "all" channel, sent first, so global observers
// can listen exactly once for all activity in the system.
//
// The Router owns an outbound publisher handle and an inbound subscriber
// handle (built from Config via the transport registry), an explicit
// per-channel listener registry, and an enabled/disabled/disconnected
// lifecycle. Payloads are stamped with a millisecond timestamp and the target
// channel name, serialized through a swappable codec (JSON by default), and
// delivered best-effort: no retries, no ordering across processes, no
// persistence.
//
// # Transports
//
// Fancast supports 7 message transports out of the box:
//   - channel: In-memory Go channels for testing and local development
//   - kafka: High-throughput streaming with consumer groups
//   - rabbitmq: AMQP durable pub/sub topology
//   - aws: AWS SNS/SQS with LocalStack support
//   - nats: High-performance messaging
//   - http: Webhook-style request messaging
//   - io: File-based message log
//
// Import github.com/fancast/fancast/transport/transports to register all of
// them, or individual transport packages for side-effect registration.
//
// # Observability
//
// With Config.MetricsEnabled the router registers Prometheus counters for
// publishes, deliveries, and decode failures, and can expose them on
// Config.MetricsPort. Every publish runs inside an OpenTelemetry span.
// Dependencies.Hooks adds OnPublish/OnDeliver/OnDecodeError callbacks for
// custom logging or alerting.
//
// A minimal setup fills Config, creates a Router with NewRouter, subscribes
// listeners, publishes, and finally calls Disconnect once at shutdown.
package fancast
