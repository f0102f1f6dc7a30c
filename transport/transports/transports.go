// Package transports imports all built-in transports for auto-registration.
// Import this package to have all transports registered with the default
// registry.
package transports

import (
	// Import all transports for side-effect registration
	_ "github.com/fancast/fancast/transport/aws"
	_ "github.com/fancast/fancast/transport/channel"
	_ "github.com/fancast/fancast/transport/http"
	_ "github.com/fancast/fancast/transport/io"
	_ "github.com/fancast/fancast/transport/kafka"
	_ "github.com/fancast/fancast/transport/nats"
	_ "github.com/fancast/fancast/transport/rabbitmq"
)
