package fancast

import (
	runtimepkg "github.com/fancast/fancast/internal/runtime"
	catalogpkg "github.com/fancast/fancast/internal/runtime/catalog"
	configpkg "github.com/fancast/fancast/internal/runtime/config"
	errspkg "github.com/fancast/fancast/internal/runtime/errors"
	idspkg "github.com/fancast/fancast/internal/runtime/ids"
	jsoncodec "github.com/fancast/fancast/internal/runtime/jsoncodec"
	loggingpkg "github.com/fancast/fancast/internal/runtime/logging"
	newtransport "github.com/fancast/fancast/transport"
)

type (
	Config       = configpkg.Config
	Router       = runtimepkg.Router
	Dependencies = runtimepkg.Dependencies
	State        = runtimepkg.State

	Payload      = runtimepkg.Payload
	Handler      = runtimepkg.Handler
	Subscription = runtimepkg.Subscription
	Codec        = runtimepkg.Codec
	Hooks        = runtimepkg.Hooks

	LogFields     = loggingpkg.LogFields
	ServiceLogger = loggingpkg.ServiceLogger

	ConfigValidationError = errspkg.ConfigValidationError

	// Transport types
	Transport             = newtransport.Transport
	TransportBuilder      = newtransport.Builder
	TransportConfig       = newtransport.Config
	TransportRegistry     = newtransport.Registry
	TransportCapabilities = newtransport.Capabilities
)

// Lifecycle states.
const (
	StateEnabled      = runtimepkg.StateEnabled
	StateDisabled     = runtimepkg.StateDisabled
	StateDisconnected = runtimepkg.StateDisconnected
)

// Envelope field names stamped into every published payload.
const (
	FieldTimestamp = runtimepkg.FieldTimestamp
	FieldChannel   = runtimepkg.FieldChannel
)

// DefaultBroadcastChannel is the reserved "all events" channel name used when
// Config.BroadcastChannel is empty.
const DefaultBroadcastChannel = configpkg.DefaultBroadcastChannel

var (
	NewRouter      = runtimepkg.NewRouter
	TryNewRouter   = runtimepkg.TryNewRouter
	ValidateConfig = configpkg.ValidateConfig

	// Hooks helpers
	LoggingHooks = runtimepkg.LoggingHooks

	// Payload helpers
	PayloadFromProto = runtimepkg.PayloadFromProto

	// Transport registry.
	// Import individual transports via: _ "github.com/fancast/fancast/transport/channel"
	// or the whole bundle via: _ "github.com/fancast/fancast/transport/transports"
	DefaultTransportRegistry = newtransport.DefaultRegistry
	RegisterTransport        = newtransport.Register
	BuildTransport           = newtransport.Build
	GetCapabilities          = newtransport.GetCapabilities

	// Codec helpers
	Marshal       = jsoncodec.Marshal
	MarshalIndent = jsoncodec.MarshalIndent
	Unmarshal     = jsoncodec.Unmarshal
	Encode        = jsoncodec.Encode
	Decode        = jsoncodec.Decode
	DefaultCodec  = jsoncodec.Default

	// Constant catalogs - flat symbolic-name to wire-name mappings.
	Channels = catalogpkg.Channels
	Events   = catalogpkg.Events
	Entities = catalogpkg.Entities

	ErrRouterRequired     = errspkg.ErrRouterRequired
	ErrChannelRequired    = errspkg.ErrChannelRequired
	ErrHandlerRequired    = errspkg.ErrHandlerRequired
	ErrPublisherRequired  = errspkg.ErrPublisherRequired
	ErrSubscriberRequired = errspkg.ErrSubscriberRequired
	ErrConfigRequired     = errspkg.ErrConfigRequired
	ErrLoggerRequired     = errspkg.ErrLoggerRequired
	ErrNotConnected       = errspkg.ErrNotConnected
	ErrRouterDisconnected = errspkg.ErrRouterDisconnected

	NewSlogServiceLogger = loggingpkg.NewSlogServiceLogger

	CreateULID = idspkg.CreateULID
)

// Reserved broadcast channel plus the built-in catalog names, re-exported for
// caller convenience.
const (
	ChannelAll      = catalogpkg.ChannelAll
	ChannelSystem   = catalogpkg.ChannelSystem
	ChannelUsers    = catalogpkg.ChannelUsers
	ChannelSessions = catalogpkg.ChannelSessions
	ChannelChat     = catalogpkg.ChannelChat
	ChannelGames    = catalogpkg.ChannelGames
)
