package runtime

import (
	"context"
	"errors"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"

	configpkg "github.com/fancast/fancast/internal/runtime/config"
	errspkg "github.com/fancast/fancast/internal/runtime/errors"
	jsoncodec "github.com/fancast/fancast/internal/runtime/jsoncodec"
	loggingpkg "github.com/fancast/fancast/internal/runtime/logging"
	transportpkg "github.com/fancast/fancast/transport"
)

// State is the lifecycle state of a Router.
type State int32

const (
	// StateEnabled is the normal operating state.
	StateEnabled State = iota
	// StateDisabled suppresses publish/subscribe/unsubscribe as silent
	// no-ops. Transport handles stay open (if they were ever opened).
	StateDisabled
	// StateDisconnected is terminal: handles are closed and every listener
	// has been removed.
	StateDisconnected
)

func (s State) String() string {
	switch s {
	case StateEnabled:
		return "enabled"
	case StateDisabled:
		return "disabled"
	case StateDisconnected:
		return "disconnected"
	}
	return "unknown"
}

// Dependencies holds the optional collaborators a Router can use. Leave
// fields nil/zero for the defaults.
type Dependencies struct {
	// Transport supplies pre-built handles, bypassing the registry lookup.
	// When set, both handles must be present.
	Transport transportpkg.Transport
	// Registry overrides the transport registry used to build handles.
	// Defaults to transport.DefaultRegistry.
	Registry *transportpkg.Registry
	// Codec overrides the wire codec. Defaults to the JSON codec.
	Codec Codec
	// Hooks receive publish/delivery/decode-failure callbacks.
	Hooks Hooks
	// MetricsRegistry overrides the Prometheus registry used when
	// Config.MetricsEnabled is set. Defaults to the global registry.
	MetricsRegistry *prometheus.Registry
}

// Router is the broadcast-duplication layer over a pub/sub transport. It owns
// an outbound publisher handle and an inbound subscriber handle, the set of
// active channel subscriptions, and the per-channel listener registry.
// Construct one per process with NewRouter and pass it by reference; tear it
// down once with Disconnect.
type Router struct {
	Conf   *configpkg.Config
	Logger loggingpkg.ServiceLogger

	publisher  message.Publisher
	subscriber message.Subscriber

	codec   Codec
	hooks   Hooks
	metrics *routerMetrics

	mu        sync.Mutex
	state     State
	listeners map[string][]*Subscription
	streams   map[string]context.CancelFunc

	// baseCtx parents every inbound channel stream; baseCancel fires on
	// Disconnect.
	baseCtx    context.Context
	baseCancel context.CancelFunc
}

// NewRouter constructs a Router for the supplied configuration, panicking on
// failure. Most callers should prefer TryNewRouter.
func NewRouter(conf *configpkg.Config, log loggingpkg.ServiceLogger, ctx context.Context, deps Dependencies) *Router {
	r, err := TryNewRouter(conf, log, ctx, deps)
	if err != nil {
		panic(err)
	}
	return r
}

// TryNewRouter constructs a Router for the supplied configuration. When the
// config is marked Disabled no transport handles are opened; enabling the
// router later does not open them retroactively.
func TryNewRouter(conf *configpkg.Config, log loggingpkg.ServiceLogger, ctx context.Context, deps Dependencies) (*Router, error) {
	if conf == nil {
		return nil, errspkg.ErrConfigRequired
	}
	if log == nil {
		return nil, errspkg.ErrLoggerRequired
	}
	if err := conf.Validate(); err != nil {
		return nil, &errspkg.ConfigValidationError{Err: err}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	baseCtx, baseCancel := context.WithCancel(context.Background())
	r := &Router{
		Conf:       conf,
		Logger:     log,
		codec:      deps.Codec,
		hooks:      deps.Hooks,
		listeners:  make(map[string][]*Subscription),
		streams:    make(map[string]context.CancelFunc),
		baseCtx:    baseCtx,
		baseCancel: baseCancel,
	}
	if r.codec == nil {
		r.codec = jsoncodec.Default
	}

	if conf.Disabled {
		r.state = StateDisabled
		log.Info("Broadcast router constructed disabled; transport handles not opened",
			loggingpkg.LogFields{"pubsub_system": conf.PubSubSystem})
	} else {
		tr := deps.Transport
		if tr.Publisher == nil && tr.Subscriber == nil {
			registry := deps.Registry
			if registry == nil {
				registry = transportpkg.DefaultRegistry
			}
			log.Info("Creating broadcast router",
				loggingpkg.LogFields{
					"pubsub_system":     conf.PubSubSystem,
					"broadcast_channel": conf.GetBroadcastChannel(),
					"config":            conf,
				})
			built, err := registry.Build(ctx, conf, loggingpkg.NewWatermillAdapter(log))
			if err != nil {
				baseCancel()
				return nil, err
			}
			tr = built
		} else if tr.Publisher == nil {
			baseCancel()
			return nil, errspkg.ErrPublisherRequired
		} else if tr.Subscriber == nil {
			baseCancel()
			return nil, errspkg.ErrSubscriberRequired
		}
		r.publisher = tr.Publisher
		r.subscriber = tr.Subscriber
	}

	if conf.MetricsEnabled {
		reg := prometheus.Registerer(prometheus.DefaultRegisterer)
		gatherer := prometheus.Gatherer(prometheus.DefaultGatherer)
		if deps.MetricsRegistry != nil {
			reg = deps.MetricsRegistry
			gatherer = deps.MetricsRegistry
		}
		m, err := newRouterMetrics(reg)
		if err != nil {
			baseCancel()
			return nil, err
		}
		r.metrics = m
		if conf.MetricsPort > 0 {
			startMetricsServer(conf.MetricsPort, gatherer, log)
		}
	}

	return r, nil
}

// State returns the current lifecycle state.
func (r *Router) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Enabled reports whether the router is currently in the enabled state.
func (r *Router) Enabled() bool {
	return r.State() == StateEnabled
}

// Enable re-enables a disabled router. No-op if already enabled or
// disconnected. Transport handles that were never opened (a router
// constructed disabled) stay unopened.
func (r *Router) Enable() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateDisabled {
		return
	}
	r.state = StateEnabled
	r.Logger.Info("Broadcast router enabled", nil)
}

// Disable suspends the router: publish/subscribe/unsubscribe become silent
// no-ops until Enable. Transport handles remain open. No-op if already
// disabled or disconnected.
func (r *Router) Disable() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateEnabled {
		return
	}
	r.state = StateDisabled
	r.Logger.Info("Broadcast router disabled", nil)
}

// Disconnect tears the router down: removes every registered listener,
// cancels every inbound channel stream, and closes both transport handles.
// Terminal; a second call is a no-op returning nil.
func (r *Router) Disconnect() error {
	r.mu.Lock()
	if r.state == StateDisconnected {
		r.mu.Unlock()
		return nil
	}
	r.state = StateDisconnected
	for channel, cancel := range r.streams {
		cancel()
		delete(r.streams, channel)
	}
	r.listeners = make(map[string][]*Subscription)
	r.mu.Unlock()

	r.baseCancel()

	var errs []error
	if r.publisher != nil {
		errs = append(errs, r.publisher.Close())
	}
	if r.subscriber != nil {
		errs = append(errs, r.subscriber.Close())
	}

	r.Logger.Info("Broadcast router disconnected", nil)
	return errors.Join(errs...)
}

// BroadcastChannel returns the reserved "all events" channel name.
func (r *Router) BroadcastChannel() string {
	return r.Conf.GetBroadcastChannel()
}
