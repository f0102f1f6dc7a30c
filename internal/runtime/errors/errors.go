package errors

import sterrors "errors"

var (
	ErrRouterRequired     = sterrors.New("fancast: broadcast router is required")
	ErrChannelRequired    = sterrors.New("fancast: channel name is required")
	ErrHandlerRequired    = sterrors.New("fancast: listener handler is required")
	ErrPublisherRequired  = sterrors.New("fancast: publisher is required")
	ErrSubscriberRequired = sterrors.New("fancast: subscriber is required")
	ErrConfigRequired     = sterrors.New("fancast: config is required")
	ErrLoggerRequired     = sterrors.New("fancast: logger is required")
	ErrNotConnected       = sterrors.New("fancast: transport handles were never opened")
	ErrRouterDisconnected = sterrors.New("fancast: router has been disconnected")
)

// ConfigValidationError wraps the joined validation failures of a Config so
// callers can distinguish bad configuration from transport errors.
type ConfigValidationError struct {
	Err error
}

func (e *ConfigValidationError) Error() string {
	if e == nil || e.Err == nil {
		return "fancast: invalid config"
	}
	return "fancast: invalid config: " + e.Err.Error()
}

func (e *ConfigValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
