package runtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	loggingpkg "github.com/fancast/fancast/internal/runtime/logging"
)

func TestHooksMerge(t *testing.T) {
	var calls []string

	first := Hooks{
		OnPublish:     func(channel, uuid string) { calls = append(calls, "first-publish") },
		OnDeliver:     func(channel, uuid string, p Payload) { calls = append(calls, "first-deliver") },
		OnDecodeError: func(channel, uuid string, err error) { calls = append(calls, "first-decode") },
	}
	second := Hooks{
		OnPublish: func(channel, uuid string) { calls = append(calls, "second-publish") },
	}

	merged := first.Merge(second)

	merged.OnPublish("users", "u1")
	assert.Equal(t, []string{"first-publish", "second-publish"}, calls)

	calls = nil
	merged.OnDeliver("users", "u1", Payload{})
	merged.OnDecodeError("users", "u1", errors.New("bad"))
	assert.Equal(t, []string{"first-deliver", "first-decode"}, calls)
}

func TestHooksMergeNilSides(t *testing.T) {
	merged := Hooks{}.Merge(Hooks{})
	assert.Nil(t, merged.OnPublish)
	assert.Nil(t, merged.OnDeliver)
	assert.Nil(t, merged.OnDecodeError)

	called := false
	merged = Hooks{}.Merge(Hooks{OnPublish: func(string, string) { called = true }})
	merged.OnPublish("users", "u1")
	assert.True(t, called)
}

func TestLoggingHooks(t *testing.T) {
	hooks := LoggingHooks(loggingpkg.NopLogger())

	assert.NotNil(t, hooks.OnPublish)
	assert.NotNil(t, hooks.OnDeliver)
	assert.NotNil(t, hooks.OnDecodeError)

	// Must not panic.
	hooks.OnPublish("users", "u1")
	hooks.OnDeliver("users", "u1", Payload{"k": "v"})
	hooks.OnDecodeError("users", "u1", errors.New("bad payload"))
}
