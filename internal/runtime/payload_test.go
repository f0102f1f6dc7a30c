package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadTimestamp(t *testing.T) {
	ts, ok := Payload{FieldTimestamp: int64(1700000000000)}.Timestamp()
	assert.True(t, ok)
	assert.Equal(t, int64(1700000000000), ts)

	// JSON decoding yields float64 numbers.
	ts, ok = Payload{FieldTimestamp: float64(1700000000000)}.Timestamp()
	assert.True(t, ok)
	assert.Equal(t, int64(1700000000000), ts)

	_, ok = Payload{}.Timestamp()
	assert.False(t, ok)

	_, ok = Payload{FieldTimestamp: "yesterday"}.Timestamp()
	assert.False(t, ok)
}

func TestPayloadChannel(t *testing.T) {
	channel, ok := Payload{FieldChannel: "users"}.Channel()
	assert.True(t, ok)
	assert.Equal(t, "users", channel)

	_, ok = Payload{}.Channel()
	assert.False(t, ok)
}

func TestPayloadProtoRoundTrip(t *testing.T) {
	p := Payload{
		"text":   "hello",
		"count":  float64(3),
		"nested": map[string]any{"ok": true},
	}

	s, err := p.ToProto()
	require.NoError(t, err)

	back := PayloadFromProto(s)
	assert.Equal(t, p, back)
}

func TestPayloadFromProtoNil(t *testing.T) {
	assert.Nil(t, PayloadFromProto(nil))
}
