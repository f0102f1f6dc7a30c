package runtime

import (
	"google.golang.org/protobuf/types/known/structpb"
)

// Envelope field names stamped into every published payload. If the caller's
// payload already carries fields with these names, they are overwritten.
const (
	FieldTimestamp = "timestamp"
	FieldChannel   = "channel"
)

// Payload is the unit of data carried on a channel: a JSON-object-shaped map.
// The router stamps FieldTimestamp and FieldChannel into it at publish time
// and listeners receive it with both fields populated.
type Payload map[string]any

// Timestamp returns the stamped publish time in milliseconds since the epoch.
// The second return is false when the field is missing or not numeric (the
// codec decodes JSON numbers as float64).
func (p Payload) Timestamp() (int64, bool) {
	switch v := p[FieldTimestamp].(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	}
	return 0, false
}

// Channel returns the stamped channel name.
func (p Payload) Channel() (string, bool) {
	v, ok := p[FieldChannel].(string)
	return v, ok
}

// ToProto converts the payload into a structpb.Struct so proto-speaking
// services can consume it without going through the JSON codec.
func (p Payload) ToProto() (*structpb.Struct, error) {
	return structpb.NewStruct(p)
}

// PayloadFromProto converts a structpb.Struct into a Payload.
func PayloadFromProto(s *structpb.Struct) Payload {
	if s == nil {
		return nil
	}
	return Payload(s.AsMap())
}

// Codec serializes payloads onto the wire and back. The default is the JSON
// codec; swap it via Dependencies.Codec. Implementations must round-trip
// structured data (objects, numbers, strings, nested structures).
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}
