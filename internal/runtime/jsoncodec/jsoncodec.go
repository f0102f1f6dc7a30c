// Package jsoncodec provides the default JSON wire codec for fancast,
// backed by sonic's stdlib-compatible configuration.
package jsoncodec

import (
	"io"

	"github.com/bytedance/sonic"
)

var defaultConfig = sonic.ConfigStd

func Marshal(v any) ([]byte, error) {
	return defaultConfig.Marshal(v)
}

func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return defaultConfig.MarshalIndent(v, prefix, indent)
}

func Unmarshal(data []byte, v any) error {
	return defaultConfig.Unmarshal(data, v)
}

func Encode(w io.Writer, v any) error {
	enc := defaultConfig.NewEncoder(w)
	return enc.Encode(v)
}

func Decode(r io.Reader, v any) error {
	dec := defaultConfig.NewDecoder(r)
	return dec.Decode(v)
}

// Codec adapts the package functions to the runtime Codec interface so the
// router can swap in a different wire format.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) { return Marshal(v) }

func (Codec) Unmarshal(data []byte, v any) error { return Unmarshal(data, v) }

// Default is the codec used by routers that do not override Dependencies.Codec.
var Default = Codec{}
