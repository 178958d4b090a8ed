package codec

import (
	"encoding/json"

	"github.com/restpipe/restpipe/httpclient"
)

// Decoder converts validated response bytes into a structured value. It must
// be total: failures are reported through the error return, never a panic,
// and the input is never mutated.
type Decoder interface {
	Decode(data []byte, v any) error
}

// JSON is the encoding/json-backed Decoder.
type JSON struct{}

// Decode unmarshals data into v.
func (JSON) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Decode decodes data into a value of type T using d, mapping failures to a
// decode error that preserves the decoder's diagnostic. A consumer can then
// distinguish "the server responded but the shape was wrong" from "the call
// itself failed".
func Decode[T any](d Decoder, data []byte) (T, error) {
	var v T
	if err := d.Decode(data, &v); err != nil {
		var zero T
		return zero, httpclient.NewDecodeError(err)
	}
	return v, nil
}
