// Package codec converts between structured values and wire payloads.
// The JSON decoder is the default; the Decoder interface exists so tests
// and alternative wire formats can plug in.
package codec
