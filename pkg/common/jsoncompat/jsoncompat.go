// Package jsoncompat hides which json implementation the binaries are built with.
package jsoncompat

type Encoder interface {
	Encode(v any) error
}

type Decoder interface {
	Decode(v any) error
}
