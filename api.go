package smaz

import "io"

// Compressor is the interface for types that compress into a caller-owned
// buffer.
//
// Implementations must not grow `output`. If it's too small they must return
// an error wrapping [ErrBufferTooSmall] rather than truncating the result.
type Compressor interface {
	Compress(input, output []byte) (int, error)
}

// Decompressor is the interface for types that decompress into a caller-owned
// buffer.
//
// Implementations must not grow `output`. They return an error wrapping
// [ErrBufferTooSmall] if it's too small and one wrapping [ErrMalformedInput]
// if `input` is truncated.
type Decompressor interface {
	Decompress(input, output []byte) (int, error)
}

// StreamCodec is the interface for codecs that can write their output to an
// arbitrary stream.
type StreamCodec interface {
	// CompressTo compresses `input` and writes the result to `output`. The
	// returned int64 is the number of bytes written.
	CompressTo(output io.Writer, input []byte) (int64, error)
	// DecompressTo decompresses `input` and writes the result to `output`.
	DecompressTo(output io.Writer, input []byte) (int64, error)
}

var (
	_ Compressor   = (*Codec)(nil)
	_ Decompressor = (*Codec)(nil)
	_ StreamCodec  = (*Codec)(nil)
)
