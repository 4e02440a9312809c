// Package smaztest holds helpers shared by the tests of smaz and its
// subpackages.
package smaztest

import (
	"crypto/rand"
	"io"
	"testing"

	"github.com/dargueta/smaz"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// Sentences is a small corpus of the kind of text smaz is meant for.
var Sentences = []string{
	"Hello World",
	"Hello World, I am a Test String",
	"I am not a very big string, but I will have a very small buffer",
	"the quick brown fox jumps over the lazy dog",
	"http://www.example.com/index.html",
	"https://github.com/antirez/smaz",
	"2024-05-01T12:00:00Z INFO request handled in 13ms",
	"There is no place like home, and there never was.",
}

// RandomBytes returns `size` random bytes. It is guaranteed to either return a
// valid slice or fail the test and abort.
func RandomBytes(t *testing.T, size int) []byte {
	data := make([]byte, size)
	_, err := rand.Read(data)
	require.NoErrorf(t, err, "failed to generate %d random bytes", size)
	return data
}

// RoundTrip compresses `original` with `codec`, checks that decompressing the
// result gives `original` back, and returns the compressed bytes.
func RoundTrip(t *testing.T, codec *smaz.Codec, original []byte) []byte {
	compressed := make([]byte, smaz.CompressBound(len(original)))
	compressedSize, err := codec.Compress(original, compressed)
	require.NoError(t, err, "unexpected error while compressing")
	t.Logf("compressed %d -> %d", len(original), compressedSize)

	decompressed := make([]byte, len(original))
	decompressedSize, err := codec.Decompress(compressed[:compressedSize], decompressed)
	require.NoError(t, err, "unexpected error while decompressing")
	require.Equal(t, len(original), decompressedSize, "decompressed data has wrong size")
	require.Equal(t, original, decompressed, "decompressed data is wrong")

	return compressed[:compressedSize]
}

// DecompressToStream takes compressed data and returns a stream to access the
// decompressed bytes.
//
//   - Writes to the stream do not affect `compressed`.
//   - While the stream can be written to, its size is fixed to `expectedSize`.
//     Attempting to write past the end of this buffer will trigger an error.
func DecompressToStream(
	t *testing.T, codec *smaz.Codec, compressed []byte, expectedSize int,
) io.ReadWriteSeeker {
	decompressed, err := codec.DecompressBytes(compressed)
	require.NoError(t, err)
	require.Equal(t, expectedSize, len(decompressed), "decompressed data is wrong size")
	return bytesextra.NewReadWriteSeeker(decompressed)
}
