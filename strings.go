package smaz

import "fmt"

// DefaultDecompressBufferSize is the buffer size [Codec.DecompressString] uses
// when the caller doesn't give one.
const DefaultDecompressBufferSize = 1024

// CompressString compresses the UTF-8 bytes of `text`.
func (c *Codec) CompressString(text string) []byte {
	output := make([]byte, CompressBound(len(text)))

	// The buffer is sized for the worst case so this can't fail.
	n, _ := c.Compress([]byte(text), output)
	return output[:n]
}

// DecompressString decodes `data` into a buffer of `bufferSize` bytes and
// returns the result as a string. If `bufferSize` is zero or negative,
// [DefaultDecompressBufferSize] is used.
//
// If the decompressed text doesn't fit in the buffer this fails with
// [ErrBufferTooSmall]. Truncated input still fails with [ErrMalformedInput];
// the two conditions are never reported as one another.
func (c *Codec) DecompressString(data []byte, bufferSize int) (string, error) {
	if bufferSize <= 0 {
		bufferSize = DefaultDecompressBufferSize
	}

	buffer := make([]byte, bufferSize)
	n, err := c.Decompress(data, buffer)
	if err != nil {
		return "", fmt.Errorf("failed to decompress string: %w", err)
	}
	return string(buffer[:n]), nil
}
