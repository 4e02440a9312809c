package smaz

import (
	"bytes"
	"fmt"
	"io"

	"github.com/noxer/bytewriter"
)

// CompressBound gives the largest number of bytes [Codec.Compress] can produce
// from `n` bytes of input. Every literal byte costs at most one header byte and
// a dictionary match never emits more bytes than it consumes.
func CompressBound(n int) int {
	return 2 * n
}

// CompressTo compresses `input` and writes the codeword stream to `output`.
//
// At each position the longest matching term is emitted as a single byte.
// Bytes that don't start any match are collected into a literal run, which is
// written out as soon as the next match is found or the input ends.
//
// The returned int64 gives the number of bytes written to the output. If an
// error occurred, it's the number written before the failure.
func (c *Codec) CompressTo(output io.Writer, input []byte) (int64, error) {
	writer := newCodewordWriter(output, -1)
	err := c.compress(writer, input)
	return writer.written, err
}

func (c *Codec) compress(writer *codewordWriter, input []byte) error {
	verbatimStart := 0
	verbatimSize := 0

	for i := 0; i < len(input); {
		if c.dict.mayMatchAt(input[i]) {
			code, size, found := c.dict.longestMatch(input[i:])
			if found {
				err := c.flushVerbatim(writer, input[verbatimStart:verbatimStart+verbatimSize])
				if err != nil {
					return err
				}
				if err = writer.writeByte(code); err != nil {
					return err
				}

				i += size
				verbatimStart = i
				verbatimSize = 0
				continue
			}
		}

		verbatimSize++
		i++
	}

	return c.flushVerbatim(writer, input[verbatimStart:verbatimStart+verbatimSize])
}

// flushVerbatim writes a pending literal run as one or more header+payload
// records. Each record holds at most [Dictionary.MaxVerbatimLength] - 1 bytes.
func (c *Codec) flushVerbatim(writer *codewordWriter, run []byte) error {
	maxChunk := c.dict.maxRunLength()
	for len(run) > 0 {
		chunk := len(run)
		if chunk > maxChunk {
			chunk = maxChunk
		}

		if err := writer.writeByte(byte(c.dict.TermCount() + chunk)); err != nil {
			return err
		}
		if err := writer.write(run[:chunk]); err != nil {
			return err
		}
		run = run[chunk:]
	}
	return nil
}

// Compress compresses `input` into the caller's `output` buffer and returns the
// number of bytes written. The buffer is never grown; if it's too small the
// call fails with [ErrBufferTooSmall] and the contents of `output` are
// undefined. A buffer of [CompressBound] bytes is always big enough.
func (c *Codec) Compress(input, output []byte) (int, error) {
	writer := newCodewordWriter(bytewriter.New(output), len(output))
	if err := c.compress(writer, input); err != nil {
		return int(writer.written), ErrBufferTooSmall.Wrap(
			fmt.Errorf("compressing %d bytes into %d-byte buffer: %w", len(input), len(output), err))
	}
	return int(writer.written), nil
}

// CompressBytes compresses `input` into a new, exactly-sized slice.
func (c *Codec) CompressBytes(input []byte) []byte {
	var buffer bytes.Buffer
	buffer.Grow(len(input))

	// Writes to a bytes.Buffer can't fail.
	_, _ = c.CompressTo(&buffer, input)

	outputSlice := make([]byte, buffer.Len())
	copy(outputSlice, buffer.Bytes())
	return outputSlice
}
