package smaz

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/noxer/bytewriter"
)

// DecompressTo decodes the codeword stream in `input` and writes the original
// bytes to `output`.
//
// Each codeword below the dictionary's term count is replaced by that term.
// Any other codeword is a literal run header; the run length is the codeword
// minus the term count, and that many bytes are copied through unchanged.
//
// The returned int64 gives the number of bytes written to the output. It fails
// with [ErrMalformedInput] if a literal run goes past the end of `input`.
func (c *Codec) DecompressTo(output io.Writer, input []byte) (int64, error) {
	writer := newCodewordWriter(output, -1)
	err := c.decompress(writer, input)
	return writer.written, err
}

func (c *Codec) decompress(writer *codewordWriter, input []byte) error {
	termCount := c.dict.TermCount()

	for i := 0; i < len(input); {
		codeword := int(input[i])
		if codeword < termCount {
			if err := writer.write(c.dict.terms[codeword]); err != nil {
				return err
			}
			i++
			continue
		}

		runLength := codeword - termCount
		runStart := i + 1
		if runStart+runLength > len(input) {
			return ErrMalformedInput.WithMessage(
				fmt.Sprintf(
					"literal run at offset %d needs %d bytes, only %d left",
					i,
					runLength,
					len(input)-runStart))
		}

		if err := writer.write(input[runStart : runStart+runLength]); err != nil {
			return err
		}
		i = runStart + runLength
	}
	return nil
}

// Decompress decodes `input` into the caller's `output` buffer and returns the
// number of bytes written. The buffer is never grown; if it's too small the
// call fails with [ErrBufferTooSmall] and the contents of `output` are
// undefined. Truncated input fails with [ErrMalformedInput].
func (c *Codec) Decompress(input, output []byte) (int, error) {
	writer := newCodewordWriter(bytewriter.New(output), len(output))
	err := c.decompress(writer, input)
	if err == nil {
		return int(writer.written), nil
	}
	if errors.Is(err, ErrMalformedInput) {
		return int(writer.written), err
	}
	return int(writer.written), ErrBufferTooSmall.Wrap(
		fmt.Errorf("decompressing into %d-byte buffer: %w", len(output), err))
}

// DecompressBytes decodes `input` into a new, exactly-sized slice.
func (c *Codec) DecompressBytes(input []byte) ([]byte, error) {
	var buffer bytes.Buffer
	buffer.Grow(len(input) * 2)

	if _, err := c.DecompressTo(&buffer, input); err != nil {
		return nil, err
	}

	outputSlice := make([]byte, buffer.Len())
	copy(outputSlice, buffer.Bytes())
	return outputSlice, nil
}
