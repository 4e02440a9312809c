package smaz

import "io"

// defaultDictionary is compiled once at startup and shared by every codec
// created with [New].
var defaultDictionary = mustCompile(defaultTerms[:])

// Codec compresses and decompresses data with a single dictionary. It has no
// mutable state, so one Codec can be used from multiple goroutines at once.
//
// Data compressed with one dictionary can only be decompressed with a codec
// using the exact same dictionary.
type Codec struct {
	dict *Dictionary
}

// New returns a codec using the built-in dictionary.
func New() *Codec {
	return &Codec{dict: defaultDictionary}
}

// NewWithTerms compiles `terms` into a dictionary and returns a codec using it.
// See [Compile] for the restrictions on `terms`.
func NewWithTerms(terms []string) (*Codec, error) {
	dict, err := Compile(terms)
	if err != nil {
		return nil, err
	}
	return &Codec{dict: dict}, nil
}

// NewWithDictionary returns a codec using an already compiled dictionary.
func NewWithDictionary(dict *Dictionary) *Codec {
	return &Codec{dict: dict}
}

// Dictionary returns the codec's compiled dictionary.
func (c *Codec) Dictionary() *Dictionary {
	return c.dict
}

// codewordWriter counts the bytes written to the underlying stream and turns
// short writes into errors. If limit isn't negative, writes that would take the
// total past it fail with [io.ErrShortBuffer] without touching the stream.
type codewordWriter struct {
	stream  io.Writer
	limit   int64
	scratch [1]byte
	written int64
}

func newCodewordWriter(stream io.Writer, limit int) *codewordWriter {
	return &codewordWriter{stream: stream, limit: int64(limit)}
}

func (w *codewordWriter) reserve(size int) error {
	if w.limit >= 0 && w.written+int64(size) > w.limit {
		return io.ErrShortBuffer
	}
	return nil
}

func (w *codewordWriter) write(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if err := w.reserve(len(p)); err != nil {
		return err
	}

	n, err := w.stream.Write(p)
	w.written += int64(n)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return err
}

func (w *codewordWriter) writeByte(b byte) error {
	byteWriter, ok := w.stream.(io.ByteWriter)
	if !ok {
		w.scratch[0] = b
		return w.write(w.scratch[:])
	}

	if err := w.reserve(1); err != nil {
		return err
	}
	if err := byteWriter.WriteByte(b); err != nil {
		return err
	}
	w.written++
	return nil
}
