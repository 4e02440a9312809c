package smaz

import (
	"fmt"

	"github.com/boljen/go-bitmap"
	"github.com/hashicorp/go-multierror"
)

const (
	// maxCodewordValue is the largest value a single codeword byte may hold.
	maxCodewordValue = 255

	// MaxTermLength is the longest a term may be, in bytes. Lengths are stored
	// in a single byte.
	MaxTermLength = 255

	// reservedHeaderCodes is the number of codeword values a dictionary must
	// leave free for literal run headers.
	reservedHeaderCodes = 8

	// MaxTerms is the largest number of terms a dictionary can hold.
	MaxTerms = maxCodewordValue - reservedHeaderCodes
)

// Dictionary is a compiled term list: the term table used by the decoder and
// the hash table used by the encoder. It's never modified after [Compile]
// returns, so a single Dictionary can be shared by any number of goroutines.
type Dictionary struct {
	terms       [][]byte
	table       hashTable
	maxTermSize int

	// leadBytes has a bit set for every byte value that begins at least one
	// term. Positions starting with any other byte can't match anything.
	leadBytes bitmap.Bitmap
}

// BucketStats describes how the dictionary's terms are spread across the hash
// table.
type BucketStats struct {
	Buckets       int
	EmptyBuckets  int
	Records       int
	LongestBucket int
}

// Compile builds a [Dictionary] from an ordered list of terms. A term's index
// in `terms` becomes its codeword.
//
// It fails with [ErrConfiguration] if there are more than [MaxTerms] terms, or
// if any term is empty or longer than [MaxTermLength] bytes. All invalid terms
// are reported in the returned error, not just the first one.
func Compile(terms []string) (*Dictionary, error) {
	if len(terms) > MaxTerms {
		return nil, ErrConfiguration.WithMessage(
			fmt.Sprintf(
				"dictionary has %d terms, at most %d are allowed",
				len(terms),
				MaxTerms))
	}

	var badTerms *multierror.Error
	for i, term := range terms {
		if len(term) == 0 {
			badTerms = multierror.Append(
				badTerms, ErrConfiguration.WithMessage(fmt.Sprintf("term %d is empty", i)))
		} else if len(term) > MaxTermLength {
			badTerms = multierror.Append(
				badTerms,
				ErrConfiguration.WithMessage(
					fmt.Sprintf(
						"term %d is %d bytes long, at most %d are allowed",
						i,
						len(term),
						MaxTermLength)))
		}
	}
	if err := badTerms.ErrorOrNil(); err != nil {
		return nil, err
	}

	dict := &Dictionary{
		terms:     make([][]byte, len(terms)),
		leadBytes: bitmap.New(256),
	}

	for x, term := range terms {
		termBytes := []byte(term)
		dict.terms[x] = termBytes
		if len(termBytes) > dict.maxTermSize {
			dict.maxTermSize = len(termBytes)
		}
		dict.leadBytes.Set(int(termBytes[0]), true)

		// A term is placed once for each hash its length allows, so that the
		// encoder finds it no matter which candidate length it's probing.
		record := hashRecord{term: termBytes, index: byte(x)}
		h1, h2, h3 := termHashes(termBytes)
		dict.table.insert(h1, record)
		if len(termBytes) >= 2 {
			dict.table.insert(h2, record)
		}
		if len(termBytes) >= 3 {
			dict.table.insert(h3, record)
		}
	}

	for i := range dict.table {
		if dict.table[i] == nil {
			dict.table[i] = bucket{}
		}
	}
	return dict, nil
}

// mustCompile is like [Compile] but panics if the dictionary is invalid. It's
// only meant for the built-in dictionary.
func mustCompile(terms []string) *Dictionary {
	dict, err := Compile(terms)
	if err != nil {
		panic(fmt.Errorf("failed to compile built-in dictionary: %w", err))
	}
	return dict
}

// TermCount gives the number of terms in the dictionary. Codewords below this
// value are dictionary references; the rest are literal run headers.
func (d *Dictionary) TermCount() int {
	return len(d.terms)
}

// MaxTermSize gives the length of the longest term, in bytes.
func (d *Dictionary) MaxTermSize() int {
	return d.maxTermSize
}

// MaxVerbatimLength gives the number of codeword values left over for literal
// run headers. The encoder never emits a run longer than one less than this.
func (d *Dictionary) MaxVerbatimLength() int {
	return maxCodewordValue - len(d.terms)
}

// maxRunLength is the longest literal run the encoder puts after one header.
func (d *Dictionary) maxRunLength() int {
	return d.MaxVerbatimLength() - 1
}

// Term returns the bytes of the term with the given codeword. The returned
// slice must not be modified.
func (d *Dictionary) Term(code byte) ([]byte, bool) {
	if int(code) >= len(d.terms) {
		return nil, false
	}
	return d.terms[code], true
}

// Terms returns the dictionary's terms in codeword order.
func (d *Dictionary) Terms() []string {
	terms := make([]string, len(d.terms))
	for i, term := range d.terms {
		terms[i] = string(term)
	}
	return terms
}

// Stats reports how full the hash table is.
func (d *Dictionary) Stats() BucketStats {
	stats := BucketStats{Buckets: len(d.table)}
	for _, b := range d.table {
		if len(b) == 0 {
			stats.EmptyBuckets++
		}
		if len(b) > stats.LongestBucket {
			stats.LongestBucket = len(b)
		}
		stats.Records += len(b)
	}
	return stats
}

// mayMatchAt reports whether any term starts with `b`.
func (d *Dictionary) mayMatchAt(b byte) bool {
	return d.leadBytes.Get(int(b))
}

// longestMatch finds the longest term that is a prefix of `input`, trying the
// longest possible size first. It returns the term's codeword and its length.
func (d *Dictionary) longestMatch(input []byte) (byte, int, bool) {
	h1, h2, h3 := termHashes(input)

	totalSize := d.maxTermSize
	if len(input) < totalSize {
		totalSize = len(input)
	}

	for size := totalSize; size > 0; size-- {
		var hash uint
		switch size {
		case 1:
			hash = h1
		case 2:
			hash = h2
		default:
			hash = h3
		}

		if code, found := d.table.find(hash, input[:size]); found {
			return code, size, true
		}
	}
	return 0, 0, false
}
