// Package dictionaries reads and writes smaz term lists as CSV files.
//
// A dictionary file has a header row with a `term` column, followed by one row
// per term in codeword order. Other columns are ignored. Terms beginning or
// ending with whitespace must be quoted, e.g.
//
//	term
//	" "
//	the
//	"e "
package dictionaries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jszwec/csvutil"
)

// TermRecord is a single row of a dictionary file.
type TermRecord struct {
	Term string `csv:"term"`
}

// Load reads a term list from a CSV stream. The terms are not validated; use
// [smaz.Compile] for that.
func Load(input io.Reader) ([]string, error) {
	csvReader := csv.NewReader(input)

	decoder, err := csvutil.NewDecoder(csvReader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("dictionary file is empty, expected a header row")
		}
		return nil, fmt.Errorf("failed to create CSV decoder: %w", err)
	}
	decoder.DisallowMissingColumns = true

	terms := make([]string, 0, 256)
	for {
		var row TermRecord
		if err = decoder.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to decode row %d: %w", len(terms)+1, err)
		}
		terms = append(terms, row.Term)
	}
	return terms, nil
}

// LoadFile reads a term list from the CSV file at `path`.
func LoadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	terms, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return terms, nil
}

// Write writes a term list to `output` as CSV, header row first. Reading the
// result back with [Load] gives the same terms in the same order.
func Write(output io.Writer, terms []string) error {
	csvWriter := csv.NewWriter(output)
	encoder := csvutil.NewEncoder(csvWriter)

	// Write the header explicitly so an empty list still produces a valid file.
	if err := encoder.EncodeHeader(TermRecord{}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, term := range terms {
		if err := encoder.Encode(TermRecord{Term: term}); err != nil {
			return fmt.Errorf("failed to encode term %d: %w", i, err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
