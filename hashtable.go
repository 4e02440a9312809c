package smaz

import "bytes"

// hashTableSize is the number of buckets in the hash table. It's also the
// largest value a codeword byte can take plus one.
const hashTableSize = 255

// hashRecord is a single term stored in a bucket. The term bytes are shared
// with the dictionary's term table, never copied.
type hashRecord struct {
	term  []byte
	index byte
}

// bucket holds the records whose hash maps to it, in insertion order. Lookups
// scan it front to back and the first matching record wins.
type bucket []hashRecord

type hashTable [hashTableSize]bucket

// termHashes computes the three hashes used to place a term in the table, or to
// probe it for a match at some position in the input. h2 is only meaningful if
// `data` has at least two bytes, h3 if it has at least three; otherwise they're
// zero.
//
// All terms of three bytes or more share h3 regardless of their real length.
// The stored length disambiguates them during the scan. Changing this breaks
// compatibility with existing compressed data.
func termHashes(data []byte) (h1, h2, h3 uint) {
	h1 = uint(data[0]) << 3
	if len(data) < 2 {
		return h1, 0, 0
	}
	h2 = h1 + uint(data[1])
	if len(data) < 3 {
		return h1, h2, 0
	}
	h3 = h2 ^ uint(data[2])
	return h1, h2, h3
}

// insert appends a record to the end of the bucket the hash maps to.
func (table *hashTable) insert(hash uint, record hashRecord) {
	index := hash % hashTableSize
	table[index] = append(table[index], record)
}

// find scans the bucket `hash` maps to for a record whose term is exactly
// `candidate`. It returns the record's term index.
func (table *hashTable) find(hash uint, candidate []byte) (byte, bool) {
	for _, record := range table[hash%hashTableSize] {
		if len(record.term) == len(candidate) && bytes.Equal(record.term, candidate) {
			return record.index, true
		}
	}
	return 0, false
}
