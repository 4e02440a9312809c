// Package smaz compresses short strings with a fixed, shared dictionary.
//
// General-purpose compressors need headers and a window of history before they
// start paying off, so they usually make strings of a few dozen bytes larger,
// not smaller. Smaz works the other way around: both sides agree on a list of
// up to 247 frequent substrings (" ", "the", "e", "http://", ...) ahead of time,
// and the compressor replaces each occurrence with a single byte. URLs, log
// lines and chat messages in English usually come out noticeably shorter.
//
// # Format
//
// The compressed form is a sequence of tokens with no header, length prefix or
// checksum. With a dictionary of N terms, each token is either:
//
//	[C]            C < N; expands to term C
//	[N+L] b1..bL   a literal run of L raw bytes, 1 <= L <= 254-N
//
// For the built-in dictionary N is 247, so literal runs hold at most 7 bytes
// and longer runs are split. A run of ten bytes no term matches is written as
// `254 b1..b7 250 b8 b9 b10`.
//
// The dictionary is an implicit part of the format. Data compressed with one
// dictionary decompresses to garbage (or fails) with any other.
//
// # Matching
//
// The compressor is greedy: at each position it emits the longest term that
// matches, without looking ahead. Terms are found through a hash table of 255
// buckets keyed by the first one, two or three bytes of the candidate.
//
// # Buffers
//
// [Codec.Compress] and [Codec.Decompress] write into a buffer owned by the
// caller and fail with [ErrBufferTooSmall] instead of growing it.
// [Codec.CompressBytes] and [Codec.DecompressBytes] allocate an exactly-sized
// result instead.
package smaz
