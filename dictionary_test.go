package smaz_test

import (
	"strings"
	"testing"

	"github.com/dargueta/smaz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTerms(count int) []string {
	terms := make([]string, count)
	for i := range terms {
		terms[i] = string([]byte{byte('a' + i%26), byte('a' + (i/26)%26), byte('0' + i/676)})
	}
	return terms
}

func TestCompile__DefaultDictionary(t *testing.T) {
	dict := smaz.New().Dictionary()
	assert.Equal(t, 247, dict.TermCount())
	assert.Equal(t, 8, dict.MaxTermSize())
	assert.Equal(t, 8, dict.MaxVerbatimLength())
	assert.Equal(t, smaz.DefaultTerms(), dict.Terms())

	term, ok := dict.Term(1)
	require.True(t, ok)
	assert.Equal(t, []byte("the"), term)

	_, ok = dict.Term(247)
	assert.False(t, ok, "codeword 247 is a header, not a term")
}

func TestCompile__MaxTerms(t *testing.T) {
	dict, err := smaz.Compile(makeTerms(smaz.MaxTerms))
	require.NoError(t, err)
	assert.Equal(t, 247, dict.TermCount())
}

func TestCompile__TooManyTerms(t *testing.T) {
	for _, count := range []int{248, 255, 300} {
		_, err := smaz.Compile(makeTerms(count))
		assert.ErrorIsf(t, err, smaz.ErrConfiguration, "%d terms should be rejected", count)
	}

	_, err := smaz.NewWithTerms(makeTerms(248))
	assert.ErrorIs(t, err, smaz.ErrConfiguration)
}

func TestCompile__TermLength(t *testing.T) {
	_, err := smaz.Compile([]string{strings.Repeat("x", smaz.MaxTermLength)})
	assert.NoError(t, err, "255-byte term should be allowed")

	_, err = smaz.Compile([]string{"ok", strings.Repeat("x", smaz.MaxTermLength+1)})
	assert.ErrorIs(t, err, smaz.ErrConfiguration)
}

func TestCompile__ReportsEveryBadTerm(t *testing.T) {
	terms := []string{"fine", "", "also fine", strings.Repeat("y", 300)}

	_, err := smaz.Compile(terms)
	require.ErrorIs(t, err, smaz.ErrConfiguration)
	assert.Contains(t, err.Error(), "term 1 is empty")
	assert.Contains(t, err.Error(), "term 3 is 300 bytes long")
}

func TestCompile__DoesNotKeepCallerSlice(t *testing.T) {
	terms := []string{"abc", "de"}
	codec, err := smaz.NewWithTerms(terms)
	require.NoError(t, err)

	terms[0] = "zzz"
	assert.Equal(t, []byte{0, 1}, codec.CompressString("abcde"))
}

func TestDefaultTerms__IsCopy(t *testing.T) {
	terms := smaz.DefaultTerms()
	terms[1] = "not the"
	assert.Equal(t, "the", smaz.DefaultTerms()[1])
}

func TestStats__Default(t *testing.T) {
	dict := smaz.New().Dictionary()
	stats := dict.Stats()

	expectedRecords := 0
	for _, term := range dict.Terms() {
		if len(term) > 3 {
			expectedRecords += 3
		} else {
			expectedRecords += len(term)
		}
	}

	assert.Equal(t, 255, stats.Buckets)
	assert.Equal(t, expectedRecords, stats.Records)
	assert.Less(t, stats.EmptyBuckets, stats.Buckets)
	assert.GreaterOrEqual(t, stats.LongestBucket, 1)
}

func TestStats__Empty(t *testing.T) {
	dict, err := smaz.Compile(nil)
	require.NoError(t, err)

	stats := dict.Stats()
	assert.Equal(t, smaz.BucketStats{Buckets: 255, EmptyBuckets: 255}, stats)
	assert.Equal(t, 0, dict.MaxTermSize())
}

func TestNewWithDictionary(t *testing.T) {
	dict, err := smaz.Compile([]string{"foo"})
	require.NoError(t, err)

	codec := smaz.NewWithDictionary(dict)
	assert.Same(t, dict, codec.Dictionary())
	assert.Equal(t, []byte{0, 2, 'x'}, codec.CompressString("foox"))
}
