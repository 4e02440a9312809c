package dictionaries_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dargueta/smaz"
	"github.com/dargueta/smaz/dictionaries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad__Basic(t *testing.T) {
	data := "term\n\" \"\nthe\n\"e \"\n\"\"\"\"\n\", \"\n"
	terms, err := dictionaries.Load(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []string{" ", "the", "e ", "\"", ", "}, terms)
}

func TestLoad__ExtraColumnsIgnored(t *testing.T) {
	data := "index,term,notes\n0,http://,scheme\n1,.com,tld\n"
	terms, err := dictionaries.Load(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"http://", ".com"}, terms)
}

func TestLoad__MissingTermColumn(t *testing.T) {
	_, err := dictionaries.Load(strings.NewReader("word\nthe\n"))
	assert.Error(t, err, "file without a term column should be rejected")
}

func TestLoad__Empty(t *testing.T) {
	_, err := dictionaries.Load(strings.NewReader(""))
	assert.Error(t, err, "empty file should be rejected")
}

func TestWriteLoadRoundTrip__DefaultTerms(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, dictionaries.Write(&buffer, smaz.DefaultTerms()))

	terms, err := dictionaries.Load(&buffer)
	require.NoError(t, err)
	assert.Equal(t, smaz.DefaultTerms(), terms)
}

func TestWrite__EmptyListHasHeader(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, dictionaries.Write(&buffer, nil))
	assert.Equal(t, "term\n", buffer.String())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.csv")
	require.NoError(t, os.WriteFile(path, []byte("term\nfoo\nbar\n"), 0o644))

	terms, err := dictionaries.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar"}, terms)

	codec, err := smaz.NewWithTerms(terms)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1}, codec.CompressString("foobar"))
}

func TestLoadFile__Missing(t *testing.T) {
	_, err := dictionaries.LoadFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
