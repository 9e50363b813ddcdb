package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pathword/pkg/types"
)

func TestDefaultSource(t *testing.T) {
	src, err := Default()
	require.NoError(t, err)

	topics := src.Topics()
	assert.Contains(t, topics, "animals")
	assert.Contains(t, topics, "food")
	assert.Contains(t, topics, "space")

	list, err := src.Lookup("animals")
	require.NoError(t, err)
	assert.NotEmpty(t, list.Path)
	assert.NotEmpty(t, list.Bonus)
	for _, w := range append(append([]string(nil), list.Path...), list.Bonus...) {
		assert.GreaterOrEqual(t, len(w), types.MinWordLength)
		assert.LessOrEqual(t, len(w), types.MaxWordLength)
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	src, err := Default()
	require.NoError(t, err)

	_, err = src.Lookup("Animals")
	assert.NoError(t, err)

	_, err = src.Lookup("minerals")
	assert.ErrorIs(t, err, types.ErrTopicNotFound)
}

func TestParseNormalizes(t *testing.T) {
	src, err := Parse([]byte(`
topics:
  Mixed:
    path:
      - "  CAT "
      - "don't"
      - cat
      - ox
      - hippopotamus
    bonus:
      - "T-Rex"
`))
	require.NoError(t, err)

	list, err := src.Lookup("mixed")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dont"}, list.Path)
	assert.Equal(t, []string{"trex"}, list.Bonus)
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("topics: [not a map"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.yaml")
	require.NoError(t, os.WriteFile(path, []byte("topics:\n  tiny:\n    path: [cat, dog, pig]\n"), 0o644))

	src, err := LoadFile(path)
	require.NoError(t, err)
	list, err := src.Lookup("tiny")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "pig"}, list.Path)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
