package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultString(t *testing.T) {
	assert.Equal(t, "value", DefaultString("value", "fallback"))
	assert.Equal(t, "fallback", DefaultString("", "fallback"))
}

func TestUniquifyString(t *testing.T) {
	set := map[string]struct{}{}

	got, err := UniquifyString("embedder", set)
	require.NoError(t, err)
	assert.Equal(t, "embedder", got)

	set["embedder"] = struct{}{}
	got, err = UniquifyString("embedder", set)
	require.NoError(t, err)
	assert.Equal(t, "embedder_1", got)

	set["embedder_1"] = struct{}{}
	set["other"] = struct{}{}
	got, err = UniquifyString("embedder", set)
	require.NoError(t, err)
	assert.Equal(t, "embedder_2", got)
}

func TestUniquifyString_SkipsTakenSuffixes(t *testing.T) {
	set := map[string]struct{}{"x": {}, "x_1": {}, "x_2": {}}
	got, err := UniquifyString("x", set)
	require.NoError(t, err)
	assert.Equal(t, "x_3", got)
}

func TestStripToken(t *testing.T) {
	assert.Equal(t, "hello world <EOS>", StripToken("<BOS> hello  world <EOS>", "<BOS>"))
	assert.Equal(t, "hello world", StripToken(StripToken("<BOS> hello world <EOS>", "<BOS>"), "<EOS>"))
	assert.Equal(t, "hello world", StripToken("hello world", "x"))
	assert.Equal(t, "", StripToken("", "x"))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "a b c", Join([]string{"a", "", "b", "c"}, " "))
	assert.Equal(t, "", Join(nil, "-"))
}
