package njson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScalars(t *testing.T) {
	n, err := ParseString(`42`)
	require.NoError(t, err)
	assert.True(t, n.IsInt())
	assert.Equal(t, int64(42), n.IntValue())

	n, err = ParseString(`3.5`)
	require.NoError(t, err)
	assert.True(t, n.IsFloat())

	n, err = ParseString(`"hiA"`)
	require.NoError(t, err)
	assert.Equal(t, "hiA", n.StringValue())

	n, err = ParseString(`true`)
	require.NoError(t, err)
	assert.True(t, n.BoolValue())

	n, err = ParseString(`null`)
	require.NoError(t, err)
	assert.True(t, n.IsNull())
}

func TestParseObjectDuplicateKeyLastWins(t *testing.T) {
	n, err := ParseString(`{"a":1,"a":2}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, n.Keys())
	assert.Equal(t, int64(2), n.Field("a").IntValue())
}

func TestParseNestedArray(t *testing.T) {
	n, err := ParseString(`[1, [2, 3], {"k": null}]`)
	require.NoError(t, err)
	require.Equal(t, 3, n.Len())
	assert.Equal(t, int64(2), n.Element(1).Element(0).IntValue())
	assert.True(t, n.Element(2).Field("k").IsNull())
}

func TestParseRejectsTrailingCommaAndComments(t *testing.T) {
	_, err := ParseString(`[1,2,]`)
	assert.Error(t, err)

	_, err = ParseString(`{"a":1} // comment`)
	assert.Error(t, err)
}

func TestParseRejectsControlCharInString(t *testing.T) {
	_, err := ParseString("\"a\x01b\"")
	assert.Error(t, err)
}

func TestParseSurrogatePair(t *testing.T) {
	n, err := ParseString("\"\\uD83D\\uDE00\"")
	require.NoError(t, err)
	assert.Equal(t, "😀", n.StringValue())
}

func TestParseLoneSurrogateRejected(t *testing.T) {
	_, err := ParseString(`"\ud83d"`)
	assert.Error(t, err)
}
