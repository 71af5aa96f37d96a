package njson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentGetSetRoundTrip(t *testing.T) {
	doc, err := FromString(`{"name":"ada","tags":["a","b"]}`)
	require.NoError(t, err)

	name, ok := doc.GetString("/name")
	require.True(t, ok)
	assert.Equal(t, "ada", name)

	require.NoError(t, doc.SetString("/name", "grace"))
	name, _ = doc.GetString("/name")
	assert.Equal(t, "grace", name)

	require.NoError(t, doc.SetInt("/tags/2", 0))
	assert.False(t, doc.IsArray("/tags/2"))
}

func TestDocumentAutoMaterializesNestedPath(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.SetInt("/users/2/age", 42))

	assert.True(t, doc.IsArray("/users"))
	assert.True(t, doc.Contains("/users/0"), "sparse-fill slots exist as explicit Null nodes")
	assert.True(t, doc.IsNull("/users/0"))
	assert.False(t, doc.Contains("/users/3"), "nothing was ever written past the target index")
	age, ok := doc.GetInt("/users/2/age")
	require.True(t, ok)
	assert.Equal(t, int64(42), age)
}

func TestDocumentEmptyPathReplacesRoot(t *testing.T) {
	doc, err := FromString(`{"a":1}`)
	require.NoError(t, err)
	require.NoError(t, doc.SetString("", "whole document replaced"))
	v, ok := doc.GetString("")
	require.True(t, ok)
	assert.Equal(t, "whole document replaced", v)
}

func TestDocumentRemoveFromObjectAndArray(t *testing.T) {
	doc, err := FromString(`{"a":1,"list":[10,20,30]}`)
	require.NoError(t, err)

	require.NoError(t, doc.Remove("/a"))
	assert.False(t, doc.Contains("/a"))

	require.NoError(t, doc.Remove("/list/1"))
	v, _ := doc.GetInt("/list/1")
	assert.Equal(t, int64(30), v)
}

func TestDocumentStringIndent(t *testing.T) {
	doc, err := FromString(`{"a":1}`)
	require.NoError(t, err)
	out, err := doc.String(0)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, out)
}
