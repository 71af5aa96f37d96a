// Package tests holds black-box acceptance tests exercising njson's public
// API end to end, covering the library's documented end-to-end scenarios
// and quantified invariants.
package tests

import (
	"testing"

	"github.com/nfxio/njson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseThenRead exercises scenario 1: parse a nested document and read
// through it with a mix of typed getters and existence/type checks.
func TestParseThenRead(t *testing.T) {
	doc, err := njson.FromString(`{"a":{"b":[10,20,30]},"c":null}`)
	require.NoError(t, err)

	v, ok := doc.GetInt("/a/b/1")
	require.True(t, ok)
	assert.Equal(t, int64(20), v)

	assert.True(t, doc.IsNull("/c"))
	assert.False(t, doc.Contains("/a/b/9"))
	assert.True(t, doc.IsArray("a.b"))
}

// TestPointerEscapes exercises scenario 2: the ~0/~1 pointer escapes round
// trip through Set and String.
func TestPointerEscapes(t *testing.T) {
	doc := njson.NewDocument()
	require.NoError(t, doc.SetString("/field~1with~0tilde", "x"))

	out, err := doc.String(0)
	require.NoError(t, err)
	assert.Equal(t, `{"field/with~tilde":"x"}`, out)
}

// TestSparseWrite exercises scenario 3: writing past the end of an array
// fills intervening positions with Null.
func TestSparseWrite(t *testing.T) {
	doc := njson.NewDocument()
	require.NoError(t, doc.SetInt("/users/2/age", 42))

	out, err := doc.String(0)
	require.NoError(t, err)
	assert.Equal(t, `{"users":[null,null,{"age":42}]}`, out)
}

// TestSchemaValidationRejectsWrongType exercises scenario 4.
func TestSchemaValidationRejectsWrongType(t *testing.T) {
	schemaDoc, err := njson.FromString(`{"type":"object","properties":{"age":{"type":"integer","minimum":0}},"required":["age"]}`)
	require.NoError(t, err)
	schema := njson.Load(schemaDoc, njson.ValidatorOptions{})
	require.True(t, schema.HasSchema())

	instance, err := njson.FromString(`{"age":"thirty"}`)
	require.NoError(t, err)

	result := schema.Validate(instance)
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "/age", result.Errors[0].InstancePath)
	assert.Equal(t, "type", result.Errors[0].Keyword)
}

// TestSchemaInferenceWithRequiredAcrossSamples exercises scenario 5.
func TestSchemaInferenceWithRequiredAcrossSamples(t *testing.T) {
	s1, err := njson.FromString(`{"name":"A","age":1}`)
	require.NoError(t, err)
	s2, err := njson.FromString(`{"name":"B"}`)
	require.NoError(t, err)

	schema, err := njson.InferAll([]*njson.Document{s1, s2}, njson.InferenceOptions{})
	require.NoError(t, err)

	props := schema.Root().Field("properties")
	assert.Equal(t, "string", props.Field("name").Field("type").StringValue())
	assert.Equal(t, "integer", props.Field("age").Field("type").StringValue())

	required := schema.Root().Field("required")
	names := make([]string, 0, required.Len())
	for _, v := range required.Elements() {
		names = append(names, v.StringValue())
	}
	assert.Equal(t, []string{"name"}, names)
}

// TestFormatInference exercises scenario 6.
func TestFormatInference(t *testing.T) {
	sample, err := njson.FromString(`{"email":"a@b.co","id":"550e8400-e29b-41d4-a716-446655440000"}`)
	require.NoError(t, err)

	schema, err := njson.Infer(sample, njson.InferenceOptions{InferFormats: true})
	require.NoError(t, err)

	props := schema.Root().Field("properties")
	assert.Equal(t, "email", props.Field("email").Field("format").StringValue())
	assert.Equal(t, "uuid", props.Field("id").Field("format").StringValue())
}

// TestPathSyntaxEquivalence exercises the testable property that pointer
// and dot/bracket normalisations of the same path agree on every operation.
func TestPathSyntaxEquivalence(t *testing.T) {
	doc, err := njson.FromString(`{"users":[{"name":"ada"},{"name":"grace"}]}`)
	require.NoError(t, err)

	pointerV, pointerOK := doc.GetString("/users/1/name")
	dotV, dotOK := doc.GetString("users[1].name")
	assert.Equal(t, pointerOK, dotOK)
	assert.Equal(t, pointerV, dotV)
}

// TestSchemaSelfAcceptance exercises the testable property that a schema
// inferred from samples validates every one of those samples.
func TestSchemaSelfAcceptance(t *testing.T) {
	samples := make([]*njson.Document, 0, 3)
	for _, src := range []string{
		`{"name":"ada","age":36,"tags":["x","y"]}`,
		`{"name":"grace","age":40,"tags":["z"]}`,
		`{"name":"alan","age":41,"tags":[]}`,
	} {
		d, err := njson.FromString(src)
		require.NoError(t, err)
		samples = append(samples, d)
	}

	schemaDoc, err := njson.InferAll(samples, njson.InferenceOptions{InferConstraints: true, InferFormats: true})
	require.NoError(t, err)

	schema := njson.Load(schemaDoc, njson.ValidatorOptions{})
	require.True(t, schema.HasSchema())

	for _, result := range schema.ValidateAll(samples...) {
		assert.True(t, result.Valid)
	}
}

// TestBooleanSchemaNoFalsePositive exercises the testable property that any
// instance validates against the literal `true` schema.
func TestBooleanSchemaNoFalsePositive(t *testing.T) {
	schemaDoc, err := njson.FromString(`true`)
	require.NoError(t, err)
	schema := njson.Load(schemaDoc, njson.ValidatorOptions{})

	for _, src := range []string{`1`, `"x"`, `null`, `[1,2]`, `{"a":1}`} {
		instance, err := njson.FromString(src)
		require.NoError(t, err)
		assert.True(t, schema.Validate(instance).Valid)
	}
}

// TestPathViewCompleteness exercises the testable property that PathView
// yields every contained path, with Leaf set for scalar/null nodes only.
func TestPathViewCompleteness(t *testing.T) {
	doc, err := njson.FromString(`{"a":{"b":1},"c":[1,2],"d":null}`)
	require.NoError(t, err)

	seen := make(map[string]njson.PathEntry)
	for _, e := range doc.PathView("", njson.PathViewOptions{Format: njson.PointerFormat}) {
		seen[e.Path] = e
	}

	for _, path := range []string{"/a", "/a/b", "/c", "/c/0", "/c/1", "/d"} {
		entry, ok := seen[path]
		require.True(t, ok, "expected PathView to contain %s", path)
		assert.True(t, doc.Contains(path))
		wantLeaf := !doc.IsObject(path) && !doc.IsArray(path)
		assert.Equal(t, wantLeaf, entry.Leaf, "leaf flag mismatch at %s", path)
	}
}

// TestEmitIdempotence exercises the testable property that emitting a
// Document parsed from its own emitted text reproduces the same text.
func TestEmitIdempotence(t *testing.T) {
	doc, err := njson.FromString(`{"b":2,"a":[1,2,3],"c":{"nested":true}}`)
	require.NoError(t, err)

	opts := njson.EmitterOptions{Indent: 2, SortKeys: true}
	first, err := doc.ToString(opts)
	require.NoError(t, err)

	reparsed, err := njson.FromString(first)
	require.NoError(t, err)
	second, err := reparsed.ToString(opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
