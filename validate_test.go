package njson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileSchema(t *testing.T, src string) *Schema {
	t.Helper()
	doc, err := FromString(src)
	require.NoError(t, err)
	s := Load(doc, ValidatorOptions{})
	require.True(t, s.HasSchema(), s.LastLoadError())
	return s
}

func TestValidateTypeMismatch(t *testing.T) {
	s := compileSchema(t, `{"type":"object","properties":{"age":{"type":"integer","minimum":0}},"required":["age"]}`)
	instance, _ := FromString(`{"age":"thirty"}`)

	result := s.Validate(instance)
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "/age", result.Errors[0].InstancePath)
	assert.Equal(t, "type", result.Errors[0].Keyword)
}

func TestValidateRequiredMissing(t *testing.T) {
	s := compileSchema(t, `{"type":"object","required":["name"]}`)
	instance, _ := FromString(`{}`)

	result := s.Validate(instance)
	require.False(t, result.Valid)
	assert.Equal(t, "required", result.Errors[0].Keyword)
}

func TestValidateAdditionalPropertiesFalse(t *testing.T) {
	s := compileSchema(t, `{"type":"object","properties":{"a":{"type":"integer"}},"additionalProperties":false}`)

	ok, _ := FromString(`{"a":1}`)
	assert.True(t, s.Validate(ok).Valid)

	bad, _ := FromString(`{"a":1,"b":2}`)
	assert.False(t, s.Validate(bad).Valid)
}

func TestValidateItemsAppliedToEveryElement(t *testing.T) {
	s := compileSchema(t, `{"type":"array","items":{"type":"integer"}}`)

	good, _ := FromString(`[1,2,3]`)
	assert.True(t, s.Validate(good).Valid)

	bad, _ := FromString(`[1,"x",3]`)
	result := s.Validate(bad)
	require.False(t, result.Valid)
	assert.Equal(t, "/1", result.Errors[0].InstancePath)
}

func TestValidateAllOfAnyOfOneOfNot(t *testing.T) {
	allOf := compileSchema(t, `{"allOf":[{"type":"integer"},{"minimum":0}]}`)
	pass, _ := FromString(`5`)
	fail, _ := FromString(`-1`)
	assert.True(t, allOf.Validate(pass).Valid)
	assert.False(t, allOf.Validate(fail).Valid)

	anyOf := compileSchema(t, `{"anyOf":[{"type":"string"},{"type":"integer"}]}`)
	strInst, _ := FromString(`"x"`)
	boolInst, _ := FromString(`true`)
	assert.True(t, anyOf.Validate(strInst).Valid)
	assert.False(t, anyOf.Validate(boolInst).Valid)

	oneOf := compileSchema(t, `{"oneOf":[{"minimum":0},{"maximum":10}]}`)
	bothMatch, _ := FromString(`5`)
	assert.False(t, oneOf.Validate(bothMatch).Valid, "5 satisfies both branches, violating exactly-one")

	not := compileSchema(t, `{"not":{"type":"string"}}`)
	num, _ := FromString(`5`)
	str, _ := FromString(`"x"`)
	assert.True(t, not.Validate(num).Valid)
	assert.False(t, not.Validate(str).Valid)
}

func TestValidateEnumAndConst(t *testing.T) {
	enum := compileSchema(t, `{"enum":[1,2,3]}`)
	good, _ := FromString(`2`)
	bad, _ := FromString(`9`)
	assert.True(t, enum.Validate(good).Valid)
	assert.False(t, enum.Validate(bad).Valid)

	c := compileSchema(t, `{"const":"fixed"}`)
	match, _ := FromString(`"fixed"`)
	mismatch, _ := FromString(`"other"`)
	assert.True(t, c.Validate(match).Valid)
	assert.False(t, c.Validate(mismatch).Valid)
}

func TestValidateMultipleOfExactArithmetic(t *testing.T) {
	s := compileSchema(t, `{"type":"integer","multipleOf":3}`)
	good, _ := FromString(`9`)
	bad, _ := FromString(`10`)
	assert.True(t, s.Validate(good).Valid)
	assert.False(t, s.Validate(bad).Valid)
}

func TestValidateRefWithinDocument(t *testing.T) {
	s := compileSchema(t, `{
		"$defs": {"positiveInt": {"type":"integer","minimum":1}},
		"$ref": "#/$defs/positiveInt"
	}`)
	good, _ := FromString(`5`)
	bad, _ := FromString(`-1`)
	assert.True(t, s.Validate(good).Valid)
	assert.False(t, s.Validate(bad).Valid)
}

func TestValidateUnsupportedExternalRef(t *testing.T) {
	s := compileSchema(t, `{"$ref": "https://example.com/other.json"}`)
	instance, _ := FromString(`1`)
	result := s.Validate(instance)
	require.False(t, result.Valid)
	assert.Equal(t, "unsupportedRef", result.Errors[0].Code)
}
