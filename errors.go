package njson

import (
	"errors"
	"fmt"
)

// === Parse Errors ===

// ParseError reports malformed JSON input text, with the byte offset at
// which the failure was detected.
type ParseError struct {
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("json: parse error at offset %d: %s", e.Offset, e.Reason)
}

// === Path Errors ===

// PathError reports a malformed path expression. The only malformation
// detected is an unterminated '[' in dot/bracket syntax: pointer-syntax
// escapes and empty segments are not checked, and a segment that is not a
// well-formed index is read as an object key. A well-formed path that
// simply addresses nothing is not a PathError — it is absent.
type PathError struct {
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("json: invalid path %q: %s", e.Path, e.Reason)
}

// === Emitter Errors ===

// EmitterMisuse reports a Builder API call made in an illegal state, e.g.
// a value written where a key was expected, or EndObject without Start.
type EmitterMisuse struct {
	Op    string
	State string
}

func (e *EmitterMisuse) Error() string {
	return fmt.Sprintf("json: builder misuse: %s is illegal in state %s", e.Op, e.State)
}

// === Schema Load Errors ===

var (
	// ErrSchemaNotObject is returned when a schema document's root is
	// neither a boolean nor an object, per JSON Schema 2020-12 §4.3.2.
	ErrSchemaNotObject = errors.New("schema root must be a boolean or an object")

	// ErrUnresolvableRef is returned by $ref resolution when a $ref target
	// cannot be located within the schema document. Load does not check
	// $ref targets; an unresolvable one is reported during validation as a
	// ref_unresolvable ValidationError.
	ErrUnresolvableRef = errors.New("unresolvable $ref target")

	// ErrInvalidPattern is returned at load time when a pattern keyword is
	// not a compilable regular expression.
	ErrInvalidPattern = errors.New("invalid regular expression in pattern")

	// ErrUnknownType is returned when a type keyword names something other
	// than one of the seven recognised scalar type names.
	ErrUnknownType = errors.New("unknown type keyword value")

	// ErrSchemaDecode identifies schema JSON that cannot be parsed into a
	// Document at all. Load takes an already-parsed Document, so no
	// function in this package returns it.
	ErrSchemaDecode = errors.New("schema decode failed")
)

// SchemaLoadError wraps one of the sentinel errors above with the schema
// location that triggered it, surfaced via Schema.LastLoadError.
type SchemaLoadError struct {
	SchemaPath string
	Err        error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("json schema: load error at %s: %v", e.SchemaPath, e.Err)
}

func (e *SchemaLoadError) Unwrap() error { return e.Err }

// === Numeric Conversion Errors (rat.go) ===

// ErrUnsupportedRatType identifies a value that cannot be converted to the
// exact-arithmetic Rat representation used by multipleOf. NodeToRat reports
// that case with a false result instead, so no function in this package
// returns it.
var ErrUnsupportedRatType = errors.New("unsupported type for exact numeric conversion")
