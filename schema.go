package njson

import "regexp"

// Schema is a compiled schema Document: the schema's own tree plus the
// load-phase products (compiled patterns, the $anchor index) that make
// repeated Validate calls read-only over the schema. There is no
// network-facing loader since external $ref resolution is a non-goal.
type Schema struct {
	doc  *Document
	opts ValidatorOptions

	// boolSchema is non-nil for the two degenerate schemas `true`/`false`.
	boolSchema *bool

	patterns map[string]*regexp.Regexp // schemaPath -> compiled "pattern"
	anchors  map[string]string         // $anchor name -> schemaPath (pointer syntax)
	id       string                    // root "$id", used to join host-less $ref values (spec.md §4.5)

	loadErr error
}

// ValidatorOptions configures a compiled Schema's evaluation behaviour.
type ValidatorOptions struct {
	CheckFormats bool
}

// Load compiles a schema Document: pre-compiling every "pattern" regex and
// indexing "$anchor" declarations so that Validate is read-only afterward.
// A malformed pattern is recorded via HasSchema()==false / LastLoadError()
// rather than deferred to validation.
func Load(doc *Document, opts ValidatorOptions) *Schema {
	s := &Schema{doc: doc, opts: opts, patterns: make(map[string]*regexp.Regexp), anchors: make(map[string]string)}

	root := doc.Root()
	switch root.Kind() {
	case KindBool:
		b := root.BoolValue()
		s.boolSchema = &b
		return s
	case KindObject:
		if id := root.Field("$id"); id.IsString() {
			s.id = id.StringValue()
		}
		s.loadErr = s.compile(root, "")
		return s
	default:
		s.loadErr = &SchemaLoadError{SchemaPath: "", Err: ErrSchemaNotObject}
		return s
	}
}

// compile walks a schema subtree compiling "pattern" keywords and recording
// "$anchor" declarations, recursing into every subschema-bearing keyword.
func (s *Schema) compile(node *Node, schemaPath string) error {
	if node.Kind() != KindObject {
		return nil
	}

	if p := node.Field("pattern"); p.IsString() {
		re, err := regexp.Compile(p.StringValue())
		if err != nil {
			return &SchemaLoadError{SchemaPath: schemaPath, Err: ErrInvalidPattern}
		}
		s.patterns[schemaPath] = re
	}

	if t := node.Field("type"); t != nil {
		names := []*Node{t}
		if t.IsArray() {
			names = t.Elements()
		}
		for _, n := range names {
			switch n.StringValue() {
			case "null", "boolean", "integer", "number", "string", "array", "object":
			default:
				return &SchemaLoadError{SchemaPath: schemaPath + "/type", Err: ErrUnknownType}
			}
		}
	}

	if a := node.Field("$anchor"); a.IsString() {
		s.anchors[a.StringValue()] = schemaPath
	}

	for _, key := range node.Keys() {
		child := node.Field(key)
		switch key {
		case "properties", "$defs":
			if !child.IsObject() {
				continue
			}
			for _, pk := range child.Keys() {
				if err := s.compile(child.Field(pk), schemaPath+"/"+key+"/"+pk); err != nil {
					return err
				}
			}
		case "items", "not", "additionalProperties":
			if err := s.compile(child, schemaPath+"/"+key); err != nil {
				return err
			}
		case "allOf", "anyOf", "oneOf":
			if !child.IsArray() {
				continue
			}
			for i, sub := range child.Elements() {
				if err := s.compile(sub, schemaPath+"/"+key+"/"+itoa(i)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// HasSchema reports whether Load succeeded.
func (s *Schema) HasSchema() bool { return s.loadErr == nil }

// LastLoadError returns the defect found during Load, or nil.
func (s *Schema) LastLoadError() error { return s.loadErr }

// Document returns the schema's own underlying Document.
func (s *Schema) Document() *Document { return s.doc }

// MarshalJSON renders the compiled schema back to its JSON form.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s.boolSchema != nil {
		if *s.boolSchema {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	}
	return s.doc.MarshalJSON()
}

func (s *Schema) compiledPattern(schemaPath string) (*regexp.Regexp, bool) {
	re, ok := s.patterns[schemaPath]
	return re, ok
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
