package njson

import "unicode/utf8"

// evaluateStringConstraints checks minLength/maxLength/pattern on a string
// instance. Length is counted in Unicode scalar values, not bytes.
func (s *Schema) evaluateStringConstraints(schemaNode *Node, instance *Node, instancePath, schemaPath string) []*ValidationError {
	if !instance.IsString() {
		return nil
	}
	var errs []*ValidationError
	str := instance.StringValue()
	length := utf8.RuneCountInString(str)

	if n := schemaNode.Field("minLength"); n.IsNumber() && length < int(n.IntValue()) {
		errs = append(errs, &ValidationError{
			InstancePath: instancePath, SchemaPath: schemaPath + "/minLength",
			Keyword: "minLength", Code: "string_too_short",
			Message: "String is shorter than minimum length {min}",
			Params:  map[string]any{"min": n.IntValue(), "actual": length},
		})
	}
	if n := schemaNode.Field("maxLength"); n.IsNumber() && length > int(n.IntValue()) {
		errs = append(errs, &ValidationError{
			InstancePath: instancePath, SchemaPath: schemaPath + "/maxLength",
			Keyword: "maxLength", Code: "string_too_long",
			Message: "String is longer than maximum length {max}",
			Params:  map[string]any{"max": n.IntValue(), "actual": length},
		})
	}
	if p := schemaNode.Field("pattern"); p.IsString() {
		re, ok := s.compiledPattern(schemaPath)
		if ok && !re.MatchString(str) {
			errs = append(errs, &ValidationError{
				InstancePath: instancePath, SchemaPath: schemaPath + "/pattern",
				Keyword: "pattern", Code: "pattern_mismatch",
				Message: "Value does not match the required pattern {pattern}",
				Params:  map[string]any{"pattern": p.StringValue()},
			})
		}
	}
	return errs
}
