package njson

// evaluateAllOf requires every listed subschema to pass.
func (s *Schema) evaluateAllOf(schemaNode *Node, instance *Node, instancePath, schemaPath string, scope *evalScope) *ValidationResult {
	result := newValidationResult()
	list := schemaNode.Field("allOf")
	if !list.IsArray() {
		return result
	}
	for i, sub := range list.Elements() {
		result.merge(s.evaluate(sub, schemaPath+"/allOf/"+itoa(i), instance, instancePath, scope))
	}
	return result
}

// evaluateAnyOf requires at least one subschema to pass; errors from
// failing branches are suppressed once any branch succeeds.
func (s *Schema) evaluateAnyOf(schemaNode *Node, instance *Node, instancePath, schemaPath string, scope *evalScope) *ValidationResult {
	result := newValidationResult()
	list := schemaNode.Field("anyOf")
	if !list.IsArray() || list.Len() == 0 {
		return result
	}
	var branchErrs []*ValidationError
	for i, sub := range list.Elements() {
		r := s.evaluate(sub, schemaPath+"/anyOf/"+itoa(i), instance, instancePath, scope)
		if r.Valid {
			return result
		}
		branchErrs = append(branchErrs, r.Errors...)
	}
	result.Valid = false
	result.Errors = append(result.Errors, &ValidationError{
		InstancePath: instancePath, SchemaPath: schemaPath + "/anyOf",
		Keyword: "anyOf", Code: "anyof_no_match",
		Message: "Value does not match any subschema in anyOf",
	})
	result.Errors = append(result.Errors, branchErrs...)
	return result
}

// evaluateOneOf requires exactly one subschema to pass.
func (s *Schema) evaluateOneOf(schemaNode *Node, instance *Node, instancePath, schemaPath string, scope *evalScope) *ValidationResult {
	result := newValidationResult()
	list := schemaNode.Field("oneOf")
	if !list.IsArray() {
		return result
	}
	matches := 0
	for i, sub := range list.Elements() {
		if s.evaluate(sub, schemaPath+"/oneOf/"+itoa(i), instance, instancePath, scope).Valid {
			matches++
		}
	}
	if matches == 1 {
		return result
	}
	result.addError(&ValidationError{
		InstancePath: instancePath, SchemaPath: schemaPath + "/oneOf",
		Keyword: "oneOf", Code: "oneof_match_count",
		Message: "Value must match exactly one subschema in oneOf, matched {count}",
		Params:  map[string]any{"count": matches},
	})
	return result
}

// evaluateNot requires the subschema to fail.
func (s *Schema) evaluateNot(schemaNode *Node, instance *Node, instancePath, schemaPath string, scope *evalScope) *ValidationResult {
	result := newValidationResult()
	sub := schemaNode.Field("not")
	if sub == nil {
		return result
	}
	if s.evaluate(sub, schemaPath+"/not", instance, instancePath, scope).Valid {
		result.addError(&ValidationError{
			InstancePath: instancePath, SchemaPath: schemaPath + "/not",
			Keyword: "not", Code: "not_matched",
			Message: "Value must not match the not subschema",
		})
	}
	return result
}
