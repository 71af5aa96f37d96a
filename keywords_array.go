package njson

// evaluateArrayConstraints checks minItems/maxItems/uniqueItems on an array
// instance.
func evaluateArrayConstraints(schemaNode *Node, instance *Node, instancePath, schemaPath string) []*ValidationError {
	if !instance.IsArray() {
		return nil
	}
	var errs []*ValidationError
	n := instance.Len()

	if m := schemaNode.Field("minItems"); m.IsNumber() && n < int(m.IntValue()) {
		errs = append(errs, &ValidationError{
			InstancePath: instancePath, SchemaPath: schemaPath + "/minItems",
			Keyword: "minItems", Code: "array_too_short",
			Message: "Array has fewer than {min} items",
			Params:  map[string]any{"min": m.IntValue(), "actual": n},
		})
	}
	if m := schemaNode.Field("maxItems"); m.IsNumber() && n > int(m.IntValue()) {
		errs = append(errs, &ValidationError{
			InstancePath: instancePath, SchemaPath: schemaPath + "/maxItems",
			Keyword: "maxItems", Code: "array_too_long",
			Message: "Array has more than {max} items",
			Params:  map[string]any{"max": m.IntValue(), "actual": n},
		})
	}
	if u := schemaNode.Field("uniqueItems"); u.IsBool() && u.BoolValue() {
		elems := instance.Elements()
		for i := 0; i < len(elems); i++ {
			for j := i + 1; j < len(elems); j++ {
				if elems[i].Equal(elems[j]) {
					errs = append(errs, &ValidationError{
						InstancePath: instancePath, SchemaPath: schemaPath + "/uniqueItems",
						Keyword: "uniqueItems", Code: "items_not_unique",
						Message: "Array items at {i} and {j} are duplicates",
						Params:  map[string]any{"i": i, "j": j},
					})
					goto done
				}
			}
		}
	done:
	}
	return errs
}

// evaluateItems recurses the "items" subschema against every array element.
func (s *Schema) evaluateItems(schemaNode *Node, instance *Node, instancePath, schemaPath string, scope *evalScope) *ValidationResult {
	result := newValidationResult()
	items := schemaNode.Field("items")
	if items == nil || !instance.IsArray() {
		return result
	}
	for i, e := range instance.Elements() {
		sub := s.evaluate(items, schemaPath+"/items", e, instancePath+"/"+itoa(i), scope)
		result.merge(sub)
	}
	return result
}
