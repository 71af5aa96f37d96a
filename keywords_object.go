package njson

// evaluateObjectConstraints checks required/minProperties/maxProperties on
// an object instance. Presence for "required" includes an
// explicit Null value.
func evaluateObjectConstraints(schemaNode *Node, instance *Node, instancePath, schemaPath string) []*ValidationError {
	if !instance.IsObject() {
		return nil
	}
	var errs []*ValidationError

	if req := schemaNode.Field("required"); req.IsArray() {
		for _, k := range req.Elements() {
			if !k.IsString() {
				continue
			}
			if !instance.HasField(k.StringValue()) {
				errs = append(errs, &ValidationError{
					InstancePath: instancePath, SchemaPath: schemaPath + "/required",
					Keyword: "required", Code: "missing_required_property",
					Message: "Missing required property {key}",
					Params:  map[string]any{"key": k.StringValue()},
				})
			}
		}
	}

	n := instance.Len()
	if m := schemaNode.Field("minProperties"); m.IsNumber() && n < int(m.IntValue()) {
		errs = append(errs, &ValidationError{
			InstancePath: instancePath, SchemaPath: schemaPath + "/minProperties",
			Keyword: "minProperties", Code: "object_too_few_properties",
			Message: "Object has fewer than {min} properties",
			Params:  map[string]any{"min": m.IntValue(), "actual": n},
		})
	}
	if m := schemaNode.Field("maxProperties"); m.IsNumber() && n > int(m.IntValue()) {
		errs = append(errs, &ValidationError{
			InstancePath: instancePath, SchemaPath: schemaPath + "/maxProperties",
			Keyword: "maxProperties", Code: "object_too_many_properties",
			Message: "Object has more than {max} properties",
			Params:  map[string]any{"max": m.IntValue(), "actual": n},
		})
	}
	return errs
}

// evaluateProperties recurses each declared property subschema against its
// matching instance field, then applies the "additionalProperties"
// subschema (or its boolean form) to every field not named in "properties".
func (s *Schema) evaluateProperties(schemaNode *Node, instance *Node, instancePath, schemaPath string, scope *evalScope) *ValidationResult {
	result := newValidationResult()
	if !instance.IsObject() {
		return result
	}

	props := schemaNode.Field("properties")
	declared := make(map[string]bool)
	if props.IsObject() {
		for _, key := range props.Keys() {
			declared[key] = true
			if !instance.HasField(key) {
				continue
			}
			sub := s.evaluate(props.Field(key), schemaPath+"/properties/"+key, instance.Field(key), instancePath+"/"+key, scope)
			result.merge(sub)
		}
	}

	additional := schemaNode.Field("additionalProperties")
	if additional == nil {
		return result
	}
	for _, key := range instance.Keys() {
		if declared[key] {
			continue
		}
		sub := s.evaluate(additional, schemaPath+"/additionalProperties", instance.Field(key), instancePath+"/"+key, scope)
		result.merge(sub)
	}
	return result
}
