package njson

// evaluateType checks the "type" keyword: a scalar type
// name, or an array of names where any match passes. Integer matches only
// Int; Number matches both Int and Float.
func evaluateType(schemaNode *Node, instance *Node, instancePath, schemaPath string) *ValidationError {
	t := schemaNode.Field("type")
	switch {
	case t.IsString():
		if matchesType(instance, t.StringValue()) {
			return nil
		}
		return typeError(t.StringValue(), instance, instancePath, schemaPath)
	case t.IsArray():
		names := make([]string, 0, t.Len())
		for _, v := range t.Elements() {
			if v.IsString() {
				names = append(names, v.StringValue())
				if matchesType(instance, v.StringValue()) {
					return nil
				}
			}
		}
		return typeError(joinNames(names), instance, instancePath, schemaPath)
	default:
		return nil
	}
}

func matchesType(instance *Node, name string) bool {
	switch name {
	case "null":
		return instance.IsNull()
	case "boolean":
		return instance.IsBool()
	case "integer":
		return instance.IsInt()
	case "number":
		return instance.IsNumber()
	case "string":
		return instance.IsString()
	case "array":
		return instance.IsArray()
	case "object":
		return instance.IsObject()
	default:
		return false
	}
}

func typeError(expected string, instance *Node, instancePath, schemaPath string) *ValidationError {
	return &ValidationError{
		InstancePath: instancePath,
		SchemaPath:   schemaPath + "/type",
		Keyword:      "type",
		Code:         "type_mismatch",
		Message:      "Value must be of type {expected}, got {actual}",
		Params:       map[string]any{"expected": expected, "actual": instance.Kind().String()},
	}
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
