package njson

// evaluateEnum checks the "enum" keyword: instance must structurally equal
// one of the listed values.
func evaluateEnum(schemaNode *Node, instance *Node, instancePath, schemaPath string) *ValidationError {
	list := schemaNode.Field("enum")
	if !list.IsArray() {
		return nil
	}
	for _, v := range list.Elements() {
		if instance.Equal(v) {
			return nil
		}
	}
	return &ValidationError{
		InstancePath: instancePath,
		SchemaPath:   schemaPath + "/enum",
		Keyword:      "enum",
		Code:         "enum_mismatch",
		Message:      "Value does not match any allowed enum value",
	}
}

// evaluateConst checks the "const" keyword: instance must structurally
// equal the single listed value.
func evaluateConst(schemaNode *Node, instance *Node, instancePath, schemaPath string) *ValidationError {
	if !schemaNode.HasField("const") {
		return nil
	}
	want := schemaNode.Field("const")
	if instance.Equal(want) {
		return nil
	}
	return &ValidationError{
		InstancePath: instancePath,
		SchemaPath:   schemaPath + "/const",
		Keyword:      "const",
		Code:         "const_mismatch",
		Message:      "Value does not match the required constant",
	}
}
