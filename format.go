package njson

// evaluateFormat checks the format keyword. A string that does not match a
// registered format is an error only when checkFormats
// (ValidatorOptions.CheckFormats, default false) is enabled. A format name
// that is not registered is never an error; nothing is recorded for it, as
// ValidationResult carries no annotations.
func evaluateFormat(schema *Node, checkFormats bool, value *Node) *ValidationError {
	formatName, ok := schema.Field("format").asString()
	if !ok {
		return nil
	}
	if value.Kind() != KindString {
		return nil
	}

	if !checkFormats {
		return nil
	}

	// An unknown format name is never an error (and is not recorded):
	// only a recognised-but-unmatched format fails.
	validator, known := Formats[formatName]
	if !known {
		return nil
	}

	if !validator(value.StringValue()) {
		return newValidationError("format", "format_mismatch", "Value does not match format '{format}'", map[string]any{"format": formatName})
	}
	return nil
}

func (n *Node) asString() (string, bool) {
	if n == nil || !n.IsString() {
		return "", false
	}
	return n.StringValue(), true
}
