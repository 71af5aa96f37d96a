package njson

// evalScope threads reference-cycle detection through one Validate call:
// the set of (schemaPath, instancePath) pairs currently on the active $ref
// stack. A repeated pair short-circuits with success.
type evalScope struct {
	visited map[string]bool
}

func newEvalScope() *evalScope { return &evalScope{visited: make(map[string]bool)} }

// Validate checks instance against s, returning a pass/fail result plus
// every failing keyword's location and reason.
func (s *Schema) Validate(instance *Document) *ValidationResult {
	if s.boolSchema != nil {
		result := newValidationResult()
		if !*s.boolSchema {
			result.addError(&ValidationError{
				SchemaPath: "", Keyword: "false", Code: "schema_false",
				Message: "Value rejected by boolean schema false",
			})
		}
		return result
	}
	return s.evaluate(s.doc.Root(), "", instance.Root(), "", newEvalScope())
}

// ValidateAll validates each instance independently against the same
// compiled schema, so one Schema can be reused across many documents.
func (s *Schema) ValidateAll(instances ...*Document) []*ValidationResult {
	out := make([]*ValidationResult, len(instances))
	for i, d := range instances {
		out[i] = s.Validate(d)
	}
	return out
}

// evaluate checks instance against schemaNode at schemaPath/instancePath,
// evaluating every present keyword independently and concatenating their
// error records; evaluation order is stable for a given schema/instance
// pair but otherwise unspecified.
func (s *Schema) evaluate(schemaNode *Node, schemaPath string, instance *Node, instancePath string, scope *evalScope) *ValidationResult {
	result := newValidationResult()
	if schemaNode == nil {
		return result
	}

	if schemaNode.Kind() == KindBool {
		if !schemaNode.BoolValue() {
			result.addError(&ValidationError{
				InstancePath: instancePath, SchemaPath: schemaPath,
				Keyword: "false", Code: "schema_false",
				Message: "Value rejected by boolean schema false",
			})
		}
		return result
	}
	if schemaNode.Kind() != KindObject {
		return result
	}

	if ref := schemaNode.Field("$ref"); ref.IsString() {
		result.merge(s.evaluateRef(ref.StringValue(), instance, instancePath, schemaPath, scope))
	}

	if err := evaluateType(schemaNode, instance, instancePath, schemaPath); err != nil {
		result.addError(err)
	}
	if err := evaluateEnum(schemaNode, instance, instancePath, schemaPath); err != nil {
		result.addError(err)
	}
	if err := evaluateConst(schemaNode, instance, instancePath, schemaPath); err != nil {
		result.addError(err)
	}
	for _, err := range s.evaluateStringConstraints(schemaNode, instance, instancePath, schemaPath) {
		result.addError(err)
	}
	for _, err := range evaluateNumberConstraints(schemaNode, instance, instancePath, schemaPath) {
		result.addError(err)
	}
	for _, err := range evaluateArrayConstraints(schemaNode, instance, instancePath, schemaPath) {
		result.addError(err)
	}
	result.merge(s.evaluateItems(schemaNode, instance, instancePath, schemaPath, scope))
	for _, err := range evaluateObjectConstraints(schemaNode, instance, instancePath, schemaPath) {
		result.addError(err)
	}
	result.merge(s.evaluateProperties(schemaNode, instance, instancePath, schemaPath, scope))
	result.merge(s.evaluateAllOf(schemaNode, instance, instancePath, schemaPath, scope))
	result.merge(s.evaluateAnyOf(schemaNode, instance, instancePath, schemaPath, scope))
	result.merge(s.evaluateOneOf(schemaNode, instance, instancePath, schemaPath, scope))
	result.merge(s.evaluateNot(schemaNode, instance, instancePath, schemaPath, scope))

	if err := evaluateFormat(schemaNode, s.opts.CheckFormats, instance); err != nil {
		err.InstancePath, err.SchemaPath = instancePath, schemaPath+"/format"
		result.addError(err)
	}

	return result
}

// evaluateRef resolves and recurses into a $ref target, detecting cycles
// and reporting unsupported external references.
func (s *Schema) evaluateRef(ref string, instance *Node, instancePath, schemaPath string, scope *evalScope) *ValidationResult {
	result := newValidationResult()

	target, err := s.resolveRef(ref)
	if err != nil {
		result.addError(&ValidationError{
			InstancePath: instancePath, SchemaPath: schemaPath + "/$ref",
			Keyword: "$ref", Code: "ref_unresolvable",
			Message: "Could not resolve $ref '{ref}'",
			Params:  map[string]any{"ref": ref},
		})
		return result
	}
	if target.unsupported {
		result.addError(&ValidationError{
			InstancePath: instancePath, SchemaPath: schemaPath + "/$ref",
			Keyword: "$ref", Code: "unsupportedRef",
			Message: "External $ref '{ref}' is not resolved",
			Params:  map[string]any{"ref": ref},
		})
		return result
	}

	key := target.schemaPath + "\x00" + instancePath
	if scope.visited[key] {
		return result
	}
	scope.visited[key] = true
	defer delete(scope.visited, key)

	return s.evaluate(target.node, target.schemaPath, instance, instancePath, scope)
}
