package njson

import "math"

// evaluateNumberConstraints checks minimum/maximum/exclusiveMinimum/
// exclusiveMaximum/multipleOf on a numeric instance.
func evaluateNumberConstraints(schemaNode *Node, instance *Node, instancePath, schemaPath string) []*ValidationError {
	if !instance.IsNumber() {
		return nil
	}
	var errs []*ValidationError
	v := instance.FloatValue()

	if n := schemaNode.Field("minimum"); n.IsNumber() && v < n.FloatValue() {
		errs = append(errs, numberError(schemaPath, "minimum", "number_too_small", instancePath, n))
	}
	if n := schemaNode.Field("maximum"); n.IsNumber() && v > n.FloatValue() {
		errs = append(errs, numberError(schemaPath, "maximum", "number_too_large", instancePath, n))
	}
	if n := schemaNode.Field("exclusiveMinimum"); n.IsNumber() && v <= n.FloatValue() {
		errs = append(errs, numberError(schemaPath, "exclusiveMinimum", "number_not_greater", instancePath, n))
	}
	if n := schemaNode.Field("exclusiveMaximum"); n.IsNumber() && v >= n.FloatValue() {
		errs = append(errs, numberError(schemaPath, "exclusiveMaximum", "number_not_less", instancePath, n))
	}
	if n := schemaNode.Field("multipleOf"); n.IsNumber() {
		instRat, ok1 := NodeToRat(instance)
		divRat, ok2 := NodeToRat(n)
		multiple := ok1 && ok2 && isMultipleOf(instRat, divRat)
		if !instance.IsInt() || !n.IsInt() {
			// A Float on either side is checked by plain double division:
			// the quotient must be a finite whole number, with no tolerance.
			d := n.FloatValue()
			q := v / d
			multiple = d > 0 && !math.IsInf(q, 0) && q == math.Trunc(q)
		}
		if ok1 && ok2 && !multiple {
			errs = append(errs, &ValidationError{
				InstancePath: instancePath, SchemaPath: schemaPath + "/multipleOf",
				Keyword: "multipleOf", Code: "not_multiple_of",
				Message: "Value is not a multiple of {divisor}",
				Params:  map[string]any{"divisor": divRat.String()},
			})
		}
	}
	return errs
}

func numberError(schemaPath, keyword, code, instancePath string, bound *Node) *ValidationError {
	return &ValidationError{
		InstancePath: instancePath, SchemaPath: schemaPath + "/" + keyword,
		Keyword: keyword, Code: code,
		Message: "Value fails the {keyword} bound {bound}",
		Params:  map[string]any{"keyword": keyword, "bound": bound.FloatValue()},
	}
}
