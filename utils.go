package njson

import "fmt"

// toDisplayString renders a ValidationError Params value for template
// substitution.
func toDisplayString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return "null"
	default:
		return fmt.Sprint(t)
	}
}
