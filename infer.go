package njson

import "unicode/utf8"

// InferenceOptions configures the Inferencer.
type InferenceOptions struct {
	InferFormats     bool
	InferConstraints bool
	Title            string
	Description      string
	ID               string
}

// formatCandidates is the fixed, ordered subset of format names the
// Inferencer checks; order is the order a candidate is accepted when a
// sample set happens to satisfy more than one pattern.
var formatCandidates = []string{"date-time", "date", "time", "email", "uuid", "ipv4", "ipv6", "hostname", "uri"}

// InferAll unifies a collection of samples into a single schema Document
// that accepts every one of them. An empty samples slice is not an error:
// it produces a schema carrying only the metadata keywords ($schema and any
// of Title/Description/ID supplied in opts), since there is no structure yet
// to unify over.
func InferAll(samples []*Document, opts InferenceOptions) (*Document, error) {
	nodes := make([]*Node, len(samples))
	for i, d := range samples {
		nodes[i] = d.Root()
	}

	root := unify(nodes, opts)
	root.SetField("$schema", NewString("https://json-schema.org/draft/2020-12/schema"))
	if opts.Title != "" {
		root.SetField("title", NewString(opts.Title))
	}
	if opts.Description != "" {
		root.SetField("description", NewString(opts.Description))
	}
	if opts.ID != "" {
		root.SetField("$id", NewString(opts.ID))
	}
	return NewDocumentFromNode(root), nil
}

// Infer is the single-sample convenience form of InferAll.
func Infer(sample *Document, opts InferenceOptions) (*Document, error) {
	return InferAll([]*Document{sample}, opts)
}

// unify builds one schema node that accepts every node in samples. samples
// may be empty (e.g. an object key present in zero of the enclosing
// samples' objects, which cannot happen, or an empty array's items
// position).
func unify(samples []*Node, opts InferenceOptions) *Node {
	schema := NewObject()
	kinds := collectKinds(samples)

	switch len(kinds) {
	case 0:
		return schema
	case 1:
		schema.SetField("type", NewString(kinds[0]))
	default:
		arr := NewArray()
		for _, k := range kinds {
			arr.Append(NewString(k))
		}
		schema.SetField("type", arr)
	}

	if hasKind(kinds, "object") {
		unifyObject(schema, filterKind(samples, KindObject), opts)
	}
	if hasKind(kinds, "array") {
		unifyArray(schema, filterKind(samples, KindArray), opts)
	}
	if hasKind(kinds, "string") {
		strs := filterKind(samples, KindString)
		if opts.InferConstraints {
			unifyStringConstraints(schema, strs)
		}
		if opts.InferFormats {
			unifyFormat(schema, strs)
		}
	}
	if (hasKind(kinds, "integer") || hasKind(kinds, "number")) && opts.InferConstraints {
		nums := append(filterKind(samples, KindInt), filterKind(samples, KindFloat)...)
		unifyNumberConstraints(schema, nums, len(kinds) == 1 && kinds[0] == "integer")
	}
	return schema
}

func collectKinds(samples []*Node) []string {
	seen := make(map[string]bool)
	var order []string
	for _, s := range samples {
		name := s.Kind().String()
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}
	return order
}

func hasKind(kinds []string, name string) bool {
	for _, k := range kinds {
		if k == name {
			return true
		}
	}
	return false
}

func filterKind(samples []*Node, kind Kind) []*Node {
	var out []*Node
	for _, s := range samples {
		if s.Kind() == kind {
			out = append(out, s)
		}
	}
	return out
}

// unifyObject infers "properties" and "required" across objSamples:
// insertion order of properties follows the first sample's key order, and
// a key is required iff present in every sample.
func unifyObject(schema *Node, objSamples []*Node, opts InferenceOptions) {
	props := NewObject()
	var keyOrder []string
	seen := make(map[string]bool)
	for i, s := range objSamples {
		keys := s.Keys()
		if i == 0 {
			keyOrder = append(keyOrder, keys...)
			for _, k := range keys {
				seen[k] = true
			}
			continue
		}
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				keyOrder = append(keyOrder, k)
			}
		}
	}

	required := NewArray()
	for _, key := range keyOrder {
		var valueSamples []*Node
		for _, s := range objSamples {
			if s.HasField(key) {
				valueSamples = append(valueSamples, s.Field(key))
			}
		}
		if len(valueSamples) == len(objSamples) {
			required.Append(NewString(key))
		}
		props.SetField(key, unify(valueSamples, opts))
	}

	schema.SetField("properties", props)
	if required.Len() > 0 {
		schema.SetField("required", required)
	}

	if opts.InferConstraints && len(objSamples) > 0 {
		lo, hi := objSamples[0].Len(), objSamples[0].Len()
		for _, s := range objSamples {
			lo, hi = minInt(lo, s.Len()), maxInt(hi, s.Len())
		}
		schema.SetField("minProperties", NewInt(int64(lo)))
		schema.SetField("maxProperties", NewInt(int64(hi)))
	}
}

// unifyArray infers a single "items" subschema from every element of
// every array sample.
func unifyArray(schema *Node, arrSamples []*Node, opts InferenceOptions) {
	var elems []*Node
	for _, s := range arrSamples {
		elems = append(elems, s.Elements()...)
	}
	schema.SetField("items", unify(elems, opts))

	if opts.InferConstraints && len(arrSamples) > 0 {
		lo, hi := arrSamples[0].Len(), arrSamples[0].Len()
		for _, s := range arrSamples {
			lo, hi = minInt(lo, s.Len()), maxInt(hi, s.Len())
		}
		schema.SetField("minItems", NewInt(int64(lo)))
		schema.SetField("maxItems", NewInt(int64(hi)))
	}
}

func unifyStringConstraints(schema *Node, strSamples []*Node) {
	if len(strSamples) == 0 {
		return
	}
	lo, hi := -1, -1
	for _, s := range strSamples {
		n := utf8.RuneCountInString(s.StringValue())
		if lo == -1 || n < lo {
			lo = n
		}
		if n > hi {
			hi = n
		}
	}
	schema.SetField("minLength", NewInt(int64(lo)))
	schema.SetField("maxLength", NewInt(int64(hi)))
}

// unifyFormat emits "format" when every non-empty sample string matches
// the same candidate pattern.
func unifyFormat(schema *Node, strSamples []*Node) {
	var nonEmpty []string
	for _, s := range strSamples {
		if v := s.StringValue(); v != "" {
			nonEmpty = append(nonEmpty, v)
		}
	}
	if len(nonEmpty) == 0 {
		return
	}
	for _, name := range formatCandidates {
		validator, ok := Formats[name]
		if !ok {
			continue
		}
		allMatch := true
		for _, v := range nonEmpty {
			if !validator(v) {
				allMatch = false
				break
			}
		}
		if allMatch {
			schema.SetField("format", NewString(name))
			return
		}
	}
}

func unifyNumberConstraints(schema *Node, numSamples []*Node, allInt bool) {
	if len(numSamples) == 0 {
		return
	}
	lo, hi := numSamples[0].FloatValue(), numSamples[0].FloatValue()
	for _, s := range numSamples {
		v := s.FloatValue()
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if allInt {
		schema.SetField("minimum", NewInt(int64(lo)))
		schema.SetField("maximum", NewInt(int64(hi)))
		return
	}
	schema.SetField("minimum", NewFloat(lo))
	schema.SetField("maximum", NewFloat(hi))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
