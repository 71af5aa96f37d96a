package njson

import "github.com/goccy/go-yaml"

// DocumentFromYAML parses YAML text into a Document by first decoding it
// into a generic any tree and then converting that tree into Nodes.
func DocumentFromYAML(text []byte) (*Document, error) {
	var decoded any
	if err := yaml.Unmarshal(text, &decoded); err != nil {
		return nil, err
	}
	return NewDocumentFromNode(nodeFromAny(decoded)), nil
}

// ToYAML renders the Document as YAML text.
func (d *Document) ToYAML() ([]byte, error) {
	return yaml.Marshal(nodeToAny(d.Root()))
}

func nodeFromAny(v any) *Node {
	switch t := v.(type) {
	case nil:
		return NewNull()
	case bool:
		return NewBool(t)
	case int:
		return NewInt(int64(t))
	case int64:
		return NewInt(t)
	case float64:
		return NewFloat(t)
	case string:
		return NewString(t)
	case []any:
		arr := NewArray()
		for _, e := range t {
			arr.Append(nodeFromAny(e))
		}
		return arr
	case map[string]any:
		obj := NewObject()
		for k, e := range t {
			obj.SetField(k, nodeFromAny(e))
		}
		return obj
	case map[any]any:
		obj := NewObject()
		for k, e := range t {
			if ks, ok := k.(string); ok {
				obj.SetField(ks, nodeFromAny(e))
			}
		}
		return obj
	default:
		return NewNull()
	}
}

func nodeToAny(n *Node) any {
	switch n.Kind() {
	case KindNull:
		return nil
	case KindBool:
		return n.BoolValue()
	case KindInt:
		return n.IntValue()
	case KindFloat:
		return n.FloatValue()
	case KindString:
		return n.StringValue()
	case KindArray:
		out := make([]any, n.Len())
		for i, e := range n.Elements() {
			out[i] = nodeToAny(e)
		}
		return out
	case KindObject:
		out := make(map[string]any, n.Len())
		for _, k := range n.Keys() {
			out[k] = nodeToAny(n.Field(k))
		}
		return out
	default:
		return nil
	}
}
