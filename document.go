package njson

import "github.com/goccy/go-json"

// Document is the user-facing façade around a Value Tree root. Every
// operation is expressed in terms of a path over that root.
type Document struct {
	root *Node
}

// NewDocument returns an empty Document (root is absent/Null until the
// first write).
func NewDocument() *Document {
	return &Document{}
}

// NewDocumentFromNode wraps an existing Node as a Document's root. The
// Document takes ownership of n; callers that want to keep their own copy
// should pass n.Clone().
func NewDocumentFromNode(n *Node) *Document {
	return &Document{root: n}
}

// FromString parses text into a Document.
func FromString(text string) (*Document, error) {
	n, err := ParseString(text)
	if err != nil {
		return nil, err
	}
	return &Document{root: n}, nil
}

// FromBytes parses bytes into a Document.
func FromBytes(data []byte) (*Document, error) {
	n, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return &Document{root: n}, nil
}

// Root returns the Document's root Node (nil for an empty Document).
func (d *Document) Root() *Node { return d.root }

// Clone deep-copies the Document.
func (d *Document) Clone() *Document {
	return &Document{root: d.root.Clone()}
}

// node resolves path in read mode and reports whether anything exists
// there.
func (d *Document) node(path string) (*Node, bool) {
	segs, err := parsePath(path)
	if err != nil {
		return nil, false
	}
	return walkRead(d.root, segs)
}

// Contains reports whether some node exists at path, including an
// explicit Null.
func (d *Document) Contains(path string) bool {
	_, ok := d.node(path)
	return ok
}

// IsNull reports whether the node at path exists and is the Null variant.
func (d *Document) IsNull(path string) bool {
	n, ok := d.node(path)
	return ok && n.IsNull()
}

// IsObject reports whether the node at path exists and is an Object.
func (d *Document) IsObject(path string) bool {
	n, ok := d.node(path)
	return ok && n.IsObject()
}

// IsArray reports whether the node at path exists and is an Array.
func (d *Document) IsArray(path string) bool {
	n, ok := d.node(path)
	return ok && n.IsArray()
}

// IsString reports whether the node at path exists and is a Str.
func (d *Document) IsString(path string) bool {
	n, ok := d.node(path)
	return ok && n.IsString()
}

// IsBool reports whether the node at path exists and is a Bool.
func (d *Document) IsBool(path string) bool {
	n, ok := d.node(path)
	return ok && n.IsBool()
}

// IsNumber reports whether the node at path exists and is Int or Float.
func (d *Document) IsNumber(path string) bool {
	n, ok := d.node(path)
	return ok && n.IsNumber()
}

// GetNode returns the raw Node at path, or (nil, false) if absent.
func (d *Document) GetNode(path string) (*Node, bool) {
	return d.node(path)
}

// GetString returns the string at path. Absent or wrong-variant both
// report false: call IsString to disambiguate.
func (d *Document) GetString(path string) (string, bool) {
	n, ok := d.node(path)
	if !ok || !n.IsString() {
		return "", false
	}
	return n.StringValue(), true
}

// GetBool returns the boolean at path.
func (d *Document) GetBool(path string) (bool, bool) {
	n, ok := d.node(path)
	if !ok || !n.IsBool() {
		return false, false
	}
	return n.BoolValue(), true
}

// GetInt returns the integer at path. An Int↔Float coercion is permitted;
// a Float with a fractional part still widens via truncation, matching
// Node.IntValue.
func (d *Document) GetInt(path string) (int64, bool) {
	n, ok := d.node(path)
	if !ok || !n.IsNumber() {
		return 0, false
	}
	return n.IntValue(), true
}

// GetFloat returns the numeric value at path as a float64.
func (d *Document) GetFloat(path string) (float64, bool) {
	n, ok := d.node(path)
	if !ok || !n.IsNumber() {
		return 0, false
	}
	return n.FloatValue(), true
}

// setNode replaces the node at path with value, auto-materialising
// intermediate containers. Write-side operations never fail
// except for a malformed path expression.
func (d *Document) setNode(path string, value *Node) error {
	segs, err := parsePath(path)
	if err != nil {
		return err
	}
	if len(segs) == 0 {
		d.root = value
		return nil
	}
	if d.root == nil {
		d.root = NewNull()
	}
	slot := resolveWrite(&d.root, segs)
	*slot = value
	return nil
}

// SetNode replaces the node at path with an arbitrary *Node.
func (d *Document) SetNode(path string, value *Node) error {
	return d.setNode(path, value)
}

// SetString sets a string value at path.
func (d *Document) SetString(path, value string) error { return d.setNode(path, NewString(value)) }

// SetBool sets a boolean value at path.
func (d *Document) SetBool(path string, value bool) error { return d.setNode(path, NewBool(value)) }

// SetInt sets an integer value at path.
func (d *Document) SetInt(path string, value int64) error { return d.setNode(path, NewInt(value)) }

// SetFloat sets a floating-point value at path.
func (d *Document) SetFloat(path string, value float64) error {
	return d.setNode(path, NewFloat(value))
}

// SetNull sets the Null variant at path.
func (d *Document) SetNull(path string) error { return d.setNode(path, NewNull()) }

// Remove removes the node at path: on an object the key is deleted, on an
// array the element is deleted and later elements shift down. A no-op
// when path is absent.
func (d *Document) Remove(path string) error {
	segs, err := parsePath(path)
	if err != nil {
		return err
	}
	if len(segs) == 0 {
		d.root = nil
		return nil
	}
	parentSegs, last := segs[:len(segs)-1], segs[len(segs)-1]
	parent, ok := walkRead(d.root, parentSegs)
	if !ok {
		return nil
	}
	switch parent.Kind() {
	case KindObject:
		parent.RemoveField(last.key)
	case KindArray:
		if last.isIndex {
			parent.RemoveElement(last.index)
		}
	}
	return nil
}

// String renders the Document with the given indent (0 = minified),
// matching the Emitter's default sort/escape options.
func (d *Document) String(indent int) (string, error) {
	return Render(d.root, EmitterOptions{Indent: indent})
}

// ToString renders the Document using the given options.
func (d *Document) ToString(opts EmitterOptions) (string, error) {
	return Render(d.root, opts)
}

// MarshalJSON implements encoding/json's Marshaler via goccy/go-json,
// going through the same any-tree bridge as yamldoc.go so a Document can
// sit inside a larger struct a caller marshals with that codec.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(nodeToAny(d.root))
}

// UnmarshalJSON implements encoding/json's Unmarshaler via goccy/go-json.
func (d *Document) UnmarshalJSON(data []byte) error {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	d.root = nodeFromAny(decoded)
	return nil
}
