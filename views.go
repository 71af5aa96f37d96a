package njson

// ObjectEntry is one (key, child Document) pair yielded by an object view.
type ObjectEntry struct {
	Key   string
	Value *Document
}

// ObjectView returns the fields of the object at path, in insertion order.
// The path must address an Object node; otherwise an empty, nil slice is
// returned. The slice is built when ObjectView is called, so keys added or
// removed afterward do not appear in it; each entry's Document wraps the
// child Node itself, not a copy, so a change made inside that child through
// either Document is visible through both.
func (d *Document) ObjectView(path string) []ObjectEntry {
	n, ok := d.node(path)
	if !ok || !n.IsObject() {
		return nil
	}
	keys := n.Keys()
	entries := make([]ObjectEntry, len(keys))
	for i, k := range keys {
		entries[i] = ObjectEntry{Key: k, Value: NewDocumentFromNode(n.Field(k))}
	}
	return entries
}

// ArrayView returns the elements of the array at path, in index order.
func (d *Document) ArrayView(path string) []*Document {
	n, ok := d.node(path)
	if !ok || !n.IsArray() {
		return nil
	}
	elems := n.Elements()
	docs := make([]*Document, len(elems))
	for i, e := range elems {
		docs[i] = NewDocumentFromNode(e)
	}
	return docs
}

// PathEntry is one node visited by a PathView walk.
type PathEntry struct {
	Path  string
	Depth int
	Leaf  bool
	Value *Node
}

// PathViewOptions configures PathView.
type PathViewOptions struct {
	Format PathFormat // default PointerFormat
}

// PathView performs a depth-first pre-order walk of the Document starting
// at path (the document root if path is ""), returning one entry per
// descendant. The walk is not lazy: it completes and the whole slice is
// built before PathView returns. The starting node itself is not emitted — iteration
// starts with its children, generalised here to start from any subtree
// root rather than only the document root.
func (d *Document) PathView(path string, opts PathViewOptions) []PathEntry {
	start, ok := d.node(path)
	if !ok {
		return nil
	}
	baseSegs, err := parsePath(path)
	if err != nil {
		return nil
	}

	var entries []PathEntry
	var walk func(n *Node, segs []segment, depth int)
	walk = func(n *Node, segs []segment, depth int) {
		isLeaf := !n.IsObject() && !n.IsArray()
		entries = append(entries, PathEntry{
			Path:  formatPath(segs, opts.Format),
			Depth: depth,
			Leaf:  isLeaf,
			Value: n,
		})
		switch n.Kind() {
		case KindObject:
			for _, k := range n.Keys() {
				walk(n.Field(k), append(append([]segment(nil), segs...), keySeg(k)), depth+1)
			}
		case KindArray:
			for i, e := range n.Elements() {
				walk(e, append(append([]segment(nil), segs...), segment{index: i, isIndex: true, key: ""}), depth+1)
			}
		}
	}

	switch start.Kind() {
	case KindObject:
		for _, k := range start.Keys() {
			walk(start.Field(k), append(append([]segment(nil), baseSegs...), keySeg(k)), 1)
		}
	case KindArray:
		for i, e := range start.Elements() {
			walk(e, append(append([]segment(nil), baseSegs...), segment{index: i, isIndex: true}), 1)
		}
	}
	return entries
}
