package njson

import (
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// PathFormat selects the textual rendering of a path, used by PathView
// and by validation error locations.
type PathFormat int

const (
	// PointerFormat renders RFC 6901 JSON Pointer syntax: "/a/b/0".
	PointerFormat PathFormat = iota
	// DotFormat renders dot/bracket syntax: "a.b[0]".
	DotFormat
)

// segment is one normalised step of a path. A numeric-looking segment
// keeps both readings (key and index): whether it addresses an array
// position or an object key is decided by the parent's actual kind at
// walk time, not at parse time.
type segment struct {
	key     string
	index   int
	isIndex bool
}

func keySeg(k string) segment { return segment{key: k} }

// parsePath normalises either surface syntax into a segment sequence. The
// empty string denotes the root.
func parsePath(path string) ([]segment, error) {
	if path == "" {
		return nil, nil
	}
	if strings.HasPrefix(path, "/") {
		return parsePointerPath(path), nil
	}
	return parseDotPath(path)
}

func parsePointerPath(path string) []segment {
	tokens := jsonpointer.Parse(path)
	segs := make([]segment, 0, len(tokens))
	for _, tok := range tokens {
		segs = append(segs, segmentFromToken(tok))
	}
	return segs
}

// segmentFromToken classifies a decoded token: digits with no leading zero
// (except the literal "0") are a valid index reading; anything else keeps
// only the string-key reading.
func segmentFromToken(tok string) segment {
	if idx, ok := parseArrayIndex(tok); ok {
		return segment{key: tok, index: idx, isIndex: true}
	}
	return keySeg(tok)
}

func parseArrayIndex(tok string) (int, bool) {
	if tok == "" {
		return 0, false
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	if len(tok) > 1 && tok[0] == '0' {
		return 0, false
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func parseDotPath(path string) ([]segment, error) {
	var segs []segment
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			segs = append(segs, segmentFromToken(cur.String()))
			cur.Reset()
		}
	}

	i := 0
	for i < len(path) {
		switch path[i] {
		case '.':
			flush()
			i++
		case '[':
			flush()
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				return nil, &PathError{Path: path, Reason: "unterminated '['"}
			}
			tok := path[i+1 : i+end]
			segs = append(segs, segmentFromToken(tok))
			i += end + 1
		default:
			cur.WriteByte(path[i])
			i++
		}
	}
	flush()
	return segs, nil
}

// formatPath renders a segment sequence back to text (used by PathView and
// validation error locations). The root (empty segs) renders as "".
func formatPath(segs []segment, format PathFormat) string {
	if len(segs) == 0 {
		return ""
	}
	if format == DotFormat {
		var b strings.Builder
		for i, s := range segs {
			if s.isIndex {
				b.WriteByte('[')
				b.WriteString(strconv.Itoa(s.index))
				b.WriteByte(']')
				continue
			}
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(s.key)
		}
		return b.String()
	}
	tokens := make([]string, len(segs))
	for i, s := range segs {
		if s.isIndex {
			tokens[i] = strconv.Itoa(s.index)
		} else {
			tokens[i] = s.key
		}
	}
	return "/" + jsonpointer.Format(tokens...)
}

// walkRead follows segs from root in read mode: any segment that cannot
// be followed — missing key, out-of-range index, scalar encountered
// mid-path, malformed index over an array — yields (nil,
// false), which callers surface as absence, never an error.
func walkRead(root *Node, segs []segment) (*Node, bool) {
	cur := root
	for _, s := range segs {
		switch cur.Kind() {
		case KindObject:
			if !cur.HasField(s.key) {
				return nil, false
			}
			cur = cur.Field(s.key)
		case KindArray:
			if !s.isIndex || s.index >= cur.Len() {
				return nil, false
			}
			cur = cur.Element(s.index)
		default:
			return nil, false
		}
	}
	return cur, true
}

// resolveWrite walks from *root in write mode, auto-materialising or
// replacing containers as needed, and returns a pointer to the slot that
// should receive the final written value.
func resolveWrite(root **Node, segs []segment) **Node {
	slot := root
	for _, s := range segs {
		if !isContainerFor(*slot, s) {
			if s.isIndex {
				*slot = NewArray()
			} else {
				*slot = NewObject()
			}
		}
		cur := *slot
		if cur.Kind() == KindArray {
			for cur.Len() <= s.index {
				cur.elements = append(cur.elements, NewNull())
			}
			slot = &cur.elements[s.index]
		} else {
			slot = objectSlot(cur, s.key)
		}
	}
	return slot
}

// objectSlot returns a settable pointer to obj's child slot for key,
// creating the member (as Null, preserving insertion order) if absent.
func objectSlot(obj *Node, key string) **Node {
	if !obj.HasField(key) {
		obj.SetField(key, NewNull())
	}
	i := obj.index[key]
	return &obj.members[i].value
}

// isContainerFor reports whether existing already has the container kind
// required to address s (Array for an index reading, Object otherwise).
func isContainerFor(existing *Node, s segment) bool {
	if existing == nil {
		return false
	}
	if s.isIndex {
		return existing.Kind() == KindArray
	}
	return existing.Kind() == KindObject
}
