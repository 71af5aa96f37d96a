package njson

import (
	"net/url"
	"path"
	"strings"
)

// refTarget is the resolved destination of a $ref: either a concrete
// schema node reachable within the same document, or a flag that the
// reference points outside this document and is therefore unsupported.
type refTarget struct {
	node        *Node
	schemaPath  string
	unsupported bool
}

// resolveRef resolves ref against the schema root: a value
// beginning with "#/" is a pointer-syntax path into the schema document; a
// bare "#" is the document root; "#name" is an $anchor lookup. A ref with no
// "#" at all, or with a non-empty part before "#", has no fragment-only
// shorthand and is instead joined against the schema's own "$id" (spec.md
// §4.5); if that join lands back on this same document, the fragment part
// resolves locally exactly as the "#..." forms do. Anything that joins to a
// different resource, or that has no "$id" to join against, names an
// external resource this core does not fetch.
func (s *Schema) resolveRef(ref string) (refTarget, error) {
	if ref == "#" {
		return refTarget{node: s.doc.Root(), schemaPath: ""}, nil
	}
	if strings.HasPrefix(ref, "#") {
		return s.resolveFragment(ref[1:])
	}

	base, fragment := splitRef(ref)
	if base != "" && !isAbsoluteRef(base) && s.id != "" {
		if dir := idBaseDirectory(s.id); dir != "" {
			if joined := resolveAgainstBase(dir, base); joined == s.id {
				return s.resolveFragment(fragment)
			}
		}
	}

	// No recognised local fragment and no $id-relative join back to this
	// document: an absolute or relative external reference. Resolving
	// these requires network fetch, a non-goal, so validation reports
	// unsupportedRef instead.
	return refTarget{unsupported: true}, nil
}

// resolveFragment resolves the part of a $ref after its "#": "" is the
// document root, a pointer-syntax path ("/defs/foo") is walked via the Path
// Resolver, and anything else is looked up in the $anchor index compile()
// built.
func (s *Schema) resolveFragment(fragment string) (refTarget, error) {
	root := s.doc.Root()

	if fragment == "" {
		return refTarget{node: root, schemaPath: ""}, nil
	}

	if strings.HasPrefix(fragment, "/") {
		segs, err := parsePath(fragment)
		if err != nil {
			return refTarget{}, &PathError{Path: fragment, Reason: "malformed $ref pointer"}
		}
		node, ok := walkRead(root, segs)
		if !ok {
			return refTarget{}, ErrUnresolvableRef
		}
		return refTarget{node: node, schemaPath: formatPath(segs, PointerFormat)}, nil
	}

	schemaPath, ok := s.anchors[fragment]
	if !ok {
		return refTarget{}, ErrUnresolvableRef
	}
	segs, err := parsePath(schemaPath)
	if err != nil {
		return refTarget{}, ErrUnresolvableRef
	}
	node, ok := walkRead(root, segs)
	if !ok {
		return refTarget{}, ErrUnresolvableRef
	}
	return refTarget{node: node, schemaPath: schemaPath}, nil
}

// splitRef splits ref at its first "#" into a base (possibly empty) and a
// fragment (possibly empty, without the "#").
func splitRef(ref string) (base, fragment string) {
	if i := strings.IndexByte(ref, '#'); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return ref, ""
}

// isAbsoluteRef reports whether ref already names a scheme+host, i.e. it is
// not "without a host" in spec.md §4.5's sense.
func isAbsoluteRef(ref string) bool {
	u, err := url.Parse(ref)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// idBaseDirectory returns the directory URI id's path resolves relative
// references against (e.g. "https://example.com/schemas/root.json" ->
// "https://example.com/schemas/"), or "" if id is not an absolute URI.
func idBaseDirectory(id string) string {
	u, err := url.Parse(id)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	if strings.HasSuffix(u.Path, "/") {
		return u.String()
	}
	u.Path = path.Dir(u.Path)
	if u.Path == "." || u.Path == "" {
		u.Path = "/"
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// resolveAgainstBase joins ref against base per RFC 3986 reference
// resolution, returning ref unchanged if either fails to parse.
func resolveAgainstBase(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}
