package recon

import (
	"strings"

	"github.com/beevik/etree"
)

// matchTag reports whether el has the given local tag in the given namespace.
// An empty ns matches any namespace; an element without a namespace matches
// regardless, since some producers omit the xmlns declaration entirely.
func matchTag(el *etree.Element, tag, ns string) bool {
	if el.Tag != tag {
		return false
	}
	if ns == "" {
		return true
	}
	uri := el.NamespaceURI()
	return uri == ns || uri == ""
}

func findChild(el *etree.Element, tag, ns string) *etree.Element {
	for _, child := range el.ChildElements() {
		if matchTag(child, tag, ns) {
			return child
		}
	}
	return nil
}

func collectChildren(el *etree.Element, tag, ns string) []*etree.Element {
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		if matchTag(child, tag, ns) {
			out = append(out, child)
		}
	}
	return out
}

// findDescendant returns the first matching element in document order,
// searching el's subtree depth first.
func findDescendant(el *etree.Element, tag, ns string) *etree.Element {
	for _, child := range el.ChildElements() {
		if matchTag(child, tag, ns) {
			return child
		}
		if found := findDescendant(child, tag, ns); found != nil {
			return found
		}
	}
	return nil
}

func collectDescendants(el *etree.Element, tag, ns string) []*etree.Element {
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		if matchTag(child, tag, ns) {
			out = append(out, child)
		}
		out = append(out, collectDescendants(child, tag, ns)...)
	}
	return out
}

// findPath walks a relative child path, namespace-checked at every step.
func findPath(el *etree.Element, ns string, path ...string) *etree.Element {
	current := el
	for _, tag := range path {
		if current == nil {
			return nil
		}
		current = findChild(current, tag, ns)
	}
	return current
}

func textAtPath(el *etree.Element, ns string, path ...string) string {
	found := findPath(el, ns, path...)
	if found == nil {
		return ""
	}
	return strings.TrimSpace(found.Text())
}
