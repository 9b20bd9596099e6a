package recon

import (
	"strings"

	"github.com/beevik/etree"
)

// okSentinel is the authority's acceptance status, compared case-insensitively.
const okSentinel = "resultcode.ok"

// Accepted reports whether the outcome's status is the OK sentinel.
func (o *Outcome) Accepted() bool {
	return strings.EqualFold(o.StatusCode, okSentinel)
}

// The status element has appeared under two shapes in authority reports: a
// single dotted tag and a two-level nesting. First non-empty wins.
var statusPaths = [][]string{
	{"Lookups.ResultCode"},
	{"Lookups", "ResultCode"},
}

// FindOutcome locates the authority's verdict for one identifier. Result
// documents are not namespaced the way source documents are, so matching
// ignores namespaces entirely. When several elements carry the same
// identifier the first in document order wins.
func FindOutcome(doc *etree.Document, identifier string) *Outcome {
	if identifier == "" {
		return nil
	}
	root := doc.Root()
	if root == nil {
		return nil
	}

	var match *etree.Element
	for _, container := range collectDescendants(root, "Commands", "") {
		for _, el := range collectChildren(container, "Command", "") {
			if strings.TrimSpace(el.SelectAttrValue("identifier", "")) == identifier {
				match = el
				break
			}
		}
		if match != nil {
			break
		}
	}
	if match == nil {
		return nil
	}

	status := ""
	for _, path := range statusPaths {
		first := findDescendant(match, path[0], "")
		if first == nil {
			continue
		}
		rest := path[1:]
		if value := textAtPath(first, "", rest...); value != "" {
			status = value
			break
		}
	}
	if status == "" {
		status = StatusUnknown
	}

	message := ""
	if msgEl := findDescendant(match, "ErrorMessage", ""); msgEl != nil {
		message = strings.TrimSpace(msgEl.Text())
	}

	return &Outcome{
		Identifier:   identifier,
		StatusCode:   status,
		ErrorMessage: message,
	}
}
