package rules

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
)

// batchNS is the namespace of submitted batch documents.
const batchNS = "http://cb4.creditinfosolutions.com/BatchUploader/Batch"

const (
	ReasonMissing       = "missing"
	ReasonInvalidValue  = "invalid_value"
	ReasonInvalidFormat = "invalid_format"
)

// Violation is one rule failure.
type Violation struct {
	SectionPath string `json:"section_path"`
	FieldName   string `json:"field_name"`
	Identifier  string `json:"identifier"`
	Reason      string `json:"reason"`
}

// Result aggregates a document validation run.
type Result struct {
	IsValid            bool        `json:"is_valid"`
	ErrorCount         int         `json:"error_count"`
	Violations         []Violation `json:"violations"`
	Message            string      `json:"message"`
	MissingSectorCount int         `json:"missing_sector_count"`
	MissingPhoneCount  int         `json:"missing_phone_count"`
}

var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Validate walks the rule tree against one command element and collects
// every violation in a single pass. Never mutates the input.
func Validate(el *etree.Element, node *RuleNode) []Violation {
	identifier := strings.TrimSpace(el.SelectAttrValue("identifier", ""))
	return validateNode(el, node, identifier, "")
}

func validateNode(el *etree.Element, node *RuleNode, identifier, path string) []Violation {
	var violations []Violation

	for _, fieldName := range sortedFieldNames(node.RequiredFields) {
		rule := node.RequiredFields[fieldName]
		field := childInNS(el, fieldName)
		if field == nil || strings.TrimSpace(field.Text()) == "" {
			violations = append(violations, Violation{
				SectionPath: path,
				FieldName:   fieldName,
				Identifier:  identifier,
				Reason:      ReasonMissing,
			})
			continue
		}
		value := strings.TrimSpace(field.Text())

		if rule.Value != "" && value != rule.Value {
			violations = append(violations, Violation{
				SectionPath: path,
				FieldName:   fieldName,
				Identifier:  identifier,
				Reason:      ReasonInvalidValue,
			})
			continue
		}
		if rule.Lookup != "" && !LookupContains(rule.Lookup, value) {
			violations = append(violations, Violation{
				SectionPath: path,
				FieldName:   fieldName,
				Identifier:  identifier,
				Reason:      ReasonInvalidValue,
			})
			continue
		}
		if rule.Pattern != "" {
			if pattern, ok := Patterns[rule.Pattern]; ok && !pattern.MatchString(value) {
				violations = append(violations, Violation{
					SectionPath: path,
					FieldName:   fieldName,
					Identifier:  identifier,
					Reason:      ReasonInvalidFormat,
				})
				continue
			}
		}
		if reason := checkFieldType(rule.Type, value); reason != "" {
			violations = append(violations, Violation{
				SectionPath: path,
				FieldName:   fieldName,
				Identifier:  identifier,
				Reason:      reason,
			})
		}
	}

	for _, sectionName := range sortedSectionNames(node.NestedSections) {
		sectionNode := node.NestedSections[sectionName]
		sectionPath := sectionName
		if path != "" {
			sectionPath = path + "/" + sectionName
		}
		section := childInNS(el, sectionName)
		if section == nil {
			// An absent section is one violation, not one per field.
			violations = append(violations, Violation{
				SectionPath: sectionPath,
				FieldName:   "",
				Identifier:  identifier,
				Reason:      ReasonMissing,
			})
			continue
		}
		violations = append(violations, validateNode(section, sectionNode, identifier, sectionPath)...)
	}

	return violations
}

func checkFieldType(fieldType FieldType, value string) string {
	switch fieldType {
	case FieldInt:
		// Some producers serialize counters with a decimal tail.
		cleaned := strings.TrimSuffix(value, ".0000")
		if _, err := strconv.Atoi(cleaned); err != nil {
			return ReasonInvalidFormat
		}
	case FieldDecimal:
		cleaned := strings.ReplaceAll(value, ",", ".")
		if _, err := decimal.NewFromString(cleaned); err != nil {
			return ReasonInvalidFormat
		}
	case FieldDateTime:
		for _, layout := range dateTimeLayouts {
			if _, err := time.Parse(layout, value); err == nil {
				return ""
			}
		}
		return ReasonInvalidFormat
	}
	return ""
}

// ValidateDocument runs the rule tree over every command in a decoded source
// document and aggregates the outcome, including the quick presence counters
// surfaced on the triage dashboard.
func ValidateDocument(doc *etree.Document) *Result {
	result := &Result{}
	root := doc.Root()
	if root == nil {
		result.Message = "Document has no root element"
		return result
	}

	tree := CommandRuleTree()
	for _, command := range descendantsInNS(root, "Command") {
		identifier := strings.TrimSpace(command.SelectAttrValue("identifier", ""))

		payload := firstDescendantInNS(command, StorInstalmentTag)
		if payload == nil {
			result.Violations = append(result.Violations, Violation{
				SectionPath: StorInstalmentTag,
				Identifier:  identifier,
				Reason:      ReasonMissing,
			})
			continue
		}
		result.Violations = append(result.Violations, validateNode(payload, tree, identifier, "")...)

		if sector := firstDescendantInNS(command, "EconomicSector"); sector == nil || strings.TrimSpace(sector.Text()) == "" {
			result.MissingSectorCount++
		}
		if phone := firstDescendantInNS(command, "CellularPhone"); phone == nil || strings.TrimSpace(phone.Text()) == "" {
			result.MissingPhoneCount++
		}
	}

	result.ErrorCount = len(result.Violations)
	result.IsValid = result.ErrorCount == 0
	if result.IsValid {
		result.Message = "File is valid and ready for upload"
	} else {
		result.Message = fmt.Sprintf("Found %d validation errors that must be corrected", result.ErrorCount)
	}
	return result
}

func sortedFieldNames(fields map[string]FieldRule) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedSectionNames(sections map[string]*RuleNode) []string {
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func inNS(el *etree.Element, tag string) bool {
	if el.Tag != tag {
		return false
	}
	uri := el.NamespaceURI()
	return uri == batchNS || uri == ""
}

func childInNS(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if inNS(child, tag) {
			return child
		}
	}
	return nil
}

func firstDescendantInNS(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if inNS(child, tag) {
			return child
		}
		if found := firstDescendantInNS(child, tag); found != nil {
			return found
		}
	}
	return nil
}

func descendantsInNS(el *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		if inNS(child, tag) {
			out = append(out, child)
		}
		out = append(out, descendantsInNS(child, tag)...)
	}
	return out
}
