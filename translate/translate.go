package translate

import (
	"regexp"
	"sort"
	"strings"
)

// Input carries whatever error facets the caller has. Every field is
// optional; Synthesize is total over all combinations.
type Input struct {
	ErrorCode       string
	FieldName       string
	RegexPattern    string
	BusinessRule    string
	OriginalMessage string
}

// Synthesize renders a human-readable message from the available facets,
// joining every matched fragment with " - ". Deterministic and never empty.
func Synthesize(in Input) string {
	var fragments []string

	if in.OriginalMessage != "" {
		for _, specific := range specificErrorTranslations {
			if strings.Contains(in.OriginalMessage, specific.pattern) {
				fragments = append(fragments, specific.translation)
				break
			}
		}
	}

	if in.FieldName != "" {
		friendly, ok := fieldTranslations[in.FieldName]
		if !ok {
			friendly = in.FieldName
		}
		fragments = append(fragments, "Issue with: "+friendly)
	}

	if in.ErrorCode != "" {
		if translation, ok := errorCodeTranslations[in.ErrorCode]; ok {
			fragments = append(fragments, translation)
		} else if translation, ok := errorCodeTranslations[codePrefix(in.ErrorCode)]; ok {
			fragments = append(fragments, translation)
		}
	}

	if in.RegexPattern != "" {
		if translation, ok := regexTranslations[in.RegexPattern]; ok {
			fragments = append(fragments, translation)
		}
	}

	if in.BusinessRule != "" {
		if translation, ok := businessRuleTranslations[in.BusinessRule]; ok {
			fragments = append(fragments, translation)
		} else if translation := longestRuleMatch(in.BusinessRule); translation != "" {
			fragments = append(fragments, translation)
		}
	}

	if len(fragments) == 0 {
		if in.OriginalMessage != "" {
			cleaned := in.OriginalMessage
			for _, prefix := range technicalPrefixes {
				cleaned = strings.ReplaceAll(cleaned, prefix, "")
			}
			return "Validation error: " + cleaned
		}
		return genericErrorMessage
	}

	return strings.Join(fragments, " - ")
}

func codePrefix(code string) string {
	if idx := strings.Index(code, "-"); idx > 0 {
		return code[:idx]
	}
	return code
}

// longestRuleMatch finds the longest known rule key contained in the given
// rule text. Keys are sorted so ties resolve deterministically.
func longestRuleMatch(rule string) string {
	keys := make([]string, 0, len(businessRuleTranslations))
	for key := range businessRuleTranslations {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for _, key := range keys {
		if strings.Contains(rule, key) {
			return businessRuleTranslations[key]
		}
	}
	return ""
}

var errorCodePatterns = []*regexp.Regexp{
	regexp.MustCompile(`cvc-\w+(-\w+)*`),
	regexp.MustCompile(`E\d{3}`),
	regexp.MustCompile(`W\d{3}`),
	regexp.MustCompile(`C\d{3}`),
}

func extractErrorCode(message string) string {
	for _, pattern := range errorCodePatterns {
		if match := pattern.FindString(message); match != "" {
			return match
		}
	}
	return ""
}

var fieldPatterns = []*regexp.Regexp{
	regexp.MustCompile(`'(.*?)'`),
	regexp.MustCompile(`for '(\w+)'`),
	regexp.MustCompile(`for type '(.*?)'`),
	regexp.MustCompile(`type '(\w+\.\w+\.\w+\.\w+)'`),
}

func extractField(message string) string {
	for _, pattern := range fieldPatterns {
		match := pattern.FindStringSubmatch(message)
		if match == nil {
			continue
		}
		fieldName := match[1]
		if _, ok := fieldTranslations[fieldName]; ok {
			return fieldName
		}
		if idx := strings.LastIndex(fieldName, "."); idx >= 0 {
			return fieldName[idx+1:]
		}
		return fieldName
	}
	return ""
}

// sortedRegexKeys and sortedRuleKeys keep substring scans deterministic.
func sortedRegexKeys() []string {
	keys := make([]string, 0, len(regexTranslations))
	for key := range regexTranslations {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedRuleKeys() []string {
	keys := make([]string, 0, len(businessRuleTranslations))
	for key := range businessRuleTranslations {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ParseErrorDetails mines an opaque message (plus optional stored details)
// for facets and synthesizes a friendly rendering.
func ParseErrorDetails(message string, details map[string]string) string {
	if message == "" {
		return genericErrorMessage
	}

	in := Input{
		ErrorCode:       extractErrorCode(message),
		FieldName:       extractField(message),
		OriginalMessage: message,
	}

	for _, key := range sortedRegexKeys() {
		if strings.Contains(message, key) {
			in.RegexPattern = key
			break
		}
	}
	for _, key := range sortedRuleKeys() {
		if strings.Contains(message, key) {
			in.BusinessRule = key
			break
		}
	}

	if details != nil {
		if in.FieldName == "" {
			in.FieldName = details["Field"]
		}
		if in.BusinessRule == "" {
			in.BusinessRule = details["Rule"]
		}
	}

	return Synthesize(in)
}

// FriendlyMessage renders a stored classified error for an operator: the
// code-level translation first, enriched with whatever the raw message and
// details yield.
func FriendlyMessage(errorCode, message string, details map[string]string) string {
	var codeMessage string
	if errorCode != "" {
		codeMessage = Synthesize(Input{ErrorCode: errorCode, OriginalMessage: message})
	}

	detailed := ParseErrorDetails(message, details)

	switch {
	case codeMessage != "" && detailed != "" && codeMessage != detailed:
		return codeMessage + ": " + detailed
	case detailed != "":
		return detailed
	case codeMessage != "":
		return codeMessage
	default:
		return genericErrorMessage
	}
}
