package rules

import "regexp"

// Named identifier and contact formats from the authority's documentation.
// Patterns are anchored so partial matches never pass.
var Patterns = map[string]*regexp.Regexp{
	"national_id":              regexp.MustCompile(`^[0-9]{8}(-[0-9]{5}){2}-[0-9]{2}$`),
	"tax_id":                   regexp.MustCompile(`^[0-9]{3}(-[0-9]{3}){2}$`),
	"cellular_phone":           regexp.MustCompile(`^((\+255[0-9]{9})|(0[0-9]{9}))$`),
	"fixed_line":               regexp.MustCompile(`^((\+255[0-9]{9})|([0-9]{7,9}))$`),
	"email":                    regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`),
	"passport":                 regexp.MustCompile(`^[a-zA-Z]{2}[0-9]{6}$`),
	"driving_license_mainland": regexp.MustCompile(`^[0-9]{10}$`),
	"driving_license_zanzibar": regexp.MustCompile(`^Z[0-9]{9}$`),
	"voter_id_mainland":        regexp.MustCompile(`^[0-9]{8}$`),
	"voter_id_zanzibar":        regexp.MustCompile(`^[0-9]{9}$`),
	"bot_license":              regexp.MustCompile(`^MSP[0-9]{5}$`),
	"postal_code":              regexp.MustCompile(`^[0-9]{5}$`),
	"brela_mainland":           regexp.MustCompile(`^[0-9]{1,6}$`),
	"brela_zanzibar":           regexp.MustCompile(`^Z[0-9]{10}$`),
}
