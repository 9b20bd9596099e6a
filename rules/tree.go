package rules

// FieldType drives the format check applied to a field's text.
type FieldType string

const (
	FieldString   FieldType = "string"
	FieldInt      FieldType = "int"
	FieldDecimal  FieldType = "decimal"
	FieldDateTime FieldType = "datetime"
	FieldLookup   FieldType = "lookup"
)

// FieldRule is the declarative check for one required field. At most one of
// Value, Lookup and Pattern is set.
type FieldRule struct {
	Type    FieldType
	Value   string // expected literal
	Lookup  string // lookup table name in Registry
	Pattern string // pattern name in Patterns
}

// RuleNode is one node of the declarative schema: required fields at this
// level plus nested sections walked recursively.
type RuleNode struct {
	RequiredFields map[string]FieldRule
	NestedSections map[string]*RuleNode
}

// StorInstalmentTag is the payload element each command must carry.
const StorInstalmentTag = "Cis.CB4.Projects.TZ.BOT.Body.Products.StorInstalment"

// CommandRuleTree returns the schema for one instalment-store command.
// The tree is built once at startup and treated as immutable.
func CommandRuleTree() *RuleNode {
	return &RuleNode{
		NestedSections: map[string]*RuleNode{
			"Instalment": {
				RequiredFields: map[string]FieldRule{
					"InstalmentCount":            {Type: FieldInt},
					"InstalmentType":             {Type: FieldLookup, Lookup: "InstalmentType"},
					"OutstandingAmount":          {Type: FieldDecimal},
					"OutstandingInstalmentCount": {Type: FieldInt},
					"OverdueInstalmentCount":     {Type: FieldInt},
					"PeriodicityOfPayments":      {Type: FieldLookup, Lookup: "PeriodicityOfPayments"},
					"StandardInstalmentAmount":   {Type: FieldDecimal},
					"TypeOfInstalmentLoan":       {Type: FieldLookup, Lookup: "TypeOfInstalmentLoan"},
					"CurrencyOfLoan":             {Type: FieldLookup, Lookup: "Currency"},
					"EconomicSector":             {Type: FieldLookup, Lookup: "EconomicSector"},
					"NegativeStatusOfLoan":       {Type: FieldLookup, Lookup: "NegativeStatusOfLoan"},
					"PastDueAmount":              {Type: FieldDecimal},
					"PhaseOfLoan":                {Type: FieldLookup, Lookup: "PhaseOfLoan"},
					"RescheduledLoan":            {Type: FieldLookup, Lookup: "Bool"},
					"TotalLoanAmount":            {Type: FieldDecimal},
				},
				NestedSections: map[string]*RuleNode{
					"Collateral": {
						RequiredFields: map[string]FieldRule{
							"CollateralType":  {Type: FieldLookup, Lookup: "CollateralType"},
							"CollateralValue": {Type: FieldDecimal},
						},
					},
					"ContractDates": {
						RequiredFields: map[string]FieldRule{
							"ExpectedEnd": {Type: FieldDateTime},
							"RealEnd":     {Type: FieldDateTime},
							"Start":       {Type: FieldDateTime},
						},
					},
					"ConnectedSubject": {
						NestedSections: map[string]*RuleNode{
							"Company": {
								RequiredFields: map[string]FieldRule{
									"CustomerCode": {Type: FieldString},
								},
								NestedSections: map[string]*RuleNode{
									"CompanyData": {
										RequiredFields: map[string]FieldRule{
											"EstablishmentDate":  {Type: FieldDateTime},
											"LegalForm":          {Type: FieldLookup, Lookup: "LegalForm"},
											"RegistrationNumber": {Type: FieldString},
											"TradeName":          {Type: FieldString},
										},
									},
									"AddressesCompany": {
										NestedSections: map[string]*RuleNode{
											"Registration": {
												RequiredFields: map[string]FieldRule{
													"Country":  {Type: FieldLookup, Lookup: "CountryCode"},
													"District": {Type: FieldLookup, Lookup: "District"},
													"Region":   {Type: FieldLookup, Lookup: "Region"},
												},
											},
										},
									},
									"ContactsCompany": {
										RequiredFields: map[string]FieldRule{
											"CellularPhone": {Type: FieldString, Pattern: "cellular_phone"},
										},
									},
								},
							},
						},
					},
				},
			},
			"StorHeader": {
				RequiredFields: map[string]FieldRule{
					"Source":     {Type: FieldString, Value: "CBT"},
					"StoreTo":    {Type: FieldDateTime},
					"Identifier": {Type: FieldString},
				},
			},
		},
	}
}
