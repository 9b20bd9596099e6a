package rules

import "strings"

// LookupTable is one code table from the authority's attribute documentation.
// Keys are member names, values their descriptions.
type LookupTable map[string]string

// Registry holds every lookup table referenced by the rule tree. Loaded once,
// read-only afterwards.
var Registry = map[string]LookupTable{
	"InstalmentType": {
		"Fixed":    "Fixed instalments",
		"Variable": "Variable instalments",
	},
	"PeriodicityOfPayments": {
		"AtTheFinalDayOfThePeriodOfContract": "Single payment at contract end",
		"FortnightlyInstalments15Days":       "Every 15 days",
		"MonthlyInstalments30Days":           "Every 30 days",
		"BimonthlyInstalments60Days":         "Every 60 days",
		"QuarterlyInstalments90Days":         "Every 90 days",
		"FourMonthInstalments120Days":        "Every 120 days",
		"FiveMonthInstalments150Days":        "Every 150 days",
		"SixMonthInstalments180Days":         "Every 180 days",
		"AnnualInstalments360Days":           "Every 360 days",
		"IrregularInstalments":               "Irregular schedule",
	},
	"TypeOfInstalmentLoan": {
		"ConsumerLoan":         "Consumer loan",
		"BusinessLoan":         "Business loan",
		"MortgageLoan":         "Mortgage loan",
		"LeasingFinancial":     "Financial leasing",
		"LeasingOperational":   "Operational leasing",
		"OtherInstalmentOpera": "Other instalment operation",
	},
	"NegativeStatusOfLoan": {
		"NoNegativeStatus":                           "No negative status",
		"UnauthorizedDebitBalanceOnCurrentAccount":   "Unauthorized debit balance",
		"Blocked":                                    "Blocked",
		"CancelledDueToDelayedPayments":              "Cancelled due to delayed payments",
		"InsuranceFraud":                             "Insurance fraud",
		"FraudTowardsBank":                           "Fraud towards bank",
		"CreditReassignedToNewDebtor":                "Credit reassigned to new debtor",
		"AssignmentOfCreditToThirdParty":             "Credit assigned to third party",
		"LoanWrittenOff":                             "Loan written off",
		"IncreasedRisk":                              "Increased risk",
		"LoanTransferredToLosses":                    "Loan transferred to losses",
	},
	"PhaseOfLoan": {
		"Existing":                        "Existing",
		"TerminatedAccordingTheContract":  "Terminated according to contract",
		"TerminatedInAdvanceCorrectly":    "Terminated in advance correctly",
		"TerminatedInAdvanceIncorrectly":  "Terminated in advance incorrectly",
	},
	"CollateralType": {
		"Stocks":               "Stocks",
		"Deposit":              "Deposit",
		"SalaryDeposit":        "Salary deposit",
		"RealEstate":           "Real estate",
		"TerminalBenefits":     "Terminal benefits",
		"Equipment":            "Equipment",
		"GovernmentSecurities": "Government securities",
		"Gold":                 "Gold",
		"StateGuarantee":       "State guarantee",
		"Other":                "Other",
		"MotorVehicle":         "Motor vehicle",
	},
	"RoleOfClient": {
		"MainDebtor": "Main debtor",
		"CoDebtor":   "Co-debtor",
		"Guarantor":  "Guarantor",
	},
	"LegalForm": {
		"JointLiabilityCompany":         "Joint liability company",
		"SpecialPartnershipCompany":     "Special partnership company",
		"LimitedLiabilityCompanyPublic": "Public limited liability company",
		"LimitedLiabilityCompanyPrivate": "Private limited liability company",
		"JointStockCompany":             "Joint stock company",
		"Cooperative":                   "Cooperative",
		"Foundations":                   "Foundation",
		"Association":                   "Association",
		"Other":                         "Other",
		"Audit":                         "Audit",
		"Notary":                        "Notary",
		"Copartnership":                 "Copartnership",
		"NonregisteredAssociation":      "Nonregistered association",
		"ReligiousOrganization":         "Religious organization",
		"GovernmentalInstitution":       "Governmental institution",
		"PoliticPartyOrUnion":           "Political party or union",
		"Branch":                        "Branch",
		"LegalPersonUnderPublicLaw":     "Legal person under public law",
		"PublicInstitution":             "Public institution",
	},
	"Bool": {
		"True":  "True",
		"False": "False",
	},
	"EconomicSector": {
		"Agriculture":   "Agriculture, forestry and fishing",
		"Manufacturing": "Manufacturing",
		"Construction":  "Construction",
		"Trade":         "Wholesale and retail trade",
		"Transport":     "Transport and storage",
		"Finance":       "Financial and insurance activities",
		"RealEstate":    "Real estate activities",
		"Education":     "Education",
		"Health":        "Human health and social work",
		"OtherServices": "Other service activities",
	},
	"Currency": {
		"AED": "United Arab Emirates dirham",
		"AUD": "Australian dollar",
		"BIF": "Burundian franc",
		"CAD": "Canadian dollar",
		"CHF": "Swiss franc",
		"CNY": "Chinese Yuan",
		"DKK": "Danish krone",
		"EUR": "Euro",
		"GBP": "Pound sterling",
		"INR": "Indian rupee",
		"JPY": "Japanese yen",
		"KES": "Kenyan shilling",
		"MWK": "Malawian kwacha",
		"MZN": "Mozambican metical",
		"NOK": "Norwegian krone",
		"RWF": "Rwandan franc",
		"SAR": "Saudi riyal",
		"SEK": "Swedish krona",
		"SSP": "South Sudanese pound",
		"TZS": "Tanzanian shilling",
		"UGX": "Ugandan shilling",
		"USD": "United States dollar",
		"ZAR": "South African rand",
		"ZMK": "Zambian kwacha",
	},
	"CountryCode": {
		"TZ": "Tanzania",
		"KE": "Kenya",
		"UG": "Uganda",
		"RW": "Rwanda",
		"BI": "Burundi",
		"MW": "Malawi",
		"MZ": "Mozambique",
		"ZM": "Zambia",
		"CD": "Democratic Republic of the Congo",
		"SS": "South Sudan",
		"ZA": "South Africa",
		"IN": "India",
		"CN": "China",
		"GB": "United Kingdom",
		"US": "United States",
	},
	"District": {
		"Arusha":     "Arusha",
		"Arumeru":    "Arumeru",
		"Dodoma":     "Dodoma",
		"Ilala":      "Ilala",
		"Kinondoni":  "Kinondoni",
		"Kigoma":     "Kigoma",
		"Lindi":      "Lindi",
		"Mbeya":      "Mbeya",
		"Morogoro":   "Morogoro",
		"Moshi":      "Moshi",
		"Mtwara":     "Mtwara",
		"Musoma":     "Musoma",
		"Mwanga":     "Mwanga",
		"Nyamagana":  "Nyamagana",
		"Shinyanga":  "Shinyanga",
		"Singida":    "Singida",
		"Songea":     "Songea",
		"Sumbawanga": "Sumbawanga",
		"Tabora":     "Tabora",
		"Tanga":      "Tanga",
		"Temeke":     "Temeke",
	},
	"Region": {
		"Arusha":        "Arusha",
		"DarEsSalaam":   "Dar es Salaam",
		"Dodoma":        "Dodoma",
		"Geita":         "Geita",
		"Iringa":        "Iringa",
		"Kagera":        "Kagera",
		"Katavi":        "Katavi",
		"Kigoma":        "Kigoma",
		"Kilimanjaro":   "Kilimanjaro",
		"Lindi":         "Lindi",
		"Manyara":       "Manyara",
		"Mara":          "Mara",
		"Mbeya":         "Mbeya",
		"Morogoro":      "Morogoro",
		"Mtwara":        "Mtwara",
		"Mwanza":        "Mwanza",
		"Njombe":        "Njombe",
		"Pwani":         "Pwani",
		"Rukwa":         "Rukwa",
		"Ruvuma":        "Ruvuma",
		"Shinyanga":     "Shinyanga",
		"Simiyu":        "Simiyu",
		"Singida":       "Singida",
		"Songwe":        "Songwe",
		"Tabora":        "Tabora",
		"Tanga":         "Tanga",
		"ZanzibarNorth": "Zanzibar North",
		"ZanzibarSouth": "Zanzibar South",
		"ZanzibarWest":  "Zanzibar West",
	},
}

// LookupContains reports whether value is a member of the named table. Values
// arrive either bare ("TZS") or prefixed with the table name ("Currency.TZS"),
// the way the authority serializes lookup references.
func LookupContains(table, value string) bool {
	members, ok := Registry[table]
	if !ok {
		return false
	}
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, table+".")
	_, found := members[value]
	return found
}
