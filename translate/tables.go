package translate

// Static translation tables mapping technical codes, patterns and rules to
// operator-facing language. Loaded once, read-only afterwards.

var errorCodeTranslations = map[string]string{
	"UNKNOWN": "An unknown error has occurred with this record.",

	// Code prefixes
	"E": "Critical Error",
	"W": "Warning",
	"C": "Critical Error",

	// Specific codes
	"E001": "Customer code is missing or invalid",
	"E002": "Required personal information is missing",
	"E003": "Invalid identification document",
	"E004": "Invalid contact information",
	"E005": "Invalid address information",
	"W001": "Missing optional field that is recommended",
	"W002": "Date format is incorrect",
	"C001": "Critical validation error in primary data field",

	// Schema validator codes
	"cvc-datatype-valid":    "The data format is invalid",
	"cvc-enumeration-valid": "The selected region is not valid",
	"cvc-pattern-valid":     "The identification format is invalid",

	"NO_RESULT":   "The authority's report contains no verdict for this record",
	"NO_COMMANDS": "The uploaded file contains no records",
}

var regexTranslations = map[string]string{
	`[0-9]{8}(-[0-9]{5}){2}-[0-9]{2}`:     "National ID must be in format: YYYYMMDD-XXXXX-XXXXX-XC, where YYYYMMDD is birth date, XXXXX are postal and serial codes, and XC is gender code and checksum",
	`[0-9]{3}(-[0-9]{3}){2}`:              "Tax ID number must be in format: XXX-XXX-XXX",
	`((\+255[0-9]{9})|(0[0-9]{9})){1}`:    "Phone number must be in international format (+255XXXXXXXXX) or local format (0XXXXXXXXX)",
	`((\+255[0-9]{9})|([0-9]{7,9})){1}`:   "Phone number must be in international format (+255XXXXXXXXX) or local format with 7-9 digits",
	`[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,6}`: "Email address must be in a valid format (example@domain.com)",
	`[a-zA-Z]{2}[0-9]{6}`:                 "Passport number must be 2 letters followed by 6 digits",
	`[0-9]{10}`:                           "Driving license (Mainland) must be 10 digits",
	`[Z]{1}[0-9]{9}`:                      "Driving license (Zanzibar) must start with Z followed by 9 digits",
	`[0-9]{8}`:                            "Voter registration number (Mainland) must be 8 digits",
	`[0-9]{9}`:                            "Voter registration number (Zanzibar) or Zanzibar ID must be 9 digits",
	`[M]{1}[S]{1}[P]{1}[0-9]{5}`:          "License number must start with MSP followed by 5 digits",
	`[0-9]{1,6}`:                          "Registration number must be 1-6 digits",
	`[Z]{1}[0-9]{10}`:                     "Zanzibar registration number must start with Z followed by 10 digits",
	`[0-9]{5}`:                            "Postal code must be 5 digits",
	`[0-9]{1}[1-9][0-9]{10}`:              "Citizen ID must be in the correct format",
}

var fieldTranslations = map[string]string{
	"CustomerCode":              "Customer Code",
	"FirstName":                 "First Name",
	"MiddleNames":               "Middle Names",
	"LastName":                  "Last Name",
	"BirthSurname":              "Birth Surname",
	"Gender":                    "Gender",
	"MaritalStatus":             "Marital Status",
	"Nationality":               "Nationality",
	"NumberOfNationalId":        "National ID Number",
	"NumberOfPassport":          "Passport Number",
	"NumberOfDrivingLicense":    "Driving License Number",
	"NumberOfVoterRegistration": "Voter Registration Number",
	"NumberOfZanzibarId":        "Zanzibar ID Number",
	"TaxIdentificationNumber":   "Tax ID Number",
	"RegistrationNumber":        "Registration Number",
	"CellularPhone":             "Mobile Phone Number",
	"FixedLine":                 "Landline Number",
	"Email":                     "Email Address",
	"TradeName":                 "Business Name",
	"BirthDate":                 "Date of Birth",
	"EstablishmentDate":         "Company Establishment Date",
	"DateOfIssuance":            "Document Issue Date",
	"DateOfExpiration":          "Document Expiry Date",
	"dateTime":                  "Date and Time",
	"CITIZEN ID":                "Citizen ID",
}

var businessRuleTranslations = map[string]string{
	"Mandatory": "This field is required and cannot be empty",
	"Individual must be between 18 and 99 years old":            "The person must be between 18 and 99 years old",
	"Amount can not be negative":                                "The amount value cannot be negative",
	"Issuance date must not be greater than reporting date":     "The document issue date cannot be in the future",
	"Expiration date must not be less than issuance date":       "The expiry date must be after the issue date",
	"Expiration date must not be less than reporting date":      "The document cannot be already expired",
	"At least one identification document must be filled in":    "At least one ID document (National ID, Passport, etc.) must be provided",
	"Establishment date must be less than reporting date":       "The establishment date cannot be in the future",
	"At least one type of contact information is mandatory":     "At least one contact method (phone, email, etc.) must be provided",
	"The first eight numerical numbers represent the year, month and day the person was born": "The first 8 digits of the National ID should match the person's date of birth (YYYYMMDD)",
	"Mandatory for all females": "This field is required for female customers",
}

// Ordered, since the first matching pattern wins.
var specificErrorTranslations = []struct {
	pattern     string
	translation string
}{
	{"cvc-datatype-valid.1.2.1", "The date format is invalid"},
	{"is not a valid value for 'dateTime'", "Please enter a valid date and time format"},
	{"Value 'Region.ARUSHA' is not facet-valid", "The selected region is not in the list of valid regions"},
	{"Value 'CITIZEN ID' is not facet-valid", "The Citizen ID format is incorrect"},
	{`[0-9]{1}[1-9][0-9]{10}`, "Citizen ID must be a number starting with a digit followed by a non-zero digit and 10 more digits"},
}

var technicalPrefixes = []string{
	"cvc-datatype-valid.1.2.1: ",
	"cvc-enumeration-valid: ",
	"cvc-pattern-valid: ",
}

const genericErrorMessage = "Validation error occurred. Please check the data and try again."
