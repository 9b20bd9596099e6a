package rules

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
)

const validCommandDoc = `<?xml version="1.0" encoding="UTF-8"?>
<bc:Batch xmlns:bc="http://cb4.creditinfosolutions.com/BatchUploader/Batch">
  <bc:Commands>
    <bc:Command identifier="A1">
      <bc:Cis.CB4.Projects.TZ.BOT.Body.Products.StorInstalment>
        <bc:Instalment>
          <bc:InstalmentCount>12</bc:InstalmentCount>
          <bc:InstalmentType>InstalmentType.Fixed</bc:InstalmentType>
          <bc:OutstandingAmount>5000000.0000</bc:OutstandingAmount>
          <bc:OutstandingInstalmentCount>6</bc:OutstandingInstalmentCount>
          <bc:OverdueInstalmentCount>0.0000</bc:OverdueInstalmentCount>
          <bc:PeriodicityOfPayments>MonthlyInstalments30Days</bc:PeriodicityOfPayments>
          <bc:StandardInstalmentAmount>450000.00</bc:StandardInstalmentAmount>
          <bc:TypeOfInstalmentLoan>BusinessLoan</bc:TypeOfInstalmentLoan>
          <bc:CurrencyOfLoan>Currency.TZS</bc:CurrencyOfLoan>
          <bc:EconomicSector>Trade</bc:EconomicSector>
          <bc:NegativeStatusOfLoan>NoNegativeStatus</bc:NegativeStatusOfLoan>
          <bc:PastDueAmount>0</bc:PastDueAmount>
          <bc:PhaseOfLoan>Existing</bc:PhaseOfLoan>
          <bc:RescheduledLoan>False</bc:RescheduledLoan>
          <bc:TotalLoanAmount>5400000,00</bc:TotalLoanAmount>
          <bc:Collateral>
            <bc:CollateralType>RealEstate</bc:CollateralType>
            <bc:CollateralValue>10000000</bc:CollateralValue>
          </bc:Collateral>
          <bc:ContractDates>
            <bc:ExpectedEnd>2027-01-01</bc:ExpectedEnd>
            <bc:RealEnd>2027-01-01</bc:RealEnd>
            <bc:Start>2024-01-01T00:00:00</bc:Start>
          </bc:ContractDates>
          <bc:ConnectedSubject>
            <bc:Company>
              <bc:CustomerCode>CUST-1</bc:CustomerCode>
              <bc:CompanyData>
                <bc:EstablishmentDate>2010-05-05</bc:EstablishmentDate>
                <bc:LegalForm>LimitedLiabilityCompanyPrivate</bc:LegalForm>
                <bc:RegistrationNumber>123456</bc:RegistrationNumber>
                <bc:TradeName>Kilimanjaro Traders Ltd</bc:TradeName>
              </bc:CompanyData>
              <bc:AddressesCompany>
                <bc:Registration>
                  <bc:Country>TZ</bc:Country>
                  <bc:District>Moshi</bc:District>
                  <bc:Region>Kilimanjaro</bc:Region>
                </bc:Registration>
              </bc:AddressesCompany>
              <bc:ContactsCompany>
                <bc:CellularPhone>+255712345678</bc:CellularPhone>
              </bc:ContactsCompany>
            </bc:Company>
          </bc:ConnectedSubject>
        </bc:Instalment>
        <bc:StorHeader>
          <bc:Source>CBT</bc:Source>
          <bc:StoreTo>2026-01-31T00:00:00</bc:StoreTo>
          <bc:Identifier>A1</bc:Identifier>
        </bc:StorHeader>
      </bc:Cis.CB4.Projects.TZ.BOT.Body.Products.StorInstalment>
    </bc:Command>
  </bc:Commands>
</bc:Batch>`

func parseDoc(t *testing.T, xml string) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		t.Fatalf("fixture does not parse: %v", err)
	}
	return doc
}

func TestValidateDocumentValid(t *testing.T) {
	result := ValidateDocument(parseDoc(t, validCommandDoc))
	if !result.IsValid {
		t.Fatalf("expected a valid document, got violations: %+v", result.Violations)
	}
	if result.ErrorCount != 0 {
		t.Fatalf("expected zero errors, got %d", result.ErrorCount)
	}
	if result.Message != "File is valid and ready for upload" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
	if result.MissingSectorCount != 0 || result.MissingPhoneCount != 0 {
		t.Fatalf("unexpected presence counters: %+v", result)
	}
}

func TestValidateDocumentIsIdempotent(t *testing.T) {
	doc := parseDoc(t, validCommandDoc)
	first := ValidateDocument(doc)
	second := ValidateDocument(doc)
	if first.ErrorCount != second.ErrorCount || first.IsValid != second.IsValid {
		t.Fatalf("repeated validation disagrees: %+v vs %+v", first, second)
	}
}

func TestValidateDocumentMissingPayload(t *testing.T) {
	doc := parseDoc(t, `<bc:Batch xmlns:bc="http://cb4.creditinfosolutions.com/BatchUploader/Batch">
		<bc:Commands><bc:Command identifier="A9"><bc:Other/></bc:Command></bc:Commands>
	</bc:Batch>`)

	result := ValidateDocument(doc)
	if result.IsValid {
		t.Fatal("expected an invalid document")
	}
	if len(result.Violations) != 1 {
		t.Fatalf("expected exactly one violation, got %d", len(result.Violations))
	}
	v := result.Violations[0]
	if v.SectionPath != StorInstalmentTag || v.Identifier != "A9" || v.Reason != ReasonMissing {
		t.Fatalf("unexpected violation: %+v", v)
	}
	if !strings.Contains(result.Message, "1 validation error") {
		t.Fatalf("unexpected message: %q", result.Message)
	}
}

func mutateField(t *testing.T, doc *etree.Document, tag, value string) {
	t.Helper()
	for _, el := range doc.Root().FindElements("//" + tag) {
		el.SetText(value)
		return
	}
	t.Fatalf("fixture has no element %q", tag)
}

func findViolation(violations []Violation, field string) *Violation {
	for i := range violations {
		if violations[i].FieldName == field {
			return &violations[i]
		}
	}
	return nil
}

func TestValidateDocumentWrongLiteralSource(t *testing.T) {
	doc := parseDoc(t, validCommandDoc)
	mutateField(t, doc, "Source", "NMB")

	result := ValidateDocument(doc)
	v := findViolation(result.Violations, "Source")
	if v == nil || v.Reason != ReasonInvalidValue {
		t.Fatalf("expected invalid_value on Source, got %+v", result.Violations)
	}
	if v.SectionPath != "StorHeader" {
		t.Fatalf("unexpected section path: %q", v.SectionPath)
	}
}

func TestValidateDocumentUnknownLookupMember(t *testing.T) {
	doc := parseDoc(t, validCommandDoc)
	mutateField(t, doc, "CurrencyOfLoan", "Currency.XXX")

	result := ValidateDocument(doc)
	v := findViolation(result.Violations, "CurrencyOfLoan")
	if v == nil || v.Reason != ReasonInvalidValue {
		t.Fatalf("expected invalid_value on CurrencyOfLoan, got %+v", result.Violations)
	}
}

func TestValidateDocumentBadPhoneFormat(t *testing.T) {
	doc := parseDoc(t, validCommandDoc)
	mutateField(t, doc, "CellularPhone", "12345")

	result := ValidateDocument(doc)
	v := findViolation(result.Violations, "CellularPhone")
	if v == nil || v.Reason != ReasonInvalidFormat {
		t.Fatalf("expected invalid_format on CellularPhone, got %+v", result.Violations)
	}
	if v.SectionPath != "ConnectedSubject/Company/ContactsCompany" {
		t.Fatalf("unexpected section path: %q", v.SectionPath)
	}
}

func TestValidateDocumentBadNumberAndDate(t *testing.T) {
	doc := parseDoc(t, validCommandDoc)
	mutateField(t, doc, "InstalmentCount", "twelve")
	mutateField(t, doc, "Start", "01/01/2024")

	result := ValidateDocument(doc)
	if v := findViolation(result.Violations, "InstalmentCount"); v == nil || v.Reason != ReasonInvalidFormat {
		t.Fatalf("expected invalid_format on InstalmentCount, got %+v", result.Violations)
	}
	if v := findViolation(result.Violations, "Start"); v == nil || v.Reason != ReasonInvalidFormat {
		t.Fatalf("expected invalid_format on Start, got %+v", result.Violations)
	}
}

func TestValidateDocumentEmptyFieldIsMissing(t *testing.T) {
	doc := parseDoc(t, validCommandDoc)
	mutateField(t, doc, "TradeName", "   ")

	result := ValidateDocument(doc)
	v := findViolation(result.Violations, "TradeName")
	if v == nil || v.Reason != ReasonMissing {
		t.Fatalf("expected missing on blank TradeName, got %+v", result.Violations)
	}
}

func TestValidateDocumentAbsentSectionSingleViolation(t *testing.T) {
	doc := parseDoc(t, validCommandDoc)
	for _, el := range doc.Root().FindElements("//ContractDates") {
		el.Parent().RemoveChild(el)
	}

	result := ValidateDocument(doc)
	if len(result.Violations) != 1 {
		t.Fatalf("an absent section must yield one violation, got %d: %+v",
			len(result.Violations), result.Violations)
	}
	v := result.Violations[0]
	if v.SectionPath != "ContractDates" || v.FieldName != "" || v.Reason != ReasonMissing {
		t.Fatalf("unexpected violation: %+v", v)
	}
}

func TestValidateDocumentPresenceCounters(t *testing.T) {
	doc := parseDoc(t, validCommandDoc)
	mutateField(t, doc, "EconomicSector", "")
	mutateField(t, doc, "CellularPhone", "")

	result := ValidateDocument(doc)
	if result.MissingSectorCount != 1 {
		t.Fatalf("expected MissingSectorCount 1, got %d", result.MissingSectorCount)
	}
	if result.MissingPhoneCount != 1 {
		t.Fatalf("expected MissingPhoneCount 1, got %d", result.MissingPhoneCount)
	}
}

func TestCheckFieldType(t *testing.T) {
	cases := []struct {
		fieldType FieldType
		value     string
		want      string
	}{
		{FieldInt, "42", ""},
		{FieldInt, "42.0000", ""},
		{FieldInt, "42.5", ReasonInvalidFormat},
		{FieldDecimal, "1234,56", ""},
		{FieldDecimal, "abc", ReasonInvalidFormat},
		{FieldDateTime, "2024-01-01", ""},
		{FieldDateTime, "2024-01-01T10:30:00", ""},
		{FieldDateTime, "Jan 1 2024", ReasonInvalidFormat},
		{FieldString, "anything", ""},
	}
	for _, tc := range cases {
		if got := checkFieldType(tc.fieldType, tc.value); got != tc.want {
			t.Fatalf("checkFieldType(%s, %q) = %q, want %q", tc.fieldType, tc.value, got, tc.want)
		}
	}
}

func TestLookupContains(t *testing.T) {
	if !LookupContains("Currency", "TZS") {
		t.Fatal("bare member must match")
	}
	if !LookupContains("Currency", "Currency.TZS") {
		t.Fatal("table-prefixed member must match")
	}
	if LookupContains("Currency", "XXX") {
		t.Fatal("unknown member must not match")
	}
	if LookupContains("NoSuchTable", "TZS") {
		t.Fatal("unknown table must not match")
	}
}
