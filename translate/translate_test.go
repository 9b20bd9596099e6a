package translate

import (
	"strings"
	"testing"
)

func TestSynthesizeExactCode(t *testing.T) {
	got := Synthesize(Input{ErrorCode: "E001"})
	if got != "Customer code is missing or invalid" {
		t.Fatalf("unexpected translation: %q", got)
	}
}

func TestSynthesizeCodePrefixFallback(t *testing.T) {
	got := Synthesize(Input{ErrorCode: "E-1234"})
	if got != "Critical Error" {
		t.Fatalf("expected prefix translation, got %q", got)
	}
	got = Synthesize(Input{ErrorCode: "W-0042"})
	if got != "Warning" {
		t.Fatalf("expected prefix translation, got %q", got)
	}
}

func TestSynthesizeFieldName(t *testing.T) {
	got := Synthesize(Input{FieldName: "CellularPhone"})
	if got != "Issue with: Mobile Phone Number" {
		t.Fatalf("unexpected translation: %q", got)
	}
	// Unknown fields pass through verbatim.
	got = Synthesize(Input{FieldName: "SomeNewField"})
	if got != "Issue with: SomeNewField" {
		t.Fatalf("unexpected translation: %q", got)
	}
}

func TestSynthesizeSpecificPatternWinsFirst(t *testing.T) {
	msg := "cvc-datatype-valid.1.2.1: 'x' is not a valid value for 'dateTime'"
	got := Synthesize(Input{OriginalMessage: msg})
	if !strings.HasPrefix(got, "The date format is invalid") {
		t.Fatalf("expected the first matching pattern to win, got %q", got)
	}
}

func TestSynthesizeBusinessRuleExactAndSubstring(t *testing.T) {
	got := Synthesize(Input{BusinessRule: "Amount can not be negative"})
	if got != "The amount value cannot be negative" {
		t.Fatalf("unexpected translation: %q", got)
	}
	// Substring match: the rule text embeds a known rule.
	got = Synthesize(Input{BusinessRule: "Check failed: Amount can not be negative (field PastDueAmount)"})
	if got != "The amount value cannot be negative" {
		t.Fatalf("expected substring rule match, got %q", got)
	}
}

func TestSynthesizeJoinsFragments(t *testing.T) {
	got := Synthesize(Input{
		ErrorCode: "E002",
		FieldName: "TradeName",
	})
	want := "Issue with: Business Name - Required personal information is missing"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSynthesizeFallbackStripsTechnicalPrefixes(t *testing.T) {
	got := Synthesize(Input{OriginalMessage: "cvc-enumeration-valid: something odd happened"})
	if got != "Validation error: something odd happened" {
		t.Fatalf("unexpected fallback: %q", got)
	}
}

func TestSynthesizeGenericFallback(t *testing.T) {
	if got := Synthesize(Input{}); got != genericErrorMessage {
		t.Fatalf("unexpected fallback: %q", got)
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	in := Input{ErrorCode: "E003", FieldName: "NumberOfPassport", BusinessRule: "Mandatory"}
	first := Synthesize(in)
	for i := 0; i < 20; i++ {
		if got := Synthesize(in); got != first {
			t.Fatalf("synthesis not deterministic: %q vs %q", got, first)
		}
	}
}

func TestParseErrorDetailsExtractsCode(t *testing.T) {
	got := ParseErrorDetails("Record rejected with code E004 by the gateway", nil)
	if !strings.Contains(got, "Invalid contact information") {
		t.Fatalf("expected E004 translation, got %q", got)
	}
}

func TestParseErrorDetailsQuotedField(t *testing.T) {
	got := ParseErrorDetails("Value of 'CellularPhone' is invalid", nil)
	if !strings.Contains(got, "Issue with: Mobile Phone Number") {
		t.Fatalf("expected field translation, got %q", got)
	}
}

func TestParseErrorDetailsUsesStoredDetails(t *testing.T) {
	got := ParseErrorDetails("opaque failure", map[string]string{"Field": "TaxIdentificationNumber"})
	if !strings.Contains(got, "Issue with: Tax ID Number") {
		t.Fatalf("expected detail-sourced field, got %q", got)
	}
}

func TestParseErrorDetailsEmptyMessage(t *testing.T) {
	if got := ParseErrorDetails("", nil); got != genericErrorMessage {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestFriendlyMessageCombinesCodeAndDetail(t *testing.T) {
	got := FriendlyMessage("NO_RESULT", "No result found for identifier A3", nil)
	if !strings.Contains(got, "The authority's report contains no verdict for this record") {
		t.Fatalf("expected code translation, got %q", got)
	}
	if !strings.Contains(got, "No result found for identifier A3") {
		t.Fatalf("expected the raw detail carried, got %q", got)
	}
}

func TestFriendlyMessageUnknownEverything(t *testing.T) {
	got := FriendlyMessage("", "", nil)
	if got != genericErrorMessage {
		t.Fatalf("unexpected: %q", got)
	}
}
