package workflow

import (
	"testing"

	"bitbucket.org/mmdatafocus/botreport_backend/models"
	"bitbucket.org/mmdatafocus/botreport_backend/recon"
	"github.com/shopspring/decimal"
)

// NOTE: these tests exercise the pure mapping helpers without a database.

func TestBuildCleanEntries(t *testing.T) {
	result := &recon.ReconciliationResult{
		CleanRecords: []recon.Record{
			{
				Identifier:    "A1",
				Name:          "Kilimanjaro Traders Ltd",
				Code:          "CUST-1",
				AccountNumber: "ACC-001",
				Amount:        decimal.RequireFromString("1500000.50"),
			},
			{Identifier: "A2"},
		},
	}

	entries := buildCleanEntries("batch-1", result)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	first := entries[0]
	if first.BatchIdentifier != "batch-1" || first.Identifier != "A1" {
		t.Fatalf("unexpected entry: %+v", first)
	}
	if first.CustomerName != "Kilimanjaro Traders Ltd" || first.CustomerCode != "CUST-1" {
		t.Fatalf("customer fields not carried: %+v", first)
	}
	if first.Amount.String() != "1500000.5" {
		t.Fatalf("unexpected amount: %s", first.Amount)
	}
}

func TestBuildCustomerErrors(t *testing.T) {
	input := &BatchInput{SourceFileName: "batch.xml", UploadedBy: "operator1"}
	result := &recon.ReconciliationResult{
		Errors: []recon.ClassifiedError{
			{
				Record: recon.Record{
					Identifier:    "A2",
					Name:          "Mwanza Supplies",
					AccountNumber: "ACC-002",
					Amount:        decimal.RequireFromString("2000.25"),
				},
				ErrorCode: "E001-CUSTOMER",
				Message:   "Customer code is missing",
				Severity:  recon.SeverityHigh,
				Status:    recon.StatusPending,
			},
		},
	}

	records := buildCustomerErrors("batch-1", input, result)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	record := records[0]
	if record.BatchIdentifier != "batch-1" || record.XmlFileName != "batch.xml" {
		t.Fatalf("unexpected record: %+v", record)
	}
	if record.ErrorCode != "E001-CUSTOMER" || record.ErrorMessage != "Customer code is missing" {
		t.Fatalf("error fields not carried: %+v", record)
	}
	if record.Severity != models.ErrorSeverityHigh {
		t.Fatalf("unexpected severity: %q", record.Severity)
	}
	if record.Status != models.ErrorStatusPending {
		t.Fatalf("new records must start pending, got %q", record.Status)
	}
	if record.UploadedBy != "operator1" {
		t.Fatalf("uploader not carried: %q", record.UploadedBy)
	}
}

func TestSeverityForUnknownFallsBackToMedium(t *testing.T) {
	if got := severityFor("not-a-severity"); got != models.ErrorSeverityMedium {
		t.Fatalf("expected medium fallback, got %q", got)
	}
	if got := severityFor(recon.SeverityCritical); got != models.ErrorSeverityCritical {
		t.Fatalf("expected critical, got %q", got)
	}
}
