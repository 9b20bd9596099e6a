package recon

import "github.com/shopspring/decimal"

// Record is one submitted entity extracted from a source document. Records
// are built once per run and never mutated.
type Record struct {
	Identifier    string
	Name          string
	Code          string
	AccountNumber string
	Amount        decimal.Decimal
	NationalId    string
	Phone         string
}

// Outcome is the authority's verdict for one identifier.
type Outcome struct {
	Identifier   string
	StatusCode   string
	ErrorMessage string
}

// ClassifiedError is one rejected or unmatched record.
type ClassifiedError struct {
	Record
	ErrorCode string
	Message   string
	Severity  string
	Status    string
}

// ReconciliationResult is the output of one run over a batch pair.
// CleanDocument is nil iff TotalCleanRecords is zero.
type ReconciliationResult struct {
	TotalInputRecords int
	TotalCleanRecords int
	CleanIdentifiers  []string
	CleanRecords      []Record
	CleanDocument     []byte
	Errors            []ClassifiedError
}

const (
	CodeNoResult   = "NO_RESULT"
	CodeNoCommands = "NO_COMMANDS"

	StatusUnknown = "UNKNOWN"

	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"

	StatusPending = "pending"
)

// The authority's code prefixes: E rejections, W warnings, C fatal batch
// conditions. Codes without a known prefix land on medium.
var severityByPrefix = map[byte]string{
	'E': SeverityHigh,
	'W': SeverityLow,
	'C': SeverityCritical,
}

// Sentinels emitted by the engine itself always rank high.
var severityOverrides = map[string]string{
	CodeNoResult:   SeverityHigh,
	CodeNoCommands: SeverityHigh,
}

func SeverityForCode(code string) string {
	if s, ok := severityOverrides[code]; ok {
		return s
	}
	if len(code) > 0 {
		if s, ok := severityByPrefix[code[0]]; ok {
			return s
		}
	}
	return SeverityMedium
}
