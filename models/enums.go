package models

import "errors"

type ErrorSeverity string

const (
	ErrorSeverityCritical ErrorSeverity = "critical"
	ErrorSeverityHigh     ErrorSeverity = "high"
	ErrorSeverityMedium   ErrorSeverity = "medium"
	ErrorSeverityLow      ErrorSeverity = "low"
)

func ParseErrorSeverity(s string) (ErrorSeverity, error) {
	switch s {
	case "critical":
		return ErrorSeverityCritical, nil
	case "high":
		return ErrorSeverityHigh, nil
	case "medium":
		return ErrorSeverityMedium, nil
	case "low":
		return ErrorSeverityLow, nil
	default:
		return "", errors.New("invalid error severity")
	}
}

type ErrorStatus string

const (
	ErrorStatusPending    ErrorStatus = "pending"
	ErrorStatusInProgress ErrorStatus = "in_progress"
	ErrorStatusResolved   ErrorStatus = "resolved"
	ErrorStatusIgnored    ErrorStatus = "ignored"
)

func ParseErrorStatus(s string) (ErrorStatus, error) {
	switch s {
	case "pending":
		return ErrorStatusPending, nil
	case "in_progress":
		return ErrorStatusInProgress, nil
	case "resolved":
		return ErrorStatusResolved, nil
	case "ignored":
		return ErrorStatusIgnored, nil
	default:
		return "", errors.New("invalid error status")
	}
}
