package recon

import (
	"fmt"

	"github.com/beevik/etree"
)

// Reconcile joins the source document's records against the authority's
// report and classifies each record as clean or erroneous. Pure with respect
// to its inputs; per-record mismatches are data, never errors. Decode and
// parse failures abort the whole batch with no partial output.
func Reconcile(sourceBytes, resultBytes []byte) (result *ReconciliationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("reconciliation failed: %v", r)
		}
	}()

	sourceDoc, err := Decode(sourceBytes)
	if err != nil {
		return nil, err
	}
	resultDoc, err := Decode(resultBytes)
	if err != nil {
		return nil, err
	}

	commands, containerFound := Extract(sourceDoc)

	result = &ReconciliationResult{}
	if len(commands) == 0 {
		message := "No command elements found in the source document"
		if !containerFound {
			message = "No command container found in the source document"
		}
		result.Errors = append(result.Errors, ClassifiedError{
			Record:    Record{Identifier: "N/A"},
			ErrorCode: CodeNoCommands,
			Message:   message,
			Severity:  SeverityForCode(CodeNoCommands),
			Status:    StatusPending,
		})
		return result, nil
	}
	result.TotalInputRecords = len(commands)

	var clean []*etree.Element
	for _, cmd := range commands {
		outcome := FindOutcome(resultDoc, cmd.Record.Identifier)
		switch {
		case outcome == nil:
			result.Errors = append(result.Errors, ClassifiedError{
				Record:    cmd.Record,
				ErrorCode: CodeNoResult,
				Message:   fmt.Sprintf("No result found for identifier %s", cmd.Record.Identifier),
				Severity:  SeverityForCode(CodeNoResult),
				Status:    StatusPending,
			})
		case outcome.Accepted():
			clean = append(clean, cmd.Element)
			result.CleanIdentifiers = append(result.CleanIdentifiers, cmd.Record.Identifier)
			result.CleanRecords = append(result.CleanRecords, cmd.Record)
		default:
			message := outcome.ErrorMessage
			if message == "" {
				message = fmt.Sprintf("ResultCode %s is not OK", outcome.StatusCode)
			}
			result.Errors = append(result.Errors, ClassifiedError{
				Record:    cmd.Record,
				ErrorCode: outcome.StatusCode,
				Message:   message,
				Severity:  SeverityForCode(outcome.StatusCode),
				Status:    StatusPending,
			})
		}
	}

	result.TotalCleanRecords = len(result.CleanIdentifiers)
	if len(clean) > 0 {
		result.CleanDocument = buildCleanDocument(sourceDoc.Root(), clean)
	}
	return result, nil
}

// buildCleanDocument re-roots copies of the accepted command elements under
// a fresh element carrying the source root's tag and attributes, preserving
// source order.
func buildCleanDocument(sourceRoot *etree.Element, commands []*etree.Element) []byte {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rootTag := sourceRoot.Tag
	if sourceRoot.Space != "" {
		rootTag = sourceRoot.Space + ":" + sourceRoot.Tag
	}
	root := doc.CreateElement(rootTag)
	for _, attr := range sourceRoot.Attr {
		key := attr.Key
		if attr.Space != "" {
			key = attr.Space + ":" + attr.Key
		}
		root.CreateAttr(key, attr.Value)
	}

	for _, cmd := range commands {
		root.AddChild(cmd.Copy())
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		// Serialization of an in-memory tree cannot fail under normal
		// conditions; let the run boundary surface it.
		panic(err)
	}
	return out
}
