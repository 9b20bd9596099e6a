package recon

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
)

// BatchNamespace is the namespace of submitted batch documents.
const BatchNamespace = "http://cb4.creditinfosolutions.com/BatchUploader/Batch"

// Tag spellings seen across historical producers, tried in priority order.
// The first variant yielding at least one element wins.
var commandTagVariants = []string{"Command", "command", "COMMAND", "Request", "Transaction"}

// SourceCommand pairs an extracted record with the element it came from, so
// the engine can copy accepted elements into the clean document verbatim.
type SourceCommand struct {
	Record  Record
	Element *etree.Element
}

// Field sub-paths relative to their anchor element. Missing paths default to
// an empty value, never an error.
var recordFieldPaths = []struct {
	anchor string
	path   []string
	assign func(r *Record, value string)
}{
	{"Company", []string{"CompanyData", "TradeName"}, func(r *Record, v string) { r.Name = v }},
	{"Company", []string{"CustomerCode"}, func(r *Record, v string) { r.Code = v }},
	{"Company", []string{"ContactsCompany", "CellularPhone"}, func(r *Record, v string) { r.Phone = v }},
	{"Company", []string{"CompanyData", "RegistrationNumber"}, func(r *Record, v string) { r.NationalId = v }},
	{"Instalment", []string{"AccountNumber"}, func(r *Record, v string) { r.AccountNumber = v }},
	{"Instalment", []string{"TotalLoanAmount"}, func(r *Record, v string) { r.Amount = parseAmount(v) }},
}

func parseAmount(value string) decimal.Decimal {
	value = strings.TrimSpace(strings.ReplaceAll(value, ",", "."))
	if value == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// Extract locates the command container and pulls one Record per command
// element. The second return is false when no container element exists.
func Extract(doc *etree.Document) ([]SourceCommand, bool) {
	root := doc.Root()
	if root == nil {
		return nil, false
	}

	container := findDescendant(root, "Commands", BatchNamespace)
	if container == nil {
		return nil, false
	}

	var elements []*etree.Element
	for _, variant := range commandTagVariants {
		elements = collectChildren(container, variant, BatchNamespace)
		if len(elements) > 0 {
			break
		}
	}
	if len(elements) == 0 {
		// Last resort: any direct child in the expected namespace.
		for _, child := range container.ChildElements() {
			uri := child.NamespaceURI()
			if uri == BatchNamespace || uri == "" {
				elements = append(elements, child)
			}
		}
	}

	commands := make([]SourceCommand, 0, len(elements))
	for _, el := range elements {
		commands = append(commands, SourceCommand{
			Record:  extractRecord(el),
			Element: el,
		})
	}
	return commands, true
}

func extractRecord(el *etree.Element) Record {
	record := Record{
		Identifier: strings.TrimSpace(el.SelectAttrValue("identifier", "")),
		Amount:     decimal.Zero,
	}

	anchors := map[string]*etree.Element{
		"Instalment": findDescendant(el, "Instalment", BatchNamespace),
	}
	if connected := findDescendant(el, "ConnectedSubject", BatchNamespace); connected != nil {
		anchors["Company"] = findDescendant(connected, "Company", BatchNamespace)
	}

	for _, fp := range recordFieldPaths {
		anchor := anchors[fp.anchor]
		if anchor == nil {
			continue
		}
		if value := textAtPath(anchor, BatchNamespace, fp.path...); value != "" {
			fp.assign(&record, value)
		}
	}
	return record
}
