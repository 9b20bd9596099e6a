package recon

import (
	"fmt"
	"testing"
)

func sourceWithCommands(inner string) string {
	return fmt.Sprintf(`<bc:Batch xmlns:bc="http://cb4.creditinfosolutions.com/BatchUploader/Batch">
		<bc:Commands>%s</bc:Commands>
	</bc:Batch>`, inner)
}

func TestExtractTagVariants(t *testing.T) {
	cases := []struct {
		name  string
		inner string
	}{
		{"uppercase", `<bc:Command identifier="X1"/>`},
		{"lowercase", `<bc:command identifier="X1"/>`},
		{"allcaps", `<bc:COMMAND identifier="X1"/>`},
		{"request", `<bc:Request identifier="X1"/>`},
		{"transaction", `<bc:Transaction identifier="X1"/>`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Decode([]byte(sourceWithCommands(tc.inner)))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			commands, found := Extract(doc)
			if !found {
				t.Fatal("container not found")
			}
			if len(commands) != 1 || commands[0].Record.Identifier != "X1" {
				t.Fatalf("expected one command X1, got %+v", commands)
			}
		})
	}
}

func TestExtractVariantPriority(t *testing.T) {
	// When both spellings exist, the higher-priority variant wins and the
	// other is ignored.
	doc, err := Decode([]byte(sourceWithCommands(
		`<bc:Command identifier="X1"/><bc:Request identifier="X2"/>`)))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	commands, _ := Extract(doc)
	if len(commands) != 1 || commands[0].Record.Identifier != "X1" {
		t.Fatalf("expected only X1, got %+v", commands)
	}
}

func TestExtractFallsBackToAnyChild(t *testing.T) {
	doc, err := Decode([]byte(sourceWithCommands(
		`<bc:Submission identifier="Y1"/><bc:Submission identifier="Y2"/>`)))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	commands, found := Extract(doc)
	if !found {
		t.Fatal("container not found")
	}
	if len(commands) != 2 {
		t.Fatalf("expected 2 commands via fallback, got %d", len(commands))
	}
	if commands[0].Record.Identifier != "Y1" || commands[1].Record.Identifier != "Y2" {
		t.Fatalf("unexpected identifiers: %+v", commands)
	}
}

func TestExtractMissingContainer(t *testing.T) {
	doc, err := Decode([]byte(`<bc:Batch xmlns:bc="http://cb4.creditinfosolutions.com/BatchUploader/Batch"><bc:Header/></bc:Batch>`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	commands, found := Extract(doc)
	if found {
		t.Fatal("expected container-not-found")
	}
	if len(commands) != 0 {
		t.Fatalf("expected no commands, got %d", len(commands))
	}
}

func TestExtractToleratesMissingFields(t *testing.T) {
	doc, err := Decode([]byte(sourceWithCommands(`<bc:Command identifier=" Z9 "/>`)))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	commands, _ := Extract(doc)
	if len(commands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(commands))
	}
	record := commands[0].Record
	if record.Identifier != "Z9" {
		t.Fatalf("identifier must be trimmed, got %q", record.Identifier)
	}
	if record.Name != "" || record.Code != "" || record.AccountNumber != "" {
		t.Fatalf("missing fields must stay empty, got %+v", record)
	}
	if !record.Amount.IsZero() {
		t.Fatalf("missing amount must be zero, got %s", record.Amount)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1234.56", "1234.56"},
		{"1234,56", "1234.56"},
		{" 42 ", "42"},
		{"", "0"},
		{"not-a-number", "0"},
	}
	for _, tc := range cases {
		if got := parseAmount(tc.in).String(); got != tc.want {
			t.Fatalf("parseAmount(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
