package recon

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// ParseError is the fatal whole-batch failure: neither the detected encoding
// nor any fallback produced a parseable document.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "document parse failed: " + e.Reason
}

// The declaration is stripped before parsing so a mis-declared encoding tag
// cannot contradict the bytes we actually decoded.
var xmlDeclPattern = regexp.MustCompile(`<\?xml[^>]*?\?>`)

type fallbackEncoding struct {
	name string
	enc  encoding.Encoding
}

// Upstream producers are inconsistent about declared vs actual encoding, so
// a failed parse retries against this fixed list in order.
var fallbackEncodings = []fallbackEncoding{
	{"utf-16", unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)},
	{"utf-16-le", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)},
	{"utf-16-be", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},
	{"latin-1", charmap.ISO8859_1},
}

// detectText decodes raw bytes using the statistically detected charset and
// never fails: if detection or decoding goes wrong it falls back to UTF-8
// with invalid bytes substituted.
func detectText(raw []byte) string {
	detector := chardet.NewTextDetector()
	if best, err := detector.DetectBest(raw); err == nil && best != nil {
		if enc, encErr := ianaindex.IANA.Encoding(best.Charset); encErr == nil && enc != nil {
			if decoded, decErr := enc.NewDecoder().Bytes(raw); decErr == nil {
				return string(decoded)
			}
		}
	}
	return string(bytes.ToValidUTF8(raw, []byte("\uFFFD")))
}

func normalizeText(text string) string {
	text = strings.TrimPrefix(text, "\uFEFF")
	text = xmlDeclPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func parseText(text string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, &ParseError{Reason: "no root element"}
	}
	return doc, nil
}

// Decode turns raw document bytes into a parsed tree. Returns a *ParseError
// carrying the last failure reason when every encoding attempt fails.
func Decode(raw []byte) (*etree.Document, error) {
	doc, err := parseText(normalizeText(detectText(raw)))
	if err == nil {
		return doc, nil
	}
	lastReason := err.Error()

	for _, fb := range fallbackEncodings {
		decoded, decErr := fb.enc.NewDecoder().Bytes(raw)
		if decErr != nil {
			lastReason = fb.name + ": " + decErr.Error()
			continue
		}
		doc, parseErr := parseText(normalizeText(string(decoded)))
		if parseErr == nil {
			return doc, nil
		}
		lastReason = fb.name + ": " + parseErr.Error()
	}

	return nil, &ParseError{Reason: lastReason}
}
