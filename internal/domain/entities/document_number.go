package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DocumentKind identifies a sequentially numbered document type.
type DocumentKind string

const (
	DocumentKindVisit        DocumentKind = "visit"
	DocumentKindBudget       DocumentKind = "budget"
	DocumentKindServiceOrder DocumentKind = "service_order"
)

var ErrNumberPrefixMismatch = errors.New("document number does not carry the expected prefix")

// DocumentKinds lists every numbered kind in lifecycle order.
func DocumentKinds() []DocumentKind {
	return []DocumentKind{DocumentKindVisit, DocumentKindBudget, DocumentKindServiceOrder}
}

func (k DocumentKind) Valid() bool {
	switch k {
	case DocumentKindVisit, DocumentKindBudget, DocumentKindServiceOrder:
		return true
	}
	return false
}

// Prefix is the human-readable marker placed before the sequence digits.
func (k DocumentKind) Prefix() string {
	switch k {
	case DocumentKindVisit:
		return "VIS-"
	case DocumentKindBudget:
		return "ORC-"
	case DocumentKindServiceOrder:
		return "OS-"
	}
	return ""
}

// DocType is the name used for exported document files.
func (k DocumentKind) DocType() string {
	switch k {
	case DocumentKindVisit:
		return "Visita"
	case DocumentKindBudget:
		return "Orcamento"
	case DocumentKindServiceOrder:
		return "OrdemServico"
	}
	return ""
}

// NumberDigits strips a known kind prefix: "ORC-0007-25" -> "0007-25".
func NumberDigits(number string) string {
	for _, k := range DocumentKinds() {
		if strings.HasPrefix(number, k.Prefix()) {
			return strings.TrimPrefix(number, k.Prefix())
		}
	}
	return number
}

// SequenceValue reads the counter part of a document number: "OS-0012-25" -> 12.
func SequenceValue(number string) (int64, bool) {
	digits, _, _ := strings.Cut(NumberDigits(number), "-")
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// InheritNumber reuses the digits of a parent document number under the child's prefix.
// It is a textual swap; no sequence is consumed.
func InheritNumber(parentNumber string, from, to DocumentKind) (string, error) {
	if !strings.HasPrefix(parentNumber, from.Prefix()) || from.Prefix() == "" {
		return "", fmt.Errorf("%w: %q is not a %s number", ErrNumberPrefixMismatch, parentNumber, from)
	}
	return to.Prefix() + strings.TrimPrefix(parentNumber, from.Prefix()), nil
}

// PDFFileName follows "<DocType>-<digits>.pdf", e.g. "Orcamento-0001-23.pdf".
func PDFFileName(kind DocumentKind, number string) string {
	return kind.DocType() + "-" + NumberDigits(number) + ".pdf"
}
