package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInheritNumber(t *testing.T) {
	budgetNumber, err := InheritNumber("VIS-0007-25", DocumentKindVisit, DocumentKindBudget)
	require.NoError(t, err)
	assert.Equal(t, "ORC-0007-25", budgetNumber)

	orderNumber, err := InheritNumber(budgetNumber, DocumentKindBudget, DocumentKindServiceOrder)
	require.NoError(t, err)
	assert.Equal(t, "OS-0007-25", orderNumber)

	_, err = InheritNumber("ORC-0007-25", DocumentKindVisit, DocumentKindBudget)
	assert.True(t, errors.Is(err, ErrNumberPrefixMismatch))
}

func TestNumberDigitsAndPDFFileName(t *testing.T) {
	assert.Equal(t, "0001-23", NumberDigits("ORC-0001-23"))
	assert.Equal(t, "0001-23", NumberDigits("0001-23"))
	assert.Equal(t, "Orcamento-0001-23.pdf", PDFFileName(DocumentKindBudget, "ORC-0001-23"))
	assert.Equal(t, "OrdemServico-0002-24.pdf", PDFFileName(DocumentKindServiceOrder, "OS-0002-24"))
	assert.Equal(t, "Visita-0003-25.pdf", PDFFileName(DocumentKindVisit, "VIS-0003-25"))
}

func TestDocumentKind(t *testing.T) {
	for _, k := range DocumentKinds() {
		assert.True(t, k.Valid())
		assert.NotEmpty(t, k.Prefix())
		assert.NotEmpty(t, k.DocType())
	}
	assert.False(t, DocumentKind("invoice").Valid())
	assert.Empty(t, DocumentKind("invoice").Prefix())
}

func TestSequenceValue(t *testing.T) {
	n, ok := SequenceValue("OS-0012-25")
	require.True(t, ok)
	assert.Equal(t, int64(12), n)

	n, ok = SequenceValue("0007-24")
	require.True(t, ok)
	assert.Equal(t, int64(7), n)

	for _, bad := range []string{"", "VIS-", "VIS-abcd-25", "ORC-0000-25"} {
		_, ok = SequenceValue(bad)
		assert.False(t, ok, bad)
	}
}
