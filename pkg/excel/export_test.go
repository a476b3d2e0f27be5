package excel

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	headers := []string{"Número", "Cliente", "Status"}
	rows := [][]string{
		{"100", "Acme", "Aprovado"},
		{"10", "—", "Rascunho"},
	}
	require.NoError(t, Write(&buf, "commercial/estimates", headers, rows))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	require.Equal(t, []string{"commercial estimates"}, f.GetSheetList())
	got, err := f.GetRows("commercial estimates")
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"Número", "Cliente", "Status"},
		{"100", "Acme", "Aprovado"},
		{"10", "—", "Rascunho"},
	}, got)
}

func TestWrite_HeaderOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "", []string{"Email"}, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	got, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"Email"}}, got)
}

func TestSheetName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Sheet1", SheetName("  "))
	require.Equal(t, "a b", SheetName("a:b"))
	require.Len(t, []rune(SheetName(strings.Repeat("x", 40))), 31)
}
