package export

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	for _, bad := range []string{"pdf", "excel", "xlsx", "", "CSV"} {
		_, err := ParseFormat(bad)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, "format %q", bad)
	}
}

func TestFilename(t *testing.T) {
	at := time.Date(2026, 8, 29, 14, 30, 5, 0, time.UTC)
	assert.Equal(t, "employee_performance_20260829_143005.csv", Filename("employee_performance", FormatCSV, at))
	assert.Equal(t, "goal_progress_20260829_143005.json", Filename("goal_progress", FormatJSON, at))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv", ContentType(FormatCSV))
	assert.Equal(t, "application/json", ContentType(FormatJSON))
}

func TestWriteCSV(t *testing.T) {
	table := Table{
		Headers: []string{"name", "score"},
		Rows: [][]string{
			{"Ana", "92.50"},
			{"Budi", "78.00"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table, FormatCSV))
	assert.Equal(t, "name,score\nAna,92.50\nBudi,78.00\n", buf.String())
}

func TestWriteJSONKeysRowsByHeader(t *testing.T) {
	table := Table{
		Headers: []string{"name", "score"},
		Rows:    [][]string{{"Ana", "92.50"}},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table, FormatJSON))

	var records []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Ana", records[0]["name"])
	assert.Equal(t, "92.50", records[0]["score"])
}

func TestWriteJSONEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Table{Headers: []string{"a"}}, FormatJSON))

	var records []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	assert.Empty(t, records)
}
