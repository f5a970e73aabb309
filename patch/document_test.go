package patch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDocument(t *testing.T, raw string) *Document {
	t.Helper()
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc.root))
	return &doc
}

func TestDocumentWithoutTables(t *testing.T) {
	doc := parseDocument(t, `{"ExportPath": "out"}`)
	assert.Empty(t, doc.Tables())
}

func TestDocumentSkipsMalformedEntries(t *testing.T) {
	doc := parseDocument(t, `{
		"Tables": [
			42,
			"not a table",
			{ "TableName": "Person.Person", "Columns": ["not a column", { "ColumnName": "Title" }] },
			{ "TableName": "Person.Address", "Columns": "broken" }
		]
	}`)

	tables := doc.Tables()
	require.Len(t, tables, 2, "Expected non-object entries to be skipped")
	assert.Equal(t, "Person.Person", tables[0].Name())
	assert.Empty(t, tables[1].Columns())

	cols := tables[0].Columns()
	require.Len(t, cols, 1)
	assert.Equal(t, "Title", cols[0].Name())
}

func TestColumnDisable(t *testing.T) {
	doc := parseDocument(t, `{
		"Tables": [
			{ "TableName": "Person.Person", "Columns": [{ "ColumnName": "Title" }] }
		]
	}`)

	col := doc.Tables()[0].Columns()[0]
	assert.True(t, col.Enabled(), "Expected a column without the flag to count as enabled")

	col.Disable()

	// Reread through the document to make sure the change landed in it.
	col = doc.Tables()[0].Columns()[0]
	assert.False(t, col.Enabled())

	data, err := json.Marshal(&doc.root)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Enabled":false`)
}
