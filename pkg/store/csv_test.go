package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCSV(t *testing.T) {
	in := "id,name,brand\n1,Jacket,Levi's\n2,Shoes,Nike\n"

	rows, err := decodeCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "1", rows[0].get("id"))
	assert.Equal(t, "Jacket", rows[0].get("name"))
	assert.Equal(t, "Nike", rows[1].get("brand"))
}

func TestDecodeCSVMissingColumnReadsEmpty(t *testing.T) {
	in := "id,name\n1,Jacket\n"

	rows, err := decodeCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, "", rows[0].get("brand"))
}

func TestDecodeCSVRaggedRecords(t *testing.T) {
	in := "id,name,brand\n1,Jacket\n2,Shoes,Nike,extra\n"

	rows, err := decodeCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Short record: trailing columns read as empty.
	assert.Equal(t, "Jacket", rows[0].get("name"))
	assert.Equal(t, "", rows[0].get("brand"))
	// Long record: extra fields are ignored.
	assert.Equal(t, "Nike", rows[1].get("brand"))
}

func TestDecodeCSVEmptyInput(t *testing.T) {
	_, err := decodeCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestDecodeCSVHeaderOnly(t *testing.T) {
	rows, err := decodeCSV(strings.NewReader("id,name\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}
