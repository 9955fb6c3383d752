package audit

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSVHeader(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	r := csv.NewReader(strings.NewReader(buf.String()))
	header, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, ExportHeader, header)

	_, err = r.Read()
	assert.Error(t, err, "empty log should export header only")
}

func TestExportRoundTrip(t *testing.T) {
	t.Parallel()

	log := NewLog()
	log.Append(Connected{Meta: NewMeta(), Mode: "Wallet link"})
	log.Append(PolicyUpdated{
		Meta:            NewMeta(),
		Target:          60000,
		BaselineRate:    0.2,
		AlternativeRate: 5,
		Note:            "baseline rate updated",
	})
	log.Append(SweepExecuted{Meta: NewMeta(), Amount: 20000, Path: "quick"})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, log.Events()))

	r := csv.NewReader(strings.NewReader(buf.String()))
	rows, err := r.ReadAll()
	require.NoError(t, err)

	// Header plus one row per event, newest first.
	require.Len(t, rows, 1+log.Len())
	assert.Equal(t, string(KindSweepExecuted), rows[1][2])
	assert.Equal(t, string(KindPolicyUpdated), rows[2][2])
	assert.Equal(t, string(KindConnected), rows[3][2])
}

func TestExportQuotesEmbeddedDelimiters(t *testing.T) {
	t.Parallel()

	log := NewLog()
	log.Append(PolicyUpdated{
		Meta:            NewMeta(),
		Target:          1000,
		BaselineRate:    1,
		AlternativeRate: 2,
		Note:            `note with "quotes", and a comma`,
	})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, log.Events()))

	r := csv.NewReader(strings.NewReader(buf.String()))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Contains(t, rows[1][3], `"quotes", and a comma`)
}
