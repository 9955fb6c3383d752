package store

import (
	"path/filepath"
	"testing"

	"sweepdesk/internal/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestSaveAndReadBack(t *testing.T) {
	a := openTestArchive(t)

	log := audit.NewLog()
	log.Append(audit.Connected{Meta: audit.NewMeta(), Mode: "Demo feed"})
	log.Append(audit.BalanceUpdated{Meta: audit.NewMeta(), Account: "Operating", NewValue: 75000})
	log.Append(audit.SweepExecuted{Meta: audit.NewMeta(), Amount: 15000, Path: "guided"})

	n, err := a.SaveEvents(log.Events())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	rows, err := a.Rows()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Newest first, matching the log's ordering contract.
	assert.Equal(t, string(audit.KindSweepExecuted), rows[0].Kind)
	assert.Equal(t, string(audit.KindBalanceUpdated), rows[1].Kind)
	assert.Equal(t, string(audit.KindConnected), rows[2].Kind)
	assert.Contains(t, rows[0].Details, "$15,000")
}

func TestReArchivingIsIdempotent(t *testing.T) {
	a := openTestArchive(t)

	log := audit.NewLog()
	log.Append(audit.Connected{Meta: audit.NewMeta(), Mode: "Wallet link"})

	_, err := a.SaveEvents(log.Events())
	require.NoError(t, err)
	_, err = a.SaveEvents(log.Events())
	require.NoError(t, err)

	count, err := a.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEmptySave(t *testing.T) {
	a := openTestArchive(t)

	n, err := a.SaveEvents(nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	count, err := a.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}
