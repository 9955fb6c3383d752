package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"sweepdesk/internal/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "desk.yaml")
	content := `
name: quarter-end
balances:
  operating: 120000
  yield: 500000
  payment: 30000
policy:
  operating_target: 90000
  alternative_rate_pct: 4.25
approval:
  required: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "quarter-end", s.Name)
	assert.Equal(t, 120000.0, s.Balances.Operating)
	assert.Equal(t, 90000.0, s.Policy.OperatingTarget)
	assert.Equal(t, 4.25, s.Policy.AlternativeRatePct)
	assert.False(t, s.Approval.Required)
	// Omitted fields keep the default scenario's values.
	assert.Equal(t, 0.2, s.Policy.BaselineRatePct)
	assert.Equal(t, 12, s.Policy.HorizonMonths)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("balances: ["), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSeedMapsAccounts(t *testing.T) {
	t.Parallel()

	seed := Default().Seed()
	assert.Equal(t, 80000.0, seed.Balances[engine.Operating])
	assert.Equal(t, 250000.0, seed.Balances[engine.Yield])
	assert.Equal(t, 40000.0, seed.Balances[engine.Payment])
	assert.True(t, seed.ApprovalRequired)

	e := engine.New(seed)
	assert.Equal(t, 370000.0, e.TotalCash())
	assert.Equal(t, 20000.0, e.Recommendation().SweepAmount)
}
