package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `date,description,amount,direction,category,merchant,balance,posted_at
2025-01-03,STRIPE PAYOUT,5000.00,credit,business_revenue,stripe,,
2025-01-10,rent january,1500.00,debit,rent,prop mgmt,,
2025-02-03,STRIPE PAYOUT,5200.00,credit,business_revenue,stripe,,
2025-02-10,rent february,1500.00,debit,rent,prop mgmt,,
`

func writeSampleCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "cashlens.yaml")

	_, err = os.Stat(filepath.Join(dir, "cashlens.yaml"))
	require.NoError(t, err)

	// Refuses to clobber an existing config.
	_, err = runCommand(t, "init", dir)
	require.Error(t, err)
}

func TestAnalyzeCommand(t *testing.T) {
	path := writeSampleCSV(t)

	out, err := runCommand(t, "analyze", path)
	require.NoError(t, err)
	assert.Contains(t, out, "RISK SCORE")
	assert.Contains(t, out, "CASH FLOW")
	assert.Contains(t, out, "$10,200.00")
	assert.Contains(t, out, "RED FLAGS")
}

func TestAnalyzeCommand_ByMonth(t *testing.T) {
	path := writeSampleCSV(t)

	out, err := runCommand(t, "analyze", "--by-month", path)
	require.NoError(t, err)
	assert.Contains(t, out, "==== 2025-01 ====")
	assert.Contains(t, out, "==== 2025-02 ====")
}

func TestAnalyzeCommand_ScenarioFlags(t *testing.T) {
	path := writeSampleCSV(t)

	out, err := runCommand(t, "analyze", "--amount", "10000", "--rate", "0.12", "--term", "12", path)
	require.NoError(t, err)
	assert.Contains(t, out, "$888.49")
}

func TestAnalyzeCommand_PartialScenario(t *testing.T) {
	path := writeSampleCSV(t)

	_, err := runCommand(t, "analyze", "--amount", "10000", path)
	require.Error(t, err)

	// An omitted rate is an error too, not an implicit 0% APR.
	_, err = runCommand(t, "analyze", "--amount", "10000", "--term", "12", path)
	require.Error(t, err)

	// An explicit zero rate is a valid interest-free scenario.
	out, err := runCommand(t, "analyze", "--amount", "1200", "--rate", "0", "--term", "12", path)
	require.NoError(t, err)
	assert.Contains(t, out, "$100.00")
}

func TestBucketsCommand(t *testing.T) {
	path := writeSampleCSV(t)

	out, err := runCommand(t, "buckets", path)
	require.NoError(t, err)
	assert.Contains(t, out, "income")
	assert.Contains(t, out, "operating_expense")
}

func TestReconcileCommand(t *testing.T) {
	path := writeSampleCSV(t)

	// Net change: +10200 - 3000 = +7200.
	out, err := runCommand(t, "reconcile", "--opening", "1000.00", "--closing", "8200.00", path)
	require.NoError(t, err)
	assert.Contains(t, out, "balanced")

	_, err = runCommand(t, "reconcile", "--opening", "1000.00", "--closing", "8200.01", path)
	require.Error(t, err)
}
