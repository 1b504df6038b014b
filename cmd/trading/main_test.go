package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))

	writeFile(t, filepath.Join(dataDir, "prices.csv"), strings.Join([]string{
		"9128283F5,99.984375,100.015625",
		"9128283F5,99.9921875,100.0078125",
		"9128283H1,99.75,100.25",
	}, "\n")+"\n")

	// Book depth 2: two bids then two offers per book. The first book
	// is 1/256 wide and crosses; the second is 1/32 wide and does not.
	writeFile(t, filepath.Join(dataDir, "marketdata.csv"), strings.Join([]string{
		"9128283F5,99-31+,1000000,BID",
		"9128283F5,99-310,2000000,BID",
		"9128283F5,99-315,1000000,OFFER",
		"9128283F5,100-000,2000000,OFFER",
		"9128283H1,99-310,1000000,BID",
		"9128283H1,99-300,2000000,BID",
		"9128283H1,100-000,1000000,OFFER",
		"9128283H1,100-010,2000000,OFFER",
	}, "\n")+"\n")

	writeFile(t, filepath.Join(dataDir, "trades.csv"), strings.Join([]string{
		"9128283F5,TRADE0000001,100-000,TRSY1,1000000,BUY",
		"9128283F5,TRADE0000002,99-160,TRSY2,500000,SELL",
	}, "\n")+"\n")

	writeFile(t, filepath.Join(dataDir, "inquiries.csv"),
		"INQUIRY00001,912828M80,BUY,1000000,100-000,RECEIVED\n")

	configPath := filepath.Join(dir, "config.json")
	writeFile(t, configPath, `{
		"data": {"dir": "`+dataDir+`"},
		"output": {"dir": "`+outDir+`"},
		"marketData": {"bookDepth": 2}
	}`)

	require.NoError(t, run(configPath, "", ""))

	streams := readLines(t, filepath.Join(outDir, "streaming.txt"))
	assert.Len(t, streams, 3, "one stream per price")
	assert.Contains(t, streams[0], "1000000")
	assert.Contains(t, streams[1], "2000000")

	executions := readLines(t, filepath.Join(outDir, "executions.txt"))
	require.Len(t, executions, 1, "only the tight book crosses")
	assert.Contains(t, executions[0], "9128283F5")
	assert.Contains(t, executions[0], "MARKET")

	positions := readLines(t, filepath.Join(outDir, "positions.txt"))
	require.Len(t, positions, 2)
	assert.Contains(t, positions[1], "500000", "aggregate after buy 1M sell 500k")

	risk := readLines(t, filepath.Join(outDir, "risk.txt"))
	require.Len(t, risk, 2)
	assert.Contains(t, risk[1], "40807.245")

	inquiries := readLines(t, filepath.Join(outDir, "allinquiries.txt"))
	require.Len(t, inquiries, 1)
	assert.Contains(t, inquiries[0], "DONE")
}

func TestRunMissingInputIsFatal(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	writeFile(t, configPath, `{
		"data": {"dir": "`+filepath.Join(dir, "absent")+`"},
		"output": {"dir": "`+filepath.Join(dir, "out")+`"}
	}`)

	assert.Error(t, run(configPath, "", ""))
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	trimmed := strings.TrimRight(string(data), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
