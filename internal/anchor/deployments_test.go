// internal/anchor/deployments_test.go
package anchor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

func writeDeployment(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644))
}

func TestLatestDeploymentPicksNewest(t *testing.T) {
	dir := t.TempDir()

	writeDeployment(t, dir, "sepolia-2024-01-02T10-00-00.json",
		`{"contractAddress":"0x0000000000000000000000000000000000000001"}`)
	writeDeployment(t, dir, "sepolia-2024-06-15T09-30-00.json",
		`{"contractAddress":"`+testAddress+`","network":"sepolia","blockNumber":123}`)
	writeDeployment(t, dir, "sepolia-2023-12-31T23-59-59.json",
		`{"contractAddress":"0x0000000000000000000000000000000000000002"}`)

	record, path, err := LatestDeployment(dir, "sepolia")
	require.NoError(t, err)

	assert.Equal(t, testAddress, record.ContractAddress)
	assert.Equal(t, uint64(123), record.BlockNumber)
	assert.Equal(t, filepath.Join(dir, "sepolia-2024-06-15T09-30-00.json"), path)
}

func TestLatestDeploymentIgnoresOtherNetworks(t *testing.T) {
	dir := t.TempDir()

	writeDeployment(t, dir, "mainnet-2024-06-15T09-30-00.json",
		`{"contractAddress":"0x0000000000000000000000000000000000000009"}`)
	writeDeployment(t, dir, "sepolia-2024-01-02T10-00-00.json",
		`{"contractAddress":"`+testAddress+`"}`)

	record, _, err := LatestDeployment(dir, "sepolia")
	require.NoError(t, err)
	assert.Equal(t, testAddress, record.ContractAddress)
}

func TestLatestDeploymentIgnoresNonJSONAndDirs(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.Mkdir(filepath.Join(dir, "sepolia-2099-backup.json"), 0755))
	writeDeployment(t, dir, "sepolia-2024-06-15.json.bak", `garbage`)
	writeDeployment(t, dir, "sepolia-2024-01-02T10-00-00.json",
		`{"contractAddress":"`+testAddress+`"}`)

	record, _, err := LatestDeployment(dir, "sepolia")
	require.NoError(t, err)
	assert.Equal(t, testAddress, record.ContractAddress)
}

func TestLatestDeploymentNoRecord(t *testing.T) {
	dir := t.TempDir()

	_, _, err := LatestDeployment(dir, "sepolia")
	assert.ErrorContains(t, err, "no deployment record")
}

func TestLatestDeploymentMissingDir(t *testing.T) {
	_, _, err := LatestDeployment(filepath.Join(t.TempDir(), "missing"), "sepolia")
	assert.Error(t, err)
}

func TestLatestDeploymentInvalidAddress(t *testing.T) {
	dir := t.TempDir()

	writeDeployment(t, dir, "sepolia-2024-01-02T10-00-00.json",
		`{"contractAddress":"not-an-address"}`)

	_, _, err := LatestDeployment(dir, "sepolia")
	assert.ErrorContains(t, err, "invalid contract address")
}

func TestLatestDeploymentMalformedJSON(t *testing.T) {
	dir := t.TempDir()

	writeDeployment(t, dir, "sepolia-2024-01-02T10-00-00.json", `{`)

	_, _, err := LatestDeployment(dir, "sepolia")
	assert.ErrorContains(t, err, "failed to parse")
}
