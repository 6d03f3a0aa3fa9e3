// internal/anchor/deployments.go
package anchor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Deployment is the persisted record written when the TruvalueAnchor
// contract is deployed to a network.
type Deployment struct {
	ContractAddress string `json:"contractAddress"`
	Network         string `json:"network,omitempty"`
	Deployer        string `json:"deployer,omitempty"`
	TxHash          string `json:"txHash,omitempty"`
	BlockNumber     uint64 `json:"blockNumber,omitempty"`
	DeployedAt      string `json:"deployedAt,omitempty"`
}

// LatestDeployment locates the most recent deployment record for a
// network. Records live as JSON files named "<network>-*.json"; the
// newest one is chosen by reverse lexical filename sort, matching the
// timestamped naming convention the deploy pipeline uses.
func LatestDeployment(dir, network string) (*Deployment, string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read deployments directory %s: %w", dir, err)
	}

	prefix := network + "-"
	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, ".json") {
			candidates = append(candidates, name)
		}
	}

	if len(candidates) == 0 {
		return nil, "", fmt.Errorf("no deployment record for network %q in %s", network, dir)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(candidates)))
	path := filepath.Join(dir, candidates[0])

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read deployment record %s: %w", path, err)
	}

	var record Deployment
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, "", fmt.Errorf("failed to parse deployment record %s: %w", path, err)
	}

	if !common.IsHexAddress(record.ContractAddress) {
		return nil, "", fmt.Errorf("deployment record %s carries invalid contract address %q", path, record.ContractAddress)
	}

	return &record, path, nil
}
