// cmd/anchorctl/main.go
//
// anchorctl manages backend anchor authorization on the TruvalueAnchor
// contract. The authorize command runs a single one-shot sequence with
// no retries; status only reads.
package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/truvalue/truvalue-backend/internal/anchor"
	"github.com/truvalue/truvalue-backend/internal/config"
)

var timeout time.Duration

var rootCmd = &cobra.Command{
	Use:   "anchorctl",
	Short: "Manage TruvalueAnchor backend authorization",
	Long: "anchorctl grants or inspects the backend signer's permission to anchor\n" +
		"asset fingerprints on the TruvalueAnchor contract. The backend address is\n" +
		"taken from BACKEND_ANCHOR_ADDRESS; the contract address comes from the\n" +
		"newest deployment record of the configured network.",
	SilenceUsage: true,
}

var authorizeCmd = &cobra.Command{
	Use:   "authorize",
	Short: "Authorize the backend anchor address (idempotent one-shot)",
	RunE:  runAuthorize,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current authorization state without transacting",
	RunE:  runStatus,
}

var statusHash string

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall deadline for RPC calls")
	statusCmd.Flags().StringVar(&statusHash, "hash", "", "also look up when this 0x-prefixed fingerprint was anchored")
	rootCmd.AddCommand(authorizeCmd)
	rootCmd.AddCommand(statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// backendAddress reads and validates BACKEND_ANCHOR_ADDRESS. It must
// fail before any RPC traffic happens.
func backendAddress() (common.Address, error) {
	raw := os.Getenv("BACKEND_ANCHOR_ADDRESS")
	if raw == "" {
		return common.Address{}, fmt.Errorf("BACKEND_ANCHOR_ADDRESS is not set")
	}
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("BACKEND_ANCHOR_ADDRESS %q is not a valid address", raw)
	}
	return common.HexToAddress(raw), nil
}

func runAuthorize(cmd *cobra.Command, args []string) error {
	backend, err := backendAddress()
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Blockchain.RPCURL == "" {
		return fmt.Errorf("BLOCKCHAIN_RPC_URL is not set")
	}
	if cfg.Blockchain.PrivateKey == "" {
		return fmt.Errorf("BLOCKCHAIN_PRIVATE_KEY is not set")
	}

	record, path, err := anchor.LatestDeployment(cfg.Blockchain.DeploymentsDir, cfg.Blockchain.Network)
	if err != nil {
		return err
	}
	fmt.Printf("Using deployment %s (contract %s)\n", path, record.ContractAddress)

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	client, err := anchor.DialWithKey(ctx, cfg.Blockchain.RPCURL, record.ContractAddress, cfg.Blockchain.PrivateKey, cfg.Blockchain.ChainID)
	if err != nil {
		return err
	}
	defer client.Close()

	authorized, err := client.AuthorizedAnchors(ctx, backend)
	if err != nil {
		return err
	}

	if authorized {
		fmt.Printf("%s is already authorized\n", backend.Hex())
		return nil
	}

	fmt.Printf("Authorizing %s...\n", backend.Hex())
	receipt, err := client.SetAnchorAuthorization(ctx, backend, true)
	if err != nil {
		return err
	}
	fmt.Printf("Transaction %s mined in block %d\n", receipt.TxHash.Hex(), receipt.BlockNumber.Uint64())

	authorized, err = client.AuthorizedAnchors(ctx, backend)
	if err != nil {
		return err
	}
	fmt.Printf("authorizedAnchors(%s) = %t\n", backend.Hex(), authorized)

	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	backend, err := backendAddress()
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Blockchain.RPCURL == "" {
		return fmt.Errorf("BLOCKCHAIN_RPC_URL is not set")
	}

	record, path, err := anchor.LatestDeployment(cfg.Blockchain.DeploymentsDir, cfg.Blockchain.Network)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	client, err := anchor.Dial(ctx, cfg.Blockchain.RPCURL, record.ContractAddress)
	if err != nil {
		return err
	}
	defer client.Close()

	authorized, err := client.AuthorizedAnchors(ctx, backend)
	if err != nil {
		return err
	}

	fmt.Printf("Deployment: %s\n", path)
	fmt.Printf("Contract:   %s\n", record.ContractAddress)
	fmt.Printf("Backend:    %s\n", backend.Hex())
	fmt.Printf("Authorized: %t\n", authorized)

	if statusHash != "" {
		fingerprint, err := parseFingerprint(statusHash)
		if err != nil {
			return err
		}

		anchoredAt, err := client.AnchoredAt(ctx, fingerprint)
		if err != nil {
			return err
		}
		if anchoredAt.Sign() == 0 {
			fmt.Printf("Anchored:   no record for %s\n", statusHash)
		} else {
			fmt.Printf("Anchored:   %s\n", time.Unix(anchoredAt.Int64(), 0).UTC().Format(time.RFC3339))
		}
	}

	return nil
}

// parseFingerprint decodes a 0x-prefixed SHA-256 fingerprint into the
// bytes32 form the contract stores.
func parseFingerprint(raw string) ([32]byte, error) {
	var fingerprint [32]byte

	decoded, err := hex.DecodeString(strings.TrimPrefix(raw, "0x"))
	if err != nil {
		return fingerprint, fmt.Errorf("fingerprint %q is not valid hex", raw)
	}
	if len(decoded) != 32 {
		return fingerprint, fmt.Errorf("fingerprint %q is %d bytes, want 32", raw, len(decoded))
	}

	copy(fingerprint[:], decoded)
	return fingerprint, nil
}
