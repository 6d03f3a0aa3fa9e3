// internal/anchor/contract.go
package anchor

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ABI of the TruvalueAnchor contract, limited to the methods the
// backend consumes.
const truvalueAnchorABI = `[
	{"inputs":[{"internalType":"address","name":"anchor","type":"address"}],"name":"authorizedAnchors","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"address","name":"anchor","type":"address"},{"internalType":"bool","name":"authorized","type":"bool"}],"name":"setAnchorAuthorization","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"internalType":"bytes32","name":"hash","type":"bytes32"}],"name":"anchor","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"internalType":"bytes32","name":"hash","type":"bytes32"}],"name":"anchoredAt","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

// Client wraps the deployed TruvalueAnchor contract. A client built
// without a private key is read-only; transacting methods fail.
type Client struct {
	eth      *ethclient.Client
	contract *bind.BoundContract
	address  common.Address
	auth     *bind.TransactOpts
}

// Dial connects to an RPC endpoint and binds the contract read-only.
func Dial(ctx context.Context, rpcURL, contractAddress string) (*Client, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("invalid contract address %q", contractAddress)
	}

	eth, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial RPC endpoint: %w", err)
	}

	parsed, err := abi.JSON(strings.NewReader(truvalueAnchorABI))
	if err != nil {
		eth.Close()
		return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
	}

	address := common.HexToAddress(contractAddress)
	return &Client{
		eth:      eth,
		contract: bind.NewBoundContract(address, parsed, eth, eth, eth),
		address:  address,
	}, nil
}

// DialWithKey connects like Dial and attaches a keyed transactor so
// state-changing calls can be sent.
func DialWithKey(ctx context.Context, rpcURL, contractAddress, privateKeyHex string, chainID int64) (*Client, error) {
	client, err := Dial(ctx, rpcURL, contractAddress)
	if err != nil {
		return nil, err
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	auth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(chainID))
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	client.auth = auth
	return client, nil
}

func (c *Client) Close() {
	c.eth.Close()
}

// ContractAddress returns the bound contract address.
func (c *Client) ContractAddress() common.Address {
	return c.address
}

// AuthorizedAnchors queries whether addr may write anchors.
func (c *Client) AuthorizedAnchors(ctx context.Context, addr common.Address) (bool, error) {
	var out []interface{}
	err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, "authorizedAnchors", addr)
	if err != nil {
		return false, fmt.Errorf("authorizedAnchors call failed: %w", err)
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// SetAnchorAuthorization flips the authorization flag for addr and
// waits for the transaction to be mined.
func (c *Client) SetAnchorAuthorization(ctx context.Context, addr common.Address, authorized bool) (*types.Receipt, error) {
	if c.auth == nil {
		return nil, fmt.Errorf("client is read-only: no signing key configured")
	}

	opts := *c.auth
	opts.Context = ctx

	tx, err := c.contract.Transact(&opts, "setAnchorAuthorization", addr, authorized)
	if err != nil {
		return nil, fmt.Errorf("setAnchorAuthorization transaction failed: %w", err)
	}

	return c.waitMined(ctx, tx)
}

// Anchor records a hash on chain and waits for confirmation.
func (c *Client) Anchor(ctx context.Context, hash [32]byte) (*types.Receipt, error) {
	if c.auth == nil {
		return nil, fmt.Errorf("client is read-only: no signing key configured")
	}

	opts := *c.auth
	opts.Context = ctx

	tx, err := c.contract.Transact(&opts, "anchor", hash)
	if err != nil {
		return nil, fmt.Errorf("anchor transaction failed: %w", err)
	}

	return c.waitMined(ctx, tx)
}

// AnchoredAt returns the block timestamp a hash was anchored at, or
// zero when the hash is unknown to the contract.
func (c *Client) AnchoredAt(ctx context.Context, hash [32]byte) (*big.Int, error) {
	var out []interface{}
	err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, "anchoredAt", hash)
	if err != nil {
		return nil, fmt.Errorf("anchoredAt call failed: %w", err)
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (c *Client) waitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, c.eth, tx)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for transaction %s: %w", tx.Hash(), err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("transaction %s reverted", tx.Hash())
	}

	return receipt, nil
}
