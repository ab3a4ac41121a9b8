// Package chain is the only place the service talks to the EVM JSON-RPC endpoint.
package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	evmTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Provider is the subset of the JSON-RPC surface the wallet API relies on.
// *ethclient.Client satisfies it, so does *Gateway.
type Provider interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	NonceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (uint64, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *evmTypes.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*evmTypes.Receipt, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

var ErrNoRpcUrl = errors.New("rpc url is empty")

// Gateway is a shared handle to one RPC endpoint. The connection is
// established on first use and reused by every request afterwards; a failed
// dial is retried on the next call.
type Gateway struct {
	rpcUrl  string
	timeout time.Duration

	mu     sync.Mutex
	client *ethclient.Client
}

// NewGateway creates the gateway without dialing. timeout bounds every single
// RPC call; zero disables it.
func NewGateway(rpcUrl string, timeout time.Duration) (*Gateway, error) {
	if rpcUrl == "" {
		return nil, ErrNoRpcUrl
	}
	return &Gateway{rpcUrl: rpcUrl, timeout: timeout}, nil
}

func (g *Gateway) RpcUrl() string {
	return g.rpcUrl
}

func (g *Gateway) dial(ctx context.Context) (*ethclient.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}
	client, err := ethclient.DialContext(ctx, g.rpcUrl)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	g.client = client
	return client, nil
}

func (g *Gateway) call(ctx context.Context) (*ethclient.Client, context.Context, context.CancelFunc, error) {
	client, err := g.dial(ctx)
	if err != nil {
		return nil, ctx, func() {}, err
	}
	if g.timeout <= 0 {
		return client, ctx, func() {}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	return client, ctx, cancel, nil
}

// Close releases the underlying connection, if one was opened.
func (g *Gateway) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		g.client.Close()
		g.client = nil
	}
}

func (g *Gateway) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	client, ctx, cancel, err := g.call(ctx)
	defer cancel()
	if err != nil {
		return nil, err
	}
	return client.BalanceAt(ctx, account, blockNumber)
}

func (g *Gateway) NonceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (uint64, error) {
	client, ctx, cancel, err := g.call(ctx)
	defer cancel()
	if err != nil {
		return 0, err
	}
	return client.NonceAt(ctx, account, blockNumber)
}

func (g *Gateway) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	client, ctx, cancel, err := g.call(ctx)
	defer cancel()
	if err != nil {
		return 0, err
	}
	return client.PendingNonceAt(ctx, account)
}

func (g *Gateway) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	client, ctx, cancel, err := g.call(ctx)
	defer cancel()
	if err != nil {
		return nil, err
	}
	return client.CodeAt(ctx, account, blockNumber)
}

func (g *Gateway) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	client, ctx, cancel, err := g.call(ctx)
	defer cancel()
	if err != nil {
		return nil, err
	}
	return client.SuggestGasPrice(ctx)
}

func (g *Gateway) ChainID(ctx context.Context) (*big.Int, error) {
	client, ctx, cancel, err := g.call(ctx)
	defer cancel()
	if err != nil {
		return nil, err
	}
	return client.ChainID(ctx)
}

func (g *Gateway) SendTransaction(ctx context.Context, tx *evmTypes.Transaction) error {
	client, ctx, cancel, err := g.call(ctx)
	defer cancel()
	if err != nil {
		return err
	}
	return client.SendTransaction(ctx, tx)
}

func (g *Gateway) TransactionReceipt(ctx context.Context, txHash common.Hash) (*evmTypes.Receipt, error) {
	client, ctx, cancel, err := g.call(ctx)
	defer cancel()
	if err != nil {
		return nil, err
	}
	return client.TransactionReceipt(ctx, txHash)
}

func (g *Gateway) BlockNumber(ctx context.Context) (uint64, error) {
	client, ctx, cancel, err := g.call(ctx)
	defer cancel()
	if err != nil {
		return 0, err
	}
	return client.BlockNumber(ctx)
}
