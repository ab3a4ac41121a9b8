// Package chaintest provides a scripted chain.Provider for tests.
package chaintest

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	evmTypes "github.com/ethereum/go-ethereum/core/types"
)

// Provider answers every RPC from its fields and records the calls it saw.
// A nil Receipt with a nil ReceiptErr answers ethereum.NotFound, like a node
// does for a transaction that is not mined yet.
type Provider struct {
	Balance    *big.Int
	BalanceErr error

	Nonce    uint64
	NonceErr error

	Code    []byte
	CodeErr error

	GasPrice    *big.Int
	GasPriceErr error

	ChainId    *big.Int
	ChainIdErr error

	SendErr error

	Receipt    *evmTypes.Receipt
	ReceiptErr error

	Head    uint64
	HeadErr error

	mu    sync.Mutex
	calls map[string]int
	sent  []*evmTypes.Transaction
}

func (p *Provider) record(method string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.calls == nil {
		p.calls = make(map[string]int)
	}
	p.calls[method]++
}

// Calls returns how many times method was invoked.
func (p *Provider) Calls(method string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[method]
}

// TotalCalls returns the number of RPCs of any kind.
func (p *Provider) TotalCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, c := range p.calls {
		n += c
	}
	return n
}

// Sent returns the transactions handed to SendTransaction.
func (p *Provider) Sent() []*evmTypes.Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*evmTypes.Transaction(nil), p.sent...)
}

func (p *Provider) BalanceAt(_ context.Context, _ common.Address, _ *big.Int) (*big.Int, error) {
	p.record("BalanceAt")
	if p.BalanceErr != nil {
		return nil, p.BalanceErr
	}
	if p.Balance == nil {
		return new(big.Int), nil
	}
	return new(big.Int).Set(p.Balance), nil
}

func (p *Provider) NonceAt(_ context.Context, _ common.Address, _ *big.Int) (uint64, error) {
	p.record("NonceAt")
	return p.Nonce, p.NonceErr
}

func (p *Provider) PendingNonceAt(_ context.Context, _ common.Address) (uint64, error) {
	p.record("PendingNonceAt")
	return p.Nonce, p.NonceErr
}

func (p *Provider) CodeAt(_ context.Context, _ common.Address, _ *big.Int) ([]byte, error) {
	p.record("CodeAt")
	return p.Code, p.CodeErr
}

func (p *Provider) SuggestGasPrice(_ context.Context) (*big.Int, error) {
	p.record("SuggestGasPrice")
	if p.GasPriceErr != nil {
		return nil, p.GasPriceErr
	}
	return p.GasPrice, nil
}

func (p *Provider) ChainID(_ context.Context) (*big.Int, error) {
	p.record("ChainID")
	if p.ChainIdErr != nil {
		return nil, p.ChainIdErr
	}
	return p.ChainId, nil
}

func (p *Provider) SendTransaction(_ context.Context, tx *evmTypes.Transaction) error {
	p.record("SendTransaction")
	if p.SendErr != nil {
		return p.SendErr
	}
	p.mu.Lock()
	p.sent = append(p.sent, tx)
	p.mu.Unlock()
	return nil
}

func (p *Provider) TransactionReceipt(_ context.Context, _ common.Hash) (*evmTypes.Receipt, error) {
	p.record("TransactionReceipt")
	if p.ReceiptErr != nil {
		return nil, p.ReceiptErr
	}
	if p.Receipt == nil {
		return nil, ethereum.NotFound
	}
	return p.Receipt, nil
}

func (p *Provider) BlockNumber(_ context.Context) (uint64, error) {
	p.record("BlockNumber")
	return p.Head, p.HeadErr
}
