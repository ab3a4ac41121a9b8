package transaction

import (
	"errors"
	"math/big"

	"walletapi/internal/chain"
	"walletapi/internal/constant"
	"walletapi/internal/errorx"
	"walletapi/internal/explorer"
	"walletapi/internal/types"
)

// ListTransactions proxies the explorer's account history for an address.
func (l *TransactionLogic) ListTransactions(req *types.TransactionsReq) (*types.TransactionsResp, error) {
	addr, ok := chain.ParseAddress(req.Address)
	if !ok {
		return nil, errorx.New(errorx.KindInvalidAddress, "Invalid address: "+req.Address)
	}

	txs, err := l.svcCtx.Explorer.Transactions(l.ctx, explorer.Query{
		Address: addr.Hex(),
		Page:    req.Page,
		Offset:  req.Offset,
		Sort:    req.Sort,
	})
	if errors.Is(err, explorer.ErrNotConfigured) {
		return nil, errorx.Explorer("transaction history is not available", err)
	}
	if err != nil {
		l.Errorf("list transactions of %s failed: %v", addr.Hex(), err)
		return nil, errorx.Explorer("failed to fetch transactions", err)
	}

	resp := &types.TransactionsResp{
		Address:      addr.Hex(),
		Network:      l.svcCtx.Config.Chain.NetworkName,
		Transactions: make([]types.ExplorerTx, 0, len(txs)),
	}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, types.ExplorerTx{
			Hash:          tx.Hash,
			BlockNumber:   tx.BlockNumber,
			Timestamp:     tx.TimeStamp,
			From:          tx.From,
			To:            tx.To,
			Value:         displayValue(tx.Value),
			ValueWei:      tx.Value,
			GasUsed:       tx.GasUsed,
			GasPrice:      tx.GasPrice,
			Nonce:         tx.Nonce,
			IsError:       tx.IsError == "1",
			Confirmations: tx.Confirmations,
		})
	}
	return resp, nil
}

func displayValue(wei string) string {
	v, ok := new(big.Int).SetString(wei, 10)
	if !ok {
		return wei
	}
	return chain.FormatUnits(v, constant.NativeDecimals)
}
