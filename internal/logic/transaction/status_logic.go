package transaction

import (
	"errors"

	"walletapi/internal/chain"
	"walletapi/internal/constant"
	"walletapi/internal/errorx"
	"walletapi/internal/metrics"
	"walletapi/internal/types"

	"github.com/ethereum/go-ethereum"
	evmTypes "github.com/ethereum/go-ethereum/core/types"
)

// GetTransactionStatus resolves a hash into pending, failed or success.
// A missing receipt means the transaction is not mined yet, which is not an
// error.
func (l *TransactionLogic) GetTransactionStatus(req *types.TxStatusReq) (*types.TxStatusResp, error) {
	hash, ok := chain.ParseTxHash(req.TxHash)
	if !ok {
		return nil, errorx.New(errorx.KindInvalidTransactionHash, "Invalid transaction hash: "+req.TxHash)
	}

	resp := &types.TxStatusResp{
		Hash:        hash.Hex(),
		ExplorerUrl: l.BuildExplorerUrl(hash.Hex()),
	}

	receipt, err := l.svcCtx.Chain.TransactionReceipt(l.ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		resp.Status = string(constant.TxStatusPending)
		metrics.StatusLookups.WithLabelValues(resp.Status).Inc()
		return resp, nil
	}
	if err != nil {
		l.Errorf("fetch receipt of %s failed: %v", hash.Hex(), err)
		return nil, errorx.Provider("fetch receipt", err)
	}

	head, err := l.svcCtx.Chain.BlockNumber(l.ctx)
	if err != nil {
		l.Errorf("fetch block number failed: %v", err)
		return nil, errorx.Provider("fetch block number", err)
	}

	var included uint64
	if receipt.BlockNumber != nil {
		included = receipt.BlockNumber.Uint64()
	}
	gasUsed := receipt.GasUsed
	confirmations := Confirmations(head, included)

	if receipt.Status == evmTypes.ReceiptStatusFailed {
		resp.Status = string(constant.TxStatusFailed)
	} else {
		resp.Status = string(constant.TxStatusSuccess)
	}
	resp.BlockNumber = &included
	resp.GasUsed = &gasUsed
	resp.Confirmations = &confirmations

	metrics.StatusLookups.WithLabelValues(resp.Status).Inc()
	return resp, nil
}

// Confirmations is head minus the inclusion block, floored at zero for nodes
// whose head view lags behind the block that included the transaction.
func Confirmations(head, included uint64) uint64 {
	if head < included {
		return 0
	}
	return head - included
}
