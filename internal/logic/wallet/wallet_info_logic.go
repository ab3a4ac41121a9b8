package wallet

import (
	"math/big"

	"walletapi/internal/chain"
	"walletapi/internal/constant"
	"walletapi/internal/errorx"
	"walletapi/internal/metrics"
	"walletapi/internal/types"

	"github.com/zeromicro/go-zero/core/threading"
)

// GetWalletInfo assembles an account snapshot. Balance, nonce and code are
// fetched concurrently and independently; a failed fetch leaves its field
// null and marks the snapshot degraded instead of failing the request.
func (l *WalletLogic) GetWalletInfo(req *types.AddressReq) (*types.WalletInfoResp, error) {
	addr, ok := chain.ParseAddress(req.Address)
	if !ok {
		return nil, errorx.New(errorx.KindInvalidAddress, "Invalid address: "+req.Address)
	}
	checksum := addr.Hex()

	var (
		balance    *big.Int
		nonce      uint64
		code       []byte
		balanceErr error
		nonceErr   error
		codeErr    error
	)

	group := threading.NewRoutineGroup()
	group.RunSafe(func() {
		balance, balanceErr = l.svcCtx.Chain.BalanceAt(l.ctx, addr, nil)
	})
	group.RunSafe(func() {
		nonce, nonceErr = l.svcCtx.Chain.NonceAt(l.ctx, addr, nil)
	})
	group.RunSafe(func() {
		code, codeErr = l.svcCtx.Chain.CodeAt(l.ctx, addr, nil)
	})
	group.Wait()

	resp := &types.WalletInfoResp{
		Address:         chain.LowercaseAddress(addr),
		ChecksumAddress: checksum,
		IsChecksumValid: chain.IsChecksumValid(req.Address),
		Network:         l.svcCtx.Config.Chain.NetworkName,
		ExplorerUrl:     chain.ExplorerLink(l.svcCtx.Config.Chain.ExplorerUrl, "address", checksum),
	}

	if balanceErr == nil && balance != nil {
		formatted := chain.FormatUnits(balance, constant.NativeDecimals)
		resp.Balance = &formatted
	} else {
		l.unavailable(resp, constant.FieldBalance, balanceErr)
	}

	if nonceErr == nil {
		resp.Nonce = &nonce
	} else {
		l.unavailable(resp, constant.FieldNonce, nonceErr)
	}

	if codeErr == nil {
		isContract := len(code) > 0
		resp.IsContract = &isContract
	} else {
		l.unavailable(resp, constant.FieldIsContract, codeErr)
	}

	return resp, nil
}

func (l *WalletLogic) unavailable(resp *types.WalletInfoResp, field string, err error) {
	l.Infof("wallet info for %s: %s unavailable: %v", resp.ChecksumAddress, field, err)
	metrics.DegradedInfos.WithLabelValues(field).Inc()
	resp.Degraded = true
	resp.Unavailable = append(resp.Unavailable, field)
}
