package wallet

import (
	"walletapi/internal/chain"
	"walletapi/internal/constant"
	"walletapi/internal/errorx"
	"walletapi/internal/types"
)

// GetBalance returns the native balance in display units.
func (l *WalletLogic) GetBalance(req *types.AddressReq) (*types.BalanceResp, error) {
	addr, ok := chain.ParseAddress(req.Address)
	if !ok {
		return nil, errorx.New(errorx.KindInvalidAddress, "Invalid address: "+req.Address)
	}

	balance, err := l.svcCtx.Chain.BalanceAt(l.ctx, addr, nil)
	if err != nil {
		l.Errorf("fetch balance of %s failed: %v", addr.Hex(), err)
		return nil, errorx.Provider("fetch balance", err)
	}

	return &types.BalanceResp{
		Balance: chain.FormatUnits(balance, constant.NativeDecimals),
	}, nil
}
