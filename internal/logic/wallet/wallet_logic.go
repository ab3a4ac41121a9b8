package wallet

import (
	"context"

	"walletapi/internal/keys"
	"walletapi/internal/metrics"
	"walletapi/internal/svc"
	"walletapi/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type WalletLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewWalletLogic(ctx context.Context, svcCtx *svc.ServiceContext) *WalletLogic {
	return &WalletLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// CreateWallet returns a brand new wallet. Nothing about it is kept server side.
func (l *WalletLogic) CreateWallet() (*types.CreateWalletResp, error) {
	w := keys.Generate()
	metrics.WalletsGenerated.Inc()
	l.Infof("wallet generated, address: %s", w.Address)

	return &types.CreateWalletResp{
		Address:    w.Address,
		PrivateKey: w.PrivateKey,
		Mnemonic:   w.Mnemonic,
	}, nil
}
