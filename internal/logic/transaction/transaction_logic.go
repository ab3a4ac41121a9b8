package transaction

import (
	"context"

	"walletapi/internal/chain"
	"walletapi/internal/errorx"
	"walletapi/internal/svc"

	"github.com/zeromicro/go-zero/core/logx"
)

type TransactionLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewTransactionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TransactionLogic {
	return &TransactionLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// BuildExplorerUrl links a transaction hash on the configured block explorer.
func (l *TransactionLogic) BuildExplorerUrl(txHash string) string {
	return chain.ExplorerLink(l.svcCtx.Config.Chain.ExplorerUrl, "tx", txHash)
}

// outcome labels a send for metrics.
func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return string(errorx.KindOf(err))
}
