package transaction

import (
	"fmt"
	"math/big"

	"walletapi/internal/chain"
	"walletapi/internal/constant"
	"walletapi/internal/errorx"
	"walletapi/internal/metrics"
	"walletapi/internal/types"

	evmTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/zeromicro/go-zero/core/mr"
)

// SendTokens signs and broadcasts a legacy native transfer.
//
// Inputs are validated before any RPC. Nonce and gas price are read fresh for
// every call and nothing coordinates concurrent sends from the same key: two
// racing sends may pick the same nonce and the network accepts at most one.
// No step is retried; retry policy belongs to the caller.
func (l *TransactionLogic) SendTokens(req *types.SendTokensReq) (resp *types.SendTokensResp, err error) {
	defer func() {
		metrics.SendsTotal.WithLabelValues(outcome(err)).Inc()
	}()

	// 1. validate inputs
	privateKey, err := chain.ParsePrivateKey(req.FromPrivateKey)
	if err != nil {
		return nil, errorx.New(errorx.KindInvalidPrivateKey, "Invalid private key")
	}
	toAddr, ok := chain.ParseAddress(req.ToAddress)
	if !ok {
		return nil, errorx.New(errorx.KindInvalidDestinationAddress, "Invalid destination address: "+req.ToAddress)
	}
	amount, err := chain.ParseUnits(req.Amount, constant.NativeDecimals)
	if err != nil {
		return nil, errorx.Wrap(errorx.KindInvalidAmount, fmt.Sprintf("Invalid amount %q", req.Amount), err)
	}
	fromAddr := crypto.PubkeyToAddress(privateKey.PublicKey)
	l.Infof("send %s wei from %s to %s", amount.String(), fromAddr.Hex(), toAddr.Hex())

	// 2. balance check
	balance, err := l.svcCtx.Chain.BalanceAt(l.ctx, fromAddr, nil)
	if err != nil {
		l.Errorf("fetch balance failed: %v", err)
		return nil, errorx.Provider("fetch balance", err)
	}
	if balance.Cmp(amount) < 0 {
		return nil, &errorx.InsufficientBalanceError{
			Current:   chain.FormatUnits(balance, constant.NativeDecimals),
			Requested: chain.FormatUnits(amount, constant.NativeDecimals),
		}
	}

	// 3. gas price and nonce are independent reads
	var (
		gasPrice *big.Int
		nonce    uint64
	)
	err = mr.Finish(func() error {
		price, err := l.svcCtx.Chain.SuggestGasPrice(l.ctx)
		if err != nil {
			return errorx.Provider("fetch gas price", err)
		}
		gasPrice = price
		return nil
	}, func() error {
		n, err := l.svcCtx.Chain.PendingNonceAt(l.ctx, fromAddr)
		if err != nil {
			return errorx.Provider("fetch nonce", err)
		}
		nonce = n
		return nil
	})
	if err != nil {
		l.Errorf("prepare transaction failed: %v", err)
		return nil, err
	}
	l.Infof("nonce: %d, gas price: %s", nonce, gasPrice.String())

	// 4. assemble
	tx := evmTypes.NewTx(&evmTypes.LegacyTx{
		Nonce:    nonce,
		To:       &toAddr,
		Value:    amount,
		Gas:      constant.NativeTransferGasLimit,
		GasPrice: gasPrice,
		Data:     nil,
	})

	// 5. sign with the network's chain id bound in
	chainID, err := l.svcCtx.Chain.ChainID(l.ctx)
	if err != nil {
		l.Errorf("fetch chain id failed: %v", err)
		return nil, errorx.Provider("fetch chain id", err)
	}
	signedTx, err := evmTypes.SignTx(tx, evmTypes.NewEIP155Signer(chainID), privateKey)
	if err != nil {
		l.Errorf("sign transaction failed: %v", err)
		return nil, errorx.Provider("sign transaction", err)
	}
	raw, err := signedTx.MarshalBinary()
	if err != nil {
		return nil, errorx.Provider("sign transaction", err)
	}
	txHash := signedTx.Hash().Hex()
	l.Infof("signed transaction %s, chain id %s, %d bytes", txHash, chainID.String(), len(raw))

	// 6. broadcast
	if err := l.svcCtx.Chain.SendTransaction(l.ctx, signedTx); err != nil {
		l.Errorf("broadcast %s failed: %v", txHash, err)
		return nil, errorx.Provider("broadcast transaction", err)
	}
	l.Infof("transaction %s broadcast", txHash)

	return &types.SendTokensResp{
		TransactionHash: txHash,
		FromAddress:     fromAddr.Hex(),
		ToAddress:       toAddr.Hex(),
		Amount:          req.Amount,
		GasUsed:         nil,
		ExplorerUrl:     l.BuildExplorerUrl(txHash),
	}, nil
}
