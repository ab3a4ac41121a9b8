package handler

import (
	"net/http"
	"time"

	"walletapi/internal/svc"

	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	httpx.SetErrorHandlerCtx(ErrorHandler)

	server.AddRoutes(
		[]rest.Route{
			// --- Wallet Routes ---
			{
				Method:  http.MethodPost,
				Path:    "/create-wallet",
				Handler: CreateWalletHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/create-wallet",
				Handler: CreateWalletHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/generate-wallet",
				Handler: CreateWalletHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/wallet",
				Handler: CreateWalletHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/balance/:address",
				Handler: BalanceHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/get-balance/:address",
				Handler: BalanceHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/wallet-info/:address",
				Handler: WalletInfoHandler(serverCtx),
			},
			// --- Transaction Routes ---
			{
				Method:  http.MethodPost,
				Path:    "/send-tokens",
				Handler: SendTokensHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/transaction-status/:tx_hash",
				Handler: TransactionStatusHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/transactions/:address",
				Handler: TransactionsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/health",
				Handler: HealthHandler(serverCtx),
			},
		},
		rest.WithTimeout(30000*time.Millisecond),
	)
}
