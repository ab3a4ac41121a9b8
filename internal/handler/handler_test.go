package handler

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"walletapi/internal/chain/chaintest"
	"walletapi/internal/config"
	"walletapi/internal/explorer"
	"walletapi/internal/svc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/go-zero/rest/pathvar"
)

const (
	senderKey = "1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727"
	recipient = "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
	txHash    = "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"
)

func TestMain(m *testing.M) {
	httpx.SetErrorHandlerCtx(ErrorHandler)
	os.Exit(m.Run())
}

func newSvcCtx(p *chaintest.Provider) *svc.ServiceContext {
	return &svc.ServiceContext{
		Config: config.Config{
			Chain: config.ChainConf{
				NetworkName: "Polygon",
				ExplorerUrl: "https://polygonscan.com",
			},
		},
		Chain:    p,
		Explorer: explorer.NewClient("", ""),
	}
}

func serve(h http.HandlerFunc, r *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	h(w, r)

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func withVar(r *http.Request, key, value string) *http.Request {
	return pathvar.WithVars(r, map[string]string{key: value})
}

func TestCreateWalletHandler(t *testing.T) {
	p := &chaintest.Provider{}
	r := httptest.NewRequest(http.MethodPost, "/create-wallet", nil)

	w, body := serve(CreateWalletHandler(newSvcCtx(p)), r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, body["address"])
	assert.NotEmpty(t, body["private_key"])
	assert.Len(t, strings.Fields(body["mnemonic"].(string)), 12)
	assert.Zero(t, p.TotalCalls())
}

func TestBalanceHandler(t *testing.T) {
	p := &chaintest.Provider{Balance: big.NewInt(2_000_000_000_000_000_000)}
	r := withVar(httptest.NewRequest(http.MethodGet, "/balance/"+recipient, nil), "address", recipient)

	w, body := serve(BalanceHandler(newSvcCtx(p)), r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2.000000000000000000", body["balance"])
}

func TestBalanceHandlerInvalidAddress(t *testing.T) {
	p := &chaintest.Provider{}
	r := withVar(httptest.NewRequest(http.MethodGet, "/balance/not-an-address", nil), "address", "not-an-address")

	w, body := serve(BalanceHandler(newSvcCtx(p)), r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "InvalidAddress", body["kind"])
	assert.Contains(t, body["error"], "not-an-address")
	assert.Zero(t, p.TotalCalls())
}

func TestBalanceHandlerProviderError(t *testing.T) {
	p := &chaintest.Provider{BalanceErr: errors.New("503 service unavailable")}
	r := withVar(httptest.NewRequest(http.MethodGet, "/balance/"+recipient, nil), "address", recipient)

	w, body := serve(BalanceHandler(newSvcCtx(p)), r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "ProviderError", body["kind"])
	assert.Equal(t, "failed to fetch balance: 503 service unavailable", body["error"])
}

func TestWalletInfoHandlerDegraded(t *testing.T) {
	p := &chaintest.Provider{NonceErr: errors.New("timeout")}
	r := withVar(httptest.NewRequest(http.MethodGet, "/wallet-info/"+recipient, nil), "address", recipient)

	w, body := serve(WalletInfoHandler(newSvcCtx(p)), r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["degraded"])
	assert.Nil(t, body["nonce"])
	assert.Equal(t, "0.000000000000000000", body["balance"])
	assert.Equal(t, []any{"nonce"}, body["unavailable"])
}

func sendRequest(payload string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/send-tokens", strings.NewReader(payload))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestSendTokensHandler(t *testing.T) {
	p := &chaintest.Provider{
		Balance:  big.NewInt(1_000_000_000_000_000_000),
		Nonce:    5,
		GasPrice: big.NewInt(30_000_000_000),
		ChainId:  big.NewInt(137),
	}
	r := sendRequest(`{"from_private_key":"` + senderKey + `","to_address":"` + recipient + `","amount":"0.1"}`)

	w, body := serve(SendTokensHandler(newSvcCtx(p)), r)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, p.Sent(), 1)
	assert.Equal(t, p.Sent()[0].Hash().Hex(), body["transaction_hash"])
	assert.Equal(t, "0.1", body["amount"])
	assert.Contains(t, body, "gas_used")
	assert.Nil(t, body["gas_used"])
}

func TestSendTokensHandlerInsufficientBalance(t *testing.T) {
	p := &chaintest.Provider{Balance: big.NewInt(1000)}
	r := sendRequest(`{"from_private_key":"` + senderKey + `","to_address":"` + recipient + `","amount":"0.1"}`)

	w, body := serve(SendTokensHandler(newSvcCtx(p)), r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "InsufficientBalance", body["kind"])
	assert.Equal(t, "0.000000000000001000", body["current_balance"])
	assert.Equal(t, "0.100000000000000000", body["requested_amount"])
	assert.Zero(t, p.Calls("SendTransaction"))
}

func TestSendTokensHandlerBadRequests(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		kind    string
	}{
		{"malformed json", `{"from_private_key":`, "InvalidRequest"},
		{"missing amount", `{"from_private_key":"` + senderKey + `","to_address":"` + recipient + `"}`, "InvalidRequest"},
		{"bad key", `{"from_private_key":"xyz","to_address":"` + recipient + `","amount":"1"}`, "InvalidPrivateKey"},
		{"bad amount", `{"from_private_key":"` + senderKey + `","to_address":"` + recipient + `","amount":"1,5"}`, "InvalidAmount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &chaintest.Provider{}

			w, body := serve(SendTokensHandler(newSvcCtx(p)), sendRequest(tt.payload))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.kind, body["kind"])
			assert.Zero(t, p.TotalCalls())
		})
	}
}

func TestTransactionStatusHandlerPending(t *testing.T) {
	p := &chaintest.Provider{}
	r := withVar(httptest.NewRequest(http.MethodGet, "/transaction-status/"+txHash, nil), "tx_hash", txHash)

	w, body := serve(TransactionStatusHandler(newSvcCtx(p)), r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pending", body["status"])
	assert.NotContains(t, body, "confirmations")
}

func TestTransactionStatusHandlerInvalidHash(t *testing.T) {
	p := &chaintest.Provider{}
	r := withVar(httptest.NewRequest(http.MethodGet, "/transaction-status/0x12", nil), "tx_hash", "0x12")

	w, body := serve(TransactionStatusHandler(newSvcCtx(p)), r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "InvalidTransactionHash", body["kind"])
}

func TestTransactionsHandlerNotConfigured(t *testing.T) {
	r := withVar(httptest.NewRequest(http.MethodGet, "/transactions/"+recipient, nil), "address", recipient)

	w, body := serve(TransactionsHandler(newSvcCtx(&chaintest.Provider{})), r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "ExplorerError", body["kind"])
}

func TestHealthHandler(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/health", nil)

	w, body := serve(HealthHandler(newSvcCtx(&chaintest.Provider{})), r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "Polygon", body["network"])
}
