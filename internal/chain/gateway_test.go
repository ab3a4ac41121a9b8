package chain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcRequest struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
}

// rpcServer answers single JSON-RPC calls from a method -> result table.
func rpcServer(t *testing.T, results map[string]string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		result, ok := results[req.Method]
		if !ok {
			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,"error":{"code":-32601,"message":"method not found"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,"result":` + result + `}`))
	}))
}

func TestNewGatewayRequiresUrl(t *testing.T) {
	_, err := NewGateway("", time.Second)
	assert.ErrorIs(t, err, ErrNoRpcUrl)
}

func TestGatewayCalls(t *testing.T) {
	srv := rpcServer(t, map[string]string{
		"eth_blockNumber": `"0x10"`,
		"eth_chainId":     `"0x89"`,
		"eth_getBalance":  `"0xde0b6b3a7640000"`,
	})
	defer srv.Close()

	g, err := NewGateway(srv.URL, 5*time.Second)
	require.NoError(t, err)
	defer g.Close()

	ctx := context.Background()
	head, err := g.BlockNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(16), head)

	chainID, err := g.ChainID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "137", chainID.String())

	balance, err := g.BalanceAt(ctx, common.HexToAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"), nil)
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", balance.String())

	_, err = g.SuggestGasPrice(ctx)
	assert.ErrorContains(t, err, "method not found")
}

func TestGatewayBadUrl(t *testing.T) {
	g, err := NewGateway("ftp://example.com", time.Second)
	require.NoError(t, err)

	_, err = g.BlockNumber(context.Background())
	assert.ErrorContains(t, err, "connect")

	g.Close()
	g.Close()
}
