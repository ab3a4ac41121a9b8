// Package explorer reads address history from an Etherscan-compatible API.
package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/zeromicro/go-zero/rest/httpc"
)

var ErrNotConfigured = errors.New("explorer api url is not configured")

// Tx is one entry of the account txlist endpoint. Numeric values stay strings
// as the API returns them.
type Tx struct {
	BlockNumber     string `json:"blockNumber"`
	TimeStamp       string `json:"timeStamp"`
	Hash            string `json:"hash"`
	Nonce           string `json:"nonce"`
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"`
	Gas             string `json:"gas"`
	GasPrice        string `json:"gasPrice"`
	GasUsed         string `json:"gasUsed"`
	IsError         string `json:"isError"`
	TxReceiptStatus string `json:"txreceipt_status"`
	ContractAddress string `json:"contractAddress"`
	Confirmations   string `json:"confirmations"`
}

type Query struct {
	Address string
	Page    int
	Offset  int
	Sort    string
}

type Client struct {
	apiUrl string
	apiKey string
}

func NewClient(apiUrl, apiKey string) *Client {
	return &Client{apiUrl: apiUrl, apiKey: apiKey}
}

func (c *Client) Enabled() bool {
	return c != nil && c.apiUrl != ""
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// Transactions lists normal transactions of an address, newest first unless
// q.Sort says otherwise.
func (c *Client) Transactions(ctx context.Context, q Query) ([]Tx, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}

	u, err := url.Parse(c.apiUrl)
	if err != nil {
		return nil, fmt.Errorf("parse explorer url: %w", err)
	}
	params := u.Query()
	params.Set("module", "account")
	params.Set("action", "txlist")
	params.Set("address", q.Address)
	params.Set("startblock", "0")
	params.Set("endblock", "99999999")
	params.Set("sort", sortOrder(q.Sort))
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Offset > 0 {
		params.Set("offset", strconv.Itoa(q.Offset))
	}
	if c.apiKey != "" {
		params.Set("apikey", c.apiKey)
	}
	u.RawQuery = params.Encode()

	resp, err := httpc.Do(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("call explorer api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read explorer response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("explorer api error %d: %s", resp.StatusCode, string(body))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("parse explorer response: %w", err)
	}

	var txs []Tx
	if err := json.Unmarshal(env.Result, &txs); err != nil {
		// on failure the API puts a message string into result
		var msg string
		if json.Unmarshal(env.Result, &msg) == nil {
			return nil, fmt.Errorf("explorer api: %s: %s", env.Message, msg)
		}
		return nil, fmt.Errorf("parse explorer result: %w", err)
	}
	if txs == nil {
		txs = []Tx{}
	}
	return txs, nil
}

func sortOrder(s string) string {
	if s == "asc" {
		return "asc"
	}
	return "desc"
}
