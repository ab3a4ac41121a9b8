package types

// SendTokensReq transfers Amount, expressed in the native display unit
// (e.g. "0.1"), from the key's address to ToAddress.
type SendTokensReq struct {
	FromPrivateKey string `json:"from_private_key"`
	ToAddress      string `json:"to_address"`
	Amount         string `json:"amount"`
}

// SendTokensResp reports a broadcast transaction. GasUsed is always null at
// send time since it is only known once the transaction is mined.
type SendTokensResp struct {
	TransactionHash string  `json:"transaction_hash"`
	FromAddress     string  `json:"from_address"`
	ToAddress       string  `json:"to_address"`
	Amount          string  `json:"amount"`
	GasUsed         *string `json:"gas_used"`
	ExplorerUrl     string  `json:"explorer_url"`
}

type TxStatusReq struct {
	TxHash string `path:"tx_hash"`
}

type TxStatusResp struct {
	Hash          string  `json:"hash"`
	Status        string  `json:"status"`
	BlockNumber   *uint64 `json:"block_number,omitempty"`
	GasUsed       *uint64 `json:"gas_used,omitempty"`
	Confirmations *uint64 `json:"confirmations,omitempty"`
	ExplorerUrl   string  `json:"explorer_url"`
}

type TransactionsReq struct {
	Address string `path:"address"`
	Page    int    `form:"page,optional"`
	Offset  int    `form:"offset,optional"`
	Sort    string `form:"sort,optional,options=asc|desc"`
}

type ExplorerTx struct {
	Hash          string `json:"hash"`
	BlockNumber   string `json:"block_number"`
	Timestamp     string `json:"timestamp"`
	From          string `json:"from"`
	To            string `json:"to"`
	Value         string `json:"value"`
	ValueWei      string `json:"value_wei"`
	GasUsed       string `json:"gas_used"`
	GasPrice      string `json:"gas_price"`
	Nonce         string `json:"nonce"`
	IsError       bool   `json:"is_error"`
	Confirmations string `json:"confirmations"`
}

type TransactionsResp struct {
	Address      string       `json:"address"`
	Network      string       `json:"network"`
	Transactions []ExplorerTx `json:"transactions"`
}
