package types

// CreateWalletResp is returned once; the server keeps no copy of it.
type CreateWalletResp struct {
	Address    string `json:"address"`
	PrivateKey string `json:"private_key"`
	Mnemonic   string `json:"mnemonic"`
}

type AddressReq struct {
	Address string `path:"address"`
}

type BalanceResp struct {
	Balance string `json:"balance"`
}

// WalletInfoResp is a best-effort account snapshot. Balance, Nonce and
// IsContract are null when their fetch failed; Degraded is then true and
// Unavailable names the missing fields.
type WalletInfoResp struct {
	Address         string   `json:"address"`
	ChecksumAddress string   `json:"checksum_address"`
	IsChecksumValid bool     `json:"is_checksum_valid"`
	Balance         *string  `json:"balance"`
	Nonce           *uint64  `json:"nonce"`
	IsContract      *bool    `json:"is_contract"`
	Network         string   `json:"network"`
	ExplorerUrl     string   `json:"explorer_url"`
	Degraded        bool     `json:"degraded"`
	Unavailable     []string `json:"unavailable,omitempty"`
}

type HealthResp struct {
	Status  string `json:"status"`
	Network string `json:"network"`
}
