package constant

// DerivationPath is the BIP-44 path used for every generated or recovered wallet.
const DerivationPath = "m/44'/60'/0'/0/0"

// MnemonicEntropyBits yields a 12-word mnemonic.
const MnemonicEntropyBits = 128

// NativeDecimals is the number of fractional digits of the native currency.
const NativeDecimals = 18

// NativeTransferGasLimit is the intrinsic gas of a plain value transfer.
const NativeTransferGasLimit uint64 = 21000

type TxStatus string

const (
	TxStatusPending TxStatus = "pending"
	TxStatusSuccess TxStatus = "success"
	TxStatusFailed  TxStatus = "failed"
)

// Wallet-info fields that may be reported as unavailable.
const (
	FieldBalance    = "balance"
	FieldNonce      = "nonce"
	FieldIsContract = "is_contract"
)
