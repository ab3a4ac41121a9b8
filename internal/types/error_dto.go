package types

// ErrorResp is the body of every non-200 answer. The balance fields are only
// set for InsufficientBalance.
type ErrorResp struct {
	Error           string `json:"error"`
	Kind            string `json:"kind"`
	CurrentBalance  string `json:"current_balance,omitempty"`
	RequestedAmount string `json:"requested_amount,omitempty"`
}
