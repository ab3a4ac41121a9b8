package cmd

import (
	"fmt"

	"walletapi/internal/types"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <address>",
	Short: "查询地址的原生代币余额",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp types.BalanceResp
		if err := newApiClient().get(cmd.Context(), "/balance/"+segment(args[0]), &resp); err != nil {
			return err
		}
		fmt.Println(resp.Balance)
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <address>",
	Short: "查询地址的余额、nonce 以及是否为合约",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp types.WalletInfoResp
		if err := newApiClient().get(cmd.Context(), "/wallet-info/"+segment(args[0]), &resp); err != nil {
			return err
		}
		return printJSON(resp)
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(infoCmd)
}
