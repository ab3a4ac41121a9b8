package cmd

import (
	"errors"

	"walletapi/internal/types"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "发送原生代币",
	Long:  `通过 walletapi 签名并广播一笔原生代币转账。私钥可以用 --key 或环境变量 WALLET_KEY 提供。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		to, _ := cmd.Flags().GetString("to")
		amount, _ := cmd.Flags().GetString("amount")
		key := viper.GetString("key")
		if key == "" {
			return errors.New("private key is required, use --key or WALLET_KEY")
		}

		var resp types.SendTokensResp
		err := newApiClient().post(cmd.Context(), "/send-tokens", &types.SendTokensReq{
			FromPrivateKey: key,
			ToAddress:      to,
			Amount:         amount,
		}, &resp)
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().String("key", "", "sender private key (hex)")
	sendCmd.Flags().String("to", "", "destination address")
	sendCmd.Flags().String("amount", "", "amount in display units, e.g. 0.1")
	_ = sendCmd.MarkFlagRequired("to")
	_ = sendCmd.MarkFlagRequired("amount")
	_ = viper.BindPFlag("key", sendCmd.Flags().Lookup("key"))
}
