package cmd

import (
	"fmt"
	"strings"

	"walletapi/internal/keys"

	"github.com/spf13/cobra"
)

// newCmd 代表 new 命令
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "在本地创建一个新的钱包",
	Long:  `生成一个新的 12 词 BIP-39 助记词，并按 m/44'/60'/0'/0/0 派生地址和私钥。不需要连接服务。`,
	Run: func(cmd *cobra.Command, args []string) {
		printWallet(keys.Generate())
	},
}

var recoverCmd = &cobra.Command{
	Use:   "recover <mnemonic words...>",
	Short: "用助记词恢复钱包",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := keys.FromMnemonic(strings.Join(args, " "))
		if err != nil {
			return err
		}
		printWallet(w)
		return nil
	},
}

func printWallet(w *keys.Wallet) {
	fmt.Println("---------------------------------------------------")
	fmt.Printf("Address:     %s\n", w.Address)
	fmt.Printf("Private key: %s\n", w.PrivateKey)
	fmt.Printf("Mnemonic:    %s\n", w.Mnemonic)
	fmt.Println("---------------------------------------------------")
	fmt.Println("请妥善保管您的助记词！任何拥有助记词的人都可以控制该钱包的所有资产。")
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(recoverCmd)
}
