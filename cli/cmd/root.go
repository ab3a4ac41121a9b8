package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd 代表基础命令，没有子命令时直接调用
var rootCmd = &cobra.Command{
	Use:   "walletctl",
	Short: "walletapi 命令行客户端",
	Long: `walletctl 在本地生成或恢复钱包，并调用 walletapi 服务查询余额、
发送原生代币以及跟踪交易状态。`,
	SilenceUsage: true,
}

// Execute 将所有子命令添加到根命令并设置标志
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.walletctl.yaml)")
	rootCmd.PersistentFlags().String("api", "http://localhost:8888", "walletapi base url")
	_ = viper.BindPFlag("api", rootCmd.PersistentFlags().Lookup("api"))
}

// initConfig reads the optional config file and WALLET_* environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".walletctl")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("wallet")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "read config: %v\n", err)
		}
	}
}
