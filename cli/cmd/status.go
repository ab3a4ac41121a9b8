package cmd

import (
	"fmt"
	"net/url"
	"strconv"

	"walletapi/internal/types"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <tx_hash>",
	Short: "查询交易状态 (pending/failed/success)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp types.TxStatusResp
		if err := newApiClient().get(cmd.Context(), "/transaction-status/"+segment(args[0]), &resp); err != nil {
			return err
		}
		return printJSON(resp)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history <address>",
	Short: "列出地址的历史交易",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		offset, _ := cmd.Flags().GetInt("offset")
		sort, _ := cmd.Flags().GetString("sort")

		query := url.Values{}
		if page > 0 {
			query.Set("page", strconv.Itoa(page))
		}
		if offset > 0 {
			query.Set("offset", strconv.Itoa(offset))
		}
		if sort != "" {
			query.Set("sort", sort)
		}
		path := "/transactions/" + segment(args[0])
		if len(query) > 0 {
			path += "?" + query.Encode()
		}

		var resp types.TransactionsResp
		if err := newApiClient().get(cmd.Context(), path, &resp); err != nil {
			return err
		}
		for _, tx := range resp.Transactions {
			mark := "ok"
			if tx.IsError {
				mark = "failed"
			}
			fmt.Printf("%s  block %s  %s -> %s  %s  %s\n", tx.Hash, tx.BlockNumber, tx.From, tx.To, tx.Value, mark)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Int("page", 0, "page number")
	historyCmd.Flags().Int("offset", 0, "page size")
	historyCmd.Flags().String("sort", "", "asc or desc")
}
