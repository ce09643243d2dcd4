package cmd

import (
	"fmt"
	"strings"

	"github.com/ruheeh/waterchatbot/internal/query"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question about the dataset",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		engine := query.New(store)
		resp := engine.Query(strings.Join(args, " "))
		printResponse(resp)
		return nil
	},
}

// printResponse writes the explanation and result table, truncating long
// tables to the configured display limit.
func printResponse(resp query.Response) {
	fmt.Println(resp.Explanation)
	if resp.Table == nil || resp.Table.Len() == 0 {
		return
	}
	fmt.Println()
	limit := 25
	if cfg != nil && cfg.MaxDisplayRows > 0 {
		limit = cfg.MaxDisplayRows
	}
	if resp.Table.Len() > limit {
		fmt.Println(resp.Table.Head(limit).Render())
		fmt.Printf("... %d more rows\n", resp.Table.Len()-limit)
		return
	}
	fmt.Println(resp.Table.Render())
}

func init() {
	rootCmd.AddCommand(askCmd)
}
