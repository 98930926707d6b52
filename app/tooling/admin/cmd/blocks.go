package cmd

import (
	"fmt"
	"strconv"

	"github.com/ardanlabs/powsim/foundation/blockchain/database"
	"github.com/spf13/cobra"
)

var blocksCmd = &cobra.Command{
	Use:   "blocks [count]",
	Short: "Print the last blocks of a running node.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/v1/blocks/list"
		if len(args) == 1 {
			if _, err := strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("count must be a number: %w", err)
			}
			path += "/" + args[0]
		}

		var blocks []database.BlockData
		if err := get(path, &blocks); err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for _, block := range blocks {
			fmt.Fprintf(w, "Block #%-3d | Hash: %s | Nonce: %s | Valid: %t | Miner: %s\n", block.Index, block.Hash, block.Nonce, block.IsValid, block.Trans[0].Recipient)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(blocksCmd)
}
