package cmd

import (
	"fmt"
	"io"
	"math"

	"github.com/ardanlabs/powsim/foundation/blockchain/chain"
	"github.com/ardanlabs/powsim/foundation/node"
	"github.com/spf13/cobra"
)

var (
	blocks   int
	ceiling  int32
	attempts int
	minerID  string
)

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine blocks on a local chain and print the result.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return mine(cmd.OutOrStdout(), minerID, blocks, ceiling, attempts)
	},
}

func init() {
	rootCmd.AddCommand(mineCmd)
	mineCmd.Flags().IntVarP(&blocks, "blocks", "b", 5, "Number of blocks to mine.")
	mineCmd.Flags().Int32VarP(&ceiling, "ceiling", "c", math.MaxInt32, "Proof of work ceiling, larger is easier.")
	mineCmd.Flags().IntVarP(&attempts, "attempts", "a", 1_000_000, "Maximum attempts per block.")
	mineCmd.Flags().StringVarP(&minerID, "miner", "m", "", "Id credited for the blocks, random when empty.")
}

// mine grows a fresh chain by the number of blocks. Unlike the node, the
// attempts per block are bounded so an impossible ceiling ends in an error.
func mine(w io.Writer, id string, blocks int, ceiling int32, attempts int) error {
	n := node.New(node.Config{
		ID:    id,
		Chain: chain.NewConfig(ceiling, 0),
		Out:   w,
	})
	bc := n.Blockchain()

	for i := range blocks {
		var tries int
		for !bc.TryMineBlock(n.ID()) {
			tries++
			if tries >= attempts {
				return fmt.Errorf("block %d not mined after %d attempts with ceiling %d", i+1, attempts, ceiling)
			}
		}
	}

	n.PrintChain()

	return nil
}
