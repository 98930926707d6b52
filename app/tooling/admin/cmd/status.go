package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the status of a running node.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var st struct {
			ID          string `json:"id"`
			Ceiling     int32  `json:"ceiling"`
			Delay       string `json:"delay"`
			Difficulty  string `json:"difficulty"`
			Length      int    `json:"length"`
			Subscribers int    `json:"subscribers"`
			LatestBlock struct {
				Hash  string `json:"hash"`
				Index uint64 `json:"index"`
			} `json:"latest_block"`
		}

		if err := get("/v1/node/status", &st); err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Node:        %s\n", st.ID)
		fmt.Fprintf(w, "Ceiling:     %d (%s)\n", st.Ceiling, st.Difficulty)
		fmt.Fprintf(w, "Delay:       %s\n", st.Delay)
		fmt.Fprintf(w, "Length:      %d\n", st.Length)
		fmt.Fprintf(w, "Latest:      #%d %s\n", st.LatestBlock.Index, st.LatestBlock.Hash)
		fmt.Fprintf(w, "Subscribers: %d\n", st.Subscribers)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
