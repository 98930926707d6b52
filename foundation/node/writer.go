package node

import (
	"fmt"
	"strings"
)

// PrintChain writes the status of the last blocks of the chain.
func (n *Node) PrintChain() {
	blocks := n.bc.LastNBlocks(statusBlocks)
	line := strings.Repeat("━", 53)

	fmt.Fprintln(n.out, line)
	fmt.Fprintf(n.out, "%s - Chain Status (Last %d blocks)\n", n.id, len(blocks))
	fmt.Fprintln(n.out, line)

	for _, block := range blocks {
		hash := block.Hash()
		nonce := fmt.Sprintf("%016x", block.Nonce)

		valid := "✗"
		if block.IsValid {
			valid = "✓"
		}

		fmt.Fprintf(n.out, "Block #%-3d | Hash: ...%s | Nonce: ...%s | Valid: %s\n", block.Index, hash[len(hash)-8:], nonce[len(nonce)-8:], valid)
	}

	fmt.Fprintln(n.out, line)
	fmt.Fprintln(n.out)
}
