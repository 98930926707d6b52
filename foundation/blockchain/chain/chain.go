// Package chain maintains the ordered set of blocks anchored by the genesis
// block and performs the mining attempts that grow it.
package chain

import (
	"sync"

	"github.com/ardanlabs/powsim/foundation/blockchain/database"
)

// EventHandler defines a function that is called when events
// occur in the processing of mining blocks.
type EventHandler func(v string, args ...any)

// Option changes the default construction of a Blockchain.
type Option func(bc *Blockchain)

// WithEvents registers the handler for chain events.
func WithEvents(ev EventHandler) Option {
	return func(bc *Blockchain) {
		if ev != nil {
			bc.evHandler = ev
		}
	}
}

// =============================================================================

// Blockchain manages the blocks that have been mined. There is a single
// writer, the miner, so the mutex only exists for concurrent readers.
type Blockchain struct {
	mu        sync.RWMutex
	blocks    []database.Block
	cfg       Config
	evHandler EventHandler
}

// New constructs a chain holding only the genesis block.
func New(cfg Config, options ...Option) *Blockchain {
	bc := Blockchain{
		blocks:    []database.Block{database.Genesis()},
		cfg:       cfg,
		evHandler: func(v string, args ...any) {},
	}

	for _, option := range options {
		option(&bc)
	}

	return &bc
}

// Config returns the mining parameters of the chain.
func (bc *Blockchain) Config() Config {
	return bc.cfg
}

// LatestBlock returns the most recently appended block.
func (bc *Blockchain) LatestBlock() database.Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return bc.blocks[len(bc.blocks)-1]
}

// TryMineBlock builds the next block crediting the miner and performs a
// single proof of work attempt. The block is only appended when the attempt
// succeeds. A false return means try again, not a failure.
func (bc *Blockchain) TryMineBlock(minerID string) bool {
	bc.mu.RLock()
	index := uint64(len(bc.blocks))
	prevBlockHash := bc.blocks[len(bc.blocks)-1].Hash()
	bc.mu.RUnlock()

	// A coinbase is always provided so this can't fail.
	block, err := database.NewBlock(index, []database.Tx{database.NewCoinbaseTx(minerID)}, prevBlockHash)
	if err != nil {
		panic(err)
	}

	if !block.TryNonce(bc.cfg.Ceiling) {
		return false
	}

	bc.mu.Lock()
	bc.blocks = append(bc.blocks, block)
	bc.mu.Unlock()

	bc.evHandler("chain: TryMineBlock: appended: blk[%d]: hash[%s]: miner[%s]", block.Index, block.Hash(), minerID)

	return true
}

// LastNBlocks returns up to the last n blocks, oldest first. When n is
// larger than the chain, the whole chain is returned.
func (bc *Blockchain) LastNBlocks(n int) []database.Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if n <= 0 {
		return []database.Block{}
	}

	start := max(len(bc.blocks)-n, 0)

	blocks := make([]database.Block, len(bc.blocks)-start)
	copy(blocks, bc.blocks[start:])

	return blocks
}

// Len returns the number of blocks including the genesis block.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return len(bc.blocks)
}

// IsEmpty reports if the chain has no blocks. The genesis block makes this
// false for any chain constructed with New.
func (bc *Blockchain) IsEmpty() bool {
	return bc.Len() == 0
}
