// Package database defines the transaction and block values that make up
// the blockchain and the proof of work performed on a block.
package database

import (
	"errors"
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/ardanlabs/powsim/foundation/blockchain/signature"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ErrNoTransactions is returned when a block is constructed without
// any transactions.
var ErrNoTransactions = errors.New("block requires at least one transaction")

// genesisRecipient is the account credited with the genesis coinbase.
const genesisRecipient = "genesis"

// hashPrefix is the number of leading hex characters that are read as the
// proof value of a hash.
const hashPrefix = 8

// =============================================================================

// Block represents a group of transactions batched together.
type Block struct {
	Index         uint64 // Ethereum: Block number in the chain.
	Trans         []Tx   // Transactions in the block, in hashing order.
	Nonce         uint64 // Bitcoin: Value identified to solve the hash solution.
	PrevBlockHash string // Bitcoin: Hash of the previous block in the chain.
	IsValid       bool   // Set once the proof of work is solved.
}

// NewBlock constructs a block that still needs its proof of work.
func NewBlock(index uint64, trans []Tx, prevBlockHash string) (Block, error) {
	if len(trans) == 0 {
		return Block{}, ErrNoTransactions
	}

	b := Block{
		Index:         index,
		Trans:         trans,
		Nonce:         0,
		PrevBlockHash: prevBlockHash,
		IsValid:       false,
	}

	return b, nil
}

// Genesis constructs the first block of every chain. It is the only block
// that is valid without a proof of work.
func Genesis() Block {
	return Block{
		Index:         0,
		Trans:         []Tx{NewCoinbaseTx(genesisRecipient)},
		Nonce:         0,
		PrevBlockHash: signature.ZeroHash,
		IsValid:       true,
	}
}

// Hash returns the unique hash for the Block. Only the transactions, the
// previous block hash and the nonce take part.
func (b Block) Hash() string {
	parts := make([]string, 0, len(b.Trans)+2)
	for _, tx := range b.Trans {
		parts = append(parts, tx.Hash())
	}
	parts = append(parts, b.PrevBlockHash, strconv.FormatUint(b.Nonce, 10))

	return signature.Hash(parts...)
}

// TryNonce performs a single proof of work attempt with a random nonce.
// Pointer semantics are being used since the nonce is overwritten even when
// the attempt fails.
func (b *Block) TryNonce(ceiling int32) bool {
	b.Nonce = rand.Uint64()

	if HashValue(b.Hash()) >= ceiling {
		return false
	}

	b.IsValid = true
	return true
}

// HashValue reads the leading 8 hex characters of a hash as a signed 32 bit
// number. Prefixes that don't fit in an int32 saturate to math.MaxInt32.
func HashValue(hash string) int32 {
	v, err := strconv.ParseInt(hash[:hashPrefix], 16, 32)
	if err != nil {
		return math.MaxInt32
	}

	return int32(v)
}

// =============================================================================

// BlockData represents what is exposed about a block to the outside.
type BlockData struct {
	Hash          string         `json:"hash"`
	Index         uint64         `json:"index"`
	PrevBlockHash string         `json:"prev_block_hash"`
	Nonce         hexutil.Uint64 `json:"nonce"`
	IsValid       bool           `json:"is_valid"`
	Trans         []Tx           `json:"trans"`
}

// NewBlockData constructs the value to serialize for a block.
func NewBlockData(block Block) BlockData {
	return BlockData{
		Hash:          block.Hash(),
		Index:         block.Index,
		PrevBlockHash: block.PrevBlockHash,
		Nonce:         hexutil.Uint64(block.Nonce),
		IsValid:       block.IsValid,
		Trans:         block.Trans,
	}
}
