package database

import (
	"fmt"

	"github.com/ardanlabs/powsim/foundation/blockchain/signature"
)

// MiningReward is the amount credited to the miner of every block.
const MiningReward uint64 = 50

// =============================================================================

// Tx is the coinbase transaction that rewards a miner for a block. There
// is no sender, balance or fee.
type Tx struct {
	Amount    uint64 `json:"amount"`    // Bitcoin: Value created by the coinbase.
	Recipient string `json:"recipient"` // Bitcoin: Miner receiving the reward.
}

// NewCoinbaseTx constructs the reward transaction for the specified miner.
func NewCoinbaseTx(recipient string) Tx {
	return Tx{
		Amount:    MiningReward,
		Recipient: recipient,
	}
}

// Hash returns the unique hash for the transaction.
func (tx Tx) Hash() string {
	return signature.Hash(fmt.Sprintf("%d:%s", tx.Amount, tx.Recipient))
}

// String implements the fmt.Stringer interface for logging.
func (tx Tx) String() string {
	return fmt.Sprintf("%s:%d", tx.Recipient, tx.Amount)
}
