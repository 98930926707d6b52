package node

import (
	"time"

	"github.com/ardanlabs/powsim/foundation/blockchain/database"
	"github.com/google/uuid"
)

// statusBlocks is the number of blocks reported after every round.
const statusBlocks = 3

// Round describes the outcome of a single mining round.
type Round struct {
	TraceID  string
	Block    database.Block
	Attempts uint64
	Duration time.Duration
}

// StartMining runs mining rounds for the life of the process. It never
// returns and the pacing between rounds can't be interrupted.
func (n *Node) StartMining() {
	n.evHandler("node: StartMining: %s started mining", n.id)

	for {
		n.MineRound()
	}
}

// MineRound retries mining attempts until the next block is appended, then
// sleeps out what is left of the configured delay and reports the chain.
// The retry loop has no upper bound, so a ceiling no hash can satisfy will
// keep this call busy forever.
func (n *Node) MineRound() Round {
	round := Round{
		TraceID: uuid.NewString(),
	}

	n.evHandler("node: MineRound: MINING: started: round[%s]", round.TraceID)
	start := time.Now()

	for {
		round.Attempts++
		if n.bc.TryMineBlock(n.id) {
			break
		}
	}

	round.Duration = time.Since(start)
	round.Block = n.bc.LatestBlock()

	n.evHandler("node: MineRound: MINING: SOLVED: round[%s]: blk[%d]: attempts[%d]: duration[%v]", round.TraceID, round.Block.Index, round.Attempts, round.Duration)

	if delay := n.bc.Config().Delay; round.Duration < delay {
		n.evHandler("node: MineRound: PACING: round[%s]: sleep[%v]", round.TraceID, delay-round.Duration)
		time.Sleep(delay - round.Duration)
	}

	n.PrintChain()

	return round
}
