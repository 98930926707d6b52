package node

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/ardanlabs/powsim/foundation/blockchain/chain"
)

// idPrefix starts every generated node id.
const idPrefix = "node-"

// EventHandler defines a function that is called when events
// occur in the processing of mining rounds.
type EventHandler func(v string, args ...any)

// Config represents the configuration required to start
// a mining node.
type Config struct {
	ID        string
	Chain     chain.Config
	Out       io.Writer
	EvHandler EventHandler
}

// Node represents a miner and the chain it maintains.
type Node struct {
	id        string
	bc        *chain.Blockchain
	out       io.Writer
	evHandler EventHandler
}

// New constructs a node with a new chain. A random id is generated when
// one is not provided.
func New(cfg Config) *Node {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	id := cfg.ID
	if id == "" {
		id = GenerateID()
	}

	out := cfg.Out
	if out == nil {
		out = io.Discard
	}

	n := Node{
		id:        id,
		bc:        chain.New(cfg.Chain, chain.WithEvents(chain.EventHandler(ev))),
		out:       out,
		evHandler: ev,
	}

	return &n
}

// GenerateID produces a random id like node-a3f2. Ids are not guaranteed
// to be unique.
func GenerateID() string {
	return fmt.Sprintf("%s%04x", idPrefix, rand.N(0x10000))
}

// ID returns the id of the node, which is credited for every block it mines.
func (n *Node) ID() string {
	return n.id
}

// Blockchain returns the chain maintained by the node.
func (n *Node) Blockchain() *chain.Blockchain {
	return n.bc
}
