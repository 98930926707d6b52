package public

import "github.com/ardanlabs/powsim/foundation/blockchain/database"

// defaultBlocks is the number of blocks returned when no count is provided.
// It matches the tail the node prints after every round.
const defaultBlocks = 3

type status struct {
	ID          string             `json:"id"`
	Ceiling     int32              `json:"ceiling"`
	Delay       string             `json:"delay"`
	Difficulty  string             `json:"difficulty"`
	Length      int                `json:"length"`
	LatestBlock database.BlockData `json:"latest_block"`
	Subscribers int                `json:"subscribers"`
}

type blocksQuery struct {
	Count int `json:"count" validate:"gte=1,lte=1000"`
}
