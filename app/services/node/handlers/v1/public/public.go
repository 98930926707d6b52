// Package public maintains the group of handlers for public access.
package public

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ardanlabs/powsim/business/web/errs"
	"github.com/ardanlabs/powsim/foundation/blockchain/database"
	"github.com/ardanlabs/powsim/foundation/events"
	"github.com/ardanlabs/powsim/foundation/node"
	"github.com/ardanlabs/powsim/foundation/validate"
	"github.com/ardanlabs/powsim/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of node observation endpoints.
type Handlers struct {
	Log  *zap.SugaredLogger
	Node *node.Node
	WS   websocket.Upgrader
	Evts *events.Events
}

// Events handles a web socket to provide mining events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return nil
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// Status returns the mining parameters and the height of the chain.
func (h Handlers) Status(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	bc := h.Node.Blockchain()
	cfg := bc.Config()

	st := status{
		ID:          h.Node.ID(),
		Ceiling:     cfg.Ceiling,
		Delay:       cfg.Delay.String(),
		Difficulty:  cfg.Difficulty(),
		Length:      bc.Len(),
		LatestBlock: database.NewBlockData(bc.LatestBlock()),
		Subscribers: h.Evts.Count(),
	}

	return web.Respond(ctx, w, st, http.StatusOK)
}

// Blocks returns the last blocks of the chain, oldest first.
func (h Handlers) Blocks(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	qry := blocksQuery{
		Count: defaultBlocks,
	}

	if s := web.Param(r, "count"); s != "" {
		count, err := strconv.Atoi(s)
		if err != nil {
			return errs.NewTrusted(errors.New("count must be a number"), http.StatusBadRequest)
		}
		qry.Count = count
	}

	if err := validate.Check(qry); err != nil {
		return err
	}

	blocks := h.Node.Blockchain().LastNBlocks(qry.Count)

	data := make([]database.BlockData, len(blocks))
	for i, block := range blocks {
		data[i] = database.NewBlockData(block)
	}

	return web.Respond(ctx, w, data, http.StatusOK)
}
