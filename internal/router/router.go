// Package router resolves a PendingMessage's Destination to a concrete
// recipient id set and appends it to the reactor's output queue
// (spec.md §4.7), grounded on core.rs::get_recipients / core.rs::send
// and on game/room.go's sendTo/broadcast pair (resolve recipients,
// then hand off — but here a single reactor is the only writer, so no
// mutex is needed; ownership is structural, not lock-based).
package router

import (
	"redoubt/internal/message"
	"redoubt/internal/model"
)

// Outbound is one resolved delivery: the message and the ids that
// should receive it, matching core.rs's `output: Vec<(Vec<ClientId>, HWServerMessage)>`.
type Outbound struct {
	Recipients []model.ClientID
	Message    message.Message
}

// Router resolves destinations against a model.State.
type Router struct {
	state *model.State
}

// New returns a Router bound to state.
func New(state *model.State) *Router {
	return &Router{state: state}
}

// Resolve computes the recipient set for a PendingMessage sent on
// behalf of actorID (spec.md §4.7).
func (r *Router) Resolve(actorID model.ClientID, p message.PendingMessage) []model.ClientID {
	d := p.Destination
	var ids []model.ClientID

	switch d.Kind {
	case message.DestToSelf:
		ids = []model.ClientID{actorID}
	case message.DestToID:
		ids = []model.ClientID{d.ToID}
	case message.DestToAll:
		switch d.Group {
		case message.GroupRoom:
			ids = r.state.RoomClients(d.RoomID)
		case message.GroupProtocol:
			ids = r.state.ProtocolClients(d.Protocol)
		case message.GroupLobby:
			ids = r.state.RoomClients(r.state.LobbyID)
		default: // GroupAll
			ids = r.state.AllClients()
		}
		if d.SkipSelf {
			ids = removeID(ids, actorID)
		}
	}
	return ids
}

// Route resolves p and appends the result to queue, mirroring
// core.rs::send's `self.output.push((ids, message))`.
func (r *Router) Route(actorID model.ClientID, p message.PendingMessage, queue *[]Outbound) {
	ids := r.Resolve(actorID, p)
	*queue = append(*queue, Outbound{Recipients: ids, Message: p.Message})
}

func removeID(ids []model.ClientID, target model.ClientID) []model.ClientID {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
