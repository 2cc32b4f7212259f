package reduce

import (
	"fmt"

	"redoubt/internal/action"
	"redoubt/internal/message"
	"redoubt/internal/model"
)

// changeMaster transfers (or clears) room mastership, picking the
// first other room occupant when no candidate is supplied and the
// room isn't fixed (actions.rs's ChangeMaster arm).
func (r *Reducer) changeMaster(actorID model.ClientID, roomID model.RoomID, candidate *model.ClientID) {
	roomClientIDs := r.State.RoomClients(roomID)

	actorsRoom := r.State.ClientRoom(actorID)
	fixed := actorsRoom != nil && actorsRoom.IsFixed

	newID := candidate
	if !fixed && newID == nil {
		for _, id := range roomClientIDs {
			if id != actorID {
				id := id
				newID = &id
				break
			}
		}
	}

	var newNick string
	if newID != nil {
		if client := r.State.Client(*newID); client != nil {
			newNick = client.Nick
		}
	}

	var actions []action.Action
	c := r.State.Client(actorID)
	room := r.State.ClientRoom(actorID)
	if c != nil && room != nil {
		switch {
		case room.MasterID != nil && *room.MasterID == c.ID:
			c.IsMaster = false
			room.MasterID = nil
			actions = append(actions, action.NewSend(message.ToAll(message.NewClientFlags("-h", []string{c.Nick})).InRoom(room.ID)))
		case room.MasterID != nil:
			panic(fmt.Sprintf("changeMaster: room %d master is %d, not acting client %d", room.ID, *room.MasterID, c.ID))
		}
		room.MasterID = newID
		if newID != nil {
			actions = append(actions, action.NewSend(message.ToAll(message.NewClientFlags("+h", []string{newNick})).InRoom(room.ID)))
		}
	}

	if newID != nil {
		if newClient := r.State.Client(*newID); newClient != nil {
			newClient.IsMaster = true
		}
	}

	r.React(actorID, actions)
}
