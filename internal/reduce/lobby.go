package reduce

import (
	"redoubt/internal/action"
	"redoubt/internal/message"
	"redoubt/internal/model"
)

// joinLobby seats actorID in the lobby and announces it, grounded on
// actions.rs's JoinLobby arm.
func (r *Reducer) joinLobby(actorID model.ClientID) {
	c := r.State.Client(actorID)
	if c == nil {
		return
	}
	c.RoomID = model.RoomIDOrNil(r.State.LobbyID)

	var lobbyNicks []string
	r.State.Clients.Each(func(id int, client *model.Client) {
		if client.RoomID != nil {
			lobbyNicks = append(lobbyNicks, client.Nick)
		}
	})

	everyoneMsg := message.NewLobbyJoined([]string{c.Nick})
	joinedMsg := message.NewLobbyJoined(lobbyNicks)
	flagsMsg := message.NewClientFlags("+i", lobbyNicks)
	serverMsg := message.NewServerMessage("\U0001F994 is watching")

	var rows [][]string
	r.State.Rooms.Each(func(id int, room *model.Room) {
		if model.RoomID(id) == r.State.LobbyID {
			return
		}
		if room.ProtocolNumber != c.ProtocolNumber {
			return
		}
		masterNick := ""
		if room.MasterID != nil {
			if m := r.State.Client(*room.MasterID); m != nil {
				masterNick = m.Nick
			}
		}
		rows = append(rows, room.Info(masterNick))
	})
	roomsMsg := message.NewRooms(rows)

	r.React(actorID, []action.Action{
		action.NewSend(message.ToAll(everyoneMsg).ButSelf()),
		action.NewSend(message.ToSelf(joinedMsg)),
		action.NewSend(message.ToSelf(flagsMsg)),
		action.NewSend(message.ToSelf(serverMsg)),
		action.NewSend(message.ToSelf(roomsMsg)),
	})
}

// addRoom allocates a room owned by actorID, names it, and moves
// actorID into it (actions.rs's AddRoom arm).
func (r *Reducer) addRoom(actorID model.ClientID, name string, password *string) {
	c := r.State.Client(actorID)
	if c == nil {
		return
	}
	roomID := r.State.AddRoom()
	room := r.State.Room(roomID)
	room.MasterID = &c.ID
	room.Name = name
	room.Password = password
	room.ProtocolNumber = c.ProtocolNumber

	r.React(actorID, []action.Action{
		action.NewSend(message.ToAll(message.NewRoomAdd(room.Info(c.Nick))).WithProtocol(room.ProtocolNumber)),
		action.NewMoveToRoom(roomID),
	})
}

// removeRoom announces and deletes roomID (actions.rs's RemoveRoom arm).
func (r *Reducer) removeRoom(actorID model.ClientID, roomID model.RoomID) {
	room := r.State.Room(roomID)
	if room == nil {
		return
	}
	name := room.Name
	protocol := room.ProtocolNumber
	r.State.Rooms.Remove(int(roomID))

	r.React(actorID, []action.Action{
		action.NewSend(message.ToAll(message.NewRoomRemove(name)).WithProtocol(protocol)),
	})
}
