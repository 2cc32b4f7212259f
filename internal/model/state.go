package model

import "redoubt/internal/idpool"

// State is the whole of the reactor's owned data: the client and room
// registries. Grounded on core.rs's HWServer (`clients`, `rooms`,
// `lobby_id`), minus the output queue and removed-clients bookkeeping,
// which live alongside the reducer (see internal/reduce).
type State struct {
	Clients *idpool.Pool[*Client]
	Rooms   *idpool.Pool[*Room]
	LobbyID RoomID
}

// NewState allocates the lobby room and returns an empty State
// (core.rs::HWServer::new).
func NewState(clientsCap, roomsCap int) *State {
	s := &State{
		Clients: idpool.New[*Client](clientsCap),
		Rooms:   idpool.New[*Room](roomsCap),
	}
	id := s.Rooms.Insert(NewLobby())
	s.LobbyID = RoomID(id)
	return s
}

// Client returns the client at id, or nil if absent.
func (s *State) Client(id ClientID) *Client {
	c, ok := s.Clients.Get(int(id))
	if !ok {
		return nil
	}
	return c
}

// Room returns the room at id, or nil if absent.
func (s *State) Room(id RoomID) *Room {
	r, ok := s.Rooms.Get(int(id))
	if !ok {
		return nil
	}
	return r
}

// ClientRoom returns client id's current room, or nil if it has none
// (client_and_room in core.rs, split into two accessors for Go).
func (s *State) ClientRoom(id ClientID) *Room {
	c := s.Client(id)
	if c == nil || c.RoomID == nil {
		return nil
	}
	return s.Room(*c.RoomID)
}

// Lobby returns the distinguished lobby room (core.rs::lobby).
func (s *State) Lobby() *Room {
	return s.Room(s.LobbyID)
}

// AddRoom allocates a new, empty room and returns its id (core.rs::add_room).
func (s *State) AddRoom() RoomID {
	id := s.Rooms.Insert(nil)
	r := NewRoom(RoomID(id))
	s.Rooms.Set(id, r)
	return RoomID(id)
}

// HasRoomNamed reports whether any room has the given name (core.rs::has_room).
func (s *State) HasRoomNamed(name string) bool {
	found := false
	s.Rooms.Each(func(id int, r *Room) {
		if r.Name == name {
			found = true
		}
	})
	return found
}

// FindRoomByName returns the room named name, if any (core.rs::find_room).
func (s *State) FindRoomByName(name string) *Room {
	var found *Room
	s.Rooms.Each(func(id int, r *Room) {
		if found == nil && r.Name == name {
			found = r
		}
	})
	return found
}

// FindClientByNick returns the client with the given nick, if any
// (core.rs::find_client).
func (s *State) FindClientByNick(nick string) *Client {
	var found *Client
	s.Clients.Each(func(id int, c *Client) {
		if found == nil && c.Nick == nick {
			found = c
		}
	})
	return found
}

// SelectClients returns the ids of every client matching pred
// (core.rs::select_clients).
func (s *State) SelectClients(pred func(*Client) bool) []ClientID {
	var out []ClientID
	s.Clients.Each(func(id int, c *Client) {
		if pred(c) {
			out = append(out, ClientID(id))
		}
	})
	return out
}

// RoomClients returns the ids of every client currently in roomID
// (core.rs::room_clients).
func (s *State) RoomClients(roomID RoomID) []ClientID {
	return s.SelectClients(func(c *Client) bool { return c.InRoom(roomID) })
}

// ProtocolClients returns the ids of every client on the given
// protocol version (core.rs::protocol_clients).
func (s *State) ProtocolClients(protocol uint16) []ClientID {
	return s.SelectClients(func(c *Client) bool { return c.ProtocolNumber == protocol })
}

// AllClients returns every connected client id.
func (s *State) AllClients() []ClientID {
	return s.SelectClients(func(*Client) bool { return true })
}
