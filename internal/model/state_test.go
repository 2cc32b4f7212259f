package model

import "testing"

func TestNewStateCreatesLobbyFirst(t *testing.T) {
	s := NewState(4, 4)
	if s.LobbyID != LobbyID {
		t.Fatalf("LobbyID = %d, want %d", s.LobbyID, LobbyID)
	}
	if s.Lobby() == nil {
		t.Fatal("Lobby() = nil, want the allocated lobby room")
	}
	if !s.Lobby().IsFixed {
		t.Error("lobby room should be fixed")
	}
}

func TestAddRoomAllocatesAfterLobby(t *testing.T) {
	s := NewState(4, 4)
	id := s.AddRoom()
	if id == s.LobbyID {
		t.Fatalf("AddRoom returned the lobby id %d", id)
	}
	if s.Room(id) == nil {
		t.Fatal("Room(id) = nil after AddRoom")
	}
}

func TestFindRoomByNameAndHasRoomNamed(t *testing.T) {
	s := NewState(4, 4)
	id := s.AddRoom()
	s.Room(id).Name = "arena"

	if !s.HasRoomNamed("arena") {
		t.Error("HasRoomNamed(arena) = false, want true")
	}
	if s.HasRoomNamed("nonexistent") {
		t.Error("HasRoomNamed(nonexistent) = true, want false")
	}
	if got := s.FindRoomByName("arena"); got == nil || got.ID != id {
		t.Errorf("FindRoomByName(arena) = %v, want room %d", got, id)
	}
}

func TestFindClientByNick(t *testing.T) {
	s := NewState(4, 4)
	id := ClientID(s.Clients.Insert(NewClient(0, "salt", 1)))
	s.Client(id).Nick = "denis"

	if got := s.FindClientByNick("denis"); got == nil || got.ID != id {
		t.Errorf("FindClientByNick(denis) = %v, want client %d", got, id)
	}
	if s.FindClientByNick("ghost") != nil {
		t.Error("FindClientByNick(ghost) should be nil")
	}
}

func TestRoomClientsAndProtocolClients(t *testing.T) {
	s := NewState(8, 4)
	roomID := s.AddRoom()

	a := ClientID(s.Clients.Insert(NewClient(0, "a", 1)))
	s.Client(a).ProtocolNumber = 58
	s.Client(a).RoomID = RoomIDOrNil(roomID)

	b := ClientID(s.Clients.Insert(NewClient(0, "b", 2)))
	s.Client(b).ProtocolNumber = 58
	s.Client(b).RoomID = RoomIDOrNil(s.LobbyID)

	c := ClientID(s.Clients.Insert(NewClient(0, "c", 3)))
	s.Client(c).ProtocolNumber = 59

	inRoom := s.RoomClients(roomID)
	if len(inRoom) != 1 || inRoom[0] != a {
		t.Errorf("RoomClients(room) = %v, want [%d]", inRoom, a)
	}

	onProto := s.ProtocolClients(58)
	if len(onProto) != 2 {
		t.Errorf("ProtocolClients(58) = %v, want 2 entries", onProto)
	}
}

func TestClientInRoomAndInLobby(t *testing.T) {
	c := NewClient(1, "salt", 1)
	if c.InLobby() {
		t.Error("fresh client should not be in the lobby")
	}
	c.RoomID = RoomIDOrNil(LobbyID)
	if !c.InLobby() {
		t.Error("client assigned to LobbyID should report InLobby")
	}
	if c.InRoom(RoomID(7)) {
		t.Error("client in the lobby should not report InRoom(7)")
	}
}

func TestClientIsRegistered(t *testing.T) {
	c := NewClient(1, "salt", 1)
	if c.IsRegistered() {
		t.Error("fresh client should not be registered")
	}
	c.ProtocolNumber = 58
	if c.IsRegistered() {
		t.Error("client with only a protocol number should not be registered")
	}
	c.Nick = "denis"
	if !c.IsRegistered() {
		t.Error("client with both protocol number and nick should be registered")
	}
}
