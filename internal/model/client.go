package model

// Client is the server's view of one connected player (spec.md §3).
type Client struct {
	ID             ClientID
	Nick           string
	ProtocolNumber uint16
	RoomID         *RoomID // nil before JoinLobby

	IsMaster         bool
	IsReady          bool
	IsInGame         bool
	IsJoinedMidGame  bool
	IsAdmin          bool
	TeamsInGame      uint8
	Clan             *uint8 // color of the client's first team in game, if any
	TeamIndices      []uint8
	Salt             string // base64-encoded 18-byte salt for challenge-response

	// ConnTag is the connection tag the transport assigned when it
	// registered this client; neither the reducer nor the router
	// reads it.
	ConnTag uint64
}

// NewClient constructs a freshly connected, unregistered client.
func NewClient(id ClientID, salt string, connTag uint64) *Client {
	return &Client{
		ID:      id,
		Salt:    salt,
		ConnTag: connTag,
	}
}

// IsRegistered reports whether both halves of registration (protocol
// negotiation and nick selection) have completed (spec.md §3).
func (c *Client) IsRegistered() bool {
	return c.ProtocolNumber > 0 && c.Nick != ""
}

// InRoom reports whether the client currently occupies room id (and
// is not merely sitting in the lobby, when id != LobbyID).
func (c *Client) InRoom(id RoomID) bool {
	return c.RoomID != nil && *c.RoomID == id
}

// InLobby reports whether the client is currently in the lobby.
func (c *Client) InLobby() bool {
	return c.InRoom(LobbyID)
}

// RoomIDOrNil returns a pointer copy of id, used when setting Client.RoomID.
func RoomIDOrNil(id RoomID) *RoomID {
	v := id
	return &v
}
