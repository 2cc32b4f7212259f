// Package message defines the closed set of server-to-client messages
// and the addressing algebra used to route them (spec.md §4.1, §6).
// Grounded on protocol::messages::HWServerMessage (referenced
// throughout original_source/gameServer2/src/server/actions.rs) and
// the wire-shape notes of spec.md §6.
package message

// Kind tags the closed union of outbound messages. Deliberately a
// struct-with-tag rather than an interface hierarchy, per spec.md §9
// ("avoid any virtual-dispatch hierarchy").
type Kind int

const (
	Connected Kind = iota
	Bye
	LobbyJoined
	LobbyLeft
	RoomAdd
	RoomRemove
	RoomUpdated
	RoomJoined
	RoomLeft
	Rooms
	ClientFlags
	ServerMessage
	ChatMsg
	TeamAdd
	TeamRemove
	TeamColor
	HedgehogsNumber
	ConfigEntry
	RunGame
	RoundFinished
	ForwardEngineMessage
	Kicked
	Warning
	Error
)

// Message is one concrete outbound server message. Only the fields
// relevant to Kind are populated; this mirrors a Rust enum's payload
// without needing Go's interface-based sum types.
type Message struct {
	Kind Kind

	// Connected
	ProtocolVersion uint16

	// Bye / LobbyLeft(reason) / RoomLeft(reason)
	Reason string

	// LobbyJoined / LobbyLeft(nick) / RoomJoined / RoomLeft(nick) / ClientFlags
	Nicks []string

	// ClientFlags
	Flags string

	// RoomAdd / RoomUpdated: Info is the flat room-info tuple (spec.md §6)
	Info []string
	// RoomUpdated: OldName identifies which listing entry to replace
	OldName string

	// RoomRemove / TeamRemove / TeamColor(team name) / HedgehogsNumber(team name)
	Name string

	// TeamColor(color) / HedgehogsNumber(n)
	Number uint32

	// TeamAdd
	TeamInfo []string

	// ConfigEntry
	Key    string
	Values []string

	// ServerMessage / Warning / Error / ChatMsg(msg)
	Text string

	// ChatMsg(nick)
	ChatNick string

	// ForwardEngineMessage
	Frames []string

	// Rooms: each room contributes one flattened tuple; Rows holds them
	// pre-flattened as spec.md §6 describes ("flat_info_list").
	Rows [][]string
}
