// Package action defines the tagged union of side-effectful intents
// the reducer executes (spec.md §4.2), a direct port of
// original_source/gameServer2/src/server/actions.rs's `pub enum
// Action`. Actions are data, not callbacks, so the reducer stays
// inspectable and testable (spec.md §9 "Action-as-data").
package action

import (
	"redoubt/internal/message"
	"redoubt/internal/model"
)

// Tag enumerates the closed set of action kinds.
type Tag int

const (
	Send Tag = iota
	RemoveClient
	ByeClient
	ReactProtocolMessage
	CheckRegistered
	JoinLobby
	AddRoom
	RemoveRoom
	MoveToRoom
	MoveToLobby
	ChangeMaster
	RemoveTeam
	RemoveClientTeams
	SendRoomUpdate
	StartRoomGame
	SendTeamRemovalMessage
	FinishRoomGame
	SendRoomData
	AddVote
	ApplyVoting
	Warn
	ProtocolError
)

// Action is one reducer intent (spec.md §4.2). As with message.Message,
// only the fields relevant to Tag are populated.
type Action struct {
	Tag Tag

	// Send
	Pending message.PendingMessage

	// ByeClient(reason) / Warn(text) / ProtocolError(text) / MoveToLobby(reason)
	Text string

	// ReactProtocolMessage
	Inbound interface{} // *protocol.Inbound, kept as interface{} to avoid an import cycle

	// AddRoom(name, password)
	Name     string
	Password *string

	// RemoveRoom(id) / MoveToRoom(id) / StartRoomGame(room) /
	// SendTeamRemovalMessage uses the acting client's room implicitly.
	RoomID model.RoomID

	// ChangeMaster(room, candidate)
	Candidate *model.ClientID

	// RemoveTeam(name) / SendTeamRemovalMessage(name)
	TeamName string

	// SendRoomUpdate(old_name)
	OldName *string

	// SendRoomData{to, teams, config, flags}
	To            model.ClientID
	WithTeams     bool
	WithConfig    bool
	WithFlags     bool

	// AddVote{vote, is_forced}
	Vote     bool
	IsForced bool

	// ApplyVoting(kind, room)
	VoteKind model.VoteKind
}

// action constructors -- terser call sites for the reducer and protocol handlers.

func NewSend(p message.PendingMessage) Action { return Action{Tag: Send, Pending: p} }

func NewByeClient(reason string) Action { return Action{Tag: ByeClient, Text: reason} }

func NewReactProtocolMessage(inbound interface{}) Action {
	return Action{Tag: ReactProtocolMessage, Inbound: inbound}
}

func NewAddRoom(name string, password *string) Action {
	return Action{Tag: AddRoom, Name: name, Password: password}
}

func NewRemoveRoom(id model.RoomID) Action { return Action{Tag: RemoveRoom, RoomID: id} }

func NewMoveToRoom(id model.RoomID) Action { return Action{Tag: MoveToRoom, RoomID: id} }

func NewMoveToLobby(reason string) Action { return Action{Tag: MoveToLobby, Text: reason} }

func NewChangeMaster(room model.RoomID, candidate *model.ClientID) Action {
	return Action{Tag: ChangeMaster, RoomID: room, Candidate: candidate}
}

func NewRemoveTeam(name string) Action { return Action{Tag: RemoveTeam, TeamName: name} }

func NewSendRoomUpdate(oldName *string) Action {
	return Action{Tag: SendRoomUpdate, OldName: oldName}
}

func NewStartRoomGame(room model.RoomID) Action {
	return Action{Tag: StartRoomGame, RoomID: room}
}

func NewSendTeamRemovalMessage(name string) Action {
	return Action{Tag: SendTeamRemovalMessage, TeamName: name}
}

func NewFinishRoomGame(room model.RoomID) Action {
	return Action{Tag: FinishRoomGame, RoomID: room}
}

func NewSendRoomData(to model.ClientID, teams, config, flags bool) Action {
	return Action{Tag: SendRoomData, To: to, WithTeams: teams, WithConfig: config, WithFlags: flags}
}

func NewAddVote(vote, isForced bool) Action {
	return Action{Tag: AddVote, Vote: vote, IsForced: isForced}
}

func NewApplyVoting(kind model.VoteKind, room model.RoomID) Action {
	return Action{Tag: ApplyVoting, VoteKind: kind, RoomID: room}
}

func NewWarn(text string) Action { return Action{Tag: Warn, Text: text} }

func NewProtocolError(text string) Action { return Action{Tag: ProtocolError, Text: text} }

var (
	DoRemoveClient      = Action{Tag: RemoveClient}
	DoCheckRegistered   = Action{Tag: CheckRegistered}
	DoJoinLobby         = Action{Tag: JoinLobby}
	DoRemoveClientTeams = Action{Tag: RemoveClientTeams}
)
