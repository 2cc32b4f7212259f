package message

import "redoubt/internal/model"

// Group identifies the membership criterion a ToAll destination
// resolves against (spec.md §4.1), grounded on actions.rs's
// DestinationGroup.
type Group int

const (
	GroupAll Group = iota
	GroupLobby
	GroupRoom
	GroupProtocol
)

// Destination describes who a PendingMessage is addressed to, before
// the router resolves it to a concrete id set (spec.md §4.1 / §4.7).
type Destination struct {
	// Kind distinguishes ToId / ToSelf / ToAll.
	Kind DestinationKind

	// ToID is populated when Kind == DestToID.
	ToID model.ClientID

	// Group/RoomID/Protocol/SkipSelf are populated when Kind == DestToAll.
	Group    Group
	RoomID   model.RoomID
	Protocol uint16
	SkipSelf bool
}

// DestinationKind enumerates the three destination shapes
// (actions.rs's Destination enum).
type DestinationKind int

const (
	DestToID DestinationKind = iota
	DestToSelf
	DestToAll
)

// PendingMessage pairs a Message with its Destination (spec.md §4.1).
type PendingMessage struct {
	Destination Destination
	Message     Message
}

// To addresses msg at a specific client (PendingMessage::send).
func To(id model.ClientID, msg Message) PendingMessage {
	return PendingMessage{Destination: Destination{Kind: DestToID, ToID: id}, Message: msg}
}

// ToSelf addresses msg at whichever client is currently acting
// (PendingMessage::send_self).
func ToSelf(msg Message) PendingMessage {
	return PendingMessage{Destination: Destination{Kind: DestToSelf}, Message: msg}
}

// ToAll addresses msg at every connected client
// (PendingMessage::send_all).
func ToAll(msg Message) PendingMessage {
	return PendingMessage{Destination: Destination{Kind: DestToAll, Group: GroupAll}, Message: msg}
}

// InRoom narrows a ToAll destination to one room's membership. A
// no-op on ToId/ToSelf destinations (spec.md §4.1 contract).
func (p PendingMessage) InRoom(id model.RoomID) PendingMessage {
	if p.Destination.Kind == DestToAll {
		p.Destination.Group = GroupRoom
		p.Destination.RoomID = id
	}
	return p
}

// InLobby narrows a ToAll destination to the lobby's membership. A
// no-op on ToId/ToSelf destinations.
func (p PendingMessage) InLobby() PendingMessage {
	if p.Destination.Kind == DestToAll {
		p.Destination.Group = GroupLobby
	}
	return p
}

// WithProtocol narrows a ToAll destination to clients on the given
// protocol version. A no-op on ToId/ToSelf destinations.
func (p PendingMessage) WithProtocol(protocol uint16) PendingMessage {
	if p.Destination.Kind == DestToAll {
		p.Destination.Group = GroupProtocol
		p.Destination.Protocol = protocol
	}
	return p
}

// ButSelf excludes the acting client from a ToAll destination's
// recipient set. A no-op on ToId/ToSelf destinations.
func (p PendingMessage) ButSelf() PendingMessage {
	if p.Destination.Kind == DestToAll {
		p.Destination.SkipSelf = true
	}
	return p
}
