// Package protocol is the protocol-handlers collaborator (spec.md §2
// C5): it translates one parsed inbound command into the seed action
// list the reducer executes, and — as the wire codec's sibling,
// adapted loosely since the line-framing layer itself is out of scope
// (spec.md §1) — turns raw `\n\n`-terminated command blocks into an
// Inbound and a Message back into wire lines.
package protocol

import "redoubt/internal/model"

// CommandTag enumerates the known inbound commands (spec.md §6).
type CommandTag int

const (
	CmdNick CommandTag = iota
	CmdProto
	CmdPassword
	CmdList
	CmdChat
	CmdCreateRoom
	CmdJoinRoom
	CmdPart
	CmdCfg
	CmdAddTeam
	CmdRemoveTeam
	CmdHHNum
	CmdTeamColor
	CmdToggleReady
	CmdStartGame
	CmdEngineMsg
	CmdVote
	CmdCallVote
	CmdKick
	CmdQuit
)

// Inbound is one parsed command, tagged-union style like message.Message
// and action.Action — only the fields relevant to Tag are populated.
type Inbound struct {
	Tag CommandTag

	Nick           string
	ProtocolNumber uint16
	Password       string

	Text string // CHAT

	RoomName string // CreateRoom / JoinRoom

	CfgKey    string
	CfgValues []string

	Team       model.TeamInfo // AddTeam
	TeamName   string         // RemoveTeam / TeamColor / HHNum
	Color      uint8          // TeamColor
	HHNumber   uint8          // HHNum

	EngineFrames []string // EM

	Vote     bool // VOTE
	IsForced bool

	VoteKind model.VoteKind // CALLVOTE

	KickNick string // KICK

	Reason string // QUIT
}
