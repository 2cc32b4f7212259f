package protocol

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"redoubt/internal/message"
	"redoubt/internal/model"
)

// Parse turns one `\n\n`-terminated command block's lines (command
// first, positional arguments after) into an Inbound (spec.md §6). The
// exact wire grammar is the excluded codec layer (spec.md §1); this is
// a plausible, internally consistent rendering of it so the repo runs
// end to end.
func Parse(lines []string) (*Inbound, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("protocol: empty frame")
	}
	cmd, args := lines[0], lines[1:]

	switch cmd {
	case "NICK":
		if len(args) < 1 {
			return nil, fmt.Errorf("protocol: NICK requires a nickname")
		}
		return &Inbound{Tag: CmdNick, Nick: args[0]}, nil

	case "PROTO":
		if len(args) < 1 {
			return nil, fmt.Errorf("protocol: PROTO requires a version")
		}
		v, err := strconv.ParseUint(args[0], 10, 16)
		if err != nil {
			return nil, fmt.Errorf("protocol: bad PROTO version: %w", err)
		}
		return &Inbound{Tag: CmdProto, ProtocolNumber: uint16(v)}, nil

	case "PASSWORD":
		password := ""
		if len(args) > 0 {
			password = args[0]
		}
		return &Inbound{Tag: CmdPassword, Password: password}, nil

	case "LIST":
		return &Inbound{Tag: CmdList}, nil

	case "CHAT":
		if len(args) < 1 {
			return nil, fmt.Errorf("protocol: CHAT requires text")
		}
		return &Inbound{Tag: CmdChat, Text: args[0]}, nil

	case "CREATE_ROOM":
		if len(args) < 1 {
			return nil, fmt.Errorf("protocol: CREATE_ROOM requires a name")
		}
		in := &Inbound{Tag: CmdCreateRoom, RoomName: args[0]}
		if len(args) > 1 {
			in.Password = args[1]
		}
		return in, nil

	case "JOIN_ROOM":
		if len(args) < 1 {
			return nil, fmt.Errorf("protocol: JOIN_ROOM requires a name")
		}
		in := &Inbound{Tag: CmdJoinRoom, RoomName: args[0]}
		if len(args) > 1 {
			in.Password = args[1]
		}
		return in, nil

	case "PART":
		return &Inbound{Tag: CmdPart}, nil

	case "CFG":
		if len(args) < 1 {
			return nil, fmt.Errorf("protocol: CFG requires a key")
		}
		return &Inbound{Tag: CmdCfg, CfgKey: args[0], CfgValues: args[1:]}, nil

	case "ADD_TEAM":
		if len(args) < 6 {
			return nil, fmt.Errorf("protocol: ADD_TEAM requires name/grave/fort/voice/flag/difficulty")
		}
		difficulty, _ := strconv.ParseUint(args[5], 10, 8)
		team := model.TeamInfo{
			Name:       args[0],
			Grave:      args[1],
			Fort:       args[2],
			VoicePack:  args[3],
			Flag:       args[4],
			Difficulty: uint8(difficulty),
		}
		for i := 6; i+1 < len(args); i += 2 {
			team.Hedgehogs = append(team.Hedgehogs, model.Hedgehog{Name: args[i], Hat: args[i+1]})
		}
		return &Inbound{Tag: CmdAddTeam, Team: team}, nil

	case "REMOVE_TEAM":
		if len(args) < 1 {
			return nil, fmt.Errorf("protocol: REMOVE_TEAM requires a name")
		}
		return &Inbound{Tag: CmdRemoveTeam, TeamName: args[0]}, nil

	case "HH_NUM":
		if len(args) < 2 {
			return nil, fmt.Errorf("protocol: HH_NUM requires name and count")
		}
		n, err := strconv.ParseUint(args[1], 10, 8)
		if err != nil {
			return nil, fmt.Errorf("protocol: bad HH_NUM count: %w", err)
		}
		return &Inbound{Tag: CmdHHNum, TeamName: args[0], HHNumber: uint8(n)}, nil

	case "TEAM_COLOR":
		if len(args) < 2 {
			return nil, fmt.Errorf("protocol: TEAM_COLOR requires name and color")
		}
		n, err := strconv.ParseUint(args[1], 10, 8)
		if err != nil {
			return nil, fmt.Errorf("protocol: bad TEAM_COLOR value: %w", err)
		}
		return &Inbound{Tag: CmdTeamColor, TeamName: args[0], Color: uint8(n)}, nil

	case "TOGGLE_READY":
		return &Inbound{Tag: CmdToggleReady}, nil

	case "START_GAME":
		return &Inbound{Tag: CmdStartGame}, nil

	case "EM":
		for _, a := range args {
			if _, err := base64.StdEncoding.DecodeString(a); err != nil {
				return nil, fmt.Errorf("protocol: bad EM frame: %w", err)
			}
		}
		return &Inbound{Tag: CmdEngineMsg, EngineFrames: args}, nil

	case "VOTE":
		if len(args) < 1 {
			return nil, fmt.Errorf("protocol: VOTE requires YES or NO")
		}
		return &Inbound{Tag: CmdVote, Vote: args[0] == "YES"}, nil

	case "CALLVOTE":
		return parseCallVote(args)

	case "KICK":
		if len(args) < 1 {
			return nil, fmt.Errorf("protocol: KICK requires a nickname")
		}
		return &Inbound{Tag: CmdKick, KickNick: args[0]}, nil

	case "QUIT":
		reason := "quit"
		if len(args) > 0 {
			reason = args[0]
		}
		return &Inbound{Tag: CmdQuit, Reason: reason}, nil
	}

	return nil, fmt.Errorf("protocol: unknown command %q", cmd)
}

func parseCallVote(args []string) (*Inbound, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("protocol: CALLVOTE requires a kind")
	}
	switch args[0] {
	case "KICK":
		if len(args) < 2 {
			return nil, fmt.Errorf("protocol: CALLVOTE KICK requires a nickname")
		}
		return &Inbound{Tag: CmdCallVote, VoteKind: model.VoteKind{Tag: model.VoteKick, KickNick: args[1]}}, nil
	case "MAP":
		name := ""
		if len(args) > 1 {
			name = args[1]
		}
		return &Inbound{Tag: CmdCallVote, VoteKind: model.VoteKind{Tag: model.VoteMap, MapName: name}}, nil
	case "PAUSE":
		return &Inbound{Tag: CmdCallVote, VoteKind: model.VoteKind{Tag: model.VotePause}}, nil
	case "NEWSEED":
		return &Inbound{Tag: CmdCallVote, VoteKind: model.VoteKind{Tag: model.VoteNewSeed}}, nil
	case "HEDGEHOGS":
		if len(args) < 2 {
			return nil, fmt.Errorf("protocol: CALLVOTE HEDGEHOGS requires a count")
		}
		n, err := strconv.ParseUint(args[1], 10, 8)
		if err != nil {
			return nil, fmt.Errorf("protocol: bad CALLVOTE HEDGEHOGS count: %w", err)
		}
		return &Inbound{Tag: CmdCallVote, VoteKind: model.VoteKind{Tag: model.VoteHedgehogsPerTeam, HedgehogsNumber: uint8(n)}}, nil
	}
	return nil, fmt.Errorf("protocol: unknown vote kind %q", args[0])
}

// Serialize renders one outbound Message as wire lines: command name
// first, positional arguments after (spec.md §6). The transport is
// responsible for joining these with newlines and terminating the
// frame with a blank line.
func Serialize(msg message.Message) []string {
	switch msg.Kind {
	case message.Connected:
		return []string{"CONNECTED", strconv.FormatUint(uint64(msg.ProtocolVersion), 10)}
	case message.Bye:
		return []string{"BYE", msg.Reason}
	case message.LobbyJoined:
		return append([]string{"LOBBY:JOINED"}, msg.Nicks...)
	case message.LobbyLeft:
		return append([]string{"LOBBY:LEFT"}, append(msg.Nicks, msg.Reason)...)
	case message.RoomAdd:
		return append([]string{"ROOM", "ADD"}, msg.Info...)
	case message.RoomRemove:
		return []string{"ROOM", "DEL", msg.Name}
	case message.RoomUpdated:
		return append([]string{"ROOM", "UPD", msg.OldName}, msg.Info...)
	case message.RoomJoined:
		return append([]string{"JOINED"}, msg.Nicks...)
	case message.RoomLeft:
		return append([]string{"LEFT"}, append(msg.Nicks, msg.Reason)...)
	case message.Rooms:
		out := []string{"ROOMS"}
		for _, row := range msg.Rows {
			out = append(out, row...)
		}
		return out
	case message.ClientFlags:
		return append([]string{"CLIENT_FLAGS", msg.Flags}, msg.Nicks...)
	case message.ServerMessage:
		return []string{"SERVER_MESSAGE", msg.Text}
	case message.ChatMsg:
		return []string{"CHAT", msg.ChatNick, msg.Text}
	case message.TeamAdd:
		return append([]string{"ADD_TEAM"}, msg.TeamInfo...)
	case message.TeamRemove:
		return []string{"REMOVE_TEAM", msg.Name}
	case message.TeamColor:
		return []string{"TEAM_COLOR", msg.Name, strconv.FormatUint(uint64(msg.Number), 10)}
	case message.HedgehogsNumber:
		return []string{"HH_NUM", msg.Name, strconv.FormatUint(uint64(msg.Number), 10)}
	case message.ConfigEntry:
		return append([]string{"CFG", msg.Key}, msg.Values...)
	case message.RunGame:
		return []string{"RUN_GAME"}
	case message.RoundFinished:
		return []string{"ROUND_FINISHED"}
	case message.ForwardEngineMessage:
		return append([]string{"EM"}, msg.Frames...)
	case message.Kicked:
		return []string{"KICKED"}
	case message.Warning:
		return []string{"WARNING", msg.Text}
	case message.Error:
		return []string{"ERROR", msg.Text}
	}
	return []string{"ERROR", "internal: unserializable message"}
}
