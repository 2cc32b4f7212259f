package protocol

import (
	"strconv"

	"redoubt/internal/action"
	"redoubt/internal/message"
	"redoubt/internal/model"
)

// Handle translates one Inbound command into a seed action list
// (spec.md §2 C5), mirroring handlers.rs's per-command handle_* functions
// but written against this repo's typed model instead of the original's
// HWProtocolMessage enum.
func Handle(state *model.State, actorID model.ClientID, in *Inbound) []action.Action {
	c := state.Client(actorID)
	if c == nil {
		return nil
	}

	switch in.Tag {
	case CmdProto:
		return handleProto(c, in)
	case CmdNick:
		return handleNick(state, c, in)
	case CmdPassword:
		// Account/room password verification is delegated to the
		// external auth collaborator (spec.md §1); the core only
		// re-checks registration once it reports back.
		return []action.Action{action.DoCheckRegistered}
	case CmdList:
		return handleList(state, c)
	case CmdChat:
		return handleChat(state, c, in)
	case CmdCreateRoom:
		return handleCreateRoom(state, c, in)
	case CmdJoinRoom:
		return handleJoinRoom(state, c, in)
	case CmdPart:
		return handlePart(c)
	case CmdCfg:
		return handleCfg(state, c, in)
	case CmdAddTeam:
		return handleAddTeam(state, c, in)
	case CmdRemoveTeam:
		return handleRemoveTeam(state, c, in)
	case CmdHHNum:
		return handleHHNum(state, c, in)
	case CmdTeamColor:
		return handleTeamColor(state, c, in)
	case CmdToggleReady:
		return handleToggleReady(state, c)
	case CmdStartGame:
		return handleStartGame(state, c)
	case CmdEngineMsg:
		return handleEngineMsg(state, c, in)
	case CmdVote:
		return []action.Action{action.NewAddVote(in.Vote, false)}
	case CmdCallVote:
		return handleCallVote(state, c, in)
	case CmdKick:
		return handleKick(state, c, in)
	case CmdQuit:
		return []action.Action{action.NewByeClient(in.Reason)}
	}
	return []action.Action{action.NewProtocolError("unknown command")}
}

func handleProto(c *model.Client, in *Inbound) []action.Action {
	if c.ProtocolNumber != 0 {
		return []action.Action{action.NewProtocolError("protocol already set")}
	}
	c.ProtocolNumber = in.ProtocolNumber
	return []action.Action{
		action.NewSend(message.ToSelf(message.NewConnected(in.ProtocolNumber))),
		action.DoCheckRegistered,
	}
}

func handleNick(state *model.State, c *model.Client, in *Inbound) []action.Action {
	if c.Nick != "" {
		return []action.Action{action.NewProtocolError("nickname already chosen")}
	}
	if state.FindClientByNick(in.Nick) != nil {
		return []action.Action{action.NewWarn("nickname already in use")}
	}
	c.Nick = in.Nick
	return []action.Action{action.DoCheckRegistered}
}

func handleList(state *model.State, c *model.Client) []action.Action {
	var rows [][]string
	state.Rooms.Each(func(id int, room *model.Room) {
		if model.RoomID(id) == state.LobbyID || room.ProtocolNumber != c.ProtocolNumber {
			return
		}
		masterNick := ""
		if room.MasterID != nil {
			if m := state.Client(*room.MasterID); m != nil {
				masterNick = m.Nick
			}
		}
		rows = append(rows, room.Info(masterNick))
	})
	return []action.Action{action.NewSend(message.ToSelf(message.NewRooms(rows)))}
}

func handleChat(state *model.State, c *model.Client, in *Inbound) []action.Action {
	if c.RoomID == nil {
		return []action.Action{action.NewProtocolError("not registered")}
	}
	dest := message.ToAll(message.NewChatMsg(c.Nick, in.Text))
	if *c.RoomID == state.LobbyID {
		dest = dest.InLobby()
	} else {
		dest = dest.InRoom(*c.RoomID)
	}
	return []action.Action{action.NewSend(dest)}
}

func handleCreateRoom(state *model.State, c *model.Client, in *Inbound) []action.Action {
	if c.RoomID == nil || !c.InLobby() {
		return []action.Action{action.NewProtocolError("already in a room")}
	}
	if in.RoomName == "" {
		return []action.Action{action.NewWarn("invalid room name")}
	}
	if state.HasRoomNamed(in.RoomName) {
		return []action.Action{action.NewWarn("room name already taken")}
	}
	var password *string
	if in.Password != "" {
		password = &in.Password
	}
	return []action.Action{action.NewAddRoom(in.RoomName, password)}
}

func handleJoinRoom(state *model.State, c *model.Client, in *Inbound) []action.Action {
	if c.RoomID == nil || !c.InLobby() {
		return []action.Action{action.NewProtocolError("already in a room")}
	}
	room := state.FindRoomByName(in.RoomName)
	if room == nil {
		return []action.Action{action.NewWarn("no such room")}
	}
	if room.ProtocolNumber != c.ProtocolNumber {
		return []action.Action{action.NewWarn("wrong protocol version")}
	}
	if room.Password != nil && *room.Password != in.Password {
		return []action.Action{action.NewWarn("wrong password")}
	}
	return []action.Action{action.NewMoveToRoom(room.ID)}
}

func handlePart(c *model.Client) []action.Action {
	if c.RoomID == nil || c.InLobby() {
		return []action.Action{action.NewProtocolError("not in a room")}
	}
	return []action.Action{action.NewMoveToLobby("part")}
}

func handleCfg(state *model.State, c *model.Client, in *Inbound) []action.Action {
	room := state.ClientRoom(c.ID)
	if room == nil || !c.IsMaster {
		return []action.Action{action.NewProtocolError("not room master")}
	}
	if !applyConfig(&room.Config, in.CfgKey, in.CfgValues) {
		return []action.Action{action.NewProtocolError("unknown config key")}
	}
	return []action.Action{
		action.NewSend(message.ToAll(message.NewConfigEntry(in.CfgKey, in.CfgValues)).InRoom(room.ID)),
	}
}

func handleAddTeam(state *model.State, c *model.Client, in *Inbound) []action.Action {
	room := state.ClientRoom(c.ID)
	if room == nil || c.InLobby() {
		return []action.Action{action.NewProtocolError("not in a room")}
	}
	if uint8(len(room.Teams)) >= room.TeamLimit {
		return []action.Action{action.NewWarn("too many teams")}
	}
	if room.AddableHedgehogs() == 0 {
		return []action.Action{action.NewWarn("too many hedgehogs")}
	}
	team := room.AddTeam(c.ID, in.Team)
	return []action.Action{
		action.NewSend(message.ToAll(message.NewTeamAdd(team.Info(c.Nick))).InRoom(room.ID)),
		action.NewSend(message.ToAll(message.NewTeamColor(team.Name, team.Color)).InRoom(room.ID)),
		action.NewSend(message.ToAll(message.NewHedgehogsNumber(team.Name, team.HedgehogsNumber)).InRoom(room.ID)),
		action.NewSendRoomUpdate(nil),
	}
}

func handleRemoveTeam(state *model.State, c *model.Client, in *Inbound) []action.Action {
	room := state.ClientRoom(c.ID)
	if room == nil {
		return []action.Action{action.NewProtocolError("not in a room")}
	}
	owns := false
	for _, t := range room.ClientTeams(c.ID) {
		if t.Name == in.TeamName {
			owns = true
			break
		}
	}
	if !owns {
		return []action.Action{action.NewProtocolError("not your team")}
	}
	return []action.Action{action.NewRemoveTeam(in.TeamName)}
}

func handleHHNum(state *model.State, c *model.Client, in *Inbound) []action.Action {
	room := state.ClientRoom(c.ID)
	if room == nil {
		return []action.Action{action.NewProtocolError("not in a room")}
	}
	for i := range room.Teams {
		ot := &room.Teams[i]
		if ot.Team.Name != in.TeamName {
			continue
		}
		if ot.OwnerID != c.ID {
			return []action.Action{action.NewProtocolError("not your team")}
		}
		budget := room.AddableHedgehogs() + ot.Team.HedgehogsNumber
		if in.HHNumber > budget {
			return []action.Action{action.NewWarn("too many hedgehogs")}
		}
		ot.Team.HedgehogsNumber = in.HHNumber
		return []action.Action{action.NewSend(message.ToAll(message.NewHedgehogsNumber(in.TeamName, in.HHNumber)).InRoom(room.ID))}
	}
	return []action.Action{action.NewProtocolError("no such team")}
}

func handleTeamColor(state *model.State, c *model.Client, in *Inbound) []action.Action {
	room := state.ClientRoom(c.ID)
	if room == nil {
		return []action.Action{action.NewProtocolError("not in a room")}
	}
	for _, ot := range room.Teams {
		if ot.Team.Name != in.TeamName && ot.Team.Color == in.Color {
			return []action.Action{action.NewWarn("color already taken")}
		}
	}
	for i := range room.Teams {
		ot := &room.Teams[i]
		if ot.Team.Name != in.TeamName {
			continue
		}
		if ot.OwnerID != c.ID {
			return []action.Action{action.NewProtocolError("not your team")}
		}
		ot.Team.Color = in.Color
		return []action.Action{action.NewSend(message.ToAll(message.NewTeamColor(in.TeamName, in.Color)).InRoom(room.ID))}
	}
	return []action.Action{action.NewProtocolError("no such team")}
}

func handleToggleReady(state *model.State, c *model.Client) []action.Action {
	room := state.ClientRoom(c.ID)
	if room == nil || c.IsMaster {
		return nil
	}
	flag := "+r"
	if c.IsReady {
		flag = "-r"
		if room.ReadyPlayersNumber > 0 {
			room.ReadyPlayersNumber--
		}
	} else {
		room.ReadyPlayersNumber++
	}
	c.IsReady = !c.IsReady
	return []action.Action{action.NewSend(message.ToAll(message.NewClientFlags(flag, []string{c.Nick})).InRoom(room.ID))}
}

func handleStartGame(state *model.State, c *model.Client) []action.Action {
	room := state.ClientRoom(c.ID)
	if room == nil || !c.IsMaster {
		return []action.Action{action.NewProtocolError("not room master")}
	}
	return []action.Action{action.NewStartRoomGame(room.ID)}
}

func handleEngineMsg(state *model.State, c *model.Client, in *Inbound) []action.Action {
	room := state.ClientRoom(c.ID)
	if room == nil || room.GameInfo == nil {
		return []action.Action{action.NewProtocolError("no round in progress")}
	}
	for _, frame := range in.EngineFrames {
		room.GameInfo.MsgLog = append(room.GameInfo.MsgLog, []byte(frame))
	}
	return []action.Action{
		action.NewSend(message.ToAll(message.NewForwardEngineMessage(in.EngineFrames)).InRoom(room.ID).ButSelf()),
	}
}

func handleCallVote(state *model.State, c *model.Client, in *Inbound) []action.Action {
	room := state.ClientRoom(c.ID)
	if room == nil || c.InLobby() {
		return []action.Action{action.NewProtocolError("not in a room")}
	}
	if room.Voting != nil {
		return []action.Action{action.NewWarn("a vote is already in progress")}
	}
	room.Voting = model.NewVoting(in.VoteKind, state.RoomClients(room.ID))
	return []action.Action{action.NewAddVote(true, false)}
}

func handleKick(state *model.State, c *model.Client, in *Inbound) []action.Action {
	room := state.ClientRoom(c.ID)
	if room == nil || !c.IsMaster {
		return []action.Action{action.NewProtocolError("not room master")}
	}
	kind := model.VoteKind{Tag: model.VoteKick, KickNick: in.KickNick}
	return []action.Action{action.NewApplyVoting(kind, room.ID)}
}

func applyConfig(cfg *model.RoomConfig, key string, values []string) bool {
	if len(values) == 0 {
		return false
	}
	switch key {
	case "MAP":
		cfg.MapType = values[0]
	case "MAPGEN":
		cfg.MapGenerator = parseUint32(values[0])
	case "MAZE_SIZE":
		cfg.MazeSize = parseUint32(values[0])
	case "TEMPLATE":
		cfg.Template = parseUint32(values[0])
	case "FEATURE_SIZE":
		cfg.FeatureSize = parseUint32(values[0])
	case "SEED":
		cfg.Seed = values[0]
	case "SCRIPT":
		cfg.Script = values[0]
	case "THEME":
		cfg.Theme = values[0]
	case "DRAWNMAP":
		cfg.DrawnMap = &values[0]
	case "AMMO":
		cfg.Ammo.Name = values[0]
		if len(values) > 1 {
			cfg.Ammo.Settings = &values[1]
		}
	case "SCHEME":
		cfg.Scheme.Name = values[0]
		cfg.Scheme.Settings = values[1:]
	default:
		return false
	}
	return true
}

func parseUint32(s string) uint32 {
	v, _ := strconv.ParseUint(s, 10, 32)
	return uint32(v)
}
