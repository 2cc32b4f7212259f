package reduce

import (
	"redoubt/internal/action"
	"redoubt/internal/message"
	"redoubt/internal/model"
)

// moveToRoom seats actorID in roomID, replaying mid-game join state
// when a round is already underway (actions.rs's MoveToRoom arm,
// spec.md §4.3 — preserve exactly).
func (r *Reducer) moveToRoom(actorID model.ClientID, roomID model.RoomID) {
	room := r.State.Room(roomID)
	c := r.State.Client(actorID)
	if room == nil || c == nil {
		return
	}

	room.PlayersNumber++
	c.RoomID = model.RoomIDOrNil(roomID)

	isMaster := room.MasterID != nil && *room.MasterID == c.ID
	c.IsMaster = isMaster
	c.IsReady = isMaster
	c.IsJoinedMidGame = false
	if isMaster {
		room.ReadyPlayersNumber++
	}

	actions := []action.Action{
		action.NewSend(message.ToAll(message.NewRoomJoined([]string{c.Nick})).InRoom(roomID)),
		action.NewSend(message.ToAll(message.NewClientFlags("+i", []string{c.Nick}))),
		action.NewSendRoomUpdate(nil),
	}
	if room.Greeting != "" {
		actions = append(actions, action.NewSend(message.ToSelf(message.NewChatMsg("[greeting]", room.Greeting))))
	}

	if !c.IsMaster {
		var teamNames []string
		if room.GameInfo != nil {
			info := room.GameInfo
			c.IsInGame = true
			c.IsJoinedMidGame = true

			teams := info.ClientTeams(c.ID)
			c.TeamsInGame = uint8(len(teams))
			if len(teams) > 0 {
				color := teams[0].Color
				c.Clan = &color
			}
			for _, t := range teams {
				teamNames = append(teamNames, t.Name)
			}

			if len(teamNames) > 0 {
				info.LeftTeams = filterOutNames(info.LeftTeams, teamNames)
				info.TeamsInGame += uint8(len(teamNames))
				room.Teams = filterOutOwnedByName(info.TeamsAtStart, teamNames)
			}
		}

		actions = append(actions, action.NewSendRoomData(actorID, true, true, true))

		if room.GameInfo != nil {
			info := room.GameInfo
			actions = append(actions,
				action.NewSend(message.ToSelf(message.NewRunGame())),
				action.NewSend(message.ToAll(message.NewClientFlags("+g", []string{c.Nick})).InRoom(room.ID)),
				action.NewSend(message.ToSelf(message.NewForwardEngineMessage([]string{spectateFrame()}))),
				action.NewSend(message.ToSelf(message.NewForwardEngineMessage(cloneFrames(info.MsgLog)))),
			)
			for _, name := range teamNames {
				actions = append(actions, action.NewSend(message.ToAll(message.NewForwardEngineMessage([]string{teamGoneFrame(name)})).InRoom(room.ID)))
			}
			if info.IsPaused {
				actions = append(actions, action.NewSend(message.ToAll(message.NewForwardEngineMessage([]string{pauseToggleFrame()})).InRoom(room.ID)))
			}
		}
	}

	r.React(actorID, actions)
}

func filterOutNames(names []string, remove []string) []string {
	out := names[:0]
	for _, n := range names {
		if !containsString(remove, n) {
			out = append(out, n)
		}
	}
	return out
}

func filterOutOwnedByName(teams []model.OwnedTeam, remove []string) []model.OwnedTeam {
	var out []model.OwnedTeam
	for _, ot := range teams {
		if !containsString(remove, ot.Team.Name) {
			out = append(out, ot)
		}
	}
	return out
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func cloneFrames(frames [][]byte) []string {
	out := make([]string, len(frames))
	for i, f := range frames {
		out[i] = string(f)
	}
	return out
}

// moveToLobby is the two-phase departure from a room (spec.md §4.3
// "preserve exactly"): phase A runs while the client is still
// attached to the room, phase B runs after RoomID has flipped to the
// lobby. Both phases go through a full React drain before the next
// begins, exactly as actions.rs's MoveToLobby arm calls server.react
// twice.
func (r *Reducer) moveToLobby(actorID model.ClientID, reason string) {
	lobbyID := r.State.LobbyID

	var phaseA []action.Action
	if c := r.State.Client(actorID); c != nil {
		if room := r.State.ClientRoom(actorID); room != nil {
			room.PlayersNumber--
			if c.IsReady && room.ReadyPlayersNumber > 0 {
				room.ReadyPlayersNumber--
			}
			if c.IsMaster && (room.PlayersNumber > 0 || room.IsFixed) {
				phaseA = append(phaseA, action.NewChangeMaster(room.ID, nil))
			}
			phaseA = append(phaseA, action.NewSend(message.ToAll(message.NewClientFlags("-i", []string{c.Nick}))))
		}
	}
	r.React(actorID, phaseA)

	var phaseB []action.Action
	c := r.State.Client(actorID)
	if c == nil {
		return
	}
	room := r.State.ClientRoom(actorID)
	if room == nil {
		return
	}
	c.RoomID = model.RoomIDOrNil(lobbyID)

	if room.PlayersNumber == 0 && !room.IsFixed {
		phaseB = append(phaseB, action.NewRemoveRoom(room.ID))
	} else {
		phaseB = append(phaseB,
			action.DoRemoveClientTeams,
			action.NewSend(message.ToAll(message.NewRoomLeft(c.Nick, reason)).InRoom(room.ID).ButSelf()),
			action.NewSendRoomUpdate(&room.Name),
		)
	}
	r.React(actorID, phaseB)
}

// sendRoomData replays room config/teams/flags to a single client
// (actions.rs's SendRoomData arm), used both for a fresh join and for
// a finished round's mid-game-joiner catch-up.
func (r *Reducer) sendRoomData(actorID model.ClientID, to model.ClientID, withTeams, withConfig, withFlags bool) {
	room := r.State.ClientRoom(actorID)
	if room == nil {
		return
	}

	var actions []action.Action
	if withConfig {
		actions = append(actions, action.NewSend(message.To(to, message.NewConfigEntry("FULLMAPCONFIG", room.Config.MapConfig()))))
		for _, cfg := range room.Config.GameConfig() {
			actions = append(actions, action.NewSend(message.To(to, message.NewConfigEntry(cfg.Key, cfg.Values))))
		}
	}
	if withTeams {
		currentTeams := room.Teams
		if room.GameInfo != nil {
			currentTeams = room.GameInfo.TeamsAtStart
		}
		for _, ot := range currentTeams {
			ownerNick := ""
			if owner := r.State.Client(ot.OwnerID); owner != nil {
				ownerNick = owner.Nick
			}
			actions = append(actions,
				action.NewSend(message.To(to, message.NewTeamAdd(ot.Team.Info(ownerNick)))),
				action.NewSend(message.To(to, message.NewTeamColor(ot.Team.Name, ot.Team.Color))),
				action.NewSend(message.To(to, message.NewHedgehogsNumber(ot.Team.Name, ot.Team.HedgehogsNumber))),
			)
		}
	}
	if withFlags {
		if room.MasterID != nil {
			if master := r.State.Client(*room.MasterID); master != nil {
				actions = append(actions, action.NewSend(message.To(to, message.NewClientFlags("+h", []string{master.Nick}))))
			}
		}
		var readyNicks []string
		for _, id := range r.State.RoomClients(room.ID) {
			client := r.State.Client(id)
			if client != nil && client.IsReady {
				readyNicks = append(readyNicks, client.Nick)
			}
		}
		if len(readyNicks) > 0 {
			actions = append(actions, action.NewSend(message.To(to, message.NewClientFlags("+r", readyNicks))))
		}
	}
	r.React(actorID, actions)
}
