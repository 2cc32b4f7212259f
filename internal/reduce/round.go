package reduce

import (
	"redoubt/internal/action"
	"redoubt/internal/message"
	"redoubt/internal/model"
)

// startRoomGame begins a round if the room has at least two clans and
// no round is already running (actions.rs's StartRoomGame arm).
func (r *Reducer) startRoomGame(actorID model.ClientID, roomID model.RoomID) {
	room := r.State.Room(roomID)
	if room == nil {
		return
	}

	if !room.HasMultipleClans() {
		r.React(actorID, []action.Action{action.NewWarn("The game can't be started with less than two clans!")})
		return
	}
	if room.GameInfo != nil {
		r.React(actorID, []action.Action{action.NewWarn("The game is already in progress")})
		return
	}

	room.StartRound()

	var roomNicks []string
	for _, id := range r.State.RoomClients(roomID) {
		c := r.State.Client(id)
		if c == nil {
			continue
		}
		c.IsInGame = false
		c.TeamIndices = room.ClientTeamIndices(c.ID)
		roomNicks = append(roomNicks, c.Nick)
	}

	r.React(actorID, []action.Action{
		action.NewSend(message.ToAll(message.NewRunGame()).InRoom(roomID)),
		action.NewSendRoomUpdate(nil),
		action.NewSend(message.ToAll(message.NewClientFlags("+g", roomNicks)).InRoom(roomID)),
	})
}

// sendTeamRemovalMessage forwards a team's departure to the engine and
// finishes the round once every team has left (actions.rs's
// SendTeamRemovalMessage arm).
func (r *Reducer) sendTeamRemovalMessage(actorID model.ClientID, teamName string) {
	room := r.State.ClientRoom(actorID)
	if room == nil || room.GameInfo == nil {
		return
	}
	info := room.GameInfo

	var actions []action.Action
	actions = append(actions, action.NewSend(message.ToAll(message.NewForwardEngineMessage([]string{teamRemovedFrame(teamName)})).InRoom(room.ID).ButSelf()))

	info.TeamsInGame--
	if info.TeamsInGame == 0 {
		actions = append(actions, action.NewFinishRoomGame(room.ID))
	}

	removeMsg := teamRemovedFrame(teamName)
	if info.SyncMsg != nil {
		info.MsgLog = append(info.MsgLog, info.SyncMsg)
		info.SyncMsg = nil
	}
	info.MsgLog = append(info.MsgLog, []byte(removeMsg))
	actions = append(actions, action.NewSend(message.ToAll(message.NewForwardEngineMessage([]string{removeMsg})).InRoom(room.ID).ButSelf()))

	r.React(actorID, actions)
}

// finishRoomGame tears down a completed round, catching mid-game
// joiners up on the config they missed and clearing per-client game
// flags (actions.rs's FinishRoomGame arm).
func (r *Reducer) finishRoomGame(actorID model.ClientID, roomID model.RoomID) {
	room := r.State.Room(roomID)
	if room == nil {
		return
	}
	oldInfo := room.GameInfo
	room.GameInfo = nil
	room.ReadyPlayersNumber = 1

	actions := []action.Action{
		action.NewSendRoomUpdate(nil),
		action.NewSend(message.ToAll(message.NewRoundFinished()).InRoom(room.ID)),
	}

	if oldInfo != nil {
		for _, id := range r.State.RoomClients(roomID) {
			c := r.State.Client(id)
			if c == nil || !c.IsJoinedMidGame {
				continue
			}
			actions = append(actions, action.NewSendRoomData(c.ID, false, true, false))
			for _, name := range oldInfo.LeftTeams {
				actions = append(actions, action.NewSend(message.To(c.ID, message.NewTeamRemove(name))))
			}
		}
	}

	var nonMasterNicks []string
	for _, id := range r.State.RoomClients(roomID) {
		c := r.State.Client(id)
		if c == nil {
			continue
		}
		c.IsReady = c.IsMaster
		c.IsJoinedMidGame = false
		if !c.IsMaster {
			nonMasterNicks = append(nonMasterNicks, c.Nick)
		}
	}
	if len(nonMasterNicks) > 0 {
		actions = append(actions, action.NewSend(message.ToAll(message.NewClientFlags("-r", nonMasterNicks)).InRoom(roomID)))
	}

	r.React(actorID, actions)
}
