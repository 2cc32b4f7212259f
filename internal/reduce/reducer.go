// Package reduce implements run_action (spec.md §4), the reducer that
// turns one Action into model mutations and routed outbound messages,
// possibly emitting further actions to run before control returns to
// its caller. It is a direct, action-by-action port of
// original_source/gameServer2/src/server/actions.rs's `run_action`,
// restructured around a single global reactor (spec.md §5) instead of
// the teacher's per-room actor goroutines (see DESIGN.md).
package reduce

import (
	"redoubt/internal/action"
	"redoubt/internal/engine"
	"redoubt/internal/log"
	"redoubt/internal/message"
	"redoubt/internal/model"
	"redoubt/internal/prng"
	"redoubt/internal/protocol"
	"redoubt/internal/router"
)

// Reducer owns nothing itself; it operates on a shared model.State,
// appending resolved deliveries to Queue and disconnected ids to
// Removed, exactly as core.rs's HWServer carries `output` and
// `removed_clients` alongside `clients`/`rooms`.
type Reducer struct {
	State  *model.State
	Router *router.Router
	RNG    prng.Source
	Log    log.Logger

	Queue   []router.Outbound
	Removed []model.ClientID
}

// New returns a Reducer bound to state.
func New(state *model.State, rng prng.Source, logger log.Logger) *Reducer {
	return &Reducer{
		State:  state,
		Router: router.New(state),
		RNG:    rng,
		Log:    logger,
	}
}

// React runs each action in order on behalf of actorID, exactly
// mirroring core.rs::react's `for action in actions { run_action(...) }`.
// An action's own emitted follow-ups are fully drained, depth-first,
// before the next action in this list is run — matching the Rust
// implementation's recursive `server.react` call sites.
func (r *Reducer) React(actorID model.ClientID, actions []action.Action) {
	for _, a := range actions {
		r.run(actorID, a)
	}
}

func (r *Reducer) run(actorID model.ClientID, a action.Action) {
	switch a.Tag {
	case action.Send:
		r.Router.Route(actorID, a.Pending, &r.Queue)

	case action.ByeClient:
		r.byeClient(actorID, a.Text)

	case action.RemoveClient:
		r.removeClient(actorID)

	case action.ReactProtocolMessage:
		inbound, _ := a.Inbound.(*protocol.Inbound)
		if inbound != nil {
			r.React(actorID, protocol.Handle(r.State, actorID, inbound))
		}

	case action.CheckRegistered:
		r.checkRegistered(actorID)

	case action.JoinLobby:
		r.joinLobby(actorID)

	case action.AddRoom:
		r.addRoom(actorID, a.Name, a.Password)

	case action.RemoveRoom:
		r.removeRoom(actorID, a.RoomID)

	case action.MoveToRoom:
		r.moveToRoom(actorID, a.RoomID)

	case action.MoveToLobby:
		r.moveToLobby(actorID, a.Text)

	case action.ChangeMaster:
		r.changeMaster(actorID, a.RoomID, a.Candidate)

	case action.RemoveTeam:
		r.removeTeam(actorID, a.TeamName)

	case action.RemoveClientTeams:
		r.removeClientTeams(actorID)

	case action.SendRoomUpdate:
		r.sendRoomUpdate(actorID, a.OldName)

	case action.StartRoomGame:
		r.startRoomGame(actorID, a.RoomID)

	case action.SendTeamRemovalMessage:
		r.sendTeamRemovalMessage(actorID, a.TeamName)

	case action.FinishRoomGame:
		r.finishRoomGame(actorID, a.RoomID)

	case action.SendRoomData:
		r.sendRoomData(actorID, a.To, a.WithTeams, a.WithConfig, a.WithFlags)

	case action.AddVote:
		r.addVote(actorID, a.Vote, a.IsForced)

	case action.ApplyVoting:
		r.applyVoting(actorID, a.VoteKind, a.RoomID)

	case action.Warn:
		r.run(actorID, action.NewSend(message.ToSelf(message.NewWarning(a.Text))))

	case action.ProtocolError:
		r.run(actorID, action.NewSend(message.ToSelf(message.NewError(a.Text))))

	default:
		r.Log.Errorf("unknown action tag: %v", a.Tag)
	}
}

// byeClient is the orderly-disconnect action (spec.md §4.2).
func (r *Reducer) byeClient(actorID model.ClientID, reason string) {
	c := r.State.Client(actorID)
	if c == nil {
		return
	}
	nick := c.Nick

	if c.RoomID != nil && *c.RoomID != r.State.LobbyID {
		r.React(actorID, []action.Action{action.NewMoveToLobby("quit: " + reason)})
	}

	r.React(actorID, []action.Action{
		action.NewSend(message.ToAll(message.NewLobbyLeft(nick, reason))),
		action.NewSend(message.ToSelf(message.NewBye(reason))),
		action.DoRemoveClient,
	})
}

// removeClient deletes the client slot and records it for the
// transport (core.rs's removed_clients bookkeeping, spec.md §4.2).
func (r *Reducer) removeClient(actorID model.ClientID) {
	r.Removed = append(r.Removed, actorID)
	if r.State.Clients.Contains(int(actorID)) {
		r.State.Clients.Remove(int(actorID))
	}
}

// checkRegistered emits JoinLobby once both halves of registration
// have completed (spec.md §4.2). A client that has already joined the
// lobby is left where it is.
func (r *Reducer) checkRegistered(actorID model.ClientID) {
	c := r.State.Client(actorID)
	if c != nil && c.IsRegistered() && c.RoomID == nil {
		r.React(actorID, []action.Action{action.DoJoinLobby})
	}
}

// removeTeam deletes a team from the acting client's room, recording
// it in left_teams if a round is in progress (spec.md §4.2).
func (r *Reducer) removeTeam(actorID model.ClientID, name string) {
	c := r.State.Client(actorID)
	room := r.State.ClientRoom(actorID)
	if c == nil || room == nil {
		return
	}
	room.RemoveTeam(name)

	var actions []action.Action
	if room.GameInfo != nil {
		room.GameInfo.LeftTeams = append(room.GameInfo.LeftTeams, name)
	}
	actions = append(actions,
		action.NewSend(message.ToAll(message.NewTeamRemove(name)).InRoom(room.ID)),
		action.NewSendRoomUpdate(nil),
	)
	if room.GameInfo != nil && c.IsInGame {
		actions = append(actions, action.NewSendTeamRemovalMessage(name))
	}
	r.React(actorID, actions)
}

// removeClientTeams emits one RemoveTeam per team the acting client
// owns in its current room (spec.md §4.2).
func (r *Reducer) removeClientTeams(actorID model.ClientID) {
	room := r.State.ClientRoom(actorID)
	if room == nil {
		return
	}
	var actions []action.Action
	for _, t := range room.ClientTeams(actorID) {
		actions = append(actions, action.NewRemoveTeam(t.Name))
	}
	r.React(actorID, actions)
}

// sendRoomUpdate broadcasts RoomUpdated to same-protocol clients
// (spec.md §4.2).
func (r *Reducer) sendRoomUpdate(actorID model.ClientID, oldName *string) {
	c := r.State.Client(actorID)
	room := r.State.ClientRoom(actorID)
	if c == nil || room == nil {
		return
	}
	name := room.Name
	if oldName != nil {
		name = *oldName
	}
	masterNick := ""
	if room.MasterID != nil {
		if m := r.State.Client(*room.MasterID); m != nil {
			masterNick = m.Nick
		}
	}
	r.React(actorID, []action.Action{
		action.NewSend(message.ToAll(message.NewRoomUpdated(name, room.Info(masterNick))).WithProtocol(room.ProtocolNumber)),
	})
}

// spectateFrame and friends are the synthetic engine control frames
// the reducer forwards (spec.md §4.3, §4.4).
func spectateFrame() string { return engine.ToEngineMsgString("e$spectate 1") }
func pauseToggleFrame() string { return engine.ToEngineMsgString("I") }
func teamGoneFrame(name string) string { return engine.ToEngineMsgString("G" + name) }
func teamRemovedFrame(name string) string { return engine.ToEngineMsgString("F" + name) }
