package reduce

import (
	"strconv"

	"redoubt/internal/action"
	"redoubt/internal/message"
	"redoubt/internal/model"
)

// addVote records one ballot and closes the vote once its quorum
// clause fires (actions.rs's AddVote arm, spec.md §4.4, §8 P9 — the
// two-clause short-circuit below must not be simplified).
func (r *Reducer) addVote(actorID model.ClientID, vote, isForced bool) {
	var actions []action.Action
	room := r.State.ClientRoom(actorID)
	if room == nil {
		r.React(actorID, actions)
		return
	}

	voting := room.Voting
	if voting == nil {
		actions = append(actions, action.NewSend(message.ToSelf(message.NewChatMsg("hedgewars", "There's no voting going on."))))
		r.React(actorID, actions)
		return
	}

	var result *bool
	if isForced || !voting.HasVoted(actorID) {
		actions = append(actions, action.NewSend(message.ToSelf(message.NewChatMsg("hedgewars", "Your vote has been counted."))))
		voting.Votes = append(voting.Votes, model.Ballot{VoterID: actorID, Vote: vote})

		pro, contra := voting.Tally()
		quota := voting.SuccessQuota()

		if isForced && vote || pro >= quota {
			yes := true
			result = &yes
		} else if isForced && !vote || contra > len(voting.Voters)-quota {
			no := false
			result = &no
		}
	} else {
		actions = append(actions, action.NewSend(message.ToSelf(message.NewChatMsg("hedgewars", "You already have voted."))))
	}

	if result != nil {
		actions = append(actions, action.NewSend(message.ToAll(message.NewChatMsg("hedgewars", "Voting closed.")).InRoom(room.ID)))
		kind := voting.Kind
		room.Voting = nil
		if *result {
			actions = append(actions, action.NewApplyVoting(kind, room.ID))
		}
	}

	r.React(actorID, actions)
}

// applyVoting executes a vote's decided outcome. The acting id for
// the follow-up React call changes to the kicked client for
// VoteKick, matching actions.rs's `server.react(id, actions)` where
// id is reassigned inside the match.
func (r *Reducer) applyVoting(actorID model.ClientID, kind model.VoteKind, roomID model.RoomID) {
	var actions []action.Action
	reactAs := actorID

	switch kind.Tag {
	case model.VoteKick:
		if c := r.State.FindClientByNick(kind.KickNick); c != nil && c.RoomID != nil && *c.RoomID == roomID {
			reactAs = c.ID
			actions = append(actions,
				action.NewSend(message.ToSelf(message.NewKicked())),
				action.NewMoveToLobby("kicked"),
			)
		}

	case model.VoteMap:
		actions = append(actions, action.NewWarn("not implemented"))

	case model.VotePause:
		room := r.State.Room(roomID)
		if room != nil && room.GameInfo != nil {
			room.GameInfo.IsPaused = !room.GameInfo.IsPaused
			actions = append(actions,
				action.NewSend(message.ToAll(message.NewChatMsg("hedgewars", "Pause toggled.")).InRoom(roomID)),
				action.NewSend(message.ToAll(message.NewForwardEngineMessage([]string{pauseToggleFrame()})).InRoom(roomID)),
			)
		}

	case model.VoteNewSeed:
		room := r.State.Room(roomID)
		if room != nil {
			seed := strconv.Itoa(r.RNG.Intn(1000000000))
			room.Config.Seed = seed
			actions = append(actions, action.NewSend(message.ToAll(message.NewConfigEntry("SEED", []string{seed})).InRoom(roomID)))
		}

	case model.VoteHedgehogsPerTeam:
		room := r.State.Room(roomID)
		if room != nil {
			names := room.SetHedgehogsNumber(kind.HedgehogsNumber)
			for _, name := range names {
				actions = append(actions, action.NewSend(message.ToAll(message.NewHedgehogsNumber(name, kind.HedgehogsNumber)).InRoom(roomID)))
			}
		}
	}

	r.React(reactAs, actions)
}
