package protocol

import (
	"testing"

	"redoubt/internal/action"
	"redoubt/internal/model"
)

func newTestState() (*model.State, model.ClientID) {
	s := model.NewState(16, 8)
	id := model.ClientID(s.Clients.Insert(model.NewClient(0, "salt", 1)))
	c := s.Client(id)
	c.ID = id
	return s, id
}

func register(s *model.State, id model.ClientID, nick string) {
	c := s.Client(id)
	c.ProtocolNumber = 58
	c.Nick = nick
	c.RoomID = model.RoomIDOrNil(s.LobbyID)
}

func tagsOf(actions []action.Action) []action.Tag {
	out := make([]action.Tag, len(actions))
	for i, a := range actions {
		out[i] = a.Tag
	}
	return out
}

func hasTag(actions []action.Action, tag action.Tag) bool {
	for _, a := range actions {
		if a.Tag == tag {
			return true
		}
	}
	return false
}

func TestHandleUnknownClientReturnsNil(t *testing.T) {
	s, _ := newTestState()
	got := Handle(s, model.ClientID(99), &Inbound{Tag: CmdList})
	if got != nil {
		t.Errorf("Handle for a missing client = %v, want nil", got)
	}
}

func TestHandleProtoSetsProtocolOnce(t *testing.T) {
	s, id := newTestState()
	c := s.Client(id)

	got := Handle(s, id, &Inbound{Tag: CmdProto, ProtocolNumber: 58})
	if c.ProtocolNumber != 58 {
		t.Fatalf("ProtocolNumber = %d, want 58", c.ProtocolNumber)
	}
	if !hasTag(got, action.CheckRegistered) {
		t.Errorf("CmdProto actions = %v, want CheckRegistered included", tagsOf(got))
	}

	again := Handle(s, id, &Inbound{Tag: CmdProto, ProtocolNumber: 58})
	if !hasTag(again, action.ProtocolError) {
		t.Errorf("second CmdProto should error, got %v", tagsOf(again))
	}
}

func TestHandleNickRejectsDuplicate(t *testing.T) {
	s, id := newTestState()
	s.Client(id).ProtocolNumber = 58
	other := model.ClientID(s.Clients.Insert(model.NewClient(0, "salt", 1)))
	s.Client(other).ID = other
	s.Client(other).Nick = "alice"

	got := Handle(s, id, &Inbound{Tag: CmdNick, Nick: "alice"})
	if !hasTag(got, action.Warn) {
		t.Errorf("duplicate nick should warn, got %v", tagsOf(got))
	}
	if s.Client(id).Nick != "" {
		t.Error("nick should not be assigned after a collision")
	}
}

func TestHandleNickAcceptsFreshNick(t *testing.T) {
	s, id := newTestState()
	s.Client(id).ProtocolNumber = 58

	got := Handle(s, id, &Inbound{Tag: CmdNick, Nick: "alice"})
	if s.Client(id).Nick != "alice" {
		t.Errorf("Nick = %q, want alice", s.Client(id).Nick)
	}
	if !hasTag(got, action.CheckRegistered) {
		t.Errorf("fresh nick should trigger CheckRegistered, got %v", tagsOf(got))
	}
}

func TestHandleCreateRoomRejectsWhenNotInLobby(t *testing.T) {
	s, id := newTestState()
	register(s, id, "alice")
	roomID := s.AddRoom()
	s.Client(id).RoomID = model.RoomIDOrNil(roomID)

	got := Handle(s, id, &Inbound{Tag: CmdCreateRoom, RoomName: "arena"})
	if !hasTag(got, action.ProtocolError) {
		t.Errorf("CreateRoom outside the lobby should error, got %v", tagsOf(got))
	}
}

func TestHandleCreateRoomRejectsDuplicateName(t *testing.T) {
	s, id := newTestState()
	register(s, id, "alice")
	roomID := s.AddRoom()
	s.Room(roomID).Name = "arena"

	got := Handle(s, id, &Inbound{Tag: CmdCreateRoom, RoomName: "arena"})
	if !hasTag(got, action.Warn) {
		t.Errorf("duplicate room name should warn, got %v", tagsOf(got))
	}
}

func TestHandleCreateRoomSucceeds(t *testing.T) {
	s, id := newTestState()
	register(s, id, "alice")

	got := Handle(s, id, &Inbound{Tag: CmdCreateRoom, RoomName: "arena"})
	if len(got) != 1 || got[0].Tag != action.AddRoom || got[0].Name != "arena" {
		t.Errorf("CreateRoom result = %+v", got)
	}
}

func TestHandleJoinRoomChecksPasswordAndProtocol(t *testing.T) {
	s, id := newTestState()
	register(s, id, "alice")
	roomID := s.AddRoom()
	room := s.Room(roomID)
	room.Name = "arena"
	room.ProtocolNumber = 58
	pw := "secret"
	room.Password = &pw

	wrongPw := Handle(s, id, &Inbound{Tag: CmdJoinRoom, RoomName: "arena", Password: "nope"})
	if !hasTag(wrongPw, action.Warn) {
		t.Errorf("wrong password should warn, got %v", tagsOf(wrongPw))
	}

	ok := Handle(s, id, &Inbound{Tag: CmdJoinRoom, RoomName: "arena", Password: "secret"})
	if len(ok) != 1 || ok[0].Tag != action.MoveToRoom || ok[0].RoomID != roomID {
		t.Errorf("correct password should move to room, got %+v", ok)
	}
}

func TestHandlePartRequiresBeingInARoom(t *testing.T) {
	s, id := newTestState()
	register(s, id, "alice")

	got := Handle(s, id, &Inbound{Tag: CmdPart})
	if !hasTag(got, action.ProtocolError) {
		t.Errorf("Part while in the lobby should error, got %v", tagsOf(got))
	}
}

func TestHandleCfgRequiresMaster(t *testing.T) {
	s, id := newTestState()
	register(s, id, "alice")
	roomID := s.AddRoom()
	s.Client(id).RoomID = model.RoomIDOrNil(roomID)

	got := Handle(s, id, &Inbound{Tag: CmdCfg, CfgKey: "MAP", CfgValues: []string{"island"}})
	if !hasTag(got, action.ProtocolError) {
		t.Errorf("non-master Cfg should error, got %v", tagsOf(got))
	}

	s.Client(id).IsMaster = true
	applied := Handle(s, id, &Inbound{Tag: CmdCfg, CfgKey: "MAP", CfgValues: []string{"island"}})
	if s.Room(roomID).Config.MapType != "island" {
		t.Errorf("MAP config not applied: %+v", s.Room(roomID).Config)
	}
	if len(applied) != 1 || applied[0].Tag != action.Send {
		t.Errorf("Cfg should broadcast the config entry, got %+v", applied)
	}
}

func TestHandleAddTeamEnforcesLimitsAndHedgehogBudget(t *testing.T) {
	s, id := newTestState()
	register(s, id, "alice")
	roomID := s.AddRoom()
	room := s.Room(roomID)
	s.Client(id).RoomID = model.RoomIDOrNil(roomID)

	got := Handle(s, id, &Inbound{Tag: CmdAddTeam, Team: model.TeamInfo{Name: "reds"}})
	if len(room.Teams) != 1 {
		t.Fatalf("AddTeam did not add a team: %+v", room.Teams)
	}
	if !hasTag(got, action.Send) || !hasTag(got, action.SendRoomUpdate) {
		t.Errorf("AddTeam actions = %v", tagsOf(got))
	}

	room.TeamLimit = 1
	overLimit := Handle(s, id, &Inbound{Tag: CmdAddTeam, Team: model.TeamInfo{Name: "blues"}})
	if !hasTag(overLimit, action.Warn) {
		t.Errorf("exceeding TeamLimit should warn, got %v", tagsOf(overLimit))
	}
}

func TestHandleRemoveTeamRejectsNonOwner(t *testing.T) {
	s, id := newTestState()
	register(s, id, "alice")
	roomID := s.AddRoom()
	room := s.Room(roomID)
	s.Client(id).RoomID = model.RoomIDOrNil(roomID)
	other := model.ClientID(42)
	room.AddTeam(other, model.TeamInfo{Name: "reds"})

	got := Handle(s, id, &Inbound{Tag: CmdRemoveTeam, TeamName: "reds"})
	if !hasTag(got, action.ProtocolError) {
		t.Errorf("removing another client's team should error, got %v", tagsOf(got))
	}
}

func TestHandleHHNumRejectsOverBudget(t *testing.T) {
	s, id := newTestState()
	register(s, id, "alice")
	roomID := s.AddRoom()
	room := s.Room(roomID)
	s.Client(id).RoomID = model.RoomIDOrNil(roomID)
	room.AddTeam(id, model.TeamInfo{Name: "reds"})

	got := Handle(s, id, &Inbound{Tag: CmdHHNum, TeamName: "reds", HHNumber: model.MaxHedgehogsInRoom + 10})
	if !hasTag(got, action.Warn) {
		t.Errorf("HHNum exceeding the room budget should warn, got %v", tagsOf(got))
	}
}

func TestHandleTeamColorRejectsTakenColor(t *testing.T) {
	s, id := newTestState()
	register(s, id, "alice")
	roomID := s.AddRoom()
	room := s.Room(roomID)
	s.Client(id).RoomID = model.RoomIDOrNil(roomID)
	room.AddTeam(id, model.TeamInfo{Name: "reds"})
	room.AddTeam(id, model.TeamInfo{Name: "blues"})
	takenColor := room.Teams[0].Team.Color

	got := Handle(s, id, &Inbound{Tag: CmdTeamColor, TeamName: "blues", Color: takenColor})
	if !hasTag(got, action.Warn) {
		t.Errorf("recoloring onto a taken color should warn, got %v", tagsOf(got))
	}
}

func TestHandleToggleReadyFlipsFlag(t *testing.T) {
	s, id := newTestState()
	register(s, id, "alice")
	roomID := s.AddRoom()
	s.Client(id).RoomID = model.RoomIDOrNil(roomID)

	Handle(s, id, &Inbound{Tag: CmdToggleReady})
	if !s.Client(id).IsReady {
		t.Fatal("IsReady should flip to true")
	}
	Handle(s, id, &Inbound{Tag: CmdToggleReady})
	if s.Client(id).IsReady {
		t.Fatal("IsReady should flip back to false")
	}
}

func TestHandleStartGameRequiresMaster(t *testing.T) {
	s, id := newTestState()
	register(s, id, "alice")
	roomID := s.AddRoom()
	s.Client(id).RoomID = model.RoomIDOrNil(roomID)

	got := Handle(s, id, &Inbound{Tag: CmdStartGame})
	if !hasTag(got, action.ProtocolError) {
		t.Errorf("non-master StartGame should error, got %v", tagsOf(got))
	}
}

func TestHandleEngineMsgRequiresActiveRound(t *testing.T) {
	s, id := newTestState()
	register(s, id, "alice")
	roomID := s.AddRoom()
	s.Client(id).RoomID = model.RoomIDOrNil(roomID)

	got := Handle(s, id, &Inbound{Tag: CmdEngineMsg, EngineFrames: []string{"x"}})
	if !hasTag(got, action.ProtocolError) {
		t.Errorf("EngineMsg with no round in progress should error, got %v", tagsOf(got))
	}

	room := s.Room(roomID)
	room.GameInfo = &model.GameInfo{}
	ok := Handle(s, id, &Inbound{Tag: CmdEngineMsg, EngineFrames: []string{"x"}})
	if len(room.GameInfo.MsgLog) != 1 {
		t.Errorf("EngineMsg should append to MsgLog, got %v", room.GameInfo.MsgLog)
	}
	if !hasTag(ok, action.Send) {
		t.Errorf("EngineMsg should forward the frame, got %v", tagsOf(ok))
	}
}

func TestHandleCallVoteRejectsWhenVotingInProgress(t *testing.T) {
	s, id := newTestState()
	register(s, id, "alice")
	roomID := s.AddRoom()
	room := s.Room(roomID)
	s.Client(id).RoomID = model.RoomIDOrNil(roomID)
	room.Voting = model.NewVoting(model.VoteKind{Tag: model.VotePause}, []model.ClientID{id})

	got := Handle(s, id, &Inbound{Tag: CmdCallVote, VoteKind: model.VoteKind{Tag: model.VotePause}})
	if !hasTag(got, action.Warn) {
		t.Errorf("CallVote during an active vote should warn, got %v", tagsOf(got))
	}
}

func TestHandleCallVoteStartsVotingAndCastsFirstBallot(t *testing.T) {
	s, id := newTestState()
	register(s, id, "alice")
	roomID := s.AddRoom()
	room := s.Room(roomID)
	s.Client(id).RoomID = model.RoomIDOrNil(roomID)

	got := Handle(s, id, &Inbound{Tag: CmdCallVote, VoteKind: model.VoteKind{Tag: model.VotePause}})
	if room.Voting == nil {
		t.Fatal("CallVote should open a Voting")
	}
	if len(got) != 1 || got[0].Tag != action.AddVote || !got[0].Vote {
		t.Errorf("CallVote should immediately cast the caller's yes vote, got %+v", got)
	}
}

func TestHandleKickRequiresMaster(t *testing.T) {
	s, id := newTestState()
	register(s, id, "alice")
	roomID := s.AddRoom()
	s.Client(id).RoomID = model.RoomIDOrNil(roomID)

	got := Handle(s, id, &Inbound{Tag: CmdKick, KickNick: "bob"})
	if !hasTag(got, action.ProtocolError) {
		t.Errorf("Kick from a non-master should error, got %v", tagsOf(got))
	}
}

func TestHandleKickAppliesImmediately(t *testing.T) {
	s, id := newTestState()
	register(s, id, "alice")
	roomID := s.AddRoom()
	s.Client(id).RoomID = model.RoomIDOrNil(roomID)
	s.Client(id).IsMaster = true

	got := Handle(s, id, &Inbound{Tag: CmdKick, KickNick: "bob"})
	if len(got) != 1 || got[0].Tag != action.ApplyVoting || got[0].VoteKind.Tag != model.VoteKick {
		t.Errorf("Kick should apply a VoteKick immediately, got %+v", got)
	}
}

func TestHandleQuitReturnsByeClient(t *testing.T) {
	s, id := newTestState()
	got := Handle(s, id, &Inbound{Tag: CmdQuit, Reason: "bye"})
	if len(got) != 1 || got[0].Tag != action.ByeClient || got[0].Text != "bye" {
		t.Errorf("Quit result = %+v", got)
	}
}

func TestHandlePasswordDelegatesToCheckRegistered(t *testing.T) {
	s, id := newTestState()
	got := Handle(s, id, &Inbound{Tag: CmdPassword, Password: "whatever"})
	if len(got) != 1 || got[0].Tag != action.CheckRegistered {
		t.Errorf("Password should fall back to CheckRegistered absent an authenticator, got %+v", got)
	}
}

func TestHandleVoteCastsBallot(t *testing.T) {
	s, id := newTestState()
	got := Handle(s, id, &Inbound{Tag: CmdVote, Vote: true})
	if len(got) != 1 || got[0].Tag != action.AddVote || !got[0].Vote {
		t.Errorf("Vote result = %+v", got)
	}
}
