package protocol

import (
	"testing"

	"redoubt/internal/message"
	"redoubt/internal/model"
)

func TestParseEmptyFrame(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Error("Parse(nil) should error")
	}
}

func TestParseUnknownCommand(t *testing.T) {
	if _, err := Parse([]string{"BOGUS"}); err == nil {
		t.Error("Parse of an unknown command should error")
	}
}

func TestParseNick(t *testing.T) {
	in, err := Parse([]string{"NICK", "alice"})
	if err != nil {
		t.Fatal(err)
	}
	if in.Tag != CmdNick || in.Nick != "alice" {
		t.Errorf("Parse(NICK) = %+v", in)
	}
	if _, err := Parse([]string{"NICK"}); err == nil {
		t.Error("NICK with no argument should error")
	}
}

func TestParseProtoRejectsNonNumeric(t *testing.T) {
	if _, err := Parse([]string{"PROTO", "not-a-number"}); err == nil {
		t.Error("PROTO with a non-numeric version should error")
	}
	in, err := Parse([]string{"PROTO", "58"})
	if err != nil {
		t.Fatal(err)
	}
	if in.Tag != CmdProto || in.ProtocolNumber != 58 {
		t.Errorf("Parse(PROTO 58) = %+v", in)
	}
}

func TestParseCreateRoomWithAndWithoutPassword(t *testing.T) {
	in, err := Parse([]string{"CREATE_ROOM", "arena"})
	if err != nil {
		t.Fatal(err)
	}
	if in.RoomName != "arena" || in.Password != "" {
		t.Errorf("Parse(CREATE_ROOM arena) = %+v", in)
	}

	in2, err := Parse([]string{"CREATE_ROOM", "arena", "secret"})
	if err != nil {
		t.Fatal(err)
	}
	if in2.Password != "secret" {
		t.Errorf("Parse(CREATE_ROOM arena secret) = %+v", in2)
	}
}

func TestParseAddTeamWithHedgehogs(t *testing.T) {
	in, err := Parse([]string{"ADD_TEAM", "reds", "grave1", "fort1", "voice1", "flag1", "3", "hog1", "Beret", "hog2", "Default"})
	if err != nil {
		t.Fatal(err)
	}
	if in.Team.Name != "reds" || in.Team.Difficulty != 3 || len(in.Team.Hedgehogs) != 2 {
		t.Errorf("Parse(ADD_TEAM) = %+v", in.Team)
	}
	if in.Team.Hedgehogs[1].Name != "hog2" || in.Team.Hedgehogs[1].Hat != "Default" {
		t.Errorf("Parse(ADD_TEAM) hedgehogs = %+v", in.Team.Hedgehogs)
	}
}

func TestParseAddTeamRequiresAllFields(t *testing.T) {
	if _, err := Parse([]string{"ADD_TEAM", "reds"}); err == nil {
		t.Error("ADD_TEAM with too few fields should error")
	}
}

func TestParseEMValidatesBase64(t *testing.T) {
	if _, err := Parse([]string{"EM", "not base64!!"}); err == nil {
		t.Error("EM with invalid base64 should error")
	}
	in, err := Parse([]string{"EM", "aGVsbG8="})
	if err != nil {
		t.Fatal(err)
	}
	if len(in.EngineFrames) != 1 || in.EngineFrames[0] != "aGVsbG8=" {
		t.Errorf("Parse(EM) = %+v", in)
	}
}

func TestParseVote(t *testing.T) {
	yes, err := Parse([]string{"VOTE", "YES"})
	if err != nil {
		t.Fatal(err)
	}
	if !yes.Vote {
		t.Error("VOTE YES should parse to Vote=true")
	}
	no, err := Parse([]string{"VOTE", "NO"})
	if err != nil {
		t.Fatal(err)
	}
	if no.Vote {
		t.Error("VOTE NO should parse to Vote=false")
	}
}

func TestParseCallVoteKinds(t *testing.T) {
	cases := []struct {
		args []string
		tag  model.VoteTag
	}{
		{[]string{"CALLVOTE", "KICK", "bob"}, model.VoteKick},
		{[]string{"CALLVOTE", "MAP", "island"}, model.VoteMap},
		{[]string{"CALLVOTE", "PAUSE"}, model.VotePause},
		{[]string{"CALLVOTE", "NEWSEED"}, model.VoteNewSeed},
		{[]string{"CALLVOTE", "HEDGEHOGS", "6"}, model.VoteHedgehogsPerTeam},
	}
	for _, c := range cases {
		in, err := Parse(c.args)
		if err != nil {
			t.Errorf("Parse(%v) error: %v", c.args, err)
			continue
		}
		if in.VoteKind.Tag != c.tag {
			t.Errorf("Parse(%v).VoteKind.Tag = %v, want %v", c.args, in.VoteKind.Tag, c.tag)
		}
	}
	if _, err := Parse([]string{"CALLVOTE", "BOGUS"}); err == nil {
		t.Error("CALLVOTE with an unknown kind should error")
	}
	if _, err := Parse([]string{"CALLVOTE", "KICK"}); err == nil {
		t.Error("CALLVOTE KICK with no nickname should error")
	}
}

func TestParseQuitDefaultsReason(t *testing.T) {
	in, err := Parse([]string{"QUIT"})
	if err != nil {
		t.Fatal(err)
	}
	if in.Reason != "quit" {
		t.Errorf("Parse(QUIT) reason = %q, want quit", in.Reason)
	}
}

func TestSerializeRoundTripsPositionalFields(t *testing.T) {
	cases := []struct {
		name string
		msg  message.Message
		want []string
	}{
		{"Connected", message.NewConnected(58), []string{"CONNECTED", "58"}},
		{"Kicked", message.NewKicked(), []string{"KICKED"}},
		{"ChatMsg", message.NewChatMsg("alice", "hi"), []string{"CHAT", "alice", "hi"}},
		{"TeamColor", message.NewTeamColor("reds", 3), []string{"TEAM_COLOR", "reds", "3"}},
		{"Warning", message.NewWarning("careful"), []string{"WARNING", "careful"}},
	}
	for _, c := range cases {
		got := Serialize(c.msg)
		if len(got) != len(c.want) {
			t.Errorf("%s: Serialize = %v, want %v", c.name, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("%s: Serialize = %v, want %v", c.name, got, c.want)
				break
			}
		}
	}
}

func TestSerializeRoomsFlattensRows(t *testing.T) {
	msg := message.NewRooms([][]string{{"-", "arena", "2"}, {"-", "fort", "4"}})
	got := Serialize(msg)
	want := []string{"ROOMS", "-", "arena", "2", "-", "fort", "4"}
	if len(got) != len(want) {
		t.Fatalf("Serialize(Rooms) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Serialize(Rooms) = %v, want %v", got, want)
		}
	}
}

func TestSerializeUnknownKindFallsBackToError(t *testing.T) {
	got := Serialize(message.Message{Kind: message.Kind(999)})
	if len(got) != 2 || got[0] != "ERROR" {
		t.Errorf("Serialize(unknown kind) = %v, want an ERROR fallback", got)
	}
}
