package model

import "testing"

func team(name string) TeamInfo {
	return TeamInfo{Name: name, Hedgehogs: []Hedgehog{{Name: "hog1", Hat: "Default"}}}
}

func TestAddTeamFirstUsesDefaultHedgehogCount(t *testing.T) {
	r := NewRoom(1)
	added := r.AddTeam(10, team("red"))
	if added.Color != 0 {
		t.Errorf("first team color = %d, want 0", added.Color)
	}
	if added.HedgehogsNumber != r.DefaultHedgehogNumber {
		t.Errorf("first team hedgehogs = %d, want %d", added.HedgehogsNumber, r.DefaultHedgehogNumber)
	}
}

func TestAddTeamMatchesFirstTeamsCountClampedByBudget(t *testing.T) {
	r := NewRoom(1)
	r.AddTeam(10, team("red"))
	r.Teams[0].Team.HedgehogsNumber = MaxHedgehogsInRoom
	added := r.AddTeam(11, team("blue"))
	if added.HedgehogsNumber != 0 {
		t.Errorf("second team hedgehogs = %d, want 0 (budget exhausted)", added.HedgehogsNumber)
	}
}

func TestAddTeamPicksSmallestUnusedColor(t *testing.T) {
	r := NewRoom(1)
	r.AddTeam(1, team("a"))
	r.AddTeam(2, team("b"))
	r.Teams[0].Team.Color = 0
	r.Teams[1].Team.Color = 1
	added := r.AddTeam(3, team("c"))
	if added.Color != 2 {
		t.Errorf("third team color = %d, want 2", added.Color)
	}
}

func TestRemoveTeam(t *testing.T) {
	r := NewRoom(1)
	r.AddTeam(1, team("a"))
	r.AddTeam(2, team("b"))
	r.RemoveTeam("a")
	if len(r.Teams) != 1 || r.Teams[0].Team.Name != "b" {
		t.Fatalf("Teams after RemoveTeam(a) = %+v, want only b", r.Teams)
	}
	r.RemoveTeam("nonexistent")
	if len(r.Teams) != 1 {
		t.Fatalf("RemoveTeam(nonexistent) mutated the roster: %+v", r.Teams)
	}
}

func TestHasMultipleClans(t *testing.T) {
	r := NewRoom(1)
	if r.HasMultipleClans() {
		t.Error("an empty room should not have multiple clans")
	}
	r.AddTeam(1, team("a"))
	if r.HasMultipleClans() {
		t.Error("a single team should not count as multiple clans")
	}
	r.AddTeam(2, team("b"))
	r.Teams[0].Team.Color = 0
	r.Teams[1].Team.Color = 1
	if !r.HasMultipleClans() {
		t.Error("two distinctly colored teams should count as multiple clans")
	}
}

func TestStartRoundSnapshotsRosterIndependently(t *testing.T) {
	r := NewRoom(1)
	r.AddTeam(1, team("a"))
	r.StartRound()
	if r.GameInfo == nil || len(r.GameInfo.TeamsAtStart) != 1 {
		t.Fatalf("GameInfo after StartRound = %+v", r.GameInfo)
	}
	r.Teams[0].Team.HedgehogsNumber = 99
	if r.GameInfo.TeamsAtStart[0].Team.HedgehogsNumber == 99 {
		t.Error("TeamsAtStart should be a snapshot, not an alias of the live roster")
	}
}

func TestSetHedgehogsNumberClampsToRoomBudget(t *testing.T) {
	r := NewRoom(1)
	r.AddTeam(1, team("a"))
	r.AddTeam(2, team("b"))
	r.AddTeam(3, team("c"))

	names := r.SetHedgehogsNumber(30)
	if len(names) != 3 {
		t.Fatalf("SetHedgehogsNumber returned %d names, want 3", len(names))
	}

	var total uint8
	for _, ot := range r.Teams {
		total += ot.Team.HedgehogsNumber
	}
	if total > MaxHedgehogsInRoom {
		t.Errorf("total hedgehogs after SetHedgehogsNumber(30) = %d, exceeds budget %d", total, MaxHedgehogsInRoom)
	}
	if r.Teams[0].Team.HedgehogsNumber != 30 {
		t.Errorf("first team got %d, want the full requested 30", r.Teams[0].Team.HedgehogsNumber)
	}
}

func TestAddableHedgehogs(t *testing.T) {
	r := NewRoom(1)
	if r.AddableHedgehogs() != MaxHedgehogsInRoom {
		t.Errorf("AddableHedgehogs on empty room = %d, want %d", r.AddableHedgehogs(), MaxHedgehogsInRoom)
	}
	r.AddTeam(1, team("a"))
	r.Teams[0].Team.HedgehogsNumber = MaxHedgehogsInRoom
	if r.AddableHedgehogs() != 0 {
		t.Errorf("AddableHedgehogs at budget = %d, want 0", r.AddableHedgehogs())
	}
}
