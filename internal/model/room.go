package model

import "strconv"

// Room is the server's view of one room, or the distinguished lobby
// when ID == LobbyID (spec.md §3), grounded on room.rs's HWRoom.
type Room struct {
	ID       RoomID
	MasterID *ClientID
	Name     string
	Password *string

	ProtocolNumber uint16

	PlayersNumber         uint32
	ReadyPlayersNumber     uint8
	DefaultHedgehogNumber uint8
	TeamLimit             uint8

	Teams []OwnedTeam

	Config RoomConfig

	GameInfo *GameInfo
	Voting   *Voting

	IsFixed bool

	Greeting string
}

// NewRoom returns a freshly allocated, empty room.
func NewRoom(id RoomID) *Room {
	return &Room{
		ID:                    id,
		DefaultHedgehogNumber: 4,
		TeamLimit:             8,
		Config:                NewRoomConfig(),
	}
}

// NewLobby returns the one distinguished, fixed, never-removed lobby
// room (spec.md §3), created once by NewState.
func NewLobby() *Room {
	r := NewRoom(LobbyID)
	r.IsFixed = true
	return r
}

// HedgehogsNumber sums hedgehog counts across all teams (room.rs::hedgehogs_number).
func (r *Room) HedgehogsNumber() uint8 {
	var total uint8
	for _, ot := range r.Teams {
		total += ot.Team.HedgehogsNumber
	}
	return total
}

// AddableHedgehogs reports how many more hedgehogs the room can take
// before hitting MaxHedgehogsInRoom (room.rs::addable_hedgehogs).
func (r *Room) AddableHedgehogs() uint8 {
	n := r.HedgehogsNumber()
	if n >= MaxHedgehogsInRoom {
		return 0
	}
	return MaxHedgehogsInRoom - n
}

// AddTeam assigns the smallest unused color and a default hedgehog
// count, then appends the team (room.rs::add_team).
func (r *Room) AddTeam(ownerID ClientID, team TeamInfo) TeamInfo {
	team.Color = r.smallestUnusedColor()
	if len(r.Teams) == 0 {
		team.HedgehogsNumber = r.DefaultHedgehogNumber
	} else {
		n := r.Teams[0].Team.HedgehogsNumber
		if addable := r.AddableHedgehogs(); n > addable {
			n = addable
		}
		team.HedgehogsNumber = n
	}
	r.Teams = append(r.Teams, OwnedTeam{OwnerID: ownerID, Team: team})
	return team
}

func (r *Room) smallestUnusedColor() uint8 {
	used := make(map[uint8]bool, len(r.Teams))
	for _, ot := range r.Teams {
		used[ot.Team.Color] = true
	}
	for c := 0; c <= 255; c++ {
		if !used[uint8(c)] {
			return uint8(c)
		}
	}
	return 0
}

// RemoveTeam deletes the named team, if present (room.rs::remove_team).
func (r *Room) RemoveTeam(name string) {
	for i, ot := range r.Teams {
		if ot.Team.Name == name {
			r.Teams = append(r.Teams[:i], r.Teams[i+1:]...)
			return
		}
	}
}

// ClientTeams returns the teams clientID currently owns in the room's
// live roster (room.rs::client_teams).
func (r *Room) ClientTeams(clientID ClientID) []TeamInfo {
	var out []TeamInfo
	for _, ot := range r.Teams {
		if ot.OwnerID == clientID {
			out = append(out, ot.Team)
		}
	}
	return out
}

// ClientTeamIndices returns the positions within Teams owned by
// clientID (room.rs::client_team_indices), used by StartRoomGame.
func (r *Room) ClientTeamIndices(clientID ClientID) []uint8 {
	var out []uint8
	for i, ot := range r.Teams {
		if ot.OwnerID == clientID {
			out = append(out, uint8(i))
		}
	}
	return out
}

// HasMultipleClans reports whether the room's teams span at least two
// distinct colors (room.rs::has_multiple_clans, spec.md GLOSSARY).
func (r *Room) HasMultipleClans() bool {
	if len(r.Teams) == 0 {
		return false
	}
	first := r.Teams[0].Team.Color
	for _, ot := range r.Teams[1:] {
		if ot.Team.Color != first {
			return true
		}
	}
	return false
}

// StartRound snapshots the current roster into a fresh GameInfo,
// starting a round (room.rs::start_round as referenced by
// actions.rs::StartRoomGame; the method itself is not present in the
// retrieved original_source, so its shape is supplemented here).
func (r *Room) StartRound() {
	snapshot := make([]OwnedTeam, len(r.Teams))
	for i, ot := range r.Teams {
		snapshot[i] = OwnedTeam{OwnerID: ot.OwnerID, Team: ot.Team.Clone()}
	}
	r.GameInfo = &GameInfo{
		TeamsInGame:  uint8(len(r.Teams)),
		TeamsAtStart: snapshot,
	}
}

// SetHedgehogsNumber applies number to every team in the room, clamped
// so the room's total never exceeds MaxHedgehogsInRoom (spec.md §4.4),
// and returns the names of the teams touched, for the
// VoteHedgehogsPerTeam vote (supplemented).
func (r *Room) SetHedgehogsNumber(number uint8) []string {
	r.DefaultHedgehogNumber = number
	var budget uint8 = MaxHedgehogsInRoom
	names := make([]string, len(r.Teams))
	for i := range r.Teams {
		n := number
		if n > budget {
			n = budget
		}
		budget -= n
		r.Teams[i].Team.HedgehogsNumber = n
		names[i] = r.Teams[i].Team.Name
	}
	return names
}

// Info returns the flat Rooms/RoomAdd/RoomUpdated tuple (spec.md §6).
func (r *Room) Info(masterNick string) []string {
	master := "[]"
	if masterNick != "" {
		master = masterNick
	}
	return []string{
		"-",
		r.Name,
		strconv.FormatUint(uint64(r.PlayersNumber), 10),
		strconv.Itoa(len(r.Teams)),
		master,
		r.Config.MapType,
		r.Config.Script,
		r.Config.Scheme.Name,
		r.Config.Ammo.Name,
	}
}
