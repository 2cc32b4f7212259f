package model

import "strconv"

// MaxHedgehogsInRoom is the per-room hedgehog budget (spec.md §3
// invariant 5), grounded on room.rs's MAX_HEDGEHOGS_IN_ROOM = 48.
const MaxHedgehogsInRoom uint8 = 48

// Hedgehog is one playable unit within a team.
type Hedgehog struct {
	Name string
	Hat  string
}

// TeamInfo describes one team owned by a client within a room
// (spec.md §3), grounded on room.rs's TeamInfo.
type TeamInfo struct {
	Name             string
	Grave            string
	Fort             string
	VoicePack        string
	Flag             string
	Difficulty       uint8
	Color            uint8
	HedgehogsNumber  uint8
	Hedgehogs        []Hedgehog
}

// OwnedTeam pairs a team with the client id that owns it, the Go
// equivalent of room.rs's `teams: Vec<(ClientId, TeamInfo)>`.
type OwnedTeam struct {
	OwnerID ClientID
	Team    TeamInfo
}

// Clone returns a deep-enough copy of t for snapshotting into
// GameInfo.TeamsAtStart (spec.md §3 invariant 6).
func (t TeamInfo) Clone() TeamInfo {
	hogs := make([]Hedgehog, len(t.Hedgehogs))
	copy(hogs, t.Hedgehogs)
	t.Hedgehogs = hogs
	return t
}

// Info returns the flat TeamAdd tuple (spec.md §6), grounded on
// room.rs::team_info.
func (t TeamInfo) Info(ownerNick string) []string {
	info := []string{
		t.Name,
		t.Grave,
		t.Fort,
		t.VoicePack,
		t.Flag,
		ownerNick,
		strconv.FormatUint(uint64(t.Difficulty), 10),
	}
	for _, h := range t.Hedgehogs {
		info = append(info, h.Name, h.Hat)
	}
	return info
}
