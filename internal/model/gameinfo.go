package model

// GameInfo exists only while a round is in progress (spec.md §3),
// grounded on room.rs's GameInfo (extended per the distilled spec with
// TeamsAtStart/LeftTeams/MsgLog/SyncMsg/IsPaused, which the
// gameServer2-era room.rs lacks but actions.rs already manipulates).
type GameInfo struct {
	TeamsInGame  uint8
	TeamsAtStart []OwnedTeam
	LeftTeams    []string
	MsgLog       [][]byte
	SyncMsg      []byte // nil when absent
	IsPaused     bool
}

// ClientTeams returns the teams clientID owns within TeamsAtStart, the
// snapshot used for mid-game join bookkeeping (spec.md §4.3).
func (g *GameInfo) ClientTeams(clientID ClientID) []TeamInfo {
	var out []TeamInfo
	for _, ot := range g.TeamsAtStart {
		if ot.OwnerID == clientID {
			out = append(out, ot.Team)
		}
	}
	return out
}
