package model

// VoteKind identifies what a room-wide vote decides (spec.md §4.4).
type VoteKind struct {
	Tag             VoteTag
	KickNick        string // set when Tag == VoteKick
	MapName         string // set when Tag == VoteMap
	HedgehogsNumber uint8  // set when Tag == VoteHedgehogsPerTeam
}

// VoteTag enumerates the closed set of vote kinds.
type VoteTag int

const (
	VoteKick VoteTag = iota
	VoteMap
	VotePause
	VoteNewSeed
	VoteHedgehogsPerTeam
)

// Ballot is one voter's cast vote.
type Ballot struct {
	VoterID ClientID
	Vote    bool
}

// Voting tracks an in-progress room vote (spec.md §4.4). Voters is
// snapshotted at vote start and never recomputed, per spec.md §9
// "Voting snapshot".
type Voting struct {
	Kind   VoteKind
	Voters map[ClientID]struct{}
	Votes  []Ballot
}

// NewVoting starts a vote among the given voter set.
func NewVoting(kind VoteKind, voters []ClientID) *Voting {
	set := make(map[ClientID]struct{}, len(voters))
	for _, id := range voters {
		set[id] = struct{}{}
	}
	return &Voting{Kind: kind, Voters: set}
}

// HasVoted reports whether voterID already cast a ballot.
func (v *Voting) HasVoted(voterID ClientID) bool {
	for _, b := range v.Votes {
		if b.VoterID == voterID {
			return true
		}
	}
	return false
}

// Tally counts yes/no ballots cast so far.
func (v *Voting) Tally() (pro, contra int) {
	for _, b := range v.Votes {
		if b.Vote {
			pro++
		} else {
			contra++
		}
	}
	return
}

// SuccessQuota is ⌊|voters|/2⌋ + 1 (spec.md §4.4, §8 P9).
func (v *Voting) SuccessQuota() int {
	return len(v.Voters)/2 + 1
}
