package model

import "strconv"

// Ammo describes the room's ammo scheme selection (spec.md §3).
type Ammo struct {
	Name     string
	Settings *string
}

// Scheme describes the room's gameplay scheme selection (spec.md §3).
type Scheme struct {
	Name     string
	Settings []string
}

// RoomConfig holds the tunable match configuration of a room,
// grounded on room.rs's RoomConfig (including its defaults).
type RoomConfig struct {
	FeatureSize   uint32
	MapType       string
	MapGenerator  uint32
	MazeSize      uint32
	Seed          string
	Template      uint32

	Ammo     Ammo
	Scheme   Scheme
	Script   string
	Theme    string
	DrawnMap *string
}

// NewRoomConfig returns the default configuration a freshly created
// room starts with (room.rs::RoomConfig::new).
func NewRoomConfig() RoomConfig {
	return RoomConfig{
		FeatureSize:  12,
		MapType:      "+rnd+",
		MapGenerator: 0,
		MazeSize:     0,
		Seed:         "seed",
		Template:     0,
		Ammo:         Ammo{Name: "Default"},
		Scheme:       Scheme{Name: "Default"},
		Script:       "Normal",
		Theme:        "\U0001F994",
	}
}

// MapConfig returns the six-string map_config tuple (spec.md §6).
func (c RoomConfig) MapConfig() []string {
	return []string{
		strconv.FormatUint(uint64(c.FeatureSize), 10),
		c.MapType,
		strconv.FormatUint(uint64(c.MapGenerator), 10),
		strconv.FormatUint(uint64(c.MazeSize), 10),
		c.Seed,
		strconv.FormatUint(uint64(c.Template), 10),
	}
}

// GameConfigEntry is one (key, values) ConfigEntry to emit (spec.md §6).
type GameConfigEntry struct {
	Key    string
	Values []string
}

// GameConfig returns the game_config entries in order: Ammo, Scheme,
// Script, Theme, and DrawnMap if set (spec.md §6).
func (c RoomConfig) GameConfig() []GameConfigEntry {
	entries := []GameConfigEntry{
		{Key: "AMMO", Values: ammoValues(c.Ammo)},
		{Key: "SCHEME", Values: schemeValues(c.Scheme)},
		{Key: "SCRIPT", Values: []string{c.Script}},
		{Key: "THEME", Values: []string{c.Theme}},
	}
	if c.DrawnMap != nil {
		entries = append(entries, GameConfigEntry{Key: "DRAWNMAP", Values: []string{*c.DrawnMap}})
	}
	return entries
}

func ammoValues(a Ammo) []string {
	if a.Settings != nil {
		return []string{a.Name, *a.Settings}
	}
	return []string{a.Name}
}

func schemeValues(s Scheme) []string {
	return append([]string{s.Name}, s.Settings...)
}
