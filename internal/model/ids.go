// Package model holds the in-memory, typed state the reducer mutates:
// clients, rooms, teams, game info, and voting. It mirrors
// original_source/gameServer2/src/server/{client,room}.rs and
// rust/hedgewars-server/src/server/core.rs's data layout.
package model

// ClientID is an opaque handle into the client pool (spec.md §3).
type ClientID int

// RoomID is an opaque handle into the room pool (spec.md §3).
type RoomID int

// LobbyID is the id of the distinguished fixed lobby room, always the
// first room allocated by NewState (core.rs: `server.lobby_id =
// server.add_room()` is the first call in `HWServer::new`).
const LobbyID RoomID = 0
