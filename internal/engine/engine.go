// Package engine provides the one helper the core needs for the
// excluded engine-message binary protocol: wrapping an opaque frame
// for relay (spec.md §6 "to_engine_msg"). The core never parses engine
// frames, only relays and logs them (spec.md §1, GLOSSARY).
//
// The length-prefix-then-bytes shape is adapted from the teacher's
// binary/event.go marshaling helpers (put24 + raw payload copy), which
// encoded wsnet2's sequence-numbered regular events; here it encodes a
// single opaque, unnumbered engine frame instead.
package engine

import "encoding/base64"

// ToEngineMsg base64-encodes frame prefixed with its own length byte,
// matching the on-wire shape the game engine's binary protocol expects
// (spec.md §6), grounded on actions.rs's repeated `to_engine_msg(...)`
// calls (e.g. `to_engine_msg("e$spectate 1".bytes())`).
func ToEngineMsg(frame []byte) string {
	buf := make([]byte, 1+len(frame))
	buf[0] = byte(len(frame))
	copy(buf[1:], frame)
	return base64.StdEncoding.EncodeToString(buf)
}

// ToEngineMsgString is a convenience wrapper for ToEngineMsg over a
// textual frame, used for the synthetic "e$spectate 1"/"I"/"G<name>"/"F<name>"
// control frames the reducer forwards (spec.md §4.3, §4.4, §4.6).
func ToEngineMsgString(frame string) string {
	return ToEngineMsg([]byte(frame))
}
