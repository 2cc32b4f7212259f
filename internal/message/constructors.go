package message

// NewConnected corresponds to HWServerMessage::Connected(protocol_version).
func NewConnected(protocolVersion uint16) Message {
	return Message{Kind: Connected, ProtocolVersion: protocolVersion}
}

// NewBye corresponds to Bye(reason).
func NewBye(reason string) Message {
	return Message{Kind: Bye, Reason: reason}
}

// NewLobbyJoined corresponds to LobbyJoined(nicks).
func NewLobbyJoined(nicks []string) Message {
	return Message{Kind: LobbyJoined, Nicks: nicks}
}

// NewLobbyLeft corresponds to LobbyLeft(nick, reason).
func NewLobbyLeft(nick, reason string) Message {
	return Message{Kind: LobbyLeft, Nicks: []string{nick}, Reason: reason}
}

// NewRoomAdd corresponds to RoomAdd(info).
func NewRoomAdd(info []string) Message {
	return Message{Kind: RoomAdd, Info: info}
}

// NewRoomRemove corresponds to RoomRemove(name).
func NewRoomRemove(name string) Message {
	return Message{Kind: RoomRemove, Name: name}
}

// NewRoomUpdated corresponds to RoomUpdated(old_name, info).
func NewRoomUpdated(oldName string, info []string) Message {
	return Message{Kind: RoomUpdated, OldName: oldName, Info: info}
}

// NewRoomJoined corresponds to RoomJoined(nicks).
func NewRoomJoined(nicks []string) Message {
	return Message{Kind: RoomJoined, Nicks: nicks}
}

// NewRoomLeft corresponds to RoomLeft(nick, reason).
func NewRoomLeft(nick, reason string) Message {
	return Message{Kind: RoomLeft, Nicks: []string{nick}, Reason: reason}
}

// NewRooms corresponds to Rooms(flat_info_list).
func NewRooms(rows [][]string) Message {
	return Message{Kind: Rooms, Rows: rows}
}

// NewClientFlags corresponds to ClientFlags(flag_string, nicks).
func NewClientFlags(flags string, nicks []string) Message {
	return Message{Kind: ClientFlags, Flags: flags, Nicks: nicks}
}

// NewServerMessage corresponds to ServerMessage(text).
func NewServerMessage(text string) Message {
	return Message{Kind: ServerMessage, Text: text}
}

// NewChatMsg corresponds to ChatMsg{nick, msg}.
func NewChatMsg(nick, msg string) Message {
	return Message{Kind: ChatMsg, ChatNick: nick, Text: msg}
}

// NewTeamAdd corresponds to TeamAdd(info).
func NewTeamAdd(info []string) Message {
	return Message{Kind: TeamAdd, TeamInfo: info}
}

// NewTeamRemove corresponds to TeamRemove(name).
func NewTeamRemove(name string) Message {
	return Message{Kind: TeamRemove, Name: name}
}

// NewTeamColor corresponds to TeamColor(name, color).
func NewTeamColor(name string, color uint8) Message {
	return Message{Kind: TeamColor, Name: name, Number: uint32(color)}
}

// NewHedgehogsNumber corresponds to HedgehogsNumber(team_name, n).
func NewHedgehogsNumber(teamName string, n uint8) Message {
	return Message{Kind: HedgehogsNumber, Name: teamName, Number: uint32(n)}
}

// NewConfigEntry corresponds to ConfigEntry(key, values).
func NewConfigEntry(key string, values []string) Message {
	return Message{Kind: ConfigEntry, Key: key, Values: values}
}

// NewRunGame corresponds to the zero-payload RunGame message.
func NewRunGame() Message { return Message{Kind: RunGame} }

// NewRoundFinished corresponds to the zero-payload RoundFinished message.
func NewRoundFinished() Message { return Message{Kind: RoundFinished} }

// NewForwardEngineMessage corresponds to ForwardEngineMessage(frames).
func NewForwardEngineMessage(frames []string) Message {
	return Message{Kind: ForwardEngineMessage, Frames: frames}
}

// NewKicked corresponds to the zero-payload Kicked message.
func NewKicked() Message { return Message{Kind: Kicked} }

// NewWarning corresponds to Warning(text).
func NewWarning(text string) Message {
	return Message{Kind: Warning, Text: text}
}

// NewError corresponds to Error(text).
func NewError(text string) Message {
	return Message{Kind: Error, Text: text}
}
