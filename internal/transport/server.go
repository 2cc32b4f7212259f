package transport

import (
	"context"
	"net"
	"sync"

	"golang.org/x/xerrors"

	"redoubt/internal/action"
	"redoubt/internal/log"
	"redoubt/internal/model"
	"redoubt/internal/prng"
	"redoubt/internal/protocol"
	"redoubt/internal/reduce"
)

// Server owns the listener, the single reactor goroutine, and the
// live connection table. It is the adapted counterpart of the
// teacher's per-room Room/MsgLoop pair (game/room.go), generalized
// to a single global owner per spec.md §5.
type Server struct {
	log log.Logger

	state   *model.State
	reducer *reduce.Reducer

	mu          sync.Mutex
	conns       map[model.ClientID]*conn
	nextConnTag uint64

	events      chan inboundEvent
	disconnects chan disconnectEvent
	connects    chan *conn
	queries     chan snapshotRequest
	kicks       chan adminKickRequest

	authenticator Authenticator
}

// Authenticator verifies a PASSWORD command against the external
// account collaborator (spec.md §1, §7 "Authentication failure
// (collaborator)"). A nil Authenticator (the default) admits every
// PASSWORD command unconditionally, matching a server run without
// account persistence configured.
type Authenticator interface {
	Verify(ctx context.Context, nick, passwordHash string) (ok, registered bool, err error)
}

// RoomSnapshot is a read-only view of one room, for the admin
// collaborator (replaces the teacher's MsgGetRoomInfo/pb.GetRoomInfoRes
// round trip, game/room.go's msgGetRoomInfo).
type RoomSnapshot struct {
	ID            uint32 `json:"id"`
	Name          string `json:"name"`
	PlayersNumber uint32 `json:"players_number"`
	InGame        bool   `json:"in_game"`
	MasterNick    string `json:"master_nick"`
}

// Snapshot is the whole-server view returned by Server.Snapshot.
type Snapshot struct {
	ClientCount int            `json:"client_count"`
	Rooms       []RoomSnapshot `json:"rooms"`
}

type snapshotRequest struct {
	reply chan Snapshot
}

type adminKickRequest struct {
	nick  string
	reply chan error
}

// Config bounds the in-memory slabs (spec.md §6 "client and room
// limits... collaborator").
type Config struct {
	ClientCapacity int
	RoomCapacity   int
	Seed           int64
}

// New allocates a Server with an empty lobby-only state.
func New(cfg Config, logger log.Logger) *Server {
	state := model.NewState(cfg.ClientCapacity, cfg.RoomCapacity)
	rng := prng.NewMathRand(cfg.Seed)
	return &Server{
		log:         logger,
		state:       state,
		reducer:     reduce.New(state, rng, logger),
		conns:       make(map[model.ClientID]*conn),
		events:      make(chan inboundEvent, 256),
		disconnects: make(chan disconnectEvent, 64),
		connects:    make(chan *conn, 64),
		queries:     make(chan snapshotRequest),
		kicks:       make(chan adminKickRequest),
	}
}

// Snapshot blocks until the reactor goroutine has built and returned a
// read-only view of all rooms, for internal/admin's HTTP handlers.
func (s *Server) Snapshot() Snapshot {
	req := snapshotRequest{reply: make(chan Snapshot, 1)}
	s.queries <- req
	return <-req.reply
}

// KickByNick asks the reactor to disconnect the client with the given
// nick through ByeClient("kicked by admin") (the admin analogue of
// game/room.go's msgAdminKick).
func (s *Server) KickByNick(nick string) error {
	req := adminKickRequest{nick: nick, reply: make(chan error, 1)}
	s.kicks <- req
	return <-req.reply
}

// SetAuthenticator installs the account collaborator consulted on
// every PASSWORD command. Must be called before ListenAndServe.
func (s *Server) SetAuthenticator(a Authenticator) {
	s.authenticator = a
}

// ListenAndServe accepts connections on addr until the listener is
// closed or ln.Accept returns a permanent error, and blocks running
// the single reactor loop in the same goroutine it was called from.
func (s *Server) ListenAndServe(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	go s.acceptLoop(ln)
	s.run()
	return nil
}

func (s *Server) acceptLoop(ln net.Listener) {
	for {
		nc, err := ln.Accept()
		if err != nil {
			s.log.Errorf("accept: %v", err)
			return
		}
		go s.handleNewConn(nc)
	}
}

func (s *Server) handleNewConn(nc net.Conn) {
	// Registration (slab insert) happens on the reactor goroutine so
	// State.Clients is never touched concurrently; the accept
	// goroutine only hands off the bare connection handle.
	s.connects <- &conn{nc: nc, out: make(chan []string, 64), done: make(chan struct{}), log: s.log}
}

// run is the single reactor loop (spec.md §5): it serially drains
// connects, disconnects, and inbound events, each processed to
// completion — parse already happened in the connection's read loop,
// so here it is handler → reducer drain → output flush, exactly the
// ordering spec.md §5 requires.
func (s *Server) run() {
	for {
		select {
		case c := <-s.connects:
			s.registerConn(c)
		case d := <-s.disconnects:
			s.handleDisconnect(d)
		case e := <-s.events:
			s.handleEvent(e)
		case q := <-s.queries:
			q.reply <- s.buildSnapshot()
		case k := <-s.kicks:
			k.reply <- s.handleAdminKick(k.nick)
		}
	}
}

func (s *Server) buildSnapshot() Snapshot {
	snap := Snapshot{ClientCount: s.state.Clients.Len()}
	s.state.Rooms.Each(func(id int, r *model.Room) {
		if model.RoomID(id) == s.state.LobbyID {
			return
		}
		masterNick := ""
		if r.MasterID != nil {
			if c := s.state.Client(*r.MasterID); c != nil {
				masterNick = c.Nick
			}
		}
		snap.Rooms = append(snap.Rooms, RoomSnapshot{
			ID:            uint32(id),
			Name:          r.Name,
			PlayersNumber: r.PlayersNumber,
			InGame:        r.GameInfo != nil,
			MasterNick:    masterNick,
		})
	})
	return snap
}

func (s *Server) handleAdminKick(nick string) error {
	c := s.state.FindClientByNick(nick)
	if c == nil {
		return xerrors.Errorf("admin: no such client: %s", nick)
	}
	s.reducer.React(c.ID, []action.Action{action.NewByeClient("kicked by admin")})
	s.flush()
	return nil
}

func (s *Server) registerConn(c *conn) {
	s.mu.Lock()
	s.nextConnTag++
	tag := s.nextConnTag
	s.mu.Unlock()

	client := model.NewClient(0, newSalt(), tag)
	id := model.ClientID(s.state.Clients.Insert(client))
	client.ID = id
	c.id = id
	c.connTag = tag

	s.mu.Lock()
	s.conns[id] = c
	s.mu.Unlock()

	go c.readLoop(s.events, s.disconnects)
	go c.writeLoop()
}

func (s *Server) handleEvent(e inboundEvent) {
	if !s.liveConn(e.clientID, e.connTag) {
		return
	}
	if s.authenticator != nil && e.in.Tag == protocol.CmdPassword {
		s.handlePasswordEvent(e)
		return
	}
	s.reducer.React(e.clientID, []action.Action{action.NewReactProtocolMessage(e.in)})
	s.flush()
}

// handlePasswordEvent consults the authenticator before letting the
// reducer's normal CheckRegistered path proceed, disconnecting the
// client on a rejected account per spec.md §7's authentication-failure
// edge case.
func (s *Server) handlePasswordEvent(e inboundEvent) {
	c := s.state.Client(e.clientID)
	if c == nil || c.Nick == "" {
		s.reducer.React(e.clientID, []action.Action{action.NewProtocolError("PASSWORD requires a nickname first")})
		s.flush()
		return
	}
	ok, registered, err := s.authenticator.Verify(context.Background(), c.Nick, e.in.Password)
	if err != nil {
		s.log.Errorf("auth: verify %s: %v", c.Nick, err)
		s.reducer.React(e.clientID, []action.Action{action.NewByeClient("authentication unavailable")})
		s.flush()
		return
	}
	if registered && !ok {
		s.reducer.React(e.clientID, []action.Action{action.NewByeClient("incorrect password")})
		s.flush()
		return
	}
	s.reducer.React(e.clientID, []action.Action{action.DoCheckRegistered})
	s.flush()
}

func (s *Server) handleDisconnect(d disconnectEvent) {
	if !s.liveConn(d.clientID, d.connTag) {
		return
	}
	s.reducer.React(d.clientID, []action.Action{action.NewByeClient(d.reason)})
	s.flush()
}

func (s *Server) liveConn(id model.ClientID, tag uint64) bool {
	s.mu.Lock()
	c, ok := s.conns[id]
	s.mu.Unlock()
	return ok && c.connTag == tag
}

// flush drains the reducer's output queue to each recipient's
// outbound channel, then the removed-client list to connection
// teardown, restoring both to empty for the next event.
func (s *Server) flush() {
	for _, out := range s.reducer.Queue {
		lines := protocol.Serialize(out.Message)
		s.mu.Lock()
		for _, id := range out.Recipients {
			if c, ok := s.conns[id]; ok {
				select {
				case c.out <- lines:
				default:
					s.log.Warnf("client %d: outbound queue full, dropping message", id)
				}
			}
		}
		s.mu.Unlock()
	}
	s.reducer.Queue = s.reducer.Queue[:0]

	for _, id := range s.reducer.Removed {
		s.mu.Lock()
		c, ok := s.conns[id]
		if ok {
			delete(s.conns, id)
		}
		s.mu.Unlock()
		if ok {
			close(c.done)
			close(c.out)
			c.nc.Close()
		}
	}
	s.reducer.Removed = s.reducer.Removed[:0]
}
