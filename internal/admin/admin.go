// Package admin is a read-only (plus one kick action) HTTP
// introspection surface over the reactor's state, grounded on
// game/room.go's MsgGetRoomInfo / msgAdminKick request-reply-over-
// channel pattern and routed with gorilla/mux like the teacher's own
// lobby HTTP surface. It replaces the teacher's gRPC admin calls
// (see SPEC_FULL §B for why grpc itself was dropped).
package admin

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"redoubt/internal/log"
	"redoubt/internal/transport"
)

// StateReader is the slice of transport.Server the admin surface
// needs, kept as an interface so this package's handlers stay
// testable against a fake.
type StateReader interface {
	Snapshot() transport.Snapshot
	KickByNick(nick string) error
}

// Server is the admin HTTP listener.
type Server struct {
	httpSrv *http.Server
	log     log.Logger
}

// New builds an admin HTTP server bound to addr, serving reads from
// source.
func New(addr string, source StateReader, logger log.Logger) *Server {
	r := mux.NewRouter()
	h := &handler{source: source, log: logger}
	r.HandleFunc("/status", h.status).Methods(http.MethodGet)
	r.HandleFunc("/rooms", h.rooms).Methods(http.MethodGet)
	r.HandleFunc("/kick/{nick}", h.kick).Methods(http.MethodPost)

	return &Server{
		httpSrv: &http.Server{Addr: addr, Handler: r},
		log:     logger,
	}
}

// ListenAndServe blocks serving admin HTTP requests.
func (s *Server) ListenAndServe() error {
	return s.httpSrv.ListenAndServe()
}

// Shutdown gracefully stops the admin HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

type handler struct {
	source StateReader
	log    log.Logger
}

func (h *handler) status(w http.ResponseWriter, r *http.Request) {
	snap := h.source.Snapshot()
	writeJSON(w, struct {
		ClientCount int `json:"client_count"`
		RoomCount   int `json:"room_count"`
	}{snap.ClientCount, len(snap.Rooms)})
}

func (h *handler) rooms(w http.ResponseWriter, r *http.Request) {
	snap := h.source.Snapshot()
	writeJSON(w, snap.Rooms)
}

func (h *handler) kick(w http.ResponseWriter, r *http.Request) {
	nick := mux.Vars(r)["nick"]
	if err := h.source.KickByNick(nick); err != nil {
		h.log.Warnf("admin: kick %s: %v", nick, err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
