// Package auth is the optional nick/password account collaborator
// (spec.md §1, §7 "Authentication failure (collaborator)"). Nothing in
// internal/reduce imports it; the transport layer consults it, when
// configured, before admitting a PASSWORD command's registration.
package auth

import (
	"context"
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/vmihailenco/msgpack/v4"
	"golang.org/x/xerrors"
)

// Account is one row of the account table.
type Account struct {
	Nick         string `db:"nick"`
	PasswordHash string `db:"password_hash"`
	IsAdmin      bool   `db:"is_admin"`
	Profile      []byte `db:"profile"` // msgpack-encoded Profile
}

// Profile is metadata about a registered player, persisted separately
// from room state (SPEC_FULL §B: account metadata, not room state, is
// not excluded by the "no persistence of room state" Non-goal).
type Profile struct {
	GamesPlayed int               `msgpack:"games_played"`
	LastIP      string            `msgpack:"last_ip"`
	Extra       map[string]string `msgpack:"extra"`
}

// Store is a sqlx-backed account store, grounded on lobby/room.go's
// query style (db.Select/db.Get against a typed row struct).
type Store struct {
	db *sqlx.DB
}

// Open connects to a MySQL account database using dsn.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, xerrors.Errorf("auth: connect: %w", err)
	}
	return &Store{db: db}, nil
}

// NewWithDB wraps an already-opened *sqlx.DB, so tests can inject a
// DATA-DOG/go-sqlmock connection.
func NewWithDB(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Verify reports whether password matches the stored hash for nick.
// A nick with no account row is treated as unregistered, not a
// failure: callers decide whether unregistered nicks may proceed
// unauthenticated.
func (s *Store) Verify(ctx context.Context, nick, passwordHash string) (ok bool, registered bool, err error) {
	var acct Account
	err = s.db.GetContext(ctx, &acct, "SELECT nick, password_hash, is_admin, profile FROM account WHERE nick = ?", nick)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, false, nil
		}
		return false, false, xerrors.Errorf("auth: lookup %s: %w", nick, err)
	}
	return acct.PasswordHash == passwordHash, true, nil
}

// IsAdmin reports whether nick's account carries admin rights.
func (s *Store) IsAdmin(ctx context.Context, nick string) (bool, error) {
	var isAdmin bool
	err := s.db.GetContext(ctx, &isAdmin, "SELECT is_admin FROM account WHERE nick = ?", nick)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, xerrors.Errorf("auth: lookup admin flag for %s: %w", nick, err)
	}
	return isAdmin, nil
}

// LoadProfile decodes the msgpack profile blob for nick.
func (s *Store) LoadProfile(ctx context.Context, nick string) (Profile, error) {
	var blob []byte
	err := s.db.GetContext(ctx, &blob, "SELECT profile FROM account WHERE nick = ?", nick)
	if err != nil {
		return Profile{}, xerrors.Errorf("auth: load profile for %s: %w", nick, err)
	}
	var p Profile
	if len(blob) == 0 {
		return p, nil
	}
	if err := msgpack.Unmarshal(blob, &p); err != nil {
		return Profile{}, xerrors.Errorf("auth: decode profile for %s: %w", nick, err)
	}
	return p, nil
}

// SaveProfile re-encodes and stores p for nick.
func (s *Store) SaveProfile(ctx context.Context, nick string, p Profile) error {
	blob, err := msgpack.Marshal(&p)
	if err != nil {
		return xerrors.Errorf("auth: encode profile for %s: %w", nick, err)
	}
	_, err = s.db.ExecContext(ctx, "UPDATE account SET profile = ? WHERE nick = ?", blob, nick)
	if err != nil {
		return xerrors.Errorf("auth: save profile for %s: %w", nick, err)
	}
	return nil
}
