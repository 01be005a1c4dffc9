package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// Store persists sessions for the lifetime of the process.
type Store interface {
	Create(ctx context.Context) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int, error)
	Close() error
}

// SQLiteStore implements Store on modernc.org/sqlite. The default DSN is a
// shared in-memory database, so sessions vanish with the process.
type SQLiteStore struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// NewSQLite opens dsn and creates the sessions table.
func NewSQLite(ctx context.Context, dsn string, ttl time.Duration) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "session: open sqlite")
	}
	// A single connection keeps a shared in-memory database alive and
	// serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close() //nolint:errcheck
		return nil, eris.Wrap(err, "session: set busy_timeout")
	}

	s := &SQLiteStore{db: db, ttl: ttl, now: time.Now}
	if err := s.migrate(ctx); err != nil {
		db.Close() //nolint:errcheck
		return nil, err
	}
	return s, nil
}

const sessionsMigration = `
CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	state      TEXT NOT NULL,
	updated_at INTEGER NOT NULL,
	expires_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);
`

func (s *SQLiteStore) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sessionsMigration)
	return eris.Wrap(err, "session: migrate")
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Create stores a fresh session with a random id.
func (s *SQLiteStore) Create(ctx context.Context) (*Session, error) {
	sess := New(uuid.NewString(), s.now().UTC(), s.ttl)
	if err := s.put(ctx, sess, false); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get loads a live session. Expired sessions are reported as ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Session, error) {
	var state string
	err := s.db.QueryRowContext(ctx,
		`SELECT state FROM sessions WHERE id = ? AND expires_at > ?`,
		id, s.now().UnixNano(),
	).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, eris.Wrapf(ErrNotFound, "id %s", id)
	}
	if err != nil {
		return nil, eris.Wrap(err, "session: get")
	}

	var sess Session
	if err := json.Unmarshal([]byte(state), &sess); err != nil {
		return nil, eris.Wrap(err, "session: unmarshal state")
	}
	return &sess, nil
}

// Save writes sess back and extends its expiry.
func (s *SQLiteStore) Save(ctx context.Context, sess *Session) error {
	sess.Touch(s.now().UTC(), s.ttl)
	return s.put(ctx, sess, true)
}

func (s *SQLiteStore) put(ctx context.Context, sess *Session, mustExist bool) error {
	state, err := json.Marshal(sess)
	if err != nil {
		return eris.Wrap(err, "session: marshal state")
	}

	var res sql.Result
	if mustExist {
		res, err = s.db.ExecContext(ctx,
			`UPDATE sessions SET state = ?, updated_at = ?, expires_at = ? WHERE id = ? AND expires_at > ?`,
			string(state), sess.UpdatedAt.UnixNano(), sess.ExpiresAt.UnixNano(), sess.ID, sess.UpdatedAt.UnixNano(),
		)
	} else {
		res, err = s.db.ExecContext(ctx,
			`INSERT INTO sessions (id, state, updated_at, expires_at) VALUES (?, ?, ?, ?)`,
			sess.ID, string(state), sess.UpdatedAt.UnixNano(), sess.ExpiresAt.UnixNano(),
		)
	}
	if err != nil {
		return eris.Wrap(err, "session: save")
	}
	return checkRowsAffected(res, sess.ID)
}

// Delete removes a session.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return eris.Wrap(err, "session: delete")
	}
	return checkRowsAffected(res, id)
}

// DeleteExpired removes every session past its expiry and returns the count.
func (s *SQLiteStore) DeleteExpired(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, s.now().UnixNano())
	if err != nil {
		return 0, eris.Wrap(err, "session: delete expired")
	}
	n, err := res.RowsAffected()
	return int(n), eris.Wrap(err, "session: rows affected")
}

func checkRowsAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "session: rows affected")
	}
	if n == 0 {
		return eris.Wrapf(ErrNotFound, "id %s", id)
	}
	return nil
}
